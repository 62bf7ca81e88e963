package repository

import "context"

// Page fenêtre de pagination (skip/limit déjà bornés par l'appelant).
type Page struct {
	Skip  int
	Limit int
}

// Store donne accès à tous les dépôts de données, liés au pool ou à une transaction.
type Store interface {
	Entreprises() EntrepriseRepository
	Utilisateurs() UtilisateurRepository
	Permissions() PermissionRepository
	References() ReferenceRepository
	Depots() DepotRepository
	Tiers() TiersRepository
	Produits() ProduitRepository
	Variantes() VarianteRepository
	Familles() FamilleRepository
	Stocks() StockRepository
	Mouvements() MouvementRepository
	Comptes() CompteRepository
	Journaux() JournalRepository
	Periodes() PeriodeRepository
	Ecritures() EcritureRepository
	Documents() DocumentRepository
	Etats() EtatDocumentRepository
	Receptions() ReceptionRepository
	ComptesTresorerie() CompteTresorerieRepository
	ModesPaiement() ModePaiementRepository
	Reglements() ReglementRepository
	Employes() EmployeRepository
	PeriodesPaie() PeriodePaieRepository
	Bulletins() BulletinRepository
	Rapports() RapportRepository
}

// TxRunner exécute fn dans une transaction : commit si fn renvoie nil, rollback sinon.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Store) error) error
}
