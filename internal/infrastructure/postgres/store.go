package postgres

import "github.com/gesco-erp/gesco-api/internal/domain/repository"

var _ repository.Store = Store{}

// Store regroupe les dépôts pgx liés à un pool ou à une transaction.
type Store struct {
	q Querier
}

// NewStore construit le Store. Passer le pool ou une pgx.Tx.
func NewStore(q Querier) Store {
	return Store{q: q}
}

func (s Store) Entreprises() repository.EntrepriseRepository   { return EntrepriseRepo{s.q} }
func (s Store) Utilisateurs() repository.UtilisateurRepository { return UtilisateurRepo{s.q} }
func (s Store) Permissions() repository.PermissionRepository   { return PermissionRepo{s.q} }
func (s Store) References() repository.ReferenceRepository     { return ReferenceRepo{s.q} }
func (s Store) Depots() repository.DepotRepository             { return DepotRepo{s.q} }
func (s Store) Tiers() repository.TiersRepository              { return TiersRepo{s.q} }
func (s Store) Produits() repository.ProduitRepository         { return ProduitRepo{s.q} }
func (s Store) Variantes() repository.VarianteRepository       { return VarianteRepo{s.q} }
func (s Store) Familles() repository.FamilleRepository         { return FamilleRepo{s.q} }
func (s Store) Stocks() repository.StockRepository             { return StockRepo{s.q} }
func (s Store) Mouvements() repository.MouvementRepository     { return MouvementRepo{s.q} }
func (s Store) Comptes() repository.CompteRepository           { return CompteRepo{s.q} }
func (s Store) Journaux() repository.JournalRepository         { return JournalRepo{s.q} }
func (s Store) Periodes() repository.PeriodeRepository         { return PeriodeRepo{s.q} }
func (s Store) Ecritures() repository.EcritureRepository       { return EcritureRepo{s.q} }
func (s Store) Documents() repository.DocumentRepository       { return DocumentRepo{s.q} }
func (s Store) Etats() repository.EtatDocumentRepository       { return EtatRepo{s.q} }
func (s Store) Receptions() repository.ReceptionRepository     { return ReceptionRepo{s.q} }
func (s Store) ComptesTresorerie() repository.CompteTresorerieRepository {
	return CompteTresorerieRepo{s.q}
}
func (s Store) ModesPaiement() repository.ModePaiementRepository { return ModePaiementRepo{s.q} }
func (s Store) Reglements() repository.ReglementRepository       { return ReglementRepo{s.q} }
func (s Store) Employes() repository.EmployeRepository           { return EmployeRepo{s.q} }
func (s Store) PeriodesPaie() repository.PeriodePaieRepository   { return PeriodePaieRepo{s.q} }
func (s Store) Bulletins() repository.BulletinRepository         { return BulletinRepo{s.q} }
func (s Store) Rapports() repository.RapportRepository           { return RapportRepo{s.q} }
