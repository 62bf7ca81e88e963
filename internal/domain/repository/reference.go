package repository

import "context"

// Kind type d'entité référençable par identifiant.
type Kind string

// Entités rattachées à une entreprise.
const (
	KindEntreprise       Kind = "entreprise"
	KindPointDeVente     Kind = "point_de_vente"
	KindDepot            Kind = "depot"
	KindTiers            Kind = "tiers"
	KindProduit          Kind = "produit"
	KindVariante         Kind = "variante"
	KindFamille          Kind = "famille"
	KindJournal          Kind = "journal"
	KindCompte           Kind = "compte"
	KindPeriode          Kind = "periode"
	KindCompteTresorerie Kind = "compte_tresorerie"
	KindModePaiement     Kind = "mode_paiement"
	KindEmploye          Kind = "employe"
	KindPeriodePaie      Kind = "periode_paie"
	KindRole             Kind = "role"
)

// Référentiels globaux (propriétaire = 0).
const (
	KindDevise       Kind = "devise"
	KindEtatDocument Kind = "etat_document"
	KindTauxTva      Kind = "taux_tva"
	KindUnite        Kind = "unite"
)

// ReferenceRepository résout le propriétaire d'une entité référencée.
type ReferenceRepository interface {
	// Owner renvoie l'entreprise propriétaire (0 pour un référentiel global) et found=false si l'entité n'existe pas.
	// Les produits et familles supprimés logiquement sont considérés absents.
	Owner(ctx context.Context, kind Kind, id int64) (owner int64, found bool, err error)
}
