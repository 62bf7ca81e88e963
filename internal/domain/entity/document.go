package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Familles de documents commerciaux et d'achat (discriminant type_document).
const (
	FamilleDevis               = "devis"
	FamilleCommande            = "commande"
	FamilleFacture             = "facture"
	FamilleBonLivraison        = "bon_livraison"
	FamilleCommandeFournisseur = "commande_fournisseur"
	FamilleFactureFournisseur  = "facture_fournisseur"
	FamilleReception           = "reception"
)

// Types de facture.
const (
	TypeFactureFacture   = "facture"
	TypeFactureAvoir     = "avoir"
	TypeFactureProforma  = "proforma"
	TypeFactureDuplicata = "duplicata"
)

// TypesFacture valeurs admises pour type_facture.
var TypesFacture = []string{TypeFactureFacture, TypeFactureAvoir, TypeFactureProforma, TypeFactureDuplicata}

// Statuts de paiement d'une facture.
const (
	StatutNonPaye = "non_paye"
	StatutPartiel = "partiel"
	StatutPaye    = "paye"
)

// Document en-tête commun aux devis, commandes, factures, bons de livraison,
// commandes et factures fournisseurs. (EntrepriseID, TypeDocument, Numero) est unique.
type Document struct {
	ID                  int64            `db:"id"`
	EntrepriseID        int64            `db:"entreprise_id"`
	TypeDocument        string           `db:"type_document"`
	PointDeVenteID      *int64           `db:"point_de_vente_id"`
	TiersID             int64            `db:"tiers_id"`
	DepotID             *int64           `db:"depot_id"`
	DocumentOrigineID   *int64           `db:"document_origine_id"`
	Numero              string           `db:"numero"`
	NumeroExterne       *string          `db:"numero_externe"`
	TypeFacture         *string          `db:"type_facture"`
	DateDocument        time.Time        `db:"date_document"`
	DateEcheance        *time.Time       `db:"date_echeance"`
	DateLivraisonPrevue *time.Time       `db:"date_livraison_prevue"`
	EtatID              *int64           `db:"etat_id"`
	MontantHT           decimal.Decimal  `db:"montant_ht"`
	MontantTVA          decimal.Decimal  `db:"montant_tva"`
	MontantTTC          decimal.Decimal  `db:"montant_ttc"`
	MontantRestantDu    *decimal.Decimal `db:"montant_restant_du"`
	DeviseID            *int64           `db:"devise_id"`
	StatutPaiement      *string          `db:"statut_paiement"`
	Notes               *string          `db:"notes"`
	CreatedByID         *int64           `db:"created_by_id"`
	CreatedAt           time.Time        `db:"created_at"`
	UpdatedAt           time.Time        `db:"updated_at"`
}

// EstFacture vrai pour les familles portant un restant dû.
func (d *Document) EstFacture() bool {
	return d.TypeDocument == FamilleFacture || d.TypeDocument == FamilleFactureFournisseur
}

// StatutPour statut de paiement correspondant à un restant dû.
func StatutPour(restant, ttc decimal.Decimal) string {
	switch {
	case restant.IsZero():
		return StatutPaye
	case restant.Equal(ttc):
		return StatutNonPaye
	default:
		return StatutPartiel
	}
}
