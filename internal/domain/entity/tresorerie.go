package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de règlement.
const (
	ReglementClient      = "client"
	ReglementFournisseur = "fournisseur"
)

// CompteTresorerie caisse, banque ou mobile money.
type CompteTresorerie struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Code         string    `db:"code"`
	Libelle      string    `db:"libelle"`
	TypeCompte   string    `db:"type_compte"`
	DeviseID     int64     `db:"devise_id"`
	Actif        bool      `db:"actif"`
	CreatedAt    time.Time `db:"created_at"`
}

// ModePaiement espèces, virement, chèque, mobile money...
type ModePaiement struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Code         string    `db:"code"`
	Libelle      string    `db:"libelle"`
	Actif        bool      `db:"actif"`
	CreatedAt    time.Time `db:"created_at"`
}

// Reglement paiement d'une facture client ou fournisseur.
type Reglement struct {
	ID                   int64           `db:"id"`
	EntrepriseID         int64           `db:"entreprise_id"`
	TypeReglement        string          `db:"type_reglement"`
	FactureID            *int64          `db:"facture_id"`
	FactureFournisseurID *int64          `db:"facture_fournisseur_id"`
	TiersID              int64           `db:"tiers_id"`
	Montant              decimal.Decimal `db:"montant"`
	DateReglement        time.Time       `db:"date_reglement"`
	DateValeur           *time.Time      `db:"date_valeur"`
	ModePaiementID       int64           `db:"mode_paiement_id"`
	CompteTresorerieID   int64           `db:"compte_tresorerie_id"`
	Reference            *string         `db:"reference"`
	Notes                *string         `db:"notes"`
	CreatedByID          *int64          `db:"created_by_id"`
	CreatedAt            time.Time       `db:"created_at"`
}

// DocumentID identifiant de la facture réglée, quel que soit le côté.
func (r *Reglement) DocumentID() int64 {
	if r.FactureID != nil {
		return *r.FactureID
	}
	if r.FactureFournisseurID != nil {
		return *r.FactureFournisseurID
	}
	return 0
}
