package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompteTresorerieCreate création d'une caisse, banque ou compte mobile money.
type CompteTresorerieCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Code         string `json:"code" validate:"required,notblank,max=20"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=255"`
	TypeCompte   string `json:"type_compte" validate:"required,max=20"`
	DeviseID     int64  `json:"devise_id" validate:"required,gt=0"`
	Actif        *bool  `json:"actif"`
}

// CompteTresorerieResponse compte de trésorerie.
type CompteTresorerieResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Code         string    `json:"code"`
	Libelle      string    `json:"libelle"`
	TypeCompte   string    `json:"type_compte"`
	DeviseID     int64     `json:"devise_id"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
}

// ModePaiementCreate création d'un mode de paiement.
type ModePaiementCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Code         string `json:"code" validate:"required,notblank,max=20"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=100"`
	Actif        *bool  `json:"actif"`
}

// ModePaiementResponse mode de paiement.
type ModePaiementResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Code         string    `json:"code"`
	Libelle      string    `json:"libelle"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReglementCreate paiement d'une facture : facture_id pour un règlement client,
// facture_fournisseur_id pour un règlement fournisseur.
type ReglementCreate struct {
	EntrepriseID         int64           `json:"entreprise_id" validate:"required,gt=0"`
	TypeReglement        string          `json:"type_reglement" validate:"required,max=20"`
	FactureID            *int64          `json:"facture_id" validate:"omitempty,gt=0"`
	FactureFournisseurID *int64          `json:"facture_fournisseur_id" validate:"omitempty,gt=0"`
	TiersID              int64           `json:"tiers_id" validate:"required,gt=0"`
	Montant              decimal.Decimal `json:"montant" validate:"dgt0,dprec=2"`
	DateReglement        Date            `json:"date_reglement" validate:"required"`
	DateValeur           *Date           `json:"date_valeur"`
	ModePaiementID       int64           `json:"mode_paiement_id" validate:"required,gt=0"`
	CompteTresorerieID   int64           `json:"compte_tresorerie_id" validate:"required,gt=0"`
	Reference            *string         `json:"reference" validate:"omitempty,max=100"`
	Notes                *string         `json:"notes" validate:"omitempty,max=2000"`
}

// ReglementResponse règlement enregistré.
type ReglementResponse struct {
	ID                   int64           `json:"id"`
	EntrepriseID         int64           `json:"entreprise_id"`
	TypeReglement        string          `json:"type_reglement"`
	FactureID            *int64          `json:"facture_id"`
	FactureFournisseurID *int64          `json:"facture_fournisseur_id"`
	TiersID              int64           `json:"tiers_id"`
	Montant              decimal.Decimal `json:"montant"`
	DateReglement        Date            `json:"date_reglement"`
	DateValeur           *Date           `json:"date_valeur"`
	ModePaiementID       int64           `json:"mode_paiement_id"`
	CompteTresorerieID   int64           `json:"compte_tresorerie_id"`
	Reference            *string         `json:"reference"`
	Notes                *string         `json:"notes"`
	CreatedByID          *int64          `json:"created_by_id"`
	CreatedAt            time.Time       `json:"created_at"`
}

// ReglementQuery filtres de la liste des règlements.
type ReglementQuery struct {
	EntrepriseID  int64
	TypeReglement string
	TiersID       *int64
	DateFrom      *time.Time
	DateTo        *time.Time
	PageRequest
}
