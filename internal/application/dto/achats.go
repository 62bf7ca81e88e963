package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepotCreate création d'un dépôt.
type DepotCreate struct {
	EntrepriseID   int64   `json:"entreprise_id" validate:"required,gt=0"`
	PointDeVenteID *int64  `json:"point_de_vente_id" validate:"omitempty,gt=0"`
	Code           string  `json:"code" validate:"required,notblank,max=20"`
	Libelle        string  `json:"libelle" validate:"required,notblank,max=255"`
	Adresse        *string `json:"adresse" validate:"omitempty,max=500"`
	Ville          *string `json:"ville" validate:"omitempty,max=100"`
	CodePostal     *string `json:"code_postal" validate:"omitempty,max=20"`
	Pays           *string `json:"pays" validate:"omitempty,pays"`
	Actif          *bool   `json:"actif"`
}

// DepotUpdate mise à jour partielle d'un dépôt.
type DepotUpdate struct {
	PointDeVenteID Optional[int64]  `json:"point_de_vente_id" validate:"omitempty,gt=0"`
	Code           Optional[string] `json:"code" validate:"omitempty,notblank,max=20"`
	Libelle        Optional[string] `json:"libelle" validate:"omitempty,notblank,max=255"`
	Adresse        Optional[string] `json:"adresse" validate:"omitempty,max=500"`
	Ville          Optional[string] `json:"ville" validate:"omitempty,max=100"`
	CodePostal     Optional[string] `json:"code_postal" validate:"omitempty,max=20"`
	Pays           Optional[string] `json:"pays" validate:"omitempty,pays"`
	Actif          Optional[bool]   `json:"actif"`
}

// DepotResponse dépôt.
type DepotResponse struct {
	ID             int64     `json:"id"`
	EntrepriseID   int64     `json:"entreprise_id"`
	PointDeVenteID *int64    `json:"point_de_vente_id"`
	Code           string    `json:"code"`
	Libelle        string    `json:"libelle"`
	Adresse        *string   `json:"adresse"`
	Ville          *string   `json:"ville"`
	CodePostal     *string   `json:"code_postal"`
	Pays           *string   `json:"pays"`
	Actif          bool      `json:"actif"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// LigneReceptionCreate quantité reçue d'un produit.
type LigneReceptionCreate struct {
	ProduitID  int64           `json:"produit_id" validate:"required,gt=0"`
	VarianteID *int64          `json:"variante_id" validate:"omitempty,gt=0"`
	Quantite   decimal.Decimal `json:"quantite" validate:"dgt0,dprec=4"`
}

// ReceptionCreate réception de marchandises (créée à l'état brouillon).
type ReceptionCreate struct {
	EntrepriseID          int64                  `json:"entreprise_id" validate:"required,gt=0"`
	FournisseurID         int64                  `json:"fournisseur_id" validate:"required,gt=0"`
	CommandeFournisseurID *int64                 `json:"commande_fournisseur_id" validate:"omitempty,gt=0"`
	DepotID               int64                  `json:"depot_id" validate:"required,gt=0"`
	Numero                string                 `json:"numero" validate:"max=50"`
	NumeroBLFournisseur   *string                `json:"numero_bl_fournisseur" validate:"omitempty,max=50"`
	DateReception         Date                   `json:"date_reception" validate:"required"`
	Notes                 *string                `json:"notes" validate:"omitempty,max=2000"`
	Lignes                []LigneReceptionCreate `json:"lignes" validate:"required,min=1,dive"`
}

// ReceptionUpdate mise à jour partielle d'une réception brouillon.
type ReceptionUpdate struct {
	Numero              Optional[string] `json:"numero" validate:"omitempty,max=50"`
	NumeroBLFournisseur Optional[string] `json:"numero_bl_fournisseur" validate:"omitempty,max=50"`
	DateReception       Optional[Date]   `json:"date_reception"`
	Notes               Optional[string] `json:"notes" validate:"omitempty,max=2000"`
}

// LigneReceptionResponse ligne de réception.
type LigneReceptionResponse struct {
	ID         int64           `json:"id"`
	ProduitID  int64           `json:"produit_id"`
	VarianteID *int64          `json:"variante_id"`
	Quantite   decimal.Decimal `json:"quantite"`
	Ordre      int             `json:"ordre"`
}

// ReceptionResponse réception (lignes incluses dans le détail).
type ReceptionResponse struct {
	ID                    int64                    `json:"id"`
	EntrepriseID          int64                    `json:"entreprise_id"`
	FournisseurID         int64                    `json:"fournisseur_id"`
	CommandeFournisseurID *int64                   `json:"commande_fournisseur_id"`
	DepotID               int64                    `json:"depot_id"`
	Numero                string                   `json:"numero"`
	NumeroBLFournisseur   *string                  `json:"numero_bl_fournisseur"`
	DateReception         Date                     `json:"date_reception"`
	Etat                  string                   `json:"etat"`
	Notes                 *string                  `json:"notes"`
	CreatedByID           *int64                   `json:"created_by_id"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
	Lignes                []LigneReceptionResponse `json:"lignes,omitempty"`
}

// ReceptionQuery filtres de la liste des réceptions.
type ReceptionQuery struct {
	EntrepriseID  int64
	FournisseurID *int64
	DepotID       *int64
	Etat          string
	PageRequest
}
