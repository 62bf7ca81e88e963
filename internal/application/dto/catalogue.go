package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProduitCreate création d'un produit.
type ProduitCreate struct {
	EntrepriseID   int64            `json:"entreprise_id" validate:"required,gt=0"`
	FamilleID      *int64           `json:"famille_id" validate:"omitempty,gt=0"`
	Code           string           `json:"code" validate:"required,notblank,max=50"`
	CodeBarre      *string          `json:"code_barre" validate:"omitempty,max=50"`
	Libelle        string           `json:"libelle" validate:"required,notblank,max=255"`
	Type           string           `json:"type" validate:"omitempty,max=20"`
	UniteVenteID   int64            `json:"unite_vente_id" validate:"required,gt=0"`
	PrixVenteTTC   decimal.Decimal  `json:"prix_vente_ttc" validate:"dgte0,dprec=2"`
	TauxTvaID      *int64           `json:"taux_tva_id" validate:"omitempty,gt=0"`
	SeuilAlerteMin *decimal.Decimal `json:"seuil_alerte_min" validate:"omitempty,dgte0,dprec=4"`
	SeuilAlerteMax *decimal.Decimal `json:"seuil_alerte_max" validate:"omitempty,dgte0,dprec=4"`
	GererStock     *bool            `json:"gerer_stock"`
	Actif          *bool            `json:"actif"`
}

// ProduitUpdate mise à jour partielle d'un produit.
type ProduitUpdate struct {
	FamilleID      Optional[int64]           `json:"famille_id" validate:"omitempty,gt=0"`
	Code           Optional[string]          `json:"code" validate:"omitempty,notblank,max=50"`
	CodeBarre      Optional[string]          `json:"code_barre" validate:"omitempty,max=50"`
	Libelle        Optional[string]          `json:"libelle" validate:"omitempty,notblank,max=255"`
	Type           Optional[string]          `json:"type" validate:"omitempty,max=20"`
	UniteVenteID   Optional[int64]           `json:"unite_vente_id" validate:"omitempty,gt=0"`
	PrixVenteTTC   Optional[decimal.Decimal] `json:"prix_vente_ttc" validate:"omitempty,dgte0,dprec=2"`
	TauxTvaID      Optional[int64]           `json:"taux_tva_id" validate:"omitempty,gt=0"`
	SeuilAlerteMin Optional[decimal.Decimal] `json:"seuil_alerte_min" validate:"omitempty,dgte0,dprec=4"`
	SeuilAlerteMax Optional[decimal.Decimal] `json:"seuil_alerte_max" validate:"omitempty,dgte0,dprec=4"`
	GererStock     Optional[bool]            `json:"gerer_stock"`
	Actif          Optional[bool]            `json:"actif"`
}

// ProduitResponse produit du catalogue.
type ProduitResponse struct {
	ID             int64            `json:"id"`
	EntrepriseID   int64            `json:"entreprise_id"`
	FamilleID      *int64           `json:"famille_id"`
	Code           string           `json:"code"`
	CodeBarre      *string          `json:"code_barre"`
	Libelle        string           `json:"libelle"`
	Type           string           `json:"type"`
	UniteVenteID   *int64           `json:"unite_vente_id"`
	PrixVenteTTC   decimal.Decimal  `json:"prix_vente_ttc"`
	TauxTvaID      *int64           `json:"taux_tva_id"`
	SeuilAlerteMin *decimal.Decimal `json:"seuil_alerte_min"`
	SeuilAlerteMax *decimal.Decimal `json:"seuil_alerte_max"`
	GererStock     bool             `json:"gerer_stock"`
	Actif          bool             `json:"actif"`
	CreatedByID    *int64           `json:"created_by_id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProduitQuery filtres de la liste des produits.
type ProduitQuery struct {
	EntrepriseID int64
	FamilleID    *int64
	ActifOnly    bool
	Search       string
	PageRequest
}

// VarianteCreate création d'une variante de produit.
type VarianteCreate struct {
	Code         string           `json:"code" validate:"required,notblank,max=50"`
	Libelle      string           `json:"libelle" validate:"required,notblank,max=255"`
	CodeBarre    *string          `json:"code_barre" validate:"omitempty,max=50"`
	PrixVenteTTC *decimal.Decimal `json:"prix_vente_ttc" validate:"omitempty,dgte0,dprec=2"`
	StockSepare  bool             `json:"stock_separe"`
	Actif        *bool            `json:"actif"`
}

// VarianteResponse variante de produit.
type VarianteResponse struct {
	ID           int64            `json:"id"`
	ProduitID    int64            `json:"produit_id"`
	Code         string           `json:"code"`
	Libelle      string           `json:"libelle"`
	CodeBarre    *string          `json:"code_barre"`
	PrixVenteTTC *decimal.Decimal `json:"prix_vente_ttc"`
	StockSepare  bool             `json:"stock_separe"`
	Actif        bool             `json:"actif"`
	CreatedAt    time.Time        `json:"created_at"`
}

// FamilleCreate création d'une famille de produits.
type FamilleCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	ParentID     *int64 `json:"parent_id" validate:"omitempty,gt=0"`
	Code         string `json:"code" validate:"required,notblank,max=50"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=255"`
	Actif        *bool  `json:"actif"`
}

// FamilleUpdate mise à jour partielle ; parent_id à null rattache la famille à la racine.
type FamilleUpdate struct {
	ParentID Optional[int64]  `json:"parent_id" validate:"omitempty,gt=0"`
	Code     Optional[string] `json:"code" validate:"omitempty,notblank,max=50"`
	Libelle  Optional[string] `json:"libelle" validate:"omitempty,notblank,max=255"`
	Actif    Optional[bool]   `json:"actif"`
}

// FamilleResponse nœud de l'arborescence.
type FamilleResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	ParentID     *int64    `json:"parent_id"`
	Code         string    `json:"code"`
	Libelle      string    `json:"libelle"`
	Niveau       int       `json:"niveau"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
