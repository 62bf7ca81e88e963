package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MouvementCreate mouvement de stock (entree, sortie, transfert, inventaire).
type MouvementCreate struct {
	EntrepriseID  int64           `json:"entreprise_id" validate:"required,gt=0"`
	TypeMouvement string          `json:"type_mouvement" validate:"required,max=20"`
	DepotID       int64           `json:"depot_id" validate:"required,gt=0"`
	DepotDestID   *int64          `json:"depot_dest_id" validate:"omitempty,gt=0"`
	ProduitID     int64           `json:"produit_id" validate:"required,gt=0"`
	VarianteID    *int64          `json:"variante_id" validate:"omitempty,gt=0"`
	Quantite      decimal.Decimal `json:"quantite" validate:"dgte0,dprec=4"`
	ReferenceType string          `json:"reference_type" validate:"required,max=30"`
	ReferenceID   *int64          `json:"reference_id" validate:"omitempty,gt=0"`
	Notes         *string         `json:"notes" validate:"omitempty,max=2000"`
}

// MouvementResponse trace d'un mouvement.
type MouvementResponse struct {
	ID            int64           `json:"id"`
	EntrepriseID  int64           `json:"entreprise_id"`
	TypeMouvement string          `json:"type_mouvement"`
	DepotID       int64           `json:"depot_id"`
	DepotDestID   *int64          `json:"depot_dest_id"`
	ProduitID     int64           `json:"produit_id"`
	VarianteID    *int64          `json:"variante_id"`
	Quantite      decimal.Decimal `json:"quantite"`
	DateMouvement time.Time       `json:"date_mouvement"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   *int64          `json:"reference_id"`
	Notes         *string         `json:"notes"`
	CreatedByID   *int64          `json:"created_by_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// MouvementQuery filtres de la liste des mouvements.
type MouvementQuery struct {
	EntrepriseID  int64
	DepotID       *int64
	ProduitID     *int64
	TypeMouvement string
	DateFrom      *time.Time
	DateTo        *time.Time
	PageRequest
}

// StockResponse ligne de stock.
type StockResponse struct {
	ID         int64           `json:"id"`
	DepotID    int64           `json:"depot_id"`
	ProduitID  int64           `json:"produit_id"`
	VarianteID *int64          `json:"variante_id"`
	Quantite   decimal.Decimal `json:"quantite"`
	UniteID    *int64          `json:"unite_id"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// QuantiteResponse quantité d'un dépôt × produit × variante (zéro si aucune ligne).
type QuantiteResponse struct {
	DepotID    int64           `json:"depot_id"`
	ProduitID  int64           `json:"produit_id"`
	VarianteID *int64          `json:"variante_id"`
	Quantite   decimal.Decimal `json:"quantite"`
}

// AlerteResponse stock hors seuils.
type AlerteResponse struct {
	StockID        int64            `json:"stock_id"`
	DepotID        int64            `json:"depot_id"`
	DepotCode      string           `json:"depot_code"`
	ProduitID      int64            `json:"produit_id"`
	ProduitCode    string           `json:"produit_code"`
	ProduitLibelle string           `json:"produit_libelle"`
	VarianteID     *int64           `json:"variante_id"`
	Quantite       decimal.Decimal  `json:"quantite"`
	SeuilAlerteMin *decimal.Decimal `json:"seuil_alerte_min"`
	SeuilAlerteMax *decimal.Decimal `json:"seuil_alerte_max"`
	TypeAlerte     string           `json:"type_alerte"`
}
