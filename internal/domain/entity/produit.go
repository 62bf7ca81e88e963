package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produit article du catalogue. Supprimé logiquement via DeletedAt.
type Produit struct {
	ID             int64            `db:"id"`
	EntrepriseID   int64            `db:"entreprise_id"`
	FamilleID      *int64           `db:"famille_id"`
	Code           string           `db:"code"` // unique par entreprise parmi les non supprimés
	CodeBarre      *string          `db:"code_barre"`
	Libelle        string           `db:"libelle"`
	Type           string           `db:"type"` // produit | service
	UniteVenteID   *int64           `db:"unite_vente_id"`
	PrixVenteTTC   decimal.Decimal  `db:"prix_vente_ttc"`
	TauxTvaID      *int64           `db:"taux_tva_id"`
	SeuilAlerteMin *decimal.Decimal `db:"seuil_alerte_min"`
	SeuilAlerteMax *decimal.Decimal `db:"seuil_alerte_max"`
	GererStock     bool             `db:"gerer_stock"`
	Actif          bool             `db:"actif"`
	CreatedByID    *int64           `db:"created_by_id"`
	DeletedAt      *time.Time       `db:"deleted_at"`
	CreatedAt      time.Time        `db:"created_at"`
	UpdatedAt      time.Time        `db:"updated_at"`
}

// Variante déclinaison d'un produit ; supprimée physiquement.
type Variante struct {
	ID           int64            `db:"id"`
	ProduitID    int64            `db:"produit_id"`
	Code         string           `db:"code"`
	Libelle      string           `db:"libelle"`
	CodeBarre    *string          `db:"code_barre"`
	PrixVenteTTC *decimal.Decimal `db:"prix_vente_ttc"`
	StockSepare  bool             `db:"stock_separe"`
	Actif        bool             `db:"actif"`
	CreatedAt    time.Time        `db:"created_at"`
}

// FamilleProduit nœud de l'arborescence du catalogue.
type FamilleProduit struct {
	ID           int64      `db:"id"`
	EntrepriseID int64      `db:"entreprise_id"`
	ParentID     *int64     `db:"parent_id"`
	Code         string     `db:"code"`
	Libelle      string     `db:"libelle"`
	Niveau       int        `db:"niveau"`
	Actif        bool       `db:"actif"`
	DeletedAt    *time.Time `db:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
