package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Types de mouvement.
const (
	MouvementEntree     = "entree"
	MouvementSortie     = "sortie"
	MouvementTransfert  = "transfert"
	MouvementInventaire = "inventaire"
)

// Types de référence d'un mouvement.
const (
	RefReception    = "reception"
	RefBonLivraison = "bon_livraison"
	RefManuel       = "manuel"
	RefInventaire   = "inventaire"
	RefTransfert    = "transfert"
)

// TypesMouvement et TypesReference valeurs admises.
var (
	TypesMouvement = []string{MouvementEntree, MouvementSortie, MouvementTransfert, MouvementInventaire}
	TypesReference = []string{RefReception, RefBonLivraison, RefManuel, RefInventaire, RefTransfert}
)

// Stock quantité courante d'un (dépôt, produit, variante). Quantite >= 0.
type Stock struct {
	ID         int64           `db:"id"`
	DepotID    int64           `db:"depot_id"`
	ProduitID  int64           `db:"produit_id"`
	VarianteID *int64          `db:"variante_id"`
	Quantite   decimal.Decimal `db:"quantite"`
	UniteID    *int64          `db:"unite_id"` // fixée à la création
	UpdatedAt  time.Time       `db:"updated_at"`
}

// MouvementStock trace immuable d'une modification de stock.
type MouvementStock struct {
	ID            int64           `db:"id"`
	EntrepriseID  int64           `db:"entreprise_id"`
	TypeMouvement string          `db:"type_mouvement"`
	DepotID       int64           `db:"depot_id"`
	DepotDestID   *int64          `db:"depot_dest_id"`
	ProduitID     int64           `db:"produit_id"`
	VarianteID    *int64          `db:"variante_id"`
	Quantite      decimal.Decimal `db:"quantite"`
	DateMouvement time.Time       `db:"date_mouvement"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   *int64          `db:"reference_id"`
	Notes         *string         `db:"notes"`
	CreatedByID   *int64          `db:"created_by_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Types d'alerte de stock.
const (
	AlerteSousSeuil   = "sous_seuil"
	AlerteAuDessusMax = "au_dessus_max"
)

// AlerteStock ligne de la vue stock × produit × dépôt hors seuils.
type AlerteStock struct {
	StockID        int64            `db:"stock_id"`
	DepotID        int64            `db:"depot_id"`
	DepotCode      string           `db:"depot_code"`
	ProduitID      int64            `db:"produit_id"`
	ProduitCode    string           `db:"produit_code"`
	ProduitLibelle string           `db:"produit_libelle"`
	VarianteID     *int64           `db:"variante_id"`
	Quantite       decimal.Decimal  `db:"quantite"`
	SeuilMin       *decimal.Decimal `db:"seuil_alerte_min"`
	SeuilMax       *decimal.Decimal `db:"seuil_alerte_max"`
	TypeAlerte     string           `db:"type_alerte"`
}
