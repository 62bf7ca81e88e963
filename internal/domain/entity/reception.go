package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// États d'une réception fournisseur.
const (
	ReceptionBrouillon = "brouillon"
	ReceptionValidee   = "validee"
	ReceptionAnnulee   = "annulee"
)

// EtatsReception valeurs admises.
var EtatsReception = []string{ReceptionBrouillon, ReceptionValidee, ReceptionAnnulee}

// Reception réception de marchandises dans un dépôt.
type Reception struct {
	ID                    int64            `db:"id"`
	EntrepriseID          int64            `db:"entreprise_id"`
	FournisseurID         int64            `db:"fournisseur_id"`
	CommandeFournisseurID *int64           `db:"commande_fournisseur_id"`
	DepotID               int64            `db:"depot_id"`
	Numero                string           `db:"numero"`
	NumeroBLFournisseur   *string          `db:"numero_bl_fournisseur"`
	DateReception         time.Time        `db:"date_reception"`
	Etat                  string           `db:"etat"`
	Notes                 *string          `db:"notes"`
	CreatedByID           *int64           `db:"created_by_id"`
	CreatedAt             time.Time        `db:"created_at"`
	UpdatedAt             time.Time        `db:"updated_at"`
	Lignes                []LigneReception `db:"-"`
}

// LigneReception quantité reçue d'un produit.
type LigneReception struct {
	ID          int64           `db:"id"`
	ReceptionID int64           `db:"reception_id"`
	ProduitID   int64           `db:"produit_id"`
	VarianteID  *int64          `db:"variante_id"`
	Quantite    decimal.Decimal `db:"quantite"`
	Ordre       int             `db:"ordre"`
}
