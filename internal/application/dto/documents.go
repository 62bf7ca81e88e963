package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentCreate création d'un document commercial ou d'achat. client_id s'applique aux
// familles de vente, fournisseur_id aux familles d'achat.
type DocumentCreate struct {
	EntrepriseID        int64            `json:"entreprise_id" validate:"required,gt=0"`
	PointDeVenteID      *int64           `json:"point_de_vente_id" validate:"omitempty,gt=0"`
	ClientID            *int64           `json:"client_id" validate:"omitempty,gt=0"`
	FournisseurID       *int64           `json:"fournisseur_id" validate:"omitempty,gt=0"`
	DepotID             *int64           `json:"depot_id" validate:"omitempty,gt=0"`
	DocumentOrigineID   *int64           `json:"document_origine_id" validate:"omitempty,gt=0"`
	Numero              string           `json:"numero" validate:"max=50"`
	NumeroExterne       *string          `json:"numero_externe" validate:"omitempty,max=50"`
	TypeFacture         *string          `json:"type_facture" validate:"omitempty,max=20"`
	DateDocument        Date             `json:"date_document" validate:"required"`
	DateEcheance        *Date            `json:"date_echeance"`
	DateLivraisonPrevue *Date            `json:"date_livraison_prevue"`
	EtatID              *int64           `json:"etat_id" validate:"omitempty,gt=0"`
	MontantHT           decimal.Decimal  `json:"montant_ht" validate:"dgte0,dprec=2"`
	MontantTVA          decimal.Decimal  `json:"montant_tva" validate:"dgte0,dprec=2"`
	MontantTTC          decimal.Decimal  `json:"montant_ttc" validate:"dgte0,dprec=2"`
	MontantRestantDu    *decimal.Decimal `json:"montant_restant_du" validate:"omitempty,dgte0,dprec=2"`
	DeviseID            *int64           `json:"devise_id" validate:"omitempty,gt=0"`
	Notes               *string          `json:"notes" validate:"omitempty,max=2000"`
}

// DocumentUpdate mise à jour partielle d'un document.
type DocumentUpdate struct {
	Numero              Optional[string]          `json:"numero" validate:"omitempty,max=50"`
	NumeroExterne       Optional[string]          `json:"numero_externe" validate:"omitempty,max=50"`
	TypeFacture         Optional[string]          `json:"type_facture" validate:"omitempty,max=20"`
	DepotID             Optional[int64]           `json:"depot_id" validate:"omitempty,gt=0"`
	DateDocument        Optional[Date]            `json:"date_document"`
	DateEcheance        Optional[Date]            `json:"date_echeance"`
	DateLivraisonPrevue Optional[Date]            `json:"date_livraison_prevue"`
	EtatID              Optional[int64]           `json:"etat_id" validate:"omitempty,gt=0"`
	MontantHT           Optional[decimal.Decimal] `json:"montant_ht" validate:"omitempty,dgte0,dprec=2"`
	MontantTVA          Optional[decimal.Decimal] `json:"montant_tva" validate:"omitempty,dgte0,dprec=2"`
	MontantTTC          Optional[decimal.Decimal] `json:"montant_ttc" validate:"omitempty,dgte0,dprec=2"`
	MontantRestantDu    Optional[decimal.Decimal] `json:"montant_restant_du" validate:"omitempty,dgte0,dprec=2"`
	DeviseID            Optional[int64]           `json:"devise_id" validate:"omitempty,gt=0"`
	Notes               Optional[string]          `json:"notes" validate:"omitempty,max=2000"`
}

// DocumentResponse document commercial ou d'achat.
type DocumentResponse struct {
	ID                  int64            `json:"id"`
	EntrepriseID        int64            `json:"entreprise_id"`
	TypeDocument        string           `json:"type_document"`
	PointDeVenteID      *int64           `json:"point_de_vente_id,omitempty"`
	ClientID            *int64           `json:"client_id,omitempty"`
	FournisseurID       *int64           `json:"fournisseur_id,omitempty"`
	DepotID             *int64           `json:"depot_id"`
	DocumentOrigineID   *int64           `json:"document_origine_id"`
	Numero              string           `json:"numero"`
	NumeroExterne       *string          `json:"numero_externe"`
	TypeFacture         *string          `json:"type_facture,omitempty"`
	DateDocument        Date             `json:"date_document"`
	DateEcheance        *Date            `json:"date_echeance"`
	DateLivraisonPrevue *Date            `json:"date_livraison_prevue"`
	EtatID              *int64           `json:"etat_id"`
	MontantHT           decimal.Decimal  `json:"montant_ht"`
	MontantTVA          decimal.Decimal  `json:"montant_tva"`
	MontantTTC          decimal.Decimal  `json:"montant_ttc"`
	MontantRestantDu    *decimal.Decimal `json:"montant_restant_du,omitempty"`
	StatutPaiement      *string          `json:"statut_paiement,omitempty"`
	DeviseID            *int64           `json:"devise_id"`
	Notes               *string          `json:"notes"`
	CreatedByID         *int64           `json:"created_by_id"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// DocumentQuery filtres de liste d'une famille de documents.
type DocumentQuery struct {
	EntrepriseID int64
	TiersID      *int64
	EtatID       *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	Search       string
	PageRequest
}

// EtatDocumentResponse état de document.
type EtatDocumentResponse struct {
	ID           int64  `json:"id"`
	TypeDocument string `json:"type_document"`
	Code         string `json:"code"`
	Libelle      string `json:"libelle"`
	Ordre        int    `json:"ordre"`
}
