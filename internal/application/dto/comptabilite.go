package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompteCreate création d'un compte comptable.
type CompteCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Numero       string `json:"numero" validate:"required,notblank,max=20"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=255"`
	SensNormal   string `json:"sens_normal" validate:"required"`
	Actif        *bool  `json:"actif"`
}

// CompteUpdate mise à jour partielle d'un compte.
type CompteUpdate struct {
	Numero     Optional[string] `json:"numero" validate:"omitempty,notblank,max=20"`
	Libelle    Optional[string] `json:"libelle" validate:"omitempty,notblank,max=255"`
	SensNormal Optional[string] `json:"sens_normal"`
	Actif      Optional[bool]   `json:"actif"`
}

// CompteResponse compte comptable.
type CompteResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Numero       string    `json:"numero"`
	Libelle      string    `json:"libelle"`
	SensNormal   string    `json:"sens_normal"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SoldeResponse cumul débit/crédit et solde dans le sens normal du compte.
type SoldeResponse struct {
	CompteID    int64           `json:"compte_id"`
	Numero      string          `json:"numero"`
	SensNormal  string          `json:"sens_normal"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Solde       decimal.Decimal `json:"solde"`
}

// JournalCreate création d'un journal.
type JournalCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Code         string `json:"code" validate:"required,notblank,max=10"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=255"`
	Actif        *bool  `json:"actif"`
}

// JournalUpdate mise à jour partielle d'un journal.
type JournalUpdate struct {
	Code    Optional[string] `json:"code" validate:"omitempty,notblank,max=10"`
	Libelle Optional[string] `json:"libelle" validate:"omitempty,notblank,max=255"`
	Actif   Optional[bool]   `json:"actif"`
}

// JournalResponse journal comptable.
type JournalResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Code         string    `json:"code"`
	Libelle      string    `json:"libelle"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PeriodeCreate création d'une période comptable.
type PeriodeCreate struct {
	EntrepriseID int64  `json:"entreprise_id" validate:"required,gt=0"`
	Libelle      string `json:"libelle" validate:"required,notblank,max=100"`
	DateDebut    Date   `json:"date_debut" validate:"required"`
	DateFin      Date   `json:"date_fin" validate:"required"`
}

// PeriodeUpdate mise à jour partielle (refusée si la période est clôturée).
type PeriodeUpdate struct {
	Libelle   Optional[string] `json:"libelle" validate:"omitempty,notblank,max=100"`
	DateDebut Optional[Date]   `json:"date_debut"`
	DateFin   Optional[Date]   `json:"date_fin"`
}

// PeriodeResponse période comptable.
type PeriodeResponse struct {
	ID           int64      `json:"id"`
	EntrepriseID int64      `json:"entreprise_id"`
	Libelle      string     `json:"libelle"`
	DateDebut    Date       `json:"date_debut"`
	DateFin      Date       `json:"date_fin"`
	Cloturee     bool       `json:"cloturee"`
	DateCloture  *time.Time `json:"date_cloture,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// LigneEcritureCreate ligne débit/crédit.
type LigneEcritureCreate struct {
	CompteID int64           `json:"compte_id" validate:"required,gt=0"`
	Libelle  *string         `json:"libelle" validate:"omitempty,max=255"`
	Debit    decimal.Decimal `json:"debit" validate:"dgte0,dprec=2"`
	Credit   decimal.Decimal `json:"credit" validate:"dgte0,dprec=2"`
}

// EcritureCreate écriture en partie double avec au moins deux lignes.
type EcritureCreate struct {
	EntrepriseID int64                 `json:"entreprise_id" validate:"required,gt=0"`
	JournalID    int64                 `json:"journal_id" validate:"required,gt=0"`
	PeriodeID    *int64                `json:"periode_id" validate:"omitempty,gt=0"`
	DateEcriture Date                  `json:"date_ecriture" validate:"required"`
	NumeroPiece  string                `json:"numero_piece" validate:"max=50"`
	Libelle      *string               `json:"libelle" validate:"omitempty,max=255"`
	Lignes       []LigneEcritureCreate `json:"lignes" validate:"dive"`
}

// LigneEcritureResponse ligne d'écriture.
type LigneEcritureResponse struct {
	ID       int64           `json:"id"`
	CompteID int64           `json:"compte_id"`
	Libelle  *string         `json:"libelle"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
	Ordre    int             `json:"ordre"`
}

// EcritureResponse en-tête (et lignes pour le détail).
type EcritureResponse struct {
	ID           int64                   `json:"id"`
	EntrepriseID int64                   `json:"entreprise_id"`
	JournalID    int64                   `json:"journal_id"`
	PeriodeID    *int64                  `json:"periode_id"`
	DateEcriture Date                    `json:"date_ecriture"`
	NumeroPiece  string                  `json:"numero_piece"`
	Libelle      *string                 `json:"libelle"`
	CreatedByID  *int64                  `json:"created_by_id"`
	CreatedAt    time.Time               `json:"created_at"`
	TotalDebit   *decimal.Decimal        `json:"total_debit,omitempty"`
	TotalCredit  *decimal.Decimal        `json:"total_credit,omitempty"`
	Lignes       []LigneEcritureResponse `json:"lignes,omitempty"`
}

// EcritureQuery filtres de la liste des écritures.
type EcritureQuery struct {
	EntrepriseID int64
	JournalID    *int64
	PeriodeID    *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	PageRequest
}
