package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sens normal d'un compte.
const (
	SensDebit  = "debit"
	SensCredit = "credit"
)

// CompteComptable compte du plan comptable OHADA d'une entreprise.
type CompteComptable struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Numero       string    `db:"numero"`
	Libelle      string    `db:"libelle"`
	SensNormal   string    `db:"sens_normal"`
	Actif        bool      `db:"actif"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// JournalComptable journal (achats, ventes, trésorerie, OD...).
type JournalComptable struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Code         string    `db:"code"`
	Libelle      string    `db:"libelle"`
	Actif        bool      `db:"actif"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// PeriodeComptable intervalle [DateDebut, DateFin] ; plus aucune écriture une fois clôturée.
type PeriodeComptable struct {
	ID           int64      `db:"id"`
	EntrepriseID int64      `db:"entreprise_id"`
	Libelle      string     `db:"libelle"`
	DateDebut    time.Time  `db:"date_debut"`
	DateFin      time.Time  `db:"date_fin"`
	Cloturee     bool       `db:"cloturee"`
	DateCloture  *time.Time `db:"date_cloture"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Contient vrai si d appartient à la période (bornes incluses).
func (p *PeriodeComptable) Contient(d time.Time) bool {
	return !d.Before(p.DateDebut) && !d.After(p.DateFin)
}

// EcritureComptable en-tête d'une écriture en partie double.
type EcritureComptable struct {
	ID           int64           `db:"id"`
	EntrepriseID int64           `db:"entreprise_id"`
	JournalID    int64           `db:"journal_id"`
	PeriodeID    *int64          `db:"periode_id"`
	DateEcriture time.Time       `db:"date_ecriture"`
	NumeroPiece  string          `db:"numero_piece"`
	Libelle      *string         `db:"libelle"`
	CreatedByID  *int64          `db:"created_by_id"`
	CreatedAt    time.Time       `db:"created_at"`
	Lignes       []LigneEcriture `db:"-"`
}

// LigneEcriture ligne débit/crédit d'une écriture.
type LigneEcriture struct {
	ID         int64           `db:"id"`
	EcritureID int64           `db:"ecriture_id"`
	CompteID   int64           `db:"compte_id"`
	Libelle    *string         `db:"libelle"`
	Debit      decimal.Decimal `db:"debit"`
	Credit     decimal.Decimal `db:"credit"`
	Ordre      int             `db:"ordre"`
}

// SoldeCompte cumul des mouvements d'un compte.
type SoldeCompte struct {
	CompteID    int64
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}
