package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statuts d'un bulletin.
const (
	BulletinBrouillon = "brouillon"
	BulletinValide    = "valide"
	BulletinPaye      = "paye"
)

// Types de ligne de bulletin.
const (
	LigneGain    = "gain"
	LigneRetenue = "retenue"
)

// Employe salarié d'une entreprise.
type Employe struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Matricule    string    `db:"matricule"`
	Nom          string    `db:"nom"`
	Prenom       *string   `db:"prenom"`
	NIU          *string   `db:"niu"`
	Actif        bool      `db:"actif"`
	CreatedAt    time.Time `db:"created_at"`
}

// PeriodePaie mois de paie ; verrouillée une fois clôturée.
type PeriodePaie struct {
	ID           int64     `db:"id"`
	EntrepriseID int64     `db:"entreprise_id"`
	Annee        int       `db:"annee"`
	Mois         int       `db:"mois"`
	DateDebut    time.Time `db:"date_debut"`
	DateFin      time.Time `db:"date_fin"`
	Cloturee     bool      `db:"cloturee"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// BulletinPaie bulletin d'un employé pour une période.
type BulletinPaie struct {
	ID            int64           `db:"id"`
	EntrepriseID  int64           `db:"entreprise_id"`
	EmployeID     int64           `db:"employe_id"`
	PeriodePaieID int64           `db:"periode_paie_id"`
	SalaireBrut   decimal.Decimal `db:"salaire_brut"`
	TotalGains    decimal.Decimal `db:"total_gains"`
	TotalRetenues decimal.Decimal `db:"total_retenues"`
	NetAPayer     decimal.Decimal `db:"net_a_payer"`
	Statut        string          `db:"statut"`
	DatePaiement  *time.Time      `db:"date_paiement"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	Lignes        []LigneBulletin `db:"-"`
}

// LigneBulletin élément de gain ou de retenue.
type LigneBulletin struct {
	ID         int64           `db:"id"`
	BulletinID int64           `db:"bulletin_id"`
	Libelle    string          `db:"libelle"`
	Type       string          `db:"type"`
	Montant    decimal.Decimal `db:"montant"`
	Ordre      int             `db:"ordre"`
}

// Totaliser recalcule gains, retenues et net depuis les lignes.
func (b *BulletinPaie) Totaliser() {
	gains, retenues := decimal.Zero, decimal.Zero
	for _, l := range b.Lignes {
		if l.Type == LigneGain {
			gains = gains.Add(l.Montant)
		} else {
			retenues = retenues.Add(l.Montant)
		}
	}
	b.TotalGains = gains
	b.TotalRetenues = retenues
	b.NetAPayer = gains.Sub(retenues)
}
