package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeCreate création d'un salarié.
type EmployeCreate struct {
	EntrepriseID int64   `json:"entreprise_id" validate:"required,gt=0"`
	Matricule    string  `json:"matricule" validate:"required,notblank,max=50"`
	Nom          string  `json:"nom" validate:"required,notblank,max=100"`
	Prenom       *string `json:"prenom" validate:"omitempty,max=100"`
	NIU          *string `json:"niu" validate:"omitempty,niu"`
	Actif        *bool   `json:"actif"`
}

// EmployeResponse salarié.
type EmployeResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Matricule    string    `json:"matricule"`
	Nom          string    `json:"nom"`
	Prenom       *string   `json:"prenom"`
	NIU          *string   `json:"niu"`
	Actif        bool      `json:"actif"`
	CreatedAt    time.Time `json:"created_at"`
}

// PeriodePaieCreate ouverture d'un mois de paie.
type PeriodePaieCreate struct {
	EntrepriseID int64 `json:"entreprise_id" validate:"required,gt=0"`
	Annee        int   `json:"annee" validate:"required,min=2000,max=2100"`
	Mois         int   `json:"mois" validate:"required,min=1,max=12"`
	DateDebut    Date  `json:"date_debut" validate:"required"`
	DateFin      Date  `json:"date_fin" validate:"required"`
}

// PeriodePaieUpdate mise à jour partielle d'une période ouverte.
type PeriodePaieUpdate struct {
	DateDebut Optional[Date] `json:"date_debut"`
	DateFin   Optional[Date] `json:"date_fin"`
}

// PeriodePaieResponse période de paie.
type PeriodePaieResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entreprise_id"`
	Annee        int       `json:"annee"`
	Mois         int       `json:"mois"`
	DateDebut    Date      `json:"date_debut"`
	DateFin      Date      `json:"date_fin"`
	Cloturee     bool      `json:"cloturee"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LigneBulletinCreate gain ou retenue.
type LigneBulletinCreate struct {
	Libelle string          `json:"libelle" validate:"required,notblank,max=255"`
	Type    string          `json:"type" validate:"required,max=20"`
	Montant decimal.Decimal `json:"montant" validate:"dgte0,dprec=2"`
}

// BulletinCreate bulletin d'un employé. Quand des lignes sont fournies, les totaux en sont
// déduits ; sinon total_gains et total_retenues sont pris tels quels.
type BulletinCreate struct {
	EntrepriseID  int64                 `json:"entreprise_id" validate:"required,gt=0"`
	EmployeID     int64                 `json:"employe_id" validate:"required,gt=0"`
	PeriodePaieID int64                 `json:"periode_paie_id" validate:"required,gt=0"`
	SalaireBrut   decimal.Decimal       `json:"salaire_brut" validate:"dgte0,dprec=2"`
	TotalGains    decimal.Decimal       `json:"total_gains" validate:"dgte0,dprec=2"`
	TotalRetenues decimal.Decimal       `json:"total_retenues" validate:"dgte0,dprec=2"`
	Lignes        []LigneBulletinCreate `json:"lignes" validate:"omitempty,dive"`
}

// BulletinUpdate mise à jour d'un bulletin brouillon ; lignes remplace toutes les lignes.
type BulletinUpdate struct {
	SalaireBrut   Optional[decimal.Decimal] `json:"salaire_brut" validate:"omitempty,dgte0,dprec=2"`
	TotalGains    Optional[decimal.Decimal] `json:"total_gains" validate:"omitempty,dgte0,dprec=2"`
	TotalRetenues Optional[decimal.Decimal] `json:"total_retenues" validate:"omitempty,dgte0,dprec=2"`
	Lignes        *[]LigneBulletinCreate    `json:"lignes" validate:"omitempty,dive"`
}

// BulletinPaiement date effective du paiement (aujourd'hui si absente).
type BulletinPaiement struct {
	DatePaiement *Date `json:"date_paiement"`
}

// LigneBulletinResponse ligne de bulletin.
type LigneBulletinResponse struct {
	ID      int64           `json:"id"`
	Libelle string          `json:"libelle"`
	Type    string          `json:"type"`
	Montant decimal.Decimal `json:"montant"`
	Ordre   int             `json:"ordre"`
}

// BulletinResponse bulletin de paie.
type BulletinResponse struct {
	ID            int64                   `json:"id"`
	EntrepriseID  int64                   `json:"entreprise_id"`
	EmployeID     int64                   `json:"employe_id"`
	PeriodePaieID int64                   `json:"periode_paie_id"`
	SalaireBrut   decimal.Decimal         `json:"salaire_brut"`
	TotalGains    decimal.Decimal         `json:"total_gains"`
	TotalRetenues decimal.Decimal         `json:"total_retenues"`
	NetAPayer     decimal.Decimal         `json:"net_a_payer"`
	Statut        string                  `json:"statut"`
	DatePaiement  *Date                   `json:"date_paiement"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
	Lignes        []LigneBulletinResponse `json:"lignes,omitempty"`
}

// BulletinQuery filtres de la liste des bulletins.
type BulletinQuery struct {
	EntrepriseID  int64
	PeriodePaieID *int64
	EmployeID     *int64
	PageRequest
}
