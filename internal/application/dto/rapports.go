package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RapportQuery période d'un rapport ; bornes incluses.
type RapportQuery struct {
	EntrepriseID int64
	DateDebut    *time.Time
	DateFin      *time.Time
}

// ChiffreAffairesResponse chiffre d'affaires d'une période.
type ChiffreAffairesResponse struct {
	EntrepriseID    int64           `json:"entreprise_id"`
	DateDebut       Date            `json:"date_debut"`
	DateFin         Date            `json:"date_fin"`
	MontantTotalTTC decimal.Decimal `json:"montant_total_ttc"`
	NombreFactures  int64           `json:"nombre_factures"`
	MontantAvoirs   decimal.Decimal `json:"montant_avoirs_ttc"`
	NombreAvoirs    int64           `json:"nombre_avoirs"`
	MontantNetTTC   decimal.Decimal `json:"montant_net_ttc"`
}

// DashboardResponse synthèse du tableau de bord.
type DashboardResponse struct {
	EntrepriseID     int64           `json:"entreprise_id"`
	PeriodeLabel     *string         `json:"periode_label"`
	CAPeriode        decimal.Decimal `json:"ca_periode"`
	NbFactures       int64           `json:"nb_factures"`
	NbCommandes      int64           `json:"nb_commandes"`
	NbEmployesActifs int64           `json:"nb_employes_actifs"`
}
