package dto

import "time"

// EntrepriseResponse tenant de l'appelant.
type EntrepriseResponse struct {
	ID            int64     `json:"id"`
	Code          string    `json:"code"`
	RaisonSociale string    `json:"raison_sociale"`
	NIU           *string   `json:"niu"`
	RCCM          *string   `json:"rccm"`
	Adresse       *string   `json:"adresse"`
	Ville         *string   `json:"ville"`
	BoitePostale  *string   `json:"boite_postale"`
	Telephone     *string   `json:"telephone"`
	Email         *string   `json:"email"`
	Pays          string    `json:"pays"`
	Devise        string    `json:"devise"`
	Actif         bool      `json:"actif"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
