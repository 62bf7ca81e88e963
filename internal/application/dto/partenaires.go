package dto

import "time"

// TiersCreate création d'un client, fournisseur ou tiers mixte.
type TiersCreate struct {
	EntrepriseID  int64   `json:"entreprise_id" validate:"required,gt=0"`
	TypeTiers     string  `json:"type_tiers" validate:"required,max=20"`
	Code          string  `json:"code" validate:"required,notblank,max=50"`
	RaisonSociale string  `json:"raison_sociale" validate:"required,notblank,max=255"`
	NIU           *string `json:"niu" validate:"omitempty,niu"`
	RCCM          *string `json:"rccm" validate:"omitempty,rccm"`
	Adresse       *string `json:"adresse" validate:"omitempty,max=500"`
	Ville         *string `json:"ville" validate:"omitempty,max=100"`
	BoitePostale  *string `json:"boite_postale" validate:"omitempty,max=20"`
	Pays          *string `json:"pays" validate:"omitempty,pays"`
	Telephone     *string `json:"telephone" validate:"omitempty,max=30"`
	Email         *string `json:"email" validate:"omitempty,email,max=255"`
	Actif         *bool   `json:"actif"`
}

// TiersUpdate mise à jour partielle d'un tiers.
type TiersUpdate struct {
	TypeTiers     Optional[string] `json:"type_tiers" validate:"omitempty,max=20"`
	Code          Optional[string] `json:"code" validate:"omitempty,notblank,max=50"`
	RaisonSociale Optional[string] `json:"raison_sociale" validate:"omitempty,notblank,max=255"`
	NIU           Optional[string] `json:"niu" validate:"omitempty,niu"`
	RCCM          Optional[string] `json:"rccm" validate:"omitempty,rccm"`
	Adresse       Optional[string] `json:"adresse" validate:"omitempty,max=500"`
	Ville         Optional[string] `json:"ville" validate:"omitempty,max=100"`
	BoitePostale  Optional[string] `json:"boite_postale" validate:"omitempty,max=20"`
	Pays          Optional[string] `json:"pays" validate:"omitempty,pays"`
	Telephone     Optional[string] `json:"telephone" validate:"omitempty,max=30"`
	Email         Optional[string] `json:"email" validate:"omitempty,email,max=255"`
	Actif         Optional[bool]   `json:"actif"`
}

// TiersResponse partenaire.
type TiersResponse struct {
	ID            int64     `json:"id"`
	EntrepriseID  int64     `json:"entreprise_id"`
	TypeTiers     string    `json:"type_tiers"`
	Code          string    `json:"code"`
	RaisonSociale string    `json:"raison_sociale"`
	NIU           *string   `json:"niu"`
	RCCM          *string   `json:"rccm"`
	Adresse       *string   `json:"adresse"`
	Ville         *string   `json:"ville"`
	BoitePostale  *string   `json:"boite_postale"`
	Pays          *string   `json:"pays"`
	Telephone     *string   `json:"telephone"`
	Email         *string   `json:"email"`
	Actif         bool      `json:"actif"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TiersQuery filtres de la liste des tiers.
type TiersQuery struct {
	EntrepriseID int64
	TypeTiers    string
	Search       string
	PageRequest
}
