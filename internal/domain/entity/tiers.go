package entity

import "time"

// Types de tiers.
const (
	TiersClient      = "client"
	TiersFournisseur = "fournisseur"
	TiersMixte       = "mixte"
)

// Tiers partenaire (client et/ou fournisseur).
type Tiers struct {
	ID            int64     `db:"id"`
	EntrepriseID  int64     `db:"entreprise_id"`
	TypeTiers     string    `db:"type_tiers"`
	Code          string    `db:"code"`
	RaisonSociale string    `db:"raison_sociale"`
	NIU           *string   `db:"niu"`
	RCCM          *string   `db:"rccm"`
	Adresse       *string   `db:"adresse"`
	Ville         *string   `db:"ville"`
	BoitePostale  *string   `db:"boite_postale"`
	Pays          *string   `db:"pays"`
	Telephone     *string   `db:"telephone"`
	Email         *string   `db:"email"`
	Actif         bool      `db:"actif"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// EstClient vrai si le tiers peut être facturé.
func (t *Tiers) EstClient() bool {
	return t.TypeTiers == TiersClient || t.TypeTiers == TiersMixte
}

// EstFournisseur vrai si le tiers peut être fournisseur.
func (t *Tiers) EstFournisseur() bool {
	return t.TypeTiers == TiersFournisseur || t.TypeTiers == TiersMixte
}
