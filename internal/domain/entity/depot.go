package entity

import "time"

// Depot lieu de stockage d'une entreprise, distinct d'un point de vente.
type Depot struct {
	ID             int64     `db:"id"`
	EntrepriseID   int64     `db:"entreprise_id"`
	PointDeVenteID *int64    `db:"point_de_vente_id"`
	Code           string    `db:"code"`
	Libelle        string    `db:"libelle"`
	Adresse        *string   `db:"adresse"`
	Ville          *string   `db:"ville"`
	CodePostal     *string   `db:"code_postal"`
	Pays           *string   `db:"pays"` // ISO 3166-1 alpha-3
	Actif          bool      `db:"actif"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
