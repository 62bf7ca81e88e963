package entity

import "time"

// Entreprise racine d'un tenant : toute donnée métier lui appartient.
type Entreprise struct {
	ID            int64     `db:"id"`
	Code          string    `db:"code"`
	RaisonSociale string    `db:"raison_sociale"`
	NIU           *string   `db:"niu"`  // NIU DGI, unique globalement
	RCCM          *string   `db:"rccm"` // registre OHADA
	Adresse       *string   `db:"adresse"`
	Ville         *string   `db:"ville"`
	BoitePostale  *string   `db:"boite_postale"`
	Telephone     *string   `db:"telephone"`
	Email         *string   `db:"email"`
	Pays          string    `db:"pays"`   // ISO 3166-1 alpha-3
	Devise        string    `db:"devise"` // ISO 4217
	Actif         bool      `db:"actif"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// PointDeVente point de vente d'une entreprise.
type PointDeVente struct {
	ID           int64  `db:"id"`
	EntrepriseID int64  `db:"entreprise_id"`
	Code         string `db:"code"`
	Libelle      string `db:"libelle"`
	Actif        bool   `db:"actif"`
}

// Devise référentiel global ISO 4217.
type Devise struct {
	ID        int64  `db:"id"`
	Code      string `db:"code"`
	Libelle   string `db:"libelle"`
	Symbole   string `db:"symbole"`
	Decimales int    `db:"decimales"`
	Actif     bool   `db:"actif"`
}

// EtatDocument libellé de statut global, clé (type_document, code).
type EtatDocument struct {
	ID           int64  `db:"id"`
	TypeDocument string `db:"type_document"`
	Code         string `db:"code"`
	Libelle      string `db:"libelle"`
	Ordre        int    `db:"ordre"`
}
