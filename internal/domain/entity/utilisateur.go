package entity

import "time"

// Utilisateur compte de connexion rattaché à une seule entreprise.
type Utilisateur struct {
	ID           int64      `db:"id"`
	EntrepriseID int64      `db:"entreprise_id"`
	RoleID       int64      `db:"role_id"`
	Login        string     `db:"login"`
	Email        *string    `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Nom          string     `db:"nom"`
	Prenom       *string    `db:"prenom"`
	Actif        bool       `db:"actif"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// Role rôle défini par entreprise.
type Role struct {
	ID           int64  `db:"id"`
	EntrepriseID int64  `db:"entreprise_id"`
	Code         string `db:"code"`
	Libelle      string `db:"libelle"`
}

// Permission couple global (module, action).
type Permission struct {
	ID     int64  `db:"id"`
	Module string `db:"module"`
	Action string `db:"action"`
}

// Actions reconnues par le contrôle des permissions.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)
