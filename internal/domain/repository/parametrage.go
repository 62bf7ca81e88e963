package repository

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// EntrepriseRepository tenants.
type EntrepriseRepository interface {
	Create(ctx context.Context, e *entity.Entreprise) error
	GetByID(ctx context.Context, id int64) (*entity.Entreprise, error)
}

// UtilisateurRepository comptes de connexion.
type UtilisateurRepository interface {
	Create(ctx context.Context, u *entity.Utilisateur) error
	GetByID(ctx context.Context, id int64) (*entity.Utilisateur, error)
	// FindForLogin recherche par login ou email, sans tenir compte de la casse.
	FindForLogin(ctx context.Context, entrepriseID int64, identifiant string) (*entity.Utilisateur, error)
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

// PermissionRepository rôles, permissions et affectations.
type PermissionRepository interface {
	HasPermission(ctx context.Context, roleID int64, module, action string) (bool, error)
	CreateRole(ctx context.Context, r *entity.Role) error
	// Grant crée la permission (module, action) si besoin et l'accorde au rôle.
	Grant(ctx context.Context, roleID int64, module, action string) error
}

// EtatDocumentRepository référentiel global des états.
type EtatDocumentRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.EtatDocument, error)
	ListByType(ctx context.Context, typeDocument string) ([]*entity.EtatDocument, error)
}
