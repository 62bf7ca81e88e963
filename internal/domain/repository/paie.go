package repository

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// EmployeRepository salariés.
type EmployeRepository interface {
	Create(ctx context.Context, e *entity.Employe) error
	GetByID(ctx context.Context, id int64) (*entity.Employe, error)
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.Employe, error)
}

// PeriodePaieRepository périodes de paie, (entreprise, annee, mois) unique.
type PeriodePaieRepository interface {
	Create(ctx context.Context, p *entity.PeriodePaie) error
	GetByID(ctx context.Context, id int64) (*entity.PeriodePaie, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodePaie, error)
	Update(ctx context.Context, p *entity.PeriodePaie) error
	List(ctx context.Context, entrepriseID int64, annee *int, p Page) ([]*entity.PeriodePaie, error)
}

// BulletinFilter critères de liste.
type BulletinFilter struct {
	EntrepriseID  int64
	PeriodePaieID *int64
	EmployeID     *int64
	Page
}

// BulletinRepository bulletins (en-tête + lignes), (entreprise, employe, periode) unique.
type BulletinRepository interface {
	Create(ctx context.Context, b *entity.BulletinPaie) error
	GetWithLignes(ctx context.Context, id int64) (*entity.BulletinPaie, error)
	// Update met à jour l'en-tête ; si replaceLignes, les lignes sont remplacées par b.Lignes.
	Update(ctx context.Context, b *entity.BulletinPaie, replaceLignes bool) error
	List(ctx context.Context, f BulletinFilter) ([]*entity.BulletinPaie, error)
}
