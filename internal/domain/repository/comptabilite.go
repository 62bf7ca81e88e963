package repository

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// CompteRepository plan comptable.
type CompteRepository interface {
	Create(ctx context.Context, c *entity.CompteComptable) error
	GetByID(ctx context.Context, id int64) (*entity.CompteComptable, error)
	Update(ctx context.Context, c *entity.CompteComptable) error
	List(ctx context.Context, entrepriseID int64, actifOnly bool, p Page) ([]*entity.CompteComptable, error)
	Solde(ctx context.Context, compteID int64) (*entity.SoldeCompte, error)
}

// JournalRepository journaux.
type JournalRepository interface {
	Create(ctx context.Context, j *entity.JournalComptable) error
	GetByID(ctx context.Context, id int64) (*entity.JournalComptable, error)
	Update(ctx context.Context, j *entity.JournalComptable) error
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.JournalComptable, error)
}

// PeriodeRepository périodes comptables.
type PeriodeRepository interface {
	Create(ctx context.Context, p *entity.PeriodeComptable) error
	GetByID(ctx context.Context, id int64) (*entity.PeriodeComptable, error)
	// GetByIDForShare verrou partagé : une clôture concurrente attend la fin de l'écriture.
	GetByIDForShare(ctx context.Context, id int64) (*entity.PeriodeComptable, error)
	// GetByIDForUpdate verrou exclusif (clôture, modification).
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodeComptable, error)
	Update(ctx context.Context, p *entity.PeriodeComptable) error
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.PeriodeComptable, error)
	// FindClotureeCouvrant période clôturée de l'entreprise contenant la date, nil sinon.
	FindClotureeCouvrant(ctx context.Context, entrepriseID int64, date time.Time) (*entity.PeriodeComptable, error)
}

// EcritureFilter critères de liste (tri date_ecriture desc, id desc).
type EcritureFilter struct {
	EntrepriseID int64
	JournalID    *int64
	PeriodeID    *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	Page
}

// EcritureRepository écritures : l'en-tête et les lignes sont écrits ensemble.
type EcritureRepository interface {
	Create(ctx context.Context, e *entity.EcritureComptable) error
	// GetWithLignes renvoie l'en-tête et les lignes triées par (ordre, id).
	GetWithLignes(ctx context.Context, id int64) (*entity.EcritureComptable, error)
	List(ctx context.Context, f EcritureFilter) ([]*entity.EcritureComptable, error)
}
