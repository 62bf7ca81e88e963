// Package paie gère les salariés, les périodes de paie et les bulletins. Une période
// clôturée n'accepte plus de nouveau bulletin ni de modification.
package paie

import (
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination.
const (
	MaxEmployes  = 500
	MaxPeriodes  = 120
	MaxBulletins = 500
)

// Service cas d'usage de la paie.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	now   func() time.Time
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx, now: time.Now}
}
