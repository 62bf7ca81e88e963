// Package comptabilite porte le plan comptable, les journaux, les périodes et le moteur
// d'écritures en partie double.
package comptabilite

import (
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination des listes du module.
const (
	MaxComptes      = 1000
	MaxJournaux     = 200
	MaxPeriodes     = 100
	MaxEcritures    = 200
	DefaultComptes  = 500
	DefaultPeriodes = 50
)

// Service cas d'usage comptables. Les lectures passent par store, les mutations par tx.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	now   func() time.Time
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx, now: time.Now}
}
