// Package stock porte le moteur de mouvements (entrée, sortie, transfert, inventaire)
// et les lectures de stock : quantités par dépôt ou produit, alertes de seuil.
package stock

import (
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination.
const (
	MaxStocks     = 500
	DefaultStocks = 200
	MaxMouvements = 200
	MaxAlertes    = 200
)

// Service cas d'usage du stock.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	now   func() time.Time
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx, now: time.Now}
}
