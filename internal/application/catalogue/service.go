// Package catalogue gère les produits, leurs variantes et l'arborescence des familles.
package catalogue

import (
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination.
const (
	MaxProduits     = 500
	DefaultProduits = 100
	MaxFamilles     = 500
)

// Types de produit.
const (
	TypeProduit = "produit"
	TypeService = "service"
)

// NiveauRacine niveau d'une famille sans parent.
const NiveauRacine = 1

// Service cas d'usage du catalogue.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	now   func() time.Time
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx, now: time.Now}
}
