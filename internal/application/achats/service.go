// Package achats gère les dépôts et les réceptions fournisseurs. La validation d'une
// réception fait entrer les quantités reçues en stock dans la même transaction.
package achats

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination.
const (
	MaxDepots     = 200
	MaxReceptions = 200
)

// StockEngine contrôle les articles et applique les mouvements de stock dans une
// transaction ouverte.
type StockEngine interface {
	ControlerArticle(ctx context.Context, tx repository.Store, a tenant.Actor, produitID int64, varianteID *int64) (*entity.Produit, error)
	Appliquer(ctx context.Context, tx repository.Store, a tenant.Actor, in dto.MouvementCreate) (*entity.MouvementStock, error)
}

// Service cas d'usage des achats.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	stock StockEngine
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner, stock StockEngine) *Service {
	return &Service{store: store, tx: tx, stock: stock}
}
