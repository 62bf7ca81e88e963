package repository

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// StockKey identifie une ligne de stock.
type StockKey struct {
	DepotID    int64
	ProduitID  int64
	VarianteID *int64
}

// StockRepository lignes de stock. Utilisé en transaction pour les mutations.
type StockRepository interface {
	// GetOrCreateForUpdate crée la ligne à zéro si absente (unité = uniteID) puis la verrouille (SELECT ... FOR UPDATE).
	GetOrCreateForUpdate(ctx context.Context, key StockKey, uniteID *int64) (*entity.Stock, error)
	// SetQuantite écrit la nouvelle quantité d'une ligne verrouillée.
	SetQuantite(ctx context.Context, s *entity.Stock) error
	GetByID(ctx context.Context, id int64) (*entity.Stock, error)
	Find(ctx context.Context, key StockKey) (*entity.Stock, error)
	ListByDepot(ctx context.Context, depotID int64, p Page) ([]*entity.Stock, error)
	ListByProduit(ctx context.Context, produitID int64, p Page) ([]*entity.Stock, error)
	// Alertes joint stock × produit × dépôt une fois ; produits supprimés ou non gérés exclus.
	Alertes(ctx context.Context, entrepriseID int64, depotID *int64, p Page) ([]*entity.AlerteStock, error)
}

// MouvementFilter critères de liste des mouvements (tri date_mouvement desc, id desc).
type MouvementFilter struct {
	EntrepriseID  int64
	DepotID       *int64
	ProduitID     *int64
	TypeMouvement string
	DateFrom      *time.Time
	DateTo        *time.Time
	Page
}

// MouvementRepository journal append-only des mouvements.
type MouvementRepository interface {
	Create(ctx context.Context, m *entity.MouvementStock) error
	GetByID(ctx context.Context, id int64) (*entity.MouvementStock, error)
	List(ctx context.Context, f MouvementFilter) ([]*entity.MouvementStock, error)
}
