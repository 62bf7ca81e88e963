package repository

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// ProduitFilter critères de liste des produits.
type ProduitFilter struct {
	EntrepriseID int64
	FamilleID    *int64
	ActifOnly    bool
	Search       string // code, libelle, code_barre (contient, insensible à la casse)
	Page
}

// ProduitRepository produits ; toutes les lectures excluent les supprimés logiquement.
type ProduitRepository interface {
	Create(ctx context.Context, p *entity.Produit) error
	GetByID(ctx context.Context, id int64) (*entity.Produit, error)
	Update(ctx context.Context, p *entity.Produit) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, f ProduitFilter) ([]*entity.Produit, error)
}

// VarianteRepository variantes (suppression physique).
type VarianteRepository interface {
	Create(ctx context.Context, v *entity.Variante) error
	GetByID(ctx context.Context, id int64) (*entity.Variante, error)
	ListByProduit(ctx context.Context, produitID int64) ([]*entity.Variante, error)
	Delete(ctx context.Context, id int64) error
}

// FamilleRepository arborescence des familles ; lectures hors supprimées.
type FamilleRepository interface {
	Create(ctx context.Context, f *entity.FamilleProduit) error
	GetByID(ctx context.Context, id int64) (*entity.FamilleProduit, error)
	Update(ctx context.Context, f *entity.FamilleProduit) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	List(ctx context.Context, entrepriseID int64, parentID *int64, p Page) ([]*entity.FamilleProduit, error)
}

// DepotRepository dépôts.
type DepotRepository interface {
	Create(ctx context.Context, d *entity.Depot) error
	GetByID(ctx context.Context, id int64) (*entity.Depot, error)
	Update(ctx context.Context, d *entity.Depot) error
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.Depot, error)
}

// TiersFilter critères de liste des tiers.
type TiersFilter struct {
	EntrepriseID int64
	TypeTiers    string
	Search       string // code, raison_sociale
	Page
}

// TiersRepository partenaires.
type TiersRepository interface {
	Create(ctx context.Context, t *entity.Tiers) error
	GetByID(ctx context.Context, id int64) (*entity.Tiers, error)
	Update(ctx context.Context, t *entity.Tiers) error
	List(ctx context.Context, f TiersFilter) ([]*entity.Tiers, error)
}
