package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// DocumentFilter critères de liste d'une famille de documents (tri date_document desc, id desc).
type DocumentFilter struct {
	EntrepriseID int64
	TypeDocument string
	TiersID      *int64
	EtatID       *int64
	DateFrom     *time.Time
	DateTo       *time.Time
	Search       string // numero
	Page
}

// DocumentRepository en-têtes des documents commerciaux et d'achat.
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	GetByID(ctx context.Context, id int64) (*entity.Document, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entity.Document, error)
	Update(ctx context.Context, d *entity.Document) error
	List(ctx context.Context, f DocumentFilter) ([]*entity.Document, error)
}

// ReceptionFilter critères de liste.
type ReceptionFilter struct {
	EntrepriseID  int64
	FournisseurID *int64
	DepotID       *int64
	Etat          string
	Page
}

// ReceptionRepository réceptions (en-tête + lignes).
type ReceptionRepository interface {
	Create(ctx context.Context, r *entity.Reception) error
	GetWithLignes(ctx context.Context, id int64) (*entity.Reception, error)
	GetForUpdate(ctx context.Context, id int64) (*entity.Reception, error)
	Update(ctx context.Context, r *entity.Reception) error
	List(ctx context.Context, f ReceptionFilter) ([]*entity.Reception, error)
}

// ReglementFilter critères de liste.
type ReglementFilter struct {
	EntrepriseID  int64
	TypeReglement string
	TiersID       *int64
	DateFrom      *time.Time
	DateTo        *time.Time
	Page
}

// ReglementRepository règlements.
type ReglementRepository interface {
	Create(ctx context.Context, r *entity.Reglement) error
	GetByID(ctx context.Context, id int64) (*entity.Reglement, error)
	List(ctx context.Context, f ReglementFilter) ([]*entity.Reglement, error)
	// TotalPourDocument somme des règlements imputés à une facture (client ou fournisseur).
	TotalPourDocument(ctx context.Context, documentID int64) (decimal.Decimal, error)
}

// CompteTresorerieRepository caisses et banques.
type CompteTresorerieRepository interface {
	Create(ctx context.Context, c *entity.CompteTresorerie) error
	GetByID(ctx context.Context, id int64) (*entity.CompteTresorerie, error)
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.CompteTresorerie, error)
}

// ModePaiementRepository modes de paiement.
type ModePaiementRepository interface {
	Create(ctx context.Context, m *entity.ModePaiement) error
	GetByID(ctx context.Context, id int64) (*entity.ModePaiement, error)
	List(ctx context.Context, entrepriseID int64, p Page) ([]*entity.ModePaiement, error)
}
