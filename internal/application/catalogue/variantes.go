package catalogue

import (
	"context"
	"strings"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// CreateVariante ajoute une déclinaison à un produit ; (produit, code) est unique.
func (s *Service) CreateVariante(ctx context.Context, a tenant.Actor, produitID int64, in dto.VarianteCreate) (*dto.VarianteResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	v := &entity.Variante{
		ProduitID:    produitID,
		Code:         strings.TrimSpace(in.Code),
		Libelle:      strings.TrimSpace(in.Libelle),
		CodeBarre:    in.CodeBarre,
		PrixVenteTTC: in.PrixVenteTTC,
		StockSepare:  in.StockSepare,
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if _, err := loadProduit(ctx, tx, a, produitID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Variantes().Create(ctx, v), msgVarianteCodeExists, v.Code)
	})
	if err != nil {
		return nil, err
	}
	return toVarianteResponse(v), nil
}

// ListVariantes variantes d'un produit, triées par code.
func (s *Service) ListVariantes(ctx context.Context, a tenant.Actor, produitID int64) ([]*dto.VarianteResponse, error) {
	if _, err := loadProduit(ctx, s.store, a, produitID); err != nil {
		return nil, err
	}
	list, err := s.store.Variantes().ListByProduit(ctx, produitID)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, toVarianteResponse), nil
}

// DeleteVariante suppression physique.
func (s *Service) DeleteVariante(ctx context.Context, a tenant.Actor, produitID, id int64) error {
	return s.tx.Run(ctx, func(tx repository.Store) error {
		if _, err := loadProduit(ctx, tx, a, produitID); err != nil {
			return err
		}
		v, err := tx.Variantes().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if v == nil || v.ProduitID != produitID {
			return domain.NotFound(msgVarianteNotFound)
		}
		return tx.Variantes().Delete(ctx, id)
	})
}

func toVarianteResponse(v *entity.Variante) *dto.VarianteResponse {
	return &dto.VarianteResponse{
		ID:           v.ID,
		ProduitID:    v.ProduitID,
		Code:         v.Code,
		Libelle:      v.Libelle,
		CodeBarre:    v.CodeBarre,
		PrixVenteTTC: v.PrixVenteTTC,
		StockSepare:  v.StockSepare,
		Actif:        v.Actif,
		CreatedAt:    v.CreatedAt,
	}
}
