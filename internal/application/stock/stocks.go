package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// GetStock ligne de stock ; l'appartenance se lit sur le dépôt.
func (s *Service) GetStock(ctx context.Context, a tenant.Actor, id int64) (*dto.StockResponse, error) {
	st, err := s.store.Stocks().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.NotFound(msgStockNotFound)
	}
	d, err := s.store.Depots().GetByID(ctx, st.DepotID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NotFound(msgStockNotFound)
	}
	if err := tenant.GuardResource(a, d.EntrepriseID); err != nil {
		return nil, err
	}
	return toStockResponse(st), nil
}

// GetQuantite quantité d'un dépôt × produit × variante ; zéro si aucune ligne n'existe.
func (s *Service) GetQuantite(ctx context.Context, a tenant.Actor, depotID, produitID int64, varianteID *int64) (*dto.QuantiteResponse, error) {
	refs := s.store.References()
	if err := tenant.GuardReferenced(ctx, refs, a, repository.KindDepot, depotID); err != nil {
		return nil, err
	}
	if err := tenant.GuardReferenced(ctx, refs, a, repository.KindProduit, produitID); err != nil {
		return nil, err
	}
	st, err := s.store.Stocks().Find(ctx, repository.StockKey{DepotID: depotID, ProduitID: produitID, VarianteID: varianteID})
	if err != nil {
		return nil, err
	}
	q := decimal.Zero
	if st != nil {
		q = st.Quantite
	}
	return &dto.QuantiteResponse{DepotID: depotID, ProduitID: produitID, VarianteID: varianteID, Quantite: q}, nil
}

// ListByDepot stocks d'un dépôt, ordre naturel.
func (s *Service) ListByDepot(ctx context.Context, a tenant.Actor, depotID int64, pr dto.PageRequest) (dto.ListResponse[*dto.StockResponse], error) {
	var out dto.ListResponse[*dto.StockResponse]
	if err := tenant.GuardReferenced(ctx, s.store.References(), a, repository.KindDepot, depotID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxStocks)
	if err != nil {
		return out, err
	}
	list, err := s.store.Stocks().ListByDepot(ctx, depotID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toStockResponse), page), nil
}

// ListByProduit stocks d'un produit dans tous les dépôts.
func (s *Service) ListByProduit(ctx context.Context, a tenant.Actor, produitID int64, pr dto.PageRequest) (dto.ListResponse[*dto.StockResponse], error) {
	var out dto.ListResponse[*dto.StockResponse]
	if err := tenant.GuardReferenced(ctx, s.store.References(), a, repository.KindProduit, produitID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxStocks)
	if err != nil {
		return out, err
	}
	list, err := s.store.Stocks().ListByProduit(ctx, produitID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toStockResponse), page), nil
}

// Alertes stocks sous le seuil minimum ou au-dessus du maximum du produit.
func (s *Service) Alertes(ctx context.Context, a tenant.Actor, entrepriseID int64, depotID *int64, pr dto.PageRequest) (dto.ListResponse[*dto.AlerteResponse], error) {
	var out dto.ListResponse[*dto.AlerteResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	if err := tenant.GuardOptional(ctx, s.store.References(), a, repository.KindDepot, depotID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxAlertes)
	if err != nil {
		return out, err
	}
	list, err := s.store.Stocks().Alertes(ctx, entrepriseID, depotID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, func(x *entity.AlerteStock) *dto.AlerteResponse {
		return &dto.AlerteResponse{
			StockID:        x.StockID,
			DepotID:        x.DepotID,
			DepotCode:      x.DepotCode,
			ProduitID:      x.ProduitID,
			ProduitCode:    x.ProduitCode,
			ProduitLibelle: x.ProduitLibelle,
			VarianteID:     x.VarianteID,
			Quantite:       x.Quantite,
			SeuilAlerteMin: x.SeuilMin,
			SeuilAlerteMax: x.SeuilMax,
			TypeAlerte:     x.TypeAlerte,
		}
	}), page), nil
}

func toStockResponse(st *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:         st.ID,
		DepotID:    st.DepotID,
		ProduitID:  st.ProduitID,
		VarianteID: st.VarianteID,
		Quantite:   st.Quantite,
		UniteID:    st.UniteID,
		UpdatedAt:  st.UpdatedAt,
	}
}
