package stock

import (
	"context"
	"slices"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// CreateMouvement applique un mouvement et renvoie sa trace.
func (s *Service) CreateMouvement(ctx context.Context, a tenant.Actor, in dto.MouvementCreate) (*dto.MouvementResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	var out *entity.MouvementStock
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		m, err := s.Appliquer(ctx, tx, a, in)
		out = m
		return err
	})
	if err != nil {
		return nil, err
	}
	return toMouvementResponse(out), nil
}

// ControlerArticle vérifie qu'un (produit, variante) peut porter du stock : produit du
// tenant avec gerer_stock, variante de ce produit à stock séparé.
func (s *Service) ControlerArticle(ctx context.Context, tx repository.Store, a tenant.Actor, produitID int64, varianteID *int64) (*entity.Produit, error) {
	produit, err := tx.Produits().GetByID(ctx, produitID)
	if err != nil {
		return nil, err
	}
	if produit == nil {
		return nil, domain.NotFound(msgProduitNotFound)
	}
	if err := tenant.GuardResource(a, produit.EntrepriseID); err != nil {
		return nil, err
	}
	if !produit.GererStock {
		return nil, domain.BadRequest(ReasonStockNonGere, msgStockNonGere)
	}
	if varianteID != nil {
		v, err := tx.Variantes().GetByID(ctx, *varianteID)
		if err != nil {
			return nil, err
		}
		if v == nil || v.ProduitID != produit.ID {
			return nil, domain.NotFound(msgVarianteNotFound)
		}
		if !v.StockSepare {
			return nil, domain.BadRequest(ReasonVarianteNonSeparee, msgVarianteNonSeparee)
		}
	}
	return produit, nil
}

// Appliquer contrôle puis applique un mouvement dans la transaction tx : les lignes de stock
// concernées sont verrouillées, la quantité ne devient jamais négative et la trace est
// ajoutée au journal. Utilisé aussi par la validation des réceptions.
func (s *Service) Appliquer(ctx context.Context, tx repository.Store, a tenant.Actor, in dto.MouvementCreate) (*entity.MouvementStock, error) {
	if !slices.Contains(entity.TypesMouvement, in.TypeMouvement) {
		return nil, domain.BadRequest(ReasonTypeInvalide, msgTypeInvalide, in.TypeMouvement)
	}
	if !slices.Contains(entity.TypesReference, in.ReferenceType) {
		return nil, domain.BadRequest(ReasonReferenceInvalide, msgReferenceInvalide, in.ReferenceType)
	}

	refs := tx.References()
	if err := tenant.GuardReferenced(ctx, refs, a, repository.KindDepot, in.DepotID); err != nil {
		return nil, err
	}
	produit, err := s.ControlerArticle(ctx, tx, a, in.ProduitID, in.VarianteID)
	if err != nil {
		return nil, err
	}

	qty := in.Quantite
	if in.TypeMouvement != entity.MouvementInventaire && !qty.IsPositive() {
		return nil, domain.BadRequest(ReasonQuantiteInvalide, msgQuantiteNulle, in.TypeMouvement)
	}
	if in.TypeMouvement == entity.MouvementTransfert {
		if in.DepotDestID == nil {
			return nil, domain.BadRequest(ReasonDestObligatoire, msgDestObligatoire)
		}
		if *in.DepotDestID == in.DepotID {
			return nil, domain.BadRequest(ReasonMemeDepot, msgMemeDepot)
		}
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindDepot, *in.DepotDestID); err != nil {
			return nil, err
		}
	} else if in.DepotDestID != nil {
		return nil, domain.BadRequest(ReasonDestInattendu, msgDestInattendu)
	}

	stocks := tx.Stocks()
	key := repository.StockKey{DepotID: in.DepotID, ProduitID: produit.ID, VarianteID: in.VarianteID}
	lock := func(k repository.StockKey) (*entity.Stock, error) {
		return stocks.GetOrCreateForUpdate(ctx, k, produit.UniteVenteID)
	}

	switch in.TypeMouvement {
	case entity.MouvementEntree:
		st, err := lock(key)
		if err != nil {
			return nil, err
		}
		st.Quantite = st.Quantite.Add(qty)
		if err := stocks.SetQuantite(ctx, st); err != nil {
			return nil, err
		}
	case entity.MouvementSortie:
		st, err := lock(key)
		if err != nil {
			return nil, err
		}
		if st.Quantite.LessThan(qty) {
			return nil, domain.BadRequest(ReasonQuantiteInsuffisante, msgQuantiteInsuff, in.DepotID, in.ProduitID)
		}
		st.Quantite = st.Quantite.Sub(qty)
		if err := stocks.SetQuantite(ctx, st); err != nil {
			return nil, err
		}
	case entity.MouvementTransfert:
		dest := key
		dest.DepotID = *in.DepotDestID
		// Verrous pris par dépôt croissant : deux transferts croisés ne s'interbloquent pas.
		swapped := dest.DepotID < key.DepotID
		first, second := key, dest
		if swapped {
			first, second = dest, key
		}
		l1, err := lock(first)
		if err != nil {
			return nil, err
		}
		l2, err := lock(second)
		if err != nil {
			return nil, err
		}
		orig, cible := l1, l2
		if swapped {
			orig, cible = l2, l1
		}
		if orig.Quantite.LessThan(qty) {
			return nil, domain.BadRequest(ReasonQuantiteInsuffisante, msgQuantiteInsuff, in.DepotID, in.ProduitID)
		}
		orig.Quantite = orig.Quantite.Sub(qty)
		cible.Quantite = cible.Quantite.Add(qty)
		if err := stocks.SetQuantite(ctx, orig); err != nil {
			return nil, err
		}
		if err := stocks.SetQuantite(ctx, cible); err != nil {
			return nil, err
		}
	case entity.MouvementInventaire:
		st, err := lock(key)
		if err != nil {
			return nil, err
		}
		st.Quantite = qty
		if err := stocks.SetQuantite(ctx, st); err != nil {
			return nil, err
		}
	}

	m := &entity.MouvementStock{
		EntrepriseID:  a.EntrepriseID,
		TypeMouvement: in.TypeMouvement,
		DepotID:       in.DepotID,
		DepotDestID:   in.DepotDestID,
		ProduitID:     produit.ID,
		VarianteID:    in.VarianteID,
		Quantite:      qty,
		DateMouvement: s.now().UTC(),
		ReferenceType: in.ReferenceType,
		ReferenceID:   in.ReferenceID,
		Notes:         in.Notes,
		CreatedByID:   a.CreatedBy(),
	}
	if err := tx.Mouvements().Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMouvement trace d'un mouvement de l'entreprise.
func (s *Service) GetMouvement(ctx context.Context, a tenant.Actor, id int64) (*dto.MouvementResponse, error) {
	m, err := s.store.Mouvements().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound(msgMouvementNotFound)
	}
	if err := tenant.GuardResource(a, m.EntrepriseID); err != nil {
		return nil, err
	}
	return toMouvementResponse(m), nil
}

// ListMouvements triés par date_mouvement desc, id desc.
func (s *Service) ListMouvements(ctx context.Context, a tenant.Actor, q dto.MouvementQuery) (dto.ListResponse[*dto.MouvementResponse], error) {
	var out dto.ListResponse[*dto.MouvementResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	page, err := q.Resolve(MaxMouvements)
	if err != nil {
		return out, err
	}
	list, err := s.store.Mouvements().List(ctx, repository.MouvementFilter{
		EntrepriseID:  q.EntrepriseID,
		DepotID:       q.DepotID,
		ProduitID:     q.ProduitID,
		TypeMouvement: q.TypeMouvement,
		DateFrom:      q.DateFrom,
		DateTo:        q.DateTo,
		Page:          page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toMouvementResponse), page), nil
}

func toMouvementResponse(m *entity.MouvementStock) *dto.MouvementResponse {
	return &dto.MouvementResponse{
		ID:            m.ID,
		EntrepriseID:  m.EntrepriseID,
		TypeMouvement: m.TypeMouvement,
		DepotID:       m.DepotID,
		DepotDestID:   m.DepotDestID,
		ProduitID:     m.ProduitID,
		VarianteID:    m.VarianteID,
		Quantite:      m.Quantite,
		DateMouvement: m.DateMouvement,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Notes:         m.Notes,
		CreatedByID:   m.CreatedByID,
		CreatedAt:     m.CreatedAt,
	}
}
