package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func tStocks(t *tables) *table[entity.Stock]              { return t.stocks }
func tMouvements(t *tables) *table[entity.MouvementStock] { return t.mouvements }

func sameVariante(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func findStock(t *tables, key repository.StockKey) (entity.Stock, bool) {
	for _, s := range t.stocks.rows {
		if s.DepotID == key.DepotID && s.ProduitID == key.ProduitID && sameVariante(s.VarianteID, key.VarianteID) {
			return s, true
		}
	}
	return entity.Stock{}, false
}

type stocks struct{ s store }

func (r stocks) GetOrCreateForUpdate(_ context.Context, key repository.StockKey, uniteID *int64) (*entity.Stock, error) {
	var out entity.Stock
	err := r.s.update(func(t *tables) error {
		if s, ok := findStock(t, key); ok {
			out = s
			return nil
		}
		out = entity.Stock{
			ID:         t.stocks.nextID(),
			DepotID:    key.DepotID,
			ProduitID:  key.ProduitID,
			VarianteID: key.VarianteID,
			Quantite:   decimal.Zero,
			UniteID:    uniteID,
			UpdatedAt:  r.s.now(),
		}
		t.stocks.rows[out.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r stocks) SetQuantite(_ context.Context, s *entity.Stock) error {
	return r.s.update(func(t *tables) error {
		cur, ok := t.stocks.get(s.ID)
		if !ok {
			return fmt.Errorf("stock %d introuvable", s.ID)
		}
		cur.Quantite = s.Quantite
		cur.UpdatedAt = r.s.now()
		t.stocks.rows[s.ID] = cur
		s.UpdatedAt = cur.UpdatedAt
		return nil
	})
}

func (r stocks) GetByID(_ context.Context, id int64) (*entity.Stock, error) {
	return getByID(r.s, tStocks, id)
}

func (r stocks) Find(_ context.Context, key repository.StockKey) (*entity.Stock, error) {
	var out *entity.Stock
	err := r.s.view(func(t *tables) error {
		if s, ok := findStock(t, key); ok {
			out = &s
		}
		return nil
	})
	return out, err
}

func (r stocks) ListByDepot(_ context.Context, depotID int64, p repository.Page) ([]*entity.Stock, error) {
	return list(r.s, tStocks, func(s entity.Stock) bool { return s.DepotID == depotID }, nil, p)
}

func (r stocks) ListByProduit(_ context.Context, produitID int64, p repository.Page) ([]*entity.Stock, error) {
	return list(r.s, tStocks, func(s entity.Stock) bool { return s.ProduitID == produitID }, nil, p)
}

func (r stocks) Alertes(_ context.Context, entrepriseID int64, depotID *int64, p repository.Page) ([]*entity.AlerteStock, error) {
	var out []entity.AlerteStock
	err := r.s.view(func(t *tables) error {
		for _, s := range t.stocks.sorted() {
			if depotID != nil && s.DepotID != *depotID {
				continue
			}
			d, ok := t.depots.get(s.DepotID)
			if !ok || d.EntrepriseID != entrepriseID {
				continue
			}
			prod, ok := t.produits.get(s.ProduitID)
			if !ok || prod.DeletedAt != nil || !prod.GererStock {
				continue
			}
			var typ string
			switch {
			case prod.SeuilAlerteMin != nil && s.Quantite.LessThan(*prod.SeuilAlerteMin):
				typ = entity.AlerteSousSeuil
			case prod.SeuilAlerteMax != nil && s.Quantite.GreaterThan(*prod.SeuilAlerteMax):
				typ = entity.AlerteAuDessusMax
			default:
				continue
			}
			out = append(out, entity.AlerteStock{
				StockID:        s.ID,
				DepotID:        d.ID,
				DepotCode:      d.Code,
				ProduitID:      prod.ID,
				ProduitCode:    prod.Code,
				ProduitLibelle: prod.Libelle,
				VarianteID:     s.VarianteID,
				Quantite:       s.Quantite,
				SeuilMin:       prod.SeuilAlerteMin,
				SeuilMax:       prod.SeuilAlerteMax,
				TypeAlerte:     typ,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(out, func(x, y entity.AlerteStock) int {
		return cmp.Or(cmp.Compare(x.DepotCode, y.DepotCode), cmp.Compare(x.ProduitCode, y.ProduitCode), cmp.Compare(x.StockID, y.StockID))
	})
	return ptrs(paginate(out, p)), nil
}

type mouvements struct{ s store }

func (r mouvements) Create(_ context.Context, m *entity.MouvementStock) error {
	return r.s.update(func(t *tables) error {
		m.ID = t.mouvements.nextID()
		m.CreatedAt = r.s.now()
		if m.DateMouvement.IsZero() {
			m.DateMouvement = m.CreatedAt
		}
		t.mouvements.rows[m.ID] = *m
		return nil
	})
}

func (r mouvements) GetByID(_ context.Context, id int64) (*entity.MouvementStock, error) {
	return getByID(r.s, tMouvements, id)
}

func (r mouvements) List(_ context.Context, f repository.MouvementFilter) ([]*entity.MouvementStock, error) {
	return list(r.s, tMouvements, func(m entity.MouvementStock) bool {
		switch {
		case m.EntrepriseID != f.EntrepriseID:
			return false
		case f.DepotID != nil && m.DepotID != *f.DepotID && (m.DepotDestID == nil || *m.DepotDestID != *f.DepotID):
			return false
		case f.ProduitID != nil && m.ProduitID != *f.ProduitID:
			return false
		case f.TypeMouvement != "" && m.TypeMouvement != f.TypeMouvement:
			return false
		case f.DateFrom != nil && m.DateMouvement.Before(*f.DateFrom):
			return false
		case f.DateTo != nil && m.DateMouvement.After(*f.DateTo):
			return false
		}
		return true
	}, func(a, b entity.MouvementStock) int {
		return cmp.Or(b.DateMouvement.Compare(a.DateMouvement), cmp.Compare(b.ID, a.ID))
	}, f.Page)
}
