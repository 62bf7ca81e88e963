package memory

import (
	"cmp"
	"context"
	"strings"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func tProduits(t *tables) *table[entity.Produit]        { return t.produits }
func tVariantes(t *tables) *table[entity.Variante]      { return t.variantes }
func tFamilles(t *tables) *table[entity.FamilleProduit] { return t.familles }
func tDepots(t *tables) *table[entity.Depot]            { return t.depots }
func tTiers(t *tables) *table[entity.Tiers]             { return t.tiers }

type produits struct{ s store }

func (r produits) checkCode(t *tables, p *entity.Produit) error {
	return unique(t.produits, "produits", p.ID, func(_ int64, v entity.Produit) bool {
		return v.DeletedAt == nil && v.EntrepriseID == p.EntrepriseID && v.Code == p.Code
	})
}

func (r produits) Create(_ context.Context, p *entity.Produit) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, p); err != nil {
			return err
		}
		p.ID = t.produits.nextID()
		p.CreatedAt, p.UpdatedAt = r.s.now(), r.s.now()
		t.produits.rows[p.ID] = *p
		return nil
	})
}

func (r produits) GetByID(_ context.Context, id int64) (*entity.Produit, error) {
	p, err := getByID(r.s, tProduits, id)
	if err != nil || p == nil || p.DeletedAt != nil {
		return nil, err
	}
	return p, nil
}

func (r produits) Update(_ context.Context, p *entity.Produit) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, p); err != nil {
			return err
		}
		p.UpdatedAt = r.s.now()
		t.produits.rows[p.ID] = *p
		return nil
	})
}

func (r produits) SoftDelete(_ context.Context, id int64, at time.Time) error {
	return r.s.update(func(t *tables) error {
		if p, ok := t.produits.get(id); ok && p.DeletedAt == nil {
			p.DeletedAt = &at
			p.UpdatedAt = at
			t.produits.rows[id] = p
		}
		return nil
	})
}

func (r produits) List(_ context.Context, f repository.ProduitFilter) ([]*entity.Produit, error) {
	return list(r.s, tProduits, func(p entity.Produit) bool {
		if p.DeletedAt != nil || p.EntrepriseID != f.EntrepriseID {
			return false
		}
		if f.FamilleID != nil && (p.FamilleID == nil || *p.FamilleID != *f.FamilleID) {
			return false
		}
		if f.ActifOnly && !p.Actif {
			return false
		}
		if f.Search != "" {
			return containsFold(p.Code, f.Search) || containsFold(p.Libelle, f.Search) ||
				(p.CodeBarre != nil && containsFold(*p.CodeBarre, f.Search))
		}
		return true
	}, func(a, b entity.Produit) int { return cmp.Compare(a.Code, b.Code) }, f.Page)
}

type variantes struct{ s store }

func (r variantes) Create(_ context.Context, v *entity.Variante) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.variantes, "variantes", 0, func(_ int64, x entity.Variante) bool {
			return x.ProduitID == v.ProduitID && x.Code == v.Code
		})
		if err != nil {
			return err
		}
		v.ID = t.variantes.nextID()
		v.CreatedAt = r.s.now()
		t.variantes.rows[v.ID] = *v
		return nil
	})
}

func (r variantes) GetByID(_ context.Context, id int64) (*entity.Variante, error) {
	return getByID(r.s, tVariantes, id)
}

func (r variantes) ListByProduit(_ context.Context, produitID int64) ([]*entity.Variante, error) {
	return list(r.s, tVariantes, func(v entity.Variante) bool { return v.ProduitID == produitID },
		func(a, b entity.Variante) int { return cmp.Compare(a.Code, b.Code) }, repository.Page{})
}

func (r variantes) Delete(_ context.Context, id int64) error {
	return r.s.update(func(t *tables) error {
		delete(t.variantes.rows, id)
		return nil
	})
}

type familles struct{ s store }

func (r familles) checkCode(t *tables, f *entity.FamilleProduit) error {
	return unique(t.familles, "familles_produits", f.ID, func(_ int64, v entity.FamilleProduit) bool {
		return v.DeletedAt == nil && v.EntrepriseID == f.EntrepriseID && v.Code == f.Code
	})
}

func (r familles) Create(_ context.Context, f *entity.FamilleProduit) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, f); err != nil {
			return err
		}
		f.ID = t.familles.nextID()
		f.CreatedAt, f.UpdatedAt = r.s.now(), r.s.now()
		t.familles.rows[f.ID] = *f
		return nil
	})
}

func (r familles) GetByID(_ context.Context, id int64) (*entity.FamilleProduit, error) {
	f, err := getByID(r.s, tFamilles, id)
	if err != nil || f == nil || f.DeletedAt != nil {
		return nil, err
	}
	return f, nil
}

func (r familles) Update(_ context.Context, f *entity.FamilleProduit) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, f); err != nil {
			return err
		}
		f.UpdatedAt = r.s.now()
		t.familles.rows[f.ID] = *f
		return nil
	})
}

func (r familles) SoftDelete(_ context.Context, id int64, at time.Time) error {
	return r.s.update(func(t *tables) error {
		if f, ok := t.familles.get(id); ok && f.DeletedAt == nil {
			f.DeletedAt = &at
			f.UpdatedAt = at
			t.familles.rows[id] = f
		}
		return nil
	})
}

func (r familles) List(_ context.Context, entrepriseID int64, parentID *int64, p repository.Page) ([]*entity.FamilleProduit, error) {
	return list(r.s, tFamilles, func(f entity.FamilleProduit) bool {
		if f.DeletedAt != nil || f.EntrepriseID != entrepriseID {
			return false
		}
		return parentID == nil || (f.ParentID != nil && *f.ParentID == *parentID)
	}, func(a, b entity.FamilleProduit) int {
		return cmp.Or(cmp.Compare(a.Niveau, b.Niveau), cmp.Compare(a.Code, b.Code))
	}, p)
}

type depots struct{ s store }

func (r depots) checkCode(t *tables, d *entity.Depot) error {
	return unique(t.depots, "depots", d.ID, func(_ int64, v entity.Depot) bool {
		return v.EntrepriseID == d.EntrepriseID && v.Code == d.Code
	})
}

func (r depots) Create(_ context.Context, d *entity.Depot) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, d); err != nil {
			return err
		}
		d.ID = t.depots.nextID()
		d.CreatedAt, d.UpdatedAt = r.s.now(), r.s.now()
		t.depots.rows[d.ID] = *d
		return nil
	})
}

func (r depots) GetByID(_ context.Context, id int64) (*entity.Depot, error) {
	return getByID(r.s, tDepots, id)
}

func (r depots) Update(_ context.Context, d *entity.Depot) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, d); err != nil {
			return err
		}
		d.UpdatedAt = r.s.now()
		t.depots.rows[d.ID] = *d
		return nil
	})
}

func (r depots) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.Depot, error) {
	return list(r.s, tDepots, func(d entity.Depot) bool { return d.EntrepriseID == entrepriseID },
		func(a, b entity.Depot) int { return cmp.Compare(a.Code, b.Code) }, p)
}

type tiersRepo struct{ s store }

func (r tiersRepo) checkCode(t *tables, x *entity.Tiers) error {
	return unique(t.tiers, "tiers", x.ID, func(_ int64, v entity.Tiers) bool {
		return v.EntrepriseID == x.EntrepriseID && v.Code == x.Code
	})
}

func (r tiersRepo) Create(_ context.Context, x *entity.Tiers) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, x); err != nil {
			return err
		}
		x.ID = t.tiers.nextID()
		x.CreatedAt, x.UpdatedAt = r.s.now(), r.s.now()
		t.tiers.rows[x.ID] = *x
		return nil
	})
}

func (r tiersRepo) GetByID(_ context.Context, id int64) (*entity.Tiers, error) {
	return getByID(r.s, tTiers, id)
}

func (r tiersRepo) Update(_ context.Context, x *entity.Tiers) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, x); err != nil {
			return err
		}
		x.UpdatedAt = r.s.now()
		t.tiers.rows[x.ID] = *x
		return nil
	})
}

func (r tiersRepo) List(_ context.Context, f repository.TiersFilter) ([]*entity.Tiers, error) {
	return list(r.s, tTiers, func(x entity.Tiers) bool {
		if x.EntrepriseID != f.EntrepriseID {
			return false
		}
		if f.TypeTiers != "" && x.TypeTiers != f.TypeTiers {
			return false
		}
		return f.Search == "" || containsFold(x.Code, f.Search) || containsFold(x.RaisonSociale, f.Search)
	}, func(a, b entity.Tiers) int { return cmp.Compare(a.Code, b.Code) }, f.Page)
}
