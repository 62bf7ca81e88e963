package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func tEmployes(t *tables) *table[entity.Employe]         { return t.employes }
func tPeriodesPaie(t *tables) *table[entity.PeriodePaie] { return t.periodesPaie }
func tBulletins(t *tables) *table[entity.BulletinPaie]   { return t.bulletins }

type employes struct{ s store }

func (r employes) Create(_ context.Context, e *entity.Employe) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.employes, "employes", 0, func(_ int64, v entity.Employe) bool {
			return v.EntrepriseID == e.EntrepriseID && v.Matricule == e.Matricule
		})
		if err != nil {
			return err
		}
		e.ID = t.employes.nextID()
		e.CreatedAt = r.s.now()
		t.employes.rows[e.ID] = *e
		return nil
	})
}

func (r employes) GetByID(_ context.Context, id int64) (*entity.Employe, error) {
	return getByID(r.s, tEmployes, id)
}

func (r employes) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.Employe, error) {
	return list(r.s, tEmployes, func(e entity.Employe) bool { return e.EntrepriseID == entrepriseID },
		func(a, b entity.Employe) int { return cmp.Compare(a.Matricule, b.Matricule) }, p)
}

type periodesPaie struct{ s store }

func (r periodesPaie) Create(_ context.Context, p *entity.PeriodePaie) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.periodesPaie, "periodes_paie", 0, func(_ int64, v entity.PeriodePaie) bool {
			return v.EntrepriseID == p.EntrepriseID && v.Annee == p.Annee && v.Mois == p.Mois
		})
		if err != nil {
			return err
		}
		p.ID = t.periodesPaie.nextID()
		p.CreatedAt, p.UpdatedAt = r.s.now(), r.s.now()
		t.periodesPaie.rows[p.ID] = *p
		return nil
	})
}

func (r periodesPaie) GetByID(_ context.Context, id int64) (*entity.PeriodePaie, error) {
	return getByID(r.s, tPeriodesPaie, id)
}

func (r periodesPaie) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodePaie, error) {
	return r.GetByID(ctx, id)
}

func (r periodesPaie) Update(_ context.Context, p *entity.PeriodePaie) error {
	p.UpdatedAt = r.s.now()
	return put(r.s, tPeriodesPaie, p.ID, *p)
}

func (r periodesPaie) List(_ context.Context, entrepriseID int64, annee *int, p repository.Page) ([]*entity.PeriodePaie, error) {
	return list(r.s, tPeriodesPaie, func(x entity.PeriodePaie) bool {
		return x.EntrepriseID == entrepriseID && (annee == nil || x.Annee == *annee)
	}, func(a, b entity.PeriodePaie) int {
		return cmp.Or(cmp.Compare(b.Annee, a.Annee), cmp.Compare(b.Mois, a.Mois))
	}, p)
}

type bulletins struct{ s store }

func insertLignesBulletin(t *tables, b *entity.BulletinPaie) {
	for i := range b.Lignes {
		l := &b.Lignes[i]
		l.ID = t.lignesBulletin.nextID()
		l.BulletinID = b.ID
		t.lignesBulletin.rows[l.ID] = *l
	}
}

func (r bulletins) Create(_ context.Context, b *entity.BulletinPaie) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.bulletins, "bulletins_paie", 0, func(_ int64, v entity.BulletinPaie) bool {
			return v.EntrepriseID == b.EntrepriseID && v.EmployeID == b.EmployeID && v.PeriodePaieID == b.PeriodePaieID
		})
		if err != nil {
			return err
		}
		b.ID = t.bulletins.nextID()
		b.CreatedAt, b.UpdatedAt = r.s.now(), r.s.now()
		header := *b
		header.Lignes = nil
		t.bulletins.rows[b.ID] = header
		insertLignesBulletin(t, b)
		return nil
	})
}

func (r bulletins) GetWithLignes(_ context.Context, id int64) (*entity.BulletinPaie, error) {
	var out *entity.BulletinPaie
	err := r.s.view(func(t *tables) error {
		b, ok := t.bulletins.get(id)
		if !ok {
			return nil
		}
		b.Lignes = t.lignesBulletin.where(func(l entity.LigneBulletin) bool { return l.BulletinID == id })
		slices.SortStableFunc(b.Lignes, func(x, y entity.LigneBulletin) int {
			return cmp.Or(cmp.Compare(x.Ordre, y.Ordre), cmp.Compare(x.ID, y.ID))
		})
		out = &b
		return nil
	})
	return out, err
}

func (r bulletins) Update(_ context.Context, b *entity.BulletinPaie, replaceLignes bool) error {
	return r.s.update(func(t *tables) error {
		if _, ok := t.bulletins.get(b.ID); !ok {
			return fmt.Errorf("bulletin %d introuvable", b.ID)
		}
		b.UpdatedAt = r.s.now()
		header := *b
		header.Lignes = nil
		t.bulletins.rows[b.ID] = header
		if replaceLignes {
			for id, l := range t.lignesBulletin.rows {
				if l.BulletinID == b.ID {
					delete(t.lignesBulletin.rows, id)
				}
			}
			insertLignesBulletin(t, b)
		}
		return nil
	})
}

func (r bulletins) List(_ context.Context, f repository.BulletinFilter) ([]*entity.BulletinPaie, error) {
	return list(r.s, tBulletins, func(b entity.BulletinPaie) bool {
		switch {
		case b.EntrepriseID != f.EntrepriseID:
			return false
		case f.PeriodePaieID != nil && b.PeriodePaieID != *f.PeriodePaieID:
			return false
		}
		return f.EmployeID == nil || b.EmployeID == *f.EmployeID
	}, nil, f.Page)
}
