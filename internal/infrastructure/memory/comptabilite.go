package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func tComptes(t *tables) *table[entity.CompteComptable]     { return t.comptes }
func tJournaux(t *tables) *table[entity.JournalComptable]   { return t.journaux }
func tPeriodes(t *tables) *table[entity.PeriodeComptable]   { return t.periodes }
func tEcritures(t *tables) *table[entity.EcritureComptable] { return t.ecritures }

type comptes struct{ s store }

func (r comptes) checkNumero(t *tables, c *entity.CompteComptable) error {
	return unique(t.comptes, "comptes_comptables", c.ID, func(_ int64, v entity.CompteComptable) bool {
		return v.EntrepriseID == c.EntrepriseID && v.Numero == c.Numero
	})
}

func (r comptes) Create(_ context.Context, c *entity.CompteComptable) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkNumero(t, c); err != nil {
			return err
		}
		c.ID = t.comptes.nextID()
		c.CreatedAt, c.UpdatedAt = r.s.now(), r.s.now()
		t.comptes.rows[c.ID] = *c
		return nil
	})
}

func (r comptes) GetByID(_ context.Context, id int64) (*entity.CompteComptable, error) {
	return getByID(r.s, tComptes, id)
}

func (r comptes) Update(_ context.Context, c *entity.CompteComptable) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkNumero(t, c); err != nil {
			return err
		}
		c.UpdatedAt = r.s.now()
		t.comptes.rows[c.ID] = *c
		return nil
	})
}

func (r comptes) List(_ context.Context, entrepriseID int64, actifOnly bool, p repository.Page) ([]*entity.CompteComptable, error) {
	return list(r.s, tComptes, func(c entity.CompteComptable) bool {
		return c.EntrepriseID == entrepriseID && (!actifOnly || c.Actif)
	}, func(a, b entity.CompteComptable) int { return cmp.Compare(a.Numero, b.Numero) }, p)
}

func (r comptes) Solde(_ context.Context, compteID int64) (*entity.SoldeCompte, error) {
	out := &entity.SoldeCompte{CompteID: compteID, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	err := r.s.view(func(t *tables) error {
		for _, l := range t.lignesEcriture.rows {
			if l.CompteID == compteID {
				out.TotalDebit = out.TotalDebit.Add(l.Debit)
				out.TotalCredit = out.TotalCredit.Add(l.Credit)
			}
		}
		return nil
	})
	return out, err
}

type journaux struct{ s store }

func (r journaux) checkCode(t *tables, j *entity.JournalComptable) error {
	return unique(t.journaux, "journaux_comptables", j.ID, func(_ int64, v entity.JournalComptable) bool {
		return v.EntrepriseID == j.EntrepriseID && v.Code == j.Code
	})
}

func (r journaux) Create(_ context.Context, j *entity.JournalComptable) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, j); err != nil {
			return err
		}
		j.ID = t.journaux.nextID()
		j.CreatedAt, j.UpdatedAt = r.s.now(), r.s.now()
		t.journaux.rows[j.ID] = *j
		return nil
	})
}

func (r journaux) GetByID(_ context.Context, id int64) (*entity.JournalComptable, error) {
	return getByID(r.s, tJournaux, id)
}

func (r journaux) Update(_ context.Context, j *entity.JournalComptable) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkCode(t, j); err != nil {
			return err
		}
		j.UpdatedAt = r.s.now()
		t.journaux.rows[j.ID] = *j
		return nil
	})
}

func (r journaux) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.JournalComptable, error) {
	return list(r.s, tJournaux, func(j entity.JournalComptable) bool { return j.EntrepriseID == entrepriseID },
		func(a, b entity.JournalComptable) int { return cmp.Compare(a.Code, b.Code) }, p)
}

type periodes struct{ s store }

func (r periodes) Create(_ context.Context, p *entity.PeriodeComptable) error {
	return r.s.update(func(t *tables) error {
		p.ID = t.periodes.nextID()
		p.CreatedAt, p.UpdatedAt = r.s.now(), r.s.now()
		t.periodes.rows[p.ID] = *p
		return nil
	})
}

func (r periodes) GetByID(_ context.Context, id int64) (*entity.PeriodeComptable, error) {
	return getByID(r.s, tPeriodes, id)
}

func (r periodes) GetByIDForShare(ctx context.Context, id int64) (*entity.PeriodeComptable, error) {
	return r.GetByID(ctx, id)
}

func (r periodes) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodeComptable, error) {
	return r.GetByID(ctx, id)
}

func (r periodes) Update(_ context.Context, p *entity.PeriodeComptable) error {
	p.UpdatedAt = r.s.now()
	return put(r.s, tPeriodes, p.ID, *p)
}

func (r periodes) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.PeriodeComptable, error) {
	return list(r.s, tPeriodes, func(x entity.PeriodeComptable) bool { return x.EntrepriseID == entrepriseID },
		func(a, b entity.PeriodeComptable) int {
			return cmp.Or(b.DateDebut.Compare(a.DateDebut), cmp.Compare(b.ID, a.ID))
		}, p)
}

func (r periodes) FindClotureeCouvrant(_ context.Context, entrepriseID int64, date time.Time) (*entity.PeriodeComptable, error) {
	var out *entity.PeriodeComptable
	err := r.s.view(func(t *tables) error {
		for _, p := range t.periodes.sorted() {
			if p.EntrepriseID == entrepriseID && p.Cloturee && p.Contient(date) {
				out = &p
				return nil
			}
		}
		return nil
	})
	return out, err
}

type ecritures struct{ s store }

func (r ecritures) Create(_ context.Context, e *entity.EcritureComptable) error {
	return r.s.update(func(t *tables) error {
		e.ID = t.ecritures.nextID()
		e.CreatedAt = r.s.now()
		header := *e
		header.Lignes = nil
		t.ecritures.rows[e.ID] = header
		for i := range e.Lignes {
			l := &e.Lignes[i]
			l.ID = t.lignesEcriture.nextID()
			l.EcritureID = e.ID
			t.lignesEcriture.rows[l.ID] = *l
		}
		return nil
	})
}

func (r ecritures) GetWithLignes(_ context.Context, id int64) (*entity.EcritureComptable, error) {
	var out *entity.EcritureComptable
	err := r.s.view(func(t *tables) error {
		e, ok := t.ecritures.get(id)
		if !ok {
			return nil
		}
		e.Lignes = t.lignesEcriture.where(func(l entity.LigneEcriture) bool { return l.EcritureID == id })
		slices.SortStableFunc(e.Lignes, func(a, b entity.LigneEcriture) int {
			return cmp.Or(cmp.Compare(a.Ordre, b.Ordre), cmp.Compare(a.ID, b.ID))
		})
		out = &e
		return nil
	})
	return out, err
}

func (r ecritures) List(_ context.Context, f repository.EcritureFilter) ([]*entity.EcritureComptable, error) {
	return list(r.s, tEcritures, func(e entity.EcritureComptable) bool {
		switch {
		case e.EntrepriseID != f.EntrepriseID:
			return false
		case f.JournalID != nil && e.JournalID != *f.JournalID:
			return false
		case f.PeriodeID != nil && (e.PeriodeID == nil || *e.PeriodeID != *f.PeriodeID):
			return false
		case f.DateFrom != nil && e.DateEcriture.Before(*f.DateFrom):
			return false
		case f.DateTo != nil && e.DateEcriture.After(*f.DateTo):
			return false
		}
		return true
	}, func(a, b entity.EcritureComptable) int {
		return cmp.Or(b.DateEcriture.Compare(a.DateEcriture), cmp.Compare(b.ID, a.ID))
	}, f.Page)
}
