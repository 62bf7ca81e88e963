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

func tDocuments(t *tables) *table[entity.Document]                 { return t.documents }
func tReceptions(t *tables) *table[entity.Reception]               { return t.receptions }
func tReglements(t *tables) *table[entity.Reglement]               { return t.reglements }
func tComptesTresorerie(t *tables) *table[entity.CompteTresorerie] { return t.comptesTresorerie }
func tModesPaiement(t *tables) *table[entity.ModePaiement]         { return t.modesPaiement }

type documents struct{ s store }

func (r documents) checkNumero(t *tables, d *entity.Document) error {
	return unique(t.documents, "documents", d.ID, func(_ int64, v entity.Document) bool {
		return v.EntrepriseID == d.EntrepriseID && v.TypeDocument == d.TypeDocument && v.Numero == d.Numero
	})
}

func (r documents) Create(_ context.Context, d *entity.Document) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkNumero(t, d); err != nil {
			return err
		}
		d.ID = t.documents.nextID()
		d.CreatedAt, d.UpdatedAt = r.s.now(), r.s.now()
		t.documents.rows[d.ID] = *d
		return nil
	})
}

func (r documents) GetByID(_ context.Context, id int64) (*entity.Document, error) {
	return getByID(r.s, tDocuments, id)
}

func (r documents) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Document, error) {
	return r.GetByID(ctx, id)
}

func (r documents) Update(_ context.Context, d *entity.Document) error {
	return r.s.update(func(t *tables) error {
		if err := r.checkNumero(t, d); err != nil {
			return err
		}
		d.UpdatedAt = r.s.now()
		t.documents.rows[d.ID] = *d
		return nil
	})
}

func (r documents) List(_ context.Context, f repository.DocumentFilter) ([]*entity.Document, error) {
	return list(r.s, tDocuments, func(d entity.Document) bool {
		switch {
		case d.EntrepriseID != f.EntrepriseID || d.TypeDocument != f.TypeDocument:
			return false
		case f.TiersID != nil && d.TiersID != *f.TiersID:
			return false
		case f.EtatID != nil && (d.EtatID == nil || *d.EtatID != *f.EtatID):
			return false
		case f.DateFrom != nil && d.DateDocument.Before(*f.DateFrom):
			return false
		case f.DateTo != nil && d.DateDocument.After(*f.DateTo):
			return false
		}
		return f.Search == "" || containsFold(d.Numero, f.Search)
	}, func(a, b entity.Document) int {
		return cmp.Or(b.DateDocument.Compare(a.DateDocument), cmp.Compare(b.ID, a.ID))
	}, f.Page)
}

type receptions struct{ s store }

func (r receptions) Create(_ context.Context, x *entity.Reception) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.receptions, "receptions", 0, func(_ int64, v entity.Reception) bool {
			return v.EntrepriseID == x.EntrepriseID && v.Numero == x.Numero
		})
		if err != nil {
			return err
		}
		x.ID = t.receptions.nextID()
		x.CreatedAt, x.UpdatedAt = r.s.now(), r.s.now()
		header := *x
		header.Lignes = nil
		t.receptions.rows[x.ID] = header
		for i := range x.Lignes {
			l := &x.Lignes[i]
			l.ID = t.lignesReception.nextID()
			l.ReceptionID = x.ID
			t.lignesReception.rows[l.ID] = *l
		}
		return nil
	})
}

func (r receptions) GetWithLignes(_ context.Context, id int64) (*entity.Reception, error) {
	var out *entity.Reception
	err := r.s.view(func(t *tables) error {
		x, ok := t.receptions.get(id)
		if !ok {
			return nil
		}
		x.Lignes = t.lignesReception.where(func(l entity.LigneReception) bool { return l.ReceptionID == id })
		slices.SortStableFunc(x.Lignes, func(a, b entity.LigneReception) int {
			return cmp.Or(cmp.Compare(a.Ordre, b.Ordre), cmp.Compare(a.ID, b.ID))
		})
		out = &x
		return nil
	})
	return out, err
}

func (r receptions) GetForUpdate(ctx context.Context, id int64) (*entity.Reception, error) {
	return r.GetWithLignes(ctx, id)
}

func (r receptions) Update(_ context.Context, x *entity.Reception) error {
	return r.s.update(func(t *tables) error {
		if _, ok := t.receptions.get(x.ID); !ok {
			return fmt.Errorf("réception %d introuvable", x.ID)
		}
		x.UpdatedAt = r.s.now()
		header := *x
		header.Lignes = nil
		t.receptions.rows[x.ID] = header
		return nil
	})
}

func (r receptions) List(_ context.Context, f repository.ReceptionFilter) ([]*entity.Reception, error) {
	return list(r.s, tReceptions, func(x entity.Reception) bool {
		switch {
		case x.EntrepriseID != f.EntrepriseID:
			return false
		case f.FournisseurID != nil && x.FournisseurID != *f.FournisseurID:
			return false
		case f.DepotID != nil && x.DepotID != *f.DepotID:
			return false
		}
		return f.Etat == "" || x.Etat == f.Etat
	}, func(a, b entity.Reception) int {
		return cmp.Or(b.DateReception.Compare(a.DateReception), cmp.Compare(b.ID, a.ID))
	}, f.Page)
}

type reglements struct{ s store }

func (r reglements) Create(_ context.Context, x *entity.Reglement) error {
	return r.s.update(func(t *tables) error {
		x.ID = t.reglements.nextID()
		x.CreatedAt = r.s.now()
		t.reglements.rows[x.ID] = *x
		return nil
	})
}

func (r reglements) GetByID(_ context.Context, id int64) (*entity.Reglement, error) {
	return getByID(r.s, tReglements, id)
}

func (r reglements) List(_ context.Context, f repository.ReglementFilter) ([]*entity.Reglement, error) {
	return list(r.s, tReglements, func(x entity.Reglement) bool {
		switch {
		case x.EntrepriseID != f.EntrepriseID:
			return false
		case f.TypeReglement != "" && x.TypeReglement != f.TypeReglement:
			return false
		case f.TiersID != nil && x.TiersID != *f.TiersID:
			return false
		case f.DateFrom != nil && x.DateReglement.Before(*f.DateFrom):
			return false
		case f.DateTo != nil && x.DateReglement.After(*f.DateTo):
			return false
		}
		return true
	}, func(a, b entity.Reglement) int {
		return cmp.Or(b.DateReglement.Compare(a.DateReglement), cmp.Compare(b.ID, a.ID))
	}, f.Page)
}

func (r reglements) TotalPourDocument(_ context.Context, documentID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	err := r.s.view(func(t *tables) error {
		for _, x := range t.reglements.rows {
			if x.DocumentID() == documentID {
				total = total.Add(x.Montant)
			}
		}
		return nil
	})
	return total, err
}

type comptesTresorerie struct{ s store }

func (r comptesTresorerie) Create(_ context.Context, c *entity.CompteTresorerie) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.comptesTresorerie, "comptes_tresorerie", 0, func(_ int64, v entity.CompteTresorerie) bool {
			return v.EntrepriseID == c.EntrepriseID && v.Code == c.Code
		})
		if err != nil {
			return err
		}
		c.ID = t.comptesTresorerie.nextID()
		c.CreatedAt = r.s.now()
		t.comptesTresorerie.rows[c.ID] = *c
		return nil
	})
}

func (r comptesTresorerie) GetByID(_ context.Context, id int64) (*entity.CompteTresorerie, error) {
	return getByID(r.s, tComptesTresorerie, id)
}

func (r comptesTresorerie) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.CompteTresorerie, error) {
	return list(r.s, tComptesTresorerie, func(c entity.CompteTresorerie) bool { return c.EntrepriseID == entrepriseID },
		func(a, b entity.CompteTresorerie) int { return cmp.Compare(a.Code, b.Code) }, p)
}

type modesPaiement struct{ s store }

func (r modesPaiement) Create(_ context.Context, m *entity.ModePaiement) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.modesPaiement, "modes_paiement", 0, func(_ int64, v entity.ModePaiement) bool {
			return v.EntrepriseID == m.EntrepriseID && v.Code == m.Code
		})
		if err != nil {
			return err
		}
		m.ID = t.modesPaiement.nextID()
		m.CreatedAt = r.s.now()
		t.modesPaiement.rows[m.ID] = *m
		return nil
	})
}

func (r modesPaiement) GetByID(_ context.Context, id int64) (*entity.ModePaiement, error) {
	return getByID(r.s, tModesPaiement, id)
}

func (r modesPaiement) List(_ context.Context, entrepriseID int64, p repository.Page) ([]*entity.ModePaiement, error) {
	return list(r.s, tModesPaiement, func(m entity.ModePaiement) bool { return m.EntrepriseID == entrepriseID },
		func(a, b entity.ModePaiement) int { return cmp.Compare(a.Code, b.Code) }, p)
}
