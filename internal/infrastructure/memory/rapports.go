package memory

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

type rapports struct{ s store }

func (r rapports) TotalDocuments(_ context.Context, f repository.TotalFilter) (repository.Total, error) {
	out := repository.Total{MontantTTC: decimal.Zero}
	err := r.s.view(func(t *tables) error {
		for _, d := range t.documents.rows {
			switch {
			case d.EntrepriseID != f.EntrepriseID || d.TypeDocument != f.TypeDocument:
				continue
			case len(f.TypesFacture) > 0 && !slices.Contains(f.TypesFacture, typeFacture(d)):
				continue
			case f.DateFrom != nil && d.DateDocument.Before(*f.DateFrom):
				continue
			case f.DateTo != nil && d.DateDocument.After(*f.DateTo):
				continue
			}
			out.Nombre++
			out.MontantTTC = out.MontantTTC.Add(d.MontantTTC)
		}
		return nil
	})
	return out, err
}

func (r rapports) CompterEmployesActifs(_ context.Context, entrepriseID int64) (int64, error) {
	var n int64
	err := r.s.view(func(t *tables) error {
		for _, e := range t.employes.rows {
			if e.EntrepriseID == entrepriseID && e.Actif {
				n++
			}
		}
		return nil
	})
	return n, err
}

func typeFacture(d entity.Document) string {
	if d.TypeFacture == nil {
		return entity.TypeFactureFacture
	}
	return *d.TypeFacture
}
