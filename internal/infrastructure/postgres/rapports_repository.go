package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var _ repository.RapportRepository = RapportRepo{}

// RapportRepo agrégats SQL des tableaux de bord.
type RapportRepo struct{ q Querier }

func (r RapportRepo) TotalDocuments(ctx context.Context, f repository.TotalFilter) (repository.Total, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	w.add("type_document = ?", f.TypeDocument)
	if len(f.TypesFacture) > 0 {
		w.add("COALESCE(type_facture, 'facture') = ANY(?)", f.TypesFacture)
	}
	if f.DateFrom != nil {
		w.add("date_document >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date_document <= ?", *f.DateTo)
	}
	out := repository.Total{MontantTTC: decimal.Zero}
	err := r.q.QueryRow(ctx, `SELECT count(*), COALESCE(SUM(montant_ttc), 0) FROM documents`+w.where(), w.args...).
		Scan(&out.Nombre, &out.MontantTTC)
	if err != nil {
		return repository.Total{}, wrap("total documents", err)
	}
	return out, nil
}

func (r RapportRepo) CompterEmployesActifs(ctx context.Context, entrepriseID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM employes WHERE entreprise_id = $1 AND actif`, entrepriseID).Scan(&n)
	if err != nil {
		return 0, wrap("count employes", err)
	}
	return n, nil
}
