package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.ReglementRepository        = ReglementRepo{}
	_ repository.CompteTresorerieRepository = CompteTresorerieRepo{}
	_ repository.ModePaiementRepository     = ModePaiementRepo{}
)

// ReglementRepo règlements clients et fournisseurs.
type ReglementRepo struct{ q Querier }

const reglementCols = `id, entreprise_id, type_reglement, facture_id, facture_fournisseur_id, tiers_id,
	montant, date_reglement, date_valeur, mode_paiement_id, compte_tresorerie_id, reference, notes,
	created_by_id, created_at`

func (r ReglementRepo) Create(ctx context.Context, x *entity.Reglement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO reglements (entreprise_id, type_reglement, facture_id, facture_fournisseur_id, tiers_id,
			montant, date_reglement, date_valeur, mode_paiement_id, compte_tresorerie_id, reference, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at`,
		x.EntrepriseID, x.TypeReglement, x.FactureID, x.FactureFournisseurID, x.TiersID,
		x.Montant, x.DateReglement, x.DateValeur, x.ModePaiementID, x.CompteTresorerieID,
		x.Reference, x.Notes, x.CreatedByID,
	).Scan(&x.ID, &x.CreatedAt)
	if err != nil {
		return wrap("insert reglement", err)
	}
	return nil
}

func (r ReglementRepo) GetByID(ctx context.Context, id int64) (*entity.Reglement, error) {
	return one[entity.Reglement](ctx, r.q, "get reglement",
		`SELECT `+reglementCols+` FROM reglements WHERE id = $1`, id)
}

func (r ReglementRepo) List(ctx context.Context, f repository.ReglementFilter) ([]*entity.Reglement, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.TypeReglement != "" {
		w.add("type_reglement = ?", f.TypeReglement)
	}
	if f.TiersID != nil {
		w.add("tiers_id = ?", *f.TiersID)
	}
	if f.DateFrom != nil {
		w.add("date_reglement >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date_reglement <= ?", *f.DateTo)
	}
	query := `SELECT ` + reglementCols + ` FROM reglements` + w.where() +
		` ORDER BY date_reglement DESC, id DESC` + w.page(f.Page)
	return many[entity.Reglement](ctx, r.q, "list reglements", query, w.args...)
}

func (r ReglementRepo) TotalPourDocument(ctx context.Context, documentID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(montant), 0) FROM reglements
		WHERE facture_id = $1 OR facture_fournisseur_id = $1`, documentID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, wrap("total reglements", err)
	}
	return total, nil
}

// CompteTresorerieRepo caisses, banques et comptes mobile money.
type CompteTresorerieRepo struct{ q Querier }

const compteTresorerieCols = `id, entreprise_id, code, libelle, type_compte, devise_id, actif, created_at`

func (r CompteTresorerieRepo) Create(ctx context.Context, c *entity.CompteTresorerie) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO comptes_tresorerie (entreprise_id, code, libelle, type_compte, devise_id, actif)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		c.EntrepriseID, c.Code, c.Libelle, c.TypeCompte, c.DeviseID, c.Actif,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return wrap("insert compte tresorerie", err)
	}
	return nil
}

func (r CompteTresorerieRepo) GetByID(ctx context.Context, id int64) (*entity.CompteTresorerie, error) {
	return one[entity.CompteTresorerie](ctx, r.q, "get compte tresorerie",
		`SELECT `+compteTresorerieCols+` FROM comptes_tresorerie WHERE id = $1`, id)
}

func (r CompteTresorerieRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.CompteTresorerie, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + compteTresorerieCols + ` FROM comptes_tresorerie` + w.where() + ` ORDER BY code, id` + w.page(p)
	return many[entity.CompteTresorerie](ctx, r.q, "list comptes tresorerie", query, w.args...)
}

// ModePaiementRepo modes de paiement.
type ModePaiementRepo struct{ q Querier }

const modePaiementCols = `id, entreprise_id, code, libelle, actif, created_at`

func (r ModePaiementRepo) Create(ctx context.Context, m *entity.ModePaiement) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO modes_paiement (entreprise_id, code, libelle, actif)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		m.EntrepriseID, m.Code, m.Libelle, m.Actif,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return wrap("insert mode paiement", err)
	}
	return nil
}

func (r ModePaiementRepo) GetByID(ctx context.Context, id int64) (*entity.ModePaiement, error) {
	return one[entity.ModePaiement](ctx, r.q, "get mode paiement",
		`SELECT `+modePaiementCols+` FROM modes_paiement WHERE id = $1`, id)
}

func (r ModePaiementRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.ModePaiement, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + modePaiementCols + ` FROM modes_paiement` + w.where() + ` ORDER BY code, id` + w.page(p)
	return many[entity.ModePaiement](ctx, r.q, "list modes paiement", query, w.args...)
}
