package postgres

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.StockRepository     = StockRepo{}
	_ repository.MouvementRepository = MouvementRepo{}
)

// StockRepo lignes de stock (usable avec pool ou tx ; les mutations exigent une tx).
type StockRepo struct{ q Querier }

const stockCols = `id, depot_id, produit_id, variante_id, quantite, unite_id, updated_at`

// GetOrCreateForUpdate insère la ligne à zéro si absente puis la verrouille. L'insertion
// concurrente est absorbée par ON CONFLICT DO NOTHING ; le SELECT FOR UPDATE attend alors
// la transaction gagnante.
func (r StockRepo) GetOrCreateForUpdate(ctx context.Context, key repository.StockKey, uniteID *int64) (*entity.Stock, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stocks (depot_id, produit_id, variante_id, quantite, unite_id)
		VALUES ($1, $2, $3, 0, $4)
		ON CONFLICT DO NOTHING`,
		key.DepotID, key.ProduitID, key.VarianteID, uniteID)
	if err != nil {
		return nil, wrap("init stock", err)
	}
	return one[entity.Stock](ctx, r.q, "lock stock", `
		SELECT `+stockCols+` FROM stocks
		WHERE depot_id = $1 AND produit_id = $2 AND variante_id IS NOT DISTINCT FROM $3
		FOR UPDATE`, key.DepotID, key.ProduitID, key.VarianteID)
}

func (r StockRepo) SetQuantite(ctx context.Context, s *entity.Stock) error {
	err := r.q.QueryRow(ctx,
		`UPDATE stocks SET quantite = $2, updated_at = now() WHERE id = $1 RETURNING updated_at`,
		s.ID, s.Quantite,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return wrap("set quantite", err)
	}
	return nil
}

func (r StockRepo) GetByID(ctx context.Context, id int64) (*entity.Stock, error) {
	return one[entity.Stock](ctx, r.q, "get stock", `SELECT `+stockCols+` FROM stocks WHERE id = $1`, id)
}

func (r StockRepo) Find(ctx context.Context, key repository.StockKey) (*entity.Stock, error) {
	return one[entity.Stock](ctx, r.q, "find stock", `
		SELECT `+stockCols+` FROM stocks
		WHERE depot_id = $1 AND produit_id = $2 AND variante_id IS NOT DISTINCT FROM $3`,
		key.DepotID, key.ProduitID, key.VarianteID)
}

func (r StockRepo) ListByDepot(ctx context.Context, depotID int64, p repository.Page) ([]*entity.Stock, error) {
	var w filter
	w.add("depot_id = ?", depotID)
	query := `SELECT ` + stockCols + ` FROM stocks` + w.where() + ` ORDER BY id` + w.page(p)
	return many[entity.Stock](ctx, r.q, "list stocks depot", query, w.args...)
}

func (r StockRepo) ListByProduit(ctx context.Context, produitID int64, p repository.Page) ([]*entity.Stock, error) {
	var w filter
	w.add("produit_id = ?", produitID)
	query := `SELECT ` + stockCols + ` FROM stocks` + w.where() + ` ORDER BY id` + w.page(p)
	return many[entity.Stock](ctx, r.q, "list stocks produit", query, w.args...)
}

func (r StockRepo) Alertes(ctx context.Context, entrepriseID int64, depotID *int64, p repository.Page) ([]*entity.AlerteStock, error) {
	var w filter
	w.add("d.entreprise_id = ?", entrepriseID)
	w.conds = append(w.conds,
		"pr.deleted_at IS NULL",
		"pr.gerer_stock",
		"((pr.seuil_alerte_min IS NOT NULL AND s.quantite < pr.seuil_alerte_min) OR (pr.seuil_alerte_max IS NOT NULL AND s.quantite > pr.seuil_alerte_max))",
	)
	if depotID != nil {
		w.add("s.depot_id = ?", *depotID)
	}
	query := `
		SELECT s.id AS stock_id, d.id AS depot_id, d.code AS depot_code, pr.id AS produit_id,
			pr.code AS produit_code, pr.libelle AS produit_libelle, s.variante_id, s.quantite,
			pr.seuil_alerte_min, pr.seuil_alerte_max,
			CASE WHEN pr.seuil_alerte_min IS NOT NULL AND s.quantite < pr.seuil_alerte_min
				THEN 'sous_seuil' ELSE 'au_dessus_max' END AS type_alerte
		FROM stocks s
		JOIN depots d ON d.id = s.depot_id
		JOIN produits pr ON pr.id = s.produit_id` + w.where() + `
		ORDER BY d.code, pr.code, s.id` + w.page(p)
	return many[entity.AlerteStock](ctx, r.q, "list alertes", query, w.args...)
}

// MouvementRepo journal append-only des mouvements.
type MouvementRepo struct{ q Querier }

const mouvementCols = `id, entreprise_id, type_mouvement, depot_id, depot_dest_id, produit_id, variante_id,
	quantite, date_mouvement, reference_type, reference_id, notes, created_by_id, created_at`

func (r MouvementRepo) Create(ctx context.Context, m *entity.MouvementStock) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO mouvements_stock (entreprise_id, type_mouvement, depot_id, depot_dest_id, produit_id,
			variante_id, quantite, date_mouvement, reference_type, reference_id, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at`,
		m.EntrepriseID, m.TypeMouvement, m.DepotID, m.DepotDestID, m.ProduitID, m.VarianteID,
		m.Quantite, m.DateMouvement, m.ReferenceType, m.ReferenceID, m.Notes, m.CreatedByID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return wrap("insert mouvement", err)
	}
	return nil
}

func (r MouvementRepo) GetByID(ctx context.Context, id int64) (*entity.MouvementStock, error) {
	return one[entity.MouvementStock](ctx, r.q, "get mouvement",
		`SELECT `+mouvementCols+` FROM mouvements_stock WHERE id = $1`, id)
}

func (r MouvementRepo) List(ctx context.Context, f repository.MouvementFilter) ([]*entity.MouvementStock, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.DepotID != nil {
		w.add("(depot_id = ? OR depot_dest_id = ?)", *f.DepotID)
	}
	if f.ProduitID != nil {
		w.add("produit_id = ?", *f.ProduitID)
	}
	if f.TypeMouvement != "" {
		w.add("type_mouvement = ?", f.TypeMouvement)
	}
	if f.DateFrom != nil {
		w.add("date_mouvement >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date_mouvement <= ?", *f.DateTo)
	}
	query := `SELECT ` + mouvementCols + ` FROM mouvements_stock` + w.where() +
		` ORDER BY date_mouvement DESC, id DESC` + w.page(f.Page)
	return many[entity.MouvementStock](ctx, r.q, "list mouvements", query, w.args...)
}
