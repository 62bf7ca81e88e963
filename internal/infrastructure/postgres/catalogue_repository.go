package postgres

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.ProduitRepository  = ProduitRepo{}
	_ repository.VarianteRepository = VarianteRepo{}
	_ repository.FamilleRepository  = FamilleRepo{}
)

// ProduitRepo produits ; les lectures ignorent les lignes supprimées logiquement.
type ProduitRepo struct{ q Querier }

const produitCols = `id, entreprise_id, famille_id, code, code_barre, libelle, type, unite_vente_id,
	prix_vente_ttc, taux_tva_id, seuil_alerte_min, seuil_alerte_max, gerer_stock, actif,
	created_by_id, deleted_at, created_at, updated_at`

func (r ProduitRepo) Create(ctx context.Context, p *entity.Produit) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO produits (entreprise_id, famille_id, code, code_barre, libelle, type, unite_vente_id,
			prix_vente_ttc, taux_tva_id, seuil_alerte_min, seuil_alerte_max, gerer_stock, actif, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`,
		p.EntrepriseID, p.FamilleID, p.Code, p.CodeBarre, p.Libelle, p.Type, p.UniteVenteID,
		p.PrixVenteTTC, p.TauxTvaID, p.SeuilAlerteMin, p.SeuilAlerteMax, p.GererStock, p.Actif, p.CreatedByID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return wrap("insert produit", err)
	}
	return nil
}

func (r ProduitRepo) GetByID(ctx context.Context, id int64) (*entity.Produit, error) {
	return one[entity.Produit](ctx, r.q, "get produit",
		`SELECT `+produitCols+` FROM produits WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r ProduitRepo) Update(ctx context.Context, p *entity.Produit) error {
	err := r.q.QueryRow(ctx, `
		UPDATE produits SET famille_id = $2, code = $3, code_barre = $4, libelle = $5, type = $6,
			unite_vente_id = $7, prix_vente_ttc = $8, taux_tva_id = $9, seuil_alerte_min = $10,
			seuil_alerte_max = $11, gerer_stock = $12, actif = $13, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		p.ID, p.FamilleID, p.Code, p.CodeBarre, p.Libelle, p.Type, p.UniteVenteID, p.PrixVenteTTC,
		p.TauxTvaID, p.SeuilAlerteMin, p.SeuilAlerteMax, p.GererStock, p.Actif,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return wrap("update produit", err)
	}
	return nil
}

func (r ProduitRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE produits SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at); err != nil {
		return wrap("soft delete produit", err)
	}
	return nil
}

func (r ProduitRepo) List(ctx context.Context, f repository.ProduitFilter) ([]*entity.Produit, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	w.conds = append(w.conds, "deleted_at IS NULL")
	if f.FamilleID != nil {
		w.add("famille_id = ?", *f.FamilleID)
	}
	if f.ActifOnly {
		w.conds = append(w.conds, "actif")
	}
	w.search(f.Search, "code", "libelle", "code_barre")
	query := `SELECT ` + produitCols + ` FROM produits` + w.where() + ` ORDER BY code, id`
	query += w.page(f.Page)
	return many[entity.Produit](ctx, r.q, "list produits", query, w.args...)
}

// VarianteRepo variantes de produit.
type VarianteRepo struct{ q Querier }

const varianteCols = `id, produit_id, code, libelle, code_barre, prix_vente_ttc, stock_separe, actif, created_at`

func (r VarianteRepo) Create(ctx context.Context, v *entity.Variante) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO variantes_produits (produit_id, code, libelle, code_barre, prix_vente_ttc, stock_separe, actif)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		v.ProduitID, v.Code, v.Libelle, v.CodeBarre, v.PrixVenteTTC, v.StockSepare, v.Actif,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return wrap("insert variante", err)
	}
	return nil
}

func (r VarianteRepo) GetByID(ctx context.Context, id int64) (*entity.Variante, error) {
	return one[entity.Variante](ctx, r.q, "get variante",
		`SELECT `+varianteCols+` FROM variantes_produits WHERE id = $1`, id)
}

func (r VarianteRepo) ListByProduit(ctx context.Context, produitID int64) ([]*entity.Variante, error) {
	return many[entity.Variante](ctx, r.q, "list variantes",
		`SELECT `+varianteCols+` FROM variantes_produits WHERE produit_id = $1 ORDER BY code, id`, produitID)
}

func (r VarianteRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM variantes_produits WHERE id = $1`, id); err != nil {
		return wrap("delete variante", err)
	}
	return nil
}

// FamilleRepo arborescence des familles.
type FamilleRepo struct{ q Querier }

const familleCols = `id, entreprise_id, parent_id, code, libelle, niveau, actif, deleted_at, created_at, updated_at`

func (r FamilleRepo) Create(ctx context.Context, f *entity.FamilleProduit) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO familles_produits (entreprise_id, parent_id, code, libelle, niveau, actif)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		f.EntrepriseID, f.ParentID, f.Code, f.Libelle, f.Niveau, f.Actif,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return wrap("insert famille", err)
	}
	return nil
}

func (r FamilleRepo) GetByID(ctx context.Context, id int64) (*entity.FamilleProduit, error) {
	return one[entity.FamilleProduit](ctx, r.q, "get famille",
		`SELECT `+familleCols+` FROM familles_produits WHERE id = $1 AND deleted_at IS NULL`, id)
}

func (r FamilleRepo) Update(ctx context.Context, f *entity.FamilleProduit) error {
	err := r.q.QueryRow(ctx, `
		UPDATE familles_produits SET parent_id = $2, code = $3, libelle = $4, niveau = $5, actif = $6, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`,
		f.ID, f.ParentID, f.Code, f.Libelle, f.Niveau, f.Actif,
	).Scan(&f.UpdatedAt)
	if err != nil {
		return wrap("update famille", err)
	}
	return nil
}

func (r FamilleRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE familles_produits SET deleted_at = $2, updated_at = $2 WHERE id = $1`, id, at); err != nil {
		return wrap("soft delete famille", err)
	}
	return nil
}

func (r FamilleRepo) List(ctx context.Context, entrepriseID int64, parentID *int64, p repository.Page) ([]*entity.FamilleProduit, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	w.conds = append(w.conds, "deleted_at IS NULL")
	if parentID != nil {
		w.add("parent_id = ?", *parentID)
	}
	query := `SELECT ` + familleCols + ` FROM familles_produits` + w.where() + ` ORDER BY niveau, code, id`
	query += w.page(p)
	return many[entity.FamilleProduit](ctx, r.q, "list familles", query, w.args...)
}
