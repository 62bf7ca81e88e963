package postgres

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.TiersRepository = TiersRepo{}
	_ repository.DepotRepository = DepotRepo{}
)

// TiersRepo clients et fournisseurs.
type TiersRepo struct{ q Querier }

const tiersCols = `id, entreprise_id, type_tiers, code, raison_sociale, niu, rccm, adresse, ville,
	boite_postale, pays, telephone, email, actif, created_at, updated_at`

func (r TiersRepo) Create(ctx context.Context, t *entity.Tiers) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO tiers (entreprise_id, type_tiers, code, raison_sociale, niu, rccm, adresse, ville,
			boite_postale, pays, telephone, email, actif)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		t.EntrepriseID, t.TypeTiers, t.Code, t.RaisonSociale, t.NIU, t.RCCM, t.Adresse, t.Ville,
		t.BoitePostale, t.Pays, t.Telephone, t.Email, t.Actif,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return wrap("insert tiers", err)
	}
	return nil
}

func (r TiersRepo) GetByID(ctx context.Context, id int64) (*entity.Tiers, error) {
	return one[entity.Tiers](ctx, r.q, "get tiers", `SELECT `+tiersCols+` FROM tiers WHERE id = $1`, id)
}

func (r TiersRepo) Update(ctx context.Context, t *entity.Tiers) error {
	err := r.q.QueryRow(ctx, `
		UPDATE tiers SET type_tiers = $2, code = $3, raison_sociale = $4, niu = $5, rccm = $6, adresse = $7,
			ville = $8, boite_postale = $9, pays = $10, telephone = $11, email = $12, actif = $13, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		t.ID, t.TypeTiers, t.Code, t.RaisonSociale, t.NIU, t.RCCM, t.Adresse, t.Ville,
		t.BoitePostale, t.Pays, t.Telephone, t.Email, t.Actif,
	).Scan(&t.UpdatedAt)
	if err != nil {
		return wrap("update tiers", err)
	}
	return nil
}

func (r TiersRepo) List(ctx context.Context, f repository.TiersFilter) ([]*entity.Tiers, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.TypeTiers != "" {
		w.add("type_tiers = ?", f.TypeTiers)
	}
	w.search(f.Search, "code", "raison_sociale")
	query := `SELECT ` + tiersCols + ` FROM tiers` + w.where() + ` ORDER BY code, id`
	query += w.page(f.Page)
	return many[entity.Tiers](ctx, r.q, "list tiers", query, w.args...)
}

// DepotRepo dépôts.
type DepotRepo struct{ q Querier }

const depotCols = `id, entreprise_id, point_de_vente_id, code, libelle, adresse, ville, code_postal, pays,
	actif, created_at, updated_at`

func (r DepotRepo) Create(ctx context.Context, d *entity.Depot) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO depots (entreprise_id, point_de_vente_id, code, libelle, adresse, ville, code_postal, pays, actif)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		d.EntrepriseID, d.PointDeVenteID, d.Code, d.Libelle, d.Adresse, d.Ville, d.CodePostal, d.Pays, d.Actif,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return wrap("insert depot", err)
	}
	return nil
}

func (r DepotRepo) GetByID(ctx context.Context, id int64) (*entity.Depot, error) {
	return one[entity.Depot](ctx, r.q, "get depot", `SELECT `+depotCols+` FROM depots WHERE id = $1`, id)
}

func (r DepotRepo) Update(ctx context.Context, d *entity.Depot) error {
	err := r.q.QueryRow(ctx, `
		UPDATE depots SET point_de_vente_id = $2, code = $3, libelle = $4, adresse = $5, ville = $6,
			code_postal = $7, pays = $8, actif = $9, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		d.ID, d.PointDeVenteID, d.Code, d.Libelle, d.Adresse, d.Ville, d.CodePostal, d.Pays, d.Actif,
	).Scan(&d.UpdatedAt)
	if err != nil {
		return wrap("update depot", err)
	}
	return nil
}

func (r DepotRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.Depot, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + depotCols + ` FROM depots` + w.where() + ` ORDER BY code, id` + w.page(p)
	return many[entity.Depot](ctx, r.q, "list depots", query, w.args...)
}
