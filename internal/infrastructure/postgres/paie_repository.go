package postgres

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.EmployeRepository     = EmployeRepo{}
	_ repository.PeriodePaieRepository = PeriodePaieRepo{}
	_ repository.BulletinRepository    = BulletinRepo{}
)

type EmployeRepo struct{ q Querier }

const employeCols = `id, entreprise_id, matricule, nom, prenom, niu, actif, created_at`

func (r EmployeRepo) Create(ctx context.Context, e *entity.Employe) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO employes (entreprise_id, matricule, nom, prenom, niu, actif)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		e.EntrepriseID, e.Matricule, e.Nom, e.Prenom, e.NIU, e.Actif,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return wrap("insert employe", err)
	}
	return nil
}

func (r EmployeRepo) GetByID(ctx context.Context, id int64) (*entity.Employe, error) {
	return one[entity.Employe](ctx, r.q, "get employe",
		`SELECT `+employeCols+` FROM employes WHERE id = $1`, id)
}

func (r EmployeRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.Employe, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + employeCols + ` FROM employes` + w.where() + ` ORDER BY matricule, id` + w.page(p)
	return many[entity.Employe](ctx, r.q, "list employes", query, w.args...)
}

type PeriodePaieRepo struct{ q Querier }

const periodePaieCols = `id, entreprise_id, annee, mois, date_debut, date_fin, cloturee, created_at, updated_at`

func (r PeriodePaieRepo) Create(ctx context.Context, p *entity.PeriodePaie) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO periodes_paie (entreprise_id, annee, mois, date_debut, date_fin, cloturee)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		p.EntrepriseID, p.Annee, p.Mois, p.DateDebut, p.DateFin, p.Cloturee,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return wrap("insert periode paie", err)
	}
	return nil
}

func (r PeriodePaieRepo) GetByID(ctx context.Context, id int64) (*entity.PeriodePaie, error) {
	return one[entity.PeriodePaie](ctx, r.q, "get periode paie",
		`SELECT `+periodePaieCols+` FROM periodes_paie WHERE id = $1`, id)
}

// GetByIDForUpdate sérialise la clôture et les écritures de bulletins sur la période.
func (r PeriodePaieRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodePaie, error) {
	return one[entity.PeriodePaie](ctx, r.q, "get periode paie for update",
		`SELECT `+periodePaieCols+` FROM periodes_paie WHERE id = $1 FOR UPDATE`, id)
}

func (r PeriodePaieRepo) Update(ctx context.Context, p *entity.PeriodePaie) error {
	err := r.q.QueryRow(ctx, `
		UPDATE periodes_paie SET date_debut = $2, date_fin = $3, cloturee = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.DateDebut, p.DateFin, p.Cloturee,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return wrap("update periode paie", err)
	}
	return nil
}

func (r PeriodePaieRepo) List(ctx context.Context, entrepriseID int64, annee *int, p repository.Page) ([]*entity.PeriodePaie, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	if annee != nil {
		w.add("annee = ?", *annee)
	}
	query := `SELECT ` + periodePaieCols + ` FROM periodes_paie` + w.where() +
		` ORDER BY annee DESC, mois DESC` + w.page(p)
	return many[entity.PeriodePaie](ctx, r.q, "list periodes paie", query, w.args...)
}

type BulletinRepo struct{ q Querier }

const bulletinCols = `id, entreprise_id, employe_id, periode_paie_id, salaire_brut, total_gains,
	total_retenues, net_a_payer, statut, date_paiement, created_at, updated_at`

func (r BulletinRepo) Create(ctx context.Context, b *entity.BulletinPaie) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO bulletins_paie (entreprise_id, employe_id, periode_paie_id, salaire_brut, total_gains,
			total_retenues, net_a_payer, statut, date_paiement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		b.EntrepriseID, b.EmployeID, b.PeriodePaieID, b.SalaireBrut, b.TotalGains,
		b.TotalRetenues, b.NetAPayer, b.Statut, b.DatePaiement,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return wrap("insert bulletin", err)
	}
	return r.insertLignes(ctx, b)
}

func (r BulletinRepo) insertLignes(ctx context.Context, b *entity.BulletinPaie) error {
	for i := range b.Lignes {
		l := &b.Lignes[i]
		l.BulletinID = b.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO lignes_bulletin_paie (bulletin_id, libelle, type, montant, ordre)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			l.BulletinID, l.Libelle, l.Type, l.Montant, l.Ordre,
		).Scan(&l.ID)
		if err != nil {
			return wrap("insert ligne bulletin", err)
		}
	}
	return nil
}

func (r BulletinRepo) GetWithLignes(ctx context.Context, id int64) (*entity.BulletinPaie, error) {
	b, err := one[entity.BulletinPaie](ctx, r.q, "get bulletin",
		`SELECT `+bulletinCols+` FROM bulletins_paie WHERE id = $1`, id)
	if err != nil || b == nil {
		return b, err
	}
	lignes, err := many[entity.LigneBulletin](ctx, r.q, "list lignes bulletin", `
		SELECT id, bulletin_id, libelle, type, montant, ordre
		FROM lignes_bulletin_paie WHERE bulletin_id = $1 ORDER BY ordre, id`, id)
	if err != nil {
		return nil, err
	}
	b.Lignes = values(lignes)
	return b, nil
}

func (r BulletinRepo) Update(ctx context.Context, b *entity.BulletinPaie, replaceLignes bool) error {
	err := r.q.QueryRow(ctx, `
		UPDATE bulletins_paie SET salaire_brut = $2, total_gains = $3, total_retenues = $4,
			net_a_payer = $5, statut = $6, date_paiement = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		b.ID, b.SalaireBrut, b.TotalGains, b.TotalRetenues, b.NetAPayer, b.Statut, b.DatePaiement,
	).Scan(&b.UpdatedAt)
	if err != nil {
		return wrap("update bulletin", err)
	}
	if !replaceLignes {
		return nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM lignes_bulletin_paie WHERE bulletin_id = $1`, b.ID); err != nil {
		return wrap("delete lignes bulletin", err)
	}
	return r.insertLignes(ctx, b)
}

func (r BulletinRepo) List(ctx context.Context, f repository.BulletinFilter) ([]*entity.BulletinPaie, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.PeriodePaieID != nil {
		w.add("periode_paie_id = ?", *f.PeriodePaieID)
	}
	if f.EmployeID != nil {
		w.add("employe_id = ?", *f.EmployeID)
	}
	query := `SELECT ` + bulletinCols + ` FROM bulletins_paie` + w.where() + ` ORDER BY id` + w.page(f.Page)
	return many[entity.BulletinPaie](ctx, r.q, "list bulletins", query, w.args...)
}
