package postgres

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.CompteRepository   = CompteRepo{}
	_ repository.JournalRepository  = JournalRepo{}
	_ repository.PeriodeRepository  = PeriodeRepo{}
	_ repository.EcritureRepository = EcritureRepo{}
)

// CompteRepo plan comptable.
type CompteRepo struct{ q Querier }

const compteCols = `id, entreprise_id, numero, libelle, sens_normal, actif, created_at, updated_at`

func (r CompteRepo) Create(ctx context.Context, c *entity.CompteComptable) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO comptes_comptables (entreprise_id, numero, libelle, sens_normal, actif)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.EntrepriseID, c.Numero, c.Libelle, c.SensNormal, c.Actif,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return wrap("insert compte", err)
	}
	return nil
}

func (r CompteRepo) GetByID(ctx context.Context, id int64) (*entity.CompteComptable, error) {
	return one[entity.CompteComptable](ctx, r.q, "get compte",
		`SELECT `+compteCols+` FROM comptes_comptables WHERE id = $1`, id)
}

func (r CompteRepo) Update(ctx context.Context, c *entity.CompteComptable) error {
	err := r.q.QueryRow(ctx, `
		UPDATE comptes_comptables SET numero = $2, libelle = $3, sens_normal = $4, actif = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		c.ID, c.Numero, c.Libelle, c.SensNormal, c.Actif,
	).Scan(&c.UpdatedAt)
	if err != nil {
		return wrap("update compte", err)
	}
	return nil
}

func (r CompteRepo) List(ctx context.Context, entrepriseID int64, actifOnly bool, p repository.Page) ([]*entity.CompteComptable, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	if actifOnly {
		w.conds = append(w.conds, "actif")
	}
	query := `SELECT ` + compteCols + ` FROM comptes_comptables` + w.where() + ` ORDER BY numero, id` + w.page(p)
	return many[entity.CompteComptable](ctx, r.q, "list comptes", query, w.args...)
}

func (r CompteRepo) Solde(ctx context.Context, compteID int64) (*entity.SoldeCompte, error) {
	out := &entity.SoldeCompte{CompteID: compteID}
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM lignes_ecriture WHERE compte_id = $1`, compteID,
	).Scan(&out.TotalDebit, &out.TotalCredit)
	if err != nil {
		return nil, wrap("solde compte", err)
	}
	return out, nil
}

// JournalRepo journaux comptables.
type JournalRepo struct{ q Querier }

const journalCols = `id, entreprise_id, code, libelle, actif, created_at, updated_at`

func (r JournalRepo) Create(ctx context.Context, j *entity.JournalComptable) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO journaux_comptables (entreprise_id, code, libelle, actif)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		j.EntrepriseID, j.Code, j.Libelle, j.Actif,
	).Scan(&j.ID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return wrap("insert journal", err)
	}
	return nil
}

func (r JournalRepo) GetByID(ctx context.Context, id int64) (*entity.JournalComptable, error) {
	return one[entity.JournalComptable](ctx, r.q, "get journal",
		`SELECT `+journalCols+` FROM journaux_comptables WHERE id = $1`, id)
}

func (r JournalRepo) Update(ctx context.Context, j *entity.JournalComptable) error {
	err := r.q.QueryRow(ctx, `
		UPDATE journaux_comptables SET code = $2, libelle = $3, actif = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		j.ID, j.Code, j.Libelle, j.Actif,
	).Scan(&j.UpdatedAt)
	if err != nil {
		return wrap("update journal", err)
	}
	return nil
}

func (r JournalRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.JournalComptable, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + journalCols + ` FROM journaux_comptables` + w.where() + ` ORDER BY code, id` + w.page(p)
	return many[entity.JournalComptable](ctx, r.q, "list journaux", query, w.args...)
}

// PeriodeRepo périodes comptables.
type PeriodeRepo struct{ q Querier }

const periodeCols = `id, entreprise_id, libelle, date_debut, date_fin, cloturee, date_cloture, created_at, updated_at`

func (r PeriodeRepo) Create(ctx context.Context, p *entity.PeriodeComptable) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO periodes_comptables (entreprise_id, libelle, date_debut, date_fin, cloturee, date_cloture)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		p.EntrepriseID, p.Libelle, p.DateDebut, p.DateFin, p.Cloturee, p.DateCloture,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return wrap("insert periode", err)
	}
	return nil
}

func (r PeriodeRepo) GetByID(ctx context.Context, id int64) (*entity.PeriodeComptable, error) {
	return one[entity.PeriodeComptable](ctx, r.q, "get periode",
		`SELECT `+periodeCols+` FROM periodes_comptables WHERE id = $1`, id)
}

func (r PeriodeRepo) GetByIDForShare(ctx context.Context, id int64) (*entity.PeriodeComptable, error) {
	return one[entity.PeriodeComptable](ctx, r.q, "get periode for share",
		`SELECT `+periodeCols+` FROM periodes_comptables WHERE id = $1 FOR SHARE`, id)
}

func (r PeriodeRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.PeriodeComptable, error) {
	return one[entity.PeriodeComptable](ctx, r.q, "get periode for update",
		`SELECT `+periodeCols+` FROM periodes_comptables WHERE id = $1 FOR UPDATE`, id)
}

func (r PeriodeRepo) Update(ctx context.Context, p *entity.PeriodeComptable) error {
	err := r.q.QueryRow(ctx, `
		UPDATE periodes_comptables SET libelle = $2, date_debut = $3, date_fin = $4, cloturee = $5,
			date_cloture = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		p.ID, p.Libelle, p.DateDebut, p.DateFin, p.Cloturee, p.DateCloture,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return wrap("update periode", err)
	}
	return nil
}

func (r PeriodeRepo) List(ctx context.Context, entrepriseID int64, p repository.Page) ([]*entity.PeriodeComptable, error) {
	var w filter
	w.add("entreprise_id = ?", entrepriseID)
	query := `SELECT ` + periodeCols + ` FROM periodes_comptables` + w.where() +
		` ORDER BY date_debut DESC, id DESC` + w.page(p)
	return many[entity.PeriodeComptable](ctx, r.q, "list periodes", query, w.args...)
}

func (r PeriodeRepo) FindClotureeCouvrant(ctx context.Context, entrepriseID int64, date time.Time) (*entity.PeriodeComptable, error) {
	return one[entity.PeriodeComptable](ctx, r.q, "find periode cloturee", `
		SELECT `+periodeCols+` FROM periodes_comptables
		WHERE entreprise_id = $1 AND cloturee AND $2::date BETWEEN date_debut AND date_fin
		ORDER BY id LIMIT 1`, entrepriseID, date)
}

// EcritureRepo écritures et lignes.
type EcritureRepo struct{ q Querier }

const ecritureCols = `id, entreprise_id, journal_id, periode_id, date_ecriture, numero_piece, libelle,
	created_by_id, created_at`

// Create insère l'en-tête puis les lignes dans l'ordre reçu.
func (r EcritureRepo) Create(ctx context.Context, e *entity.EcritureComptable) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ecritures_comptables (entreprise_id, journal_id, periode_id, date_ecriture, numero_piece, libelle, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		e.EntrepriseID, e.JournalID, e.PeriodeID, e.DateEcriture, e.NumeroPiece, e.Libelle, e.CreatedByID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return wrap("insert ecriture", err)
	}
	for i := range e.Lignes {
		l := &e.Lignes[i]
		l.EcritureID = e.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO lignes_ecriture (ecriture_id, compte_id, libelle, debit, credit, ordre)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			l.EcritureID, l.CompteID, l.Libelle, l.Debit, l.Credit, l.Ordre,
		).Scan(&l.ID)
		if err != nil {
			return wrap("insert ligne ecriture", err)
		}
	}
	return nil
}

func (r EcritureRepo) GetWithLignes(ctx context.Context, id int64) (*entity.EcritureComptable, error) {
	e, err := one[entity.EcritureComptable](ctx, r.q, "get ecriture",
		`SELECT `+ecritureCols+` FROM ecritures_comptables WHERE id = $1`, id)
	if err != nil || e == nil {
		return e, err
	}
	lignes, err := many[entity.LigneEcriture](ctx, r.q, "list lignes ecriture", `
		SELECT id, ecriture_id, compte_id, libelle, debit, credit, ordre
		FROM lignes_ecriture WHERE ecriture_id = $1 ORDER BY ordre, id`, id)
	if err != nil {
		return nil, err
	}
	e.Lignes = values(lignes)
	return e, nil
}

func (r EcritureRepo) List(ctx context.Context, f repository.EcritureFilter) ([]*entity.EcritureComptable, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.JournalID != nil {
		w.add("journal_id = ?", *f.JournalID)
	}
	if f.PeriodeID != nil {
		w.add("periode_id = ?", *f.PeriodeID)
	}
	if f.DateFrom != nil {
		w.add("date_ecriture >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date_ecriture <= ?", *f.DateTo)
	}
	query := `SELECT ` + ecritureCols + ` FROM ecritures_comptables` + w.where() +
		` ORDER BY date_ecriture DESC, id DESC` + w.page(f.Page)
	return many[entity.EcritureComptable](ctx, r.q, "list ecritures", query, w.args...)
}

// values copie les lignes pointées dans une tranche de valeurs.
func values[T any](in []*T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = *v
	}
	return out
}
