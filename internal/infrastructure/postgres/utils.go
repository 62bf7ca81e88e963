package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Querier sous-ensemble commun à *pgxpool.Pool et pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation vrai sur une violation de contrainte d'unicité (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// wrap traduit 23505 en domain.ErrDuplicate et préfixe les autres erreurs.
func wrap(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// one exécute une requête à une ligne ; nil, nil si aucune ligne.
func one[T any](ctx context.Context, q Querier, op, query string, args ...any) (*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(op, err)
	}
	return v, nil
}

// many exécute une requête et mappe chaque ligne par nom de colonne (tags db).
func many[T any](ctx context.Context, q Querier, op, query string, args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

// filter construit une clause WHERE positionnelle ($1, $2...).
type filter struct {
	conds []string
	args  []any
}

// add ajoute une condition ; chaque "?" désigne la même valeur v.
func (f *filter) add(cond string, v any) {
	f.args = append(f.args, v)
	f.conds = append(f.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(f.args))))
}

// search ajoute une recherche ILIKE '%s%' sur plusieurs colonnes.
func (f *filter) search(s string, cols ...string) {
	if s == "" {
		return
	}
	f.args = append(f.args, "%"+escapeLike(s)+"%")
	pos := fmt.Sprintf("$%d", len(f.args))
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE " + pos
	}
	f.conds = append(f.conds, "("+strings.Join(parts, " OR ")+")")
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page LIMIT/OFFSET ; Limit 0 renvoie toutes les lignes.
func (f *filter) page(p repository.Page) string {
	var sb strings.Builder
	if p.Limit > 0 {
		f.args = append(f.args, p.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(f.args))
	}
	if p.Skip > 0 {
		f.args = append(f.args, p.Skip)
		fmt.Fprintf(&sb, " OFFSET $%d", len(f.args))
	}
	return sb.String()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
