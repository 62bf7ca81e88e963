package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.EntrepriseRepository   = EntrepriseRepo{}
	_ repository.UtilisateurRepository  = UtilisateurRepo{}
	_ repository.PermissionRepository   = PermissionRepo{}
	_ repository.EtatDocumentRepository = EtatRepo{}
)

// EntrepriseRepo tenants.
type EntrepriseRepo struct{ q Querier }

const entrepriseCols = `id, code, raison_sociale, niu, rccm, adresse, ville, boite_postale, telephone,
	email, pays, devise, actif, created_at, updated_at`

func (r EntrepriseRepo) Create(ctx context.Context, e *entity.Entreprise) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO entreprises (code, raison_sociale, niu, rccm, adresse, ville, boite_postale, telephone, email, pays, devise, actif)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		e.Code, e.RaisonSociale, e.NIU, e.RCCM, e.Adresse, e.Ville, e.BoitePostale, e.Telephone,
		e.Email, e.Pays, e.Devise, e.Actif,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return wrap("insert entreprise", err)
	}
	return nil
}

func (r EntrepriseRepo) GetByID(ctx context.Context, id int64) (*entity.Entreprise, error) {
	return one[entity.Entreprise](ctx, r.q, "get entreprise",
		`SELECT `+entrepriseCols+` FROM entreprises WHERE id = $1`, id)
}

// UtilisateurRepo comptes de connexion.
type UtilisateurRepo struct{ q Querier }

const utilisateurCols = `id, entreprise_id, role_id, login, email, password_hash, nom, prenom, actif,
	last_login_at, created_at, updated_at`

func (r UtilisateurRepo) Create(ctx context.Context, u *entity.Utilisateur) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO utilisateurs (entreprise_id, role_id, login, email, password_hash, nom, prenom, actif)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		u.EntrepriseID, u.RoleID, u.Login, u.Email, u.PasswordHash, u.Nom, u.Prenom, u.Actif,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return wrap("insert utilisateur", err)
	}
	return nil
}

func (r UtilisateurRepo) GetByID(ctx context.Context, id int64) (*entity.Utilisateur, error) {
	return one[entity.Utilisateur](ctx, r.q, "get utilisateur",
		`SELECT `+utilisateurCols+` FROM utilisateurs WHERE id = $1`, id)
}

func (r UtilisateurRepo) FindForLogin(ctx context.Context, entrepriseID int64, identifiant string) (*entity.Utilisateur, error) {
	return one[entity.Utilisateur](ctx, r.q, "find utilisateur", `
		SELECT `+utilisateurCols+` FROM utilisateurs
		WHERE entreprise_id = $1 AND (lower(login) = lower($2) OR lower(email) = lower($2))
		ORDER BY (lower(login) = lower($2)) DESC, id
		LIMIT 1`, entrepriseID, identifiant)
}

func (r UtilisateurRepo) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE utilisateurs SET last_login_at = $2 WHERE id = $1`, id, at); err != nil {
		return wrap("touch last login", err)
	}
	return nil
}

// PermissionRepo rôles et permissions.
type PermissionRepo struct{ q Querier }

func (r PermissionRepo) HasPermission(ctx context.Context, roleID int64, module, action string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM permissions_roles pr
			JOIN permissions p ON p.id = pr.permission_id
			WHERE pr.role_id = $1 AND p.module = $2 AND p.action = $3
		)`, roleID, module, action).Scan(&ok)
	if err != nil {
		return false, wrap("has permission", err)
	}
	return ok, nil
}

func (r PermissionRepo) CreateRole(ctx context.Context, role *entity.Role) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO roles (entreprise_id, code, libelle) VALUES ($1, $2, $3) RETURNING id`,
		role.EntrepriseID, role.Code, role.Libelle,
	).Scan(&role.ID)
	if err != nil {
		return wrap("insert role", err)
	}
	return nil
}

func (r PermissionRepo) Grant(ctx context.Context, roleID int64, module, action string) error {
	_, err := r.q.Exec(ctx, `
		WITH p AS (
			INSERT INTO permissions (module, action) VALUES ($2, $3)
			ON CONFLICT (module, action) DO UPDATE SET module = EXCLUDED.module
			RETURNING id
		)
		INSERT INTO permissions_roles (role_id, permission_id)
		SELECT $1, id FROM p
		ON CONFLICT DO NOTHING`, roleID, module, action)
	if err != nil {
		return wrap("grant permission", err)
	}
	return nil
}

// EtatRepo référentiel des états de document.
type EtatRepo struct{ q Querier }

func (r EtatRepo) GetByID(ctx context.Context, id int64) (*entity.EtatDocument, error) {
	return one[entity.EtatDocument](ctx, r.q, "get etat",
		`SELECT id, type_document, code, libelle, ordre FROM etats_document WHERE id = $1`, id)
}

func (r EtatRepo) ListByType(ctx context.Context, typeDocument string) ([]*entity.EtatDocument, error) {
	return many[entity.EtatDocument](ctx, r.q, "list etats",
		`SELECT id, type_document, code, libelle, ordre FROM etats_document
		WHERE type_document = $1 ORDER BY ordre, id`, typeDocument)
}

// ReferenceRepo propriétaire des entités référencées.
type ReferenceRepo struct{ q Querier }

var _ repository.ReferenceRepository = ReferenceRepo{}

// ownerQueries requête de propriétaire par type ; les référentiels globaux renvoient 0.
var ownerQueries = map[repository.Kind]string{
	repository.KindEntreprise:       `SELECT id FROM entreprises WHERE id = $1`,
	repository.KindPointDeVente:     `SELECT entreprise_id FROM points_de_vente WHERE id = $1`,
	repository.KindDepot:            `SELECT entreprise_id FROM depots WHERE id = $1`,
	repository.KindTiers:            `SELECT entreprise_id FROM tiers WHERE id = $1`,
	repository.KindProduit:          `SELECT entreprise_id FROM produits WHERE id = $1 AND deleted_at IS NULL`,
	repository.KindVariante:         `SELECT p.entreprise_id FROM variantes_produits v JOIN produits p ON p.id = v.produit_id WHERE v.id = $1 AND p.deleted_at IS NULL`,
	repository.KindFamille:          `SELECT entreprise_id FROM familles_produits WHERE id = $1 AND deleted_at IS NULL`,
	repository.KindJournal:          `SELECT entreprise_id FROM journaux_comptables WHERE id = $1`,
	repository.KindCompte:           `SELECT entreprise_id FROM comptes_comptables WHERE id = $1`,
	repository.KindPeriode:          `SELECT entreprise_id FROM periodes_comptables WHERE id = $1`,
	repository.KindCompteTresorerie: `SELECT entreprise_id FROM comptes_tresorerie WHERE id = $1`,
	repository.KindModePaiement:     `SELECT entreprise_id FROM modes_paiement WHERE id = $1`,
	repository.KindEmploye:          `SELECT entreprise_id FROM employes WHERE id = $1`,
	repository.KindPeriodePaie:      `SELECT entreprise_id FROM periodes_paie WHERE id = $1`,
	repository.KindRole:             `SELECT entreprise_id FROM roles WHERE id = $1`,
	repository.KindDevise:           `SELECT 0::bigint FROM devises WHERE id = $1`,
	repository.KindEtatDocument:     `SELECT 0::bigint FROM etats_document WHERE id = $1`,
	repository.KindTauxTva:          `SELECT 0::bigint FROM taux_tva WHERE id = $1`,
	repository.KindUnite:            `SELECT 0::bigint FROM unites_mesure WHERE id = $1`,
}

func (r ReferenceRepo) Owner(ctx context.Context, kind repository.Kind, id int64) (int64, bool, error) {
	query, ok := ownerQueries[kind]
	if !ok {
		return 0, false, fmt.Errorf("type de référence inconnu: %s", kind)
	}
	var owner int64
	if err := r.q.QueryRow(ctx, query, id).Scan(&owner); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, wrap("owner "+string(kind), err)
	}
	return owner, true, nil
}
