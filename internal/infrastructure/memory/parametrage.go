package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// Référentiels globaux sans port d'écriture, alimentés par les jeux d'essai.

// AddDevise enregistre une devise et renvoie son identifiant.
func (db *DB) AddDevise(d entity.Devise) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	d.ID = db.data.devises.nextID()
	db.data.devises.rows[d.ID] = d
	return d.ID
}

// AddEtat enregistre un état de document.
func (db *DB) AddEtat(e entity.EtatDocument) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	e.ID = db.data.etats.nextID()
	db.data.etats.rows[e.ID] = e
	return e.ID
}

// AddUnite enregistre une unité de mesure.
func (db *DB) AddUnite(code string) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.data.unites.nextID()
	db.data.unites.rows[id] = code
	return id
}

// AddTauxTva enregistre un taux (pourcentage).
func (db *DB) AddTauxTva(taux decimal.Decimal) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := db.data.tauxTva.nextID()
	db.data.tauxTva.rows[id] = taux
	return id
}

// AddPointDeVente enregistre un point de vente.
func (db *DB) AddPointDeVente(p entity.PointDeVente) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()
	p.ID = db.data.pointsDeVente.nextID()
	db.data.pointsDeVente.rows[p.ID] = p
	return p.ID
}

type entreprises struct{ s store }

func (r entreprises) Create(_ context.Context, e *entity.Entreprise) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.entreprises, "entreprises", 0, func(_ int64, v entity.Entreprise) bool {
			return v.Code == e.Code || (e.NIU != nil && v.NIU != nil && *v.NIU == *e.NIU)
		})
		if err != nil {
			return err
		}
		e.ID = t.entreprises.nextID()
		e.CreatedAt, e.UpdatedAt = r.s.now(), r.s.now()
		t.entreprises.rows[e.ID] = *e
		return nil
	})
}

func (r entreprises) GetByID(_ context.Context, id int64) (*entity.Entreprise, error) {
	return getByID(r.s, func(t *tables) *table[entity.Entreprise] { return t.entreprises }, id)
}

type utilisateurs struct{ s store }

func (r utilisateurs) Create(_ context.Context, u *entity.Utilisateur) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.utilisateurs, "utilisateurs", 0, func(_ int64, v entity.Utilisateur) bool {
			return v.EntrepriseID == u.EntrepriseID && strings.EqualFold(v.Login, u.Login)
		})
		if err != nil {
			return err
		}
		u.ID = t.utilisateurs.nextID()
		u.CreatedAt, u.UpdatedAt = r.s.now(), r.s.now()
		t.utilisateurs.rows[u.ID] = *u
		return nil
	})
}

func (r utilisateurs) GetByID(_ context.Context, id int64) (*entity.Utilisateur, error) {
	return getByID(r.s, func(t *tables) *table[entity.Utilisateur] { return t.utilisateurs }, id)
}

func (r utilisateurs) FindForLogin(_ context.Context, entrepriseID int64, identifiant string) (*entity.Utilisateur, error) {
	var out *entity.Utilisateur
	err := r.s.view(func(t *tables) error {
		found := t.utilisateurs.where(func(u entity.Utilisateur) bool {
			if u.EntrepriseID != entrepriseID {
				return false
			}
			return strings.EqualFold(u.Login, identifiant) || (u.Email != nil && strings.EqualFold(*u.Email, identifiant))
		})
		if len(found) > 0 {
			out = &found[0]
		}
		return nil
	})
	return out, err
}

func (r utilisateurs) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	return r.s.update(func(t *tables) error {
		if u, ok := t.utilisateurs.get(id); ok {
			u.LastLoginAt = &at
			t.utilisateurs.rows[id] = u
		}
		return nil
	})
}

type permissions struct{ s store }

func (r permissions) HasPermission(_ context.Context, roleID int64, module, action string) (bool, error) {
	var ok bool
	err := r.s.view(func(t *tables) error {
		for _, rp := range t.rolePermissions.rows {
			if rp.RoleID != roleID {
				continue
			}
			p, found := t.permissions.get(rp.PermissionID)
			if found && p.Module == module && p.Action == action {
				ok = true
				return nil
			}
		}
		return nil
	})
	return ok, err
}

func (r permissions) CreateRole(_ context.Context, role *entity.Role) error {
	return r.s.update(func(t *tables) error {
		err := unique(t.roles, "roles", 0, func(_ int64, v entity.Role) bool {
			return v.EntrepriseID == role.EntrepriseID && v.Code == role.Code
		})
		if err != nil {
			return err
		}
		role.ID = t.roles.nextID()
		t.roles.rows[role.ID] = *role
		return nil
	})
}

func (r permissions) Grant(_ context.Context, roleID int64, module, action string) error {
	return r.s.update(func(t *tables) error {
		var permID int64
		for id, p := range t.permissions.rows {
			if p.Module == module && p.Action == action {
				permID = id
				break
			}
		}
		if permID == 0 {
			permID = t.permissions.nextID()
			t.permissions.rows[permID] = entity.Permission{ID: permID, Module: module, Action: action}
		}
		for _, rp := range t.rolePermissions.rows {
			if rp.RoleID == roleID && rp.PermissionID == permID {
				return nil
			}
		}
		t.rolePermissions.rows[t.rolePermissions.nextID()] = rolePermission{RoleID: roleID, PermissionID: permID}
		return nil
	})
}

type etats struct{ s store }

func (r etats) GetByID(_ context.Context, id int64) (*entity.EtatDocument, error) {
	return getByID(r.s, func(t *tables) *table[entity.EtatDocument] { return t.etats }, id)
}

func (r etats) ListByType(_ context.Context, typeDocument string) ([]*entity.EtatDocument, error) {
	var out []entity.EtatDocument
	err := r.s.view(func(t *tables) error {
		out = t.etats.where(func(e entity.EtatDocument) bool { return e.TypeDocument == typeDocument })
		return nil
	})
	slices.SortStableFunc(out, func(a, b entity.EtatDocument) int { return a.Ordre - b.Ordre })
	return ptrs(out), err
}
