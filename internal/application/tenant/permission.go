package tenant

import (
	"context"
	"fmt"

	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Modules soumis au contrôle des permissions.
const (
	ModuleParametrage  = "parametrage"
	ModuleCatalogue    = "catalogue"
	ModuleCommercial   = "commercial"
	ModuleAchats       = "achats"
	ModuleStock        = "stock"
	ModuleComptabilite = "comptabilite"
	ModuleTresorerie   = "tresorerie"
	ModulePartenaires  = "partenaires"
	ModulePaie         = "paie"
	ModuleRapports     = "rapports"
)

// Modules liste complète, dans l'ordre des menus.
var Modules = []string{
	ModuleParametrage, ModuleCatalogue, ModuleCommercial, ModuleAchats, ModuleStock,
	ModuleComptabilite, ModuleTresorerie, ModulePartenaires, ModulePaie, ModuleRapports,
}

// Actions admises dans une permission.
var Actions = []string{entity.ActionRead, entity.ActionCreate, entity.ActionUpdate, entity.ActionDelete}

// Authorizer contrôle has_permission(role, module, action).
type Authorizer struct {
	perms repository.PermissionRepository
}

// NewAuthorizer construit le contrôleur.
func NewAuthorizer(perms repository.PermissionRepository) *Authorizer {
	return &Authorizer{perms: perms}
}

// HasPermission vrai si le rôle dispose de (module, action).
func (z *Authorizer) HasPermission(ctx context.Context, roleID int64, module, action string) (bool, error) {
	ok, err := z.perms.HasPermission(ctx, roleID, module, action)
	if err != nil {
		return false, fmt.Errorf("has permission: %w", err)
	}
	return ok, nil
}

// Require renvoie Forbidden si l'acteur n'a pas la permission.
func (z *Authorizer) Require(ctx context.Context, a Actor, module, action string) error {
	ok, err := z.HasPermission(ctx, a.RoleID, module, action)
	if err != nil {
		return err
	}
	if !ok {
		return domain.Forbidden("Permission insuffisante : %s / %s.", module, action)
	}
	return nil
}
