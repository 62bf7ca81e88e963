package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// Actions dérivées de la méthode HTTP.
const (
	ActionRead   = entity.ActionRead
	ActionCreate = entity.ActionCreate
	ActionUpdate = entity.ActionUpdate
	ActionDelete = entity.ActionDelete
)

// contextResolver valide un jeton d'accès. Implémenté par *auth.Service.
type contextResolver interface {
	ResolveContext(ctx context.Context, bearer string) (tenant.Actor, error)
}

// permissionChecker implémenté par *tenant.Authorizer.
type permissionChecker interface {
	Require(ctx context.Context, a tenant.Actor, module, action string) error
}

// AuthMiddleware valide le jeton porteur et attache l'acteur au contexte de la requête.
func AuthMiddleware(resolver contextResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return domain.Unauthorized("En-tête Authorization requis.")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return domain.Unauthorized("Format attendu : Bearer <jeton>.")
		}
		a, err := resolver.ResolveContext(c.UserContext(), strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}
		c.SetUserContext(tenant.WithActor(c.UserContext(), a))
		return c.Next()
	}
}

// GetActor acteur attaché par AuthMiddleware.
func GetActor(c *fiber.Ctx) (tenant.Actor, error) {
	a, ok := tenant.FromContext(c.UserContext())
	if !ok {
		return tenant.Actor{}, domain.Unauthorized("Authentification requise.")
	}
	return a, nil
}

// actionFor GET→read, POST→create, PATCH/PUT→update, DELETE→delete.
func actionFor(method string) string {
	switch method {
	case fiber.MethodPost:
		return ActionCreate
	case fiber.MethodPatch, fiber.MethodPut:
		return ActionUpdate
	case fiber.MethodDelete:
		return ActionDelete
	default:
		return ActionRead
	}
}

// RequirePermission vérifie has_permission(rôle, module, action) ; à placer après AuthMiddleware.
// Les transitions (POST …/valider, …/cloturer) comptent comme des mises à jour.
func RequirePermission(module string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := GetActor(c)
		if err != nil {
			return err
		}
		action := actionFor(c.Method())
		if action == ActionCreate && isTransition(c.Path()) {
			action = ActionUpdate
		}
		if err := checker.Require(c.UserContext(), a, module, action); err != nil {
			return err
		}
		return c.Next()
	}
}

var transitions = []string{"/valider", "/annuler", "/cloturer", "/payer", "/recalculer-restant-du"}

func isTransition(path string) bool {
	for _, t := range transitions {
		if strings.HasSuffix(path, t) {
			return true
		}
	}
	return false
}
