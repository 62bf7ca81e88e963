package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gesco-erp/gesco-api/internal/application/achats"
	"github.com/gesco-erp/gesco-api/internal/application/auth"
	"github.com/gesco-erp/gesco-api/internal/application/catalogue"
	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/paie"
	"github.com/gesco-erp/gesco-api/internal/application/parametrage"
	"github.com/gesco-erp/gesco-api/internal/application/partenaires"
	"github.com/gesco-erp/gesco-api/internal/application/rapports"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/tresorerie"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/memory"
	apphttp "github.com/gesco-erp/gesco-api/internal/interfaces/http"
	"github.com/gesco-erp/gesco-api/internal/testutil"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "secret-de-test-pour-les-handlers"
	testPassword = "motdepasse"
)

type apiEnv struct {
	env  *testutil.Env
	app  *fiber.App
	auth *auth.Service
}

// newAPI application complète sur la base en mémoire ; limiter nil désactive la limitation.
func newAPI(t *testing.T, limiter apphttp.RateLimiter) *apiEnv {
	t.Helper()
	env := testutil.New(t)
	log := logger.Nop()

	authSvc := auth.NewService(env.Store, memory.NewRefreshRegistry(), auth.Config{
		Secret:     testSecret,
		Issuer:     "gesco-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	stocks := stock.NewService(env.Store, env.DB)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "gesco-test", Limiter: limiter}, log)
	apphttp.Router(app, apphttp.RouterDeps{
		Auth:         authSvc,
		Authorizer:   tenant.NewAuthorizer(env.Store.Permissions()),
		Parametrage:  parametrage.NewService(env.Store),
		Catalogue:    catalogue.NewService(env.Store, env.DB),
		Partenaires:  partenaires.NewService(env.Store, env.DB),
		Stock:        stocks,
		Achats:       achats.NewService(env.Store, env.DB, stocks),
		Documents:    commercial.NewService(env.Store, env.DB),
		Comptabilite: comptabilite.NewService(env.Store, env.DB),
		Tresorerie:   tresorerie.NewService(env.Store, env.DB, true),
		Paie:         paie.NewService(env.Store, env.DB),
		Rapports:     rapports.NewService(env.Store),
		PageSize:     20,
	})
	return &apiEnv{env: env, app: app, auth: authSvc}
}

// user crée un utilisateur de l'entreprise A dans un rôle dédié et renvoie son acteur.
func (e *apiEnv) user(t *testing.T, login string) tenant.Actor {
	t.Helper()
	ctx := e.env.Ctx
	role := &entity.Role{EntrepriseID: e.env.A.EntrepriseID, Code: "role-" + login, Libelle: login}
	require.NoError(t, e.env.Store.Permissions().CreateRole(ctx, role))
	hash, err := auth.HashPassword(testPassword, bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Utilisateur{
		EntrepriseID: e.env.A.EntrepriseID,
		RoleID:       role.ID,
		Login:        login,
		Nom:          "Essomba",
		PasswordHash: hash,
		Actif:        true,
	}
	require.NoError(t, e.env.Store.Utilisateurs().Create(ctx, u))
	return tenant.Actor{UserID: u.ID, EntrepriseID: u.EntrepriseID, RoleID: role.ID}
}

func (e *apiEnv) grant(t *testing.T, a tenant.Actor, module string, actions ...string) {
	t.Helper()
	for _, action := range actions {
		require.NoError(t, e.env.Store.Permissions().Grant(e.env.Ctx, a.RoleID, module, action))
	}
}

// token ouvre une session et renvoie l'en-tête Authorization.
func (e *apiEnv) token(t *testing.T, login string) string {
	t.Helper()
	out, err := e.auth.Login(e.env.Ctx, dto.LoginRequest{EntrepriseID: e.env.A.EntrepriseID, Login: login, Password: testPassword})
	require.NoError(t, err)
	return "Bearer " + out.AccessToken
}

// path ajoute entreprise_id de A.
func (e *apiEnv) path(p string) string {
	return fmt.Sprintf("%s?entreprise_id=%d", p, e.env.A.EntrepriseID)
}

func (e *apiEnv) do(t *testing.T, method, path, authz string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authz != "" {
		req.Header.Set(fiber.HeaderAuthorization, authz)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func assertError(t *testing.T, resp *http.Response, status int, code string) dto.ErrorResponse {
	t.Helper()
	require.Equal(t, status, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, code, body.Code)
	assert.NotEmpty(t, body.Detail)
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SansEnTete_Retourne401(t *testing.T) {
	e := newAPI(t, nil)
	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "", nil)
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthMiddleware_FormatInvalide_Retourne401(t *testing.T) {
	e := newAPI(t, nil)
	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "Token abc", nil)
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthMiddleware_JetonInvalide_Retourne401(t *testing.T) {
	e := newAPI(t, nil)
	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "Bearer jeton.invalide.ici", nil)
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthMiddleware_JetonDeRafraichissementRefuse(t *testing.T) {
	e := newAPI(t, nil)
	e.user(t, "caisse")
	out, err := e.auth.Login(e.env.Ctx, dto.LoginRequest{EntrepriseID: e.env.A.EntrepriseID, Login: "caisse", Password: testPassword})
	require.NoError(t, err)

	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "Bearer "+out.RefreshToken, nil)
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestAuthMiddleware_MeRenvoieLeContexte(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "caisse")

	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", e.token(t, "caisse"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.MeResponse](t, resp)
	assert.Equal(t, a.UserID, me.UserID)
	assert.Equal(t, a.EntrepriseID, me.EntrepriseID)
	assert.Equal(t, a.RoleID, me.RoleID)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_SansPermission_Retourne403(t *testing.T) {
	e := newAPI(t, nil)
	e.user(t, "vendeur")

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/catalogue/produits"), e.token(t, "vendeur"), nil)
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN")
}

func TestRequirePermission_LectureAccordee(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "vendeur")
	e.grant(t, a, tenant.ModuleCatalogue, entity.ActionRead)
	e.env.Produit(e.env.A, "RIZ-25")

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/catalogue/produits"), e.token(t, "vendeur"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[dto.ProduitResponse]](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "RIZ-25", list.Items[0].Code)
}

func TestRequirePermission_LectureNAutorisePasLEcriture(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "vendeur")
	e.grant(t, a, tenant.ModuleCatalogue, entity.ActionRead)

	resp := e.do(t, fiber.MethodPost, "/api/v1/catalogue/produits", e.token(t, "vendeur"), map[string]any{
		"entreprise_id": a.EntrepriseID, "code": "P1", "libelle": "Produit", "unite_vente_id": e.env.Unite, "prix_vente_ttc": "100",
	})
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN")
}

func TestRequirePermission_PermissionDUnAutreModule(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "magasin")
	e.grant(t, a, tenant.ModuleStock, entity.ActionRead)

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/comptabilite/journaux"), e.token(t, "magasin"), nil)
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN")
}

func TestRequirePermission_TransitionExigeUpdate(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "acheteur")
	e.grant(t, a, tenant.ModuleAchats, entity.ActionCreate)

	resp := e.do(t, fiber.MethodPost, "/api/v1/achats/receptions/1/valider", e.token(t, "acheteur"), nil)
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN")

	e.grant(t, a, tenant.ModuleAchats, entity.ActionUpdate)
	resp = e.do(t, fiber.MethodPost, "/api/v1/achats/receptions/1/valider", e.token(t, "acheteur"), nil)
	assertError(t, resp, http.StatusNotFound, "NOT_FOUND")
}
