package http_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/memory"
	apphttp "github.com/gesco-erp/gesco-api/internal/interfaces/http"
	"github.com/gesco-erp/gesco-api/internal/testutil"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

var toutes = []string{entity.ActionRead, entity.ActionCreate, entity.ActionUpdate, entity.ActionDelete}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RenvoieLaPaireDeJetons(t *testing.T) {
	e := newAPI(t, nil)
	e.user(t, "caisse")

	resp := e.do(t, fiber.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		EntrepriseID: e.env.A.EntrepriseID, Login: "CAISSE", Password: testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.TokenResponse](t, resp)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, int64(900), out.ExpiresIn)
}

func TestLogin_MauvaisMotDePasse_Retourne401(t *testing.T) {
	e := newAPI(t, nil)
	e.user(t, "caisse")

	resp := e.do(t, fiber.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		EntrepriseID: e.env.A.EntrepriseID, Login: "caisse", Password: "faux",
	})
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestLogin_CorpsInvalide_Retourne400(t *testing.T) {
	e := newAPI(t, nil)
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"login":`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body := assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
	assert.Equal(t, "CORPS_INVALIDE", body.Reason)
}

func TestRefresh_JetonUtilisableUneSeuleFois(t *testing.T) {
	e := newAPI(t, nil)
	e.user(t, "caisse")
	out, err := e.auth.Login(e.env.Ctx, dto.LoginRequest{EntrepriseID: e.env.A.EntrepriseID, Login: "caisse", Password: testPassword})
	require.NoError(t, err)

	resp := e.do(t, fiber.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: out.RefreshToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = e.do(t, fiber.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshRequest{RefreshToken: out.RefreshToken})
	assertError(t, resp, http.StatusUnauthorized, "UNAUTHORIZED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conventions de ressources
// ──────────────────────────────────────────────────────────────────────────────

func TestListe_EntrepriseIDObligatoire(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModulePartenaires, entity.ActionRead)

	resp := e.do(t, fiber.MethodGet, "/api/v1/partenaires/tiers", e.token(t, "admin"), nil)
	body := assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
	assert.Equal(t, "ENTREPRISE_ID_REQUIS", body.Reason)
}

func TestListe_AutreEntreprise_Retourne403(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModulePartenaires, entity.ActionRead)

	path := fmt.Sprintf("/api/v1/partenaires/tiers?entreprise_id=%d", e.env.B.EntrepriseID)
	resp := e.do(t, fiber.MethodGet, path, e.token(t, "admin"), nil)
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN_ENTREPRISE")
}

func TestListe_PaginationInvalide_Retourne400(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModuleCatalogue, entity.ActionRead)

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/catalogue/produits")+"&limit=abc", e.token(t, "admin"), nil)
	assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
}

func TestProduit_CycleDeVie(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModuleCatalogue, toutes...)
	authz := e.token(t, "admin")

	resp := e.do(t, fiber.MethodPost, "/api/v1/catalogue/produits", authz, map[string]any{
		"entreprise_id":  a.EntrepriseID,
		"code":           "HUILE-1L",
		"libelle":        "Huile 1 L",
		"unite_vente_id": e.env.Unite,
		"prix_vente_ttc": "1500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ProduitResponse](t, resp)
	assert.True(t, created.PrixVenteTTC.Equal(testutil.D("1500")))
	item := fmt.Sprintf("/api/v1/catalogue/produits/%d", created.ID)

	resp = e.do(t, fiber.MethodPatch, item, authz, map[string]any{"libelle": "Huile de palme 1 L"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Huile de palme 1 L", decode[dto.ProduitResponse](t, resp).Libelle)

	resp = e.do(t, fiber.MethodGet, item, authz, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HUILE-1L", decode[dto.ProduitResponse](t, resp).Code)

	resp = e.do(t, fiber.MethodDelete, item, authz, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = e.do(t, fiber.MethodGet, item, authz, nil)
	assertError(t, resp, http.StatusNotFound, "NOT_FOUND")
}

func TestProduit_PayloadAutreEntreprise_Retourne403(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModuleCatalogue, toutes...)

	resp := e.do(t, fiber.MethodPost, "/api/v1/catalogue/produits", e.token(t, "admin"), map[string]any{
		"entreprise_id":  e.env.B.EntrepriseID,
		"code":           "P1",
		"libelle":        "Produit",
		"unite_vente_id": e.env.Unite,
		"prix_vente_ttc": "100",
	})
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN_ENTREPRISE")
}

func TestProduit_IdentifiantInvalide_Retourne400(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "admin")
	e.grant(t, a, tenant.ModuleCatalogue, entity.ActionRead)

	resp := e.do(t, fiber.MethodGet, "/api/v1/catalogue/produits/abc", e.token(t, "admin"), nil)
	body := assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
	assert.Equal(t, "IDENTIFIANT_INVALIDE", body.Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock
// ──────────────────────────────────────────────────────────────────────────────

func TestStock_TransfertEntreDepots(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "magasin")
	e.grant(t, a, tenant.ModuleStock, entity.ActionRead, entity.ActionCreate)
	d1 := e.env.Depot(e.env.A, "D1")
	d2 := e.env.Depot(e.env.A, "D2")
	p := e.env.Produit(e.env.A, "P7")
	e.env.SetStock(d1, p, "10")
	authz := e.token(t, "magasin")

	resp := e.do(t, fiber.MethodPost, "/api/v1/stock/mouvements", authz, map[string]any{
		"entreprise_id":  a.EntrepriseID,
		"type_mouvement": "transfert",
		"depot_id":       d1,
		"depot_dest_id":  d2,
		"produit_id":     p,
		"quantite":       "3",
		"reference_type": "transfert",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, e.env.Quantite(d1, p).Equal(testutil.D("7")))
	assert.True(t, e.env.Quantite(d2, p).Equal(testutil.D("3")))

	resp = e.do(t, fiber.MethodGet, fmt.Sprintf("/api/v1/stock/depots/%d/produits/%d/quantite", d2, p), authz, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	q := decode[dto.QuantiteResponse](t, resp)
	assert.True(t, q.Quantite.Equal(testutil.D("3")), "quantité %s", q.Quantite)
}

func TestStock_SortieInsuffisante_Retourne400(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "magasin")
	e.grant(t, a, tenant.ModuleStock, entity.ActionCreate)
	d1 := e.env.Depot(e.env.A, "D1")
	p := e.env.Produit(e.env.A, "P7")
	e.env.SetStock(d1, p, "2")

	resp := e.do(t, fiber.MethodPost, "/api/v1/stock/mouvements", e.token(t, "magasin"), map[string]any{
		"entreprise_id":  a.EntrepriseID,
		"type_mouvement": "sortie",
		"depot_id":       d1,
		"produit_id":     p,
		"quantite":       "5",
		"reference_type": "manuel",
	})
	assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
	assert.True(t, e.env.Quantite(d1, p).Equal(testutil.D("2")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rapports
// ──────────────────────────────────────────────────────────────────────────────

func TestRapports_ChiffreAffaires(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "direction")
	e.grant(t, a, tenant.ModuleRapports, entity.ActionRead)
	client := e.env.Tiers(e.env.A, "C1", entity.TiersClient)
	for i, ttc := range []string{"1200", "800"} {
		require.NoError(t, e.env.Store.Documents().Create(e.env.Ctx, &entity.Document{
			EntrepriseID: a.EntrepriseID,
			TypeDocument: entity.FamilleFacture,
			TiersID:      client,
			Numero:       fmt.Sprintf("FAC-%d", i),
			TypeFacture:  testutil.Ptr(entity.TypeFactureFacture),
			DateDocument: testutil.MustTime("2026-09-15"),
			MontantTTC:   testutil.D(ttc),
		}))
	}
	authz := e.token(t, "direction")

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/rapports/chiffre-affaires")+"&date_debut=2026-09-01&date_fin=2026-09-30", authz, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ca := decode[dto.ChiffreAffairesResponse](t, resp)
	assert.Equal(t, int64(2), ca.NombreFactures)
	assert.True(t, ca.MontantNetTTC.Equal(testutil.D("2000")), "net %s", ca.MontantNetTTC)

	resp = e.do(t, fiber.MethodGet, e.path("/api/v1/rapports/chiffre-affaires"), authz, nil)
	body := assertError(t, resp, http.StatusBadRequest, "BAD_REQUEST")
	assert.Equal(t, "DATES_REQUISES", body.Reason)

	resp = e.do(t, fiber.MethodGet, e.path("/api/v1/rapports/dashboard"), authz, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dash := decode[dto.DashboardResponse](t, resp)
	assert.Equal(t, int64(2), dash.NbFactures)
	assert.Nil(t, dash.PeriodeLabel)
}

func TestRapports_SansPermission_Retourne403(t *testing.T) {
	e := newAPI(t, nil)
	a := e.user(t, "vendeur")
	e.grant(t, a, tenant.ModuleCommercial, toutes...)

	resp := e.do(t, fiber.MethodGet, e.path("/api/v1/rapports/dashboard"), e.token(t, "vendeur"), nil)
	assertError(t, resp, http.StatusForbidden, "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Middlewares transverses
// ──────────────────────────────────────────────────────────────────────────────

func TestRateLimit_Retourne429AvecRetryAfter(t *testing.T) {
	e := newAPI(t, memory.NewRateLimiter(2, time.Minute))

	for range 2 {
		resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
	resp := e.do(t, fiber.MethodGet, "/api/v1/auth/me", "", nil)
	assertError(t, resp, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED")
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestErrorHandler_ErreurInterneMasquee(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, logger.Nop())
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pgx: connexion perdue vers 10.0.0.5")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INTERNAL_ERROR")
	assert.NotContains(t, string(raw), "pgx")
}

func TestErrorHandler_RouteInconnue_Retourne404(t *testing.T) {
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, logger.Nop())
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/nulle-part", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assertError(t, resp, http.StatusNotFound, "NOT_FOUND")
}
