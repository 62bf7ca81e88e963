package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/memory"
	"github.com/gesco-erp/gesco-api/internal/testutil"
	"github.com/gesco-erp/gesco-api/pkg/jwt"
)

const secret = "secret-de-test-suffisamment-long"

type fixture struct {
	env *testutil.Env
	svc *Service
	usr *entity.Utilisateur
}

func setup(t *testing.T) *fixture {
	t.Helper()
	env := testutil.New(t)
	svc := NewService(env.Store, memory.NewRefreshRegistry(), Config{
		Secret:     secret,
		Issuer:     "gesco-test",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
	return &fixture{env: env, svc: svc, usr: user(t, env, "Caissier", "caisse@exemple.cm", true)}
}

func user(t *testing.T, env *testutil.Env, login, email string, actif bool) *entity.Utilisateur {
	t.Helper()
	hash, err := HashPassword("motdepasse", bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Utilisateur{
		EntrepriseID: env.A.EntrepriseID,
		RoleID:       env.A.RoleID,
		Login:        login,
		Email:        testutil.Ptr(email),
		PasswordHash: hash,
		Nom:          "Mbarga",
		Actif:        actif,
	}
	require.NoError(t, env.Store.Utilisateurs().Create(env.Ctx, u))
	return u
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	e, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeUnauthorized, e.Code)
}

// ──────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────

func TestLogin_Succes(t *testing.T) {
	f := setup(t)

	out, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: "  caissier ", Password: "motdepasse"})
	require.NoError(t, err)
	assert.Equal(t, TokenType, out.TokenType)
	assert.Equal(t, int64(900), out.ExpiresIn)
	assert.NotEqual(t, out.AccessToken, out.RefreshToken)

	claims, err := jwt.Parse(secret, out.AccessToken, jwt.TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, f.usr.ID, claims.UserID)
	assert.Equal(t, f.env.A.EntrepriseID, claims.EntrepriseID)

	u, err := f.env.Store.Utilisateurs().GetByID(f.env.Ctx, f.usr.ID)
	require.NoError(t, err)
	assert.NotNil(t, u.LastLoginAt)
}

func TestLogin_ParEmail(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: "CAISSE@exemple.cm", Password: "motdepasse"})
	require.NoError(t, err)
}

func TestLogin_IdentifiantNonASCII(t *testing.T) {
	f := setup(t)
	u := user(t, f.env, "Straße", "strasse@exemple.cm", true)

	for _, login := range []string{"Straße", " STRAßE "} {
		out, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: login, Password: "motdepasse"})
		require.NoError(t, err, login)
		claims, err := jwt.Parse(secret, out.AccessToken, jwt.TypeAccess)
		require.NoError(t, err)
		assert.Equal(t, u.ID, claims.UserID)
	}
}

func TestLogin_RefusIdentiques(t *testing.T) {
	f := setup(t)
	user(t, f.env, "inactif", "inactif@exemple.cm", false)

	cases := []dto.LoginRequest{
		{EntrepriseID: f.env.A.EntrepriseID, Login: "caissier", Password: "mauvais"},
		{EntrepriseID: f.env.A.EntrepriseID, Login: "inconnu", Password: "motdepasse"},
		{EntrepriseID: f.env.A.EntrepriseID, Login: "inactif", Password: "motdepasse"},
		{EntrepriseID: f.env.B.EntrepriseID, Login: "caissier", Password: "motdepasse"},
	}
	for _, in := range cases {
		_, err := f.svc.Login(f.env.Ctx, in)
		assertUnauthorized(t, err)
		e, _ := domain.As(err)
		assert.Equal(t, msgIdentifiants, e.Message)
	}
}

func TestLogin_Validation(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: " ", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// ──────────────────────────────────────────────────────────────
// Rafraîchissement
// ──────────────────────────────────────────────────────────────

func TestRefresh_Rotation(t *testing.T) {
	f := setup(t)
	first, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: "caissier", Password: "motdepasse"})
	require.NoError(t, err)

	second, err := f.svc.Refresh(f.env.Ctx, dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.svc.Refresh(f.env.Ctx, dto.RefreshRequest{RefreshToken: first.RefreshToken})
	assertUnauthorized(t, err)

	_, err = f.svc.Refresh(f.env.Ctx, dto.RefreshRequest{RefreshToken: second.RefreshToken})
	require.NoError(t, err)
}

func TestRefresh_JetonAccesRefuse(t *testing.T) {
	f := setup(t)
	out, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: "caissier", Password: "motdepasse"})
	require.NoError(t, err)

	_, err = f.svc.Refresh(f.env.Ctx, dto.RefreshRequest{RefreshToken: out.AccessToken})
	assertUnauthorized(t, err)
}

// ──────────────────────────────────────────────────────────────
// Contexte
// ──────────────────────────────────────────────────────────────

func TestResolveContext(t *testing.T) {
	f := setup(t)
	out, err := f.svc.Login(f.env.Ctx, dto.LoginRequest{EntrepriseID: f.env.A.EntrepriseID, Login: "caissier", Password: "motdepasse"})
	require.NoError(t, err)

	a, err := f.svc.ResolveContext(f.env.Ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tenant.Actor{UserID: f.usr.ID, EntrepriseID: f.env.A.EntrepriseID, RoleID: f.env.A.RoleID}, a)

	_, err = f.svc.ResolveContext(f.env.Ctx, "")
	assertUnauthorized(t, err)
	_, err = f.svc.ResolveContext(f.env.Ctx, out.RefreshToken)
	assertUnauthorized(t, err)
	_, err = f.svc.ResolveContext(f.env.Ctx, "pas.un.jeton")
	assertUnauthorized(t, err)
}

func TestResolveContext_EntrepriseFalsifiee(t *testing.T) {
	f := setup(t)
	iss, err := jwt.Generate(secret, jwt.Subject{UserID: f.usr.ID, EntrepriseID: f.env.B.EntrepriseID, RoleID: f.env.A.RoleID}, jwt.TypeAccess, "gesco-test", time.Minute)
	require.NoError(t, err)

	_, err = f.svc.ResolveContext(f.env.Ctx, iss.Token)
	assertUnauthorized(t, err)
}

func TestMe(t *testing.T) {
	f := setup(t)
	a := tenant.Actor{UserID: f.usr.ID, EntrepriseID: f.env.A.EntrepriseID, RoleID: f.env.A.RoleID}

	me, err := f.svc.Me(f.env.Ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Caissier", me.Login)
	assert.Equal(t, "Société ENT1", me.RaisonSociale)
	assert.Equal(t, "caisse@exemple.cm", *me.Email)
}
