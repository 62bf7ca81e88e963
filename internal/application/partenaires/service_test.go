package partenaires_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/partenaires"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

func newService(t *testing.T) (*testutil.Env, *partenaires.Service) {
	env := testutil.New(t)
	return env, partenaires.NewService(env.Store, env.DB)
}

func client(env *testutil.Env, code, raison string) dto.TiersCreate {
	return dto.TiersCreate{
		EntrepriseID:  env.A.EntrepriseID,
		TypeTiers:     entity.TiersClient,
		Code:          code,
		RaisonSociale: raison,
	}
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

func TestTiers_Create(t *testing.T) {
	env, svc := newService(t)
	in := client(env, "CLI001", "Brasseries du Littoral")
	in.NIU = testutil.Ptr("m012345678901a")
	in.Pays = testutil.Ptr("CMR")
	in.BoitePostale = testutil.Ptr("BP 4036")

	got, err := svc.Create(env.Ctx, env.A, in)
	require.NoError(t, err)
	require.NotNil(t, got.NIU)
	assert.Equal(t, "M012345678901A", *got.NIU)
	assert.True(t, got.Actif)

	_, err = svc.Create(env.Ctx, env.A, in)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = svc.Create(env.Ctx, env.B, client(env, "CLI002", "X"))
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
}

func TestTiers_ControlesDeFormat(t *testing.T) {
	env, svc := newService(t)

	cases := []struct {
		name   string
		mutate func(*dto.TiersCreate)
		reason string
	}{
		{"type inconnu", func(in *dto.TiersCreate) { in.TypeTiers = "prospect" }, partenaires.ReasonTypeTiersInvalide},
		{"NIU trop long", func(in *dto.TiersCreate) { in.NIU = testutil.Ptr("M0123456789012345678X") }, "VALIDATION"},
		{"NIU non alphanumérique", func(in *dto.TiersCreate) { in.NIU = testutil.Ptr("M01-234") }, "VALIDATION"},
		{"pays alpha-2", func(in *dto.TiersCreate) { in.Pays = testutil.Ptr("CM") }, "VALIDATION"},
		{"email", func(in *dto.TiersCreate) { in.Email = testutil.Ptr("pas-un-email") }, "VALIDATION"},
		{"raison sociale vide", func(in *dto.TiersCreate) { in.RaisonSociale = "  " }, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := client(env, "CLI", "Client")
			tc.mutate(&in)
			_, err := svc.Create(env.Ctx, env.A, in)
			assertReason(t, err, tc.reason)
		})
	}
}

func TestTiers_Update(t *testing.T) {
	env, svc := newService(t)
	in := client(env, "CLI001", "Client")
	in.Ville = testutil.Ptr("Yaoundé")
	created, err := svc.Create(env.Ctx, env.A, in)
	require.NoError(t, err)

	got, err := svc.Update(env.Ctx, env.A, created.ID, dto.TiersUpdate{
		TypeTiers: dto.Some(entity.TiersMixte),
		Ville:     dto.Null[string](),
		RCCM:      dto.Some("RC/DLA/2019/B/1234"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TiersMixte, got.TypeTiers)
	assert.Nil(t, got.Ville)
	require.NotNil(t, got.RCCM)

	_, err = svc.Update(env.Ctx, env.A, created.ID, dto.TiersUpdate{RaisonSociale: dto.Null[string]()})
	assertReason(t, err, "CHAMP_NON_NULLABLE")

	_, err = svc.Update(env.Ctx, env.A, created.ID, dto.TiersUpdate{TypeTiers: dto.Some("autre")})
	assertReason(t, err, partenaires.ReasonTypeTiersInvalide)

	_, err = svc.Create(env.Ctx, env.A, client(env, "CLI002", "Autre"))
	require.NoError(t, err)
	_, err = svc.Update(env.Ctx, env.A, created.ID, dto.TiersUpdate{Code: dto.Some("CLI002")})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = svc.Get(env.Ctx, env.B, created.ID)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	_, err = svc.Get(env.Ctx, env.A, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTiers_ListEtRecherche(t *testing.T) {
	env, svc := newService(t)
	for _, in := range []dto.TiersCreate{
		client(env, "CLI002", "Société Camerounaise des Eaux"),
		client(env, "CLI001", "Brasseries du Littoral"),
		{EntrepriseID: env.A.EntrepriseID, TypeTiers: entity.TiersFournisseur, Code: "FRN001", RaisonSociale: "Cimenteries du Cameroun"},
	} {
		_, err := svc.Create(env.Ctx, env.A, in)
		require.NoError(t, err)
	}

	list, err := svc.List(env.Ctx, env.A, dto.TiersQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "CLI001", list.Items[0].Code)

	list, err = svc.List(env.Ctx, env.A, dto.TiersQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}, Search: "camer"})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	list, err = svc.List(env.Ctx, env.A, dto.TiersQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}, TypeTiers: entity.TiersFournisseur})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "FRN001", list.Items[0].Code)

	list, err = svc.List(env.Ctx, env.A, dto.TiersQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: dto.PageRequest{Skip: 1, Limit: 1}})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "CLI002", list.Items[0].Code)

	list, err = svc.List(env.Ctx, env.B, dto.TiersQuery{EntrepriseID: env.B.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
