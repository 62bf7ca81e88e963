package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/catalogue"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

func newService(t *testing.T) (*testutil.Env, *catalogue.Service) {
	env := testutil.New(t)
	return env, catalogue.NewService(env.Store, env.DB)
}

func produit(env *testutil.Env, code string) dto.ProduitCreate {
	return dto.ProduitCreate{
		EntrepriseID: env.A.EntrepriseID,
		Code:         code,
		Libelle:      "Produit " + code,
		UniteVenteID: env.Unite,
		PrixVenteTTC: testutil.D("1500"),
	}
}

func famille(env *testutil.Env, code string, parent *int64) dto.FamilleCreate {
	return dto.FamilleCreate{EntrepriseID: env.A.EntrepriseID, Code: code, Libelle: "Famille " + code, ParentID: parent}
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

func page(limit int) dto.PageRequest {
	return dto.PageRequest{Limit: limit}
}

// ──────────────────────────────────────────────────────────────────────────────
// Produits
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduit_Defauts(t *testing.T) {
	env, svc := newService(t)

	res, err := svc.CreateProduit(env.Ctx, env.A, produit(env, "  SAVON  "))
	require.NoError(t, err)
	assert.Equal(t, "SAVON", res.Code)
	assert.Equal(t, catalogue.TypeProduit, res.Type)
	assert.True(t, res.GererStock)
	assert.True(t, res.Actif)
	assert.Equal(t, env.A.CreatedBy(), res.CreatedByID)

	got, err := svc.GetProduit(env.Ctx, env.A, res.ID)
	require.NoError(t, err)
	assert.Equal(t, res, got)
}

func TestCreateProduit_CodeEnDouble(t *testing.T) {
	env, svc := newService(t)
	_, err := svc.CreateProduit(env.Ctx, env.A, produit(env, "SAVON"))
	require.NoError(t, err)

	_, err = svc.CreateProduit(env.Ctx, env.A, produit(env, "SAVON"))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "SAVON")
}

func TestCreateProduit_Refus(t *testing.T) {
	env, svc := newService(t)

	in := produit(env, "P1")
	in.Type = "kit"
	assertReason(t, errOf(svc.CreateProduit(env.Ctx, env.A, in)), catalogue.ReasonTypeProduitInvalide)

	in = produit(env, "P1")
	in.SeuilAlerteMin = testutil.Ptr(testutil.D("10"))
	in.SeuilAlerteMax = testutil.Ptr(testutil.D("5"))
	assertReason(t, errOf(svc.CreateProduit(env.Ctx, env.A, in)), catalogue.ReasonSeuilsIncoherents)

	in = produit(env, "P1")
	in.UniteVenteID = 999
	assert.ErrorIs(t, errOf(svc.CreateProduit(env.Ctx, env.A, in)), domain.ErrNotFound)

	in = produit(env, "P1")
	in.PrixVenteTTC = testutil.D("-1")
	assertReason(t, errOf(svc.CreateProduit(env.Ctx, env.A, in)), "VALIDATION")

	in = produit(env, "P1")
	in.EntrepriseID = env.B.EntrepriseID
	assert.ErrorIs(t, errOf(svc.CreateProduit(env.Ctx, env.A, in)), domain.ErrForbidden)
}

func TestCreateProduit_FamilleAutreEntreprise(t *testing.T) {
	env, svc := newService(t)
	fb, err := svc.CreateFamille(env.Ctx, env.B, dto.FamilleCreate{EntrepriseID: env.B.EntrepriseID, Code: "FB", Libelle: "B"})
	require.NoError(t, err)

	in := produit(env, "P1")
	in.FamilleID = &fb.ID
	_, err = svc.CreateProduit(env.Ctx, env.A, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
}

func TestGetProduit_AutreEntreprise(t *testing.T) {
	env, svc := newService(t)
	id := env.Produit(env.B, "PB")

	_, err := svc.GetProduit(env.Ctx, env.A, id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProduit(t *testing.T) {
	env, svc := newService(t)
	p, err := svc.CreateProduit(env.Ctx, env.A, produit(env, "P1"))
	require.NoError(t, err)

	t.Run("corps vide", func(t *testing.T) {
		res, err := svc.UpdateProduit(env.Ctx, env.A, p.ID, dto.ProduitUpdate{})
		require.NoError(t, err)
		assert.Equal(t, p.Code, res.Code)
		assert.True(t, p.PrixVenteTTC.Equal(res.PrixVenteTTC))
	})

	t.Run("valeurs et effacement", func(t *testing.T) {
		res, err := svc.UpdateProduit(env.Ctx, env.A, p.ID, dto.ProduitUpdate{
			Libelle:        dto.Some("Savon de Marseille"),
			CodeBarre:      dto.Some("6001234567890"),
			SeuilAlerteMin: dto.Some(testutil.D("2")),
		})
		require.NoError(t, err)
		assert.Equal(t, "Savon de Marseille", res.Libelle)
		require.NotNil(t, res.CodeBarre)
		require.NotNil(t, res.SeuilAlerteMin)

		res, err = svc.UpdateProduit(env.Ctx, env.A, p.ID, dto.ProduitUpdate{CodeBarre: dto.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, res.CodeBarre)
		assert.NotNil(t, res.SeuilAlerteMin)
	})

	t.Run("champ obligatoire à null", func(t *testing.T) {
		_, err := svc.UpdateProduit(env.Ctx, env.A, p.ID, dto.ProduitUpdate{Libelle: dto.Null[string]()})
		assertReason(t, err, "CHAMP_NON_NULLABLE")
	})

	t.Run("seuils incohérents après fusion", func(t *testing.T) {
		_, err := svc.UpdateProduit(env.Ctx, env.A, p.ID, dto.ProduitUpdate{SeuilAlerteMax: dto.Some(testutil.D("1"))})
		assertReason(t, err, catalogue.ReasonSeuilsIncoherents)
	})

	t.Run("autre entreprise", func(t *testing.T) {
		_, err := svc.UpdateProduit(env.Ctx, env.B, p.ID, dto.ProduitUpdate{Libelle: dto.Some("x")})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeleteProduit_Logique(t *testing.T) {
	env, svc := newService(t)
	p, err := svc.CreateProduit(env.Ctx, env.A, produit(env, "P1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduit(env.Ctx, env.A, p.ID))

	_, err = svc.GetProduit(env.Ctx, env.A, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	list, err := svc.ListProduits(env.Ctx, env.A, dto.ProduitQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: page(100)})
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.ErrorIs(t, svc.DeleteProduit(env.Ctx, env.A, p.ID), domain.ErrNotFound)

	// le code est de nouveau disponible
	_, err = svc.CreateProduit(env.Ctx, env.A, produit(env, "P1"))
	assert.NoError(t, err)
}

func TestListProduits_Recherche(t *testing.T) {
	env, svc := newService(t)
	for _, code := range []string{"RIZ-25", "HUILE-1L", "RIZ-50"} {
		_, err := svc.CreateProduit(env.Ctx, env.A, produit(env, code))
		require.NoError(t, err)
	}
	in := produit(env, "SUCRE")
	in.CodeBarre = testutil.Ptr("RIZBAR")
	_, err := svc.CreateProduit(env.Ctx, env.A, in)
	require.NoError(t, err)
	env.Produit(env.B, "RIZ-B")

	list, err := svc.ListProduits(env.Ctx, env.A, dto.ProduitQuery{EntrepriseID: env.A.EntrepriseID, Search: "riz", PageRequest: page(100)})
	require.NoError(t, err)
	codes := []string{}
	for _, p := range list.Items {
		codes = append(codes, p.Code)
	}
	assert.Equal(t, []string{"RIZ-25", "RIZ-50", "SUCRE"}, codes)

	list, err = svc.ListProduits(env.Ctx, env.A, dto.ProduitQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: dto.PageRequest{Skip: 1, Limit: 2}})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "RIZ-25", list.Items[0].Code)

	_, err = svc.ListProduits(env.Ctx, env.A, dto.ProduitQuery{EntrepriseID: env.A.EntrepriseID, PageRequest: page(catalogue.MaxProduits + 1)})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// ──────────────────────────────────────────────────────────────────────────────
// Variantes
// ──────────────────────────────────────────────────────────────────────────────

func TestVariantes(t *testing.T) {
	env, svc := newService(t)
	p := env.Produit(env.A, "TSHIRT")

	v, err := svc.CreateVariante(env.Ctx, env.A, p, dto.VarianteCreate{Code: "XL", Libelle: "Taille XL", StockSepare: true})
	require.NoError(t, err)
	assert.Equal(t, p, v.ProduitID)

	_, err = svc.CreateVariante(env.Ctx, env.A, p, dto.VarianteCreate{Code: "XL", Libelle: "Doublon"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := svc.ListVariantes(env.Ctx, env.A, p)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.CreateVariante(env.Ctx, env.B, p, dto.VarianteCreate{Code: "S", Libelle: "S"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	autre := env.Produit(env.A, "PANTALON")
	assert.ErrorIs(t, svc.DeleteVariante(env.Ctx, env.A, autre, v.ID), domain.ErrNotFound)

	require.NoError(t, svc.DeleteVariante(env.Ctx, env.A, p, v.ID))
	list, err = svc.ListVariantes(env.Ctx, env.A, p)
	require.NoError(t, err)
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Familles
// ──────────────────────────────────────────────────────────────────────────────

func TestFamilles_Arborescence(t *testing.T) {
	env, svc := newService(t)

	racine, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "ALIM", nil))
	require.NoError(t, err)
	assert.Equal(t, catalogue.NiveauRacine, racine.Niveau)

	fille, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "CEREALES", &racine.ID))
	require.NoError(t, err)
	assert.Equal(t, 2, fille.Niveau)

	petite, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "RIZ", &fille.ID))
	require.NoError(t, err)
	assert.Equal(t, 3, petite.Niveau)

	enfants, err := svc.ListFamilles(env.Ctx, env.A, env.A.EntrepriseID, &racine.ID, page(100))
	require.NoError(t, err)
	require.Len(t, enfants.Items, 1)
	assert.Equal(t, "CEREALES", enfants.Items[0].Code)

	_, err = svc.CreateFamille(env.Ctx, env.A, famille(env, "ALIM", nil))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateFamille_Cycle(t *testing.T) {
	env, svc := newService(t)
	a, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "A", nil))
	require.NoError(t, err)
	b, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "B", &a.ID))
	require.NoError(t, err)
	c, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "C", &b.ID))
	require.NoError(t, err)

	_, err = svc.UpdateFamille(env.Ctx, env.A, a.ID, dto.FamilleUpdate{ParentID: dto.Some(c.ID)})
	assertReason(t, err, catalogue.ReasonFamilleCycle)

	_, err = svc.UpdateFamille(env.Ctx, env.A, a.ID, dto.FamilleUpdate{ParentID: dto.Some(a.ID)})
	assertReason(t, err, catalogue.ReasonFamilleCycle)
}

func TestUpdateFamille_DeplacementRecalculeLesNiveaux(t *testing.T) {
	env, svc := newService(t)
	a, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "A", nil))
	require.NoError(t, err)
	b, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "B", &a.ID))
	require.NoError(t, err)
	c, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "C", &b.ID))
	require.NoError(t, err)

	res, err := svc.UpdateFamille(env.Ctx, env.A, b.ID, dto.FamilleUpdate{ParentID: dto.Null[int64]()})
	require.NoError(t, err)
	assert.Nil(t, res.ParentID)
	assert.Equal(t, 1, res.Niveau)

	got, err := svc.GetFamille(env.Ctx, env.A, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Niveau)
}

func TestFamilles_Isolation(t *testing.T) {
	env, svc := newService(t)
	fb, err := svc.CreateFamille(env.Ctx, env.B, dto.FamilleCreate{EntrepriseID: env.B.EntrepriseID, Code: "FB", Libelle: "B"})
	require.NoError(t, err)

	_, err = svc.CreateFamille(env.Ctx, env.A, famille(env, "FA", &fb.ID))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetFamille(env.Ctx, env.A, fb.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteFamille(t *testing.T) {
	env, svc := newService(t)
	a, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "A", nil))
	require.NoError(t, err)
	b, err := svc.CreateFamille(env.Ctx, env.A, famille(env, "B", &a.ID))
	require.NoError(t, err)

	assertReason(t, svc.DeleteFamille(env.Ctx, env.A, a.ID), catalogue.ReasonFamilleEnfants)

	require.NoError(t, svc.DeleteFamille(env.Ctx, env.A, b.ID))
	_, err = svc.GetFamille(env.Ctx, env.A, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteFamille(env.Ctx, env.A, a.ID))
	in := produit(env, "P1")
	in.FamilleID = &a.ID
	_, err = svc.CreateProduit(env.Ctx, env.A, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func errOf[T any](_ T, err error) error {
	return err
}
