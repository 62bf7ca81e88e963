package achats_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/achats"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env         *testutil.Env
	svc         *achats.Service
	depot       int64
	fournisseur int64
	produit     int64
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	return &fixture{
		env:         env,
		svc:         achats.NewService(env.Store, env.DB, stock.NewService(env.Store, env.DB)),
		depot:       env.Depot(env.A, "D1"),
		fournisseur: env.Tiers(env.A, "FRN1", entity.TiersFournisseur),
		produit:     env.Produit(env.A, "P1"),
	}
}

func (f *fixture) reception(numero string, qty ...string) dto.ReceptionCreate {
	in := dto.ReceptionCreate{
		EntrepriseID:  f.env.A.EntrepriseID,
		FournisseurID: f.fournisseur,
		DepotID:       f.depot,
		Numero:        numero,
		DateReception: dto.MustDate("2026-04-02"),
	}
	for _, q := range qty {
		in.Lignes = append(in.Lignes, dto.LigneReceptionCreate{ProduitID: f.produit, Quantite: testutil.D(q)})
	}
	return in
}

func (f *fixture) commandeFournisseur(t *testing.T, a int64, tiers int64) int64 {
	t.Helper()
	d := &entity.Document{
		EntrepriseID: a,
		TypeDocument: entity.FamilleCommandeFournisseur,
		TiersID:      tiers,
		Numero:       "CF-001",
		DateDocument: testutil.MustTime("2026-03-30"),
	}
	require.NoError(t, f.env.Store.Documents().Create(f.env.Ctx, d))
	return d.ID
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	de, ok := domain.As(err)
	require.True(t, ok, "erreur métier attendue, reçu %v", err)
	assert.Equal(t, code, de.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dépôts
// ──────────────────────────────────────────────────────────────────────────────

func TestDepot_CreateEtConflit(t *testing.T) {
	f := newFixture(t)
	in := dto.DepotCreate{
		EntrepriseID:   f.env.A.EntrepriseID,
		PointDeVenteID: &f.env.PDV,
		Code:           " MAG ",
		Libelle:        "Magasin central",
		Pays:           testutil.Ptr("CMR"),
	}

	d, err := f.svc.CreateDepot(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
	assert.Equal(t, "MAG", d.Code)
	assert.True(t, d.Actif)

	_, err = f.svc.CreateDepot(f.env.Ctx, f.env.A, in)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), "MAG")
}

func TestDepot_Refus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateDepot(f.env.Ctx, f.env.A, dto.DepotCreate{
		EntrepriseID: f.env.A.EntrepriseID, Code: "X", Libelle: "X", Pays: testutil.Ptr("ZZ"),
	})
	assertReason(t, err, "VALIDATION")

	_, err = f.svc.CreateDepot(f.env.Ctx, f.env.A, dto.DepotCreate{
		EntrepriseID: f.env.B.EntrepriseID, Code: "X", Libelle: "X",
	})
	assertCode(t, err, domain.CodeForbiddenEntreprise)

	pdvB := f.env.DB.AddPointDeVente(entity.PointDeVente{EntrepriseID: f.env.B.EntrepriseID, Code: "PDVB", Libelle: "B", Actif: true})
	_, err = f.svc.CreateDepot(f.env.Ctx, f.env.A, dto.DepotCreate{
		EntrepriseID: f.env.A.EntrepriseID, PointDeVenteID: &pdvB, Code: "X", Libelle: "X",
	})
	assertCode(t, err, domain.CodeForbiddenEntreprise)
}

func TestDepot_UpdateEtList(t *testing.T) {
	f := newFixture(t)

	t.Run("libelle et désactivation", func(t *testing.T) {
		d, err := f.svc.UpdateDepot(f.env.Ctx, f.env.A, f.depot, dto.DepotUpdate{
			Libelle: dto.Some("Entrepôt"),
			Actif:   dto.Some(false),
			Ville:   dto.Some("Douala"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Entrepôt", d.Libelle)
		assert.False(t, d.Actif)
		require.NotNil(t, d.Ville)
		assert.Equal(t, "Douala", *d.Ville)
	})

	t.Run("ville effacée", func(t *testing.T) {
		d, err := f.svc.UpdateDepot(f.env.Ctx, f.env.A, f.depot, dto.DepotUpdate{Ville: dto.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, d.Ville)
	})

	t.Run("code à null refusé", func(t *testing.T) {
		_, err := f.svc.UpdateDepot(f.env.Ctx, f.env.A, f.depot, dto.DepotUpdate{Code: dto.Null[string]()})
		assertReason(t, err, "CHAMP_NON_NULLABLE")
	})

	t.Run("code déjà pris", func(t *testing.T) {
		f.env.Depot(f.env.A, "D2")
		_, err := f.svc.UpdateDepot(f.env.Ctx, f.env.A, f.depot, dto.DepotUpdate{Code: dto.Some("D2")})
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("autre entreprise", func(t *testing.T) {
		_, err := f.svc.UpdateDepot(f.env.Ctx, f.env.B, f.depot, dto.DepotUpdate{Libelle: dto.Some("x")})
		assertCode(t, err, domain.CodeForbiddenEntreprise)
	})

	list, err := f.svc.ListDepots(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, dto.PageRequest{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	_, err = f.svc.GetDepot(f.env.Ctx, f.env.A, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// ──────────────────────────────────────────────────────────────────────────────
// Réceptions
// ──────────────────────────────────────────────────────────────────────────────

func TestReception_CreeEnBrouillonSansStock(t *testing.T) {
	f := newFixture(t)

	r, err := f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-001", "10", "2.5"))
	require.NoError(t, err)
	assert.Equal(t, entity.ReceptionBrouillon, r.Etat)
	require.Len(t, r.Lignes, 2)
	assert.Equal(t, 1, r.Lignes[0].Ordre)
	assert.Equal(t, 2, r.Lignes[1].Ordre)
	assert.Equal(t, f.env.A.CreatedBy(), r.CreatedByID)
	assert.True(t, f.env.Quantite(f.depot, f.produit).IsZero())

	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-001", "1"))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestReception_Refus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("  ", "1"))
	assertReason(t, err, achats.ReasonNumeroVide)

	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-1"))
	assertReason(t, err, "VALIDATION")

	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-1", "0"))
	assertReason(t, err, "VALIDATION")

	in := f.reception("REC-1", "1")
	in.FournisseurID = f.env.Tiers(f.env.A, "CLI", entity.TiersClient)
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assertReason(t, err, achats.ReasonTiersIncompatible)

	in = f.reception("REC-1", "1")
	in.DepotID = f.env.Depot(f.env.B, "DB")
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assertCode(t, err, domain.CodeForbiddenEntreprise)

	in = f.reception("REC-1", "1")
	in.Lignes[0].ProduitID = 999
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReception_CommandeFournisseur(t *testing.T) {
	f := newFixture(t)
	cf := f.commandeFournisseur(t, f.env.A.EntrepriseID, f.fournisseur)

	in := f.reception("REC-1", "1")
	in.CommandeFournisseurID = &cf
	r, err := f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
	assert.Equal(t, &cf, r.CommandeFournisseurID)

	autre := f.env.Tiers(f.env.A, "FRN2", entity.TiersFournisseur)
	in = f.reception("REC-2", "1")
	in.FournisseurID = autre
	in.CommandeFournisseurID = &cf
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assertReason(t, err, achats.ReasonCommandeFournisseur)

	in = f.reception("REC-3", "1")
	in.CommandeFournisseurID = testutil.Ptr[int64](999)
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReception_ValiderFaitEntrerLeStock(t *testing.T) {
	f := newFixture(t)
	r, err := f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-001", "10", "2.5"))
	require.NoError(t, err)

	v, err := f.svc.ValiderReception(f.env.Ctx, f.env.A, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceptionValidee, v.Etat)
	assert.True(t, f.env.Quantite(f.depot, f.produit).Equal(testutil.D("12.5")))

	list, err := f.env.Store.Mouvements().List(f.env.Ctx, repository.MouvementFilter{EntrepriseID: f.env.A.EntrepriseID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, m := range list {
		assert.Equal(t, entity.MouvementEntree, m.TypeMouvement)
		assert.Equal(t, entity.RefReception, m.ReferenceType)
		require.NotNil(t, m.ReferenceID)
		assert.Equal(t, r.ID, *m.ReferenceID)
	}

	_, err = f.svc.ValiderReception(f.env.Ctx, f.env.A, r.ID)
	assertReason(t, err, achats.ReasonTransitionInvalide)
	_, err = f.svc.AnnulerReception(f.env.Ctx, f.env.A, r.ID)
	assertReason(t, err, achats.ReasonTransitionInvalide)
	assert.True(t, f.env.Quantite(f.depot, f.produit).Equal(testutil.D("12.5")))
}

func (f *fixture) sansStock(t *testing.T, produitID int64) {
	t.Helper()
	require.NoError(t, f.env.DB.Run(f.env.Ctx, func(tx repository.Store) error {
		p, err := tx.Produits().GetByID(f.env.Ctx, produitID)
		if err != nil {
			return err
		}
		p.GererStock = false
		return tx.Produits().Update(f.env.Ctx, p)
	}))
}

func TestReception_ArticleControleALaCreation(t *testing.T) {
	f := newFixture(t)

	service := f.env.Produit(f.env.A, "SRV")
	f.sansStock(t, service)
	in := f.reception("REC-1", "1")
	in.Lignes[0].ProduitID = service
	_, err := f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assertReason(t, err, stock.ReasonStockNonGere)

	autre := f.env.Produit(f.env.A, "P2")
	varAutre := f.env.Variante(autre, "V-P2", true)
	in = f.reception("REC-1", "1")
	in.Lignes[0].VarianteID = &varAutre
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "reçu %v", err)

	commune := f.env.Variante(f.produit, "V-COMMUNE", false)
	in = f.reception("REC-1", "1")
	in.Lignes[0].VarianteID = &commune
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	assertReason(t, err, stock.ReasonVarianteNonSeparee)

	separee := f.env.Variante(f.produit, "V-SEP", true)
	in = f.reception("REC-1", "1")
	in.Lignes[0].VarianteID = &separee
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
}

func TestReception_ValidationAtomique(t *testing.T) {
	f := newFixture(t)
	p2 := f.env.Produit(f.env.A, "P2")

	in := f.reception("REC-001", "5")
	in.Lignes = append(in.Lignes, dto.LigneReceptionCreate{ProduitID: p2, Quantite: testutil.D("1")})
	r, err := f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)

	// le produit cesse d'être géré en stock entre la saisie et la validation
	f.sansStock(t, p2)

	_, err = f.svc.ValiderReception(f.env.Ctx, f.env.A, r.ID)
	assertReason(t, err, stock.ReasonStockNonGere)
	assert.True(t, f.env.Quantite(f.depot, f.produit).IsZero())

	got, err := f.svc.GetReception(f.env.Ctx, f.env.A, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceptionBrouillon, got.Etat)
}

func TestReception_AnnulerEtModifier(t *testing.T) {
	f := newFixture(t)
	r, err := f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-001", "3"))
	require.NoError(t, err)

	u, err := f.svc.UpdateReception(f.env.Ctx, f.env.A, r.ID, dto.ReceptionUpdate{
		NumeroBLFournisseur: dto.Some("BL-778"),
		DateReception:       dto.Some(dto.MustDate("2026-04-03")),
	})
	require.NoError(t, err)
	require.NotNil(t, u.NumeroBLFournisseur)
	assert.Equal(t, "BL-778", *u.NumeroBLFournisseur)
	assert.Len(t, u.Lignes, 1)

	_, err = f.svc.UpdateReception(f.env.Ctx, f.env.A, r.ID, dto.ReceptionUpdate{Numero: dto.Some(" ")})
	assertReason(t, err, achats.ReasonNumeroVide)

	a, err := f.svc.AnnulerReception(f.env.Ctx, f.env.A, r.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceptionAnnulee, a.Etat)
	assert.True(t, f.env.Quantite(f.depot, f.produit).IsZero())

	_, err = f.svc.UpdateReception(f.env.Ctx, f.env.A, r.ID, dto.ReceptionUpdate{Notes: dto.Some("x")})
	assertReason(t, err, achats.ReasonReceptionNonModif)

	_, err = f.svc.GetReception(f.env.Ctx, f.env.B, r.ID)
	assertCode(t, err, domain.CodeForbiddenEntreprise)
}

func TestReception_List(t *testing.T) {
	f := newFixture(t)
	r1, err := f.svc.CreateReception(f.env.Ctx, f.env.A, f.reception("REC-001", "1"))
	require.NoError(t, err)
	in := f.reception("REC-002", "1")
	in.DateReception = dto.MustDate("2026-04-05")
	_, err = f.svc.CreateReception(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
	_, err = f.svc.ValiderReception(f.env.Ctx, f.env.A, r1.ID)
	require.NoError(t, err)

	list, err := f.svc.ListReceptions(f.env.Ctx, f.env.A, dto.ReceptionQuery{EntrepriseID: f.env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "REC-002", list.Items[0].Numero)
	assert.Nil(t, list.Items[0].Lignes)

	list, err = f.svc.ListReceptions(f.env.Ctx, f.env.A, dto.ReceptionQuery{EntrepriseID: f.env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}, Etat: entity.ReceptionValidee})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "REC-001", list.Items[0].Numero)

	_, err = f.svc.ListReceptions(f.env.Ctx, f.env.A, dto.ReceptionQuery{EntrepriseID: f.env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}, Etat: "cloturee"})
	assertReason(t, err, achats.ReasonEtatReceptionInvalide)
}
