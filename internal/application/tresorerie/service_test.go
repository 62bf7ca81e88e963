package tresorerie_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tresorerie"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env         *testutil.Env
	svc         *tresorerie.Service
	docs        *commercial.Service
	client      int64
	fournisseur int64
	mode        int64
	caisse      int64
}

func newFixture(t *testing.T, imputation bool) *fixture {
	env := testutil.New(t)
	return &fixture{
		env:         env,
		svc:         tresorerie.NewService(env.Store, env.DB, imputation),
		docs:        commercial.NewService(env.Store, env.DB),
		client:      env.Tiers(env.A, "CLI1", entity.TiersClient),
		fournisseur: env.Tiers(env.A, "FRN1", entity.TiersFournisseur),
		mode:        env.ModePaiement(env.A, "ESP"),
		caisse:      env.CompteTresorerie(env.A, "CAISSE"),
	}
}

func (f *fixture) facture(t *testing.T, numero, ttc string) int64 {
	t.Helper()
	d, err := f.docs.Create(f.env.Ctx, f.env.A, commercial.Facture, dto.DocumentCreate{
		EntrepriseID:   f.env.A.EntrepriseID,
		PointDeVenteID: &f.env.PDV,
		ClientID:       &f.client,
		Numero:         numero,
		DateDocument:   dto.MustDate("2026-05-01"),
		MontantTTC:     testutil.D(ttc),
	})
	require.NoError(t, err)
	return d.ID
}

func (f *fixture) factureFournisseur(t *testing.T, numero, ttc string) int64 {
	t.Helper()
	d, err := f.docs.Create(f.env.Ctx, f.env.A, commercial.FactureFournisseur, dto.DocumentCreate{
		EntrepriseID:  f.env.A.EntrepriseID,
		FournisseurID: &f.fournisseur,
		Numero:        numero,
		DateDocument:  dto.MustDate("2026-05-01"),
		MontantTTC:    testutil.D(ttc),
	})
	require.NoError(t, err)
	return d.ID
}

func (f *fixture) reglementClient(factureID int64, montant string) dto.ReglementCreate {
	return dto.ReglementCreate{
		EntrepriseID:       f.env.A.EntrepriseID,
		TypeReglement:      entity.ReglementClient,
		FactureID:          &factureID,
		TiersID:            f.client,
		Montant:            testutil.D(montant),
		DateReglement:      dto.MustDate("2026-05-10"),
		ModePaiementID:     f.mode,
		CompteTresorerieID: f.caisse,
	}
}

func (f *fixture) restant(t *testing.T, famille *commercial.Famille, id int64) (string, string) {
	t.Helper()
	d, err := f.docs.Get(f.env.Ctx, f.env.A, famille, id)
	require.NoError(t, err)
	require.NotNil(t, d.MontantRestantDu)
	require.NotNil(t, d.StatutPaiement)
	return d.MontantRestantDu.StringFixed(2), *d.StatutPaiement
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Règlements
// ──────────────────────────────────────────────────────────────────────────────

func TestReglement_ImputationAutomatique(t *testing.T) {
	f := newFixture(t, true)
	fac := f.facture(t, "FAC-001", "100000")

	r, err := f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "40000"))
	require.NoError(t, err)
	assert.Equal(t, f.env.A.CreatedBy(), r.CreatedByID)
	restant, statut := f.restant(t, commercial.Facture, fac)
	assert.Equal(t, "60000.00", restant)
	assert.Equal(t, entity.StatutPartiel, statut)

	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "60000.01"))
	assertReason(t, err, tresorerie.ReasonSuperieurRestantDu)

	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "60000"))
	require.NoError(t, err)
	restant, statut = f.restant(t, commercial.Facture, fac)
	assert.Equal(t, "0.00", restant)
	assert.Equal(t, entity.StatutPaye, statut)

	list, err := f.svc.ListReglements(f.env.Ctx, f.env.A, dto.ReglementQuery{EntrepriseID: f.env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestReglement_SansImputation(t *testing.T) {
	f := newFixture(t, false)
	fac := f.facture(t, "FAC-001", "1000")

	_, err := f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "1500"))
	require.NoError(t, err)
	restant, statut := f.restant(t, commercial.Facture, fac)
	assert.Equal(t, "1000.00", restant)
	assert.Equal(t, entity.StatutNonPaye, statut)

	d, err := f.docs.RecalculerRestantDu(f.env.Ctx, f.env.A, commercial.Facture, fac)
	require.NoError(t, err)
	assert.True(t, d.MontantRestantDu.IsZero())
}

func TestReglement_Fournisseur(t *testing.T) {
	f := newFixture(t, true)
	ff := f.factureFournisseur(t, "FF-001", "500")

	in := dto.ReglementCreate{
		EntrepriseID:         f.env.A.EntrepriseID,
		TypeReglement:        entity.ReglementFournisseur,
		FactureFournisseurID: &ff,
		TiersID:              f.fournisseur,
		Montant:              testutil.D("500"),
		DateReglement:        dto.MustDate("2026-05-10"),
		ModePaiementID:       f.mode,
		CompteTresorerieID:   f.caisse,
	}
	_, err := f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
	_, statut := f.restant(t, commercial.FactureFournisseur, ff)
	assert.Equal(t, entity.StatutPaye, statut)
}

func TestReglement_Refus(t *testing.T) {
	f := newFixture(t, true)
	fac := f.facture(t, "FAC-001", "1000")
	ff := f.factureFournisseur(t, "FF-001", "500")

	in := f.reglementClient(fac, "10")
	in.TypeReglement = "avoir"
	_, err := f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	assertReason(t, err, tresorerie.ReasonTypeReglementInvalide)

	in = f.reglementClient(fac, "10")
	in.FactureFournisseurID = &ff
	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	assertReason(t, err, tresorerie.ReasonFactureIncoherente)

	in = f.reglementClient(fac, "10")
	in.TypeReglement = entity.ReglementFournisseur
	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	assertReason(t, err, tresorerie.ReasonFactureIncoherente)

	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "0"))
	assertReason(t, err, "VALIDATION")

	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(ff, "10"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	in = f.reglementClient(fac, "10")
	in.TiersID = f.env.Tiers(f.env.A, "CLI2", entity.TiersClient)
	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	assertReason(t, err, tresorerie.ReasonTiersIncoherent)

	in = f.reglementClient(fac, "10")
	in.CompteTresorerieID = f.env.CompteTresorerie(f.env.B, "CAISSE-B")
	_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	restant, _ := f.restant(t, commercial.Facture, fac)
	assert.Equal(t, "1000.00", restant)
}

func TestReglement_FactureNonPayable(t *testing.T) {
	for _, imputation := range []bool{true, false} {
		f := newFixture(t, imputation)
		for _, typ := range []string{entity.TypeFactureAvoir, entity.TypeFactureProforma, entity.TypeFactureDuplicata} {
			d, err := f.docs.Create(f.env.Ctx, f.env.A, commercial.Facture, dto.DocumentCreate{
				EntrepriseID:   f.env.A.EntrepriseID,
				PointDeVenteID: &f.env.PDV,
				ClientID:       &f.client,
				Numero:         "DOC-" + typ,
				TypeFacture:    testutil.Ptr(typ),
				DateDocument:   dto.MustDate("2026-05-01"),
				MontantTTC:     testutil.D("5000"),
			})
			require.NoError(t, err)

			_, err = f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(d.ID, "1000"))
			assertReason(t, err, tresorerie.ReasonFactureNonPayable)

			restant, statut := f.restant(t, commercial.Facture, d.ID)
			assert.Equal(t, "5000.00", restant)
			assert.Equal(t, entity.StatutNonPaye, statut)
		}
	}
}

func TestReglement_GetEtFiltres(t *testing.T) {
	f := newFixture(t, true)
	fac := f.facture(t, "FAC-001", "1000")
	r, err := f.svc.CreateReglement(f.env.Ctx, f.env.A, f.reglementClient(fac, "10"))
	require.NoError(t, err)

	got, err := f.svc.GetReglement(f.env.Ctx, f.env.A, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Montant.Equal(testutil.D("10")))

	_, err = f.svc.GetReglement(f.env.Ctx, f.env.B, r.ID)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	list, err := f.svc.ListReglements(f.env.Ctx, f.env.A, dto.ReglementQuery{
		EntrepriseID: f.env.A.EntrepriseID, TypeReglement: entity.ReglementFournisseur, PageRequest: dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	_, err = f.svc.ListReglements(f.env.Ctx, f.env.A, dto.ReglementQuery{EntrepriseID: f.env.A.EntrepriseID, PageRequest: dto.PageRequest{Limit: 50}, TypeReglement: "x"})
	assertReason(t, err, tresorerie.ReasonTypeReglementInvalide)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comptes et modes de paiement
// ──────────────────────────────────────────────────────────────────────────────

func TestCompte_CreateEtList(t *testing.T) {
	f := newFixture(t, true)

	c, err := f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteTresorerieCreate{
		EntrepriseID: f.env.A.EntrepriseID, Code: "BQ1", Libelle: "Banque", TypeCompte: tresorerie.CompteBanque, DeviseID: f.env.XAF,
	})
	require.NoError(t, err)
	assert.True(t, c.Actif)

	_, err = f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteTresorerieCreate{
		EntrepriseID: f.env.A.EntrepriseID, Code: "BQ1", Libelle: "Banque", TypeCompte: tresorerie.CompteBanque, DeviseID: f.env.XAF,
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteTresorerieCreate{
		EntrepriseID: f.env.A.EntrepriseID, Code: "X", Libelle: "X", TypeCompte: "coffre", DeviseID: f.env.XAF,
	})
	assertReason(t, err, tresorerie.ReasonTypeCompteInvalide)

	_, err = f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteTresorerieCreate{
		EntrepriseID: f.env.A.EntrepriseID, Code: "X", Libelle: "X", TypeCompte: tresorerie.CompteCaisse, DeviseID: 999,
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	list, err := f.svc.ListComptes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, dto.PageRequest{Limit: 50})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "BQ1", list.Items[0].Code)

	got, err := f.svc.GetCompte(f.env.Ctx, f.env.A, c.ID)
	require.NoError(t, err)
	assert.Equal(t, tresorerie.CompteBanque, got.TypeCompte)
}

func TestMode_CreateEtList(t *testing.T) {
	f := newFixture(t, true)

	m, err := f.svc.CreateMode(f.env.Ctx, f.env.A, dto.ModePaiementCreate{EntrepriseID: f.env.A.EntrepriseID, Code: "MOMO", Libelle: "Mobile money"})
	require.NoError(t, err)
	assert.Equal(t, "MOMO", m.Code)

	_, err = f.svc.CreateMode(f.env.Ctx, f.env.A, dto.ModePaiementCreate{EntrepriseID: f.env.A.EntrepriseID, Code: "MOMO", Libelle: "x"})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = f.svc.CreateMode(f.env.Ctx, f.env.A, dto.ModePaiementCreate{EntrepriseID: f.env.B.EntrepriseID, Code: "CHQ", Libelle: "Chèque"})
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	list, err := f.svc.ListModes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, dto.PageRequest{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}
