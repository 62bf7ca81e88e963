package commercial_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env         *testutil.Env
	svc         *commercial.Service
	client      int64
	fournisseur int64
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	return &fixture{
		env:         env,
		svc:         commercial.NewService(env.Store, env.DB),
		client:      env.Tiers(env.A, "CLI1", entity.TiersClient),
		fournisseur: env.Tiers(env.A, "FRN1", entity.TiersFournisseur),
	}
}

func (f *fixture) vente(numero, ttc string) dto.DocumentCreate {
	return dto.DocumentCreate{
		EntrepriseID:   f.env.A.EntrepriseID,
		PointDeVenteID: &f.env.PDV,
		ClientID:       &f.client,
		Numero:         numero,
		DateDocument:   dto.MustDate("2026-03-10"),
		MontantHT:      testutil.D("0"),
		MontantTVA:     testutil.D("0"),
		MontantTTC:     testutil.D(ttc),
	}
}

func (f *fixture) achat(numero, ttc string) dto.DocumentCreate {
	return dto.DocumentCreate{
		EntrepriseID:  f.env.A.EntrepriseID,
		FournisseurID: &f.fournisseur,
		Numero:        numero,
		DateDocument:  dto.MustDate("2026-03-10"),
		MontantTTC:    testutil.D(ttc),
	}
}

func (f *fixture) reglement(t *testing.T, factureID int64, montant string) {
	t.Helper()
	r := &entity.Reglement{
		EntrepriseID:       f.env.A.EntrepriseID,
		TypeReglement:      entity.ReglementClient,
		FactureID:          &factureID,
		TiersID:            f.client,
		Montant:            testutil.D(montant),
		DateReglement:      testutil.MustTime("2026-03-15"),
		ModePaiementID:     f.env.ModePaiement(f.env.A, "ESP-"+montant),
		CompteTresorerieID: f.env.CompteTresorerie(f.env.A, "CAISSE-"+montant),
	}
	require.NoError(t, f.env.Store.Reglements().Create(f.env.Ctx, r))
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Numérotation
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateFacture_NumeroEnDouble(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)
	assert.Equal(t, entity.FamilleFacture, res.TypeDocument)
	assert.Equal(t, &f.client, res.ClientID)
	assert.Nil(t, res.FournisseurID)

	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "500"))
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "FAC-001")

	// la numérotation est propre à chaque famille
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Devis, f.vente("FAC-001", "500"))
	assert.NoError(t, err)
}

func TestCreate_NumeroVide(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Devis, f.vente("   ", "10"))
	assertReason(t, err, commercial.ReasonNumeroVide)
}

// ──────────────────────────────────────────────────────────────────────────────
// Restant dû
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateFacture_RestantDu(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)
	require.NotNil(t, res.MontantRestantDu)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("1000")))
	assert.Equal(t, entity.StatutNonPaye, *res.StatutPaiement)
	assert.Equal(t, entity.TypeFactureFacture, *res.TypeFacture)

	in := f.vente("FAC-002", "1000")
	in.MontantRestantDu = testutil.Ptr(testutil.D("1000.01"))
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonRestantSuperieurTTC)

	in = f.vente("FAC-003", "1000")
	in.TypeFacture = testutil.Ptr("ticket")
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonTypeFactureInvalide)
}

func TestUpdateFacture_RestantDuBorne(t *testing.T) {
	f := newFixture(t)
	fac, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)

	_, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{
		MontantTTC:       dto.Some(testutil.D("800")),
		MontantRestantDu: dto.Some(testutil.D("900")),
	})
	assertReason(t, err, commercial.ReasonRestantSuperieurTTC)

	res, err := f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{
		MontantTTC:       dto.Some(testutil.D("800")),
		MontantRestantDu: dto.Some(testutil.D("300")),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatutPartiel, *res.StatutPaiement)

	_, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantRestantDu: dto.Null[decimal.Decimal]()})
	assertReason(t, err, "CHAMP_NON_NULLABLE")
}

func TestUpdateFacture_TTCReporteLeRestant(t *testing.T) {
	f := newFixture(t)
	fac, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)

	// aucune somme réglée : le restant suit le TTC
	res, err := f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantTTC: dto.Some(testutil.D("1200"))})
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("1200")), "restant %s", res.MontantRestantDu)
	assert.Equal(t, entity.StatutNonPaye, *res.StatutPaiement)

	res, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantTTC: dto.Some(testutil.D("800"))})
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("800")))
	assert.Equal(t, entity.StatutNonPaye, *res.StatutPaiement)

	// 300 déjà réglés : le montant réglé est conservé
	_, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantRestantDu: dto.Some(testutil.D("500"))})
	require.NoError(t, err)
	res, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantTTC: dto.Some(testutil.D("1000"))})
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("700")), "restant %s", res.MontantRestantDu)
	assert.Equal(t, entity.StatutPartiel, *res.StatutPaiement)

	// TTC ramené sous le montant réglé : restant borné à zéro
	res, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{MontantTTC: dto.Some(testutil.D("200"))})
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.IsZero())
	assert.Equal(t, entity.StatutPaye, *res.StatutPaiement)
}

func TestUpdate_CorpsVide(t *testing.T) {
	f := newFixture(t)
	fac, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)

	res, err := f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, fac.ID, dto.DocumentUpdate{})
	require.NoError(t, err)
	assert.Equal(t, fac.Numero, res.Numero)
	assert.True(t, fac.MontantTTC.Equal(res.MontantTTC))
	assert.Equal(t, *fac.StatutPaiement, *res.StatutPaiement)
}

func TestRecalculerRestantDu(t *testing.T) {
	f := newFixture(t)
	fac, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "1000"))
	require.NoError(t, err)
	f.reglement(t, fac.ID, "300")

	res, err := f.svc.RecalculerRestantDu(f.env.Ctx, f.env.A, commercial.Facture, fac.ID)
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("700")))
	assert.Equal(t, entity.StatutPartiel, *res.StatutPaiement)

	f.reglement(t, fac.ID, "900")
	res, err = f.svc.RecalculerRestantDu(f.env.Ctx, f.env.A, commercial.Facture, fac.ID)
	require.NoError(t, err)
	assert.True(t, res.MontantRestantDu.IsZero())
	assert.Equal(t, entity.StatutPaye, *res.StatutPaiement)

	_, err = f.svc.RecalculerRestantDu(f.env.Ctx, f.env.A, commercial.Devis, fac.ID)
	assertReason(t, err, commercial.ReasonNonFacture)

	_, err = f.svc.RecalculerRestantDu(f.env.Ctx, f.env.B, commercial.Facture, fac.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Références
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Tiers(t *testing.T) {
	f := newFixture(t)

	in := f.vente("FAC-001", "10")
	in.ClientID = nil
	_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonTiersObligatoire)

	in = f.vente("FAC-001", "10")
	in.ClientID = &f.fournisseur
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonTiersIncompatible)

	autre := f.env.Tiers(f.env.B, "CLI-B", entity.TiersClient)
	in = f.vente("FAC-001", "10")
	in.ClientID = &autre
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	in = f.vente("FAC-001", "10")
	in.PointDeVenteID = nil
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonPDVObligatoire)

	mixte := f.env.Tiers(f.env.A, "MIX", entity.TiersMixte)
	in = f.vente("FAC-001", "10")
	in.ClientID = &mixte
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assert.NoError(t, err)
}

func TestCreate_Etat(t *testing.T) {
	f := newFixture(t)
	brouillon := f.env.Etat(entity.FamilleFacture, "brouillon", 1)
	accepte := f.env.Etat(entity.FamilleDevis, "accepte", 2)

	in := f.vente("FAC-001", "10")
	in.EtatID = &accepte
	_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonEtatIncompatible)

	in.EtatID = testutil.Ptr(int64(999))
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in.EtatID = &brouillon
	res, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	require.NoError(t, err)
	assert.Equal(t, &brouillon, res.EtatID)

	_, err = f.svc.Update(f.env.Ctx, f.env.A, commercial.Facture, res.ID, dto.DocumentUpdate{EtatID: dto.Some(accepte)})
	assertReason(t, err, commercial.ReasonEtatIncompatible)
}

func TestCreate_Origine(t *testing.T) {
	f := newFixture(t)
	devis, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Devis, f.vente("DEV-001", "10"))
	require.NoError(t, err)
	cmd := f.vente("CMD-001", "10")
	cmd.DocumentOrigineID = &devis.ID
	commande, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Commande, cmd)
	require.NoError(t, err)

	in := f.vente("FAC-001", "10")
	in.DocumentOrigineID = &devis.ID
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assertReason(t, err, commercial.ReasonOrigineInvalide)

	in.DocumentOrigineID = &commande.ID
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
	assert.NoError(t, err)

	dv := f.vente("DEV-002", "10")
	dv.DocumentOrigineID = &devis.ID
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.Devis, dv)
	assertReason(t, err, commercial.ReasonOrigineInvalide)
}

func TestCreateCommande_DateLivraison(t *testing.T) {
	f := newFixture(t)
	in := f.vente("CMD-001", "10")
	in.DateLivraisonPrevue = testutil.Ptr(dto.MustDate("2026-03-09"))
	_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Commande, in)
	assertReason(t, err, commercial.ReasonDatesIncoherentes)

	in.DateLivraisonPrevue = testutil.Ptr(dto.MustDate("2026-03-10"))
	res, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Commande, in)
	require.NoError(t, err)
	assert.Nil(t, res.MontantRestantDu)
	assert.Nil(t, res.TypeFacture)
}

func TestFactureFournisseur(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.FactureFournisseur, f.achat("FF-001", "250"))
	require.NoError(t, err)
	assert.Equal(t, &f.fournisseur, res.FournisseurID)
	assert.Nil(t, res.PointDeVenteID)
	assert.True(t, res.MontantRestantDu.Equal(testutil.D("250")))

	in := f.achat("FF-002", "250")
	in.FournisseurID = &f.client
	_, err = f.svc.Create(f.env.Ctx, f.env.A, commercial.FactureFournisseur, in)
	assertReason(t, err, commercial.ReasonTiersIncompatible)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectures
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_FamilleEtEntreprise(t *testing.T) {
	f := newFixture(t)
	fac, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, f.vente("FAC-001", "10"))
	require.NoError(t, err)

	got, err := f.svc.Get(f.env.Ctx, f.env.A, commercial.Facture, fac.ID)
	require.NoError(t, err)
	assert.Equal(t, fac, got)

	_, err = f.svc.Get(f.env.Ctx, f.env.A, commercial.Devis, fac.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Get(f.env.Ctx, f.env.B, commercial.Facture, fac.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_TriEtFiltres(t *testing.T) {
	f := newFixture(t)
	for numero, date := range map[string]string{"FAC-A": "2026-01-05", "FAC-B": "2026-03-01", "FAC-C": "2026-02-10"} {
		in := f.vente(numero, "10")
		in.DateDocument = dto.MustDate(date)
		_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Facture, in)
		require.NoError(t, err)
	}
	_, err := f.svc.Create(f.env.Ctx, f.env.A, commercial.Devis, f.vente("DEV-1", "10"))
	require.NoError(t, err)

	list, err := f.svc.List(f.env.Ctx, f.env.A, commercial.Facture, dto.DocumentQuery{
		EntrepriseID: f.env.A.EntrepriseID,
		PageRequest:  dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	var numeros []string
	for _, d := range list.Items {
		numeros = append(numeros, d.Numero)
	}
	assert.Equal(t, []string{"FAC-B", "FAC-C", "FAC-A"}, numeros)

	list, err = f.svc.List(f.env.Ctx, f.env.A, commercial.Facture, dto.DocumentQuery{
		EntrepriseID: f.env.A.EntrepriseID,
		DateFrom:     testutil.Ptr(testutil.MustTime("2026-02-01")),
		Search:       "fac",
		PageRequest:  dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	_, err = f.svc.List(f.env.Ctx, f.env.A, commercial.Facture, dto.DocumentQuery{EntrepriseID: f.env.B.EntrepriseID, PageRequest: dto.PageRequest{Limit: 10}})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListEtats(t *testing.T) {
	f := newFixture(t)
	f.env.Etat(entity.FamilleFacture, "validee", 2)
	f.env.Etat(entity.FamilleFacture, "brouillon", 1)
	f.env.Etat(entity.FamilleDevis, "brouillon", 1)

	list, err := f.svc.ListEtats(f.env.Ctx, entity.FamilleFacture)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "brouillon", list[0].Code)

	_, err = f.svc.ListEtats(f.env.Ctx, "ticket")
	assertReason(t, err, commercial.ReasonTypeDocument)
}
