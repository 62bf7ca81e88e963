package rapports_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/rapports"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env    *testutil.Env
	svc    *rapports.Service
	client int64
	seq    int
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	return &fixture{env: env, svc: rapports.NewService(env.Store), client: env.Tiers(env.A, "C001", entity.TiersClient)}
}

// document enregistre directement un document de A ; typeFacture vide laisse la colonne nulle.
func (f *fixture) document(t *testing.T, famille, typeFacture, date, ttc string) {
	t.Helper()
	f.seq++
	d := &entity.Document{
		EntrepriseID: f.env.A.EntrepriseID,
		TypeDocument: famille,
		TiersID:      f.client,
		Numero:       fmt.Sprintf("%s-%03d", famille, f.seq),
		DateDocument: testutil.MustTime(date),
		MontantHT:    testutil.D(ttc),
		MontantTTC:   testutil.D(ttc),
	}
	if typeFacture != "" {
		d.TypeFacture = testutil.Ptr(typeFacture)
	}
	require.NoError(t, f.env.Store.Documents().Create(f.env.Ctx, d))
}

func (f *fixture) periode(debut, fin string) dto.RapportQuery {
	q := dto.RapportQuery{EntrepriseID: f.env.A.EntrepriseID}
	if debut != "" {
		q.DateDebut = testutil.Ptr(testutil.MustTime(debut))
	}
	if fin != "" {
		q.DateFin = testutil.Ptr(testutil.MustTime(fin))
	}
	return q
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Chiffre d'affaires
// ──────────────────────────────────────────────────────────────────────────────

func TestChiffreAffaires_FacturesDeLaPeriode(t *testing.T) {
	f := newFixture(t)
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2026-03-01", "1000")
	f.document(t, entity.FamilleFacture, "", "2026-03-31", "500.50")
	f.document(t, entity.FamilleFacture, entity.TypeFactureAvoir, "2026-03-15", "200")
	f.document(t, entity.FamilleFacture, entity.TypeFactureProforma, "2026-03-10", "9999")
	f.document(t, entity.FamilleFacture, entity.TypeFactureDuplicata, "2026-03-10", "9999")
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2026-04-01", "7777")
	f.document(t, entity.FamilleFactureFournisseur, "", "2026-03-05", "8888")
	f.document(t, entity.FamilleDevis, "", "2026-03-05", "6666")

	out, err := f.svc.ChiffreAffaires(f.env.Ctx, f.env.A, f.periode("2026-03-01", "2026-03-31"))
	require.NoError(t, err)
	assert.Equal(t, f.env.A.EntrepriseID, out.EntrepriseID)
	assert.Equal(t, dto.MustDate("2026-03-01"), out.DateDebut)
	assert.Equal(t, dto.MustDate("2026-03-31"), out.DateFin)
	assert.Equal(t, int64(2), out.NombreFactures)
	assert.True(t, out.MontantTotalTTC.Equal(testutil.D("1500.50")), out.MontantTotalTTC.String())
	assert.Equal(t, int64(1), out.NombreAvoirs)
	assert.True(t, out.MontantAvoirs.Equal(testutil.D("200")), out.MontantAvoirs.String())
	assert.True(t, out.MontantNetTTC.Equal(testutil.D("1300.50")), out.MontantNetTTC.String())
}

func TestChiffreAffaires_PeriodeVide(t *testing.T) {
	f := newFixture(t)
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2026-01-10", "1000")

	out, err := f.svc.ChiffreAffaires(f.env.Ctx, f.env.A, f.periode("2026-02-01", "2026-02-28"))
	require.NoError(t, err)
	assert.Zero(t, out.NombreFactures)
	assert.True(t, out.MontantTotalTTC.IsZero())
	assert.True(t, out.MontantNetTTC.IsZero())
}

func TestChiffreAffaires_Controles(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ChiffreAffaires(f.env.Ctx, f.env.A, f.periode("2026-01-01", ""))
	assertReason(t, err, rapports.ReasonDatesRequises)

	_, err = f.svc.ChiffreAffaires(f.env.Ctx, f.env.A, f.periode("2026-02-01", "2026-01-31"))
	assertReason(t, err, rapports.ReasonPeriodeDates)

	q := f.periode("2026-01-01", "2026-01-31")
	q.EntrepriseID = f.env.B.EntrepriseID
	_, err = f.svc.ChiffreAffaires(f.env.Ctx, f.env.A, q)
	assert.True(t, errors.Is(err, domain.ErrForbidden), "reçu %v", err)
}

func TestChiffreAffaires_EntrepriseInconnue(t *testing.T) {
	f := newFixture(t)
	fantome := tenant.Actor{UserID: 99, EntrepriseID: 999, RoleID: 99}
	q := f.periode("2026-01-01", "2026-01-31")
	q.EntrepriseID = fantome.EntrepriseID

	_, err := f.svc.ChiffreAffaires(f.env.Ctx, fantome, q)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "reçu %v", err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tableau de bord
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Synthese(t *testing.T) {
	f := newFixture(t)
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2026-05-02", "3000")
	f.document(t, entity.FamilleFacture, entity.TypeFactureAvoir, "2026-05-03", "500")
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2025-12-31", "100")
	f.document(t, entity.FamilleCommande, "", "2026-05-01", "3000")
	f.document(t, entity.FamilleCommande, "", "2026-05-20", "800")
	f.document(t, entity.FamilleCommande, "", "2026-06-01", "800")
	f.env.Employe(f.env.A, "MAT001")
	f.env.Employe(f.env.A, "MAT002")
	inactif := &entity.Employe{EntrepriseID: f.env.A.EntrepriseID, Matricule: "MAT003", Nom: "Parti", Actif: false}
	require.NoError(t, f.env.Store.Employes().Create(f.env.Ctx, inactif))
	f.env.Employe(f.env.B, "MAT001")

	out, err := f.svc.Dashboard(f.env.Ctx, f.env.A, f.periode("2026-05-01", "2026-05-31"))
	require.NoError(t, err)
	require.NotNil(t, out.PeriodeLabel)
	assert.Equal(t, "2026-05-01 / 2026-05-31", *out.PeriodeLabel)
	assert.True(t, out.CAPeriode.Equal(testutil.D("2500")), out.CAPeriode.String())
	assert.Equal(t, int64(1), out.NbFactures)
	assert.Equal(t, int64(2), out.NbCommandes)
	assert.Equal(t, int64(2), out.NbEmployesActifs)
}

func TestDashboard_SansPeriode(t *testing.T) {
	f := newFixture(t)
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2026-05-02", "3000")
	f.document(t, entity.FamilleFacture, entity.TypeFactureFacture, "2025-12-31", "100")
	f.document(t, entity.FamilleCommande, "", "2024-01-01", "10")

	out, err := f.svc.Dashboard(f.env.Ctx, f.env.A, f.periode("2026-01-01", ""))
	require.NoError(t, err)
	assert.Nil(t, out.PeriodeLabel)
	assert.Equal(t, int64(1), out.NbFactures)
	assert.Zero(t, out.NbCommandes)

	out, err = f.svc.Dashboard(f.env.Ctx, f.env.A, f.periode("", ""))
	require.NoError(t, err)
	assert.Nil(t, out.PeriodeLabel)
	assert.True(t, out.CAPeriode.Equal(testutil.D("3100")), out.CAPeriode.String())
	assert.Equal(t, int64(2), out.NbFactures)
	assert.Equal(t, int64(1), out.NbCommandes)
	assert.Zero(t, out.NbEmployesActifs)
}

func TestDashboard_AutreEntreprise(t *testing.T) {
	f := newFixture(t)
	q := f.periode("", "")
	q.EntrepriseID = f.env.B.EntrepriseID

	_, err := f.svc.Dashboard(f.env.Ctx, f.env.A, q)
	assert.True(t, errors.Is(err, domain.ErrForbidden), "reçu %v", err)
}
