package paie_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/paie"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env     *testutil.Env
	svc     *paie.Service
	employe int64
	periode int64
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	f := &fixture{env: env, svc: paie.NewService(env.Store, env.DB), employe: env.Employe(env.A, "MAT001")}
	p, err := f.svc.CreatePeriode(env.Ctx, env.A, f.mois(2026, 6))
	require.NoError(t, err)
	f.periode = p.ID
	return f
}

func (f *fixture) mois(annee, mois int) dto.PeriodePaieCreate {
	return dto.PeriodePaieCreate{
		EntrepriseID: f.env.A.EntrepriseID,
		Annee:        annee,
		Mois:         mois,
		DateDebut:    dto.MustDate("2026-06-01"),
		DateFin:      dto.MustDate("2026-06-30"),
	}
}

func (f *fixture) bulletin(l ...dto.LigneBulletinCreate) dto.BulletinCreate {
	return dto.BulletinCreate{
		EntrepriseID:  f.env.A.EntrepriseID,
		EmployeID:     f.employe,
		PeriodePaieID: f.periode,
		SalaireBrut:   testutil.D("250000"),
		Lignes:        l,
	}
}

func gain(libelle, montant string) dto.LigneBulletinCreate {
	return dto.LigneBulletinCreate{Libelle: libelle, Type: entity.LigneGain, Montant: testutil.D(montant)}
}

func retenue(libelle, montant string) dto.LigneBulletinCreate {
	return dto.LigneBulletinCreate{Libelle: libelle, Type: entity.LigneRetenue, Montant: testutil.D(montant)}
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Périodes
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodePaie_Creation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePeriode(f.env.Ctx, f.env.A, f.mois(2026, 6))
	assert.True(t, errors.Is(err, domain.ErrConflict))

	_, err = f.svc.CreatePeriode(f.env.Ctx, f.env.A, f.mois(2026, 13))
	assertReason(t, err, "VALIDATION")

	in := f.mois(2026, 7)
	in.DateFin = in.DateDebut
	_, err = f.svc.CreatePeriode(f.env.Ctx, f.env.A, in)
	assertReason(t, err, paie.ReasonPeriodeDates)

	_, err = f.svc.CreatePeriode(f.env.Ctx, f.env.B, f.mois(2026, 7))
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
}

func TestPeriodePaie_ClotureVerrouille(t *testing.T) {
	f := newFixture(t)

	p, err := f.svc.UpdatePeriode(f.env.Ctx, f.env.A, f.periode, dto.PeriodePaieUpdate{DateFin: dto.Some(dto.MustDate("2026-06-29"))})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-29", p.DateFin.Format("2006-01-02"))

	_, err = f.svc.UpdatePeriode(f.env.Ctx, f.env.A, f.periode, dto.PeriodePaieUpdate{DateFin: dto.Some(dto.MustDate("2026-05-01"))})
	assertReason(t, err, paie.ReasonPeriodeDates)

	p, err = f.svc.CloturerPeriode(f.env.Ctx, f.env.A, f.periode)
	require.NoError(t, err)
	assert.True(t, p.Cloturee)

	_, err = f.svc.CloturerPeriode(f.env.Ctx, f.env.A, f.periode)
	assertReason(t, err, paie.ReasonPeriodeCloturee)

	_, err = f.svc.UpdatePeriode(f.env.Ctx, f.env.A, f.periode, dto.PeriodePaieUpdate{DateFin: dto.Some(dto.MustDate("2026-06-30"))})
	assertReason(t, err, paie.ReasonPeriodeCloturee)

	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire de base", "250000")))
	assertReason(t, err, paie.ReasonPeriodeCloturee)
}

func TestPeriodePaie_List(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreatePeriode(f.env.Ctx, f.env.A, f.mois(2025, 12))
	require.NoError(t, err)
	_, err = f.svc.CreatePeriode(f.env.Ctx, f.env.A, f.mois(2026, 1))
	require.NoError(t, err)

	list, err := f.svc.ListPeriodes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, nil, dto.PageRequest{Limit: 12})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, 6, list.Items[0].Mois)
	assert.Equal(t, 2025, list.Items[2].Annee)

	annee := 2026
	list, err = f.svc.ListPeriodes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, &annee, dto.PageRequest{Limit: 12})
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bulletins
// ──────────────────────────────────────────────────────────────────────────────

func TestBulletin_NetCalculeDepuisLesLignes(t *testing.T) {
	f := newFixture(t)

	b, err := f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(
		gain("Salaire de base", "250000"),
		gain("Prime de transport", "15000"),
		retenue("CNPS", "10500"),
		retenue("IRPP", "12000.50"),
	))
	require.NoError(t, err)
	assert.Equal(t, entity.BulletinBrouillon, b.Statut)
	assert.Equal(t, "265000.00", b.TotalGains.StringFixed(2))
	assert.Equal(t, "22500.50", b.TotalRetenues.StringFixed(2))
	assert.Equal(t, "242499.50", b.NetAPayer.StringFixed(2))
	require.Len(t, b.Lignes, 4)
	assert.Equal(t, 4, b.Lignes[3].Ordre)

	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire", "1")))
	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestBulletin_SansLignes(t *testing.T) {
	f := newFixture(t)
	in := f.bulletin()
	in.TotalGains = testutil.D("100000")
	in.TotalRetenues = testutil.D("8000")

	b, err := f.svc.CreateBulletin(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)
	assert.Equal(t, "92000.00", b.NetAPayer.StringFixed(2))
	assert.Empty(t, b.Lignes)
}

func TestBulletin_Refus(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(dto.LigneBulletinCreate{Libelle: "x", Type: "bonus", Montant: testutil.D("1")}))
	assertReason(t, err, paie.ReasonTypeLigneInvalide)

	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire", "100"), retenue("Avance", "150")))
	assertReason(t, err, paie.ReasonNetNegatif)

	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire", "-1")))
	assertReason(t, err, "VALIDATION")

	in := f.bulletin(gain("Salaire", "100"))
	in.EmployeID = f.env.Employe(f.env.B, "MAT-B")
	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	in = f.bulletin(gain("Salaire", "100"))
	in.PeriodePaieID = 999
	_, err = f.svc.CreateBulletin(f.env.Ctx, f.env.A, in)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestBulletin_UpdateRemplaceLesLignes(t *testing.T) {
	f := newFixture(t)
	b, err := f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire", "200000"), retenue("CNPS", "8400")))
	require.NoError(t, err)

	nouvelles := []dto.LigneBulletinCreate{gain("Salaire", "210000")}
	u, err := f.svc.UpdateBulletin(f.env.Ctx, f.env.A, b.ID, dto.BulletinUpdate{
		SalaireBrut: dto.Some(testutil.D("210000")),
		Lignes:      &nouvelles,
	})
	require.NoError(t, err)
	require.Len(t, u.Lignes, 1)
	assert.True(t, u.NetAPayer.Equal(testutil.D("210000")))
	assert.True(t, u.TotalRetenues.IsZero())

	_, err = f.svc.UpdateBulletin(f.env.Ctx, f.env.A, b.ID, dto.BulletinUpdate{SalaireBrut: dto.Null[decimal.Decimal]()})
	assertReason(t, err, "CHAMP_NON_NULLABLE")
}

func TestBulletin_Transitions(t *testing.T) {
	f := newFixture(t)
	b, err := f.svc.CreateBulletin(f.env.Ctx, f.env.A, f.bulletin(gain("Salaire", "150000")))
	require.NoError(t, err)

	_, err = f.svc.PayerBulletin(f.env.Ctx, f.env.A, b.ID, dto.BulletinPaiement{})
	assertReason(t, err, paie.ReasonTransitionInvalide)

	v, err := f.svc.ValiderBulletin(f.env.Ctx, f.env.A, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BulletinValide, v.Statut)

	_, err = f.svc.UpdateBulletin(f.env.Ctx, f.env.A, b.ID, dto.BulletinUpdate{SalaireBrut: dto.Some(testutil.D("1"))})
	assertReason(t, err, paie.ReasonBulletinNonModif)

	_, err = f.svc.CloturerPeriode(f.env.Ctx, f.env.A, f.periode)
	require.NoError(t, err)

	date := dto.MustDate("2026-07-02")
	p, err := f.svc.PayerBulletin(f.env.Ctx, f.env.A, b.ID, dto.BulletinPaiement{DatePaiement: &date})
	require.NoError(t, err)
	assert.Equal(t, entity.BulletinPaye, p.Statut)
	require.NotNil(t, p.DatePaiement)
	assert.Equal(t, "2026-07-02", p.DatePaiement.Format("2006-01-02"))

	_, err = f.svc.ValiderBulletin(f.env.Ctx, f.env.A, b.ID)
	assertReason(t, err, paie.ReasonPeriodeCloturee)

	list, err := f.svc.ListBulletins(f.env.Ctx, f.env.A, dto.BulletinQuery{
		EntrepriseID: f.env.A.EntrepriseID, PeriodePaieID: &f.periode, PageRequest: dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, entity.BulletinPaye, list.Items[0].Statut)

	_, err = f.svc.GetBulletin(f.env.Ctx, f.env.B, b.ID)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Employés
// ──────────────────────────────────────────────────────────────────────────────

func TestEmploye_CreateEtList(t *testing.T) {
	f := newFixture(t)

	e, err := f.svc.CreateEmploye(f.env.Ctx, f.env.A, dto.EmployeCreate{
		EntrepriseID: f.env.A.EntrepriseID, Matricule: "MAT002", Nom: "Ngono", NIU: testutil.Ptr("p098765432109z"),
	})
	require.NoError(t, err)
	require.NotNil(t, e.NIU)
	assert.Equal(t, "P098765432109Z", *e.NIU)

	_, err = f.svc.CreateEmploye(f.env.Ctx, f.env.A, dto.EmployeCreate{EntrepriseID: f.env.A.EntrepriseID, Matricule: "MAT002", Nom: "x"})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	list, err := f.svc.ListEmployes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "MAT001", list.Items[0].Matricule)

	_, err = f.svc.GetEmploye(f.env.Ctx, f.env.A, 999)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
