package comptabilite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	env     *testutil.Env
	svc     *comptabilite.Service
	journal int64
	caisse  int64
	ventes  int64
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	return &fixture{
		env:     env,
		svc:     comptabilite.NewService(env.Store, env.DB),
		journal: env.Journal(env.A, "OD"),
		caisse:  env.Compte(env.A, "571000", entity.SensDebit),
		ventes:  env.Compte(env.A, "701000", entity.SensCredit),
	}
}

func (f *fixture) ecriture(debit, credit string) dto.EcritureCreate {
	return dto.EcritureCreate{
		EntrepriseID: f.env.A.EntrepriseID,
		JournalID:    f.journal,
		DateEcriture: dto.MustDate("2026-02-01"),
		NumeroPiece:  "OD-001",
		Lignes: []dto.LigneEcritureCreate{
			{CompteID: f.caisse, Debit: testutil.D(debit), Credit: testutil.D("0")},
			{CompteID: f.ventes, Debit: testutil.D("0"), Credit: testutil.D(credit)},
		},
	}
}

func (f *fixture) nbEcritures(t *testing.T) int {
	t.Helper()
	list, err := f.env.Store.Ecritures().List(f.env.Ctx, repository.EcritureFilter{EntrepriseID: f.env.A.EntrepriseID, Page: repository.Page{Limit: 100}})
	require.NoError(t, err)
	return len(list)
}

func assertReason(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.True(t, domain.HasReason(err, reason), "reason attendu %s, reçu %v", reason, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Écritures
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateEcriture_Equilibree(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, f.ecriture("100.00", "100.00"))
	require.NoError(t, err)
	require.Len(t, res.Lignes, 2)
	assert.Equal(t, f.caisse, res.Lignes[0].CompteID)
	assert.Equal(t, 1, res.Lignes[0].Ordre)
	assert.True(t, res.TotalDebit.Equal(testutil.D("100")))
	assert.Equal(t, f.env.A.CreatedBy(), res.CreatedByID)

	got, err := f.svc.GetEcriture(f.env.Ctx, f.env.A, res.ID)
	require.NoError(t, err)
	assert.Len(t, got.Lignes, 2)
	assert.Equal(t, "OD-001", got.NumeroPiece)
}

func TestCreateEcriture_NonEquilibree(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, f.ecriture("100.00", "99.00"))
	assertReason(t, err, comptabilite.ReasonNonEquilibree)
	assert.Zero(t, f.nbEcritures(t))
}

func TestCreateEcriture_MontantNul(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, f.ecriture("0", "0"))
	assertReason(t, err, comptabilite.ReasonMontantZero)
}

func TestCreateEcriture_UneSeuleLigne(t *testing.T) {
	f := newFixture(t)
	in := f.ecriture("100", "100")
	in.Lignes = in.Lignes[:1]

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonLignesMin)
}

func TestCreateEcriture_NumeroPieceVide(t *testing.T) {
	f := newFixture(t)
	in := f.ecriture("100", "100")
	in.NumeroPiece = "   "

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonNumeroPieceVide)
}

func TestCreateEcriture_EntrepriseDifferente(t *testing.T) {
	f := newFixture(t)
	in := f.ecriture("100", "100")
	in.EntrepriseID = f.env.B.EntrepriseID

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
	assert.Zero(t, f.nbEcritures(t))
}

func TestCreateEcriture_JournalAutreEntreprise(t *testing.T) {
	f := newFixture(t)
	in := f.ecriture("100", "100")
	in.JournalID = f.env.Journal(f.env.B, "OD")

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "journal")
}

func TestCreateEcriture_OrdreDesControles(t *testing.T) {
	f := newFixture(t)
	// Compte d'une autre entreprise et écriture déséquilibrée : l'équilibre est contrôlé avant les comptes.
	in := f.ecriture("100", "90")
	in.Lignes[0].CompteID = f.env.Compte(f.env.B, "571000", entity.SensDebit)

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonNonEquilibree)

	in.Lignes[1].Credit = testutil.D("100")
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "compte comptable")
}

func TestCreateEcriture_Periodes(t *testing.T) {
	f := newFixture(t)
	ouverte := f.env.Periode(f.env.A, "2026-02-01", "2026-02-28", false)
	cloturee := f.env.Periode(f.env.A, "2026-01-01", "2026-01-31", true)
	autre := f.env.Periode(f.env.B, "2026-02-01", "2026-02-28", false)

	in := f.ecriture("100", "100")
	in.PeriodeID = &ouverte
	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)

	in.DateEcriture = dto.MustDate("2026-03-01")
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonHorsPeriode)

	in.PeriodeID = &cloturee
	in.DateEcriture = dto.MustDate("2026-01-15")
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonPeriodeCloturee)

	in.PeriodeID = &autre
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sans période explicite, une période clôturée couvrant la date bloque aussi l'écriture.
	in.PeriodeID = nil
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonPeriodeCloturee)

	assert.Equal(t, 1, f.nbEcritures(t))
}

func TestCreateEcriture_MontantNegatif(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, f.ecriture("-100", "-100"))
	assertReason(t, err, "VALIDATION")
}

func TestListEcritures_TriDateDesc(t *testing.T) {
	f := newFixture(t)
	for _, d := range []string{"2026-01-10", "2026-03-05", "2026-02-20"} {
		in := f.ecriture("10", "10")
		in.DateEcriture = dto.MustDate(d)
		_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
		require.NoError(t, err)
	}

	res, err := f.svc.ListEcritures(f.env.Ctx, f.env.A, dto.EcritureQuery{
		EntrepriseID: f.env.A.EntrepriseID,
		PageRequest:  dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "2026-03-05", res.Items[0].DateEcriture.Format(dto.DateLayout))
	assert.Equal(t, "2026-01-10", res.Items[2].DateEcriture.Format(dto.DateLayout))
	assert.Nil(t, res.Items[0].Lignes)

	_, err = f.svc.ListEcritures(f.env.Ctx, f.env.A, dto.EcritureQuery{
		EntrepriseID: f.env.A.EntrepriseID,
		PageRequest:  dto.PageRequest{Limit: comptabilite.MaxEcritures + 1},
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comptes, journaux, périodes
// ──────────────────────────────────────────────────────────────────────────────

func TestGetCompte_AutreEntreprise(t *testing.T) {
	f := newFixture(t)
	id := f.env.Compte(f.env.B, "401000", entity.SensCredit)

	_, err := f.svc.GetCompte(f.env.Ctx, f.env.A, id)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)
}

func TestCreateCompte_NumeroDuplique(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteCreate{
		EntrepriseID: f.env.A.EntrepriseID, Numero: "571000", Libelle: "Caisse", SensNormal: entity.SensDebit,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "571000")

	_, err = f.svc.CreateCompte(f.env.Ctx, f.env.A, dto.CompteCreate{
		EntrepriseID: f.env.A.EntrepriseID, Numero: "411000", Libelle: "Clients", SensNormal: "gauche",
	})
	assertReason(t, err, comptabilite.ReasonSensInvalide)
}

func TestUpdateCompte(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.UpdateCompte(f.env.Ctx, f.env.A, f.caisse, dto.CompteUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "571000", res.Numero)

	res, err = f.svc.UpdateCompte(f.env.Ctx, f.env.A, f.caisse, dto.CompteUpdate{Libelle: dto.Some("Caisse principale")})
	require.NoError(t, err)
	assert.Equal(t, "Caisse principale", res.Libelle)

	_, err = f.svc.UpdateCompte(f.env.Ctx, f.env.A, f.caisse, dto.CompteUpdate{Numero: dto.Null[string]()})
	assertReason(t, err, "CHAMP_NON_NULLABLE")

	_, err = f.svc.UpdateCompte(f.env.Ctx, f.env.A, f.caisse, dto.CompteUpdate{Numero: dto.Some("701000")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSoldeCompte(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateEcriture(f.env.Ctx, f.env.A, f.ecriture("150.50", "150.50"))
	require.NoError(t, err)

	caisse, err := f.svc.SoldeCompte(f.env.Ctx, f.env.A, f.caisse)
	require.NoError(t, err)
	assert.True(t, caisse.Solde.Equal(testutil.D("150.50")))

	ventes, err := f.svc.SoldeCompte(f.env.Ctx, f.env.A, f.ventes)
	require.NoError(t, err)
	assert.True(t, ventes.TotalCredit.Equal(testutil.D("150.50")))
	assert.True(t, ventes.Solde.Equal(testutil.D("150.50")))
}

func TestCreateJournal_CodeDuplique(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateJournal(f.env.Ctx, f.env.A, dto.JournalCreate{EntrepriseID: f.env.A.EntrepriseID, Code: "OD", Libelle: "Divers"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Le même code est libre dans une autre entreprise.
	_, err = f.svc.CreateJournal(f.env.Ctx, f.env.B, dto.JournalCreate{EntrepriseID: f.env.B.EntrepriseID, Code: "OD", Libelle: "Divers"})
	assert.NoError(t, err)
}

func TestPeriode_DatesEtCloture(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreatePeriode(f.env.Ctx, f.env.A, dto.PeriodeCreate{
		EntrepriseID: f.env.A.EntrepriseID, Libelle: "Mars",
		DateDebut: dto.MustDate("2026-03-31"), DateFin: dto.MustDate("2026-03-01"),
	})
	assertReason(t, err, comptabilite.ReasonPeriodeDates)

	p, err := f.svc.CreatePeriode(f.env.Ctx, f.env.A, dto.PeriodeCreate{
		EntrepriseID: f.env.A.EntrepriseID, Libelle: "Mars",
		DateDebut: dto.MustDate("2026-03-01"), DateFin: dto.MustDate("2026-03-31"),
	})
	require.NoError(t, err)
	assert.False(t, p.Cloturee)

	closed, err := f.svc.CloturerPeriode(f.env.Ctx, f.env.A, p.ID)
	require.NoError(t, err)
	assert.True(t, closed.Cloturee)
	assert.NotNil(t, closed.DateCloture)

	_, err = f.svc.CloturerPeriode(f.env.Ctx, f.env.A, p.ID)
	assertReason(t, err, comptabilite.ReasonPeriodeCloturee)

	_, err = f.svc.UpdatePeriode(f.env.Ctx, f.env.A, p.ID, dto.PeriodeUpdate{Libelle: dto.Some("Mars 2026")})
	assertReason(t, err, comptabilite.ReasonPeriodeCloturee)

	in := f.ecriture("10", "10")
	in.PeriodeID = &p.ID
	in.DateEcriture = dto.MustDate("2026-03-10")
	_, err = f.svc.CreateEcriture(f.env.Ctx, f.env.A, in)
	assertReason(t, err, comptabilite.ReasonPeriodeCloturee)
}
