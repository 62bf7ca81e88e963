package stock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/internal/testutil"
)

type fixture struct {
	env     *testutil.Env
	svc     *stock.Service
	depot1  int64
	depot2  int64
	produit int64
}

func newFixture(t *testing.T) *fixture {
	env := testutil.New(t)
	return &fixture{
		env:     env,
		svc:     stock.NewService(env.Store, env.DB),
		depot1:  env.Depot(env.A, "D1"),
		depot2:  env.Depot(env.A, "D2"),
		produit: env.Produit(env.A, "P7"),
	}
}

func (f *fixture) mouvement(typ, qty, ref string) dto.MouvementCreate {
	return dto.MouvementCreate{
		EntrepriseID:  f.env.A.EntrepriseID,
		TypeMouvement: typ,
		DepotID:       f.depot1,
		ProduitID:     f.produit,
		Quantite:      testutil.D(qty),
		ReferenceType: ref,
	}
}

func (f *fixture) nbMouvements(t *testing.T) int {
	t.Helper()
	list, err := f.env.Store.Mouvements().List(f.env.Ctx, repository.MouvementFilter{EntrepriseID: f.env.A.EntrepriseID})
	require.NoError(t, err)
	return len(list)
}

func assertQty(t *testing.T, f *fixture, depot int64, want string) {
	t.Helper()
	got := f.env.Quantite(depot, f.produit)
	assert.True(t, got.Equal(testutil.D(want)), "dépôt %d : attendu %s, reçu %s", depot, want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Moteur de mouvements
// ──────────────────────────────────────────────────────────────────────────────

func TestMouvement_EntreeCreeLaLigne(t *testing.T) {
	f := newFixture(t)

	m, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementEntree, "12.5", entity.RefManuel))
	require.NoError(t, err)
	assert.Equal(t, f.env.A.CreatedBy(), m.CreatedByID)
	assertQty(t, f, f.depot1, "12.5")

	st, err := f.env.Store.Stocks().Find(f.env.Ctx, repository.StockKey{DepotID: f.depot1, ProduitID: f.produit})
	require.NoError(t, err)
	require.NotNil(t, st.UniteID)
	assert.Equal(t, f.env.Unite, *st.UniteID)
}

func TestMouvement_Transfert(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "10")

	in := f.mouvement(entity.MouvementTransfert, "3", entity.RefTransfert)
	in.DepotDestID = &f.depot2
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)

	assertQty(t, f, f.depot1, "7")
	assertQty(t, f, f.depot2, "3")
	assert.Equal(t, 1, f.nbMouvements(t))
}

func TestMouvement_TransfertDepotDecroissant(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot2, f.produit, "4")

	in := f.mouvement(entity.MouvementTransfert, "4", entity.RefTransfert)
	in.DepotID, in.DepotDestID = f.depot2, &f.depot1
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)

	assertQty(t, f, f.depot2, "0")
	assertQty(t, f, f.depot1, "4")
}

func TestMouvement_SortieInsuffisante(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "2")

	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementSortie, "5", entity.RefManuel))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.True(t, domain.HasReason(err, stock.ReasonQuantiteInsuffisante))

	assertQty(t, f, f.depot1, "2")
	assert.Zero(t, f.nbMouvements(t))
}

func TestMouvement_TransfertRegles(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "10")

	in := f.mouvement(entity.MouvementTransfert, "1", entity.RefTransfert)
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.True(t, domain.HasReason(err, stock.ReasonDestObligatoire))

	in.DepotDestID = &f.depot1
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.True(t, domain.HasReason(err, stock.ReasonMemeDepot))

	autre := f.env.Depot(f.env.B, "D9")
	in.DepotDestID = &autre
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	in = f.mouvement(entity.MouvementTransfert, "11", entity.RefTransfert)
	in.DepotDestID = &f.depot2
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.True(t, domain.HasReason(err, stock.ReasonQuantiteInsuffisante))

	assertQty(t, f, f.depot1, "10")
	assertQty(t, f, f.depot2, "0")
}

func TestMouvement_Inventaire(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "8")

	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementInventaire, "0", entity.RefInventaire))
	require.NoError(t, err)
	assertQty(t, f, f.depot1, "0")

	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementEntree, "0", entity.RefManuel))
	assert.True(t, domain.HasReason(err, stock.ReasonQuantiteInvalide))
}

func TestMouvement_TypesInvalides(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement("vol", "1", entity.RefManuel))
	assert.True(t, domain.HasReason(err, stock.ReasonTypeInvalide))
	assert.Contains(t, err.Error(), "vol")

	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementEntree, "1", "cadeau"))
	assert.True(t, domain.HasReason(err, stock.ReasonReferenceInvalide))
}

func TestMouvement_ProduitEtVariante(t *testing.T) {
	f := newFixture(t)

	nonGere := &entity.Produit{EntrepriseID: f.env.A.EntrepriseID, Code: "SRV", Libelle: "Service", Type: "service", PrixVenteTTC: testutil.D("0")}
	require.NoError(t, f.env.Store.Produits().Create(f.env.Ctx, nonGere))
	in := f.mouvement(entity.MouvementEntree, "1", entity.RefManuel)
	in.ProduitID = nonGere.ID
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.True(t, domain.HasReason(err, stock.ReasonStockNonGere))

	commune := f.env.Variante(f.produit, "ROUGE", false)
	in = f.mouvement(entity.MouvementEntree, "1", entity.RefManuel)
	in.VarianteID = &commune
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.True(t, domain.HasReason(err, stock.ReasonVarianteNonSeparee))

	autreProduit := f.env.Produit(f.env.A, "P8")
	etrangere := f.env.Variante(autreProduit, "BLEU", true)
	in.VarianteID = &etrangere
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	separee := f.env.Variante(f.produit, "VERT", true)
	in.VarianteID = &separee
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	require.NoError(t, err)

	q, err := f.svc.GetQuantite(f.env.Ctx, f.env.A, f.depot1, f.produit, &separee)
	require.NoError(t, err)
	assert.True(t, q.Quantite.Equal(testutil.D("1")))
	assertQty(t, f, f.depot1, "0")
}

func TestMouvement_AutreEntreprise(t *testing.T) {
	f := newFixture(t)

	in := f.mouvement(entity.MouvementEntree, "1", entity.RefManuel)
	in.EntrepriseID = f.env.B.EntrepriseID
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeForbiddenEntreprise, de.Code)

	in = f.mouvement(entity.MouvementEntree, "1", entity.RefManuel)
	in.ProduitID = f.env.Produit(f.env.B, "PB")
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, f.nbMouvements(t))
}

func TestMouvement_SortiesConcurrentes(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "10")

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementSortie, "1", entity.RefManuel))
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assertQty(t, f, f.depot1, "0")
	assert.Equal(t, 10, f.nbMouvements(t))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectures
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertes(t *testing.T) {
	f := newFixture(t)
	p, err := f.env.Store.Produits().GetByID(f.env.Ctx, f.produit)
	require.NoError(t, err)
	p.SeuilAlerteMin = testutil.Ptr(testutil.D("5"))
	p.SeuilAlerteMax = testutil.Ptr(testutil.D("50"))
	require.NoError(t, f.env.Store.Produits().Update(f.env.Ctx, p))

	f.env.SetStock(f.depot1, f.produit, "2")
	f.env.SetStock(f.depot2, f.produit, "80")

	res, err := f.svc.Alertes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, nil, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, entity.AlerteSousSeuil, res.Items[0].TypeAlerte)
	assert.Equal(t, entity.AlerteAuDessusMax, res.Items[1].TypeAlerte)

	res, err = f.svc.Alertes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, &f.depot2, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	// Un produit supprimé n'apparaît plus.
	require.NoError(t, f.env.Store.Produits().SoftDelete(f.env.Ctx, f.produit, testutil.MustTime("2026-01-01")))
	res, err = f.svc.Alertes(f.env.Ctx, f.env.A, f.env.A.EntrepriseID, nil, dto.PageRequest{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestListesEtQuantite(t *testing.T) {
	f := newFixture(t)
	f.env.SetStock(f.depot1, f.produit, "3")

	q, err := f.svc.GetQuantite(f.env.Ctx, f.env.A, f.depot2, f.produit, nil)
	require.NoError(t, err)
	assert.True(t, q.Quantite.IsZero())

	res, err := f.svc.ListByDepot(f.env.Ctx, f.env.A, f.depot1, dto.PageRequest{Limit: stock.DefaultStocks})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	got, err := f.svc.GetStock(f.env.Ctx, f.env.A, res.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, got.Quantite.Equal(testutil.D("3")))

	_, err = f.svc.GetStock(f.env.Ctx, f.env.B, res.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.ListByDepot(f.env.Ctx, f.env.B, f.depot1, dto.PageRequest{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListMouvements_Filtres(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementEntree, "5", entity.RefManuel))
	require.NoError(t, err)
	_, err = f.svc.CreateMouvement(f.env.Ctx, f.env.A, f.mouvement(entity.MouvementSortie, "2", entity.RefManuel))
	require.NoError(t, err)

	res, err := f.svc.ListMouvements(f.env.Ctx, f.env.A, dto.MouvementQuery{
		EntrepriseID: f.env.A.EntrepriseID,
		PageRequest:  dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, entity.MouvementSortie, res.Items[0].TypeMouvement)

	res, err = f.svc.ListMouvements(f.env.Ctx, f.env.A, dto.MouvementQuery{
		EntrepriseID:  f.env.A.EntrepriseID,
		TypeMouvement: entity.MouvementEntree,
		PageRequest:   dto.PageRequest{Limit: 50},
	})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	_, err = f.svc.GetMouvement(f.env.Ctx, f.env.B, res.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
