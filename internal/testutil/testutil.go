// Package testutil prépare des données d'essai sur la base en mémoire.
package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
	"github.com/gesco-erp/gesco-api/internal/infrastructure/memory"
)

// Env base en mémoire avec deux entreprises et un utilisateur dans chacune.
type Env struct {
	DB    *memory.DB
	Store repository.Store
	A     tenant.Actor // entreprise 1
	B     tenant.Actor // entreprise 2
	XAF   int64
	Unite int64
	PDV   int64 // point de vente de A
	Ctx   context.Context
	t     *testing.T
}

// New crée l'environnement.
func New(t *testing.T) *Env {
	t.Helper()
	db := memory.New()
	e := &Env{DB: db, Store: db.Store(), Ctx: context.Background(), t: t}
	e.XAF = db.AddDevise(entity.Devise{Code: "XAF", Libelle: "Franc CFA BEAC", Symbole: "FCFA", Actif: true})
	e.Unite = db.AddUnite("U")
	e.A = e.entreprise("ENT1")
	e.B = e.entreprise("ENT2")
	e.PDV = db.AddPointDeVente(entity.PointDeVente{EntrepriseID: e.A.EntrepriseID, Code: "PDV1", Libelle: "Boutique", Actif: true})
	return e
}

func (e *Env) entreprise(code string) tenant.Actor {
	e.t.Helper()
	ent := &entity.Entreprise{Code: code, RaisonSociale: "Société " + code, Pays: "CMR", Devise: "XAF", Actif: true}
	require.NoError(e.t, e.Store.Entreprises().Create(e.Ctx, ent))
	role := &entity.Role{EntrepriseID: ent.ID, Code: "admin", Libelle: "Administrateur"}
	require.NoError(e.t, e.Store.Permissions().CreateRole(e.Ctx, role))
	u := &entity.Utilisateur{EntrepriseID: ent.ID, RoleID: role.ID, Login: "test", Nom: "Test", PasswordHash: "x", Actif: true}
	require.NoError(e.t, e.Store.Utilisateurs().Create(e.Ctx, u))
	return tenant.Actor{UserID: u.ID, EntrepriseID: ent.ID, RoleID: role.ID}
}

// D raccourci decimal.
func D(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Ptr renvoie &v.
func Ptr[T any](v T) *T {
	return &v
}

// Compte crée un compte comptable.
func (e *Env) Compte(a tenant.Actor, numero, sens string) int64 {
	e.t.Helper()
	c := &entity.CompteComptable{EntrepriseID: a.EntrepriseID, Numero: numero, Libelle: "Compte " + numero, SensNormal: sens, Actif: true}
	require.NoError(e.t, e.Store.Comptes().Create(e.Ctx, c))
	return c.ID
}

// Journal crée un journal.
func (e *Env) Journal(a tenant.Actor, code string) int64 {
	e.t.Helper()
	j := &entity.JournalComptable{EntrepriseID: a.EntrepriseID, Code: code, Libelle: "Journal " + code, Actif: true}
	require.NoError(e.t, e.Store.Journaux().Create(e.Ctx, j))
	return j.ID
}

// Periode crée une période comptable [debut, fin] (AAAA-MM-JJ).
func (e *Env) Periode(a tenant.Actor, debut, fin string, cloturee bool) int64 {
	e.t.Helper()
	p := &entity.PeriodeComptable{
		EntrepriseID: a.EntrepriseID,
		Libelle:      debut + " / " + fin,
		DateDebut:    MustTime(debut),
		DateFin:      MustTime(fin),
		Cloturee:     cloturee,
	}
	require.NoError(e.t, e.Store.Periodes().Create(e.Ctx, p))
	return p.ID
}

// Depot crée un dépôt.
func (e *Env) Depot(a tenant.Actor, code string) int64 {
	e.t.Helper()
	d := &entity.Depot{EntrepriseID: a.EntrepriseID, Code: code, Libelle: "Dépôt " + code, Actif: true}
	require.NoError(e.t, e.Store.Depots().Create(e.Ctx, d))
	return d.ID
}

// Produit crée un produit géré en stock.
func (e *Env) Produit(a tenant.Actor, code string) int64 {
	e.t.Helper()
	p := &entity.Produit{
		EntrepriseID: a.EntrepriseID,
		Code:         code,
		Libelle:      "Produit " + code,
		Type:         "produit",
		UniteVenteID: &e.Unite,
		PrixVenteTTC: D("1000"),
		GererStock:   true,
		Actif:        true,
	}
	require.NoError(e.t, e.Store.Produits().Create(e.Ctx, p))
	return p.ID
}

// Variante crée une variante.
func (e *Env) Variante(produitID int64, code string, stockSepare bool) int64 {
	e.t.Helper()
	v := &entity.Variante{ProduitID: produitID, Code: code, Libelle: "Variante " + code, StockSepare: stockSepare, Actif: true}
	require.NoError(e.t, e.Store.Variantes().Create(e.Ctx, v))
	return v.ID
}

// SetStock fixe la quantité d'un (dépôt, produit).
func (e *Env) SetStock(depotID, produitID int64, qty string) {
	e.t.Helper()
	require.NoError(e.t, e.DB.Run(e.Ctx, func(tx repository.Store) error {
		s, err := tx.Stocks().GetOrCreateForUpdate(e.Ctx, repository.StockKey{DepotID: depotID, ProduitID: produitID}, &e.Unite)
		if err != nil {
			return err
		}
		s.Quantite = D(qty)
		return tx.Stocks().SetQuantite(e.Ctx, s)
	}))
}

// Quantite quantité en stock, zéro si la ligne n'existe pas.
func (e *Env) Quantite(depotID, produitID int64) decimal.Decimal {
	e.t.Helper()
	s, err := e.Store.Stocks().Find(e.Ctx, repository.StockKey{DepotID: depotID, ProduitID: produitID})
	require.NoError(e.t, err)
	if s == nil {
		return decimal.Zero
	}
	return s.Quantite
}

// Tiers crée un tiers.
func (e *Env) Tiers(a tenant.Actor, code, typ string) int64 {
	e.t.Helper()
	x := &entity.Tiers{EntrepriseID: a.EntrepriseID, TypeTiers: typ, Code: code, RaisonSociale: "Tiers " + code, Actif: true}
	require.NoError(e.t, e.Store.Tiers().Create(e.Ctx, x))
	return x.ID
}

// Etat enregistre un état de document.
func (e *Env) Etat(typeDocument, code string, ordre int) int64 {
	return e.DB.AddEtat(entity.EtatDocument{TypeDocument: typeDocument, Code: code, Libelle: code, Ordre: ordre})
}

// CompteTresorerie crée une caisse en XAF.
func (e *Env) CompteTresorerie(a tenant.Actor, code string) int64 {
	e.t.Helper()
	c := &entity.CompteTresorerie{EntrepriseID: a.EntrepriseID, Code: code, Libelle: "Caisse " + code, TypeCompte: "caisse", DeviseID: e.XAF, Actif: true}
	require.NoError(e.t, e.Store.ComptesTresorerie().Create(e.Ctx, c))
	return c.ID
}

// ModePaiement crée un mode de paiement.
func (e *Env) ModePaiement(a tenant.Actor, code string) int64 {
	e.t.Helper()
	m := &entity.ModePaiement{EntrepriseID: a.EntrepriseID, Code: code, Libelle: code, Actif: true}
	require.NoError(e.t, e.Store.ModesPaiement().Create(e.Ctx, m))
	return m.ID
}

// Employe crée un salarié.
func (e *Env) Employe(a tenant.Actor, matricule string) int64 {
	e.t.Helper()
	x := &entity.Employe{EntrepriseID: a.EntrepriseID, Matricule: matricule, Nom: "Employé " + matricule, Actif: true}
	require.NoError(e.t, e.Store.Employes().Create(e.Ctx, x))
	return x.ID
}
