package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"

	"github.com/gesco-erp/gesco-api/internal/application/achats"
	"github.com/gesco-erp/gesco-api/internal/application/auth"
	"github.com/gesco-erp/gesco-api/internal/application/catalogue"
	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/paie"
	"github.com/gesco-erp/gesco-api/internal/application/parametrage"
	"github.com/gesco-erp/gesco-api/internal/application/partenaires"
	"github.com/gesco-erp/gesco-api/internal/application/rapports"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/tresorerie"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	Auth           *auth.Service
	Authorizer     *tenant.Authorizer
	Parametrage    *parametrage.Service
	Catalogue      *catalogue.Service
	Partenaires    *partenaires.Service
	Stock          *stock.Service
	Achats         *achats.Service
	Documents      *commercial.Service
	Comptabilite   *comptabilite.Service
	Tresorerie     *tresorerie.Service
	Paie           *paie.Service
	Rapports       *rapports.Service
	PageSize       int
	RequestTimeout time.Duration
}

// Router enregistre les routes de l'API sous /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	if deps.RequestTimeout > 0 {
		api.Use(timeout.NewWithContext(func(c *fiber.Ctx) error { return c.Next() }, deps.RequestTimeout))
	}
	size := deps.PageSize

	// Auth (public)
	authHandler := NewAuthHandler(deps.Auth)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	protected := api.Group("", AuthMiddleware(deps.Auth))
	protected.Get("/auth/me", authHandler.Me)

	module := func(prefix, name string) fiber.Router {
		return protected.Group(prefix, RequirePermission(name, deps.Authorizer))
	}

	// Paramétrage
	param := module("/parametrage", tenant.ModuleParametrage)
	paramHandler := NewParametrageHandler(deps.Parametrage, deps.Documents)
	param.Get("/entreprise", paramHandler.GetEntreprise)
	param.Get("/etats-documents", paramHandler.ListEtats)

	// Catalogue
	cat := module("/catalogue", tenant.ModuleCatalogue)
	catHandler := NewCatalogueHandler(deps.Catalogue, size)
	cat.Get("/produits", catHandler.ListProduits)
	cat.Post("/produits", catHandler.CreateProduit)
	cat.Get("/produits/:id", catHandler.GetProduit)
	cat.Patch("/produits/:id", catHandler.UpdateProduit)
	cat.Delete("/produits/:id", catHandler.DeleteProduit)
	cat.Get("/produits/:id/variantes", catHandler.ListVariantes)
	cat.Post("/produits/:id/variantes", catHandler.CreateVariante)
	cat.Delete("/produits/:id/variantes/:variante_id", catHandler.DeleteVariante)
	cat.Get("/familles", catHandler.ListFamilles)
	cat.Post("/familles", catHandler.CreateFamille)
	cat.Get("/familles/:id", catHandler.GetFamille)
	cat.Patch("/familles/:id", catHandler.UpdateFamille)
	cat.Delete("/familles/:id", catHandler.DeleteFamille)

	// Partenaires
	part := module("/partenaires", tenant.ModulePartenaires)
	partHandler := NewPartenairesHandler(deps.Partenaires, size)
	part.Get("/tiers", partHandler.List)
	part.Post("/tiers", partHandler.Create)
	part.Get("/tiers/:id", partHandler.Get)
	part.Patch("/tiers/:id", partHandler.Update)

	// Stock
	stk := module("/stock", tenant.ModuleStock)
	stkHandler := NewStockHandler(deps.Stock, size)
	stk.Get("/mouvements", stkHandler.ListMouvements)
	stk.Post("/mouvements", stkHandler.CreateMouvement)
	stk.Get("/mouvements/:id", stkHandler.GetMouvement)
	stk.Get("/stocks/:id", stkHandler.GetStock)
	stk.Get("/depots/:depot_id/stocks", stkHandler.ListByDepot)
	stk.Get("/depots/:depot_id/produits/:produit_id/quantite", stkHandler.GetQuantite)
	stk.Get("/produits/:produit_id/stocks", stkHandler.ListByProduit)
	stk.Get("/alertes", stkHandler.Alertes)

	// Commercial
	com := module("/commercial", tenant.ModuleCommercial)
	documents(com, "/devis", NewDocumentHandler(deps.Documents, commercial.Devis, size))
	documents(com, "/commandes", NewDocumentHandler(deps.Documents, commercial.Commande, size))
	documents(com, "/factures", NewDocumentHandler(deps.Documents, commercial.Facture, size))
	documents(com, "/bons-livraison", NewDocumentHandler(deps.Documents, commercial.BonLivraison, size))

	// Achats
	ach := module("/achats", tenant.ModuleAchats)
	achHandler := NewAchatsHandler(deps.Achats, size)
	ach.Get("/depots", achHandler.ListDepots)
	ach.Post("/depots", achHandler.CreateDepot)
	ach.Get("/depots/:id", achHandler.GetDepot)
	ach.Patch("/depots/:id", achHandler.UpdateDepot)
	ach.Get("/receptions", achHandler.ListReceptions)
	ach.Post("/receptions", achHandler.CreateReception)
	ach.Get("/receptions/:id", achHandler.GetReception)
	ach.Patch("/receptions/:id", achHandler.UpdateReception)
	ach.Post("/receptions/:id/valider", achHandler.ValiderReception)
	ach.Post("/receptions/:id/annuler", achHandler.AnnulerReception)
	documents(ach, "/commandes-fournisseurs", NewDocumentHandler(deps.Documents, commercial.CommandeFournisseur, size))
	documents(ach, "/factures-fournisseurs", NewDocumentHandler(deps.Documents, commercial.FactureFournisseur, size))

	// Comptabilité
	cpt := module("/comptabilite", tenant.ModuleComptabilite)
	cptHandler := NewComptabiliteHandler(deps.Comptabilite, size)
	cpt.Get("/comptes", cptHandler.ListComptes)
	cpt.Post("/comptes", cptHandler.CreateCompte)
	cpt.Get("/comptes/:id", cptHandler.GetCompte)
	cpt.Patch("/comptes/:id", cptHandler.UpdateCompte)
	cpt.Get("/comptes/:id/solde", cptHandler.SoldeCompte)
	cpt.Get("/journaux", cptHandler.ListJournaux)
	cpt.Post("/journaux", cptHandler.CreateJournal)
	cpt.Get("/journaux/:id", cptHandler.GetJournal)
	cpt.Patch("/journaux/:id", cptHandler.UpdateJournal)
	cpt.Get("/periodes", cptHandler.ListPeriodes)
	cpt.Post("/periodes", cptHandler.CreatePeriode)
	cpt.Get("/periodes/:id", cptHandler.GetPeriode)
	cpt.Patch("/periodes/:id", cptHandler.UpdatePeriode)
	cpt.Post("/periodes/:id/cloturer", cptHandler.CloturerPeriode)
	cpt.Get("/ecritures", cptHandler.ListEcritures)
	cpt.Post("/ecritures", cptHandler.CreateEcriture)
	cpt.Get("/ecritures/:id", cptHandler.GetEcriture)

	// Trésorerie
	tre := module("/tresorerie", tenant.ModuleTresorerie)
	treHandler := NewTresorerieHandler(deps.Tresorerie, size)
	tre.Get("/comptes", treHandler.ListComptes)
	tre.Post("/comptes", treHandler.CreateCompte)
	tre.Get("/comptes/:id", treHandler.GetCompte)
	tre.Get("/modes-paiement", treHandler.ListModes)
	tre.Post("/modes-paiement", treHandler.CreateMode)
	tre.Get("/reglements", treHandler.ListReglements)
	tre.Post("/reglements", treHandler.CreateReglement)
	tre.Get("/reglements/:id", treHandler.GetReglement)

	// Paie
	pai := module("/paie", tenant.ModulePaie)
	paiHandler := NewPaieHandler(deps.Paie, size)
	pai.Get("/employes", paiHandler.ListEmployes)
	pai.Post("/employes", paiHandler.CreateEmploye)
	pai.Get("/employes/:id", paiHandler.GetEmploye)
	pai.Get("/periodes", paiHandler.ListPeriodes)
	pai.Post("/periodes", paiHandler.CreatePeriode)
	pai.Get("/periodes/:id", paiHandler.GetPeriode)
	pai.Patch("/periodes/:id", paiHandler.UpdatePeriode)
	pai.Post("/periodes/:id/cloturer", paiHandler.CloturerPeriode)
	pai.Get("/bulletins", paiHandler.ListBulletins)
	pai.Post("/bulletins", paiHandler.CreateBulletin)
	pai.Get("/bulletins/:id", paiHandler.GetBulletin)
	pai.Patch("/bulletins/:id", paiHandler.UpdateBulletin)
	pai.Post("/bulletins/:id/valider", paiHandler.ValiderBulletin)
	pai.Post("/bulletins/:id/payer", paiHandler.PayerBulletin)

	// Rapports
	rap := module("/rapports", tenant.ModuleRapports)
	rapHandler := NewRapportsHandler(deps.Rapports)
	rap.Get("/chiffre-affaires", rapHandler.ChiffreAffaires)
	rap.Get("/dashboard", rapHandler.Dashboard)
}

// documents routes communes à une famille de documents.
func documents(r fiber.Router, prefix string, h *DocumentHandler) {
	g := r.Group(prefix)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Patch("/:id", h.Update)
	if h.famille.EstFacture() {
		g.Post("/:id/recalculer-restant-du", h.RecalculerRestantDu)
	}
}
