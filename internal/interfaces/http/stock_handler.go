package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/stock"
)

// StockHandler mouvements, niveaux de stock et alertes.
type StockHandler struct {
	svc   *stock.Service
	pages pager
}

func NewStockHandler(svc *stock.Service, pageSize int) *StockHandler {
	return &StockHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// CreateMouvement godoc
// @Summary      Enregistrer un mouvement de stock
// @Description  entree, sortie, transfert (depot_dest_id requis) ou ajustement. Une sortie
// @Description  supérieure au disponible est refusée sauf si le produit autorise le stock négatif.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.MouvementCreate  true  "Mouvement"
// @Success      201   {object}  dto.MouvementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/mouvements [post]
func (h *StockHandler) CreateMouvement(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.MouvementCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateMouvement(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMouvement godoc
// @Summary      Obtenir un mouvement
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du mouvement"
// @Success      200  {object}  dto.MouvementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/mouvements/{id} [get]
func (h *StockHandler) GetMouvement(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetMouvement(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListMouvements godoc
// @Summary      Lister les mouvements
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id   query     int     true   "Entreprise"
// @Param        depot_id        query     int     false  "Dépôt (source ou destination)"
// @Param        produit_id      query     int     false  "Produit"
// @Param        type_mouvement  query     string  false  "Type"
// @Param        date_from       query     string  false  "Date début (AAAA-MM-JJ)"
// @Param        date_to         query     string  false  "Date fin (AAAA-MM-JJ)"
// @Param        skip            query     int     false  "Décalage"
// @Param        limit           query     int     false  "Taille"
// @Success      200             {object}  dto.ListResponse[dto.MouvementResponse]
// @Router       /api/v1/stock/mouvements [get]
func (h *StockHandler) ListMouvements(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.MouvementQuery{TypeMouvement: c.Query("type_mouvement")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.DepotID, err = queryID(c, "depot_id"); err != nil {
		return err
	}
	if q.ProduitID, err = queryID(c, "produit_id"); err != nil {
		return err
	}
	if q.DateFrom, err = queryDate(c, "date_from"); err != nil {
		return err
	}
	if q.DateTo, err = queryDate(c, "date_to"); err != nil {
		return err
	}
	if q.PageRequest, err = h.pages.from(c); err != nil {
		return err
	}
	out, err := h.svc.ListMouvements(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Obtenir une ligne de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la ligne"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/stocks/{id} [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetStock(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetQuantite godoc
// @Summary      Quantité en stock d'un produit dans un dépôt
// @Description  Renvoie 0 si aucune ligne de stock n'existe encore.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        depot_id     path      int  true   "Dépôt"
// @Param        produit_id   path      int  true   "Produit"
// @Param        variante_id  query     int  false  "Variante"
// @Success      200          {object}  dto.QuantiteResponse
// @Failure      404          {object}  dto.ErrorResponse
// @Router       /api/v1/stock/depots/{depot_id}/produits/{produit_id}/quantite [get]
func (h *StockHandler) GetQuantite(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	depotID, err := paramID(c, "depot_id")
	if err != nil {
		return err
	}
	produitID, err := paramID(c, "produit_id")
	if err != nil {
		return err
	}
	varianteID, err := queryID(c, "variante_id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetQuantite(c.UserContext(), a, depotID, produitID, varianteID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByDepot godoc
// @Summary      Stocks d'un dépôt
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        depot_id  path      int  true   "Dépôt"
// @Param        skip      query     int  false  "Décalage"
// @Param        limit     query     int  false  "Taille"
// @Success      200       {object}  dto.ListResponse[dto.StockResponse]
// @Router       /api/v1/stock/depots/{depot_id}/stocks [get]
func (h *StockHandler) ListByDepot(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	depotID, err := paramID(c, "depot_id")
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListByDepot(c.UserContext(), a, depotID, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListByProduit godoc
// @Summary      Stocks d'un produit, tous dépôts
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        produit_id  path      int  true   "Produit"
// @Param        skip        query     int  false  "Décalage"
// @Param        limit       query     int  false  "Taille"
// @Success      200         {object}  dto.ListResponse[dto.StockResponse]
// @Router       /api/v1/stock/produits/{produit_id}/stocks [get]
func (h *StockHandler) ListByProduit(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	produitID, err := paramID(c, "produit_id")
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListByProduit(c.UserContext(), a, produitID, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Alertes godoc
// @Summary      Produits sous le stock minimum
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        depot_id       query     int  false  "Dépôt"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.AlerteResponse]
// @Router       /api/v1/stock/alertes [get]
func (h *StockHandler) Alertes(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	ent, err := entrepriseID(c)
	if err != nil {
		return err
	}
	depotID, err := queryID(c, "depot_id")
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.Alertes(c.UserContext(), a, ent, depotID, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
