package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/partenaires"
)

// PartenairesHandler tiers (clients, fournisseurs, mixtes).
type PartenairesHandler struct {
	svc   *partenaires.Service
	pages pager
}

func NewPartenairesHandler(svc *partenaires.Service, pageSize int) *PartenairesHandler {
	return &PartenairesHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// Create godoc
// @Summary      Créer un tiers
// @Tags         partenaires
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TiersCreate  true  "Tiers"
// @Success      201   {object}  dto.TiersResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/partenaires/tiers [post]
func (h *PartenairesHandler) Create(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.TiersCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtenir un tiers
// @Tags         partenaires
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du tiers"
// @Success      200  {object}  dto.TiersResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/partenaires/tiers/{id} [get]
func (h *PartenairesHandler) Get(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un tiers
// @Tags         partenaires
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "ID du tiers"
// @Param        body  body      dto.TiersUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.TiersResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/partenaires/tiers/{id} [patch]
func (h *PartenairesHandler) Update(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.TiersUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les tiers
// @Tags         partenaires
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int     true   "Entreprise"
// @Param        type_tiers     query     string  false  "client, fournisseur ou mixte"
// @Param        search         query     string  false  "Code, raison sociale ou NIU"
// @Param        skip           query     int     false  "Décalage"
// @Param        limit          query     int     false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.TiersResponse]
// @Router       /api/v1/partenaires/tiers [get]
func (h *PartenairesHandler) List(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.TiersQuery{TypeTiers: c.Query("type_tiers"), Search: c.Query("search")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.PageRequest, err = h.pages.from(c); err != nil {
		return err
	}
	out, err := h.svc.List(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
