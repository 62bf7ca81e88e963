package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/achats"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
)

// AchatsHandler dépôts et réceptions. Les commandes et factures fournisseurs passent
// par DocumentHandler.
type AchatsHandler struct {
	svc   *achats.Service
	pages pager
}

func NewAchatsHandler(svc *achats.Service, pageSize int) *AchatsHandler {
	return &AchatsHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// CreateDepot godoc
// @Summary      Créer un dépôt
// @Tags         achats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DepotCreate  true  "Dépôt"
// @Success      201   {object}  dto.DepotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/achats/depots [post]
func (h *AchatsHandler) CreateDepot(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.DepotCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateDepot(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetDepot godoc
// @Summary      Obtenir un dépôt
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du dépôt"
// @Success      200  {object}  dto.DepotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/achats/depots/{id} [get]
func (h *AchatsHandler) GetDepot(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetDepot(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateDepot godoc
// @Summary      Modifier un dépôt
// @Tags         achats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "ID du dépôt"
// @Param        body  body      dto.DepotUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.DepotResponse
// @Router       /api/v1/achats/depots/{id} [patch]
func (h *AchatsHandler) UpdateDepot(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.DepotUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateDepot(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListDepots godoc
// @Summary      Lister les dépôts
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.DepotResponse]
// @Router       /api/v1/achats/depots [get]
func (h *AchatsHandler) ListDepots(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	ent, err := entrepriseID(c)
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListDepots(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateReception godoc
// @Summary      Créer une réception (brouillon)
// @Tags         achats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ReceptionCreate  true  "Réception"
// @Success      201   {object}  dto.ReceptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/achats/receptions [post]
func (h *AchatsHandler) CreateReception(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.ReceptionCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateReception(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetReception godoc
// @Summary      Obtenir une réception et ses lignes
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la réception"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/achats/receptions/{id} [get]
func (h *AchatsHandler) GetReception(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetReception(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateReception godoc
// @Summary      Modifier l'en-tête d'une réception brouillon
// @Tags         achats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "ID de la réception"
// @Param        body  body      dto.ReceptionUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.ReceptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/achats/receptions/{id} [patch]
func (h *AchatsHandler) UpdateReception(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ReceptionUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateReception(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ValiderReception godoc
// @Summary      Valider une réception
// @Description  Génère un mouvement d'entrée par ligne dans la même transaction.
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la réception"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/achats/receptions/{id}/valider [post]
func (h *AchatsHandler) ValiderReception(c *fiber.Ctx) error {
	return h.transition(c, h.svc.ValiderReception)
}

// AnnulerReception godoc
// @Summary      Annuler une réception brouillon
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la réception"
// @Success      200  {object}  dto.ReceptionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/achats/receptions/{id}/annuler [post]
func (h *AchatsHandler) AnnulerReception(c *fiber.Ctx) error {
	return h.transition(c, h.svc.AnnulerReception)
}

func (h *AchatsHandler) transition(c *fiber.Ctx, fn func(ctx context.Context, a tenant.Actor, id int64) (*dto.ReceptionResponse, error)) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := fn(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListReceptions godoc
// @Summary      Lister les réceptions
// @Tags         achats
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id   query     int     true   "Entreprise"
// @Param        fournisseur_id  query     int     false  "Fournisseur"
// @Param        depot_id        query     int     false  "Dépôt"
// @Param        etat            query     string  false  "brouillon, validee ou annulee"
// @Param        skip            query     int     false  "Décalage"
// @Param        limit           query     int     false  "Taille"
// @Success      200             {object}  dto.ListResponse[dto.ReceptionResponse]
// @Router       /api/v1/achats/receptions [get]
func (h *AchatsHandler) ListReceptions(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ReceptionQuery{Etat: c.Query("etat")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.FournisseurID, err = queryID(c, "fournisseur_id"); err != nil {
		return err
	}
	if q.DepotID, err = queryID(c, "depot_id"); err != nil {
		return err
	}
	if q.PageRequest, err = h.pages.from(c); err != nil {
		return err
	}
	out, err := h.svc.ListReceptions(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
