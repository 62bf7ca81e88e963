package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tresorerie"
)

// TresorerieHandler comptes de trésorerie, modes de paiement et règlements.
type TresorerieHandler struct {
	svc   *tresorerie.Service
	pages pager
}

func NewTresorerieHandler(svc *tresorerie.Service, pageSize int) *TresorerieHandler {
	return &TresorerieHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// CreateCompte godoc
// @Summary      Créer un compte de trésorerie (caisse, banque)
// @Tags         tresorerie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CompteTresorerieCreate  true  "Compte"
// @Success      201   {object}  dto.CompteTresorerieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/tresorerie/comptes [post]
func (h *TresorerieHandler) CreateCompte(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.CompteTresorerieCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateCompte(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCompte godoc
// @Summary      Obtenir un compte de trésorerie
// @Tags         tresorerie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du compte"
// @Success      200  {object}  dto.CompteTresorerieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tresorerie/comptes/{id} [get]
func (h *TresorerieHandler) GetCompte(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetCompte(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListComptes godoc
// @Summary      Lister les comptes de trésorerie
// @Tags         tresorerie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.CompteTresorerieResponse]
// @Router       /api/v1/tresorerie/comptes [get]
func (h *TresorerieHandler) ListComptes(c *fiber.Ctx) error {
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
	out, err := h.svc.ListComptes(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateMode godoc
// @Summary      Créer un mode de paiement
// @Tags         tresorerie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ModePaiementCreate  true  "Mode de paiement"
// @Success      201   {object}  dto.ModePaiementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/tresorerie/modes-paiement [post]
func (h *TresorerieHandler) CreateMode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.ModePaiementCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateMode(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListModes godoc
// @Summary      Lister les modes de paiement
// @Tags         tresorerie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Success      200            {object}  dto.ListResponse[dto.ModePaiementResponse]
// @Router       /api/v1/tresorerie/modes-paiement [get]
func (h *TresorerieHandler) ListModes(c *fiber.Ctx) error {
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
	out, err := h.svc.ListModes(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateReglement godoc
// @Summary      Enregistrer un règlement
// @Description  Avec l'imputation automatique activée, le restant dû de la facture est
// @Description  diminué dans la même transaction ; un montant supérieur au restant dû est refusé.
// @Tags         tresorerie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ReglementCreate  true  "Règlement"
// @Success      201   {object}  dto.ReglementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/tresorerie/reglements [post]
func (h *TresorerieHandler) CreateReglement(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.ReglementCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateReglement(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetReglement godoc
// @Summary      Obtenir un règlement
// @Tags         tresorerie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du règlement"
// @Success      200  {object}  dto.ReglementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/tresorerie/reglements/{id} [get]
func (h *TresorerieHandler) GetReglement(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetReglement(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListReglements godoc
// @Summary      Lister les règlements
// @Tags         tresorerie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id   query     int     true   "Entreprise"
// @Param        type_reglement  query     string  false  "client ou fournisseur"
// @Param        tiers_id        query     int     false  "Tiers"
// @Param        date_from       query     string  false  "Date début (AAAA-MM-JJ)"
// @Param        date_to         query     string  false  "Date fin (AAAA-MM-JJ)"
// @Param        skip            query     int     false  "Décalage"
// @Param        limit           query     int     false  "Taille"
// @Success      200             {object}  dto.ListResponse[dto.ReglementResponse]
// @Router       /api/v1/tresorerie/reglements [get]
func (h *TresorerieHandler) ListReglements(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ReglementQuery{TypeReglement: c.Query("type_reglement")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.TiersID, err = queryID(c, "tiers_id"); err != nil {
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
	out, err := h.svc.ListReglements(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
