package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/paie"
)

// PaieHandler employés, périodes de paie et bulletins.
type PaieHandler struct {
	svc   *paie.Service
	pages pager
}

func NewPaieHandler(svc *paie.Service, pageSize int) *PaieHandler {
	return &PaieHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// CreateEmploye godoc
// @Summary      Créer un employé
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EmployeCreate  true  "Employé"
// @Success      201   {object}  dto.EmployeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/employes [post]
func (h *PaieHandler) CreateEmploye(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.EmployeCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateEmploye(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetEmploye godoc
// @Summary      Obtenir un employé
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de l'employé"
// @Success      200  {object}  dto.EmployeResponse
// @Router       /api/v1/paie/employes/{id} [get]
func (h *PaieHandler) GetEmploye(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetEmploye(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListEmployes godoc
// @Summary      Lister les employés
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Success      200            {object}  dto.ListResponse[dto.EmployeResponse]
// @Router       /api/v1/paie/employes [get]
func (h *PaieHandler) ListEmployes(c *fiber.Ctx) error {
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
	out, err := h.svc.ListEmployes(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreatePeriode godoc
// @Summary      Ouvrir une période de paie
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PeriodePaieCreate  true  "Période"
// @Success      201   {object}  dto.PeriodePaieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/periodes [post]
func (h *PaieHandler) CreatePeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.PeriodePaieCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreatePeriode(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetPeriode godoc
// @Summary      Obtenir une période de paie
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la période"
// @Success      200  {object}  dto.PeriodePaieResponse
// @Router       /api/v1/paie/periodes/{id} [get]
func (h *PaieHandler) GetPeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetPeriode(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdatePeriode godoc
// @Summary      Modifier une période de paie ouverte
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "ID de la période"
// @Param        body  body      dto.PeriodePaieUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.PeriodePaieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/periodes/{id} [patch]
func (h *PaieHandler) UpdatePeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.PeriodePaieUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdatePeriode(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CloturerPeriode godoc
// @Summary      Clôturer une période de paie
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la période"
// @Success      200  {object}  dto.PeriodePaieResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/paie/periodes/{id}/cloturer [post]
func (h *PaieHandler) CloturerPeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.CloturerPeriode(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListPeriodes godoc
// @Summary      Lister les périodes de paie
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        annee          query     int  false  "Année"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.PeriodePaieResponse]
// @Router       /api/v1/paie/periodes [get]
func (h *PaieHandler) ListPeriodes(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	ent, err := entrepriseID(c)
	if err != nil {
		return err
	}
	annee, err := queryInt(c, "annee")
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListPeriodes(c.UserContext(), a, ent, annee, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateBulletin godoc
// @Summary      Établir un bulletin de paie
// @Description  Brut = salaire de base + gains ; net = brut − retenues.
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.BulletinCreate  true  "Bulletin"
// @Success      201   {object}  dto.BulletinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/bulletins [post]
func (h *PaieHandler) CreateBulletin(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.BulletinCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateBulletin(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBulletin godoc
// @Summary      Obtenir un bulletin et ses lignes
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du bulletin"
// @Success      200  {object}  dto.BulletinResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/paie/bulletins/{id} [get]
func (h *PaieHandler) GetBulletin(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetBulletin(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateBulletin godoc
// @Summary      Modifier un bulletin brouillon
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID du bulletin"
// @Param        body  body      dto.BulletinUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.BulletinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/bulletins/{id} [patch]
func (h *PaieHandler) UpdateBulletin(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.BulletinUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateBulletin(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ValiderBulletin godoc
// @Summary      Valider un bulletin
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du bulletin"
// @Success      200  {object}  dto.BulletinResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/paie/bulletins/{id}/valider [post]
func (h *PaieHandler) ValiderBulletin(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.ValiderBulletin(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// PayerBulletin godoc
// @Summary      Marquer un bulletin validé comme payé
// @Tags         paie
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true   "ID du bulletin"
// @Param        body  body      dto.BulletinPaiement  false  "Date de paiement"
// @Success      200   {object}  dto.BulletinResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/paie/bulletins/{id}/payer [post]
func (h *PaieHandler) PayerBulletin(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.BulletinPaiement
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.PayerBulletin(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListBulletins godoc
// @Summary      Lister les bulletins
// @Tags         paie
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id    query     int  true   "Entreprise"
// @Param        periode_paie_id  query     int  false  "Période de paie"
// @Param        employe_id       query     int  false  "Employé"
// @Param        skip             query     int  false  "Décalage"
// @Param        limit            query     int  false  "Taille"
// @Success      200              {object}  dto.ListResponse[dto.BulletinResponse]
// @Router       /api/v1/paie/bulletins [get]
func (h *PaieHandler) ListBulletins(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var q dto.BulletinQuery
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.PeriodePaieID, err = queryID(c, "periode_paie_id"); err != nil {
		return err
	}
	if q.EmployeID, err = queryID(c, "employe_id"); err != nil {
		return err
	}
	if q.PageRequest, err = h.pages.from(c); err != nil {
		return err
	}
	out, err := h.svc.ListBulletins(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
