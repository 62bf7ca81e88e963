package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/comptabilite"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
)

// ComptabiliteHandler plan comptable, journaux, périodes et écritures.
type ComptabiliteHandler struct {
	svc   *comptabilite.Service
	pages pager
}

func NewComptabiliteHandler(svc *comptabilite.Service, pageSize int) *ComptabiliteHandler {
	return &ComptabiliteHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Comptes
// ──────────────────────────────────────────────────────────────────────────────

// CreateCompte godoc
// @Summary      Créer un compte comptable
// @Description  Le numéro suit le plan SYSCOHADA : sa classe (1 à 9) en est le premier chiffre.
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CompteCreate  true  "Compte"
// @Success      201   {object}  dto.CompteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/comptes [post]
func (h *ComptabiliteHandler) CreateCompte(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.CompteCreate
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
// @Summary      Obtenir un compte
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du compte"
// @Success      200  {object}  dto.CompteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/comptes/{id} [get]
func (h *ComptabiliteHandler) GetCompte(c *fiber.Ctx) error {
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

// UpdateCompte godoc
// @Summary      Modifier un compte
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "ID du compte"
// @Param        body  body      dto.CompteUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.CompteResponse
// @Router       /api/v1/comptabilite/comptes/{id} [patch]
func (h *ComptabiliteHandler) UpdateCompte(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CompteUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateCompte(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListComptes godoc
// @Summary      Lister le plan comptable
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int   true   "Entreprise"
// @Param        actif          query     bool  false  "Actifs seulement"
// @Param        skip           query     int   false  "Décalage"
// @Param        limit          query     int   false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.CompteResponse]
// @Router       /api/v1/comptabilite/comptes [get]
func (h *ComptabiliteHandler) ListComptes(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	ent, err := entrepriseID(c)
	if err != nil {
		return err
	}
	actif, err := queryBool(c, "actif", false)
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListComptes(c.UserContext(), a, ent, actif, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// SoldeCompte godoc
// @Summary      Solde d'un compte
// @Description  Totaux débit et crédit des lignes d'écriture ; solde = débit − crédit.
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du compte"
// @Success      200  {object}  dto.SoldeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/comptes/{id}/solde [get]
func (h *ComptabiliteHandler) SoldeCompte(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.SoldeCompte(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Journaux
// ──────────────────────────────────────────────────────────────────────────────

// CreateJournal godoc
// @Summary      Créer un journal
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.JournalCreate  true  "Journal"
// @Success      201   {object}  dto.JournalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/journaux [post]
func (h *ComptabiliteHandler) CreateJournal(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.JournalCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateJournal(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetJournal godoc
// @Summary      Obtenir un journal
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du journal"
// @Success      200  {object}  dto.JournalResponse
// @Router       /api/v1/comptabilite/journaux/{id} [get]
func (h *ComptabiliteHandler) GetJournal(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetJournal(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateJournal godoc
// @Summary      Modifier un journal
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "ID du journal"
// @Param        body  body      dto.JournalUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.JournalResponse
// @Router       /api/v1/comptabilite/journaux/{id} [patch]
func (h *ComptabiliteHandler) UpdateJournal(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.JournalUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateJournal(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListJournaux godoc
// @Summary      Lister les journaux
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.JournalResponse]
// @Router       /api/v1/comptabilite/journaux [get]
func (h *ComptabiliteHandler) ListJournaux(c *fiber.Ctx) error {
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
	out, err := h.svc.ListJournaux(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Périodes
// ──────────────────────────────────────────────────────────────────────────────

// CreatePeriode godoc
// @Summary      Ouvrir une période comptable
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PeriodeCreate  true  "Période"
// @Success      201   {object}  dto.PeriodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/periodes [post]
func (h *ComptabiliteHandler) CreatePeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.PeriodeCreate
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
// @Summary      Obtenir une période comptable
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la période"
// @Success      200  {object}  dto.PeriodeResponse
// @Router       /api/v1/comptabilite/periodes/{id} [get]
func (h *ComptabiliteHandler) GetPeriode(c *fiber.Ctx) error {
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
// @Summary      Modifier une période ouverte
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "ID de la période"
// @Param        body  body      dto.PeriodeUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.PeriodeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/periodes/{id} [patch]
func (h *ComptabiliteHandler) UpdatePeriode(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.PeriodeUpdate
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
// @Summary      Clôturer une période
// @Description  Irréversible ; plus aucune écriture ne peut y être rattachée.
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la période"
// @Success      200  {object}  dto.PeriodeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/periodes/{id}/cloturer [post]
func (h *ComptabiliteHandler) CloturerPeriode(c *fiber.Ctx) error {
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
// @Summary      Lister les périodes comptables
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.PeriodeResponse]
// @Router       /api/v1/comptabilite/periodes [get]
func (h *ComptabiliteHandler) ListPeriodes(c *fiber.Ctx) error {
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
	out, err := h.svc.ListPeriodes(c.UserContext(), a, ent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Écritures
// ──────────────────────────────────────────────────────────────────────────────

// CreateEcriture godoc
// @Summary      Saisir une écriture équilibrée
// @Description  Au moins deux lignes ; chaque ligne porte soit un débit soit un crédit ;
// @Description  Σ débit = Σ crédit. La période éventuelle doit être ouverte et couvrir la date.
// @Tags         comptabilite
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EcritureCreate  true  "Écriture"
// @Success      201   {object}  dto.EcritureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/ecritures [post]
func (h *ComptabiliteHandler) CreateEcriture(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.EcritureCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateEcriture(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetEcriture godoc
// @Summary      Obtenir une écriture et ses lignes
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de l'écriture"
// @Success      200  {object}  dto.EcritureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/comptabilite/ecritures/{id} [get]
func (h *ComptabiliteHandler) GetEcriture(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetEcriture(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListEcritures godoc
// @Summary      Lister les écritures
// @Tags         comptabilite
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int     true   "Entreprise"
// @Param        journal_id     query     int     false  "Journal"
// @Param        periode_id     query     int     false  "Période"
// @Param        date_from      query     string  false  "Date début (AAAA-MM-JJ)"
// @Param        date_to        query     string  false  "Date fin (AAAA-MM-JJ)"
// @Param        skip           query     int     false  "Décalage"
// @Param        limit          query     int     false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.EcritureResponse]
// @Router       /api/v1/comptabilite/ecritures [get]
func (h *ComptabiliteHandler) ListEcritures(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var q dto.EcritureQuery
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.JournalID, err = queryID(c, "journal_id"); err != nil {
		return err
	}
	if q.PeriodeID, err = queryID(c, "periode_id"); err != nil {
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
	out, err := h.svc.ListEcritures(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
