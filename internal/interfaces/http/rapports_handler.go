package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/rapports"
)

// RapportsHandler indicateurs du tableau de bord.
type RapportsHandler struct {
	svc *rapports.Service
}

func NewRapportsHandler(svc *rapports.Service) *RapportsHandler {
	return &RapportsHandler{svc: svc}
}

// ChiffreAffaires godoc
// @Summary      Chiffre d'affaires d'une période
// @Description  Somme TTC des factures de vente, avoirs déduits ; proformas et duplicatas exclus.
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int     true  "Entreprise"
// @Param        date_debut     query     string  true  "Début de période (AAAA-MM-JJ)"
// @Param        date_fin       query     string  true  "Fin de période (AAAA-MM-JJ)"
// @Success      200            {object}  dto.ChiffreAffairesResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Router       /api/v1/rapports/chiffre-affaires [get]
func (h *RapportsHandler) ChiffreAffaires(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q, err := rapportQuery(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ChiffreAffaires(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Synthèse du tableau de bord
// @Tags         rapports
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int     true   "Entreprise"
// @Param        date_debut     query     string  false  "Début de période (AAAA-MM-JJ)"
// @Param        date_fin       query     string  false  "Fin de période (AAAA-MM-JJ)"
// @Success      200            {object}  dto.DashboardResponse
// @Router       /api/v1/rapports/dashboard [get]
func (h *RapportsHandler) Dashboard(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q, err := rapportQuery(c)
	if err != nil {
		return err
	}
	out, err := h.svc.Dashboard(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func rapportQuery(c *fiber.Ctx) (dto.RapportQuery, error) {
	var (
		q   dto.RapportQuery
		err error
	)
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return q, err
	}
	if q.DateDebut, err = queryDate(c, "date_debut"); err != nil {
		return q, err
	}
	if q.DateFin, err = queryDate(c, "date_fin"); err != nil {
		return q, err
	}
	return q, nil
}
