package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/parametrage"
)

// ParametrageHandler entreprise courante et référentiel des états.
type ParametrageHandler struct {
	svc  *parametrage.Service
	docs *commercial.Service
}

// NewParametrageHandler construit le handler.
func NewParametrageHandler(svc *parametrage.Service, docs *commercial.Service) *ParametrageHandler {
	return &ParametrageHandler{svc: svc, docs: docs}
}

// GetEntreprise godoc
// @Summary      Entreprise de l'appelant
// @Tags         parametrage
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/parametrage/entreprise [get]
func (h *ParametrageHandler) GetEntreprise(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	out, err := h.svc.GetEntreprise(c.UserContext(), a)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// ListEtats godoc
// @Summary      États de document d'une famille
// @Tags         parametrage
// @Security     Bearer
// @Produce      json
// @Param        type_document  query     string  true  "devis, commande, facture, bon_livraison, commande_fournisseur, facture_fournisseur"
// @Success      200            {array}   dto.EtatDocumentResponse
// @Failure      400            {object}  dto.ErrorResponse
// @Router       /api/v1/parametrage/etats-documents [get]
func (h *ParametrageHandler) ListEtats(c *fiber.Ctx) error {
	out, err := h.docs.ListEtats(c.UserContext(), c.Query("type_document"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}
