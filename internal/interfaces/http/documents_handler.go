package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/commercial"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
)

// DocumentHandler expose une famille de documents (devis, factures, commandes
// fournisseurs…) ; une instance par famille.
type DocumentHandler struct {
	svc     *commercial.Service
	famille *commercial.Famille
	pages   pager
}

func NewDocumentHandler(svc *commercial.Service, f *commercial.Famille, pageSize int) *DocumentHandler {
	return &DocumentHandler{svc: svc, famille: f, pages: pager{defaultSize: pageSize}}
}

// Create godoc
// @Summary      Créer un document
// @Description  client_id et point_de_vente_id pour les familles de vente, fournisseur_id pour les achats.
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DocumentCreate  true  "Document"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/commercial/devis [post]
// @Router       /api/v1/commercial/commandes [post]
// @Router       /api/v1/commercial/factures [post]
// @Router       /api/v1/commercial/bons-livraison [post]
// @Router       /api/v1/achats/commandes-fournisseurs [post]
// @Router       /api/v1/achats/factures-fournisseurs [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.DocumentCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Create(c.UserContext(), a, h.famille, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtenir un document
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du document"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/commercial/devis/{id} [get]
// @Router       /api/v1/commercial/commandes/{id} [get]
// @Router       /api/v1/commercial/factures/{id} [get]
// @Router       /api/v1/commercial/bons-livraison/{id} [get]
// @Router       /api/v1/achats/commandes-fournisseurs/{id} [get]
// @Router       /api/v1/achats/factures-fournisseurs/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.Get(c.UserContext(), a, h.famille, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un document
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID du document"
// @Param        body  body      dto.DocumentUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/commercial/devis/{id} [patch]
// @Router       /api/v1/commercial/commandes/{id} [patch]
// @Router       /api/v1/commercial/factures/{id} [patch]
// @Router       /api/v1/commercial/bons-livraison/{id} [patch]
// @Router       /api/v1/achats/commandes-fournisseurs/{id} [patch]
// @Router       /api/v1/achats/factures-fournisseurs/{id} [patch]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.DocumentUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Update(c.UserContext(), a, h.famille, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les documents d'une famille
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id   query     int     true   "Entreprise"
// @Param        client_id       query     int     false  "Client (familles de vente)"
// @Param        fournisseur_id  query     int     false  "Fournisseur (familles d'achat)"
// @Param        etat_id         query     int     false  "État"
// @Param        date_from       query     string  false  "Date début (AAAA-MM-JJ)"
// @Param        date_to         query     string  false  "Date fin (AAAA-MM-JJ)"
// @Param        search          query     string  false  "Numéro"
// @Param        skip            query     int     false  "Décalage"
// @Param        limit           query     int     false  "Taille"
// @Success      200             {object}  dto.ListResponse[dto.DocumentResponse]
// @Router       /api/v1/commercial/devis [get]
// @Router       /api/v1/commercial/commandes [get]
// @Router       /api/v1/commercial/factures [get]
// @Router       /api/v1/commercial/bons-livraison [get]
// @Router       /api/v1/achats/commandes-fournisseurs [get]
// @Router       /api/v1/achats/factures-fournisseurs [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.DocumentQuery{Search: c.Query("search")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	tiers := "fournisseur_id"
	if h.famille.Vente {
		tiers = "client_id"
	}
	if q.TiersID, err = queryID(c, tiers); err != nil {
		return err
	}
	if q.EtatID, err = queryID(c, "etat_id"); err != nil {
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
	out, err := h.svc.List(c.UserContext(), a, h.famille, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// RecalculerRestantDu godoc
// @Summary      Recalculer le restant dû d'une facture
// @Description  montant_ttc moins la somme des règlements imputés, borné à 0.
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la facture"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/commercial/factures/{id}/recalculer-restant-du [post]
// @Router       /api/v1/achats/factures-fournisseurs/{id}/recalculer-restant-du [post]
func (h *DocumentHandler) RecalculerRestantDu(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.RecalculerRestantDu(c.UserContext(), a, h.famille, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
