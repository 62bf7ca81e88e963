package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/catalogue"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
)

// CatalogueHandler produits, variantes et familles.
type CatalogueHandler struct {
	svc   *catalogue.Service
	pages pager
}

// NewCatalogueHandler construit le handler.
func NewCatalogueHandler(svc *catalogue.Service, pageSize int) *CatalogueHandler {
	return &CatalogueHandler{svc: svc, pages: pager{defaultSize: pageSize}}
}

// CreateProduit godoc
// @Summary      Créer un produit
// @Tags         catalogue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProduitCreate  true  "Produit"
// @Success      201   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits [post]
func (h *CatalogueHandler) CreateProduit(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.ProduitCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateProduit(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetProduit godoc
// @Summary      Obtenir un produit
// @Tags         catalogue
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du produit"
// @Success      200  {object}  dto.ProduitResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id} [get]
func (h *CatalogueHandler) GetProduit(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetProduit(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateProduit godoc
// @Summary      Modifier un produit
// @Description  Seules les clés présentes sont appliquées ; null efface un champ optionnel.
// @Tags         catalogue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "ID du produit"
// @Param        body  body      dto.ProduitUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.ProduitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id} [patch]
func (h *CatalogueHandler) UpdateProduit(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProduitUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateProduit(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteProduit godoc
// @Summary      Supprimer un produit (suppression logique)
// @Tags         catalogue
// @Security     Bearer
// @Param        id   path  int  true  "ID du produit"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id} [delete]
func (h *CatalogueHandler) DeleteProduit(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteProduit(c.UserContext(), a, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListProduits godoc
// @Summary      Lister les produits
// @Tags         catalogue
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int     true   "Entreprise"
// @Param        famille_id     query     int     false  "Famille"
// @Param        actif          query     bool    false  "Actifs seulement"
// @Param        search         query     string  false  "Code, libellé ou code-barres"
// @Param        skip           query     int     false  "Décalage"  default(0)
// @Param        limit          query     int     false  "Taille"    default(20)
// @Success      200            {object}  dto.ListResponse[dto.ProduitResponse]
// @Router       /api/v1/catalogue/produits [get]
func (h *CatalogueHandler) ListProduits(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	q := dto.ProduitQuery{Search: c.Query("search")}
	if q.EntrepriseID, err = entrepriseID(c); err != nil {
		return err
	}
	if q.FamilleID, err = queryID(c, "famille_id"); err != nil {
		return err
	}
	if q.ActifOnly, err = queryBool(c, "actif", false); err != nil {
		return err
	}
	if q.PageRequest, err = h.pages.from(c); err != nil {
		return err
	}
	out, err := h.svc.ListProduits(c.UserContext(), a, q)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// CreateVariante godoc
// @Summary      Ajouter une variante
// @Tags         catalogue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "ID du produit"
// @Param        body  body      dto.VarianteCreate  true  "Variante"
// @Success      201   {object}  dto.VarianteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id}/variantes [post]
func (h *CatalogueHandler) CreateVariante(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	produitID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.VarianteCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateVariante(c.UserContext(), a, produitID, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListVariantes godoc
// @Summary      Variantes d'un produit
// @Tags         catalogue
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID du produit"
// @Success      200  {array}   dto.VarianteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id}/variantes [get]
func (h *CatalogueHandler) ListVariantes(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	produitID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.ListVariantes(c.UserContext(), a, produitID)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteVariante godoc
// @Summary      Supprimer une variante
// @Tags         catalogue
// @Security     Bearer
// @Param        id           path  int  true  "ID du produit"
// @Param        variante_id  path  int  true  "ID de la variante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/produits/{id}/variantes/{variante_id} [delete]
func (h *CatalogueHandler) DeleteVariante(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	produitID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	id, err := paramID(c, "variante_id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteVariante(c.UserContext(), a, produitID, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateFamille godoc
// @Summary      Créer une famille de produits
// @Tags         catalogue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FamilleCreate  true  "Famille"
// @Success      201   {object}  dto.FamilleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/familles [post]
func (h *CatalogueHandler) CreateFamille(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	var in dto.FamilleCreate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.CreateFamille(c.UserContext(), a, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetFamille godoc
// @Summary      Obtenir une famille
// @Tags         catalogue
// @Security     Bearer
// @Produce      json
// @Param        id   path      int  true  "ID de la famille"
// @Success      200  {object}  dto.FamilleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/familles/{id} [get]
func (h *CatalogueHandler) GetFamille(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.svc.GetFamille(c.UserContext(), a, id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// UpdateFamille godoc
// @Summary      Modifier une famille
// @Description  parent_id à null rattache la famille à la racine ; un cycle est refusé.
// @Tags         catalogue
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "ID de la famille"
// @Param        body  body      dto.FamilleUpdate  true  "Champs à modifier"
// @Success      200   {object}  dto.FamilleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/familles/{id} [patch]
func (h *CatalogueHandler) UpdateFamille(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var in dto.FamilleUpdate
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.UpdateFamille(c.UserContext(), a, id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// DeleteFamille godoc
// @Summary      Supprimer une famille (suppression logique)
// @Tags         catalogue
// @Security     Bearer
// @Param        id   path  int  true  "ID de la famille"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/catalogue/familles/{id} [delete]
func (h *CatalogueHandler) DeleteFamille(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteFamille(c.UserContext(), a, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFamilles godoc
// @Summary      Lister les familles
// @Tags         catalogue
// @Security     Bearer
// @Produce      json
// @Param        entreprise_id  query     int  true   "Entreprise"
// @Param        parent_id      query     int  false  "Parent"
// @Param        skip           query     int  false  "Décalage"
// @Param        limit          query     int  false  "Taille"
// @Success      200            {object}  dto.ListResponse[dto.FamilleResponse]
// @Router       /api/v1/catalogue/familles [get]
func (h *CatalogueHandler) ListFamilles(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	ent, err := entrepriseID(c)
	if err != nil {
		return err
	}
	parent, err := queryID(c, "parent_id")
	if err != nil {
		return err
	}
	pr, err := h.pages.from(c)
	if err != nil {
		return err
	}
	out, err := h.svc.ListFamilles(c.UserContext(), a, ent, parent, pr)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
