package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/auth"
	"github.com/gesco-erp/gesco-api/internal/application/dto"
)

// AuthHandler login, rafraîchissement et profil courant.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler construit le handler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login godoc
// @Summary      Ouvrir une session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "entreprise_id, login, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Login(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Refresh godoc
// @Summary      Échanger un jeton de rafraîchissement
// @Description  Chaque jeton de rafraîchissement n'est accepté qu'une fois.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.RefreshRequest  true  "refresh_token"
// @Success      200   {object}  dto.TokenResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.svc.Refresh(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Contexte de l'appelant
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	a, err := GetActor(c)
	if err != nil {
		return err
	}
	out, err := h.svc.Me(c.UserContext(), a)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
