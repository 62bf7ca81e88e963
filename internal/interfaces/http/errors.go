package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

const msgInterne = "Erreur interne du serveur."

// statusFor statut HTTP d'une catégorie d'erreur métier.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}

// fiberCodes codes d'enveloppe pour les erreurs levées par fiber lui-même.
var fiberCodes = map[int]string{
	fiber.StatusBadRequest:            domain.CodeBadRequest,
	fiber.StatusUnauthorized:          domain.CodeUnauthorized,
	fiber.StatusForbidden:             domain.CodeForbidden,
	fiber.StatusNotFound:              domain.CodeNotFound,
	fiber.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	fiber.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	fiber.StatusRequestTimeout:        "REQUEST_TIMEOUT",
	fiber.StatusTooManyRequests:       domain.CodeRateLimitExceeded,
}

// ErrorHandler écrit l'enveloppe {detail, code, reason?}. Les erreurs non typées sont
// journalisées avec leur chaîne complète ; le client ne reçoit qu'un message générique.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if de, ok := domain.As(err); ok {
			return c.Status(statusFor(de)).JSON(dto.ErrorResponse{Detail: de.Message, Code: de.Code, Reason: de.Reason})
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, ok := fiberCodes[fe.Code]
			if !ok {
				code = domain.CodeInternal
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Detail: fe.Message, Code: code})
		}
		log.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("erreur interne")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Detail: msgInterne, Code: domain.CodeInternal})
	}
}
