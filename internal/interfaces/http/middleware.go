package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/pkg/logger"
)

// RateLimiter fenêtre glissante par clé (mémoire ou Redis).
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}

// RequestLogger une ligne par requête. L'erreur éventuelle est rendue ici pour connaître
// le statut final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev = ev.
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP())
		if a, ok := tenant.FromContext(c.UserContext()); ok {
			ev = ev.Int64("entreprise_id", a.EntrepriseID).Int64("user_id", a.UserID)
		}
		ev.Msg("requête")
		return nil
	}
}

// RateLimit refuse la requête (429) quand l'adresse IP a épuisé son budget. Une panne du
// limiteur laisse passer la requête.
func RateLimit(limiter RateLimiter, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, wait, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("limiteur de débit indisponible")
			return c.Next()
		}
		if !ok {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(wait/time.Second)+1))
			return domain.RateLimited()
		}
		return c.Next()
	}
}
