package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
)

// bind décode le corps JSON ; un corps vide vaut {} (PATCH sans champ = no-op).
func bind(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := c.App().Config().JSONDecoder(body, out); err != nil {
		return domain.BadRequest("CORPS_INVALIDE", "Corps de requête invalide : %s.", err.Error())
	}
	return nil
}

// paramID identifiant de chemin strictement positif.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.BadRequest("IDENTIFIANT_INVALIDE", "L'identifiant %s est invalide.", name)
	}
	return id, nil
}

// queryID paramètre de requête entier optionnel.
func queryID(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, domain.BadRequest("PARAMETRE_INVALIDE", "Le paramètre %s est invalide (reçu « %s »).", name, raw)
	}
	return &id, nil
}

// entrepriseID entreprise_id obligatoire sur les listes rattachées à une entreprise.
func entrepriseID(c *fiber.Ctx) (int64, error) {
	id, err := queryID(c, "entreprise_id")
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, domain.BadRequest("ENTREPRISE_ID_REQUIS", "Le paramètre entreprise_id est obligatoire.")
	}
	return *id, nil
}

func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.BadRequest("PARAMETRE_INVALIDE", "Le paramètre %s doit être un entier (reçu « %s »).", name, raw)
	}
	return &n, nil
}

func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	return dto.ParseDateParam(name, c.Query(name))
}

// queryBool true, 1, yes ; défaut si absent.
func queryBool(c *fiber.Ctx, name string, def bool) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.BadRequest("PARAMETRE_INVALIDE", "Le paramètre %s doit être un booléen (reçu « %s »).", name, raw)
	}
	return b, nil
}

// pager applique DEFAULT_PAGE_SIZE quand limit est absent.
type pager struct {
	defaultSize int
}

func (p pager) from(c *fiber.Ctx) (dto.PageRequest, error) {
	pr := dto.PageRequest{Limit: p.defaultSize}
	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pr, domain.BadRequest("PAGINATION_INVALIDE", "Le paramètre skip doit être un entier (reçu « %s »).", raw)
		}
		pr.Skip = n
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return pr, domain.BadRequest("PAGINATION_INVALIDE", "Le paramètre limit doit être un entier (reçu « %s »).", raw)
		}
		pr.Limit = n
	}
	return pr, nil
}
