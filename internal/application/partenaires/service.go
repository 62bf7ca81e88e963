// Package partenaires gère les tiers : clients, fournisseurs et tiers mixtes.
package partenaires

import (
	"context"
	"slices"
	"strings"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// MaxTiers borne de pagination.
const MaxTiers = 500

// ReasonTypeTiersInvalide sous-code d'un type_tiers hors énumération.
const ReasonTypeTiersInvalide = "TYPE_TIERS_INVALIDE"

const (
	msgTiersNotFound = "Tiers non trouvé."
	msgTiersExists   = "Un tiers avec le code « %s » existe déjà pour cette entreprise."
	msgTypeTiers     = "Le type de tiers doit être : client, fournisseur ou mixte (reçu : « %s »)."
)

var typesTiers = []string{entity.TiersClient, entity.TiersFournisseur, entity.TiersMixte}

// Service cas d'usage des tiers.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx}
}

func checkType(typ string) error {
	if !slices.Contains(typesTiers, typ) {
		return domain.BadRequest(ReasonTypeTiersInvalide, msgTypeTiers, typ)
	}
	return nil
}

// Create crée un tiers ; (entreprise, code) est unique. Le NIU est conservé en majuscules.
func (s *Service) Create(ctx context.Context, a tenant.Actor, in dto.TiersCreate) (*dto.TiersResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkType(in.TypeTiers); err != nil {
		return nil, err
	}
	t := &entity.Tiers{
		EntrepriseID:  in.EntrepriseID,
		TypeTiers:     in.TypeTiers,
		Code:          strings.TrimSpace(in.Code),
		RaisonSociale: strings.TrimSpace(in.RaisonSociale),
		NIU:           upper(in.NIU),
		RCCM:          in.RCCM,
		Adresse:       in.Adresse,
		Ville:         in.Ville,
		BoitePostale:  in.BoitePostale,
		Pays:          in.Pays,
		Telephone:     in.Telephone,
		Email:         in.Email,
		Actif:         in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Tiers().Create(ctx, t), msgTiersExists, t.Code)
	})
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
}

// Get tiers de l'entreprise de l'appelant.
func (s *Service) Get(ctx context.Context, a tenant.Actor, id int64) (*dto.TiersResponse, error) {
	t, err := load(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toResponse(t), nil
}

func load(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.Tiers, error) {
	t, err := st.Tiers().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NotFound(msgTiersNotFound)
	}
	if err := tenant.GuardResource(a, t.EntrepriseID); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applique une mise à jour partielle.
func (s *Service) Update(ctx context.Context, a tenant.Actor, id int64, in dto.TiersUpdate) (*dto.TiersResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("type_tiers", in.TypeTiers),
		dto.NotNull("code", in.Code),
		dto.NotNull("raison_sociale", in.RaisonSociale),
		dto.NotNull("actif", in.Actif),
	); err != nil {
		return nil, err
	}
	if in.TypeTiers.HasValue() {
		if err := checkType(in.TypeTiers.Value); err != nil {
			return nil, err
		}
	}
	var out *entity.Tiers
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		t, err := load(ctx, tx, a, id)
		if err != nil {
			return err
		}
		in.TypeTiers.Apply(&t.TypeTiers)
		if in.Code.HasValue() {
			t.Code = strings.TrimSpace(in.Code.Value)
		}
		if in.RaisonSociale.HasValue() {
			t.RaisonSociale = strings.TrimSpace(in.RaisonSociale.Value)
		}
		dto.ApplyNullable(in.NIU, &t.NIU)
		t.NIU = upper(t.NIU)
		dto.ApplyNullable(in.RCCM, &t.RCCM)
		dto.ApplyNullable(in.Adresse, &t.Adresse)
		dto.ApplyNullable(in.Ville, &t.Ville)
		dto.ApplyNullable(in.BoitePostale, &t.BoitePostale)
		dto.ApplyNullable(in.Pays, &t.Pays)
		dto.ApplyNullable(in.Telephone, &t.Telephone)
		dto.ApplyNullable(in.Email, &t.Email)
		in.Actif.Apply(&t.Actif)
		if err := tx.Tiers().Update(ctx, t); err != nil {
			return domain.ConflictOnDuplicate(err, msgTiersExists, t.Code)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toResponse(out), nil
}

// List tiers triés par code ; search porte sur le code et la raison sociale.
func (s *Service) List(ctx context.Context, a tenant.Actor, q dto.TiersQuery) (dto.ListResponse[*dto.TiersResponse], error) {
	var out dto.ListResponse[*dto.TiersResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	if q.TypeTiers != "" {
		if err := checkType(q.TypeTiers); err != nil {
			return out, err
		}
	}
	page, err := q.Resolve(MaxTiers)
	if err != nil {
		return out, err
	}
	list, err := s.store.Tiers().List(ctx, repository.TiersFilter{
		EntrepriseID: q.EntrepriseID,
		TypeTiers:    q.TypeTiers,
		Search:       strings.TrimSpace(q.Search),
		Page:         page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toResponse), page), nil
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	u := strings.ToUpper(*s)
	return &u
}

func toResponse(t *entity.Tiers) *dto.TiersResponse {
	return &dto.TiersResponse{
		ID:            t.ID,
		EntrepriseID:  t.EntrepriseID,
		TypeTiers:     t.TypeTiers,
		Code:          t.Code,
		RaisonSociale: t.RaisonSociale,
		NIU:           t.NIU,
		RCCM:          t.RCCM,
		Adresse:       t.Adresse,
		Ville:         t.Ville,
		BoitePostale:  t.BoitePostale,
		Pays:          t.Pays,
		Telephone:     t.Telephone,
		Email:         t.Email,
		Actif:         t.Actif,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
