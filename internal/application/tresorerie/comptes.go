package tresorerie

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

// CreateCompte crée une caisse, une banque ou un compte mobile money.
func (s *Service) CreateCompte(ctx context.Context, a tenant.Actor, in dto.CompteTresorerieCreate) (*dto.CompteTresorerieResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !slices.Contains(TypesCompte, in.TypeCompte) {
		return nil, domain.BadRequest(ReasonTypeCompteInvalide, msgTypeCompte, in.TypeCompte)
	}
	c := &entity.CompteTresorerie{
		EntrepriseID: in.EntrepriseID,
		Code:         strings.TrimSpace(in.Code),
		Libelle:      strings.TrimSpace(in.Libelle),
		TypeCompte:   in.TypeCompte,
		DeviseID:     in.DeviseID,
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindDevise, in.DeviseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.ComptesTresorerie().Create(ctx, c), msgCompteExists, c.Code)
	})
	if err != nil {
		return nil, err
	}
	return toCompteResponse(c), nil
}

// GetCompte compte de trésorerie de l'entreprise de l'appelant.
func (s *Service) GetCompte(ctx context.Context, a tenant.Actor, id int64) (*dto.CompteTresorerieResponse, error) {
	c, err := s.store.ComptesTresorerie().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(msgCompteNotFound)
	}
	if err := tenant.GuardResource(a, c.EntrepriseID); err != nil {
		return nil, err
	}
	return toCompteResponse(c), nil
}

// ListComptes comptes de trésorerie triés par code.
func (s *Service) ListComptes(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.CompteTresorerieResponse], error) {
	var out dto.ListResponse[*dto.CompteTresorerieResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxComptes)
	if err != nil {
		return out, err
	}
	list, err := s.store.ComptesTresorerie().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toCompteResponse), page), nil
}

// CreateMode crée un mode de paiement.
func (s *Service) CreateMode(ctx context.Context, a tenant.Actor, in dto.ModePaiementCreate) (*dto.ModePaiementResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	m := &entity.ModePaiement{
		EntrepriseID: in.EntrepriseID,
		Code:         strings.TrimSpace(in.Code),
		Libelle:      strings.TrimSpace(in.Libelle),
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.ModesPaiement().Create(ctx, m), msgModeExists, m.Code)
	})
	if err != nil {
		return nil, err
	}
	return toModeResponse(m), nil
}

// ListModes modes de paiement triés par code.
func (s *Service) ListModes(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.ModePaiementResponse], error) {
	var out dto.ListResponse[*dto.ModePaiementResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxModes)
	if err != nil {
		return out, err
	}
	list, err := s.store.ModesPaiement().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toModeResponse), page), nil
}

func toCompteResponse(c *entity.CompteTresorerie) *dto.CompteTresorerieResponse {
	return &dto.CompteTresorerieResponse{
		ID:           c.ID,
		EntrepriseID: c.EntrepriseID,
		Code:         c.Code,
		Libelle:      c.Libelle,
		TypeCompte:   c.TypeCompte,
		DeviseID:     c.DeviseID,
		Actif:        c.Actif,
		CreatedAt:    c.CreatedAt,
	}
}

func toModeResponse(m *entity.ModePaiement) *dto.ModePaiementResponse {
	return &dto.ModePaiementResponse{
		ID:           m.ID,
		EntrepriseID: m.EntrepriseID,
		Code:         m.Code,
		Libelle:      m.Libelle,
		Actif:        m.Actif,
		CreatedAt:    m.CreatedAt,
	}
}
