// Package parametrage expose les données de référence du tenant.
package parametrage

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Service lecture de l'entreprise courante.
type Service struct {
	store repository.Store
}

// NewService construit le service.
func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// GetEntreprise entreprise de l'appelant ; aucun identifiant n'est accepté en entrée.
func (s *Service) GetEntreprise(ctx context.Context, a tenant.Actor) (*dto.EntrepriseResponse, error) {
	e, err := s.store.Entreprises().GetByID(ctx, a.EntrepriseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound("Entreprise %d introuvable.", a.EntrepriseID)
	}
	return &dto.EntrepriseResponse{
		ID:            e.ID,
		Code:          e.Code,
		RaisonSociale: e.RaisonSociale,
		NIU:           e.NIU,
		RCCM:          e.RCCM,
		Adresse:       e.Adresse,
		Ville:         e.Ville,
		BoitePostale:  e.BoitePostale,
		Telephone:     e.Telephone,
		Email:         e.Email,
		Pays:          e.Pays,
		Devise:        e.Devise,
		Actif:         e.Actif,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}, nil
}
