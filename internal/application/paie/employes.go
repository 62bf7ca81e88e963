package paie

import (
	"context"
	"strings"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func (s *Service) CreateEmploye(ctx context.Context, a tenant.Actor, in dto.EmployeCreate) (*dto.EmployeResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	e := &entity.Employe{
		EntrepriseID: in.EntrepriseID,
		Matricule:    strings.TrimSpace(in.Matricule),
		Nom:          strings.TrimSpace(in.Nom),
		Prenom:       in.Prenom,
		NIU:          in.NIU,
		Actif:        in.Actif == nil || *in.Actif,
	}
	if e.NIU != nil {
		niu := strings.ToUpper(*e.NIU)
		e.NIU = &niu
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Employes().Create(ctx, e), msgEmployeExists, e.Matricule)
	})
	if err != nil {
		return nil, err
	}
	return toEmployeResponse(e), nil
}

func (s *Service) GetEmploye(ctx context.Context, a tenant.Actor, id int64) (*dto.EmployeResponse, error) {
	e, err := s.store.Employes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound(msgEmployeNotFound)
	}
	if err := tenant.GuardResource(a, e.EntrepriseID); err != nil {
		return nil, err
	}
	return toEmployeResponse(e), nil
}

// ListEmployes triés par matricule.
func (s *Service) ListEmployes(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.EmployeResponse], error) {
	var out dto.ListResponse[*dto.EmployeResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxEmployes)
	if err != nil {
		return out, err
	}
	list, err := s.store.Employes().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toEmployeResponse), page), nil
}

func toEmployeResponse(e *entity.Employe) *dto.EmployeResponse {
	return &dto.EmployeResponse{
		ID:           e.ID,
		EntrepriseID: e.EntrepriseID,
		Matricule:    e.Matricule,
		Nom:          e.Nom,
		Prenom:       e.Prenom,
		NIU:          e.NIU,
		Actif:        e.Actif,
		CreatedAt:    e.CreatedAt,
	}
}
