package comptabilite

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

func (s *Service) CreateJournal(ctx context.Context, a tenant.Actor, in dto.JournalCreate) (*dto.JournalResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	j := &entity.JournalComptable{
		EntrepriseID: in.EntrepriseID,
		Code:         strings.TrimSpace(in.Code),
		Libelle:      strings.TrimSpace(in.Libelle),
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Journaux().Create(ctx, j), msgJournalCodeExists, j.Code)
	})
	if err != nil {
		return nil, err
	}
	return toJournalResponse(j), nil
}

func (s *Service) loadJournal(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.JournalComptable, error) {
	j, err := st.Journaux().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, domain.NotFound(msgJournalNotFound)
	}
	if err := tenant.GuardResource(a, j.EntrepriseID); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Service) GetJournal(ctx context.Context, a tenant.Actor, id int64) (*dto.JournalResponse, error) {
	j, err := s.loadJournal(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toJournalResponse(j), nil
}

func (s *Service) UpdateJournal(ctx context.Context, a tenant.Actor, id int64, in dto.JournalUpdate) (*dto.JournalResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("code", in.Code),
		dto.NotNull("libelle", in.Libelle),
		dto.NotNull("actif", in.Actif),
	); err != nil {
		return nil, err
	}
	var out *entity.JournalComptable
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		j, err := s.loadJournal(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if in.Code.HasValue() {
			j.Code = strings.TrimSpace(in.Code.Value)
		}
		if in.Libelle.HasValue() {
			j.Libelle = strings.TrimSpace(in.Libelle.Value)
		}
		in.Actif.Apply(&j.Actif)
		if err := tx.Journaux().Update(ctx, j); err != nil {
			return domain.ConflictOnDuplicate(err, msgJournalCodeExists, j.Code)
		}
		out = j
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toJournalResponse(out), nil
}

// ListJournaux journaux de l'entreprise, triés par code.
func (s *Service) ListJournaux(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.JournalResponse], error) {
	var out dto.ListResponse[*dto.JournalResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxJournaux)
	if err != nil {
		return out, err
	}
	list, err := s.store.Journaux().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toJournalResponse), page), nil
}

func toJournalResponse(j *entity.JournalComptable) *dto.JournalResponse {
	return &dto.JournalResponse{
		ID:           j.ID,
		EntrepriseID: j.EntrepriseID,
		Code:         j.Code,
		Libelle:      j.Libelle,
		Actif:        j.Actif,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}
