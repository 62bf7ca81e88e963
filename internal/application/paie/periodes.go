package paie

import (
	"context"
	"time"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

func checkDates(debut, fin time.Time) error {
	if !fin.After(debut) {
		return domain.BadRequest(ReasonPeriodeDates, msgPeriodeDates)
	}
	return nil
}

// CreatePeriode ouvre un mois de paie ; (entreprise, annee, mois) est unique.
func (s *Service) CreatePeriode(ctx context.Context, a tenant.Actor, in dto.PeriodePaieCreate) (*dto.PeriodePaieResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkDates(in.DateDebut.Time, in.DateFin.Time); err != nil {
		return nil, err
	}
	p := &entity.PeriodePaie{
		EntrepriseID: in.EntrepriseID,
		Annee:        in.Annee,
		Mois:         in.Mois,
		DateDebut:    in.DateDebut.Time,
		DateFin:      in.DateFin.Time,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.PeriodesPaie().Create(ctx, p), msgPeriodeExists, p.Mois, p.Annee)
	})
	if err != nil {
		return nil, err
	}
	return toPeriodeResponse(p), nil
}

func (s *Service) GetPeriode(ctx context.Context, a tenant.Actor, id int64) (*dto.PeriodePaieResponse, error) {
	p, err := loadPeriode(ctx, s.store.PeriodesPaie().GetByID, a, id)
	if err != nil {
		return nil, err
	}
	return toPeriodeResponse(p), nil
}

func loadPeriode(ctx context.Context, get func(context.Context, int64) (*entity.PeriodePaie, error), a tenant.Actor, id int64) (*entity.PeriodePaie, error) {
	p, err := get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(msgPeriodeNotFound)
	}
	if err := tenant.GuardResource(a, p.EntrepriseID); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePeriode modifie les bornes d'une période ouverte.
func (s *Service) UpdatePeriode(ctx context.Context, a tenant.Actor, id int64, in dto.PeriodePaieUpdate) (*dto.PeriodePaieResponse, error) {
	if err := dto.FirstError(
		dto.NotNull("date_debut", in.DateDebut),
		dto.NotNull("date_fin", in.DateFin),
	); err != nil {
		return nil, err
	}
	var out *entity.PeriodePaie
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		p, err := loadPeriode(ctx, tx.PeriodesPaie().GetByIDForUpdate, a, id)
		if err != nil {
			return err
		}
		if p.Cloturee {
			return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeCloturee)
		}
		if in.DateDebut.HasValue() {
			p.DateDebut = in.DateDebut.Value.Time
		}
		if in.DateFin.HasValue() {
			p.DateFin = in.DateFin.Value.Time
		}
		if err := checkDates(p.DateDebut, p.DateFin); err != nil {
			return err
		}
		if err := tx.PeriodesPaie().Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPeriodeResponse(out), nil
}

// CloturerPeriode clôture définitivement la période.
func (s *Service) CloturerPeriode(ctx context.Context, a tenant.Actor, id int64) (*dto.PeriodePaieResponse, error) {
	var out *entity.PeriodePaie
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		p, err := loadPeriode(ctx, tx.PeriodesPaie().GetByIDForUpdate, a, id)
		if err != nil {
			return err
		}
		if p.Cloturee {
			return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeDejaClot)
		}
		p.Cloturee = true
		if err := tx.PeriodesPaie().Update(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPeriodeResponse(out), nil
}

// ListPeriodes de la plus récente à la plus ancienne, filtrables par année.
func (s *Service) ListPeriodes(ctx context.Context, a tenant.Actor, entrepriseID int64, annee *int, pr dto.PageRequest) (dto.ListResponse[*dto.PeriodePaieResponse], error) {
	var out dto.ListResponse[*dto.PeriodePaieResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxPeriodes)
	if err != nil {
		return out, err
	}
	list, err := s.store.PeriodesPaie().List(ctx, entrepriseID, annee, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toPeriodeResponse), page), nil
}

func toPeriodeResponse(p *entity.PeriodePaie) *dto.PeriodePaieResponse {
	return &dto.PeriodePaieResponse{
		ID:           p.ID,
		EntrepriseID: p.EntrepriseID,
		Annee:        p.Annee,
		Mois:         p.Mois,
		DateDebut:    dto.NewDate(p.DateDebut),
		DateFin:      dto.NewDate(p.DateFin),
		Cloturee:     p.Cloturee,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
