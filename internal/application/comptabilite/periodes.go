package comptabilite

import (
	"context"
	"strings"
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

// CreatePeriode ouvre une période ; date_fin doit être postérieure à date_debut.
func (s *Service) CreatePeriode(ctx context.Context, a tenant.Actor, in dto.PeriodeCreate) (*dto.PeriodeResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkDates(in.DateDebut.Time, in.DateFin.Time); err != nil {
		return nil, err
	}
	p := &entity.PeriodeComptable{
		EntrepriseID: in.EntrepriseID,
		Libelle:      strings.TrimSpace(in.Libelle),
		DateDebut:    in.DateDebut.Time,
		DateFin:      in.DateFin.Time,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return tx.Periodes().Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return toPeriodeResponse(p), nil
}

func (s *Service) GetPeriode(ctx context.Context, a tenant.Actor, id int64) (*dto.PeriodeResponse, error) {
	p, err := s.store.Periodes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(msgPeriodeNotFound)
	}
	if err := tenant.GuardResource(a, p.EntrepriseID); err != nil {
		return nil, err
	}
	return toPeriodeResponse(p), nil
}

func (s *Service) lockPeriode(ctx context.Context, tx repository.Store, a tenant.Actor, id int64) (*entity.PeriodeComptable, error) {
	p, err := tx.Periodes().GetByIDForUpdate(ctx, id)
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

// UpdatePeriode refusée une fois la période clôturée.
func (s *Service) UpdatePeriode(ctx context.Context, a tenant.Actor, id int64, in dto.PeriodeUpdate) (*dto.PeriodeResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("libelle", in.Libelle),
		dto.NotNull("date_debut", in.DateDebut),
		dto.NotNull("date_fin", in.DateFin),
	); err != nil {
		return nil, err
	}
	var out *entity.PeriodeComptable
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		p, err := s.lockPeriode(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if p.Cloturee {
			return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeClotureeModif)
		}
		if in.Libelle.HasValue() {
			p.Libelle = strings.TrimSpace(in.Libelle.Value)
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
		if err := tx.Periodes().Update(ctx, p); err != nil {
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

// CloturerPeriode verrouille la période ; l'opération est définitive.
func (s *Service) CloturerPeriode(ctx context.Context, a tenant.Actor, id int64) (*dto.PeriodeResponse, error) {
	var out *entity.PeriodeComptable
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		p, err := s.lockPeriode(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if p.Cloturee {
			return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeDejaCloturee)
		}
		now := s.now().UTC()
		p.Cloturee = true
		p.DateCloture = &now
		if err := tx.Periodes().Update(ctx, p); err != nil {
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

// ListPeriodes triées par date de début décroissante.
func (s *Service) ListPeriodes(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.PeriodeResponse], error) {
	var out dto.ListResponse[*dto.PeriodeResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxPeriodes)
	if err != nil {
		return out, err
	}
	list, err := s.store.Periodes().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toPeriodeResponse), page), nil
}

func toPeriodeResponse(p *entity.PeriodeComptable) *dto.PeriodeResponse {
	return &dto.PeriodeResponse{
		ID:           p.ID,
		EntrepriseID: p.EntrepriseID,
		Libelle:      p.Libelle,
		DateDebut:    dto.NewDate(p.DateDebut),
		DateFin:      dto.NewDate(p.DateFin),
		Cloturee:     p.Cloturee,
		DateCloture:  p.DateCloture,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
