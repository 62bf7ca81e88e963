package comptabilite

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// CreateEcriture enregistre une écriture équilibrée. Ordre des contrôles : entreprise,
// journal, numéro de pièce, nombre de lignes, équilibre, montant, période, comptes.
// Les comptes ne sont résolus qu'en dernier : aucun identifiant d'une autre entreprise
// ne peut être sondé par une écriture invalide.
func (s *Service) CreateEcriture(ctx context.Context, a tenant.Actor, in dto.EcritureCreate) (*dto.EcritureResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	var out *entity.EcritureComptable
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := tenant.OwnedOrNotFound(ctx, refs, a, repository.KindJournal, in.JournalID); err != nil {
			return err
		}

		numero := strings.TrimSpace(in.NumeroPiece)
		if numero == "" {
			return domain.BadRequest(ReasonNumeroPieceVide, msgNumeroPieceVide)
		}
		if len(in.Lignes) < 2 {
			return domain.BadRequest(ReasonLignesMin, msgLignesMin)
		}
		debit, credit := decimal.Zero, decimal.Zero
		for _, l := range in.Lignes {
			debit = debit.Add(l.Debit)
			credit = credit.Add(l.Credit)
		}
		if !debit.Equal(credit) {
			return domain.BadRequest(ReasonNonEquilibree, msgNonEquilibree)
		}
		if !debit.IsPositive() {
			return domain.BadRequest(ReasonMontantZero, msgMontantZero)
		}

		date := in.DateEcriture.Time
		if in.PeriodeID != nil {
			p, err := tx.Periodes().GetByIDForShare(ctx, *in.PeriodeID)
			if err != nil {
				return err
			}
			if p == nil || p.EntrepriseID != a.EntrepriseID {
				return domain.NotFound(msgPeriodeNotFound)
			}
			if p.Cloturee {
				return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeCloturee)
			}
			if !p.Contient(date) {
				return domain.BadRequest(ReasonHorsPeriode, msgPeriodeHorsPeriode)
			}
		} else {
			p, err := tx.Periodes().FindClotureeCouvrant(ctx, in.EntrepriseID, date)
			if err != nil {
				return err
			}
			if p != nil {
				return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeCouvrante, date.Format(dto.DateLayout), p.Libelle)
			}
		}

		lignes := make([]entity.LigneEcriture, 0, len(in.Lignes))
		for i, l := range in.Lignes {
			if err := tenant.OwnedOrNotFound(ctx, refs, a, repository.KindCompte, l.CompteID); err != nil {
				return err
			}
			lignes = append(lignes, entity.LigneEcriture{
				CompteID: l.CompteID,
				Libelle:  trimOptional(l.Libelle),
				Debit:    l.Debit,
				Credit:   l.Credit,
				Ordre:    i + 1,
			})
		}

		e := &entity.EcritureComptable{
			EntrepriseID: in.EntrepriseID,
			JournalID:    in.JournalID,
			PeriodeID:    in.PeriodeID,
			DateEcriture: date,
			NumeroPiece:  numero,
			Libelle:      trimOptional(in.Libelle),
			CreatedByID:  a.CreatedBy(),
			Lignes:       lignes,
		}
		if err := tx.Ecritures().Create(ctx, e); err != nil {
			return err
		}
		created, err := tx.Ecritures().GetWithLignes(ctx, e.ID)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toEcritureResponse(out, true), nil
}

// GetEcriture en-tête et lignes triées par (ordre, id).
func (s *Service) GetEcriture(ctx context.Context, a tenant.Actor, id int64) (*dto.EcritureResponse, error) {
	e, err := s.store.Ecritures().GetWithLignes(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.NotFound(msgEcritureNotFound)
	}
	if err := tenant.GuardResource(a, e.EntrepriseID); err != nil {
		return nil, err
	}
	return toEcritureResponse(e, true), nil
}

// ListEcritures en-têtes triés par (date_ecriture desc, id desc).
func (s *Service) ListEcritures(ctx context.Context, a tenant.Actor, q dto.EcritureQuery) (dto.ListResponse[*dto.EcritureResponse], error) {
	var out dto.ListResponse[*dto.EcritureResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	page, err := q.Resolve(MaxEcritures)
	if err != nil {
		return out, err
	}
	list, err := s.store.Ecritures().List(ctx, repository.EcritureFilter{
		EntrepriseID: q.EntrepriseID,
		JournalID:    q.JournalID,
		PeriodeID:    q.PeriodeID,
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		Page:         page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, func(e *entity.EcritureComptable) *dto.EcritureResponse {
		return toEcritureResponse(e, false)
	}), page), nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func toEcritureResponse(e *entity.EcritureComptable, detail bool) *dto.EcritureResponse {
	r := &dto.EcritureResponse{
		ID:           e.ID,
		EntrepriseID: e.EntrepriseID,
		JournalID:    e.JournalID,
		PeriodeID:    e.PeriodeID,
		DateEcriture: dto.NewDate(e.DateEcriture),
		NumeroPiece:  e.NumeroPiece,
		Libelle:      e.Libelle,
		CreatedByID:  e.CreatedByID,
		CreatedAt:    e.CreatedAt,
	}
	if !detail {
		return r
	}
	debit, credit := decimal.Zero, decimal.Zero
	r.Lignes = make([]dto.LigneEcritureResponse, 0, len(e.Lignes))
	for _, l := range e.Lignes {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
		r.Lignes = append(r.Lignes, dto.LigneEcritureResponse{
			ID:       l.ID,
			CompteID: l.CompteID,
			Libelle:  l.Libelle,
			Debit:    l.Debit,
			Credit:   l.Credit,
			Ordre:    l.Ordre,
		})
	}
	r.TotalDebit = &debit
	r.TotalCredit = &credit
	return r
}
