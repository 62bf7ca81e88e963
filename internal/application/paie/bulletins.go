package paie

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var typesLigne = []string{entity.LigneGain, entity.LigneRetenue}

func lignes(in []dto.LigneBulletinCreate) ([]entity.LigneBulletin, error) {
	out := make([]entity.LigneBulletin, 0, len(in))
	for i, l := range in {
		if !slices.Contains(typesLigne, l.Type) {
			return nil, domain.BadRequest(ReasonTypeLigneInvalide, msgTypeLigne, l.Type)
		}
		out = append(out, entity.LigneBulletin{
			Libelle: strings.TrimSpace(l.Libelle),
			Type:    l.Type,
			Montant: l.Montant,
			Ordre:   i + 1,
		})
	}
	return out, nil
}

// totaliser net = gains - retenues, jamais négatif. Les lignes, quand il y en a, font foi.
func totaliser(b *entity.BulletinPaie) error {
	if len(b.Lignes) > 0 {
		b.Totaliser()
	} else {
		b.NetAPayer = b.TotalGains.Sub(b.TotalRetenues)
	}
	if b.NetAPayer.IsNegative() {
		return domain.BadRequest(ReasonNetNegatif, msgNetNegatif, b.TotalGains.StringFixed(2), b.TotalRetenues.StringFixed(2))
	}
	return nil
}

// lockPeriodeOuverte verrouille la période et refuse une période clôturée.
func lockPeriodeOuverte(ctx context.Context, tx repository.Store, a tenant.Actor, id int64) error {
	p, err := loadPeriode(ctx, tx.PeriodesPaie().GetByIDForUpdate, a, id)
	if err != nil {
		return err
	}
	if p.Cloturee {
		return domain.BadRequest(ReasonPeriodeCloturee, msgPeriodeCloturee)
	}
	return nil
}

// CreateBulletin établit le bulletin brouillon d'un employé ; un seul par période.
func (s *Service) CreateBulletin(ctx context.Context, a tenant.Actor, in dto.BulletinCreate) (*dto.BulletinResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	ls, err := lignes(in.Lignes)
	if err != nil {
		return nil, err
	}
	b := &entity.BulletinPaie{
		EntrepriseID:  in.EntrepriseID,
		EmployeID:     in.EmployeID,
		PeriodePaieID: in.PeriodePaieID,
		SalaireBrut:   in.SalaireBrut,
		TotalGains:    in.TotalGains,
		TotalRetenues: in.TotalRetenues,
		Statut:        entity.BulletinBrouillon,
		Lignes:        ls,
	}
	if err := totaliser(b); err != nil {
		return nil, err
	}
	var out *entity.BulletinPaie
	err = s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEmploye, in.EmployeID); err != nil {
			return err
		}
		if err := lockPeriodeOuverte(ctx, tx, a, in.PeriodePaieID); err != nil {
			return err
		}
		if err := tx.Bulletins().Create(ctx, b); err != nil {
			return domain.ConflictOnDuplicate(err, msgBulletinExists)
		}
		created, err := tx.Bulletins().GetWithLignes(ctx, b.ID)
		out = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBulletinResponse(out), nil
}

func (s *Service) GetBulletin(ctx context.Context, a tenant.Actor, id int64) (*dto.BulletinResponse, error) {
	b, err := loadBulletin(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toBulletinResponse(b), nil
}

func loadBulletin(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.BulletinPaie, error) {
	b, err := st.Bulletins().GetWithLignes(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound(msgBulletinNotFound)
	}
	if err := tenant.GuardResource(a, b.EntrepriseID); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBulletin modifie un bulletin brouillon d'une période ouverte. Des lignes fournies
// remplacent les lignes existantes et les totaux sont recalculés.
func (s *Service) UpdateBulletin(ctx context.Context, a tenant.Actor, id int64, in dto.BulletinUpdate) (*dto.BulletinResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("salaire_brut", in.SalaireBrut),
		dto.NotNull("total_gains", in.TotalGains),
		dto.NotNull("total_retenues", in.TotalRetenues),
	); err != nil {
		return nil, err
	}
	var replace []entity.LigneBulletin
	if in.Lignes != nil {
		ls, err := lignes(*in.Lignes)
		if err != nil {
			return nil, err
		}
		replace = ls
	}
	var out *entity.BulletinPaie
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		b, err := loadBulletin(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if err := lockPeriodeOuverte(ctx, tx, a, b.PeriodePaieID); err != nil {
			return err
		}
		if b.Statut != entity.BulletinBrouillon {
			return domain.BadRequest(ReasonBulletinNonModif, msgBulletinNonModif, b.Statut)
		}
		in.SalaireBrut.Apply(&b.SalaireBrut)
		in.TotalGains.Apply(&b.TotalGains)
		in.TotalRetenues.Apply(&b.TotalRetenues)
		if in.Lignes != nil {
			b.Lignes = replace
		}
		if err := totaliser(b); err != nil {
			return err
		}
		if err := tx.Bulletins().Update(ctx, b, in.Lignes != nil); err != nil {
			return err
		}
		updated, err := tx.Bulletins().GetWithLignes(ctx, b.ID)
		out = updated
		return err
	})
	if err != nil {
		return nil, err
	}
	return toBulletinResponse(out), nil
}

// ValiderBulletin brouillon → valide, tant que la période est ouverte.
func (s *Service) ValiderBulletin(ctx context.Context, a tenant.Actor, id int64) (*dto.BulletinResponse, error) {
	return s.transition(ctx, a, id, entity.BulletinBrouillon, entity.BulletinValide, nil)
}

// PayerBulletin valide → paye ; la date de paiement vaut aujourd'hui si elle est omise.
// Le paiement reste possible après la clôture de la période.
func (s *Service) PayerBulletin(ctx context.Context, a tenant.Actor, id int64, in dto.BulletinPaiement) (*dto.BulletinResponse, error) {
	return s.transition(ctx, a, id, entity.BulletinValide, entity.BulletinPaye, func(b *entity.BulletinPaie) {
		date := s.now().UTC().Truncate(24 * time.Hour)
		if in.DatePaiement != nil {
			date = in.DatePaiement.Time
		}
		b.DatePaiement = &date
	})
}

func (s *Service) transition(ctx context.Context, a tenant.Actor, id int64, depuis, vers string, effet func(*entity.BulletinPaie)) (*dto.BulletinResponse, error) {
	var out *entity.BulletinPaie
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		b, err := loadBulletin(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if vers == entity.BulletinValide {
			if err := lockPeriodeOuverte(ctx, tx, a, b.PeriodePaieID); err != nil {
				return err
			}
		}
		if b.Statut != depuis {
			return domain.BadRequest(ReasonTransitionInvalide, msgTransitionBulletin, b.Statut, depuis)
		}
		b.Statut = vers
		if effet != nil {
			effet(b)
		}
		if err := tx.Bulletins().Update(ctx, b, false); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toBulletinResponse(out), nil
}

// ListBulletins bulletins filtrés par période ou employé.
func (s *Service) ListBulletins(ctx context.Context, a tenant.Actor, q dto.BulletinQuery) (dto.ListResponse[*dto.BulletinResponse], error) {
	var out dto.ListResponse[*dto.BulletinResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	page, err := q.Resolve(MaxBulletins)
	if err != nil {
		return out, err
	}
	list, err := s.store.Bulletins().List(ctx, repository.BulletinFilter{
		EntrepriseID:  q.EntrepriseID,
		PeriodePaieID: q.PeriodePaieID,
		EmployeID:     q.EmployeID,
		Page:          page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toBulletinResponse), page), nil
}

func toBulletinResponse(b *entity.BulletinPaie) *dto.BulletinResponse {
	out := &dto.BulletinResponse{
		ID:            b.ID,
		EntrepriseID:  b.EntrepriseID,
		EmployeID:     b.EmployeID,
		PeriodePaieID: b.PeriodePaieID,
		SalaireBrut:   b.SalaireBrut,
		TotalGains:    b.TotalGains,
		TotalRetenues: b.TotalRetenues,
		NetAPayer:     b.NetAPayer,
		Statut:        b.Statut,
		DatePaiement:  dto.DatePtr(b.DatePaiement),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	for _, l := range b.Lignes {
		out.Lignes = append(out.Lignes, dto.LigneBulletinResponse{
			ID:      l.ID,
			Libelle: l.Libelle,
			Type:    l.Type,
			Montant: l.Montant,
			Ordre:   l.Ordre,
		})
	}
	return out
}
