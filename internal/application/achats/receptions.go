package achats

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

// CreateReception enregistre une réception brouillon et ses lignes. Aucun stock ne bouge
// avant la validation.
func (s *Service) CreateReception(ctx context.Context, a tenant.Actor, in dto.ReceptionCreate) (*dto.ReceptionResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	r := &entity.Reception{
		EntrepriseID:          in.EntrepriseID,
		FournisseurID:         in.FournisseurID,
		CommandeFournisseurID: in.CommandeFournisseurID,
		DepotID:               in.DepotID,
		Numero:                strings.TrimSpace(in.Numero),
		NumeroBLFournisseur:   in.NumeroBLFournisseur,
		DateReception:         in.DateReception.Time,
		Etat:                  entity.ReceptionBrouillon,
		Notes:                 in.Notes,
		CreatedByID:           a.CreatedBy(),
	}
	if r.Numero == "" {
		return nil, domain.BadRequest(ReasonNumeroVide, msgNumeroVide)
	}
	for i, l := range in.Lignes {
		r.Lignes = append(r.Lignes, entity.LigneReception{
			ProduitID:  l.ProduitID,
			VarianteID: l.VarianteID,
			Quantite:   l.Quantite,
			Ordre:      i + 1,
		})
	}
	var out *entity.Reception
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindDepot, r.DepotID); err != nil {
			return err
		}
		if err := checkFournisseur(ctx, tx, a, r); err != nil {
			return err
		}
		for _, l := range r.Lignes {
			if err := tenant.GuardReferenced(ctx, refs, a, repository.KindProduit, l.ProduitID); err != nil {
				return err
			}
			if err := tenant.GuardOptional(ctx, refs, a, repository.KindVariante, l.VarianteID); err != nil {
				return err
			}
			// même contrôle qu'à la validation : une réception enregistrée doit pouvoir être validée
			if _, err := s.stock.ControlerArticle(ctx, tx, a, l.ProduitID, l.VarianteID); err != nil {
				return err
			}
		}
		if err := tx.Receptions().Create(ctx, r); err != nil {
			return domain.ConflictOnDuplicate(err, msgReceptionExists, r.Numero)
		}
		created, err := tx.Receptions().GetWithLignes(ctx, r.ID)
		out = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return toReceptionResponse(out, true), nil
}

// checkFournisseur le tiers est un fournisseur ; la commande éventuelle est une commande
// fournisseur du même tiers.
func checkFournisseur(ctx context.Context, tx repository.Store, a tenant.Actor, r *entity.Reception) error {
	if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindTiers, r.FournisseurID); err != nil {
		return err
	}
	t, err := tx.Tiers().GetByID(ctx, r.FournisseurID)
	if err != nil {
		return err
	}
	if !t.EstFournisseur() {
		return domain.BadRequest(ReasonTiersIncompatible, msgTiersNonFourn, t.Code)
	}
	if r.CommandeFournisseurID == nil {
		return nil
	}
	c, err := tx.Documents().GetByID(ctx, *r.CommandeFournisseurID)
	if err != nil {
		return err
	}
	if c == nil || c.TypeDocument != entity.FamilleCommandeFournisseur {
		return domain.NotFound(msgCommandeNotFound)
	}
	if err := tenant.GuardResource(a, c.EntrepriseID); err != nil {
		return err
	}
	if c.TiersID != r.FournisseurID {
		return domain.BadRequest(ReasonCommandeFournisseur, msgCommandeTiers)
	}
	return nil
}

// GetReception réception et ses lignes.
func (s *Service) GetReception(ctx context.Context, a tenant.Actor, id int64) (*dto.ReceptionResponse, error) {
	r, err := loadReception(ctx, s.store.Receptions().GetWithLignes, a, id)
	if err != nil {
		return nil, err
	}
	return toReceptionResponse(r, true), nil
}

func loadReception(ctx context.Context, get func(context.Context, int64) (*entity.Reception, error), a tenant.Actor, id int64) (*entity.Reception, error) {
	r, err := get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgReceptionNotFound)
	}
	if err := tenant.GuardResource(a, r.EntrepriseID); err != nil {
		return nil, err
	}
	return r, nil
}

// UpdateReception modifie l'en-tête d'une réception brouillon.
func (s *Service) UpdateReception(ctx context.Context, a tenant.Actor, id int64, in dto.ReceptionUpdate) (*dto.ReceptionResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("numero", in.Numero),
		dto.NotNull("date_reception", in.DateReception),
	); err != nil {
		return nil, err
	}
	var out *entity.Reception
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		r, err := loadReception(ctx, tx.Receptions().GetForUpdate, a, id)
		if err != nil {
			return err
		}
		if r.Etat != entity.ReceptionBrouillon {
			return domain.BadRequest(ReasonReceptionNonModif, msgNonModifiable, r.Etat)
		}
		if in.Numero.HasValue() {
			r.Numero = strings.TrimSpace(in.Numero.Value)
			if r.Numero == "" {
				return domain.BadRequest(ReasonNumeroVide, msgNumeroVide)
			}
		}
		if in.DateReception.HasValue() {
			r.DateReception = in.DateReception.Value.Time
		}
		dto.ApplyNullable(in.NumeroBLFournisseur, &r.NumeroBLFournisseur)
		dto.ApplyNullable(in.Notes, &r.Notes)
		if err := tx.Receptions().Update(ctx, r); err != nil {
			return domain.ConflictOnDuplicate(err, msgReceptionExists, r.Numero)
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReceptionResponse(out, true), nil
}

// ValiderReception brouillon → validee : une entrée de stock par ligne, référencée sur la
// réception, dans la même transaction. Un refus du moteur de stock annule tout.
func (s *Service) ValiderReception(ctx context.Context, a tenant.Actor, id int64) (*dto.ReceptionResponse, error) {
	return s.transition(ctx, a, id, entity.ReceptionValidee, func(tx repository.Store, r *entity.Reception) error {
		for _, l := range r.Lignes {
			_, err := s.stock.Appliquer(ctx, tx, a, dto.MouvementCreate{
				EntrepriseID:  r.EntrepriseID,
				TypeMouvement: entity.MouvementEntree,
				DepotID:       r.DepotID,
				ProduitID:     l.ProduitID,
				VarianteID:    l.VarianteID,
				Quantite:      l.Quantite,
				ReferenceType: entity.RefReception,
				ReferenceID:   &r.ID,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// AnnulerReception brouillon → annulee.
func (s *Service) AnnulerReception(ctx context.Context, a tenant.Actor, id int64) (*dto.ReceptionResponse, error) {
	return s.transition(ctx, a, id, entity.ReceptionAnnulee, nil)
}

// transition seules les réceptions brouillon changent d'état ; validee et annulee sont finales.
func (s *Service) transition(ctx context.Context, a tenant.Actor, id int64, cible string, effet func(repository.Store, *entity.Reception) error) (*dto.ReceptionResponse, error) {
	var out *entity.Reception
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		r, err := loadReception(ctx, tx.Receptions().GetForUpdate, a, id)
		if err != nil {
			return err
		}
		if r.Etat != entity.ReceptionBrouillon {
			return domain.BadRequest(ReasonTransitionInvalide, msgTransition, r.Etat)
		}
		if effet != nil {
			if err := effet(tx, r); err != nil {
				return err
			}
		}
		r.Etat = cible
		if err := tx.Receptions().Update(ctx, r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toReceptionResponse(out, true), nil
}

// ListReceptions réceptions triées par date desc, id desc.
func (s *Service) ListReceptions(ctx context.Context, a tenant.Actor, q dto.ReceptionQuery) (dto.ListResponse[*dto.ReceptionResponse], error) {
	var out dto.ListResponse[*dto.ReceptionResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	if q.Etat != "" && !slices.Contains(entity.EtatsReception, q.Etat) {
		return out, domain.BadRequest(ReasonEtatReceptionInvalide, msgEtatInvalide, q.Etat)
	}
	page, err := q.Resolve(MaxReceptions)
	if err != nil {
		return out, err
	}
	list, err := s.store.Receptions().List(ctx, repository.ReceptionFilter{
		EntrepriseID:  q.EntrepriseID,
		FournisseurID: q.FournisseurID,
		DepotID:       q.DepotID,
		Etat:          q.Etat,
		Page:          page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, func(r *entity.Reception) *dto.ReceptionResponse {
		return toReceptionResponse(r, false)
	}), page), nil
}

func toReceptionResponse(r *entity.Reception, detail bool) *dto.ReceptionResponse {
	out := &dto.ReceptionResponse{
		ID:                    r.ID,
		EntrepriseID:          r.EntrepriseID,
		FournisseurID:         r.FournisseurID,
		CommandeFournisseurID: r.CommandeFournisseurID,
		DepotID:               r.DepotID,
		Numero:                r.Numero,
		NumeroBLFournisseur:   r.NumeroBLFournisseur,
		DateReception:         dto.NewDate(r.DateReception),
		Etat:                  r.Etat,
		Notes:                 r.Notes,
		CreatedByID:           r.CreatedByID,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
	if detail {
		out.Lignes = make([]dto.LigneReceptionResponse, 0, len(r.Lignes))
		for _, l := range r.Lignes {
			out.Lignes = append(out.Lignes, dto.LigneReceptionResponse{
				ID:         l.ID,
				ProduitID:  l.ProduitID,
				VarianteID: l.VarianteID,
				Quantite:   l.Quantite,
				Ordre:      l.Ordre,
			})
		}
	}
	return out
}
