package tresorerie

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var typesReglement = []string{entity.ReglementClient, entity.ReglementFournisseur}

// CreateReglement enregistre le paiement d'une facture. La facture est verrouillée le temps
// de l'imputation ; un montant supérieur au restant dû est refusé.
func (s *Service) CreateReglement(ctx context.Context, a tenant.Actor, in dto.ReglementCreate) (*dto.ReglementResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	famille, docID, err := cible(in)
	if err != nil {
		return nil, err
	}
	r := &entity.Reglement{
		EntrepriseID:         in.EntrepriseID,
		TypeReglement:        in.TypeReglement,
		FactureID:            in.FactureID,
		FactureFournisseurID: in.FactureFournisseurID,
		TiersID:              in.TiersID,
		Montant:              in.Montant,
		DateReglement:        in.DateReglement.Time,
		DateValeur:           in.DateValeur.TimePtr(),
		ModePaiementID:       in.ModePaiementID,
		CompteTresorerieID:   in.CompteTresorerieID,
		Reference:            in.Reference,
		Notes:                in.Notes,
		CreatedByID:          a.CreatedBy(),
	}
	err = s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		for _, ref := range []struct {
			kind repository.Kind
			id   int64
		}{
			{repository.KindEntreprise, in.EntrepriseID},
			{repository.KindTiers, in.TiersID},
			{repository.KindModePaiement, in.ModePaiementID},
			{repository.KindCompteTresorerie, in.CompteTresorerieID},
		} {
			if err := tenant.GuardReferenced(ctx, refs, a, ref.kind, ref.id); err != nil {
				return err
			}
		}
		f, err := tx.Documents().GetByIDForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if f == nil || f.TypeDocument != famille {
			if famille == entity.FamilleFacture {
				return domain.NotFound(msgFactureNotFound)
			}
			return domain.NotFound(msgFactureFournNF)
		}
		if err := tenant.GuardResource(a, f.EntrepriseID); err != nil {
			return err
		}
		if f.TiersID != r.TiersID {
			return domain.BadRequest(ReasonTiersIncoherent, msgTiersFacture)
		}
		if !payable(f) {
			return domain.BadRequest(ReasonFactureNonPayable, msgFactureNonPayable, *f.TypeFacture)
		}
		if s.imputation {
			if err := imputer(f, r.Montant); err != nil {
				return err
			}
			if err := tx.Documents().Update(ctx, f); err != nil {
				return err
			}
		}
		return tx.Reglements().Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return toReglementResponse(r), nil
}

// cible famille et identifiant de la facture visée, selon le type de règlement.
func cible(in dto.ReglementCreate) (string, int64, error) {
	if !slices.Contains(typesReglement, in.TypeReglement) {
		return "", 0, domain.BadRequest(ReasonTypeReglementInvalide, msgTypeReglement, in.TypeReglement)
	}
	if in.TypeReglement == entity.ReglementClient {
		if in.FactureID == nil || in.FactureFournisseurID != nil {
			return "", 0, domain.BadRequest(ReasonFactureIncoherente, msgFactureClient)
		}
		return entity.FamilleFacture, *in.FactureID, nil
	}
	if in.FactureFournisseurID == nil || in.FactureID != nil {
		return "", 0, domain.BadRequest(ReasonFactureIncoherente, msgFactureFournisseur)
	}
	return entity.FamilleFactureFournisseur, *in.FactureFournisseurID, nil
}

// payable seules les factures proprement dites appellent un règlement ; avoirs, proformas
// et duplicatas n'ont pas de restant dû propre.
func payable(f *entity.Document) bool {
	return f.TypeFacture == nil || *f.TypeFacture == entity.TypeFactureFacture
}

// imputer diminue le restant dû et met à jour le statut de paiement.
func imputer(f *entity.Document, montant decimal.Decimal) error {
	restant := f.MontantTTC
	if f.MontantRestantDu != nil {
		restant = *f.MontantRestantDu
	}
	if montant.GreaterThan(restant) {
		return domain.BadRequest(ReasonSuperieurRestantDu, msgSuperieurRestant, montant.StringFixed(2), restant.StringFixed(2))
	}
	restant = restant.Sub(montant)
	statut := entity.StatutPour(restant, f.MontantTTC)
	f.MontantRestantDu = &restant
	f.StatutPaiement = &statut
	return nil
}

// GetReglement règlement de l'entreprise de l'appelant.
func (s *Service) GetReglement(ctx context.Context, a tenant.Actor, id int64) (*dto.ReglementResponse, error) {
	r, err := s.store.Reglements().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound(msgReglementNotFound)
	}
	if err := tenant.GuardResource(a, r.EntrepriseID); err != nil {
		return nil, err
	}
	return toReglementResponse(r), nil
}

// ListReglements règlements triés par date desc, id desc.
func (s *Service) ListReglements(ctx context.Context, a tenant.Actor, q dto.ReglementQuery) (dto.ListResponse[*dto.ReglementResponse], error) {
	var out dto.ListResponse[*dto.ReglementResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	if q.TypeReglement != "" && !slices.Contains(typesReglement, q.TypeReglement) {
		return out, domain.BadRequest(ReasonTypeReglementInvalide, msgTypeReglement, q.TypeReglement)
	}
	page, err := q.Resolve(MaxReglements)
	if err != nil {
		return out, err
	}
	list, err := s.store.Reglements().List(ctx, repository.ReglementFilter{
		EntrepriseID:  q.EntrepriseID,
		TypeReglement: q.TypeReglement,
		TiersID:       q.TiersID,
		DateFrom:      q.DateFrom,
		DateTo:        q.DateTo,
		Page:          page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toReglementResponse), page), nil
}

func toReglementResponse(r *entity.Reglement) *dto.ReglementResponse {
	return &dto.ReglementResponse{
		ID:                   r.ID,
		EntrepriseID:         r.EntrepriseID,
		TypeReglement:        r.TypeReglement,
		FactureID:            r.FactureID,
		FactureFournisseurID: r.FactureFournisseurID,
		TiersID:              r.TiersID,
		Montant:              r.Montant,
		DateReglement:        dto.NewDate(r.DateReglement),
		DateValeur:           dto.DatePtr(r.DateValeur),
		ModePaiementID:       r.ModePaiementID,
		CompteTresorerieID:   r.CompteTresorerieID,
		Reference:            r.Reference,
		Notes:                r.Notes,
		CreatedByID:          r.CreatedByID,
		CreatedAt:            r.CreatedAt,
	}
}
