package achats

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

// CreateDepot crée un dépôt ; (entreprise, code) est unique.
func (s *Service) CreateDepot(ctx context.Context, a tenant.Actor, in dto.DepotCreate) (*dto.DepotResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	d := &entity.Depot{
		EntrepriseID:   in.EntrepriseID,
		PointDeVenteID: in.PointDeVenteID,
		Code:           strings.TrimSpace(in.Code),
		Libelle:        strings.TrimSpace(in.Libelle),
		Adresse:        in.Adresse,
		Ville:          in.Ville,
		CodePostal:     in.CodePostal,
		Pays:           in.Pays,
		Actif:          in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := tenant.GuardOptional(ctx, refs, a, repository.KindPointDeVente, d.PointDeVenteID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Depots().Create(ctx, d), msgDepotCodeExists, d.Code)
	})
	if err != nil {
		return nil, err
	}
	return toDepotResponse(d), nil
}

// GetDepot dépôt de l'entreprise de l'appelant.
func (s *Service) GetDepot(ctx context.Context, a tenant.Actor, id int64) (*dto.DepotResponse, error) {
	d, err := loadDepot(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toDepotResponse(d), nil
}

func loadDepot(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.Depot, error) {
	d, err := st.Depots().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.NotFound(msgDepotNotFound)
	}
	if err := tenant.GuardResource(a, d.EntrepriseID); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDepot applique une mise à jour partielle.
func (s *Service) UpdateDepot(ctx context.Context, a tenant.Actor, id int64, in dto.DepotUpdate) (*dto.DepotResponse, error) {
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
	var out *entity.Depot
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		d, err := loadDepot(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if in.Code.HasValue() {
			d.Code = strings.TrimSpace(in.Code.Value)
		}
		if in.Libelle.HasValue() {
			d.Libelle = strings.TrimSpace(in.Libelle.Value)
		}
		dto.ApplyNullable(in.PointDeVenteID, &d.PointDeVenteID)
		dto.ApplyNullable(in.Adresse, &d.Adresse)
		dto.ApplyNullable(in.Ville, &d.Ville)
		dto.ApplyNullable(in.CodePostal, &d.CodePostal)
		dto.ApplyNullable(in.Pays, &d.Pays)
		in.Actif.Apply(&d.Actif)
		if in.PointDeVenteID.HasValue() {
			if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindPointDeVente, in.PointDeVenteID.Value); err != nil {
				return err
			}
		}
		if err := tx.Depots().Update(ctx, d); err != nil {
			return domain.ConflictOnDuplicate(err, msgDepotCodeExists, d.Code)
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDepotResponse(out), nil
}

// ListDepots dépôts de l'entreprise triés par code.
func (s *Service) ListDepots(ctx context.Context, a tenant.Actor, entrepriseID int64, pr dto.PageRequest) (dto.ListResponse[*dto.DepotResponse], error) {
	var out dto.ListResponse[*dto.DepotResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxDepots)
	if err != nil {
		return out, err
	}
	list, err := s.store.Depots().List(ctx, entrepriseID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toDepotResponse), page), nil
}

func toDepotResponse(d *entity.Depot) *dto.DepotResponse {
	return &dto.DepotResponse{
		ID:             d.ID,
		EntrepriseID:   d.EntrepriseID,
		PointDeVenteID: d.PointDeVenteID,
		Code:           d.Code,
		Libelle:        d.Libelle,
		Adresse:        d.Adresse,
		Ville:          d.Ville,
		CodePostal:     d.CodePostal,
		Pays:           d.Pays,
		Actif:          d.Actif,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
