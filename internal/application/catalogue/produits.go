package catalogue

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

func checkType(t string) error {
	if t != TypeProduit && t != TypeService {
		return domain.BadRequest(ReasonTypeProduitInvalide, msgTypeInvalide, t)
	}
	return nil
}

func checkSeuils(p *entity.Produit) error {
	if p.SeuilAlerteMin != nil && p.SeuilAlerteMax != nil && p.SeuilAlerteMin.GreaterThan(*p.SeuilAlerteMax) {
		return domain.BadRequest(ReasonSeuilsIncoherents, msgSeuils)
	}
	return nil
}

// checkRefs vérifie famille (même entreprise), unité de vente et taux de TVA.
func checkRefs(ctx context.Context, refs repository.ReferenceRepository, a tenant.Actor, p *entity.Produit) error {
	if err := tenant.GuardOptional(ctx, refs, a, repository.KindFamille, p.FamilleID); err != nil {
		return err
	}
	if err := tenant.GuardOptional(ctx, refs, a, repository.KindUnite, p.UniteVenteID); err != nil {
		return err
	}
	return tenant.GuardOptional(ctx, refs, a, repository.KindTauxTva, p.TauxTvaID)
}

// CreateProduit crée un produit ; le code est unique par entreprise parmi les produits non supprimés.
func (s *Service) CreateProduit(ctx context.Context, a tenant.Actor, in dto.ProduitCreate) (*dto.ProduitResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	typ := in.Type
	if typ == "" {
		typ = TypeProduit
	}
	if err := checkType(typ); err != nil {
		return nil, err
	}
	unite := in.UniteVenteID
	p := &entity.Produit{
		EntrepriseID:   in.EntrepriseID,
		FamilleID:      in.FamilleID,
		Code:           strings.TrimSpace(in.Code),
		CodeBarre:      in.CodeBarre,
		Libelle:        strings.TrimSpace(in.Libelle),
		Type:           typ,
		UniteVenteID:   &unite,
		PrixVenteTTC:   in.PrixVenteTTC,
		TauxTvaID:      in.TauxTvaID,
		SeuilAlerteMin: in.SeuilAlerteMin,
		SeuilAlerteMax: in.SeuilAlerteMax,
		GererStock:     in.GererStock == nil || *in.GererStock,
		Actif:          in.Actif == nil || *in.Actif,
		CreatedByID:    a.CreatedBy(),
	}
	if err := checkSeuils(p); err != nil {
		return nil, err
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := checkRefs(ctx, refs, a, p); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Produits().Create(ctx, p), msgProduitCodeExists, p.Code)
	})
	if err != nil {
		return nil, err
	}
	return toProduitResponse(p), nil
}

// GetProduit produit non supprimé de l'entreprise de l'appelant.
func (s *Service) GetProduit(ctx context.Context, a tenant.Actor, id int64) (*dto.ProduitResponse, error) {
	p, err := loadProduit(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toProduitResponse(p), nil
}

func loadProduit(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.Produit, error) {
	p, err := st.Produits().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound(msgProduitNotFound)
	}
	if err := tenant.GuardResource(a, p.EntrepriseID); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduit applique une mise à jour partielle.
func (s *Service) UpdateProduit(ctx context.Context, a tenant.Actor, id int64, in dto.ProduitUpdate) (*dto.ProduitResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("code", in.Code),
		dto.NotNull("libelle", in.Libelle),
		dto.NotNull("type", in.Type),
		dto.NotNull("unite_vente_id", in.UniteVenteID),
		dto.NotNull("prix_vente_ttc", in.PrixVenteTTC),
		dto.NotNull("gerer_stock", in.GererStock),
		dto.NotNull("actif", in.Actif),
	); err != nil {
		return nil, err
	}
	if in.Type.HasValue() {
		if err := checkType(in.Type.Value); err != nil {
			return nil, err
		}
	}
	var out *entity.Produit
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		p, err := loadProduit(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if in.Code.HasValue() {
			p.Code = strings.TrimSpace(in.Code.Value)
		}
		if in.Libelle.HasValue() {
			p.Libelle = strings.TrimSpace(in.Libelle.Value)
		}
		dto.ApplyNullable(in.FamilleID, &p.FamilleID)
		dto.ApplyNullable(in.CodeBarre, &p.CodeBarre)
		dto.ApplyNullable(in.UniteVenteID, &p.UniteVenteID)
		dto.ApplyNullable(in.TauxTvaID, &p.TauxTvaID)
		dto.ApplyNullable(in.SeuilAlerteMin, &p.SeuilAlerteMin)
		dto.ApplyNullable(in.SeuilAlerteMax, &p.SeuilAlerteMax)
		in.Type.Apply(&p.Type)
		in.PrixVenteTTC.Apply(&p.PrixVenteTTC)
		in.GererStock.Apply(&p.GererStock)
		in.Actif.Apply(&p.Actif)
		if err := checkSeuils(p); err != nil {
			return err
		}
		if err := checkRefs(ctx, tx.References(), a, p); err != nil {
			return err
		}
		if err := tx.Produits().Update(ctx, p); err != nil {
			return domain.ConflictOnDuplicate(err, msgProduitCodeExists, p.Code)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProduitResponse(out), nil
}

// DeleteProduit suppression logique : le produit disparaît des lectures et son code se libère.
func (s *Service) DeleteProduit(ctx context.Context, a tenant.Actor, id int64) error {
	return s.tx.Run(ctx, func(tx repository.Store) error {
		if _, err := loadProduit(ctx, tx, a, id); err != nil {
			return err
		}
		return tx.Produits().SoftDelete(ctx, id, s.now())
	})
}

// ListProduits produits de l'entreprise triés par code ; search porte sur code, libelle et code_barre.
func (s *Service) ListProduits(ctx context.Context, a tenant.Actor, q dto.ProduitQuery) (dto.ListResponse[*dto.ProduitResponse], error) {
	var out dto.ListResponse[*dto.ProduitResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	page, err := q.Resolve(MaxProduits)
	if err != nil {
		return out, err
	}
	list, err := s.store.Produits().List(ctx, repository.ProduitFilter{
		EntrepriseID: q.EntrepriseID,
		FamilleID:    q.FamilleID,
		ActifOnly:    q.ActifOnly,
		Search:       strings.TrimSpace(q.Search),
		Page:         page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toProduitResponse), page), nil
}

func toProduitResponse(p *entity.Produit) *dto.ProduitResponse {
	return &dto.ProduitResponse{
		ID:             p.ID,
		EntrepriseID:   p.EntrepriseID,
		FamilleID:      p.FamilleID,
		Code:           p.Code,
		CodeBarre:      p.CodeBarre,
		Libelle:        p.Libelle,
		Type:           p.Type,
		UniteVenteID:   p.UniteVenteID,
		PrixVenteTTC:   p.PrixVenteTTC,
		TauxTvaID:      p.TauxTvaID,
		SeuilAlerteMin: p.SeuilAlerteMin,
		SeuilAlerteMax: p.SeuilAlerteMax,
		GererStock:     p.GererStock,
		Actif:          p.Actif,
		CreatedByID:    p.CreatedByID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
