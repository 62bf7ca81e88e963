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

// CreateFamille crée une famille ; son niveau vaut celui du parent + 1.
func (s *Service) CreateFamille(ctx context.Context, a tenant.Actor, in dto.FamilleCreate) (*dto.FamilleResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	f := &entity.FamilleProduit{
		EntrepriseID: in.EntrepriseID,
		ParentID:     in.ParentID,
		Code:         strings.TrimSpace(in.Code),
		Libelle:      strings.TrimSpace(in.Libelle),
		Niveau:       NiveauRacine,
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if f.ParentID != nil {
			parent, err := loadFamille(ctx, tx, a, *f.ParentID)
			if err != nil {
				return err
			}
			f.Niveau = parent.Niveau + 1
		}
		return domain.ConflictOnDuplicate(tx.Familles().Create(ctx, f), msgFamilleCodeExists, f.Code)
	})
	if err != nil {
		return nil, err
	}
	return toFamilleResponse(f), nil
}

// GetFamille famille non supprimée de l'entreprise de l'appelant.
func (s *Service) GetFamille(ctx context.Context, a tenant.Actor, id int64) (*dto.FamilleResponse, error) {
	f, err := loadFamille(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toFamilleResponse(f), nil
}

func loadFamille(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.FamilleProduit, error) {
	f, err := st.Familles().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.NotFound(msgFamilleNotFound)
	}
	if err := tenant.GuardResource(a, f.EntrepriseID); err != nil {
		return nil, err
	}
	return f, nil
}

// UpdateFamille mise à jour partielle. Un changement de parent refuse les cycles et
// recalcule le niveau de la famille et de toute sa descendance.
func (s *Service) UpdateFamille(ctx context.Context, a tenant.Actor, id int64, in dto.FamilleUpdate) (*dto.FamilleResponse, error) {
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
	var out *entity.FamilleProduit
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		f, err := loadFamille(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if in.Code.HasValue() {
			f.Code = strings.TrimSpace(in.Code.Value)
		}
		if in.Libelle.HasValue() {
			f.Libelle = strings.TrimSpace(in.Libelle.Value)
		}
		in.Actif.Apply(&f.Actif)

		reparent := in.ParentID.Set
		if reparent {
			dto.ApplyNullable(in.ParentID, &f.ParentID)
			f.Niveau = NiveauRacine
			if f.ParentID != nil {
				parent, err := s.checkParent(ctx, tx, a, f.ID, *f.ParentID)
				if err != nil {
					return err
				}
				f.Niveau = parent.Niveau + 1
			}
		}
		if err := tx.Familles().Update(ctx, f); err != nil {
			return domain.ConflictOnDuplicate(err, msgFamilleCodeExists, f.Code)
		}
		if reparent {
			if err := s.renumeroter(ctx, tx, f); err != nil {
				return err
			}
		}
		out = f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toFamilleResponse(out), nil
}

// checkParent charge le parent et remonte sa chaîne d'ascendants : rencontrer id serait un cycle.
func (s *Service) checkParent(ctx context.Context, tx repository.Store, a tenant.Actor, id, parentID int64) (*entity.FamilleProduit, error) {
	parent, err := loadFamille(ctx, tx, a, parentID)
	if err != nil {
		return nil, err
	}
	seen := map[int64]bool{}
	for cur := parent; cur != nil; {
		if cur.ID == id {
			return nil, domain.BadRequest(ReasonFamilleCycle, msgFamilleCycle)
		}
		if cur.ParentID == nil || seen[cur.ID] {
			break
		}
		seen[cur.ID] = true
		if cur, err = tx.Familles().GetByID(ctx, *cur.ParentID); err != nil {
			return nil, err
		}
	}
	return parent, nil
}

// renumeroter propage le niveau de root à ses descendants.
func (s *Service) renumeroter(ctx context.Context, tx repository.Store, root *entity.FamilleProduit) error {
	all, err := tx.Familles().List(ctx, root.EntrepriseID, nil, repository.Page{})
	if err != nil {
		return err
	}
	enfants := make(map[int64][]*entity.FamilleProduit)
	for _, f := range all {
		if f.ParentID != nil {
			enfants[*f.ParentID] = append(enfants[*f.ParentID], f)
		}
	}
	file := []*entity.FamilleProduit{root}
	for len(file) > 0 {
		cur := file[0]
		file = file[1:]
		for _, c := range enfants[cur.ID] {
			if c.Niveau != cur.Niveau+1 {
				c.Niveau = cur.Niveau + 1
				if err := tx.Familles().Update(ctx, c); err != nil {
					return err
				}
			}
			file = append(file, c)
		}
	}
	return nil
}

// DeleteFamille suppression logique ; refusée tant que la famille a des sous-familles.
func (s *Service) DeleteFamille(ctx context.Context, a tenant.Actor, id int64) error {
	return s.tx.Run(ctx, func(tx repository.Store) error {
		f, err := loadFamille(ctx, tx, a, id)
		if err != nil {
			return err
		}
		enfants, err := tx.Familles().List(ctx, f.EntrepriseID, &f.ID, repository.Page{Limit: 1})
		if err != nil {
			return err
		}
		if len(enfants) > 0 {
			return domain.BadRequest(ReasonFamilleEnfants, msgFamilleEnfants)
		}
		return tx.Familles().SoftDelete(ctx, id, s.now())
	})
}

// ListFamilles familles triées par niveau puis code ; parentID restreint aux enfants directs.
func (s *Service) ListFamilles(ctx context.Context, a tenant.Actor, entrepriseID int64, parentID *int64, pr dto.PageRequest) (dto.ListResponse[*dto.FamilleResponse], error) {
	var out dto.ListResponse[*dto.FamilleResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxFamilles)
	if err != nil {
		return out, err
	}
	list, err := s.store.Familles().List(ctx, entrepriseID, parentID, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toFamilleResponse), page), nil
}

func toFamilleResponse(f *entity.FamilleProduit) *dto.FamilleResponse {
	return &dto.FamilleResponse{
		ID:           f.ID,
		EntrepriseID: f.EntrepriseID,
		ParentID:     f.ParentID,
		Code:         f.Code,
		Libelle:      f.Libelle,
		Niveau:       f.Niveau,
		Actif:        f.Actif,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}
