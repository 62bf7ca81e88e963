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

func checkSens(sens string) error {
	if sens != entity.SensDebit && sens != entity.SensCredit {
		return domain.BadRequest(ReasonSensInvalide, msgSensInvalide, sens)
	}
	return nil
}

// CreateCompte crée un compte ; (entreprise, numero) est unique.
func (s *Service) CreateCompte(ctx context.Context, a tenant.Actor, in dto.CompteCreate) (*dto.CompteResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := checkSens(in.SensNormal); err != nil {
		return nil, err
	}
	c := &entity.CompteComptable{
		EntrepriseID: in.EntrepriseID,
		Numero:       strings.TrimSpace(in.Numero),
		Libelle:      strings.TrimSpace(in.Libelle),
		SensNormal:   in.SensNormal,
		Actif:        in.Actif == nil || *in.Actif,
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Comptes().Create(ctx, c), msgCompteNumeroExists, c.Numero)
	})
	if err != nil {
		return nil, err
	}
	return toCompteResponse(c), nil
}

// GetCompte renvoie un compte de l'entreprise de l'appelant.
func (s *Service) GetCompte(ctx context.Context, a tenant.Actor, id int64) (*dto.CompteResponse, error) {
	c, err := s.loadCompte(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	return toCompteResponse(c), nil
}

func (s *Service) loadCompte(ctx context.Context, st repository.Store, a tenant.Actor, id int64) (*entity.CompteComptable, error) {
	c, err := st.Comptes().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound(msgCompteNotFound)
	}
	if err := tenant.GuardResource(a, c.EntrepriseID); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCompte applique une mise à jour partielle.
func (s *Service) UpdateCompte(ctx context.Context, a tenant.Actor, id int64, in dto.CompteUpdate) (*dto.CompteResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("numero", in.Numero),
		dto.NotNull("libelle", in.Libelle),
		dto.NotNull("sens_normal", in.SensNormal),
		dto.NotNull("actif", in.Actif),
	); err != nil {
		return nil, err
	}
	if in.SensNormal.HasValue() {
		if err := checkSens(in.SensNormal.Value); err != nil {
			return nil, err
		}
	}
	var out *entity.CompteComptable
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		c, err := s.loadCompte(ctx, tx, a, id)
		if err != nil {
			return err
		}
		if in.Numero.HasValue() {
			c.Numero = strings.TrimSpace(in.Numero.Value)
		}
		if in.Libelle.HasValue() {
			c.Libelle = strings.TrimSpace(in.Libelle.Value)
		}
		in.SensNormal.Apply(&c.SensNormal)
		in.Actif.Apply(&c.Actif)
		if err := tx.Comptes().Update(ctx, c); err != nil {
			return domain.ConflictOnDuplicate(err, msgCompteNumeroExists, c.Numero)
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCompteResponse(out), nil
}

// ListComptes plan comptable de l'entreprise, trié par numéro.
func (s *Service) ListComptes(ctx context.Context, a tenant.Actor, entrepriseID int64, actifOnly bool, pr dto.PageRequest) (dto.ListResponse[*dto.CompteResponse], error) {
	var out dto.ListResponse[*dto.CompteResponse]
	if err := tenant.GuardPayload(a, entrepriseID); err != nil {
		return out, err
	}
	page, err := pr.Resolve(MaxComptes)
	if err != nil {
		return out, err
	}
	list, err := s.store.Comptes().List(ctx, entrepriseID, actifOnly, page)
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, toCompteResponse), page), nil
}

// SoldeCompte cumul débit/crédit ; le solde est exprimé dans le sens normal du compte.
func (s *Service) SoldeCompte(ctx context.Context, a tenant.Actor, id int64) (*dto.SoldeResponse, error) {
	c, err := s.loadCompte(ctx, s.store, a, id)
	if err != nil {
		return nil, err
	}
	sc, err := s.store.Comptes().Solde(ctx, id)
	if err != nil {
		return nil, err
	}
	solde := sc.TotalDebit.Sub(sc.TotalCredit)
	if c.SensNormal == entity.SensCredit {
		solde = solde.Neg()
	}
	return &dto.SoldeResponse{
		CompteID:    c.ID,
		Numero:      c.Numero,
		SensNormal:  c.SensNormal,
		TotalDebit:  sc.TotalDebit,
		TotalCredit: sc.TotalCredit,
		Solde:       solde,
	}, nil
}

func toCompteResponse(c *entity.CompteComptable) *dto.CompteResponse {
	return &dto.CompteResponse{
		ID:           c.ID,
		EntrepriseID: c.EntrepriseID,
		Numero:       c.Numero,
		Libelle:      c.Libelle,
		SensNormal:   c.SensNormal,
		Actif:        c.Actif,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
