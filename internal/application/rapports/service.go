// Package rapports calcule les indicateurs du tableau de bord à partir des factures,
// des commandes clients et des salariés. Lecture seule.
package rapports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Service cas d'usage des rapports.
type Service struct {
	store repository.Store
}

// NewService construit le service.
func NewService(store repository.Store) *Service {
	return &Service{store: store}
}

// ChiffreAffaires somme TTC des factures de vente de la période, avoirs déduits.
// Proformas et duplicatas ne comptent pas.
func (s *Service) ChiffreAffaires(ctx context.Context, a tenant.Actor, q dto.RapportQuery) (*dto.ChiffreAffairesResponse, error) {
	if q.DateDebut == nil || q.DateFin == nil {
		return nil, domain.BadRequest(ReasonDatesRequises, msgDatesRequises)
	}
	if err := s.controler(ctx, a, q); err != nil {
		return nil, err
	}
	factures, avoirs, err := s.ventes(ctx, q)
	if err != nil {
		return nil, err
	}
	return &dto.ChiffreAffairesResponse{
		EntrepriseID:    q.EntrepriseID,
		DateDebut:       dto.NewDate(*q.DateDebut),
		DateFin:         dto.NewDate(*q.DateFin),
		MontantTotalTTC: factures.MontantTTC,
		NombreFactures:  factures.Nombre,
		MontantAvoirs:   avoirs.MontantTTC,
		NombreAvoirs:    avoirs.Nombre,
		MontantNetTTC:   net(factures.MontantTTC, avoirs.MontantTTC),
	}, nil
}

// Dashboard synthèse ; sans borne, toute l'activité de l'entreprise est prise en compte.
func (s *Service) Dashboard(ctx context.Context, a tenant.Actor, q dto.RapportQuery) (*dto.DashboardResponse, error) {
	if err := s.controler(ctx, a, q); err != nil {
		return nil, err
	}
	factures, avoirs, err := s.ventes(ctx, q)
	if err != nil {
		return nil, err
	}
	rapports := s.store.Rapports()
	commandes, err := rapports.TotalDocuments(ctx, repository.TotalFilter{
		EntrepriseID: q.EntrepriseID,
		TypeDocument: entity.FamilleCommande,
		DateFrom:     q.DateDebut,
		DateTo:       q.DateFin,
	})
	if err != nil {
		return nil, err
	}
	employes, err := rapports.CompterEmployesActifs(ctx, q.EntrepriseID)
	if err != nil {
		return nil, err
	}
	out := &dto.DashboardResponse{
		EntrepriseID:     q.EntrepriseID,
		CAPeriode:        net(factures.MontantTTC, avoirs.MontantTTC),
		NbFactures:       factures.Nombre,
		NbCommandes:      commandes.Nombre,
		NbEmployesActifs: employes,
	}
	if q.DateDebut != nil && q.DateFin != nil {
		label := fmt.Sprintf("%s / %s", q.DateDebut.Format(dto.DateLayout), q.DateFin.Format(dto.DateLayout))
		out.PeriodeLabel = &label
	}
	return out, nil
}

func (s *Service) controler(ctx context.Context, a tenant.Actor, q dto.RapportQuery) error {
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return err
	}
	if q.DateDebut != nil && q.DateFin != nil && q.DateFin.Before(*q.DateDebut) {
		return domain.BadRequest(ReasonPeriodeDates, msgDatesPeriode)
	}
	return tenant.GuardReferenced(ctx, s.store.References(), a, repository.KindEntreprise, q.EntrepriseID)
}

// ventes totaux des factures et des avoirs de vente sur la période.
func (s *Service) ventes(ctx context.Context, q dto.RapportQuery) (factures, avoirs repository.Total, err error) {
	filtre := repository.TotalFilter{
		EntrepriseID: q.EntrepriseID,
		TypeDocument: entity.FamilleFacture,
		DateFrom:     q.DateDebut,
		DateTo:       q.DateFin,
	}
	filtre.TypesFacture = []string{entity.TypeFactureFacture}
	if factures, err = s.store.Rapports().TotalDocuments(ctx, filtre); err != nil {
		return
	}
	filtre.TypesFacture = []string{entity.TypeFactureAvoir}
	avoirs, err = s.store.Rapports().TotalDocuments(ctx, filtre)
	return
}

// net factures moins avoirs ; un avoir compte en valeur absolue quel que soit son signe.
func net(factures, avoirs decimal.Decimal) decimal.Decimal {
	return factures.Sub(avoirs.Abs())
}
