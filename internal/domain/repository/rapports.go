package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TotalFilter critères d'agrégation des documents d'une famille.
type TotalFilter struct {
	EntrepriseID int64
	TypeDocument string
	// TypesFacture restreint les factures ; un type_facture absent compte comme facture.
	TypesFacture []string
	DateFrom     *time.Time
	DateTo       *time.Time
}

// Total nombre de documents et somme des montants TTC.
type Total struct {
	Nombre     int64
	MontantTTC decimal.Decimal
}

// RapportRepository agrégats en lecture seule des tableaux de bord.
type RapportRepository interface {
	TotalDocuments(ctx context.Context, f TotalFilter) (Total, error)
	CompterEmployesActifs(ctx context.Context, entrepriseID int64) (int64, error)
}
