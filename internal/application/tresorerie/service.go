// Package tresorerie gère les comptes de trésorerie, les modes de paiement et les
// règlements de factures clients et fournisseurs.
package tresorerie

import (
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Bornes de pagination.
const (
	MaxReglements = 200
	MaxComptes    = 200
	MaxModes      = 200
)

// Types de compte de trésorerie.
const (
	CompteCaisse      = "caisse"
	CompteBanque      = "banque"
	CompteMobileMoney = "mobile_money"
)

// TypesCompte valeurs admises.
var TypesCompte = []string{CompteCaisse, CompteBanque, CompteMobileMoney}

// Service cas d'usage de la trésorerie. Avec imputation, chaque règlement diminue le
// restant dû de la facture visée.
type Service struct {
	store      repository.Store
	tx         repository.TxRunner
	imputation bool
}

// NewService construit le service ; imputation reflète REGLEMENT_IMPUTATION_AUTO.
func NewService(store repository.Store, tx repository.TxRunner, imputation bool) *Service {
	return &Service{store: store, tx: tx, imputation: imputation}
}
