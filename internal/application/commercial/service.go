// Package commercial porte le service de documents partagé par les familles de vente
// (devis, commande, facture, bon de livraison) et d'achat (commande et facture fournisseur),
// ainsi que le référentiel des états de document.
package commercial

import (
	"time"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// MaxDocuments borne de pagination des listes de documents.
const MaxDocuments = 200

// Famille décrit une famille de documents stockée dans la table commune.
type Famille struct {
	Type        string // type_document
	Vente       bool   // tiers client et point de vente obligatoire ; sinon tiers fournisseur
	Origine     string // famille admise pour document_origine_id ("" : aucune)
	msgNotFound string
	msgExists   string
}

// Familles gérées.
var (
	Devis = &Famille{
		Type:        entity.FamilleDevis,
		Vente:       true,
		msgNotFound: "Devis non trouvé.",
		msgExists:   "Un devis avec le numéro « %s » existe déjà pour cette entreprise.",
	}
	Commande = &Famille{
		Type:        entity.FamilleCommande,
		Vente:       true,
		Origine:     entity.FamilleDevis,
		msgNotFound: "Commande non trouvée.",
		msgExists:   "Une commande avec le numéro « %s » existe déjà pour cette entreprise.",
	}
	Facture = &Famille{
		Type:        entity.FamilleFacture,
		Vente:       true,
		Origine:     entity.FamilleCommande,
		msgNotFound: "Facture non trouvée.",
		msgExists:   "Une facture avec le numéro « %s » existe déjà pour cette entreprise.",
	}
	BonLivraison = &Famille{
		Type:        entity.FamilleBonLivraison,
		Vente:       true,
		Origine:     entity.FamilleFacture,
		msgNotFound: "Bon de livraison non trouvé.",
		msgExists:   "Un bon de livraison avec le numéro « %s » existe déjà pour cette entreprise.",
	}
	CommandeFournisseur = &Famille{
		Type:        entity.FamilleCommandeFournisseur,
		msgNotFound: "Commande fournisseur non trouvée.",
		msgExists:   "Une commande fournisseur avec le numéro « %s » existe déjà pour cette entreprise.",
	}
	FactureFournisseur = &Famille{
		Type:        entity.FamilleFactureFournisseur,
		Origine:     entity.FamilleCommandeFournisseur,
		msgNotFound: "Facture fournisseur non trouvée.",
		msgExists:   "Une facture fournisseur avec le numéro « %s » existe déjà pour cette entreprise.",
	}
)

// EstFacture vrai pour les familles portant un restant dû.
func (f *Famille) EstFacture() bool {
	return f.Type == entity.FamilleFacture || f.Type == entity.FamilleFactureFournisseur
}

// Service cas d'usage des documents.
type Service struct {
	store repository.Store
	tx    repository.TxRunner
	now   func() time.Time
}

// NewService construit le service.
func NewService(store repository.Store, tx repository.TxRunner) *Service {
	return &Service{store: store, tx: tx, now: time.Now}
}
