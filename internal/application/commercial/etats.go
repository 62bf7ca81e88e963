package commercial

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

// Toutes les familles, indexées par type_document.
var parType = map[string]*Famille{
	Devis.Type:               Devis,
	Commande.Type:            Commande,
	Facture.Type:             Facture,
	BonLivraison.Type:        BonLivraison,
	CommandeFournisseur.Type: CommandeFournisseur,
	FactureFournisseur.Type:  FactureFournisseur,
}

// FamillePour famille correspondant à un type_document.
func FamillePour(typeDocument string) (*Famille, bool) {
	f, ok := parType[typeDocument]
	return f, ok
}

// ListEtats états d'un type de document, triés par ordre.
func (s *Service) ListEtats(ctx context.Context, typeDocument string) ([]*dto.EtatDocumentResponse, error) {
	if _, ok := parType[typeDocument]; !ok && typeDocument != entity.FamilleReception {
		return nil, domain.BadRequest(ReasonTypeDocument, msgTypeDocInconnu, typeDocument)
	}
	list, err := s.store.Etats().ListByType(ctx, typeDocument)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, func(e *entity.EtatDocument) *dto.EtatDocumentResponse {
		return &dto.EtatDocumentResponse{
			ID:           e.ID,
			TypeDocument: e.TypeDocument,
			Code:         e.Code,
			Libelle:      e.Libelle,
			Ordre:        e.Ordre,
		}
	}), nil
}
