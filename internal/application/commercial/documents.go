package commercial

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/application/tenant"
	"github.com/gesco-erp/gesco-api/internal/application/validation"
	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Create crée un document de la famille f. Le numéro est unique par entreprise et par famille.
func (s *Service) Create(ctx context.Context, a tenant.Actor, f *Famille, in dto.DocumentCreate) (*dto.DocumentResponse, error) {
	if err := tenant.GuardPayload(a, in.EntrepriseID); err != nil {
		return nil, err
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	d := &entity.Document{
		EntrepriseID:        in.EntrepriseID,
		TypeDocument:        f.Type,
		DepotID:             in.DepotID,
		DocumentOrigineID:   in.DocumentOrigineID,
		Numero:              strings.TrimSpace(in.Numero),
		NumeroExterne:       in.NumeroExterne,
		DateDocument:        in.DateDocument.Time,
		DateEcheance:        in.DateEcheance.TimePtr(),
		DateLivraisonPrevue: in.DateLivraisonPrevue.TimePtr(),
		EtatID:              in.EtatID,
		MontantHT:           in.MontantHT,
		MontantTVA:          in.MontantTVA,
		MontantTTC:          in.MontantTTC,
		DeviseID:            in.DeviseID,
		Notes:               in.Notes,
		CreatedByID:         a.CreatedBy(),
	}
	tiersID := in.FournisseurID
	if f.Vente {
		tiersID = in.ClientID
		d.PointDeVenteID = in.PointDeVenteID
	}
	if err := checkEntete(f, d, tiersID, in.PointDeVenteID); err != nil {
		return nil, err
	}
	d.TiersID = *tiersID
	if f.EstFacture() {
		typ := entity.TypeFactureFacture
		if in.TypeFacture != nil {
			typ = *in.TypeFacture
		}
		d.TypeFacture = &typ
		restant := d.MontantTTC
		if in.MontantRestantDu != nil {
			restant = *in.MontantRestantDu
		}
		d.MontantRestantDu = &restant
	}
	if err := checkDocument(f, d); err != nil {
		return nil, err
	}
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		refs := tx.References()
		if err := tenant.GuardReferenced(ctx, refs, a, repository.KindEntreprise, in.EntrepriseID); err != nil {
			return err
		}
		if err := tenant.GuardOptional(ctx, refs, a, repository.KindPointDeVente, d.PointDeVenteID); err != nil {
			return err
		}
		if err := checkTiers(ctx, tx, a, f, d.TiersID); err != nil {
			return err
		}
		if err := checkRefs(ctx, tx, a, f, d); err != nil {
			return err
		}
		if err := checkOrigine(ctx, tx, a, f, d.DocumentOrigineID); err != nil {
			return err
		}
		return domain.ConflictOnDuplicate(tx.Documents().Create(ctx, d), f.msgExists, d.Numero)
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(f, d), nil
}

// Get document de la famille f appartenant à l'entreprise de l'appelant.
func (s *Service) Get(ctx context.Context, a tenant.Actor, f *Famille, id int64) (*dto.DocumentResponse, error) {
	d, err := load(ctx, s.store.Documents().GetByID, a, f, id)
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(f, d), nil
}

// load un identifiant d'une autre famille est rapporté comme absent.
func load(ctx context.Context, get func(context.Context, int64) (*entity.Document, error), a tenant.Actor, f *Famille, id int64) (*entity.Document, error) {
	d, err := get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil || d.TypeDocument != f.Type {
		return nil, domain.NotFound("%s", f.msgNotFound)
	}
	if err := tenant.GuardResource(a, d.EntrepriseID); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applique une mise à jour partielle ; les invariants (dates, restant dû ≤ TTC, état de
// la famille) sont revérifiés sur le document fusionné.
func (s *Service) Update(ctx context.Context, a tenant.Actor, f *Famille, id int64, in dto.DocumentUpdate) (*dto.DocumentResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if err := dto.FirstError(
		dto.NotNull("numero", in.Numero),
		dto.NotNull("type_facture", in.TypeFacture),
		dto.NotNull("date_document", in.DateDocument),
		dto.NotNull("montant_ht", in.MontantHT),
		dto.NotNull("montant_tva", in.MontantTVA),
		dto.NotNull("montant_ttc", in.MontantTTC),
		dto.NotNull("montant_restant_du", in.MontantRestantDu),
	); err != nil {
		return nil, err
	}
	var out *entity.Document
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		d, err := load(ctx, tx.Documents().GetByIDForUpdate, a, f, id)
		if err != nil {
			return err
		}
		if in.Numero.HasValue() {
			d.Numero = strings.TrimSpace(in.Numero.Value)
		}
		dto.ApplyNullable(in.NumeroExterne, &d.NumeroExterne)
		dto.ApplyNullable(in.DepotID, &d.DepotID)
		dto.ApplyNullable(in.EtatID, &d.EtatID)
		dto.ApplyNullable(in.DeviseID, &d.DeviseID)
		dto.ApplyNullable(in.Notes, &d.Notes)
		applyDate(in.DateEcheance, &d.DateEcheance)
		applyDate(in.DateLivraisonPrevue, &d.DateLivraisonPrevue)
		if in.DateDocument.HasValue() {
			d.DateDocument = in.DateDocument.Value.Time
		}
		ancienTTC := d.MontantTTC
		in.MontantHT.Apply(&d.MontantHT)
		in.MontantTVA.Apply(&d.MontantTVA)
		in.MontantTTC.Apply(&d.MontantTTC)
		if f.EstFacture() {
			dto.ApplyNullable(in.TypeFacture, &d.TypeFacture)
			if in.MontantRestantDu.Set {
				dto.ApplyNullable(in.MontantRestantDu, &d.MontantRestantDu)
			} else if !d.MontantTTC.Equal(ancienTTC) {
				restant := reporterRestant(ancienTTC, d.MontantRestantDu, d.MontantTTC)
				d.MontantRestantDu = &restant
			}
		}
		if d.Numero == "" {
			return domain.BadRequest(ReasonNumeroVide, msgNumeroVide)
		}
		if err := checkDocument(f, d); err != nil {
			return err
		}
		if in.DepotID.HasValue() || in.EtatID.HasValue() || in.DeviseID.HasValue() {
			if err := checkRefs(ctx, tx, a, f, d); err != nil {
				return err
			}
		}
		if err := tx.Documents().Update(ctx, d); err != nil {
			return domain.ConflictOnDuplicate(err, f.msgExists, d.Numero)
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(f, out), nil
}

// reporterRestant conserve le montant déjà réglé quand le TTC change :
// restant = nouveauTTC − (ancienTTC − ancienRestant), borné à [0, nouveauTTC].
func reporterRestant(ancienTTC decimal.Decimal, ancienRestant *decimal.Decimal, nouveauTTC decimal.Decimal) decimal.Decimal {
	regle := decimal.Zero
	if ancienRestant != nil {
		regle = ancienTTC.Sub(*ancienRestant)
	}
	restant := nouveauTTC.Sub(regle)
	switch {
	case restant.IsNegative():
		return decimal.Zero
	case restant.GreaterThan(nouveauTTC):
		return nouveauTTC
	}
	return restant
}

func applyDate(o dto.Optional[dto.Date], dst **time.Time) {
	switch {
	case !o.Set:
	case o.Null:
		*dst = nil
	default:
		t := o.Value.Time
		*dst = &t
	}
}

// List documents de la famille, triés par date_document desc puis id desc.
func (s *Service) List(ctx context.Context, a tenant.Actor, f *Famille, q dto.DocumentQuery) (dto.ListResponse[*dto.DocumentResponse], error) {
	var out dto.ListResponse[*dto.DocumentResponse]
	if err := tenant.GuardPayload(a, q.EntrepriseID); err != nil {
		return out, err
	}
	page, err := q.Resolve(MaxDocuments)
	if err != nil {
		return out, err
	}
	list, err := s.store.Documents().List(ctx, repository.DocumentFilter{
		EntrepriseID: q.EntrepriseID,
		TypeDocument: f.Type,
		TiersID:      q.TiersID,
		EtatID:       q.EtatID,
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		Search:       strings.TrimSpace(q.Search),
		Page:         page,
	})
	if err != nil {
		return out, err
	}
	return dto.NewList(dto.Map(list, func(d *entity.Document) *dto.DocumentResponse {
		return toDocumentResponse(f, d)
	}), page), nil
}

// RecalculerRestantDu rapproche une facture de ses règlements :
// restant dû = TTC − Σ règlements, borné à [0, TTC].
func (s *Service) RecalculerRestantDu(ctx context.Context, a tenant.Actor, f *Famille, id int64) (*dto.DocumentResponse, error) {
	if !f.EstFacture() {
		return nil, domain.BadRequest(ReasonNonFacture, msgRecalculNonFacture)
	}
	var out *entity.Document
	err := s.tx.Run(ctx, func(tx repository.Store) error {
		d, err := load(ctx, tx.Documents().GetByIDForUpdate, a, f, id)
		if err != nil {
			return err
		}
		regle, err := tx.Reglements().TotalPourDocument(ctx, d.ID)
		if err != nil {
			return err
		}
		restant := d.MontantTTC.Sub(regle)
		if restant.IsNegative() {
			restant = decimal.Zero
		}
		d.MontantRestantDu = &restant
		statut := entity.StatutPour(restant, d.MontantTTC)
		d.StatutPaiement = &statut
		if err := tx.Documents().Update(ctx, d); err != nil {
			return err
		}
		out = d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDocumentResponse(f, out), nil
}

// checkEntete tiers présent, point de vente pour les ventes, numéro non vide.
func checkEntete(f *Famille, d *entity.Document, tiersID, pdvID *int64) error {
	if d.Numero == "" {
		return domain.BadRequest(ReasonNumeroVide, msgNumeroVide)
	}
	if tiersID == nil {
		if f.Vente {
			return domain.BadRequest(ReasonTiersObligatoire, msgClientObligatoire)
		}
		return domain.BadRequest(ReasonTiersObligatoire, msgFournObligatoire)
	}
	if f.Vente && pdvID == nil {
		return domain.BadRequest(ReasonPDVObligatoire, msgPDVObligatoire)
	}
	if d.DocumentOrigineID != nil && f.Origine == "" {
		return domain.BadRequest(ReasonOrigineInvalide, msgOrigineInterdite, f.Type)
	}
	return nil
}

// checkDocument invariants portés par le document lui-même ; met à jour le statut de paiement.
func checkDocument(f *Famille, d *entity.Document) error {
	if d.DateLivraisonPrevue != nil && d.DateLivraisonPrevue.Before(d.DateDocument) {
		return domain.BadRequest(ReasonDatesIncoherentes, msgDateLivraison)
	}
	if d.DateEcheance != nil && d.DateEcheance.Before(d.DateDocument) {
		return domain.BadRequest(ReasonDatesIncoherentes, msgDateEcheance)
	}
	if !f.EstFacture() {
		d.TypeFacture, d.MontantRestantDu, d.StatutPaiement = nil, nil, nil
		return nil
	}
	if d.TypeFacture != nil && !slices.Contains(entity.TypesFacture, *d.TypeFacture) {
		return domain.BadRequest(ReasonTypeFactureInvalide, msgTypeFacture, *d.TypeFacture)
	}
	if d.MontantRestantDu == nil {
		ttc := d.MontantTTC
		d.MontantRestantDu = &ttc
	}
	if d.MontantRestantDu.GreaterThan(d.MontantTTC) {
		return domain.BadRequest(ReasonRestantSuperieurTTC, msgRestantSuperieur, d.MontantRestantDu.StringFixed(2), d.MontantTTC.StringFixed(2))
	}
	statut := entity.StatutPour(*d.MontantRestantDu, d.MontantTTC)
	d.StatutPaiement = &statut
	return nil
}

func checkTiers(ctx context.Context, tx repository.Store, a tenant.Actor, f *Famille, id int64) error {
	if err := tenant.GuardReferenced(ctx, tx.References(), a, repository.KindTiers, id); err != nil {
		return err
	}
	t, err := tx.Tiers().GetByID(ctx, id)
	if err != nil {
		return err
	}
	switch {
	case f.Vente && !t.EstClient():
		return domain.BadRequest(ReasonTiersIncompatible, msgTiersNonClient, t.Code)
	case !f.Vente && !t.EstFournisseur():
		return domain.BadRequest(ReasonTiersIncompatible, msgTiersNonFourn, t.Code)
	}
	return nil
}

// checkRefs dépôt, devise et état (membre de la famille).
func checkRefs(ctx context.Context, tx repository.Store, a tenant.Actor, f *Famille, d *entity.Document) error {
	refs := tx.References()
	if err := tenant.GuardOptional(ctx, refs, a, repository.KindDepot, d.DepotID); err != nil {
		return err
	}
	if err := tenant.GuardOptional(ctx, refs, a, repository.KindDevise, d.DeviseID); err != nil {
		return err
	}
	if d.EtatID == nil {
		return nil
	}
	etat, err := tx.Etats().GetByID(ctx, *d.EtatID)
	if err != nil {
		return err
	}
	if etat == nil {
		return domain.NotFound(msgEtatNotFound)
	}
	if etat.TypeDocument != f.Type {
		return domain.BadRequest(ReasonEtatIncompatible, msgEtatFamille, etat.Code, f.Type)
	}
	return nil
}

func checkOrigine(ctx context.Context, tx repository.Store, a tenant.Actor, f *Famille, id *int64) error {
	if id == nil {
		return nil
	}
	o, err := tx.Documents().GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.NotFound(msgOrigineNotFound)
	}
	if err := tenant.GuardResource(a, o.EntrepriseID); err != nil {
		return err
	}
	if o.TypeDocument != f.Origine {
		return domain.BadRequest(ReasonOrigineInvalide, msgOrigineFamille, f.Origine, o.TypeDocument)
	}
	return nil
}

func toDocumentResponse(f *Famille, d *entity.Document) *dto.DocumentResponse {
	r := &dto.DocumentResponse{
		ID:                  d.ID,
		EntrepriseID:        d.EntrepriseID,
		TypeDocument:        d.TypeDocument,
		PointDeVenteID:      d.PointDeVenteID,
		DepotID:             d.DepotID,
		DocumentOrigineID:   d.DocumentOrigineID,
		Numero:              d.Numero,
		NumeroExterne:       d.NumeroExterne,
		TypeFacture:         d.TypeFacture,
		DateDocument:        dto.NewDate(d.DateDocument),
		DateEcheance:        dto.DatePtr(d.DateEcheance),
		DateLivraisonPrevue: dto.DatePtr(d.DateLivraisonPrevue),
		EtatID:              d.EtatID,
		MontantHT:           d.MontantHT,
		MontantTVA:          d.MontantTVA,
		MontantTTC:          d.MontantTTC,
		MontantRestantDu:    d.MontantRestantDu,
		StatutPaiement:      d.StatutPaiement,
		DeviseID:            d.DeviseID,
		Notes:               d.Notes,
		CreatedByID:         d.CreatedByID,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	tiers := d.TiersID
	if f.Vente {
		r.ClientID = &tiers
	} else {
		r.FournisseurID = &tiers
	}
	return r
}
