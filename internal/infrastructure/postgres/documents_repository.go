package postgres

import (
	"context"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

var (
	_ repository.DocumentRepository  = DocumentRepo{}
	_ repository.ReceptionRepository = ReceptionRepo{}
)

// DocumentRepo en-têtes des six familles de documents, discriminées par type_document.
type DocumentRepo struct{ q Querier }

const documentCols = `id, entreprise_id, type_document, point_de_vente_id, tiers_id, depot_id,
	document_origine_id, numero, numero_externe, type_facture, date_document, date_echeance,
	date_livraison_prevue, etat_id, montant_ht, montant_tva, montant_ttc, montant_restant_du,
	devise_id, statut_paiement, notes, created_by_id, created_at, updated_at`

func (r DocumentRepo) Create(ctx context.Context, d *entity.Document) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO documents (entreprise_id, type_document, point_de_vente_id, tiers_id, depot_id,
			document_origine_id, numero, numero_externe, type_facture, date_document, date_echeance,
			date_livraison_prevue, etat_id, montant_ht, montant_tva, montant_ttc, montant_restant_du,
			devise_id, statut_paiement, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, created_at, updated_at`,
		d.EntrepriseID, d.TypeDocument, d.PointDeVenteID, d.TiersID, d.DepotID,
		d.DocumentOrigineID, d.Numero, d.NumeroExterne, d.TypeFacture, d.DateDocument, d.DateEcheance,
		d.DateLivraisonPrevue, d.EtatID, d.MontantHT, d.MontantTVA, d.MontantTTC, d.MontantRestantDu,
		d.DeviseID, d.StatutPaiement, d.Notes, d.CreatedByID,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return wrap("insert document", err)
	}
	return nil
}

func (r DocumentRepo) GetByID(ctx context.Context, id int64) (*entity.Document, error) {
	return one[entity.Document](ctx, r.q, "get document",
		`SELECT `+documentCols+` FROM documents WHERE id = $1`, id)
}

func (r DocumentRepo) GetByIDForUpdate(ctx context.Context, id int64) (*entity.Document, error) {
	return one[entity.Document](ctx, r.q, "get document for update",
		`SELECT `+documentCols+` FROM documents WHERE id = $1 FOR UPDATE`, id)
}

func (r DocumentRepo) Update(ctx context.Context, d *entity.Document) error {
	err := r.q.QueryRow(ctx, `
		UPDATE documents SET depot_id = $2, numero = $3, numero_externe = $4, type_facture = $5,
			date_document = $6, date_echeance = $7, date_livraison_prevue = $8, etat_id = $9,
			montant_ht = $10, montant_tva = $11, montant_ttc = $12, montant_restant_du = $13,
			devise_id = $14, statut_paiement = $15, notes = $16, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		d.ID, d.DepotID, d.Numero, d.NumeroExterne, d.TypeFacture,
		d.DateDocument, d.DateEcheance, d.DateLivraisonPrevue, d.EtatID,
		d.MontantHT, d.MontantTVA, d.MontantTTC, d.MontantRestantDu,
		d.DeviseID, d.StatutPaiement, d.Notes,
	).Scan(&d.UpdatedAt)
	if err != nil {
		return wrap("update document", err)
	}
	return nil
}

func (r DocumentRepo) List(ctx context.Context, f repository.DocumentFilter) ([]*entity.Document, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	w.add("type_document = ?", f.TypeDocument)
	if f.TiersID != nil {
		w.add("tiers_id = ?", *f.TiersID)
	}
	if f.EtatID != nil {
		w.add("etat_id = ?", *f.EtatID)
	}
	if f.DateFrom != nil {
		w.add("date_document >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("date_document <= ?", *f.DateTo)
	}
	w.search(f.Search, "numero")
	query := `SELECT ` + documentCols + ` FROM documents` + w.where() +
		` ORDER BY date_document DESC, id DESC` + w.page(f.Page)
	return many[entity.Document](ctx, r.q, "list documents", query, w.args...)
}

// ReceptionRepo réceptions fournisseurs.
type ReceptionRepo struct{ q Querier }

const receptionCols = `id, entreprise_id, fournisseur_id, commande_fournisseur_id, depot_id, numero,
	numero_bl_fournisseur, date_reception, etat, notes, created_by_id, created_at, updated_at`

func (r ReceptionRepo) Create(ctx context.Context, x *entity.Reception) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO receptions (entreprise_id, fournisseur_id, commande_fournisseur_id, depot_id, numero,
			numero_bl_fournisseur, date_reception, etat, notes, created_by_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		x.EntrepriseID, x.FournisseurID, x.CommandeFournisseurID, x.DepotID, x.Numero,
		x.NumeroBLFournisseur, x.DateReception, x.Etat, x.Notes, x.CreatedByID,
	).Scan(&x.ID, &x.CreatedAt, &x.UpdatedAt)
	if err != nil {
		return wrap("insert reception", err)
	}
	for i := range x.Lignes {
		l := &x.Lignes[i]
		l.ReceptionID = x.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO lignes_reception (reception_id, produit_id, variante_id, quantite, ordre)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			l.ReceptionID, l.ProduitID, l.VarianteID, l.Quantite, l.Ordre,
		).Scan(&l.ID)
		if err != nil {
			return wrap("insert ligne reception", err)
		}
	}
	return nil
}

func (r ReceptionRepo) GetWithLignes(ctx context.Context, id int64) (*entity.Reception, error) {
	return r.get(ctx, `SELECT `+receptionCols+` FROM receptions WHERE id = $1`, id)
}

// GetForUpdate verrouille l'en-tête avant de charger les lignes.
func (r ReceptionRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Reception, error) {
	return r.get(ctx, `SELECT `+receptionCols+` FROM receptions WHERE id = $1 FOR UPDATE`, id)
}

func (r ReceptionRepo) get(ctx context.Context, query string, id int64) (*entity.Reception, error) {
	x, err := one[entity.Reception](ctx, r.q, "get reception", query, id)
	if err != nil || x == nil {
		return x, err
	}
	lignes, err := many[entity.LigneReception](ctx, r.q, "list lignes reception", `
		SELECT id, reception_id, produit_id, variante_id, quantite, ordre
		FROM lignes_reception WHERE reception_id = $1 ORDER BY ordre, id`, id)
	if err != nil {
		return nil, err
	}
	x.Lignes = values(lignes)
	return x, nil
}

// Update met à jour l'en-tête seul.
func (r ReceptionRepo) Update(ctx context.Context, x *entity.Reception) error {
	err := r.q.QueryRow(ctx, `
		UPDATE receptions SET numero = $2, numero_bl_fournisseur = $3, date_reception = $4, etat = $5,
			notes = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		x.ID, x.Numero, x.NumeroBLFournisseur, x.DateReception, x.Etat, x.Notes,
	).Scan(&x.UpdatedAt)
	if err != nil {
		return wrap("update reception", err)
	}
	return nil
}

func (r ReceptionRepo) List(ctx context.Context, f repository.ReceptionFilter) ([]*entity.Reception, error) {
	var w filter
	w.add("entreprise_id = ?", f.EntrepriseID)
	if f.FournisseurID != nil {
		w.add("fournisseur_id = ?", *f.FournisseurID)
	}
	if f.DepotID != nil {
		w.add("depot_id = ?", *f.DepotID)
	}
	if f.Etat != "" {
		w.add("etat = ?", f.Etat)
	}
	query := `SELECT ` + receptionCols + ` FROM receptions` + w.where() +
		` ORDER BY date_reception DESC, id DESC` + w.page(f.Page)
	return many[entity.Reception](ctx, r.q, "list receptions", query, w.args...)
}
