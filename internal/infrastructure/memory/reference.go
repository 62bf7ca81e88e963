package memory

import (
	"context"
	"fmt"

	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

type references struct{ s store }

func (r references) Owner(_ context.Context, kind repository.Kind, id int64) (int64, bool, error) {
	var (
		owner int64
		found bool
	)
	err := r.s.view(func(t *tables) error {
		switch kind {
		case repository.KindEntreprise:
			_, found = t.entreprises.get(id)
			owner = id
		case repository.KindPointDeVente:
			v, ok := t.pointsDeVente.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindDepot:
			v, ok := t.depots.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindTiers:
			v, ok := t.tiers.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindProduit:
			v, ok := t.produits.get(id)
			owner, found = v.EntrepriseID, ok && v.DeletedAt == nil
		case repository.KindVariante:
			v, ok := t.variantes.get(id)
			if ok {
				p, pok := t.produits.get(v.ProduitID)
				owner, found = p.EntrepriseID, pok && p.DeletedAt == nil
			}
		case repository.KindFamille:
			v, ok := t.familles.get(id)
			owner, found = v.EntrepriseID, ok && v.DeletedAt == nil
		case repository.KindJournal:
			v, ok := t.journaux.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindCompte:
			v, ok := t.comptes.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindPeriode:
			v, ok := t.periodes.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindCompteTresorerie:
			v, ok := t.comptesTresorerie.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindModePaiement:
			v, ok := t.modesPaiement.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindEmploye:
			v, ok := t.employes.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindPeriodePaie:
			v, ok := t.periodesPaie.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindRole:
			v, ok := t.roles.get(id)
			owner, found = v.EntrepriseID, ok
		case repository.KindDevise:
			_, found = t.devises.get(id)
		case repository.KindEtatDocument:
			_, found = t.etats.get(id)
		case repository.KindTauxTva:
			_, found = t.tauxTva.get(id)
		case repository.KindUnite:
			_, found = t.unites.get(id)
		default:
			return fmt.Errorf("type de référence inconnu: %s", kind)
		}
		return nil
	})
	if err != nil || !found {
		return 0, false, err
	}
	return owner, true, nil
}
