// Package tenant applique l'isolation multi-entreprise : chaque action s'exécute dans
// l'entreprise pour laquelle l'appelant s'est authentifié.
package tenant

import (
	"context"
	"fmt"

	"github.com/gesco-erp/gesco-api/internal/domain"
	"github.com/gesco-erp/gesco-api/internal/domain/repository"
)

// Actor contexte d'authentification résolu pour la requête.
type Actor struct {
	UserID       int64
	EntrepriseID int64
	RoleID       int64
}

// CreatedBy identifiant de l'auteur pour les colonnes created_by_id.
func (a Actor) CreatedBy() *int64 {
	if a.UserID == 0 {
		return nil
	}
	id := a.UserID
	return &id
}

type actorKey struct{}

// WithActor attache l'acteur au contexte.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// FromContext renvoie l'acteur attaché par le middleware d'authentification.
func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}

// GuardPayload entreprise_id de la charge utile == entreprise du contexte.
func GuardPayload(a Actor, entrepriseID int64) error {
	if entrepriseID != a.EntrepriseID {
		return domain.ForbiddenEntreprise()
	}
	return nil
}

// GuardResource la ressource chargée appartient à l'entreprise du contexte.
func GuardResource(a Actor, owner int64) error {
	if owner != a.EntrepriseID {
		return domain.ForbiddenEntreprise()
	}
	return nil
}

// GuardReferenced l'entité référencée existe (NotFound sinon) et appartient à l'entreprise
// du contexte (Forbidden sinon). Les référentiels globaux ne sont vérifiés qu'en existence.
func GuardReferenced(ctx context.Context, refs repository.ReferenceRepository, a Actor, kind repository.Kind, id int64) error {
	owner, found, err := refs.Owner(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("référence %s %d: %w", kind, id, err)
	}
	if !found {
		return NotFoundFor(kind)
	}
	if owner != 0 && owner != a.EntrepriseID {
		return domain.ForbiddenEntreprise()
	}
	return nil
}

// GuardOptional GuardReferenced si id est renseigné.
func GuardOptional(ctx context.Context, refs repository.ReferenceRepository, a Actor, kind repository.Kind, id *int64) error {
	if id == nil {
		return nil
	}
	return GuardReferenced(ctx, refs, a, kind, *id)
}

// OwnedOrNotFound comme GuardReferenced, mais une entité d'une autre entreprise est rapportée
// comme absente : l'appelant ne peut pas sonder les identifiants des autres entreprises.
func OwnedOrNotFound(ctx context.Context, refs repository.ReferenceRepository, a Actor, kind repository.Kind, id int64) error {
	owner, found, err := refs.Owner(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("référence %s %d: %w", kind, id, err)
	}
	if !found || (owner != 0 && owner != a.EntrepriseID) {
		return NotFoundFor(kind)
	}
	return nil
}

var notFoundMessages = map[repository.Kind]string{
	repository.KindEntreprise:       "L'entreprise indiquée n'existe pas.",
	repository.KindPointDeVente:     "Le point de vente indiqué n'existe pas.",
	repository.KindDepot:            "Le dépôt indiqué n'existe pas.",
	repository.KindTiers:            "Le tiers indiqué n'existe pas.",
	repository.KindProduit:          "Le produit indiqué n'existe pas.",
	repository.KindVariante:         "La variante indiquée n'existe pas.",
	repository.KindFamille:          "La famille de produits indiquée n'existe pas.",
	repository.KindJournal:          "Le journal comptable indiqué n'existe pas.",
	repository.KindCompte:           "Le compte comptable indiqué n'existe pas.",
	repository.KindPeriode:          "La période comptable indiquée n'existe pas.",
	repository.KindCompteTresorerie: "Le compte de trésorerie indiqué n'existe pas.",
	repository.KindModePaiement:     "Le mode de paiement indiqué n'existe pas.",
	repository.KindEmploye:          "L'employé indiqué n'existe pas.",
	repository.KindPeriodePaie:      "La période de paie indiquée n'existe pas.",
	repository.KindRole:             "Le rôle indiqué n'existe pas.",
	repository.KindDevise:           "La devise indiquée n'existe pas.",
	repository.KindEtatDocument:     "L'état de document indiqué n'existe pas.",
	repository.KindTauxTva:          "Le taux de TVA indiqué n'existe pas.",
	repository.KindUnite:            "L'unité de mesure indiquée n'existe pas.",
}

// NotFoundFor erreur NotFound standard pour un type d'entité.
func NotFoundFor(kind repository.Kind) error {
	if msg, ok := notFoundMessages[kind]; ok {
		return domain.NotFound("%s", msg)
	}
	return domain.NotFound("Ressource %s introuvable.", kind)
}
