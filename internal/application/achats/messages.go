package achats

const (
	msgDepotNotFound     = "Dépôt non trouvé."
	msgDepotCodeExists   = "Un dépôt avec le code « %s » existe déjà pour cette entreprise."
	msgReceptionNotFound = "Réception non trouvée."
	msgReceptionExists   = "Une réception avec le numéro « %s » existe déjà pour cette entreprise."
	msgNumeroVide        = "Le numéro de la réception ne peut pas être vide."
	msgTiersNonFourn     = "Le tiers « %s » n'est pas un fournisseur."
	msgCommandeNotFound  = "La commande fournisseur indiquée n'existe pas."
	msgCommandeTiers     = "La commande fournisseur indiquée concerne un autre fournisseur."
	msgTransition        = "Transition impossible : la réception est à l'état « %s » (attendu : brouillon)."
	msgNonModifiable     = "La réception est à l'état « %s » ; seule une réception brouillon est modifiable."
	msgEtatInvalide      = "L'état de réception doit être : brouillon, validee ou annulee (reçu : « %s »)."
)

// Sous-codes BadRequest des achats.
const (
	ReasonNumeroVide            = "NUMERO_VIDE"
	ReasonTiersIncompatible     = "TIERS_TYPE_INCOMPATIBLE"
	ReasonCommandeFournisseur   = "COMMANDE_FOURNISSEUR_INCOHERENTE"
	ReasonTransitionInvalide    = "RECEPTION_TRANSITION_INVALIDE"
	ReasonReceptionNonModif     = "RECEPTION_NON_MODIFIABLE"
	ReasonEtatReceptionInvalide = "ETAT_RECEPTION_INVALIDE"
)
