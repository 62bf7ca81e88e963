package commercial

const (
	msgNumeroVide         = "Le numéro du document ne peut pas être vide."
	msgTypeFacture        = "Le type de facture doit être : facture, avoir, proforma ou duplicata (reçu : « %s »)."
	msgRestantSuperieur   = "Le montant restant dû (%s) ne peut pas dépasser le montant TTC (%s)."
	msgDateLivraison      = "La date de livraison prévue doit être postérieure ou égale à la date du document."
	msgDateEcheance       = "La date d'échéance doit être postérieure ou égale à la date du document."
	msgClientObligatoire  = "Le client (client_id) est obligatoire."
	msgFournObligatoire   = "Le fournisseur (fournisseur_id) est obligatoire."
	msgTiersNonClient     = "Le tiers « %s » n'est pas un client."
	msgTiersNonFourn      = "Le tiers « %s » n'est pas un fournisseur."
	msgPDVObligatoire     = "Le point de vente (point_de_vente_id) est obligatoire."
	msgEtatNotFound       = "L'état de document indiqué n'existe pas."
	msgEtatFamille        = "L'état « %s » n'appartient pas aux états de type %s."
	msgOrigineNotFound    = "Le document d'origine indiqué n'existe pas."
	msgOrigineFamille     = "Le document d'origine doit être de type %s (reçu : %s)."
	msgOrigineInterdite   = "Un document de type %s n'admet pas de document d'origine."
	msgRecalculNonFacture = "Le recalcul du restant dû ne s'applique qu'aux factures."
	msgTypeDocInconnu     = "Type de document inconnu : « %s »."
)

// Sous-codes BadRequest des documents.
const (
	ReasonNumeroVide          = "NUMERO_VIDE"
	ReasonTypeFactureInvalide = "TYPE_FACTURE_INVALIDE"
	ReasonRestantSuperieurTTC = "RESTANT_DU_SUPERIEUR_TTC"
	ReasonDatesIncoherentes   = "DATES_INCOHERENTES"
	ReasonTiersObligatoire    = "TIERS_OBLIGATOIRE"
	ReasonTiersIncompatible   = "TIERS_TYPE_INCOMPATIBLE"
	ReasonPDVObligatoire      = "POINT_DE_VENTE_OBLIGATOIRE"
	ReasonEtatIncompatible    = "ETAT_TYPE_INCOMPATIBLE"
	ReasonOrigineInvalide     = "DOCUMENT_ORIGINE_INVALIDE"
	ReasonNonFacture          = "DOCUMENT_NON_FACTURE"
	ReasonTypeDocument        = "TYPE_DOCUMENT_INVALIDE"
)
