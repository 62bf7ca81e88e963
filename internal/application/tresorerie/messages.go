package tresorerie

const (
	msgCompteNotFound     = "Compte de trésorerie non trouvé."
	msgCompteExists       = "Un compte de trésorerie avec le code « %s » existe déjà pour cette entreprise."
	msgModeExists         = "Un mode de paiement avec le code « %s » existe déjà pour cette entreprise."
	msgTypeCompte         = "Le type de compte doit être : caisse, banque ou mobile_money (reçu : « %s »)."
	msgReglementNotFound  = "Règlement non trouvé."
	msgTypeReglement      = "Le type de règlement doit être : client ou fournisseur (reçu : « %s »)."
	msgFactureClient      = "Un règlement client exige facture_id et exclut facture_fournisseur_id."
	msgFactureFournisseur = "Un règlement fournisseur exige facture_fournisseur_id et exclut facture_id."
	msgFactureNotFound    = "La facture indiquée n'existe pas."
	msgFactureFournNF     = "La facture fournisseur indiquée n'existe pas."
	msgTiersFacture       = "Le tiers du règlement ne correspond pas au tiers de la facture."
	msgSuperieurRestant   = "Le montant du règlement (%s) dépasse le restant dû de la facture (%s)."
	msgFactureNonPayable  = "Une facture de type « %s » ne peut pas recevoir de règlement."
)

// Sous-codes BadRequest de la trésorerie.
const (
	ReasonTypeCompteInvalide    = "TYPE_COMPTE_INVALIDE"
	ReasonTypeReglementInvalide = "TYPE_REGLEMENT_INVALIDE"
	ReasonFactureIncoherente    = "REGLEMENT_FACTURE_INCOHERENTE"
	ReasonTiersIncoherent       = "REGLEMENT_TIERS_INCOHERENT"
	ReasonSuperieurRestantDu    = "REGLEMENT_SUPERIEUR_RESTANT_DU"
	ReasonFactureNonPayable     = "FACTURE_NON_PAYABLE"
)
