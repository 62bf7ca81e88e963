package stock

const (
	msgProduitNotFound    = "Le produit indiqué n'existe pas."
	msgVarianteNotFound   = "La variante indiquée n'existe pas."
	msgStockNotFound      = "Stock non trouvé."
	msgMouvementNotFound  = "Mouvement de stock non trouvé."
	msgStockNonGere       = "Le produit n'est pas configuré pour la gestion de stock (gerer_stock = false)."
	msgVarianteNonSeparee = "La variante n'a pas de stock séparé pour ce produit."
	msgQuantiteInsuff     = "Quantité en stock insuffisante (dépôt %d, produit %d)."
	msgQuantiteNulle      = "La quantité doit être strictement positive pour un mouvement de type %s."
	msgTypeInvalide       = "Le type de mouvement doit être : entree, sortie, transfert ou inventaire (reçu : « %s »)."
	msgReferenceInvalide  = "Le type de référence doit être : reception, bon_livraison, manuel, inventaire ou transfert (reçu : « %s »)."
	msgDestObligatoire    = "Le dépôt destination est obligatoire pour un mouvement de type transfert."
	msgMemeDepot          = "Le dépôt destination doit être différent du dépôt origine."
	msgDestInattendu      = "Le dépôt destination n'est admis que pour un mouvement de type transfert."
)

// Sous-codes BadRequest du moteur de stock.
const (
	ReasonQuantiteInsuffisante = "QUANTITE_INSUFFISANTE"
	ReasonQuantiteInvalide     = "QUANTITE_INVALIDE"
	ReasonTypeInvalide         = "TYPE_MOUVEMENT_INVALIDE"
	ReasonReferenceInvalide    = "REFERENCE_TYPE_INVALIDE"
	ReasonStockNonGere         = "PRODUIT_STOCK_NON_GERE"
	ReasonVarianteNonSeparee   = "VARIANTE_STOCK_NON_SEPARE"
	ReasonDestObligatoire      = "TRANSFERT_DEPOT_DEST_OBLIGATOIRE"
	ReasonMemeDepot            = "TRANSFERT_MEME_DEPOT"
	ReasonDestInattendu        = "DEPOT_DEST_INATTENDU"
)
