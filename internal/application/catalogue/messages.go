package catalogue

const (
	msgProduitNotFound   = "Produit non trouvé."
	msgProduitCodeExists = "Un produit avec le code « %s » existe déjà pour cette entreprise."
	msgTypeInvalide      = "Le type de produit doit être : produit ou service (reçu : « %s »)."
	msgSeuils            = "Le seuil d'alerte minimum ne peut pas dépasser le seuil maximum."

	msgVarianteNotFound   = "Variante de produit non trouvée."
	msgVarianteCodeExists = "Une variante avec le code « %s » existe déjà pour ce produit."

	msgFamilleNotFound   = "Famille de produits non trouvée."
	msgFamilleCodeExists = "Une famille avec le code « %s » existe déjà pour cette entreprise."
	msgFamilleCycle      = "La famille parente ne peut pas être la famille elle-même ni l'une de ses descendantes."
	msgFamilleEnfants    = "La famille possède des sous-familles ; supprimez-les ou déplacez-les d'abord."
)

// Sous-codes BadRequest du catalogue.
const (
	ReasonTypeProduitInvalide = "TYPE_PRODUIT_INVALIDE"
	ReasonSeuilsIncoherents   = "SEUILS_INCOHERENTS"
	ReasonFamilleCycle        = "FAMILLE_CYCLE"
	ReasonFamilleEnfants      = "FAMILLE_A_DES_ENFANTS"
)
