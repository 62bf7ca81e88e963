package paie

const (
	msgEmployeNotFound    = "Employé non trouvé."
	msgEmployeExists      = "Un employé avec le matricule « %s » existe déjà pour cette entreprise."
	msgPeriodeNotFound    = "Période de paie non trouvée."
	msgPeriodeExists      = "La période de paie %02d/%d existe déjà pour cette entreprise."
	msgPeriodeDates       = "La date de fin doit être postérieure à la date de début."
	msgPeriodeCloturee    = "La période de paie est clôturée ; modification impossible."
	msgPeriodeDejaClot    = "La période de paie est déjà clôturée."
	msgBulletinNotFound   = "Bulletin de paie non trouvé."
	msgBulletinExists     = "Un bulletin existe déjà pour cet employé sur cette période."
	msgTypeLigne          = "Le type de ligne doit être : gain ou retenue (reçu : « %s »)."
	msgNetNegatif         = "Le net à payer ne peut pas être négatif (gains %s, retenues %s)."
	msgBulletinNonModif   = "Le bulletin est au statut « %s » ; seul un bulletin brouillon est modifiable."
	msgTransitionBulletin = "Transition impossible : le bulletin est au statut « %s » (attendu : %s)."
)

// Sous-codes BadRequest de la paie.
const (
	ReasonPeriodeDates       = "PERIODE_DATES_INCOHERENTES"
	ReasonPeriodeCloturee    = "PERIODE_PAIE_CLOTUREE"
	ReasonTypeLigneInvalide  = "TYPE_LIGNE_BULLETIN_INVALIDE"
	ReasonNetNegatif         = "NET_A_PAYER_NEGATIF"
	ReasonBulletinNonModif   = "BULLETIN_NON_MODIFIABLE"
	ReasonTransitionInvalide = "BULLETIN_TRANSITION_INVALIDE"
)
