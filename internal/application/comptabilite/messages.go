package comptabilite

// Messages d'erreur du module (paramètres via fmt).
const (
	msgCompteNotFound       = "Le compte comptable indiqué n'existe pas."
	msgJournalNotFound      = "Le journal comptable indiqué n'existe pas."
	msgPeriodeNotFound      = "La période comptable indiquée n'existe pas."
	msgEcritureNotFound     = "L'écriture comptable indiquée n'existe pas."
	msgCompteNumeroExists   = "Un compte avec le numéro « %s » existe déjà pour cette entreprise."
	msgJournalCodeExists    = "Un journal avec le code « %s » existe déjà pour cette entreprise."
	msgSensInvalide         = "Le sens normal doit être : debit ou credit (reçu : « %s »)."
	msgPeriodeDates         = "La date de fin doit être postérieure à la date de début."
	msgPeriodeCloturee      = "Impossible d'ajouter une écriture : la période est clôturée."
	msgPeriodeClotureeModif = "La période est clôturée ; modification impossible."
	msgPeriodeDejaCloturee  = "La période est déjà clôturée."
	msgPeriodeHorsPeriode   = "La date d'écriture doit être dans l'intervalle de la période."
	msgPeriodeCouvrante     = "Impossible d'ajouter une écriture : la date %s tombe dans la période clôturée « %s »."
	msgLignesMin            = "Une écriture doit comporter au moins deux lignes."
	msgNonEquilibree        = "L'écriture n'est pas équilibrée : total débit doit être égal au total crédit."
	msgNumeroPieceVide      = "Le numéro de pièce ne peut pas être vide."
	msgMontantZero          = "Une écriture doit avoir un montant total (débit/crédit) strictement positif."
)

// Sous-codes stables des erreurs BadRequest.
const (
	ReasonSensInvalide    = "SENS_COMPTE_INVALIDE"
	ReasonPeriodeDates    = "PERIODE_DATES_INCOHERENTES"
	ReasonPeriodeCloturee = "PERIODE_CLOTUREE"
	ReasonHorsPeriode     = "DATE_HORS_PERIODE"
	ReasonLignesMin       = "ECRITURE_LIGNES_MIN"
	ReasonNonEquilibree   = "ECRITURE_NON_EQUILIBREE"
	ReasonNumeroPieceVide = "NUMERO_PIECE_VIDE"
	ReasonMontantZero     = "ECRITURE_MONTANT_ZERO"
)
