package rapports

const (
	msgDatesRequises = "Les paramètres date_debut et date_fin sont obligatoires."
	msgDatesPeriode  = "La date de fin doit être postérieure ou égale à la date de début."
)

// Sous-codes BadRequest des rapports.
const (
	ReasonDatesRequises = "DATES_REQUISES"
	ReasonPeriodeDates  = "PERIODE_DATES_INCOHERENTES"
)
