// Package ohada regroupe les règles de format réglementaires (OHADA / CEMAC / DGI Cameroun)
// partagées par les modules : codes pays ISO 3166-1 alpha-3, devises ISO 4217, NIU et RCCM.
package ohada

import (
	"regexp"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Valeurs par défaut (Cameroun, zone CEMAC).
const (
	PaysDefaut                  = "CMR"
	DeviseDefaut                = "XAF"
	ConservationDocumentsAnnees = 10
	NIUMaxLen                   = 20
	RCCMMaxLen                  = 50
)

// TauxTVAIndicatifs taux usuels proposés à la saisie (pourcentages).
var TauxTVAIndicatifs = []decimal.Decimal{
	decimal.RequireFromString("19.25"),
	decimal.RequireFromString("0"),
}

var (
	alpha3   = regexp.MustCompile(`^[A-Z]{3}$`)
	niuRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,20}$`)
)

// PaysValide vrai si code est un code pays ISO 3166-1 alpha-3 connu, en majuscules.
func PaysValide(code string) bool {
	if !alpha3.MatchString(code) {
		return false
	}
	r, err := language.ParseRegion(code)
	if err != nil {
		return false
	}
	return r.IsCountry() && r.ISO3() == code
}

// DeviseValide vrai si code est un code devise ISO 4217 connu, en majuscules.
func DeviseValide(code string) bool {
	if !alpha3.MatchString(code) {
		return false
	}
	u, err := currency.ParseISO(code)
	if err != nil {
		return false
	}
	return u.String() == code
}

// NIUValide NIU DGI : 1 à 20 caractères alphanumériques.
func NIUValide(niu string) bool {
	return niuRegex.MatchString(niu)
}

// RCCMValide RCCM : non vide, au plus 50 caractères.
func RCCMValide(rccm string) bool {
	n := len([]rune(rccm))
	return n > 0 && n <= RCCMMaxLen
}
