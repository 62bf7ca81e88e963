package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gesco-erp/gesco-api/internal/application/dto"
	"github.com/gesco-erp/gesco-api/internal/domain"
)

type ligne struct {
	Montant decimal.Decimal `json:"montant" validate:"dgte0,dprec=2"`
}

type charge struct {
	Code   string               `json:"code" validate:"required,notblank,max=5"`
	Pays   *string              `json:"pays" validate:"omitempty,pays"`
	Devise string               `json:"devise" validate:"omitempty,devise"`
	Date   dto.Date             `json:"date" validate:"required"`
	Qte    decimal.Decimal      `json:"quantite" validate:"dgt0"`
	Lignes []ligne              `json:"lignes" validate:"dive"`
	Nom    dto.Optional[string] `json:"nom" validate:"omitempty,max=3"`
}

func valide() charge {
	pays := "CMR"
	return charge{
		Code:   "A1",
		Pays:   &pays,
		Devise: "XAF",
		Date:   dto.MustDate("2026-02-01"),
		Qte:    decimal.RequireFromString("1.5"),
		Lignes: []ligne{{Montant: decimal.RequireFromString("100.00")}},
	}
}

func reason(t *testing.T, err error) *domain.Error {
	t.Helper()
	require.Error(t, err)
	de, ok := domain.As(err)
	require.True(t, ok)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Equal(t, ReasonValidation, de.Reason)
	return de
}

func TestStruct_Valide(t *testing.T) {
	assert.NoError(t, Struct(valide()))
}

func TestStruct_ChampObligatoire(t *testing.T) {
	c := valide()
	c.Code = "   "
	de := reason(t, Struct(c))
	assert.Contains(t, de.Message, "« code »")
}

func TestStruct_DateAbsente(t *testing.T) {
	c := valide()
	c.Date = dto.Date{}
	de := reason(t, Struct(c))
	assert.Contains(t, de.Message, "« date » est obligatoire")
}

func TestStruct_PrecisionDecimale(t *testing.T) {
	c := valide()
	c.Lignes[0].Montant = decimal.RequireFromString("10.005")
	de := reason(t, Struct(c))
	assert.Contains(t, de.Message, "lignes[0].montant")
	assert.Contains(t, de.Message, "2 décimales")
}

func TestStruct_DecimalNegatif(t *testing.T) {
	c := valide()
	c.Lignes[0].Montant = decimal.RequireFromString("-1")
	reason(t, Struct(c))
}

func TestStruct_QuantiteNulle(t *testing.T) {
	c := valide()
	c.Qte = decimal.Zero
	de := reason(t, Struct(c))
	assert.Contains(t, de.Message, "strictement positif")
}

func TestStruct_PaysEtDevise(t *testing.T) {
	c := valide()
	bad := "CM"
	c.Pays = &bad
	de := reason(t, Struct(c))
	assert.Contains(t, de.Message, "ISO 3166-1")

	c = valide()
	c.Devise = "FCFA"
	de = reason(t, Struct(c))
	assert.Contains(t, de.Message, "ISO 4217")
}

func TestStruct_Optional(t *testing.T) {
	c := valide()
	c.Nom = dto.Some("abcd")
	reason(t, Struct(c))

	c.Nom = dto.Null[string]()
	assert.NoError(t, Struct(c))

	c.Nom = dto.Optional[string]{}
	assert.NoError(t, Struct(c))
}
