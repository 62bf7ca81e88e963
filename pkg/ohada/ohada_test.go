package ohada

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaysValide(t *testing.T) {
	for _, code := range []string{"CMR", "GAB", "TCD", "CAF", "COG", "GNQ", "FRA"} {
		assert.True(t, PaysValide(code), code)
	}
	for _, code := range []string{"", "CM", "cmr", "CMRX", "C1R", "120"} {
		assert.False(t, PaysValide(code), code)
	}
}

func TestDeviseValide(t *testing.T) {
	for _, code := range []string{"XAF", "XOF", "EUR", "USD"} {
		assert.True(t, DeviseValide(code), code)
	}
	for _, code := range []string{"", "xaf", "FCFA", "X4F"} {
		assert.False(t, DeviseValide(code), code)
	}
}

func TestNIUValide(t *testing.T) {
	assert.True(t, NIUValide("M012345678901A"))
	assert.False(t, NIUValide(""))
	assert.False(t, NIUValide("M0123-45"))
	assert.False(t, NIUValide(strings.Repeat("A", 21)))
}

func TestRCCMValide(t *testing.T) {
	assert.True(t, RCCMValide("RC/DLA/2020/B/1234"))
	assert.False(t, RCCMValide(""))
	assert.False(t, RCCMValide(strings.Repeat("R", 51)))
}
