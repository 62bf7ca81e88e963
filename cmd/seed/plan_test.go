package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/gesco-erp/gesco-api/internal/domain/entity"
)

func TestLirePlan_Utf8AvecEnTete(t *testing.T) {
	src := "numero;libelle;sens\n101;Capital social;\n521;Banques;debit\n# commentaire\n701;Ventes de marchandises\n"

	got, err := lirePlan(strings.NewReader(src), "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ligneCompte{Numero: "101", Libelle: "Capital social", Sens: entity.SensCredit}, got[0])
	assert.Equal(t, entity.SensDebit, got[1].Sens)
	assert.Equal(t, entity.SensCredit, got[2].Sens)
}

func TestLirePlan_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().String("601;Achats de marchandises stockées\n")
	require.NoError(t, err)

	got, err := lirePlan(bytes.NewReader([]byte(enc)), "latin1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Achats de marchandises stockées", got[0].Libelle)
	assert.Equal(t, entity.SensDebit, got[0].Sens)
}

func TestLirePlan_EncodageInconnu(t *testing.T) {
	_, err := lirePlan(strings.NewReader(""), "ebcdic")
	assert.Error(t, err)
}
