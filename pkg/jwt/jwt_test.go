package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests-0123456789"

var sujet = Subject{UserID: 4, EntrepriseID: 1, RoleID: 2}

func TestGenerateParse_AllerRetour(t *testing.T) {
	iss, err := Generate(testSecret, sujet, TypeAccess, "gesco-test", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, iss.ID)

	claims, err := Parse(testSecret, iss.Token, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, sujet, claims.Identity())
	assert.Equal(t, iss.ID, claims.ID)
	assert.Equal(t, "4", claims.RegisteredClaims.Subject)
}

func TestParse_TypeInattendu(t *testing.T) {
	iss, err := Generate(testSecret, sujet, TypeRefresh, "gesco-test", time.Hour)
	require.NoError(t, err)

	_, err = Parse(testSecret, iss.Token, TypeAccess)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestParse_Expire(t *testing.T) {
	iss, err := Generate(testSecret, sujet, TypeAccess, "gesco-test", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, iss.Token, TypeAccess)
	assert.Error(t, err)
}

func TestParse_MauvaisSecret(t *testing.T) {
	iss, err := Generate(testSecret, sujet, TypeAccess, "gesco-test", time.Hour)
	require.NoError(t, err)

	_, err = Parse("un-autre-secret-de-trente-deux-caracteres", iss.Token, TypeAccess)
	assert.Error(t, err)
}

func TestGenerate_SecretVide(t *testing.T) {
	_, err := Generate("", sujet, TypeAccess, "gesco-test", time.Hour)
	assert.Error(t, err)
}
