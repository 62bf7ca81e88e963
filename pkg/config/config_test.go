package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_ValeursParDefaut(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"JWT_SECRET": secret}))
	require.NoError(t, err)

	assert.Equal(t, "Gesco", cfg.App.Name)
	assert.Equal(t, 60*time.Minute, cfg.JWT.AccessTTL())
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL())
	assert.Equal(t, 12, cfg.Security.BcryptRounds)
	assert.Equal(t, 60, cfg.Security.RateLimitPerMinute)
	assert.Equal(t, "CMR", cfg.Metier.PaysDefaut)
	assert.Equal(t, "XAF", cfg.Metier.DeviseDefaut)
	assert.Equal(t, 10, cfg.Metier.ConservationDocumentsAnnees)
	assert.True(t, cfg.Metier.ReglementImputationAuto)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
}

func TestFromViper_SurchargeDepuisEnv(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"JWT_SECRET":                  secret,
		"ACCESS_TOKEN_EXPIRE_MINUTES": "15",
		"BCRYPT_ROUNDS":               "4",
		"RATE_LIMIT_PER_MINUTE":       "0",
		"LOG_FORMAT":                  "TEXT",
		"REGLEMENT_IMPUTATION_AUTO":   "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL())
	assert.Equal(t, 4, cfg.Security.BcryptRounds)
	assert.Equal(t, 0, cfg.Security.RateLimitPerMinute)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Metier.ReglementImputationAuto)
}

func TestFromViper_SecretTropCourt(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"JWT_SECRET": "court"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestFromViper_BcryptHorsBornes(t *testing.T) {
	_, err := fromViper(newViper(map[string]any{"JWT_SECRET": secret, "BCRYPT_ROUNDS": 40}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_ROUNDS")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "gesco", Password: "p@ss:word", DBName: "gesco", SSLMode: "disable"}
	assert.Equal(t, "postgres://gesco:p%40ss%3Aword@db:5432/gesco?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://u:p@h/d"
	assert.Equal(t, "postgres://u:p@h/d", c.ConnectionString())
}
