package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "TND", cfg.DefaultCurrency)
	assert.Equal(t, "Votre Entreprise", cfg.CompanyName)
	assert.Equal(t, "owner@eventmanagement.com", cfg.OwnerEmail)
	assert.True(t, cfg.DBAutoMigrate)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DEFAULT_CURRENCY", "EUR")
	t.Setenv("JWT_EXPIRATION_HOURS", "12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "EUR", cfg.DefaultCurrency)
	assert.Equal(t, 12, cfg.JWTExpirationHours)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{FrontendURL: " http://a.test , ,http://b.test"}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins())
}
