package config_test

import (
	"testing"
	"time"

	"github.com/JaSamMarko/back-office/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkipPrefixes(t *testing.T) {
	t.Run("default set", func(t *testing.T) {
		assert.Equal(t, []string{"adm_", "test_", "temp_"}, config.ParseSkipPrefixes(config.DefaultSkipPrefixes))
	})

	t.Run("trims, lowercases and drops empties", func(t *testing.T) {
		got := config.ParseSkipPrefixes(" ADM_ , ,svc-,")
		assert.Equal(t, []string{"adm_", "svc-"}, got)
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Empty(t, config.ParseSkipPrefixes(""))
	})
}

func TestLoad(t *testing.T) {
	t.Run("requires DB_NAME", func(t *testing.T) {
		t.Setenv("DB_NAME", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("reads ldap settings", func(t *testing.T) {
		t.Setenv("DB_NAME", "hr")
		t.Setenv("AUTH_LDAP_SERVER_URI", "ldaps://dc.example.local")
		t.Setenv("AUTH_LDAP_SEARCH_BASE", "DC=example,DC=local")
		t.Setenv("LDAP_SKIP_PREFIXES", "svc_,Adm_")
		t.Setenv("LDAP_SEARCH_TIMEOUT", "5s")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "ldaps://dc.example.local", cfg.LDAP.ServerURI)
		assert.Equal(t, []string{"svc_", "adm_"}, cfg.LDAP.SkipPrefixes)
		assert.Equal(t, 5*time.Second, cfg.LDAP.SearchTimeout)
		assert.NoError(t, cfg.ValidateLDAP())
	})

	t.Run("missing ldap uri", func(t *testing.T) {
		t.Setenv("DB_NAME", "hr")
		t.Setenv("AUTH_LDAP_SERVER_URI", "")
		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Error(t, cfg.ValidateLDAP())
	})
}
