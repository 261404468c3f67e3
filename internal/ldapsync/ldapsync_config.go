package ldapsync

import (
	"time"

	"github.com/JaSamMarko/back-office/internal/config"
)

const defaultSearchTimeout = 30 * time.Second

// Config is everything one reconciliation pass needs besides its
// collaborators.
type Config struct {
	// SkipPrefixes are matched against the lower-cased account name.
	SkipPrefixes []string
	// NewOnly skips accounts that already exist before any attribute
	// beyond the account name is decoded.
	NewOnly       bool
	SearchTimeout time.Duration
}

// NewConfig builds the importer config from the process LDAP settings.
func NewConfig(cfg config.LDAPConfig, newOnly bool) Config {
	prefixes := cfg.SkipPrefixes
	if prefixes == nil {
		prefixes = config.ParseSkipPrefixes(config.DefaultSkipPrefixes)
	}
	return Config{
		SkipPrefixes:  prefixes,
		NewOnly:       newOnly,
		SearchTimeout: cfg.SearchTimeout,
	}
}

func (c Config) searchTimeout() time.Duration {
	if c.SearchTimeout <= 0 {
		return defaultSearchTimeout
	}
	return c.SearchTimeout
}
