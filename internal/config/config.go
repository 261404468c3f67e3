package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultSkipPrefixes covers administrative, test and temporary accounts.
const DefaultSkipPrefixes = "adm_,test_,temp_"

type Config struct {
	Port string

	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	LDAP      LDAPConfig
	JWTSecret string
}

type DBConfig struct {
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	MaxRetries int
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker string
}

type LDAPConfig struct {
	ServerURI     string
	BindDN        string
	BindPassword  string
	SearchBase    string
	SearchTimeout time.Duration
	SkipPrefixes  []string
}

// Load reads the process environment once. Callers pass the returned value
// down explicitly; nothing else in the module reads the environment.
func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:       getEnv("DB_HOST", "localhost"),
			User:       getEnv("DB_USER", ""),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", ""),
			Port:       getEnv("DB_PORT", "5432"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			MaxRetries: getEnvAsInt("DB_MAX_RETRIES", 5),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Kafka: KafkaConfig{
			Broker: getEnv("KAFKA_BROKER", ""),
		},
		LDAP: LDAPConfig{
			ServerURI:     getEnv("AUTH_LDAP_SERVER_URI", ""),
			BindDN:        getEnv("AUTH_LDAP_BIND_DN", ""),
			BindPassword:  getEnv("AUTH_LDAP_BIND_PASSWORD", ""),
			SearchBase:    getEnv("AUTH_LDAP_SEARCH_BASE", ""),
			SearchTimeout: getEnvAsDuration("LDAP_SEARCH_TIMEOUT", 30*time.Second),
			SkipPrefixes:  ParseSkipPrefixes(getEnv("LDAP_SKIP_PREFIXES", DefaultSkipPrefixes)),
		},
		JWTSecret: getEnv("JWT_SECRET", ""),
	}

	if cfg.DB.Name == "" {
		return Config{}, fmt.Errorf("DB_NAME required")
	}

	return cfg, nil
}

// ValidateLDAP reports missing directory settings. Only the importer
// needs them, so Load does not enforce them.
func (c Config) ValidateLDAP() error {
	if c.LDAP.ServerURI == "" {
		return fmt.Errorf("AUTH_LDAP_SERVER_URI required")
	}
	if c.LDAP.SearchBase == "" {
		return fmt.Errorf("AUTH_LDAP_SEARCH_BASE required")
	}
	return nil
}

// ParseSkipPrefixes splits a comma separated list, trims and lower-cases
// each entry and drops empty ones.
func ParseSkipPrefixes(raw string) []string {
	prefixes := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(name string, defaultVal int) int {
	if val, err := strconv.Atoi(getEnv(name, "")); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	if val, err := time.ParseDuration(getEnv(name, "")); err == nil && val > 0 {
		return val
	}
	return defaultVal
}
