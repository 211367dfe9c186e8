// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	// Addr is the HTTP listen address. ENV: WARRANT_ADDR
	Addr string `env:"WARRANT_ADDR,default=:8080"`

	// DBPath locates the SQLite database file. ENV: WARRANT_DB_PATH
	DBPath string `env:"WARRANT_DB_PATH,required"`

	// SessionSecret signs and verifies session tokens.
	// ENV: WARRANT_SESSION_SECRET
	SessionSecret string `env:"WARRANT_SESSION_SECRET,required"`

	// LegacyPrivateKeyPath is the PEM file for signing legacy tokens. Leave
	// unset to run without legacy issuance. ENV: WARRANT_LEGACY_PRIVATE_KEY
	LegacyPrivateKeyPath string `env:"WARRANT_LEGACY_PRIVATE_KEY"`

	// LegacyPublicKeyPath is the PEM file for verifying legacy tokens. When
	// unset the public key is derived from the private key.
	// ENV: WARRANT_LEGACY_PUBLIC_KEY
	LegacyPublicKeyPath string `env:"WARRANT_LEGACY_PUBLIC_KEY"`

	// WatchKeys reloads legacy key files when they change on disk.
	// ENV: WARRANT_WATCH_KEYS
	WatchKeys bool `env:"WARRANT_WATCH_KEYS,default=false"`

	// ProviderJWKSURL is the provider's key set endpoint.
	// ENV: WARRANT_PROVIDER_JWKS_URL
	ProviderJWKSURL string `env:"WARRANT_PROVIDER_JWKS_URL,default=https://www.googleapis.com/oauth2/v3/certs"`

	// ProviderAudience is the OAuth client ID expected in provider tokens.
	// Empty skips the audience check. ENV: WARRANT_PROVIDER_AUDIENCE
	ProviderAudience string `env:"WARRANT_PROVIDER_AUDIENCE"`

	// ProviderKeyTTL bounds how long fetched provider keys are reused.
	// ENV: WARRANT_PROVIDER_KEY_TTL
	ProviderKeyTTL time.Duration `env:"WARRANT_PROVIDER_KEY_TTL,default=1h"`

	// ProviderFetchTimeout bounds a single key set fetch.
	// ENV: WARRANT_PROVIDER_FETCH_TIMEOUT
	ProviderFetchTimeout time.Duration `env:"WARRANT_PROVIDER_FETCH_TIMEOUT,default=5s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}
	return &cfg, nil
}
