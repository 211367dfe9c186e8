package main

import (
	"log"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/api"
	"git.sr.ht/~jakintosh/warrant/internal/config"
	"git.sr.ht/~jakintosh/warrant/internal/database"
	"git.sr.ht/~jakintosh/warrant/internal/keystore"
	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/pkg/bearer"
	"git.sr.ht/~jakintosh/warrant/pkg/jwk"
	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v\n", err)
	}

	db := database.NewSQLiteStore(cfg.DBPath)
	legacyPrivate, legacyPublic := loadLegacyKeys(cfg)
	providerKeys := jwk.NewCache(jwk.CacheConfig{
		URL:          cfg.ProviderJWKSURL,
		TTL:          cfg.ProviderKeyTTL,
		FetchTimeout: cfg.ProviderFetchTimeout,
	})

	issuer := tokens.NewIssuer([]byte(cfg.SessionSecret), legacyPrivate)
	verifier := tokens.NewVerifier(tokens.VerifierConfig{
		SessionSecret:    []byte(cfg.SessionSecret),
		LegacyKeys:       legacyPublic,
		ProviderKeys:     providerKeys,
		ProviderAudience: cfg.ProviderAudience,
	})

	svc := service.New(db.UserStore(), issuer, verifier)
	auth := bearer.New(verifier)
	a := api.New(svc, auth)

	log.Printf("warrant listening on %s\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, a.Router()))
}

// loadLegacyKeys builds the legacy key sources. With no private key path
// configured both sources are nil and legacy operations report
// tokens.ErrKeyUnavailable.
func loadLegacyKeys(
	cfg *config.Config,
) (
	tokens.PrivateKeySource,
	tokens.PublicKeySource,
) {
	if cfg.LegacyPrivateKeyPath == "" {
		return nil, nil
	}

	ks, err := keystore.New(keystore.Config{
		PrivateKeyPath: cfg.LegacyPrivateKeyPath,
		PublicKeyPath:  cfg.LegacyPublicKeyPath,
		Watch:          cfg.WatchKeys,
	})
	if err != nil {
		log.Fatalf("failed to open keystore: %v\n", err)
	}
	return ks, ks
}
