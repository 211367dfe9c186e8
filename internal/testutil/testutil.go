// Package testutil provides test environment setup and utilities for internal package tests.
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/api"
	"git.sr.ht/~jakintosh/warrant/internal/database"
	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/pkg/bearer"
	"git.sr.ht/~jakintosh/warrant/pkg/jwk"
	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

var testSessionSecret = []byte("testutil-session-secret")

// TestEnv provides all dependencies needed for testing
type TestEnv struct {
	DB       *database.SQLiteStore
	Service  *service.Service
	Issuer   *tokens.Issuer
	Verifier *tokens.Verifier
	Auth     *bearer.Middleware
	Provider *ProviderEnv
	Router   http.Handler
}

// SetupTestEnv creates an isolated test environment with an in-memory SQLite
// store and a fake identity provider.
func SetupTestEnv(
	t *testing.T,
) *TestEnv {
	t.Helper()

	// create in-memory SQLite database
	db := database.NewSQLiteStore(":memory:")
	t.Cleanup(func() { _ = db.Close() })

	// fake provider with a local JWKS endpoint
	provider := startProvider(t)
	providerKeys := jwk.NewCache(jwk.CacheConfig{
		URL: provider.JWKSURL(),
		TTL: time.Hour,
	})

	// issuer/verifier around cached test keys
	legacy := staticKeys{key: getLegacyKey()}
	issuer := tokens.NewIssuer(testSessionSecret, legacy)
	verifier := tokens.NewVerifier(tokens.VerifierConfig{
		SessionSecret:    testSessionSecret,
		LegacyKeys:       legacy,
		ProviderKeys:     providerKeys,
		ProviderAudience: TestProviderAudience,
	})

	svc := service.New(db.UserStore(), issuer, verifier)

	return &TestEnv{
		DB:       db,
		Service:  svc,
		Issuer:   issuer,
		Verifier: verifier,
		Auth:     bearer.New(verifier),
		Provider: provider,
	}
}

// SetupTestEnvWithRouter creates TestEnv and configures the API router
func SetupTestEnvWithRouter(
	t *testing.T,
) *TestEnv {
	t.Helper()
	env := SetupTestEnv(t)
	a := api.New(env.Service, env.Auth)
	env.Router = a.Router()
	return env
}

// SignInTestUser runs the provider sign-in flow for the given subject,
// creating the user row, and returns the sign-in result.
func (env *TestEnv) SignInTestUser(
	t *testing.T,
	subject string,
	email string,
) *service.SignInResult {
	t.Helper()
	token := env.Provider.SignIDToken(t, map[string]any{
		"sub":   subject,
		"email": email,
	})
	result, err := env.Service.SignIn(context.Background(), token)
	if err != nil {
		t.Fatalf("failed to sign in test user: %v", err)
	}
	return result
}

// IssueTestSession mints a session token outside the sign-in flow.
func (env *TestEnv) IssueTestSession(
	t *testing.T,
	subject string,
	email string,
) string {
	t.Helper()
	token, err := env.Issuer.IssueSession(subject, email)
	if err != nil {
		t.Fatalf("failed to issue test session: %v", err)
	}
	return token
}

// SignLegacyToken crafts a legacy-scheme token directly, letting tests
// control the validity window.
func (env *TestEnv) SignLegacyToken(
	t *testing.T,
	userID string,
	issuedAt time.Time,
	expiration time.Time,
) string {
	t.Helper()
	token, err := tokens.Sign(tokens.RS256, getLegacyKey(), tokens.LegacyClaims{
		Issuer:     "warrant-auth",
		IssuedAt:   issuedAt.Unix(),
		Expiration: expiration.Unix(),
		UserID:     userID,
	})
	if err != nil {
		t.Fatalf("failed to sign legacy token: %v", err)
	}
	return token
}
