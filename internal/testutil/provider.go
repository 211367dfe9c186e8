package testutil

import (
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"git.sr.ht/~jakintosh/warrant/pkg/jwk"
)

// TestProviderAudience is the OAuth client id the test verifier expects.
const TestProviderAudience = "warrant-test.apps.googleusercontent.com"

const testProviderKid = "test-provider-key-1"

// ProviderEnv stands in for the identity provider: a JWKS endpoint backed by
// a local RSA key, plus a signer for crafting ID tokens against that key.
type ProviderEnv struct {
	server *httptest.Server
}

func startProvider(t *testing.T) *ProviderEnv {
	t.Helper()

	public := &getProviderKey().PublicKey
	set := jwk.Set{
		Keys: []jwk.Key{{
			Kty: "RSA",
			Kid: testProviderKid,
			Use: "sig",
			Alg: "RS256",
			N:   base64.RawURLEncoding.EncodeToString(public.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(public.E)).Bytes()),
		}},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(server.Close)

	return &ProviderEnv{server: server}
}

// JWKSURL is the key-set endpoint the verifier should fetch from.
func (p *ProviderEnv) JWKSURL() string {
	return p.server.URL
}

/*
SignIDToken crafts a provider-signed ID token carrying a default set of
valid claims. Entries in overrides replace the defaults, so a test can bend
one claim while the rest stay verifiable.
*/
func (p *ProviderEnv) SignIDToken(
	t *testing.T,
	overrides map[string]any,
) string {
	t.Helper()

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":     "https://accounts.google.com",
		"aud":     TestProviderAudience,
		"sub":     "provider-subject-1",
		"email":   "alice@example.com",
		"name":    "Alice Example",
		"picture": "https://example.com/alice.png",
		"iat":     now.Unix(),
		"exp":     now.Add(time.Hour).Unix(),
	}
	for name, value := range overrides {
		claims[name] = value
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testProviderKid
	signed, err := token.SignedString(getProviderKey())
	if err != nil {
		t.Fatalf("failed to sign provider token: %v", err)
	}
	return signed
}
