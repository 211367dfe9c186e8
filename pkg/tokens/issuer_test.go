package tokens_test

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

// staticKeys serves a fixed RSA key pair from memory.
type staticKeys struct {
	key *rsa.PrivateKey
}

func (s staticKeys) PrivateKey() (*rsa.PrivateKey, error) { return s.key, nil }
func (s staticKeys) PublicKey() (*rsa.PublicKey, error)   { return &s.key.PublicKey, nil }

// unavailableKeys simulates a source whose key file is gone.
type unavailableKeys struct{}

func (unavailableKeys) PrivateKey() (*rsa.PrivateKey, error) {
	return nil, fmt.Errorf("%w: open /keys/legacy.pem: no such file", tokens.ErrKeyUnavailable)
}
func (unavailableKeys) PublicKey() (*rsa.PublicKey, error) {
	return nil, fmt.Errorf("%w: open /keys/legacy.pub.pem: no such file", tokens.ErrKeyUnavailable)
}

func newTestIssuer(t *testing.T) (*tokens.Issuer, *tokens.Verifier) {
	t.Helper()
	keys := staticKeys{key: getSharedRSAKey(t)}
	issuer := tokens.NewIssuer(testSecret, keys)
	verifier := tokens.NewVerifier(tokens.VerifierConfig{
		SessionSecret: testSecret,
		LegacyKeys:    keys,
	})
	return issuer, verifier
}

// Tests for session issuance

func TestIssueSession_RoundTrip(t *testing.T) {
	t.Parallel()
	issuer, verifier := newTestIssuer(t)

	token, err := issuer.IssueSession("user-123", "who@example.com")
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	claims, err := verifier.DecodeSession(token, false)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}

	if claims.Subject != "user-123" {
		t.Errorf("Subject = %q, want user-123", claims.Subject)
	}
	if claims.Email != "who@example.com" {
		t.Errorf("Email = %q, want who@example.com", claims.Email)
	}
	if claims.Issuer != "warrant" {
		t.Errorf("Issuer = %q, want warrant", claims.Issuer)
	}
	if claims.Audience != "warrant-web" {
		t.Errorf("Audience = %q, want warrant-web", claims.Audience)
	}
}

func TestIssueSession_Lifetime(t *testing.T) {
	t.Parallel()
	issuer, verifier := newTestIssuer(t)

	before := time.Now().Unix()
	token, err := issuer.IssueSession("user-123", "who@example.com")
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	after := time.Now().Unix()

	claims, err := verifier.DecodeSession(token, false)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}

	// exp and iat come from the same instant: exactly seven days apart
	const week = 7 * 24 * 3600
	if got := claims.Expiration - claims.IssuedAt; got != week {
		t.Errorf("exp-iat = %d, want %d", got, week)
	}
	if claims.IssuedAt < before || claims.IssuedAt > after {
		t.Errorf("iat = %d outside [%d, %d]", claims.IssuedAt, before, after)
	}
}

func TestIssueSession_DistinctSubjects(t *testing.T) {
	t.Parallel()
	issuer, verifier := newTestIssuer(t)

	first, err := issuer.IssueSession("user-a", "a@example.com")
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	second, err := issuer.IssueSession("user-b", "b@example.com")
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}

	if first == second {
		t.Fatal("different subjects produced identical tokens")
	}

	claimsA, err := verifier.DecodeSession(first, false)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}
	claimsB, err := verifier.DecodeSession(second, false)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}
	if claimsA.Subject != "user-a" || claimsB.Subject != "user-b" {
		t.Errorf("subjects = %q, %q; want user-a, user-b", claimsA.Subject, claimsB.Subject)
	}
}

// Tests for legacy pair issuance

func TestIssueLegacyPair(t *testing.T) {
	t.Parallel()
	issuer, verifier := newTestIssuer(t)

	access, refresh, err := issuer.IssueLegacyPair("user-123", true)
	if err != nil {
		t.Fatalf("IssueLegacyPair failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected both tokens when includeRefresh is set")
	}

	accessClaims, err := verifier.DecodeLegacy(access, false)
	if err != nil {
		t.Fatalf("DecodeLegacy(access) failed: %v", err)
	}
	refreshClaims, err := verifier.DecodeLegacy(refresh, false)
	if err != nil {
		t.Fatalf("DecodeLegacy(refresh) failed: %v", err)
	}

	// the legacy wire format names the subject user_id
	if accessClaims.UserID != "user-123" {
		t.Errorf("access UserID = %q, want user-123", accessClaims.UserID)
	}
	if refreshClaims.UserID != "user-123" {
		t.Errorf("refresh UserID = %q, want user-123", refreshClaims.UserID)
	}
	if accessClaims.Issuer != "warrant-auth" {
		t.Errorf("Issuer = %q, want warrant-auth", accessClaims.Issuer)
	}

	// refresh outlives access
	if refreshClaims.Expiration <= accessClaims.Expiration {
		t.Error("refresh token does not outlive access token")
	}
	if got := accessClaims.Expiration - accessClaims.IssuedAt; got != 3600 {
		t.Errorf("access exp-iat = %d, want 3600", got)
	}
	if got := refreshClaims.Expiration - refreshClaims.IssuedAt; got != 30*24*3600 {
		t.Errorf("refresh exp-iat = %d, want %d", got, 30*24*3600)
	}
}

func TestIssueLegacyPair_NoRefresh(t *testing.T) {
	t.Parallel()
	issuer, _ := newTestIssuer(t)

	access, refresh, err := issuer.IssueLegacyPair("user-123", false)
	if err != nil {
		t.Fatalf("IssueLegacyPair failed: %v", err)
	}
	if access == "" {
		t.Error("expected access token")
	}
	// skipped, not failed: the empty string is the contract
	if refresh != "" {
		t.Errorf("refresh = %q, want empty", refresh)
	}
}

func TestIssueLegacyPair_KeyUnavailable(t *testing.T) {
	t.Parallel()
	issuer := tokens.NewIssuer(testSecret, unavailableKeys{})

	access, refresh, err := issuer.IssueLegacyPair("user-123", true)
	if !errors.Is(err, tokens.ErrKeyUnavailable) {
		t.Errorf("err = %v, want ErrKeyUnavailable", err)
	}
	if access != "" || refresh != "" {
		t.Error("tokens returned alongside error")
	}
}

func TestIssueLegacyPair_NoSourceConfigured(t *testing.T) {
	t.Parallel()
	issuer := tokens.NewIssuer(testSecret, nil)

	_, _, err := issuer.IssueLegacyPair("user-123", false)
	if !errors.Is(err, tokens.ErrKeyUnavailable) {
		t.Errorf("err = %v, want ErrKeyUnavailable", err)
	}
}
