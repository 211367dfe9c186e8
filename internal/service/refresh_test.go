package service_test

import (
	"errors"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/internal/testutil"
)

func TestRefreshLegacy_Success(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	// setup: a live legacy pair
	_, refresh, err := env.Issuer.IssueLegacyPair("user-1", true)
	if err != nil {
		t.Fatalf("failed to issue legacy pair: %v", err)
	}

	// exchanging the refresh token yields a fresh verifiable pair
	newAccess, newRefresh, err := env.Service.RefreshLegacy(refresh)
	if err != nil {
		t.Fatalf("RefreshLegacy failed: %v", err)
	}

	accessClaims, err := env.Verifier.DecodeLegacy(newAccess, false)
	if err != nil {
		t.Fatalf("new access token failed verification: %v", err)
	}
	if accessClaims.UserID != "user-1" {
		t.Errorf("access user_id = %s, want user-1", accessClaims.UserID)
	}

	refreshClaims, err := env.Verifier.DecodeLegacy(newRefresh, false)
	if err != nil {
		t.Fatalf("new refresh token failed verification: %v", err)
	}
	if refreshClaims.UserID != "user-1" {
		t.Errorf("refresh user_id = %s, want user-1", refreshClaims.UserID)
	}
	if refreshClaims.Expiration <= accessClaims.Expiration {
		t.Error("refresh token should outlive the access token")
	}
}

func TestRefreshLegacy_AcceptsAccessToken(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	// the legacy scheme never distinguished the pair structurally, so an
	// unexpired access token exchanges too
	access, _, err := env.Issuer.IssueLegacyPair("user-1", false)
	if err != nil {
		t.Fatalf("failed to issue legacy access token: %v", err)
	}

	if _, _, err := env.Service.RefreshLegacy(access); err != nil {
		t.Errorf("access token rejected by refresh: %v", err)
	}
}

func TestRefreshLegacy_Expired(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	expired := env.SignLegacyToken(t, "user-1",
		time.Now().Add(-2*time.Hour),
		time.Now().Add(-time.Hour),
	)

	_, _, err := env.Service.RefreshLegacy(expired)
	if !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRefreshLegacy_Garbage(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	_, _, err := env.Service.RefreshLegacy("not-a-token")
	if !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestRefreshLegacy_SessionTokenRejected(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnv(t)

	// a session token is not a legacy token, even though both are ours
	session := env.IssueTestSession(t, "user-1", "alice@example.com")

	_, _, err := env.Service.RefreshLegacy(session)
	if !errors.Is(err, service.ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}
