package tokens

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Provider issuer forms. Google writes the bare host into some ID tokens and
// the https URL into others; both name the same issuer and both are accepted.
const (
	providerIssuerHost = "accounts.google.com"
	providerIssuerURL  = "https://accounts.google.com"
)

// VerifierConfig carries the key material and expectations for each scheme.
type VerifierConfig struct {
	// SessionSecret verifies HS256 session tokens.
	SessionSecret []byte
	// LegacyKeys verifies RS256 legacy tokens.
	LegacyKeys PublicKeySource
	// ProviderKeys sources provider verification keys by kid.
	ProviderKeys ProviderKeySource
	// ProviderAudience is the expected aud of provider tokens. Empty skips
	// the audience check.
	ProviderAudience string
}

// Verifier checks tokens from all three schemes. Every failure is one of the
// sentinel errors in this package (or jwk's, passed through from the key
// source), so callers can log the specific reason while exposing nothing.
type Verifier struct {
	sessionSecret    []byte
	legacyKeys       PublicKeySource
	providerKeys     ProviderKeySource
	providerAudience string
}

func NewVerifier(cfg VerifierConfig) *Verifier {
	return &Verifier{
		sessionSecret:    cfg.SessionSecret,
		legacyKeys:       cfg.LegacyKeys,
		providerKeys:     cfg.ProviderKeys,
		providerAudience: cfg.ProviderAudience,
	}
}

// DecodeSession verifies a session token and returns its claims. Checks run
// in a fixed order: structure, signature, issuer, audience, expiry. With
// allowExpired only the expiry check is skipped; an expired token still has
// to pass everything else.
func (v *Verifier) DecodeSession(token string, allowExpired bool) (*SessionClaims, error) {
	payload, err := Verify(HS256, v.sessionSecret, token)
	if err != nil {
		return nil, err
	}

	claims := &SessionClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: bad claims: %v", ErrMalformedToken, err)
	}

	if claims.Issuer != sessionIssuer {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssuer, claims.Issuer)
	}
	if claims.Audience != sessionAudience {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAudience, claims.Audience)
	}
	if !allowExpired && expired(claims.Expiration, time.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// DecodeLegacy verifies a legacy RS256 token. The legacy scheme checks the
// issuer only; it never carried an audience.
func (v *Verifier) DecodeLegacy(token string, allowExpired bool) (*LegacyClaims, error) {
	if v.legacyKeys == nil {
		return nil, fmt.Errorf("%w: no legacy verification key configured", ErrKeyUnavailable)
	}
	key, err := v.legacyKeys.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("legacy verification key: %w", err)
	}

	payload, err := Verify(RS256, key, token)
	if err != nil {
		return nil, err
	}

	claims := &LegacyClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: bad claims: %v", ErrMalformedToken, err)
	}

	if claims.Issuer != legacyIssuer {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssuer, claims.Issuer)
	}
	if !allowExpired && expired(claims.Expiration, time.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}

// VerifyProviderToken verifies a provider-issued ID token: read the kid from
// the unverified header, obtain that key from the source, then check
// signature, audience, issuer, and expiry.
func (v *Verifier) VerifyProviderToken(ctx context.Context, token string) (*ProviderClaims, error) {
	if v.providerKeys == nil {
		return nil, fmt.Errorf("%w: no provider key source configured", ErrKeyUnavailable)
	}

	kid, err := KeyID(token)
	if err != nil {
		return nil, err
	}

	key, err := v.providerKeys.Key(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("provider key: %w", err)
	}

	payload, err := Verify(RS256, key, token)
	if err != nil {
		return nil, err
	}

	claims := &ProviderClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: bad claims: %v", ErrMalformedToken, err)
	}

	if v.providerAudience != "" && claims.Audience != v.providerAudience {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAudience, claims.Audience)
	}
	if claims.Issuer != providerIssuerHost && claims.Issuer != providerIssuerURL {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssuer, claims.Issuer)
	}
	if expired(claims.Expiration, time.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
