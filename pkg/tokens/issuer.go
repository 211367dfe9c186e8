package tokens

import (
	"crypto/rsa"
	"fmt"
	"time"
)

// Claim literals for tokens warrant mints. Verifiers check the same values,
// so they are fixed here rather than configured.
const (
	sessionIssuer   = "warrant"
	sessionAudience = "warrant-web"
	legacyIssuer    = "warrant-auth"
)

const (
	sessionLifetime       = 7 * 24 * time.Hour
	legacyAccessLifetime  = time.Hour
	legacyRefreshLifetime = 30 * 24 * time.Hour
)

// Issuer mints session tokens and legacy token pairs.
type Issuer struct {
	sessionSecret []byte
	legacyKeys    PrivateKeySource
}

func NewIssuer(
	sessionSecret []byte,
	legacyKeys PrivateKeySource,
) *Issuer {
	return &Issuer{
		sessionSecret: sessionSecret,
		legacyKeys:    legacyKeys,
	}
}

// IssueSession mints an HS256 session token for a signed-in user.
func (i *Issuer) IssueSession(subject string, email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Issuer:     sessionIssuer,
		Audience:   sessionAudience,
		IssuedAt:   now.Unix(),
		Expiration: now.Add(sessionLifetime).Unix(),
		Subject:    subject,
		Email:      email,
	}

	token, err := Sign(HS256, i.sessionSecret, claims)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %v", err)
	}
	return token, nil
}

// IssueLegacyPair mints an RS256 access token and, when includeRefresh is
// set, a refresh token. refresh is the empty string otherwise; callers tell
// a skipped refresh apart from a failed one by the flag they passed, never
// by the value.
func (i *Issuer) IssueLegacyPair(
	subject string,
	includeRefresh bool,
) (
	access string,
	refresh string,
	err error,
) {
	if i.legacyKeys == nil {
		return "", "", fmt.Errorf("%w: no legacy signing key configured", ErrKeyUnavailable)
	}
	key, err := i.legacyKeys.PrivateKey()
	if err != nil {
		return "", "", fmt.Errorf("legacy signing key: %w", err)
	}

	access, err = signLegacy(key, subject, legacyAccessLifetime)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue access token: %v", err)
	}

	if !includeRefresh {
		return access, "", nil
	}

	refresh, err = signLegacy(key, subject, legacyRefreshLifetime)
	if err != nil {
		return "", "", fmt.Errorf("failed to issue refresh token: %v", err)
	}
	return access, refresh, nil
}

func signLegacy(
	key *rsa.PrivateKey,
	subject string,
	lifetime time.Duration,
) (string, error) {
	now := time.Now()
	claims := LegacyClaims{
		Issuer:     legacyIssuer,
		IssuedAt:   now.Unix(),
		Expiration: now.Add(lifetime).Unix(),
		UserID:     subject,
	}
	return Sign(RS256, key, claims)
}
