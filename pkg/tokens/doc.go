// Package tokens issues and verifies the JWT schemes used by warrant.
//
// Three schemes share one three-segment codec:
//
//   - Session tokens: HS256 over a shared secret, minted at sign-in,
//     carrying the user id as sub plus an email claim
//   - Legacy tokens: RS256 access/refresh pairs kept for older installs,
//     carrying the user id as user_id
//   - Provider tokens: RS256 ID tokens minted by Google, verified against
//     keys sourced from the provider's JWKS endpoint at runtime
//
// # Issuing
//
// The Issuer needs the session secret and a private key source for the
// legacy scheme:
//
//	issuer := tokens.NewIssuer(secret, keystore)
//
//	session, err := issuer.IssueSession(user.ID, user.Email)
//
//	access, refresh, err := issuer.IssueLegacyPair(user.ID, true)
//
// A missing legacy key surfaces as an error wrapping ErrKeyUnavailable; the
// sign-in that needed it fails, the process does not.
//
// # Verifying
//
// The Verifier checks structure, then signature, then claims, in that order.
// A token that is not three dot-separated segments is rejected before any
// signature work:
//
//	verifier := tokens.NewVerifier(tokens.VerifierConfig{
//	    SessionSecret: secret,
//	    LegacyKeys:    keystore,
//	    ProviderKeys:  providerCache,
//	})
//
//	claims, err := verifier.DecodeSession(token, false)
//	switch {
//	case errors.Is(err, tokens.ErrTokenExpired):
//	case errors.Is(err, tokens.ErrSignatureMismatch):
//	case errors.Is(err, tokens.ErrMalformedToken):
//	}
//
// Passing allowExpired skips only the expiry check, for flows that need to
// identify the owner of a stale token.
//
// The error taxonomy exists for logs and tests. HTTP boundaries collapse
// every verification failure into one generic unauthorized response; see
// pkg/bearer.
package tokens
