package bearer

import "git.sr.ht/~jakintosh/warrant/pkg/tokens"

// TokenVerifier validates application session tokens.
// The middleware depends on this interface rather than *tokens.Verifier
// to enable testing with stub implementations.
type TokenVerifier interface {
	DecodeSession(token string, allowExpired bool) (*tokens.SessionClaims, error)
}

// Compile-time check that *tokens.Verifier satisfies TokenVerifier.
var _ TokenVerifier = (*tokens.Verifier)(nil)
