package tokens

import "errors"

var (
	ErrMalformedToken    = errors.New("token malformed")
	ErrSignatureMismatch = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
	ErrInvalidIssuer     = errors.New("token invalid issuer")
	ErrInvalidAudience   = errors.New("token invalid audience")
	ErrKeyUnavailable    = errors.New("signing key unavailable")
)
