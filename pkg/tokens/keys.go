package tokens

import (
	"context"
	"crypto/rsa"
)

// PrivateKeySource supplies the signing key for the legacy scheme. A source
// whose key material is missing or unreadable returns an error wrapping
// ErrKeyUnavailable; issuance then fails as an ordinary result.
type PrivateKeySource interface {
	PrivateKey() (*rsa.PrivateKey, error)
}

// PublicKeySource supplies the verification key for the legacy scheme.
type PublicKeySource interface {
	PublicKey() (*rsa.PublicKey, error)
}

// ProviderKeySource supplies provider verification keys by kid. The verifier
// never fetches or converts key material itself; sourcing strategy (fetch,
// caching, timeouts) lives behind this interface.
type ProviderKeySource interface {
	Key(ctx context.Context, kid string) (*rsa.PublicKey, error)
}
