package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
)

var (
	providerKey     *rsa.PrivateKey
	providerKeyOnce sync.Once

	legacyKey     *rsa.PrivateKey
	legacyKeyOnce sync.Once
)

// getProviderKey returns a cached RSA key backing the fake provider.
// Generating it once per test binary avoids the per-test keygen cost.
func getProviderKey() *rsa.PrivateKey {
	providerKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic("failed to generate provider test key: " + err.Error())
		}
		providerKey = key
	})
	return providerKey
}

// getLegacyKey returns a cached RSA key for the legacy token scheme.
func getLegacyKey() *rsa.PrivateKey {
	legacyKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic("failed to generate legacy test key: " + err.Error())
		}
		legacyKey = key
	})
	return legacyKey
}

// staticKeys serves a fixed in-memory keypair.
type staticKeys struct {
	key *rsa.PrivateKey
}

func (s staticKeys) PrivateKey() (*rsa.PrivateKey, error) { return s.key, nil }
func (s staticKeys) PublicKey() (*rsa.PublicKey, error)   { return &s.key.PublicKey, nil }
