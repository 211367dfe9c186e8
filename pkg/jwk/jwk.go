package jwk

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
)

var (
	ErrMalformedKey  = errors.New("malformed key material")
	ErrFetchFailed   = errors.New("key set fetch failed")
	ErrNoMatchingKey = errors.New("no matching key")
)

// Key is one entry of a provider JWK set. Only RSA signature keys carry
// the fields warrant needs; everything else is preserved for matching.
type Key struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use,omitempty"`
	Alg string `json:"alg,omitempty"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Set is the document served by a provider JWKS endpoint.
type Set struct {
	Keys []Key `json:"keys"`
}

// Find returns the key whose kid matches, or false when the set has none.
func (s *Set) Find(kid string) (*Key, bool) {
	for i := range s.Keys {
		if s.Keys[i].Kid == kid {
			return &s.Keys[i], true
		}
	}
	return nil, false
}

// PEM converts the key into a PEM-framed PKIX public key. The conversion is
// deterministic: the same key always yields byte-identical output.
func (k *Key) PEM() ([]byte, error) {
	if k.Kty != "" && k.Kty != "RSA" {
		return nil, fmt.Errorf("%w: unsupported key type %q", ErrMalformedKey, k.Kty)
	}

	n, err := decodeComponent("n", k.N)
	if err != nil {
		return nil, err
	}
	e, err := decodeComponent("e", k.E)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: publicKeyDER(n, e),
	}), nil
}

// PublicKey converts the key through its PEM form into the parsed key the
// RS256 verification primitive consumes.
func (k *Key) PublicKey() (*rsa.PublicKey, error) {
	pemBytes, err := k.PEM()
	if err != nil {
		return nil, err
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in converted key", ErrMalformedKey)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: converted key failed to parse: %v", ErrMalformedKey, err)
	}

	rsaKey, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: converted key is not RSA", ErrMalformedKey)
	}
	return rsaKey, nil
}

// decodeComponent decodes one base64url key component. A missing or empty
// component is malformed key material, never a zero-length integer.
func decodeComponent(name string, value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: missing %s component", ErrMalformedKey, name)
	}
	bytes, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s component: %v", ErrMalformedKey, name, err)
	}
	if len(bytes) == 0 {
		return nil, fmt.Errorf("%w: empty %s component", ErrMalformedKey, name)
	}
	return bytes, nil
}
