// Package jwk converts provider JWK material into the PEM-framed PKIX form
// that RSA signature verification consumes, and sources those keys from a
// remote JWKS endpoint with caching.
//
// A provider publishes its RSA public keys as base64url modulus/exponent
// pairs. Verifying an RS256 token requires an *rsa.PublicKey, so each JWK is
// rebuilt into an ASN.1 DER SubjectPublicKeyInfo structure and framed as PEM.
// The DER tag-length-value encoding is assembled directly in this package;
// the definite-form length rules (short form below 128, long form above) are
// the part that goes subtly wrong, so encodeLength is kept pure and tested
// against the 127/128/256 boundaries.
//
// # Converting a Single Key
//
//	key := jwk.Key{Kty: "RSA", Kid: "abc", N: "...", E: "AQAB"}
//
//	pemBytes, err := key.PEM()       // PEM-framed PKIX structure
//	publicKey, err := key.PublicKey() // parsed *rsa.PublicKey
//
// Missing or undecodable components fail with an error wrapping
// ErrMalformedKey.
//
// # Sourcing Keys from a Provider
//
// Cache fetches the provider's key set on demand and serves converted keys
// by kid:
//
//	cache := jwk.NewCache(jwk.CacheConfig{
//	    URL:          "https://www.googleapis.com/oauth2/v3/certs",
//	    TTL:          time.Hour,
//	    FetchTimeout: 5 * time.Second,
//	})
//
//	key, err := cache.Key(ctx, kid)
//	switch {
//	case errors.Is(err, jwk.ErrFetchFailed):
//	    // endpoint unreachable or served garbage
//	case errors.Is(err, jwk.ErrNoMatchingKey):
//	    // the provider's current set has no such kid
//	case errors.Is(err, jwk.ErrMalformedKey):
//	    // the matched entry could not be converted
//	}
package jwk
