package tokens

import (
	"crypto"
	"crypto/hmac"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// Algorithm signs and verifies the header.payload portion of a token.
// Sign and Verify receive the raw message bytes; hashing is the
// algorithm's own business.
type Algorithm interface {
	Name() string
	Sign(key any, message []byte) ([]byte, error)
	Verify(key any, message []byte, signature []byte) error
}

var (
	// HS256 is HMAC-SHA256 over a shared []byte secret.
	HS256 Algorithm = hs256{}
	// RS256 is RSASSA-PKCS1-v1_5 with SHA-256 over an RSA key pair.
	RS256 Algorithm = rs256{}
)

type hs256 struct{}

func (a hs256) Name() string { return "HS256" }

func (a hs256) Sign(key any, message []byte) ([]byte, error) {
	secret, ok := key.([]byte)
	if !ok {
		return nil, fmt.Errorf("HS256 requires a []byte secret, got %T", key)
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(message)
	return mac.Sum(nil), nil
}

func (a hs256) Verify(key any, message []byte, signature []byte) error {
	expected, err := a.Sign(key, message)
	if err != nil {
		return err
	}
	// constant-time compare
	if !hmac.Equal(signature, expected) {
		return fmt.Errorf("hmac verification failed")
	}
	return nil
}

type rs256 struct{}

func (a rs256) Name() string { return "RS256" }

func (a rs256) Sign(key any, message []byte) ([]byte, error) {
	private, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("RS256 signing requires an *rsa.PrivateKey, got %T", key)
	}
	hash := sha256.Sum256(message)
	signature, err := rsa.SignPKCS1v15(rand.Reader, private, crypto.SHA256, hash[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %v", err)
	}
	return signature, nil
}

func (a rs256) Verify(key any, message []byte, signature []byte) error {
	public, ok := key.(*rsa.PublicKey)
	if !ok {
		return fmt.Errorf("RS256 verification requires an *rsa.PublicKey, got %T", key)
	}
	hash := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(public, crypto.SHA256, hash[:], signature); err != nil {
		return fmt.Errorf("rsa verification failed")
	}
	return nil
}
