package keystore

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"log"
	"os"
	"sync"

	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

// Config locates the RSA key material for the legacy token scheme.
type Config struct {
	// PrivateKeyPath is the PEM file holding the signing key.
	PrivateKeyPath string

	// PublicKeyPath is the PEM file holding the verification key. When
	// empty, the public key is derived from the private key.
	PublicKeyPath string

	// Watch drops the cached keys when the files change on disk, so a
	// rotation performed by ops shows up without a restart.
	Watch bool
}

// Keystore reads and caches the legacy RSA keypair from PEM files. Files are
// read lazily on first use; a missing or unparseable file is reported as
// tokens.ErrKeyUnavailable and retried on the next call.
type Keystore struct {
	mu      sync.RWMutex
	cfg     Config
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// Compile-time check that *Keystore supplies both key halves.
var _ tokens.PrivateKeySource = (*Keystore)(nil)
var _ tokens.PublicKeySource = (*Keystore)(nil)

func New(cfg Config) (*Keystore, error) {
	k := &Keystore{cfg: cfg}

	if cfg.Watch {
		paths := []string{cfg.PrivateKeyPath}
		if cfg.PublicKeyPath != "" {
			paths = append(paths, cfg.PublicKeyPath)
		}
		if err := watchKeys(paths, k.invalidate); err != nil {
			return nil, fmt.Errorf("failed to watch key files: %w", err)
		}
	}
	return k, nil
}

// PrivateKey implements tokens.PrivateKeySource.
func (k *Keystore) PrivateKey() (*rsa.PrivateKey, error) {
	k.mu.RLock()
	key := k.private
	k.mu.RUnlock()
	if key != nil {
		return key, nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.private != nil {
		return k.private, nil
	}

	key, err := loadPrivateKey(k.cfg.PrivateKeyPath)
	if err != nil {
		return nil, err
	}
	k.private = key
	return key, nil
}

// PublicKey implements tokens.PublicKeySource.
func (k *Keystore) PublicKey() (*rsa.PublicKey, error) {
	k.mu.RLock()
	key := k.public
	k.mu.RUnlock()
	if key != nil {
		return key, nil
	}

	if k.cfg.PublicKeyPath == "" {
		private, err := k.PrivateKey()
		if err != nil {
			return nil, err
		}
		k.mu.Lock()
		k.public = &private.PublicKey
		k.mu.Unlock()
		return &private.PublicKey, nil
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if k.public != nil {
		return k.public, nil
	}

	key, err := loadPublicKey(k.cfg.PublicKeyPath)
	if err != nil {
		return nil, err
	}
	k.public = key
	return key, nil
}

func (k *Keystore) invalidate() {
	k.mu.Lock()
	k.private = nil
	k.public = nil
	k.mu.Unlock()

	log.Printf("key material changed on disk, dropped cached keys\n")
}

func loadPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read private key '%s': %v", tokens.ErrKeyUnavailable, path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in '%s'", tokens.ErrKeyUnavailable, path)
	}

	// PKCS#1 is what warrant-keygen writes; PKCS#8 covers keys produced
	// by other tooling.
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse private key '%s': %v", tokens.ErrKeyUnavailable, path, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key '%s' is not an RSA key", tokens.ErrKeyUnavailable, path)
	}
	return key, nil
}

func loadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read public key '%s': %v", tokens.ErrKeyUnavailable, path, err)
	}

	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block in '%s'", tokens.ErrKeyUnavailable, path)
	}

	if parsed, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: public key '%s' is not an RSA key", tokens.ErrKeyUnavailable, path)
		}
		return key, nil
	}
	key, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse public key '%s': %v", tokens.ErrKeyUnavailable, path, err)
	}
	return key, nil
}
