package jwk

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CacheConfig configures a provider key cache.
type CacheConfig struct {
	// URL of the provider's JWKS endpoint.
	URL string
	// TTL bounds how long a fetched set is served without refetching.
	TTL time.Duration
	// FetchTimeout bounds each individual fetch.
	FetchTimeout time.Duration
	// Client is optional; http.DefaultClient is used when nil.
	Client *http.Client
}

// Cache serves converted provider keys by kid, refetching the key set when
// its TTL lapses. A kid observed missing from a fresh set is remembered and
// answered with ErrNoMatchingKey until the next refresh, so repeated lookups
// of an unknown kid cannot hammer the provider. A kid never seen before
// forces one refresh, which lets rotated-in keys show up without waiting out
// the TTL.
type Cache struct {
	url     string
	ttl     time.Duration
	timeout time.Duration
	client  *http.Client

	mu        sync.Mutex
	set       *Set
	converted map[string]*rsa.PublicKey
	missing   map[string]struct{}
	fetchedAt time.Time
	now       func() time.Time
}

func NewCache(cfg CacheConfig) *Cache {
	return &Cache{
		url:     cfg.URL,
		ttl:     cfg.TTL,
		timeout: cfg.FetchTimeout,
		client:  cfg.Client,
		now:     time.Now,
	}
}

// Key returns the verification key for kid, fetching and converting as
// needed. Fetch failures wrap ErrFetchFailed; a kid absent from the current
// set wraps ErrNoMatchingKey; a matched key that cannot be converted wraps
// ErrMalformedKey.
func (c *Cache) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fresh() {
		if key, ok := c.converted[kid]; ok {
			return key, nil
		}
		if _, miss := c.missing[kid]; miss {
			return nil, fmt.Errorf("%w: kid %q", ErrNoMatchingKey, kid)
		}
		if key, ok := c.set.Find(kid); ok {
			return c.convert(key)
		}
		// unseen kid: fall through and refresh once
	}

	if err := c.refresh(ctx); err != nil {
		return nil, err
	}

	if key, ok := c.set.Find(kid); ok {
		return c.convert(key)
	}
	c.missing[kid] = struct{}{}
	return nil, fmt.Errorf("%w: kid %q", ErrNoMatchingKey, kid)
}

func (c *Cache) fresh() bool {
	return c.set != nil && c.now().Sub(c.fetchedAt) < c.ttl
}

func (c *Cache) refresh(ctx context.Context) error {
	fetchCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	set, err := Fetch(fetchCtx, c.client, c.url)
	if err != nil {
		return err
	}

	c.set = set
	c.converted = make(map[string]*rsa.PublicKey, len(set.Keys))
	c.missing = make(map[string]struct{})
	c.fetchedAt = c.now()
	return nil
}

// convert runs the JWK to PEM to key pipeline for one matched key and caches
// the result. Conversion happens per kid on demand, so one malformed entry
// in a provider set cannot poison lookups of the others.
func (c *Cache) convert(key *Key) (*rsa.PublicKey, error) {
	public, err := key.PublicKey()
	if err != nil {
		return nil, err
	}
	c.converted[key.Kid] = public
	return public, nil
}
