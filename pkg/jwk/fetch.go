package jwk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Fetch retrieves a key set from a JWKS endpoint. The request is bounded by
// the caller's context; any transport or decoding failure wraps
// ErrFetchFailed.
func Fetch(ctx context.Context, client *http.Client, url string) (*Set, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrFetchFailed, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetchFailed, resp.StatusCode, url)
	}

	set := &Set{}
	if err := json.NewDecoder(resp.Body).Decode(set); err != nil {
		return nil, fmt.Errorf("%w: decoding key set: %v", ErrFetchFailed, err)
	}
	return set, nil
}
