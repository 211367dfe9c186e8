package client

import "context"

// SessionAPI covers the provider sign-in flow and the authenticated user
// record. Consuming projects should depend on this interface rather than
// *Client to enable testing with stub implementations.
type SessionAPI interface {
	SignIn(ctx context.Context, providerToken string) (*SignInResult, error)
	Me(ctx context.Context, sessionToken string) (*User, error)
}

// LegacyAPI covers the legacy access/refresh token exchange.
type LegacyAPI interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// API exposes the full warrant HTTP surface.
type API interface {
	SessionAPI
	LegacyAPI
}

// Compile-time check that *Client implements the interfaces.
var _ SessionAPI = (*Client)(nil)
var _ LegacyAPI = (*Client)(nil)
var _ API = (*Client)(nil)
