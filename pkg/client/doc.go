// Package client provides integration with the warrant token service for
// Go applications.
//
// This package wraps warrant's HTTP API: exchanging provider-issued ID
// tokens for application sessions, refreshing legacy token pairs, and
// fetching the user record behind a session. Applications that hold a
// warrant-issued token but never call back to the server should use the
// tokens package directly instead; this package is for callers that talk
// to a running warrant instance.
//
// # Quick Start
//
// Construct a client with the warrant server's base URL:
//
//	import "git.sr.ht/~jakintosh/warrant/pkg/client"
//
//	warrant := client.New("https://warrant.example.com")
//
// # Sign-In
//
// Exchange a provider ID token (e.g. the credential from Google's sign-in
// widget) for a warrant session:
//
//	result, err := warrant.SignIn(ctx, providerToken)
//	if err != nil {
//	    // client.ErrUnauthorized: the provider token was rejected
//	    return err
//	}
//
//	// result.Token is the session token; hand it to the frontend
//	// result.User is the account record it names
//
// The session token is then presented back as a bearer credential, either
// to warrant itself (see Me) or to another service that verifies warrant
// sessions with the tokens package.
//
// # Fetching the User Record
//
// Resolve a session token to its account record:
//
//	user, err := warrant.Me(ctx, sessionToken)
//	if err != nil {
//	    // client.ErrUnauthorized: the session was rejected
//	    return err
//	}
//	fmt.Println(user.Email)
//
// # Legacy Token Refresh
//
// Services still on the older RS256 scheme exchange a live legacy token for
// a fresh access/refresh pair:
//
//	pair, err := warrant.Refresh(ctx, refreshToken)
//	if err != nil {
//	    // client.ErrUnauthorized: the token was expired or malformed
//	    return err
//	}
//	// pair.AccessToken, pair.RefreshToken
//
// # Error Handling
//
// The server never explains why it rejected a credential, so every
// authorization failure surfaces as the same sentinel:
//
//	result, err := warrant.SignIn(ctx, providerToken)
//	switch {
//	case errors.Is(err, client.ErrUnauthorized):
//	    // credential rejected; prompt the user to sign in again
//	case errors.Is(err, client.ErrRequestFailed):
//	    // network failure or unexpected status code
//	case errors.Is(err, client.ErrBadResponse):
//	    // response body did not decode
//	}
//
// # Testing
//
// For testability, depend on the API interface (or the narrower SessionAPI
// / LegacyAPI) rather than *Client:
//
//	type MyApp struct {
//	    warrant client.SessionAPI  // Not *client.Client
//	}
//
// In production, pass a *client.Client. In tests, use a stub implementation
// of the interface.
package client
