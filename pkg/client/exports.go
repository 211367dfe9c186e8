package client

// These types mirror the server's wire format so that consuming projects
// never import warrant internals. Field tags must stay in sync with the
// server's JSON responses; the round-trip tests in this package enforce
// that.

// User is a warrant account record as returned by the server.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// SignInResult carries the session token minted at sign-in and the user
// record it names.
type SignInResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// TokenPair carries a legacy access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
