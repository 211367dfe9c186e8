package tokens

import "time"

// SessionClaims is the payload of an application session token. Field order
// matches the wire layout.
type SessionClaims struct {
	Issuer     string `json:"iss"`
	Audience   string `json:"aud"`
	IssuedAt   int64  `json:"iat"`
	Expiration int64  `json:"exp"`
	Subject    string `json:"sub"`
	Email      string `json:"email"`
}

// LegacyClaims is the payload of the older RS256 scheme. The subject travels
// as user_id rather than sub; deployed verifiers depend on that name, so it
// is preserved even though the session scheme uses the standard claim.
type LegacyClaims struct {
	Issuer     string `json:"iss"`
	IssuedAt   int64  `json:"iat"`
	Expiration int64  `json:"exp"`
	UserID     string `json:"user_id"`
}

// ProviderClaims is the payload of a provider-issued ID token. Absent
// optional fields (name, picture) decode to empty strings.
type ProviderClaims struct {
	Issuer     string `json:"iss"`
	Audience   string `json:"aud"`
	Subject    string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
	IssuedAt   int64  `json:"iat"`
	Expiration int64  `json:"exp"`
}

func expired(exp int64, now time.Time) bool {
	return time.Unix(exp, 0).Before(now)
}
