// Package service implements the business logic layer for the warrant token
// server. It handles provider sign-in, session issuance, legacy token
// refresh, and user lookup.
package service

import (
	"errors"

	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrUserNotFound     = errors.New("user not found")
	ErrInternal         = errors.New("internal error")
)

// Service coordinates provider verification, user persistence, and token
// issuance. It depends on the UserStore interface and delegates to it for
// persistence.
type Service struct {
	users    UserStore
	issuer   *tokens.Issuer
	verifier *tokens.Verifier
}

func New(
	users UserStore,
	issuer *tokens.Issuer,
	verifier *tokens.Verifier,
) *Service {
	return &Service{
		users:    users,
		issuer:   issuer,
		verifier: verifier,
	}
}
