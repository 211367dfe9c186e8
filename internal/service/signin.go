package service

import (
	"context"
	"fmt"
	"log"
)

// SignInResult carries the freshly minted session token and the user record
// it names.
type SignInResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

/*
SignIn verifies a provider-issued ID token, finds or creates the user it
identifies, and mints an application session token. Every verification
failure collapses to ErrNotAuthenticated; which check rejected the token is
logged server-side and never returned.
*/
func (s *Service) SignIn(
	ctx context.Context,
	providerToken string,
) (
	*SignInResult,
	error,
) {
	claims, err := s.verifier.VerifyProviderToken(ctx, providerToken)
	if err != nil {
		log.Printf("provider token rejected: %v\n", err)
		return nil, ErrNotAuthenticated
	}

	user, err := s.users.FindOrCreateUser(
		claims.Subject,
		claims.Email,
		claims.Name,
		claims.Picture,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to persist user: %v", ErrInternal, err)
	}

	token, err := s.issuer.IssueSession(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to issue session token: %v", ErrInternal, err)
	}

	return &SignInResult{Token: token, User: user}, nil
}
