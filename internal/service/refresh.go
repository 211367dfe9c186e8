package service

import (
	"errors"
	"fmt"
	"log"

	"git.sr.ht/~jakintosh/warrant/pkg/tokens"
)

/*
RefreshLegacy exchanges a live legacy token for a fresh access/refresh pair.
The legacy scheme never distinguished access from refresh tokens
structurally, so any unexpired legacy token is accepted. Rejections collapse
to ErrNotAuthenticated the same way sign-in failures do.
*/
func (s *Service) RefreshLegacy(
	refreshToken string,
) (
	access string,
	refresh string,
	err error,
) {
	claims, err := s.verifier.DecodeLegacy(refreshToken, false)
	if err != nil {
		log.Printf("legacy refresh rejected: %v\n", err)
		return "", "", ErrNotAuthenticated
	}

	access, refresh, err = s.issuer.IssueLegacyPair(claims.UserID, true)
	if err != nil {
		if errors.Is(err, tokens.ErrKeyUnavailable) {
			return "", "", fmt.Errorf("%w: legacy signing key unavailable: %v", ErrInternal, err)
		}
		return "", "", fmt.Errorf("%w: failed to issue legacy pair: %v", ErrInternal, err)
	}
	return access, refresh, nil
}
