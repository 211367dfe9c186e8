package api

import (
	"errors"
	"fmt"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/pkg/bearer"
)

type SignInRequest struct {
	ProviderToken string `json:"providerToken"`
}

func (a *API) SignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if ok := decodeRequest(&req, w, r); !ok {
			return
		}

		result, err := a.service.SignIn(r.Context(), req.ProviderToken)
		if err != nil {
			if errors.Is(err, service.ErrNotAuthenticated) {
				bearer.WriteUnauthorized(w)
				return
			}
			logApiErr(r, fmt.Sprintf("sign-in failed: %v", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		returnJson(result, w)
	}
}
