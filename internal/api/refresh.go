package api

import (
	"errors"
	"fmt"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/pkg/bearer"
)

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	RefreshToken string `json:"refreshToken"`
	AccessToken  string `json:"accessToken"`
}

func (a *API) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if ok := decodeRequest(&req, w, r); !ok {
			return
		}

		access, refresh, err := a.service.RefreshLegacy(req.RefreshToken)
		if err != nil {
			if errors.Is(err, service.ErrNotAuthenticated) {
				bearer.WriteUnauthorized(w)
				return
			}
			logApiErr(r, fmt.Sprintf("refresh failed: %v", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		response := RefreshResponse{
			RefreshToken: refresh,
			AccessToken:  access,
		}
		returnJson(&response, w)
	}
}
