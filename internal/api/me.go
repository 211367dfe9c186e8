package api

import (
	"errors"
	"fmt"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/service"
)

func (a *API) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := a.auth.RequireSubject(w, r)
		if !ok {
			return
		}

		user, err := a.service.GetUser(subject)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				logApiErr(r, fmt.Sprintf("no user record for subject: %v", err))
				w.WriteHeader(http.StatusNotFound)
				return
			}
			logApiErr(r, fmt.Sprintf("user lookup failed: %v", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		returnJson(user, w)
	}
}
