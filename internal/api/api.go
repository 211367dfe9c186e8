// Package api exposes the warrant HTTP surface: provider sign-in, legacy
// token refresh, and the authenticated user record.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/pkg/bearer"
)

type API struct {
	service *service.Service
	auth    *bearer.Middleware
}

func New(
	svc *service.Service,
	auth *bearer.Middleware,
) *API {
	return &API{
		service: svc,
		auth:    auth,
	}
}

func decodeRequest[T any](req *T, w http.ResponseWriter, r *http.Request) bool {
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logApiErr(r, "bad json request")
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

func returnJson(data any, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func logApiErr(r *http.Request, msg string) {
	log.Printf("%s %s: %s\n", r.Method, r.RequestURI, msg)
}
