package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) Router() http.Handler {
	r := mux.NewRouter()

	s := r.PathPrefix("/api/").Subrouter()
	s.HandleFunc("/signin", a.SignIn()).Methods("POST")
	s.HandleFunc("/refresh", a.Refresh()).Methods("POST")
	s.HandleFunc("/me", a.Me()).Methods("GET")

	return r
}
