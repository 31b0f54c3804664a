// Package api wires the HTTP surface of the whisky service: a landing page,
// a health endpoint and five CRUD routes over a single resource type.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whiskyhouse/whisky-service/internal/api/recovery"
	"github.com/whiskyhouse/whisky-service/internal/api/reqbody"
	"github.com/whiskyhouse/whisky-service/internal/api/reqlog"
	"github.com/whiskyhouse/whisky-service/internal/store"
)

// landingPage is served at the document root for any method.
const landingPage = "<h1>Welcome to the Whisky warehouse</h1>"

// NewRouter builds the request router. Routes match in registration order;
// the first match wins. Unmatched requests get the router's default 404.
func NewRouter(s store.Store) *mux.Router {
	router := mux.NewRouter()

	// Outermost first: request logging, then panic recovery.
	router.Use(reqlog.Middleware)
	router.Use(recovery.Middleware)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(landingPage))
	})

	router.HandleFunc("/health", NewHealthHandler(s).CheckHealth).Methods("GET")

	// Every resource route passes through body materialization before its
	// handler runs.
	whiskys := NewWhiskyHandler(s)
	rest := router.PathPrefix("/rest/whiskys").Subrouter()
	rest.Use(reqbody.Middleware)

	// {id} also matches an empty segment so that id parsing, not routing,
	// decides what a malformed id means.
	rest.HandleFunc("", whiskys.AddOne).Methods("POST")
	rest.HandleFunc("/{id:[^/]*}", whiskys.GetOne).Methods("GET")
	rest.HandleFunc("", whiskys.GetAll).Methods("GET")
	rest.HandleFunc("/{id:[^/]*}", whiskys.UpdateOne).Methods("PUT")
	rest.HandleFunc("/{id:[^/]*}", whiskys.DeleteOne).Methods("DELETE")

	return router
}
