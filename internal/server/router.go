// Package server assembles the notes API into a single http.Handler that can
// be served directly or embedded in another process.
package server

import (
	"net/http"

	"github.com/ahsanfayaz52/notekeeper/internal/handlers"
	"github.com/ahsanfayaz52/notekeeper/internal/ids"
	"github.com/ahsanfayaz52/notekeeper/internal/middleware"
	"github.com/ahsanfayaz52/notekeeper/internal/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const APIPrefix = "/api/v1"

type Options struct {
	Store  *store.NoteStore
	IDs    ids.Generator
	Logger zerolog.Logger

	// AllowedOrigins defaults to "*".
	AllowedOrigins []string
}

// NewRouter returns the API handler. A nil Store is replaced by one holding
// store.Fixtures and a nil IDs by ids.UUIDGenerator.
func NewRouter(opts Options) http.Handler {
	st := opts.Store
	if st == nil {
		var err error
		st, err = store.NewNoteStore(store.Fixtures()...)
		if err != nil {
			panic("server.NewRouter: seed store: " + err.Error())
		}
	}
	gen := opts.IDs
	if gen == nil {
		gen = ids.UUIDGenerator{}
	}

	r := mux.NewRouter()

	api := r.PathPrefix(APIPrefix).Subrouter()
	api.HandleFunc("/notes", handlers.ListNotesHandler(st)).Methods("GET")
	api.HandleFunc("/notes", handlers.CreateNoteHandler(st, gen)).Methods("POST")
	api.HandleFunc("/notes/{id}", handlers.GetNoteHandler(st)).Methods("GET")
	api.HandleFunc("/notes/{id}", handlers.ReplaceNoteHandler(st)).Methods("PUT")
	api.HandleFunc("/notes/{id}", handlers.DeleteNoteHandler(st)).Methods("DELETE")

	// Logging wraps everything so router misses and preflights are logged too.
	h := middleware.CORS(opts.AllowedOrigins)(r)
	return middleware.RequestLogger(opts.Logger)(h)
}
