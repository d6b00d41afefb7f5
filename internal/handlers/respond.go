package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ahsanfayaz52/notekeeper/internal/store"
	"github.com/rs/zerolog"
)

const (
	msgValidation = "Please provide a title and issues for your note"
	msgNotFound   = "Note not found"
	msgBadPayload = "Invalid request payload"
	msgTooLarge   = "Request entity too large"
	msgInternal   = "Internal server error"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrBadPayload   = errors.New("invalid request payload")
	ErrBodyTooLarge = errors.New("request body too large")
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps err onto a status code and a JSON string body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, msgValidation)
	case errors.Is(err, store.ErrNotFound):
		respondJSON(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrBodyTooLarge):
		respondJSON(w, http.StatusRequestEntityTooLarge, msgTooLarge)
	case errors.Is(err, ErrBadPayload):
		respondJSON(w, http.StatusBadRequest, msgBadPayload)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		respondJSON(w, http.StatusInternalServerError, msgInternal)
	}
}
