package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/ahsanfayaz52/notekeeper/internal/ids"
	"github.com/ahsanfayaz52/notekeeper/internal/models"
	"github.com/ahsanfayaz52/notekeeper/internal/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// maxBodyBytes caps request bodies, matching the usual JSON body parser limit.
const maxBodyBytes = 100 << 10

func ListNotesHandler(st *store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, st.List())
	}
}

// CreateNoteHandler stores every field of the request body on the new note,
// not only the required ones.
func CreateNoteHandler(st *store.NoteStore, gen ids.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := readFields(w, r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if !fields.HasRequired() {
			respondError(w, r, ErrValidation)
			return
		}

		id, err := gen.NewID()
		if err != nil {
			respondError(w, r, fmt.Errorf("generate note id: %w", err))
			return
		}

		note, err := fields.Note(id)
		if err != nil {
			respondError(w, r, fmt.Errorf("%w: %v", ErrBadPayload, err))
			return
		}
		if err := st.Append(note); err != nil {
			respondError(w, r, fmt.Errorf("append note %s: %w", id, err))
			return
		}

		zerolog.Ctx(r.Context()).Debug().Str("note_id", id).Msg("note created")
		respondJSON(w, http.StatusCreated, note)
	}
}

func GetNoteHandler(st *store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		note, err := st.Get(noteID(r))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, note)
	}
}

// ReplaceNoteHandler checks the body before looking up the note, so a bad
// body is a 422 even for an unknown id. Only title, color and issues are
// kept; other body fields are dropped.
func ReplaceNoteHandler(st *store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := readFields(w, r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if !fields.HasRequired() {
			respondError(w, r, ErrValidation)
			return
		}

		id := noteID(r)
		note, err := fields.ClosedNote(id)
		if err != nil {
			respondError(w, r, fmt.Errorf("%w: %v", ErrBadPayload, err))
			return
		}
		if err := st.Replace(id, note); err != nil {
			respondError(w, r, err)
			return
		}

		zerolog.Ctx(r.Context()).Debug().Str("note_id", id).Msg("note replaced")
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteNoteHandler(st *store.NoteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := noteID(r)
		if err := st.Delete(id); err != nil {
			respondError(w, r, err)
			return
		}

		zerolog.Ctx(r.Context()).Debug().Str("note_id", id).Msg("note deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// noteID returns the {id} path variable. Note ids are always strings, so the
// raw segment is compared as is.
func noteID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

// readFields decodes a JSON request body as an object. Requests without an
// application/json body read as {} and then fail the required-field check.
func readFields(w http.ResponseWriter, r *http.Request) (models.Fields, error) {
	if !isJSON(r) {
		return models.Fields{}, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return models.Fields{}, nil
	}
	fields, err := models.ParseFields(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return fields, nil
}

func isJSON(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	return err == nil && mediaType == "application/json"
}
