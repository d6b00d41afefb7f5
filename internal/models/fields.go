package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidField is returned when a named note field holds the wrong JSON type.
var ErrInvalidField = errors.New("invalid note field")

// RequiredFields must all be present and truthy on create and replace.
var RequiredFields = []string{"title", "color", "issues"}

// Fields is a decoded request body: top-level keys mapped to raw JSON values.
type Fields map[string]json.RawMessage

// ParseFields decodes a JSON object. Anything other than an object is an error.
func ParseFields(data []byte) (Fields, error) {
	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("body is not a JSON object")
	}
	return fields, nil
}

// Truthy reports whether key is present and not one of null, false, 0 or "".
// Arrays and objects count as truthy even when empty.
func (f Fields) Truthy(key string) bool {
	raw, ok := f[key]
	if !ok {
		return false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	case '[', '{', 't':
		return true
	}
	num, err := strconv.ParseFloat(string(raw), 64)
	return err == nil && num != 0
}

// HasRequired reports whether every RequiredFields entry is truthy.
func (f Fields) HasRequired() bool {
	for _, k := range RequiredFields {
		if !f.Truthy(k) {
			return false
		}
	}
	return true
}

// Note builds an open-schema note: the named fields plus every other key,
// except "id", kept verbatim in Extra.
func (f Fields) Note(id string) (Note, error) {
	note, err := f.ClosedNote(id)
	if err != nil {
		return Note{}, err
	}
	for k, v := range f {
		if isNamedField(k) {
			continue
		}
		if note.Extra == nil {
			note.Extra = make(map[string]json.RawMessage)
		}
		note.Extra[k] = append(json.RawMessage(nil), v...)
	}
	return note, nil
}

// ClosedNote builds a note from id, title, color and issues only.
func (f Fields) ClosedNote(id string) (Note, error) {
	note := Note{ID: id}
	if err := f.decode("title", &note.Title); err != nil {
		return Note{}, err
	}
	if err := f.decode("color", &note.Color); err != nil {
		return Note{}, err
	}
	if err := f.decode("issues", &note.Issues); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (f Fields) decode(key string, dst any) error {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidField, key, err)
	}
	return nil
}
