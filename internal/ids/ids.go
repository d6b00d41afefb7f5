package ids

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces a unique string identifier per call.
type Generator interface {
	NewID() (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func() (string, error)

func (f GeneratorFunc) NewID() (string, error) { return f() }

// UUIDGenerator returns random (version 4) UUIDs without dashes.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}
