package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/ahsanfayaz52/notekeeper/internal/models"
)

var (
	ErrNotFound  = errors.New("note not found")
	ErrDuplicate = errors.New("note id already exists")
)

// NoteStore is an ordered in-memory collection of notes. Every method takes
// the lock for its full duration, so a lookup and the mutation that follows
// it are never interleaved with another writer.
type NoteStore struct {
	mu    sync.RWMutex
	notes []models.Note
}

// NewNoteStore returns a store holding copies of the given notes in order.
func NewNoteStore(seed ...models.Note) (*NoteStore, error) {
	s := &NoteStore{notes: make([]models.Note, 0, len(seed))}
	for _, n := range seed {
		if err := s.Append(n); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// List returns every note in store order.
func (s *NoteStore) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Clone()
	}
	return out
}

func (s *NoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Append adds a note at the tail.
func (s *NoteStore) Append(n models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(n.ID) != -1 {
		return ErrDuplicate
	}
	s.notes = append(s.notes, n.Clone())
	return nil
}

func (s *NoteStore) Get(id string) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Note{}, ErrNotFound
	}
	return s.notes[i].Clone(), nil
}

// Replace swaps the note with the given id for n, keeping its position.
// n.ID is overwritten with id.
func (s *NoteStore) Replace(id string, n models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	n = n.Clone()
	n.ID = s.notes[i].ID
	s.notes[i] = n
	return nil
}

func (s *NoteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}
	s.notes = slices.Delete(s.notes, i, i+1)
	return nil
}

// caller holds mu
func (s *NoteStore) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}
