package tui

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-clip-keeper/models"
)

// fieldCount matches the five password entries of the desktop form.
const fieldCount = 5

// fieldStore holds the values of the password fields. It is shared by
// pointer between the model and the cycle targets so that Apply can fill a
// field synchronously from the cycle goroutine.
type fieldStore struct {
	mu     sync.Mutex
	values [fieldCount]string
	states [fieldCount]models.CycleState
}

func (s *fieldStore) value(i int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[i]
}

func (s *fieldStore) state(i int) models.CycleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[i]
}

func (s *fieldStore) busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.states {
		if st == models.CycleAwaitingDecrypt || st == models.CycleAwaitingSanitize {
			return true
		}
	}
	return false
}

// fieldTarget applies a cycle result to one field of the store.
type fieldTarget struct {
	store *fieldStore
	index int
}

func (t fieldTarget) Apply(ctx context.Context, result models.DecryptResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.values[t.index] = result.SecretMasked
	return nil
}

func (t fieldTarget) ObserveState(_ string, state models.CycleState) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	t.store.states[t.index] = state
}
