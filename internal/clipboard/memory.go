package clipboard

import (
	"context"
	"sync"
)

// Memory is an in-process [Clipboard]. It keeps every write so callers can
// inspect the exact sequence of values that passed through it.
type Memory struct {
	mu      sync.Mutex
	current string
	history []string
}

// NewMemory returns a Memory clipboard holding initial.
func NewMemory(initial string) *Memory {
	return &Memory{current: initial}
}

func (m *Memory) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, nil
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = text
	m.history = append(m.history, text)
	return nil
}

// History returns a copy of all values written so far, oldest first.
func (m *Memory) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}
