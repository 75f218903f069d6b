package store

import (
	"sync"

	"github.com/dgigel/go-modulkassa/modulkassa/model"
)

// Memory keeps the association in process memory. Useful for tests and
// for hosts that manage persistence themselves.
type Memory struct {
	mu    sync.Mutex
	assoc *model.Association
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Association() (*model.Association, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.assoc == nil || m.assoc.Login == "" {
		return nil, nil
	}
	a := *m.assoc
	return &a, nil
}

func (m *Memory) Save(assoc model.Association) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assoc = &assoc
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.assoc = nil
	return nil
}
