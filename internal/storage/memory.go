package storage

import (
	"context"
	"sync"

	. "directory/internal/models"
)

// memoryStore keeps the collection in process memory. It backs repository
// and controller tests and mirrors the durable store's contract exactly:
// whole-collection reads and writes, defaulted view state. It never seeds.
type memoryStore struct {
	mu        sync.Mutex
	employees []Employee
	state     ViewState
}

func NewMemory(employees ...Employee) Store {
	return &memoryStore{
		employees: append([]Employee(nil), employees...),
		state:     DefaultViewState(),
	}
}

func (s *memoryStore) Load(ctx context.Context) []Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Employee(nil), s.employees...)
}

func (s *memoryStore) Save(ctx context.Context, employees []Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees = append([]Employee(nil), employees...)
	return nil
}

func (s *memoryStore) ViewState(ctx context.Context) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Normalized()
}

func (s *memoryStore) SetViewState(ctx context.Context, state ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Normalized()
}
