package store

import (
	"context"
	"log"
	"sync"
	"time"

	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase/interfaces"
)

// MemoryReferenceStore keeps payment references in a process-local map.
//
// This is the default backend: references are short-lived and explicitly
// best-effort across restarts, so durability is not part of the contract.
// The single mutex makes TryConsume a compare-and-swap on the used flag, which
// is the one linearizability requirement the store must uphold.
type MemoryReferenceStore struct {
	mu   sync.Mutex
	data map[string]*entities.PaymentReference
	ttl  time.Duration

	now func() time.Time
}

var _ interfaces.IReferenceStore = (*MemoryReferenceStore)(nil)

func NewMemoryReferenceStore(ttl time.Duration) *MemoryReferenceStore {
	if ttl <= 0 {
		ttl = entities.ReferenceTTL
	}
	return &MemoryReferenceStore{
		data: make(map[string]*entities.PaymentReference),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (s *MemoryReferenceStore) Add(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[id] = &entities.PaymentReference{
		ID:        id,
		CreatedAt: s.now(),
	}
	return nil
}

func (s *MemoryReferenceStore) Has(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.data[id]
	if !ok {
		return false, nil
	}
	if s.expired(ref) {
		// Lazy eviction: an expired record is dead weight either way.
		delete(s.data, id)
		return false, nil
	}
	return !ref.Used, nil
}

func (s *MemoryReferenceStore) MarkUsed(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ref, ok := s.data[id]; ok {
		ref.Used = true
	}
	return nil
}

func (s *MemoryReferenceStore) TryConsume(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.data[id]
	if !ok {
		return false, nil
	}
	if s.expired(ref) {
		delete(s.data, id)
		return false, nil
	}
	if ref.Used {
		return false, nil
	}
	ref.Used = true
	return true, nil
}

func (s *MemoryReferenceStore) SweepExpired(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, ref := range s.data {
		if s.expired(ref) {
			delete(s.data, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Printf("[reference][store] swept %d expired payment references", evicted)
	}
	return nil
}

// expired assumes s.mu is held.
func (s *MemoryReferenceStore) expired(ref *entities.PaymentReference) bool {
	return s.now().Sub(ref.CreatedAt) > s.ttl
}
