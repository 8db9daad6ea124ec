package hitpoints

import (
	"context"
	"sync"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/repositories"
)

var _ Repository = (*InMemoryRepository)(nil)

// InMemoryRepository is an in-memory implementation of the hit point repository
// Useful for testing and development
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*hitpoints.Record
	locks   *keyedMutex
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*hitpoints.Record),
		locks:   newKeyedMutex(),
	}
}

// Get retrieves a record by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, repositories.NewRecordNotFoundError(id)
	}

	// Return a copy to avoid external modifications
	return record.Clone(), nil
}

// Put creates or overwrites a record
func (r *InMemoryRepository) Put(ctx context.Context, record *hitpoints.Record) error {
	if record == nil {
		return dnderr.InvalidArgument("hit point record cannot be nil")
	}
	if err := repositories.RequireID(record.ID); err != nil {
		return err
	}

	unlock := r.locks.lock(record.ID)
	defer unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.ID] = record.Clone()
	return nil
}

// Update applies mutate while holding the lock for id only
func (r *InMemoryRepository) Update(ctx context.Context, id string, mutate MutateFunc) (*hitpoints.Record, error) {
	if err := repositories.RequireID(id); err != nil {
		return nil, err
	}

	unlock := r.locks.lock(id)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := mutate(current)
	if err != nil {
		return nil, err
	}
	if err := checkMutation(id, next); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.records[id] = next.Clone()
	r.mu.Unlock()

	return next, nil
}

// Delete removes a record
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if err := repositories.RequireID(id); err != nil {
		return err
	}

	unlock := r.locks.lock(id)
	defer unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[id]; !exists {
		return repositories.NewRecordNotFoundError(id)
	}

	delete(r.records, id)
	return nil
}

// Ping always succeeds for the in-memory store
func (r *InMemoryRepository) Ping(ctx context.Context) error {
	return nil
}

// keyedMutex hands out one mutex per key and drops it once nobody holds or
// waits on it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()

	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
