package hitpoints

//go:generate mockgen -destination=mock/mock.go -package=mockhitpoints -source=interface.go

import (
	"context"

	"github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
)

// MutateFunc computes the next state of a loaded record. Returning an error
// aborts the update and nothing is written.
type MutateFunc func(current *hitpoints.Record) (*hitpoints.Record, error)

// Repository defines the interface for hit point record persistence.
//
// Implementations serialize Update per identifier: the load, mutate and store
// steps for one id never interleave with another Update of the same id.
// Operations on different ids do not block each other.
type Repository interface {
	// Get retrieves a record by ID
	// Returns errors.NotFound if no record exists
	Get(ctx context.Context, id string) (*hitpoints.Record, error)

	// Put creates the record or overwrites any existing record with the same ID
	Put(ctx context.Context, record *hitpoints.Record) error

	// Update loads the record, applies mutate and stores the result atomically
	// Returns errors.NotFound if no record exists; never creates one
	Update(ctx context.Context, id string, mutate MutateFunc) (*hitpoints.Record, error)

	// Delete removes a record
	// Returns errors.NotFound if no record exists
	Delete(ctx context.Context, id string) error

	// Ping checks that the backing store is reachable
	Ping(ctx context.Context) error
}
