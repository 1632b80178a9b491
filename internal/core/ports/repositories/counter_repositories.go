package repositories

import "context"

// CounterRepository mints human-facing sequence ids. NextID must be atomic
// against the backing store: no two calls for the same entity name may ever
// observe the same value, even across server instances.
type CounterRepository interface {
	// NextID increments and returns the counter for entityName, creating it
	// with value 1 when absent.
	NextID(ctx context.Context, entityName string) (int64, error)
}
