// Package tx defines the transaction boundary the domain services
// depend on. The pgx-backed implementation lives in
// infrastructure/storage/postgres; registry and document services only
// ever see this interface.
package tx

import (
	"context"
)

// Manager opens and closes database transactions around a unit of work.
type Manager interface {
	// RunInTransaction runs fn inside a transaction: commit when fn
	// returns nil, rollback otherwise. When ctx already carries an open
	// transaction, fn joins it instead of opening a nested one — a sale
	// decrementing stock and an account payment stamping its date each
	// commit or roll back as one unit.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReadOnlyManager adds a read-only variant for report queries, which
// never modify data and should not take write locks.
type ReadOnlyManager interface {
	Manager

	// ReadOnly runs fn in a read-only transaction. Writes inside fn fail.
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
