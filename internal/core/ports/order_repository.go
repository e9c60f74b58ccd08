package ports

import (
	"context"
	"time"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
)

// OrderRepository defines the persistence contract for exchange order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *exchange.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *exchange.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*exchange.Order, error)

	// GetAllForActor retrieves every order where the actor is requester or
	// provider, newest first.
	GetAllForActor(ctx context.Context, actorID kernel.UUID) ([]*exchange.Order, error)

	// GetAllPendingOlderThan retrieves pending orders created before the
	// cutoff. The stale-request sweep uses this to reject requests the
	// provider never answered.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*exchange.Order, error)

	// GetPendingCountForItem counts live pending orders referencing an item.
	GetPendingCountForItem(ctx context.Context, itemID kernel.UUID) (int64, error)

	// UpdateStatus conditionally moves the order from expected to target in a
	// single row write, returning AlreadyResolvedError when the row no longer
	// holds expected. Same contract as BatchRepository.UpdateStatus.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, target exchange.Status) error
}
