// Package ports defines repository and collaborator interfaces for the
// exchange domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for batch aggregates.
//
// Status writes against shared rows go through UpdateStatus, a conditional
// check-then-set: the row is only written if it still holds the expected
// status, which is how concurrent acceptances of the same batch are serialized
// without in-process locks.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier.
	// Returns ObjectNotFoundError if no such batch exists.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)

	// GetAllAvailable retrieves all batches currently open for requests.
	GetAllAvailable(ctx context.Context) ([]*batch.Batch, error)

	// UpdateStatus conditionally moves the batch from expected to target in a
	// single row write. When the row no longer holds expected — another actor
	// got there first — it returns AlreadyResolvedError and writes nothing.
	// The transition itself must already have been validated by the caller
	// against the batch status table.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected, target batch.Status) error
}
