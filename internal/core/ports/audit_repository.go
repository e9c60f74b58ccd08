package ports

import (
	"context"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the administrative
// audit trail. Entries are append-only: there is no update or delete.
type AuditRepository interface {
	// Add persists a new audit entry. Callers run this inside the same
	// transaction as the override it records, so the pair commits atomically.
	Add(ctx context.Context, aggregate *audit.Entry) error

	// GetAllForEntity retrieves the override history of one entity, newest first.
	GetAllForEntity(ctx context.Context, entityID kernel.UUID) ([]*audit.Entry, error)
}
