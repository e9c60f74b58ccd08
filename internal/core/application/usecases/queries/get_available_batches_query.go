// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain layer and read the database directly,
// returning response structs shaped for the caller rather than aggregates.
package queries

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrGetAvailableBatchesQueryIsNotConstructed = errors.New(
	"GetAvailableBatchesQuery must be created via NewGetAvailableBatchesQuery constructor",
)

// GetAvailableBatchesQuery retrieves every batch currently open for requests.
// This is the marketplace browse view.
type GetAvailableBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableBatchesQuery creates a query for the marketplace listing.
func NewGetAvailableBatchesQuery() GetAvailableBatchesQuery {
	return GetAvailableBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableBatchesQueryIsNotConstructed)
}

// GetAvailableBatchesQueryResponse represents one available batch in the
// marketplace listing.
type GetAvailableBatchesQueryResponse struct {
	ID         kernel.UUID
	OwnerID    kernel.UUID
	Title      string
	Category   string
	QuantityKg int
}
