package queries

import (
	"errors"
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the override history of one entity.
// The trail is admin-only; the caller resolves the capability before
// building the query.
type GetAuditTrailQuery struct { //nolint:recvcheck //using for validation
	entityID kernel.UUID
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates a query for an entity's audit trail.
func NewGetAuditTrailQuery(entityID kernel.UUID, isAdmin bool) (GetAuditTrailQuery, error) {
	trailQuery := GetAuditTrailQuery{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := trailQuery.setEntityID(entityID); err != nil {
		return GetAuditTrailQuery{}, err
	}

	return trailQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// EntityID returns the identifier of the entity whose trail is queried.
func (q GetAuditTrailQuery) EntityID() kernel.UUID {
	return q.entityID
}

// IsAdmin reports whether the acting user holds the admin capability.
func (q GetAuditTrailQuery) IsAdmin() bool {
	return q.isAdmin
}

func (q *GetAuditTrailQuery) setEntityID(entityID kernel.UUID) error {
	if err := entityID.Validate(); err != nil {
		return err
	}

	q.entityID = entityID
	return nil
}

// GetAuditTrailQueryResponse represents one administrative override on the
// entity's record.
type GetAuditTrailQueryResponse struct {
	ID             kernel.UUID
	EntityType     string
	EntityID       kernel.UUID
	AdminID        kernel.UUID
	PreviousStatus string
	NewStatus      string
	Note           string
	CreatedAt      time.Time
}
