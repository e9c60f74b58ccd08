// Package audit provides the domain model for the administrative audit
// trail: immutable records of every status override an administrator issues.
//
// Entries are append-only. They are written atomically with the override
// they describe: either both the status change and its entry commit, or
// neither does. Nothing else in the system consults them at runtime; they
// exist for accountability.
package audit

import (
	"errors"
	"fmt"
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"
)

// EntityType names the kind of entity an override touched.
type EntityType int

const (
	// EntityTypeUnknown represents an invalid or undefined entity type.
	EntityTypeUnknown EntityType = iota

	// EntityTypeBatch marks an override of a waste batch's status.
	EntityTypeBatch

	// EntityTypeProduct marks an override of a product listing's status.
	EntityTypeProduct

	// EntityTypeUser marks an override of a user account's standing.
	EntityTypeUser
)

func getEntityTypeStrings() map[EntityType]string {
	return map[EntityType]string{
		EntityTypeBatch:   "batch",
		EntityTypeProduct: "product",
		EntityTypeUser:    "user",
	}
}

// Validate checks if the EntityType is one of batch, product, or user.
func (t EntityType) Validate() error {
	if _, ok := getEntityTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"entity type is invalid",
			fmt.Errorf("%d is not a valid entity type", t),
		)
	}
	return nil
}

// EntityTypeFromString parses "batch", "product", or "user" into an
// EntityType. Returns ErrValueIsInvalid when the name matches no type.
func EntityTypeFromString(s string) (EntityType, error) {
	for entityType, name := range getEntityTypeStrings() {
		if name == s {
			return entityType, nil
		}
	}

	return EntityTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"entity type is invalid",
		fmt.Errorf("%q is not a valid entity type", s),
	)
}

// String returns "batch", "product", or "user", or "unknown" for invalid values.
func (t EntityType) String() string {
	if str, ok := getEntityTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

	// ErrPreviousStatusIsRequired is returned when an entry lacks the status
	// the override moved away from.
	ErrPreviousStatusIsRequired = errs.NewValueIsRequiredError("previousStatus")

	// ErrNewStatusIsRequired is returned when an entry lacks the status the
	// override moved to.
	ErrNewStatusIsRequired = errs.NewValueIsRequiredError("newStatus")
)

// Entry is one immutable audit record of an administrative status override.
// It has no mutators: once constructed it only travels to the store.
type Entry struct {
	// id is the unique identifier for the entry
	id kernel.UUID

	// entityType and entityID name the overridden entity
	entityType EntityType
	entityID   kernel.UUID

	// adminID is the administrator that issued the override
	adminID kernel.UUID

	// previousStatus and newStatus record the transition, as display strings
	// so one trail covers batches, products, and user standing alike
	previousStatus string
	newStatus      string

	// note is the administrator's optional justification
	note string

	// createdAt is when the override was recorded
	createdAt time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates a validated audit entry for an administrative override.
// Whether the override itself is legal (the transition table, the admin
// capability) is the override handler's concern; the entry records what was
// decided there.
func NewEntry(
	id kernel.UUID,
	entityType EntityType,
	entityID, adminID kernel.UUID,
	previousStatus, newStatus, note string,
) (*Entry, error) {
	e := &Entry{
		note:          note,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setEntity(entityType, entityID),
		e.setAdminID(adminID),
		e.setStatuses(previousStatus, newStatus),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	entityType EntityType,
	entityID, adminID kernel.UUID,
	previousStatus, newStatus, note string,
	createdAt time.Time,
) (*Entry, error) {
	e, err := NewEntry(id, entityType, entityID, adminID, previousStatus, newStatus, note)
	if err != nil {
		return nil, err
	}

	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// EntityType returns the kind of entity that was overridden.
func (e *Entry) EntityType() EntityType {
	return e.entityType
}

// EntityID returns the overridden entity's identifier.
func (e *Entry) EntityID() kernel.UUID {
	return e.entityID
}

// AdminID returns the administrator that issued the override.
func (e *Entry) AdminID() kernel.UUID {
	return e.adminID
}

// PreviousStatus returns the status the override moved away from.
func (e *Entry) PreviousStatus() string {
	return e.previousStatus
}

// NewStatus returns the status the override moved to.
func (e *Entry) NewStatus() string {
	return e.newStatus
}

// Note returns the administrator's optional justification.
func (e *Entry) Note() string {
	return e.note
}

// CreatedAt returns when the override was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setEntity(entityType EntityType, entityID kernel.UUID) error {
	if err := entityType.Validate(); err != nil {
		return err
	}
	if err := entityID.Validate(); err != nil {
		return err
	}
	e.entityType = entityType
	e.entityID = entityID
	return nil
}

func (e *Entry) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}
	e.adminID = adminID
	return nil
}

func (e *Entry) setStatuses(previousStatus, newStatus string) error {
	if previousStatus == "" {
		return ErrPreviousStatusIsRequired
	}
	if newStatus == "" {
		return ErrNewStatusIsRequired
	}
	e.previousStatus = previousStatus
	e.newStatus = newStatus
	return nil
}
