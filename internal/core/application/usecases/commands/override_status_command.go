package commands

import (
	"errors"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"
	"exchange/internal/pkg/guard"
)

var ErrOverrideStatusCommandIsNotConstructed = errors.New(
	"OverrideStatusCommand must be created via NewOverrideStatusCommand constructor",
)

// OverrideStatusCommand represents an administrative status correction on a
// listed item. Overrides follow the same transition table as regular
// operations; being an admin grants no extra edges, only the right to move
// items one does not own. Every override leaves an audit entry.
type OverrideStatusCommand struct { //nolint:recvcheck //using for validation
	entryID    kernel.UUID
	entityType audit.EntityType
	entityID   kernel.UUID
	adminID    kernel.UUID
	isAdmin    bool
	newStatus  string
	note       string

	guard guard.ConstructorGuard
}

// NewOverrideStatusCommand creates a command for an administrative override.
// The entity type must be a listed item kind (batch or product); user
// account state is managed by the identity collaborator, not here.
func NewOverrideStatusCommand(
	entryID kernel.UUID,
	entityType audit.EntityType,
	entityID, adminID kernel.UUID,
	isAdmin bool,
	newStatus, note string,
) (OverrideStatusCommand, error) {
	overrideCommand := OverrideStatusCommand{
		isAdmin: isAdmin,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		overrideCommand.setEntryID(entryID),
		overrideCommand.setEntity(entityType, entityID),
		overrideCommand.setAdminID(adminID),
		overrideCommand.setNewStatus(newStatus),
	); err != nil {
		return OverrideStatusCommand{}, err
	}

	return overrideCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideStatusCommandIsNotConstructed)
}

// EntryID returns the identifier for the audit entry the override will leave.
func (c OverrideStatusCommand) EntryID() kernel.UUID {
	return c.entryID
}

// EntityType returns the kind of item whose status is being overridden.
func (c OverrideStatusCommand) EntityType() audit.EntityType {
	return c.entityType
}

// EntityID returns the identifier of the item being overridden.
func (c OverrideStatusCommand) EntityID() kernel.UUID {
	return c.entityID
}

// AdminID returns the identifier of the acting administrator.
func (c OverrideStatusCommand) AdminID() kernel.UUID {
	return c.adminID
}

// IsAdmin reports whether the acting user holds the admin capability.
func (c OverrideStatusCommand) IsAdmin() bool {
	return c.isAdmin
}

// NewStatus returns the requested target status name.
func (c OverrideStatusCommand) NewStatus() string {
	return c.newStatus
}

// Note returns the optional free-text justification for the override.
func (c OverrideStatusCommand) Note() string {
	return c.note
}

func (c *OverrideStatusCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *OverrideStatusCommand) setEntity(entityType audit.EntityType, entityID kernel.UUID) error {
	if entityType != audit.EntityTypeBatch && entityType != audit.EntityTypeProduct {
		return errs.NewValueIsInvalidError("entity type")
	}

	if err := entityID.Validate(); err != nil {
		return err
	}

	c.entityType = entityType
	c.entityID = entityID
	return nil
}

func (c *OverrideStatusCommand) setAdminID(adminID kernel.UUID) error {
	if err := adminID.Validate(); err != nil {
		return err
	}

	c.adminID = adminID
	return nil
}

func (c *OverrideStatusCommand) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewValueIsRequiredError("new status")
	}

	c.newStatus = newStatus
	return nil
}
