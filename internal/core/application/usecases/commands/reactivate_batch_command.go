package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrReactivateBatchCommandIsNotConstructed = errors.New(
	"ReactivateBatchCommand must be created via NewReactivateBatchCommand constructor",
)

// ReactivateBatchCommand represents putting a cancelled batch back on the
// marketplace. Orders that referenced the batch before cancellation keep
// their history; reactivation opens a fresh round of requests.
type ReactivateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID
	actorID kernel.UUID
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewReactivateBatchCommand creates a command to reactivate a cancelled batch.
func NewReactivateBatchCommand(batchID, actorID kernel.UUID, isAdmin bool) (ReactivateBatchCommand, error) {
	reactivateCommand := ReactivateBatchCommand{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reactivateCommand.setBatchID(batchID),
		reactivateCommand.setActorID(actorID),
	); err != nil {
		return ReactivateBatchCommand{}, err
	}

	return reactivateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReactivateBatchCommand) Validate() error {
	return c.guard.Validate(ErrReactivateBatchCommandIsNotConstructed)
}

// BatchID returns the identifier of the batch being reactivated.
func (c ReactivateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// ActorID returns the identifier of the actor requesting reactivation.
func (c ReactivateBatchCommand) ActorID() kernel.UUID {
	return c.actorID
}

// IsAdmin reports whether the acting user holds the admin capability.
func (c ReactivateBatchCommand) IsAdmin() bool {
	return c.isAdmin
}

func (c *ReactivateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *ReactivateBatchCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
