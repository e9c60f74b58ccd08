package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrRejectExchangeCommandIsNotConstructed = errors.New(
	"RejectExchangeCommand must be created via NewRejectExchangeCommand constructor",
)

// RejectExchangeCommand represents a provider declining a pending request.
type RejectExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectExchangeCommand creates a command to reject an exchange request.
func NewRejectExchangeCommand(orderID, actorID kernel.UUID) (RejectExchangeCommand, error) {
	rejectCommand := RejectExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setOrderID(orderID),
		rejectCommand.setActorID(actorID),
	); err != nil {
		return RejectExchangeCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectExchangeCommand) Validate() error {
	return c.guard.Validate(ErrRejectExchangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rejected.
func (c RejectExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the actor performing the rejection.
func (c RejectExchangeCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *RejectExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectExchangeCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
