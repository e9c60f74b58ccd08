package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrCancelExchangeCommandIsNotConstructed = errors.New(
	"CancelExchangeCommand must be created via NewCancelExchangeCommand constructor",
)

// CancelExchangeCommand represents either participant calling off an
// exchange before it is completed.
type CancelExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelExchangeCommand creates a command to cancel an exchange.
func NewCancelExchangeCommand(orderID, actorID kernel.UUID) (CancelExchangeCommand, error) {
	cancelCommand := CancelExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setOrderID(orderID),
		cancelCommand.setActorID(actorID),
	); err != nil {
		return CancelExchangeCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelExchangeCommand) Validate() error {
	return c.guard.Validate(ErrCancelExchangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being cancelled.
func (c CancelExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the participant cancelling the order.
func (c CancelExchangeCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CancelExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelExchangeCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
