package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrCompleteExchangeCommandIsNotConstructed = errors.New(
	"CompleteExchangeCommand must be created via NewCompleteExchangeCommand constructor",
)

// CompleteExchangeCommand represents the provider confirming the physical
// hand-off of an accepted exchange.
type CompleteExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteExchangeCommand creates a command to complete an exchange.
func NewCompleteExchangeCommand(orderID, actorID kernel.UUID) (CompleteExchangeCommand, error) {
	completeCommand := CompleteExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setOrderID(orderID),
		completeCommand.setActorID(actorID),
	); err != nil {
		return CompleteExchangeCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteExchangeCommand) Validate() error {
	return c.guard.Validate(ErrCompleteExchangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the provider confirming the hand-off.
func (c CompleteExchangeCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *CompleteExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteExchangeCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
