package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrAcceptExchangeCommandIsNotConstructed = errors.New(
	"AcceptExchangeCommand must be created via NewAcceptExchangeCommand constructor",
)

// AcceptExchangeCommand represents a provider accepting a pending request.
// Acceptance reserves the item, which implicitly closes the door on every
// competing pending request for it.
type AcceptExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptExchangeCommand creates a command to accept an exchange request.
func NewAcceptExchangeCommand(orderID, actorID kernel.UUID) (AcceptExchangeCommand, error) {
	acceptCommand := AcceptExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setActorID(actorID),
	); err != nil {
		return AcceptExchangeCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptExchangeCommand) Validate() error {
	return c.guard.Validate(ErrAcceptExchangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the actor performing the acceptance.
func (c AcceptExchangeCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AcceptExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptExchangeCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
