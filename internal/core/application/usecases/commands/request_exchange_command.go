package commands

import (
	"errors"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrRequestExchangeCommandIsNotConstructed = errors.New(
	"RequestExchangeCommand must be created via NewRequestExchangeCommand constructor",
)

// RequestExchangeCommand represents an actor asking for a published item.
// The resulting order starts pending; the item is not reserved until the
// provider accepts.
type RequestExchangeCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	itemID      kernel.UUID
	itemKind    exchange.ItemKind
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRequestExchangeCommand creates a command to request an item.
// Validates that all IDs are valid and the item kind is known.
func NewRequestExchangeCommand(
	orderID, itemID kernel.UUID,
	itemKind exchange.ItemKind,
	requesterID kernel.UUID,
) (RequestExchangeCommand, error) {
	requestCommand := RequestExchangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requestCommand.setOrderID(orderID),
		requestCommand.setItem(itemID, itemKind),
		requestCommand.setRequesterID(requesterID),
	); err != nil {
		return RequestExchangeCommand{}, err
	}

	return requestCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestExchangeCommand) Validate() error {
	return c.guard.Validate(ErrRequestExchangeCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c RequestExchangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the requested item.
func (c RequestExchangeCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ItemKind returns whether the requested item is a batch or a product.
func (c RequestExchangeCommand) ItemKind() exchange.ItemKind {
	return c.itemKind
}

// RequesterID returns the identifier of the actor asking for the item.
func (c RequestExchangeCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c *RequestExchangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestExchangeCommand) setItem(itemID kernel.UUID, itemKind exchange.ItemKind) error {
	if err := errors.Join(itemID.Validate(), itemKind.Validate()); err != nil {
		return err
	}

	c.itemID = itemID
	c.itemKind = itemKind
	return nil
}

func (c *RequestExchangeCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}
