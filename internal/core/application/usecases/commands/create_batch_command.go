package commands

import (
	"errors"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var (
	ErrCreateBatchCommandIsNotConstructed = errors.New(
		"CreateBatchCommand must be created via NewCreateBatchCommand constructor",
	)
	ErrTitleIsRequired    = errors.New("title is required")
	ErrCategoryIsRequired = errors.New("category is required")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// CreateBatchCommand represents a request to publish a new batch of material.
// The batch starts in the available state and becomes visible to requesters
// immediately after the handler commits.
//
// Example:
//
//	batchID := kernel.NewUUID()
//	cmd, err := NewCreateBatchCommand(batchID, ownerID, "Coffee grounds", "organic", 12)
//	if err != nil {
//	    return fmt.Errorf("invalid batch data: %w", err)
//	}
//
//	handler := NewCreateBatchCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to publish batch: %w", err)
//	}
type CreateBatchCommand struct { //nolint:recvcheck //using for validation
	batchID    kernel.UUID
	ownerID    kernel.UUID
	title      string
	category   string
	quantityKg int

	guard guard.ConstructorGuard
}

// NewCreateBatchCommand creates a command to publish a new batch.
// Validates that both IDs are valid, title and category are not empty,
// and quantity is positive.
func NewCreateBatchCommand(
	batchID, ownerID kernel.UUID,
	title, category string,
	quantityKg int,
) (CreateBatchCommand, error) {
	batchCommand := CreateBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		batchCommand.setBatchID(batchID),
		batchCommand.setOwnerID(ownerID),
		batchCommand.setTitle(title),
		batchCommand.setCategory(category),
		batchCommand.setQuantityKg(quantityKg),
	); err != nil {
		return CreateBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBatchCommandIsNotConstructed if validation fails.
func (c CreateBatchCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchCommandIsNotConstructed)
}

// BatchID returns the unique identifier for the batch.
func (c CreateBatchCommand) BatchID() kernel.UUID {
	return c.batchID
}

// OwnerID returns the identifier of the actor publishing the batch.
func (c CreateBatchCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the human-readable batch title.
func (c CreateBatchCommand) Title() string {
	return c.title
}

// Category returns the material category of the batch.
func (c CreateBatchCommand) Category() string {
	return c.category
}

// QuantityKg returns the batch weight in kilograms.
func (c CreateBatchCommand) QuantityKg() int {
	return c.quantityKg
}

func (c *CreateBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}

	c.batchID = batchID
	return nil
}

func (c *CreateBatchCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateBatchCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateBatchCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *CreateBatchCommand) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantityKg = quantityKg
	return nil
}
