package batch

import (
	"errors"
	"fmt"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"
)

var (
	// ErrBatchIsNotConstructed is returned when a Batch instance was not created
	// through NewBatch or RestoreBatch. This ensures all batches are validated.
	ErrBatchIsNotConstructed = errors.New("Batch must be created via NewBatch or RestoreBatch constructor")

	// ErrTitleIsRequired is returned when attempting to create a batch without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrCategoryIsRequired is returned when attempting to create a batch without a category.
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
)

// Batch represents a generator-owned tradable unit of recyclable organic
// waste. It is the aggregate root for the item side of an exchange.
//
// Batch follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Title and category must be non-empty, quantity must be positive
//   - Status changes only through the transitions the Status table permits
//   - Can only be created through NewBatch or RestoreBatch
//
// Deleting a batch row is an external collaborator concern; this core never
// removes one, it only drives its status.
type Batch struct {
	// id is the unique identifier for the batch
	id kernel.UUID

	// ownerID references the generator actor that listed the batch
	ownerID kernel.UUID

	// title is the short human-readable description of the batch contents
	title string

	// category classifies the waste type (e.g. fruit, garden, coffee grounds)
	category string

	// quantityKg is the batch weight in kilograms (must be positive)
	quantityKg int

	// status represents the current state in the batch lifecycle
	status Status

	// isConstructed ensures the batch was created via a constructor
	isConstructed bool
}

// NewBatch creates a new Batch in Available status with validation. This is
// the only way to list a new batch, ensuring all business invariants hold.
func NewBatch(id, ownerID kernel.UUID, title, category string, quantityKg int) (*Batch, error) {
	b := &Batch{
		status:        Available,
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setOwnerID(ownerID),
		b.setTitle(title),
		b.setCategory(category),
		b.setQuantityKg(quantityKg),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBatch reconstructs a Batch from persistence, including its recorded
// status. The status itself is validated; the transition history is not
// replayed, persistence is trusted to hold a state this core once produced.
func RestoreBatch(id, ownerID kernel.UUID, title, category string, quantityKg int, status Status) (*Batch, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	b, err := NewBatch(id, ownerID, title, category, quantityKg)
	if err != nil {
		return nil, err
	}

	b.status = status
	return b, nil
}

// Validate ensures the Batch instance was properly constructed.
// Returns ErrBatchIsNotConstructed otherwise.
func (b *Batch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBatchIsNotConstructed
	}
	return nil
}

// IsEqual compares two batches by their unique identifiers.
func (b *Batch) IsEqual(other *Batch) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the batch's unique identifier.
func (b *Batch) ID() kernel.UUID {
	return b.id
}

// OwnerID returns the identifier of the actor that listed the batch.
func (b *Batch) OwnerID() kernel.UUID {
	return b.ownerID
}

// IsOwnedBy reports whether actorID is the batch owner.
func (b *Batch) IsOwnedBy(actorID kernel.UUID) bool {
	return b.ownerID.IsEqual(actorID)
}

// Title returns the batch description.
func (b *Batch) Title() string {
	return b.title
}

// Category returns the waste category.
func (b *Batch) Category() string {
	return b.category
}

// QuantityKg returns the batch weight in kilograms.
func (b *Batch) QuantityKg() int {
	return b.quantityKg
}

// Status returns the current status of the batch.
func (b *Batch) Status() Status {
	return b.status
}

// Reserve transitions the batch Available -> Reserved. Called when a provider
// accepts an exchange order for it.
func (b *Batch) Reserve() error {
	return b.changeStatus(Reserved)
}

// Release transitions the batch Reserved -> Available. Called when an
// accepted exchange order is cancelled.
func (b *Batch) Release() error {
	return b.changeStatus(Available)
}

// MarkCollected transitions the batch Reserved -> Collected. This is
// irreversible: Collected is terminal for everyone.
func (b *Batch) MarkCollected() error {
	return b.changeStatus(Collected)
}

// Cancel withdraws the batch from the exchange.
func (b *Batch) Cancel() error {
	return b.changeStatus(Cancelled)
}

// Reactivate transitions the batch Cancelled -> Available. Who may trigger
// reactivation is policy decided at the application layer, not here.
func (b *Batch) Reactivate() error {
	return b.changeStatus(Available)
}

// ChangeStatusTo applies an arbitrary transition validated against the
// status table. The administrative override path uses this; the table binds
// admins exactly as it binds everyone else.
func (b *Batch) ChangeStatusTo(target Status) error {
	return b.changeStatus(target)
}

func (b *Batch) changeStatus(target Status) error {
	newStatus, err := b.status.Transition(target)
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

func (b *Batch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Batch) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	b.ownerID = ownerID
	return nil
}

func (b *Batch) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	b.title = title
	return nil
}

func (b *Batch) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	b.category = category
	return nil
}

func (b *Batch) setQuantityKg(quantityKg int) error {
	if quantityKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantityKg is invalid",
			fmt.Errorf("%d is not greater than 0", quantityKg),
		)
	}
	b.quantityKg = quantityKg
	return nil
}
