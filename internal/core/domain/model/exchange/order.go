package exchange

import (
	"errors"
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrSameRequesterAndProvider is returned when an actor tries to open an
	// exchange with themselves.
	ErrSameRequesterAndProvider = errs.NewValueIsInvalidError("requester and provider must be different actors")
)

// Order represents a bilateral exchange of one item between a requester and a
// provider. It is the aggregate root for the order side of an exchange and
// enforces who may drive each lifecycle step.
//
// Order follows these invariants:
//   - Must have a valid identifier, item reference, and two distinct actors
//   - Status moves Pending -> Accepted -> Completed, with Rejected and
//     Cancelled as the other terminal exits
//   - Only the provider accepts, rejects, or completes; either participant
//     cancels while the order is still live
//   - Re-applying a step that already happened is a no-op, so retries after
//     a partial failure are safe
//
// The underlying item's status is NOT managed here: the application layer
// composes this aggregate with the batch status guard, batch first reads the
// order side so a crash between the two writes leaves a re-drivable state.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// itemID references the batch or product being exchanged
	itemID kernel.UUID

	// itemKind tells whether itemID is a batch or a product
	itemKind ItemKind

	// requesterID is the actor asking for the item
	requesterID kernel.UUID

	// providerID is the actor that owns the item
	providerID kernel.UUID

	// status represents the current state in the order lifecycle
	status Status

	// createdAt and updatedAt track when the order was opened and last moved
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The requester and provider
// must be distinct actors; the item status is intentionally left untouched
// (reservation happens on acceptance, so speculative requests lock nothing).
func NewOrder(id, itemID kernel.UUID, itemKind ItemKind, requesterID, providerID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItem(itemID, itemKind),
		o.setParticipants(requesterID, providerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its recorded
// status and timestamps.
func RestoreOrder(
	id, itemID kernel.UUID,
	itemKind ItemKind,
	requesterID, providerID kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(id, itemID, itemKind, requesterID, providerID)
	if err != nil {
		return nil, err
	}

	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ItemID returns the identifier of the referenced batch or product.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// ItemKind returns whether the order references a batch or a product.
func (o *Order) ItemKind() ItemKind {
	return o.itemKind
}

// RequesterID returns the actor asking for the item.
func (o *Order) RequesterID() kernel.UUID {
	return o.requesterID
}

// ProviderID returns the actor that owns the item.
func (o *Order) ProviderID() kernel.UUID {
	return o.providerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was opened.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed status.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsParticipant reports whether actorID is the requester or the provider.
func (o *Order) IsParticipant(actorID kernel.UUID) bool {
	return o.requesterID.IsEqual(actorID) || o.providerID.IsEqual(actorID)
}

// Accept moves the order Pending -> Accepted. Only the provider may accept.
// An order already Accepted accepts again as a no-op, so a retried request
// after a network failure does not error; any other status means the order
// was resolved since the caller's last read.
func (o *Order) Accept(actorID kernel.UUID) error {
	if !o.providerID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "accept this exchange")
	}

	switch o.status {
	case Accepted:
		return nil
	case Pending:
		o.moveTo(Accepted)
		return nil
	default:
		return errs.NewAlreadyResolvedError("order", o.id.String(), o.status.String())
	}
}

// Reject moves the order Pending -> Rejected. Only the provider may reject.
// Idempotent on an already-Rejected order.
func (o *Order) Reject(actorID kernel.UUID) error {
	if !o.providerID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "reject this exchange")
	}

	switch o.status {
	case Rejected:
		return nil
	case Pending:
		o.moveTo(Rejected)
		return nil
	default:
		return errs.NewAlreadyResolvedError("order", o.id.String(), o.status.String())
	}
}

// Cancel withdraws a live (Pending or Accepted) order. Either participant
// may cancel. Idempotent on an already-Cancelled order. The caller is
// responsible for releasing the item when cancelling an Accepted order.
func (o *Order) Cancel(actorID kernel.UUID) error {
	if !o.IsParticipant(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "cancel this exchange")
	}

	switch {
	case o.status == Cancelled:
		return nil
	case o.status.IsCancellable():
		o.moveTo(Cancelled)
		return nil
	default:
		return errs.NewAlreadyResolvedError("order", o.id.String(), o.status.String())
	}
}

// Complete moves the order Accepted -> Completed. Only the provider may
// complete, confirming the physical handover. Idempotent on an
// already-Completed order.
func (o *Order) Complete(actorID kernel.UUID) error {
	if !o.providerID.IsEqual(actorID) {
		return errs.NewNotAuthorizedError(actorID.String(), "complete this exchange")
	}

	switch o.status {
	case Completed:
		return nil
	case Accepted:
		o.moveTo(Completed)
		return nil
	default:
		return errs.NewAlreadyResolvedError("order", o.id.String(), o.status.String())
	}
}

func (o *Order) moveTo(status Status) {
	o.status = status
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItem(itemID kernel.UUID, itemKind ItemKind) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if err := itemKind.Validate(); err != nil {
		return err
	}
	o.itemID = itemID
	o.itemKind = itemKind
	return nil
}

func (o *Order) setParticipants(requesterID, providerID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}
	if err := providerID.Validate(); err != nil {
		return err
	}
	if requesterID.IsEqual(providerID) {
		return ErrSameRequesterAndProvider
	}
	o.requesterID = requesterID
	o.providerID = providerID
	return nil
}
