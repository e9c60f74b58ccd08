// Package exchange provides the domain model for bilateral exchange orders:
// the record of one actor requesting an item another actor owns.
//
// The package includes:
//   - Order: the aggregate root managing order identity, participants, and lifecycle
//   - Status: the order state machine (Pending/Accepted/Rejected/Cancelled/Completed)
//   - ItemKind: whether an order references a batch or a product
//
// Key business rules:
//   - Requester and provider are always distinct actors
//   - Only the provider accepts, rejects, or completes; either participant
//     cancels while the order is Pending or Accepted
//   - Requesting does not reserve the item; acceptance does
//   - Lifecycle steps are idempotent under retry: re-applying a step that
//     already happened succeeds without a second state change
//
// The coupling to the underlying item's status lives in the application
// layer, which calls the batch status guard alongside these aggregates; the
// guard never reaches back into orders.
package exchange
