// Package batch provides the domain model for tradable batches of recyclable
// organic waste. It implements the Batch aggregate root and the Status state
// machine that guards every batch status change in the system.
//
// The package includes:
//   - Batch: the aggregate root managing batch identity, properties, and lifecycle
//   - Status: the authoritative transition table for batch statuses
//
// Key business rules:
//   - Batches start Available and move only along the transition table
//   - Reserved means exactly one accepted exchange order holds the batch
//   - Collected is terminal: no operation, administrative override included,
//     leaves it
//   - Cancelled batches can only be reactivated back to Available
//
// The transition rules are expressed as a single static lookup table rather
// than conditionals scattered across call sites, so there is one place where
// they can be audited and tested.
package batch
