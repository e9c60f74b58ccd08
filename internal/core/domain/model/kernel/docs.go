// Package kernel contains shared value objects used across the exchange
// domain model. The central type is UUID, the identity of every aggregate:
// batches, exchange orders, ratings, audit entries, and actors.
//
// Value objects here are immutable, compared by value, and constructed only
// through factory functions that enforce their invariants.
package kernel
