// Package services contains domain services: business logic that spans
// aggregates without belonging to any single one.
//
// RatingEligibility decides who may rate whom after an exchange order
// completes. It reads the order and the ratings already submitted for it; it
// never persists anything itself, creation of the rating row is the
// application layer's concern.
package services
