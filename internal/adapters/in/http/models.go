package http

import "time"

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewBatch is the request body for publishing a waste batch.
type NewBatch struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	QuantityKg int    `json:"quantity_kg"`
}

// Batch is one marketplace listing in the available-batches response.
type Batch struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	QuantityKg int    `json:"quantity_kg"`
}

// NewExchange is the request body for asking for a listed item.
type NewExchange struct {
	ItemID   string `json:"item_id"`
	ItemKind string `json:"item_kind"`
}

// Order is one exchange order in an actor's history.
type Order struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"item_id"`
	ItemKind    string    `json:"item_kind"`
	RequesterID string    `json:"requester_id"`
	ProviderID  string    `json:"provider_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRating is the request body for rating a completed exchange.
type NewRating struct {
	OrderID string `json:"order_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// ActorRating is an actor's aggregate reputation.
type ActorRating struct {
	ActorID string  `json:"actor_id"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// NewOverride is the request body for an administrative status override.
type NewOverride struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	NewStatus  string `json:"new_status"`
	Note       string `json:"note"`
}

// AuditEntry is one administrative override on an entity's record.
type AuditEntry struct {
	ID             string    `json:"id"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	AdminID        string    `json:"admin_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
}

// Created is the response body for endpoints that mint a new identifier.
type Created struct {
	ID string `json:"id"`
}
