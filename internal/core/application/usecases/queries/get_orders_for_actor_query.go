package queries

import (
	"errors"
	"time"

	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/guard"
)

var ErrGetOrdersForActorQueryIsNotConstructed = errors.New(
	"GetOrdersForActorQuery must be created via NewGetOrdersForActorQuery constructor",
)

// GetOrdersForActorQuery retrieves every order an actor participates in,
// on either side of the exchange.
type GetOrdersForActorQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersForActorQuery creates a query for an actor's order history.
func NewGetOrdersForActorQuery(actorID kernel.UUID) (GetOrdersForActorQuery, error) {
	ordersQuery := GetOrdersForActorQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := ordersQuery.setActorID(actorID); err != nil {
		return GetOrdersForActorQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersForActorQueryIsNotConstructed)
}

// ActorID returns the identifier of the actor whose orders are listed.
func (q GetOrdersForActorQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q *GetOrdersForActorQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

// GetOrdersForActorQueryResponse represents one order in an actor's history.
// Statuses and kinds are rendered as strings for the transport layer.
type GetOrdersForActorQueryResponse struct {
	ID          kernel.UUID
	ItemID      kernel.UUID
	ItemKind    string
	RequesterID kernel.UUID
	ProviderID  kernel.UUID
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
