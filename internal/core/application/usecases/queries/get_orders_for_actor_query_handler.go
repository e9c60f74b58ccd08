package queries

import (
	"context"
	"time"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersForActorQueryHandler retrieves an actor's order history from the
// database, covering both the orders they requested and the orders against
// their own listings.
type GetOrdersForActorQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForActorQueryHandler creates a handler for order history queries.
func NewGetOrdersForActorQueryHandler(db *gorm.DB) GetOrdersForActorQueryHandler {
	return GetOrdersForActorQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersForActorQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForActorQuery,
) ([]GetOrdersForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorID := query.ActorID().Bytes()
	orders := make([]GetOrdersForActorQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_id,
			item_kind,
			requester_id,
			provider_id,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE requester_id = ? OR provider_id = ?
		ORDER BY created_at DESC
	`, actorID, actorID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersForActorQueryResponse
		var id, itemID, requesterID, providerID uuid.UUID
		var itemKind, status int
		var createdAt, updatedAt time.Time

		err = rows.Scan(
			&id,
			&itemID,
			&itemKind,
			&requesterID,
			&providerID,
			&status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		orderResp.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return nil, err
		}
		orderResp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:])
		if err != nil {
			return nil, err
		}
		orderResp.ProviderID, err = kernel.UUIDFromBytes(providerID[:])
		if err != nil {
			return nil, err
		}

		orderResp.ItemKind = exchange.ItemKind(itemKind).String()
		orderResp.Status = exchange.Status(status).String()
		orderResp.CreatedAt = createdAt
		orderResp.UpdatedAt = updatedAt

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
