package queries

import (
	"context"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableBatchesQueryHandler retrieves available batches from the database.
//
// Example:
//
//	handler := NewGetAvailableBatchesQueryHandler(db)
//	query := NewGetAvailableBatchesQuery()
//
//	batches, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d batches open for requests\n", len(batches))
type GetAvailableBatchesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableBatchesQueryHandler creates a handler for marketplace queries.
func NewGetAvailableBatchesQueryHandler(db *gorm.DB) GetAvailableBatchesQueryHandler {
	return GetAvailableBatchesQueryHandler{db: db}
}

// Handle executes the query and returns every batch in the available status.
// Results are sorted by ID for stable output.
func (h GetAvailableBatchesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableBatchesQuery,
) ([]GetAvailableBatchesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	batches := make([]GetAvailableBatchesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_id,
			title,
			category,
			quantity_kg
		FROM batches
		WHERE status = ?
		ORDER BY id
	`, int(batch.Available)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var batchResp GetAvailableBatchesQueryResponse
		var id, ownerID uuid.UUID

		err = rows.Scan(
			&id,
			&ownerID,
			&batchResp.Title,
			&batchResp.Category,
			&batchResp.QuantityKg,
		)
		if err != nil {
			return nil, err
		}

		batchID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		batchResp.ID = batchID

		batchOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}
		batchResp.OwnerID = batchOwnerID

		batches = append(batches, batchResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}
