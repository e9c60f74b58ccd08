package queries

import (
	"context"
	"time"

	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAuditTrailQueryHandler retrieves an entity's override history from the
// database, newest first.
type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditTrailQueryHandler creates a handler for audit trail queries.
func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle executes the query. Non-admin callers are refused before any read.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.IsAdmin() {
		return nil, errs.NewNotAuthorizedError("non-admin", "read the audit trail")
	}

	entries := make([]GetAuditTrailQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			entity_type,
			entity_id,
			admin_id,
			previous_status,
			new_status,
			note,
			created_at
		FROM audit_entries
		WHERE entity_id = ?
		ORDER BY created_at DESC
	`, query.EntityID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetAuditTrailQueryResponse
		var id, entityID, adminID uuid.UUID
		var entityType int
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&entityType,
			&entityID,
			&adminID,
			&entryResp.PreviousStatus,
			&entryResp.NewStatus,
			&entryResp.Note,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entryResp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entryResp.EntityID, err = kernel.UUIDFromBytes(entityID[:])
		if err != nil {
			return nil, err
		}
		entryResp.AdminID, err = kernel.UUIDFromBytes(adminID[:])
		if err != nil {
			return nil, err
		}

		entryResp.EntityType = audit.EntityType(entityType).String()
		entryResp.CreatedAt = createdAt

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
