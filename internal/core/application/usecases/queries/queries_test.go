package queries_test

import (
	"testing"

	"exchange/internal/core/application/usecases/queries"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetAvailableBatchesQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetAvailableBatchesQuery().Validate())

	var zero queries.GetAvailableBatchesQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAvailableBatchesQueryIsNotConstructed)
}

func TestNewGetOrdersForActorQuery(t *testing.T) {
	actorID := kernel.NewUUID()

	q, err := queries.NewGetOrdersForActorQuery(actorID)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, actorID, q.ActorID())

	_, err = queries.NewGetOrdersForActorQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero queries.GetOrdersForActorQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrdersForActorQueryIsNotConstructed)
}

func TestNewGetActorRatingQuery(t *testing.T) {
	actorID := kernel.NewUUID()

	q, err := queries.NewGetActorRatingQuery(actorID)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, actorID, q.ActorID())

	_, err = queries.NewGetActorRatingQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetAuditTrailQuery(t *testing.T) {
	entityID := kernel.NewUUID()

	q, err := queries.NewGetAuditTrailQuery(entityID, true)
	require.NoError(t, err)
	require.NoError(t, q.Validate())
	require.Equal(t, entityID, q.EntityID())
	require.True(t, q.IsAdmin())

	_, err = queries.NewGetAuditTrailQuery(kernel.UUID{}, true)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetAuditTrailQueryHandler_Handle_NonAdmin(t *testing.T) {
	q, err := queries.NewGetAuditTrailQuery(kernel.NewUUID(), false)
	require.NoError(t, err)

	h := queries.NewGetAuditTrailQueryHandler(nil)
	_, err = h.Handle(t.Context(), q)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}
