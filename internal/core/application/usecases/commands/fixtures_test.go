package commands_test

import (
	"testing"

	"exchange/internal/core/domain/model/batch"
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func newTestBatch(t *testing.T, ownerID kernel.UUID, status batch.Status) *batch.Batch {
	t.Helper()
	b, err := batch.RestoreBatch(kernel.NewUUID(), ownerID, "Coffee grounds", "organic", 10, status)
	require.NoError(t, err)
	return b
}

func newPendingOrder(t *testing.T, itemID, requesterID, providerID kernel.UUID) *exchange.Order {
	t.Helper()
	o, err := exchange.NewOrder(kernel.NewUUID(), itemID, exchange.ItemKindBatch, requesterID, providerID)
	require.NoError(t, err)
	return o
}

func newAcceptedOrder(t *testing.T, itemID, requesterID, providerID kernel.UUID) *exchange.Order {
	t.Helper()
	o := newPendingOrder(t, itemID, requesterID, providerID)
	require.NoError(t, o.Accept(providerID))
	return o
}

func newCompletedOrder(t *testing.T, itemID, requesterID, providerID kernel.UUID) *exchange.Order {
	t.Helper()
	o := newAcceptedOrder(t, itemID, requesterID, providerID)
	require.NoError(t, o.Complete(providerID))
	return o
}
