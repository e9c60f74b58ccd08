package exchange_test

import (
	"testing"
	"time"

	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderActors struct {
	requester kernel.UUID
	provider  kernel.UUID
}

func newTestOrder(t *testing.T) (*exchange.Order, orderActors) {
	t.Helper()
	actors := orderActors{requester: kernel.NewUUID(), provider: kernel.NewUUID()}
	o, err := exchange.NewOrder(kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindBatch, actors.requester, actors.provider)
	require.NoError(t, err)
	return o, actors
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in Pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		itemID := kernel.NewUUID()
		requesterID := kernel.NewUUID()
		providerID := kernel.NewUUID()

		o, err := exchange.NewOrder(id, itemID, exchange.ItemKindBatch, requesterID, providerID)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, id, o.ID())
		assert.Equal(t, itemID, o.ItemID())
		assert.Equal(t, exchange.ItemKindBatch, o.ItemKind())
		assert.Equal(t, requesterID, o.RequesterID())
		assert.Equal(t, providerID, o.ProviderID())
		assert.Equal(t, exchange.Pending, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("rejects requester equal to provider", func(t *testing.T) {
		actor := kernel.NewUUID()

		_, err := exchange.NewOrder(kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindBatch, actor, actor)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects invalid item kind", func(t *testing.T) {
		_, err := exchange.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindUnknown, kernel.NewUUID(), kernel.NewUUID(),
		)

		require.Error(t, err)
	})

	t.Run("rejects zero identifiers", func(t *testing.T) {
		_, err := exchange.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), exchange.ItemKindBatch, kernel.NewUUID(), kernel.NewUUID(),
		)
		require.Error(t, err)

		_, err = exchange.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindProduct, kernel.UUID{}, kernel.NewUUID(),
		)
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores recorded status and timestamps", func(t *testing.T) {
		createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := exchange.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindProduct,
			kernel.NewUUID(), kernel.NewUUID(),
			exchange.Completed, createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, exchange.Completed, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := exchange.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), exchange.ItemKindBatch,
			kernel.NewUUID(), kernel.NewUUID(),
			exchange.Unknown, time.Now(), time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *exchange.Order
		require.ErrorIs(t, o.Validate(), exchange.ErrOrderIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		o := &exchange.Order{}
		require.ErrorIs(t, o.Validate(), exchange.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("provider accepts a pending order", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Accept(actors.provider))
		assert.Equal(t, exchange.Accepted, o.Status())
	})

	t.Run("requester may not accept", func(t *testing.T) {
		o, actors := newTestOrder(t)

		err := o.Accept(actors.requester)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, exchange.Pending, o.Status())
	})

	t.Run("a stranger may not accept", func(t *testing.T) {
		o, _ := newTestOrder(t)
		require.ErrorIs(t, o.Accept(kernel.NewUUID()), errs.ErrNotAuthorized)
	})

	t.Run("accepting twice is a no-op success", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Accept(actors.provider))
		require.NoError(t, o.Accept(actors.provider))
		assert.Equal(t, exchange.Accepted, o.Status())
	})

	t.Run("accepting a resolved order fails with AlreadyResolved", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Reject(actors.provider))

		err := o.Accept(actors.provider)

		require.ErrorIs(t, err, errs.ErrAlreadyResolved)

		var resolvedErr *errs.AlreadyResolvedError
		require.ErrorAs(t, err, &resolvedErr)
		assert.Equal(t, "order", resolvedErr.EntityType)
		assert.Equal(t, "Rejected", resolvedErr.Status)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("provider rejects a pending order", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Reject(actors.provider))
		assert.Equal(t, exchange.Rejected, o.Status())
	})

	t.Run("requester may not reject", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.ErrorIs(t, o.Reject(actors.requester), errs.ErrNotAuthorized)
	})

	t.Run("rejecting twice is a no-op success", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Reject(actors.provider))
		require.NoError(t, o.Reject(actors.provider))
	})

	t.Run("rejecting an accepted order fails with AlreadyResolved", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))

		require.ErrorIs(t, o.Reject(actors.provider), errs.ErrAlreadyResolved)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("requester cancels a pending order", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Cancel(actors.requester))
		assert.Equal(t, exchange.Cancelled, o.Status())
	})

	t.Run("provider cancels an accepted order", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))

		require.NoError(t, o.Cancel(actors.provider))
		assert.Equal(t, exchange.Cancelled, o.Status())
	})

	t.Run("a stranger may not cancel", func(t *testing.T) {
		o, _ := newTestOrder(t)
		require.ErrorIs(t, o.Cancel(kernel.NewUUID()), errs.ErrNotAuthorized)
	})

	t.Run("cancelling twice is a no-op success", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.NoError(t, o.Cancel(actors.requester))
		require.NoError(t, o.Cancel(actors.requester))
	})

	t.Run("cancelling a completed order fails with AlreadyResolved", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))
		require.NoError(t, o.Complete(actors.provider))

		require.ErrorIs(t, o.Cancel(actors.requester), errs.ErrAlreadyResolved)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("provider completes an accepted order", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))

		require.NoError(t, o.Complete(actors.provider))
		assert.Equal(t, exchange.Completed, o.Status())
	})

	t.Run("requester may not complete", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))

		require.ErrorIs(t, o.Complete(actors.requester), errs.ErrNotAuthorized)
	})

	t.Run("a pending order cannot complete", func(t *testing.T) {
		o, actors := newTestOrder(t)

		require.ErrorIs(t, o.Complete(actors.provider), errs.ErrAlreadyResolved)
		assert.Equal(t, exchange.Pending, o.Status())
	})

	t.Run("completing twice is a no-op success", func(t *testing.T) {
		o, actors := newTestOrder(t)
		require.NoError(t, o.Accept(actors.provider))
		require.NoError(t, o.Complete(actors.provider))
		require.NoError(t, o.Complete(actors.provider))
	})
}

func TestOrder_IsParticipant(t *testing.T) {
	o, actors := newTestOrder(t)

	assert.True(t, o.IsParticipant(actors.requester))
	assert.True(t, o.IsParticipant(actors.provider))
	assert.False(t, o.IsParticipant(kernel.NewUUID()))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, exchange.Pending.IsTerminal())
	assert.False(t, exchange.Accepted.IsTerminal())
	assert.True(t, exchange.Rejected.IsTerminal())
	assert.True(t, exchange.Cancelled.IsTerminal())
	assert.True(t, exchange.Completed.IsTerminal())
}

func TestStatus_IsCancellable(t *testing.T) {
	assert.True(t, exchange.Pending.IsCancellable())
	assert.True(t, exchange.Accepted.IsCancellable())
	assert.False(t, exchange.Rejected.IsCancellable())
	assert.False(t, exchange.Cancelled.IsCancellable())
	assert.False(t, exchange.Completed.IsCancellable())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []exchange.Status{
		exchange.Pending, exchange.Accepted, exchange.Rejected, exchange.Cancelled, exchange.Completed,
	} {
		require.NoError(t, s.Validate())
	}

	require.Error(t, exchange.Unknown.Validate())
	require.Error(t, exchange.Status(9).Validate())
}

func TestItemKind(t *testing.T) {
	require.NoError(t, exchange.ItemKindBatch.Validate())
	require.NoError(t, exchange.ItemKindProduct.Validate())
	require.Error(t, exchange.ItemKindUnknown.Validate())

	assert.Equal(t, "batch", exchange.ItemKindBatch.String())
	assert.Equal(t, "product", exchange.ItemKindProduct.String())
	assert.Equal(t, "unknown", exchange.ItemKindUnknown.String())
}

func TestItemKindFromString(t *testing.T) {
	for _, want := range []exchange.ItemKind{exchange.ItemKindBatch, exchange.ItemKindProduct} {
		got, err := exchange.ItemKindFromString(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := exchange.ItemKindFromString("Batch")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
