package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", order.Pending.String())
	assert.Equal(t, "processing", order.Processing.String())
	assert.Equal(t, "completed", order.Completed.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"pending":    order.Pending,
			"processing": order.Processing,
			"completed":  order.Completed,
			"cancelled":  order.Cancelled,
		}
		for raw, want := range cases {
			got, err := order.StatusFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromString("unknown")
		require.Error(t, err)
	})
}

func TestStatusValidate(t *testing.T) {
	require.NoError(t, order.Pending.Validate())
	require.NoError(t, order.Processing.Validate())
	require.NoError(t, order.Completed.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("allows only the legal pairs", func(t *testing.T) {
		legal := map[order.Status][]order.Status{
			order.Pending:    {order.Processing, order.Cancelled},
			order.Processing: {order.Completed, order.Cancelled},
		}
		all := []order.Status{order.Pending, order.Processing, order.Completed, order.Cancelled}

		for _, from := range all {
			for _, to := range all {
				isLegal := false
				for _, allowed := range legal[from] {
					if allowed == to {
						isLegal = true
					}
				}

				got, err := from.TransitionTo(to)
				if isLegal {
					require.NoError(t, err, "expected %s -> %s to be legal", from, to)
					assert.Equal(t, to, got)
				} else {
					require.Error(t, err, "expected %s -> %s to be illegal", from, to)
					assert.ErrorIs(t, err, errs.ErrIllegalTransition)
				}
			}
		}
	})

	t.Run("reports current and attempted status", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Cancelled)

		require.Error(t, err)
		var transitionErr *errs.IllegalTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "completed", transitionErr.From)
		assert.Equal(t, "cancelled", transitionErr.To)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("never skips pending to completed", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Completed)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrIllegalTransition)
	})
}
