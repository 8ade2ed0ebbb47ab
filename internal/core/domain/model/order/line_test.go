package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	itemID := kernel.NewUUID()

	t.Run("should create valid line", func(t *testing.T) {
		line, err := order.NewLine(itemID, "Chicken Biryani", 150, 2)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.MenuItemID().IsEqual(itemID))
		assert.Equal(t, "Chicken Biryani", line.Name())
		assert.Equal(t, 150, line.UnitPrice())
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, 300, line.Subtotal())
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		line, err := order.NewLine(itemID, "Free Sauce", 0, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, line.Subtotal())
	})

	t.Run("should fail with invalid menu item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLine(invalidID, "Chicken Biryani", 150, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := order.NewLine(itemID, "", 150, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Chicken Biryani", -1, 2)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(itemID, "Chicken Biryani", 150, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value line fails validation", func(t *testing.T) {
		var line order.Line

		require.Error(t, line.Validate())
	})
}
