package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines(t *testing.T) []order.Line {
	t.Helper()

	biryani, err := order.NewLine(kernel.NewUUID(), "Chicken Biryani", 150, 2)
	require.NoError(t, err)
	sauce, err := order.NewLine(kernel.NewUUID(), "Garlic Sauce", 50, 1)
	require.NoError(t, err)

	return []order.Line{biryani, sauce}
}

func TestNewPlaceOrderCommand(t *testing.T) {
	validID := kernel.NewUUID()
	lines := testLines(t)

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(validID, "Rahim", "01712345678", "rahim@example.com", "Dhanmondi", lines, 350)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(validID))
		assert.Equal(t, "Rahim", cmd.CustomerName())
		assert.Equal(t, "01712345678", cmd.CustomerPhone())
		assert.Equal(t, "rahim@example.com", cmd.CustomerEmail())
		assert.Equal(t, "Dhanmondi", cmd.DeliveryAddress())
		assert.Len(t, cmd.Lines(), 2)
		assert.Equal(t, 350, cmd.TotalAmount())
	})

	t.Run("should allow empty email", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(validID, "Rahim", "01712345678", "", "Dhanmondi", lines, 350)

		require.NoError(t, err)
		assert.Empty(t, cmd.CustomerEmail())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewPlaceOrderCommand(invalidID, "Rahim", "01712345678", "", "Dhanmondi", lines, 350)

		require.Error(t, err)
	})

	t.Run("should fail with missing required fields", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(validID, "", "01712345678", "", "Dhanmondi", lines, 350)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewPlaceOrderCommand(validID, "Rahim", "", "", "Dhanmondi", lines, 350)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewPlaceOrderCommand(validID, "Rahim", "01712345678", "", "", lines, 350)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty lines", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(validID, "Rahim", "01712345678", "", "Dhanmondi", nil, 350)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
