package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatsQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetOrderStatsQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetOrderStatsQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderStatsQueryIsNotConstructed)
	})
}
