package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRecentOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewGetRecentOrdersQuery(50)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, 50, query.Limit())
	})

	t.Run("should fail with zero limit", func(t *testing.T) {
		_, err := queries.NewGetRecentOrdersQuery(0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with negative limit", func(t *testing.T) {
		_, err := queries.NewGetRecentOrdersQuery(-1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetRecentOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetRecentOrdersQueryIsNotConstructed)
	})
}
