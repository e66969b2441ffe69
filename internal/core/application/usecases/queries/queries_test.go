package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderStatusQuery(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		id := kernel.NewUUID()
		q, err := queries.NewGetOrderStatusQuery(id)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.True(t, q.OrderID().IsEqual(id))
	})

	t.Run("empty_order_id_fails", func(t *testing.T) {
		_, err := queries.NewGetOrderStatusQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q queries.GetOrderStatusQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetOrderStatusQueryIsNotConstructed)
	})
}

func TestNewGetInventoryTransactionsQuery(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		q, err := queries.NewGetInventoryTransactionsQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("empty_sku_id_fails", func(t *testing.T) {
		_, err := queries.NewGetInventoryTransactionsQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetBackorderedOrdersQuery(t *testing.T) {
	q := queries.NewGetBackorderedOrdersQuery()
	require.NoError(t, q.Validate())

	var zero queries.GetBackorderedOrdersQuery
	require.Error(t, zero.Validate())
}

func TestNewGetPickerTasksQuery(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		q, err := queries.NewGetPickerTasksQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("empty_picker_id_fails", func(t *testing.T) {
		_, err := queries.NewGetPickerTasksQuery(kernel.UUID{})
		require.Error(t, err)
	})
}
