package catalog_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSKU(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		id := kernel.NewUUID()

		sku, err := catalog.NewSKU(id, "WIDGET-1", "Widget", "hardware")

		require.NoError(t, err)
		require.NoError(t, sku.Validate())
		assert.Equal(t, "WIDGET-1", sku.Code())
		assert.Equal(t, "Widget", sku.Name())
		assert.True(t, sku.IsActive())
	})

	t.Run("empty_code_fails", func(t *testing.T) {
		_, err := catalog.NewSKU(kernel.NewUUID(), "", "Widget", "hardware")
		require.Error(t, err)
	})

	t.Run("empty_name_fails", func(t *testing.T) {
		_, err := catalog.NewSKU(kernel.NewUUID(), "WIDGET-1", "", "hardware")
		require.Error(t, err)
	})
}

func TestSKU_Lifecycle(t *testing.T) {
	sku, err := catalog.NewSKU(kernel.NewUUID(), "WIDGET-1", "Widget", "hardware")
	require.NoError(t, err)

	sku.Deactivate()
	assert.False(t, sku.IsActive())

	sku.Activate()
	assert.True(t, sku.IsActive())

	require.NoError(t, sku.Rename("Improved Widget"))
	assert.Equal(t, "Improved Widget", sku.Name())

	require.Error(t, sku.Rename(""))
}

func TestSKU_Validate_ZeroValue(t *testing.T) {
	var sku catalog.SKU

	err := sku.Validate()

	require.Error(t, err)
	assert.Equal(t, catalog.ErrSKUIsNotConstructed, err)
}

func TestNewBinLocation(t *testing.T) {
	code, _ := kernel.ParseBinCode("A-01-01")

	t.Run("valid_input", func(t *testing.T) {
		bin, err := catalog.NewBinLocation(kernel.NewUUID(), code, catalog.LocationTypeShelf)

		require.NoError(t, err)
		require.NoError(t, bin.Validate())
		assert.Equal(t, "A-01-01", bin.Code().String())
		assert.Equal(t, catalog.LocationTypeShelf, bin.Type())
		assert.True(t, bin.IsActive())
	})

	t.Run("zero_code_fails", func(t *testing.T) {
		_, err := catalog.NewBinLocation(kernel.NewUUID(), kernel.BinCode{}, catalog.LocationTypeShelf)
		require.Error(t, err)
	})

	t.Run("unknown_type_fails", func(t *testing.T) {
		_, err := catalog.NewBinLocation(kernel.NewUUID(), code, catalog.LocationTypeUnknown)
		require.Error(t, err)
	})
}

func TestLocationType_String(t *testing.T) {
	assert.Equal(t, "Shelf", catalog.LocationTypeShelf.String())
	assert.Equal(t, "Rack", catalog.LocationTypeRack.String())
	assert.Equal(t, "Unknown", catalog.LocationType(99).String())
}
