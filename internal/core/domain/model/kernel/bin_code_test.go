package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinCode(t *testing.T) {
	t.Run("valid_components", func(t *testing.T) {
		code, err := kernel.NewBinCode("A", 1, 1)

		require.NoError(t, err)
		require.NoError(t, code.Validate())
		assert.Equal(t, "A-01-01", code.String())
		assert.Equal(t, "A", code.Zone())
	})

	t.Run("lowercase_zone_is_normalized", func(t *testing.T) {
		code, err := kernel.NewBinCode("recv", 12, 3)

		require.NoError(t, err)
		assert.Equal(t, "RECV-12-03", code.String())
	})

	t.Run("empty_zone_fails", func(t *testing.T) {
		_, err := kernel.NewBinCode("", 1, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("aisle_out_of_range_fails", func(t *testing.T) {
		_, err := kernel.NewBinCode("A", 100, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseBinCode(t *testing.T) {
	t.Run("valid_codes", func(t *testing.T) {
		for _, s := range []string{"A-01-01", "B-12-09", "RECV-00-00"} {
			code, err := kernel.ParseBinCode(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, code.String())
		}
	})

	t.Run("invalid_codes", func(t *testing.T) {
		for _, s := range []string{"", "A0101", "a-01-01", "A-1-1", "A-01-01-02", "A-01"} {
			_, err := kernel.ParseBinCode(s)
			require.Error(t, err, s)
		}
	})
}

func TestBinCode_Less(t *testing.T) {
	a, _ := kernel.ParseBinCode("A-01-01")
	b, _ := kernel.ParseBinCode("A-01-02")
	c, _ := kernel.ParseBinCode("B-01-01")

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.False(t, c.Less(a))
	assert.False(t, a.Less(a))
}

func TestBinCode_Validate_ZeroValue(t *testing.T) {
	var code kernel.BinCode

	err := code.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrBinCodeIsNotConstructed)
}

func TestBinCode_IsEqual(t *testing.T) {
	a1, _ := kernel.ParseBinCode("A-01-01")
	a2, _ := kernel.ParseBinCode("A-01-01")
	b, _ := kernel.ParseBinCode("B-01-01")

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(b))
}
