package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnit(t *testing.T, skuID kernel.UUID, bin string, quantity, reserved int) *inventory.Unit {
	t.Helper()
	code, err := kernel.ParseBinCode(bin)
	require.NoError(t, err)
	u, err := inventory.RestoreUnit(kernel.NewUUID(), skuID, code, quantity, reserved)
	require.NoError(t, err)
	return u
}

func newPlannerOrder(t *testing.T, skuIDs []kernel.UUID, quantities []int) *order.Order {
	t.Helper()
	require.Equal(t, len(skuIDs), len(quantities))
	items := make([]*order.Item, 0, len(skuIDs))
	for i := range skuIDs {
		item, err := order.NewItem(kernel.NewUUID(), skuIDs[i], quantities[i])
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), order.PriorityNormal, items)
	require.NoError(t, err)
	return o
}

func TestTaskPlanner_SingleBinCoversItem(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku}, []int{5})
	units := map[string][]*inventory.Unit{
		sku.String(): {
			newUnit(t, sku, "A-01-01", 3, 0),
			newUnit(t, sku, "A-01-02", 8, 0),
		},
	}

	plan, err := planner.Plan(o, units)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "A-01-02", plan[0].BinCode.String())
	assert.Equal(t, 5, plan[0].Quantity)
}

func TestTaskPlanner_SplitsOnlyWhenNoSingleBinSuffices(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku}, []int{10})
	units := map[string][]*inventory.Unit{
		sku.String(): {
			newUnit(t, sku, "A-01-01", 4, 0),
			newUnit(t, sku, "B-02-01", 7, 0),
			newUnit(t, sku, "C-03-01", 2, 0),
		},
	}

	plan, err := planner.Plan(o, units)

	require.NoError(t, err)
	require.Len(t, plan, 2)
	// largest availability first
	assert.Equal(t, "B-02-01", plan[0].BinCode.String())
	assert.Equal(t, 7, plan[0].Quantity)
	assert.Equal(t, "A-01-01", plan[1].BinCode.String())
	assert.Equal(t, 3, plan[1].Quantity)
}

func TestTaskPlanner_TieBreakByBinCode(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku}, []int{4})
	units := map[string][]*inventory.Unit{
		sku.String(): {
			newUnit(t, sku, "B-01-01", 6, 0),
			newUnit(t, sku, "A-01-01", 6, 0),
		},
	}

	plan, err := planner.Plan(o, units)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "A-01-01", plan[0].BinCode.String())
}

func TestTaskPlanner_ReservedStockIsNotAvailable(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku}, []int{5})
	units := map[string][]*inventory.Unit{
		sku.String(): {
			// 8 on hand but 5 already reserved, only 3 available
			newUnit(t, sku, "A-01-01", 8, 5),
			newUnit(t, sku, "A-01-02", 5, 0),
		},
	}

	plan, err := planner.Plan(o, units)

	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "A-01-02", plan[0].BinCode.String())
}

func TestTaskPlanner_EarlierItemConsumesAvailability(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku, sku}, []int{4, 4})
	units := map[string][]*inventory.Unit{
		sku.String(): {
			newUnit(t, sku, "A-01-01", 6, 0),
			newUnit(t, sku, "A-01-02", 3, 0),
		},
	}

	plan, err := planner.Plan(o, units)

	require.NoError(t, err)
	require.Len(t, plan, 3)
	// first item takes 4 from the bigger bin, leaving 2 there;
	// second item must split across what remains
	assert.Equal(t, "A-01-01", plan[0].BinCode.String())
	assert.Equal(t, 4, plan[0].Quantity)
	assert.Equal(t, "A-01-02", plan[1].BinCode.String())
	assert.Equal(t, 3, plan[1].Quantity)
	assert.Equal(t, "A-01-01", plan[2].BinCode.String())
	assert.Equal(t, 1, plan[2].Quantity)
}

func TestTaskPlanner_InsufficientAvailabilityFailsWholePlan(t *testing.T) {
	planner := services.NewTaskPlanner()
	skuA := kernel.NewUUID()
	skuB := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{skuA, skuB}, []int{2, 9})
	units := map[string][]*inventory.Unit{
		skuA.String(): {newUnit(t, skuA, "A-01-01", 5, 0)},
		skuB.String(): {newUnit(t, skuB, "B-01-01", 4, 0)},
	}

	plan, err := planner.Plan(o, units)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientAvailability)
	assert.Nil(t, plan)

	var availErr *errs.InsufficientAvailabilityError
	require.ErrorAs(t, err, &availErr)
	assert.Equal(t, skuB.String(), availErr.SKUCode)
	assert.Equal(t, 9, availErr.Requested)
	assert.Equal(t, 4, availErr.Available)
}

func TestTaskPlanner_UnknownSKUFailsWholePlan(t *testing.T) {
	planner := services.NewTaskPlanner()
	sku := kernel.NewUUID()
	o := newPlannerOrder(t, []kernel.UUID{sku}, []int{1})

	_, err := planner.Plan(o, map[string][]*inventory.Unit{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInsufficientAvailability)
}
