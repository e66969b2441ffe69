package services

import (
	"sort"

	"fulfillment/internal/core/domain/model/inventory"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// PlannedPick is one entry of an allocation plan: a quantity of one SKU to
// retrieve from one bin for one order item. Each entry becomes a pick task
// once the plan is committed.
type PlannedPick struct {
	OrderItemID kernel.UUID
	SKUID       kernel.UUID
	BinCode     kernel.BinCode
	Quantity    int
}

// TaskPlanner is a domain service that allocates the items of an order
// against available inventory and produces the pick list.
//
// Allocation rules:
//   - An item is sourced from a single bin whenever one bin can cover its
//     full quantity; among sufficient bins the one with the largest
//     availability wins, with the lexicographically smallest bin code
//     breaking ties.
//   - Only when no single bin suffices is the item split, greedily taking
//     from the largest-availability bin first under the same tie-break.
//   - The plan is all or nothing. If any item cannot be covered in full the
//     whole plan fails and no reservations should be made.
type TaskPlanner struct{}

// NewTaskPlanner creates a new TaskPlanner instance.
func NewTaskPlanner() TaskPlanner {
	return TaskPlanner{}
}

// Plan computes the allocation for every item of the order against the given
// inventory units, keyed by SKU ID string. It only reads availability; the
// caller reserves the planned quantities on the units afterwards.
//
// Returns errs.ErrInsufficientAvailability (wrapped with the first SKU that
// could not be covered) when the order cannot be fully allocated.
func (p TaskPlanner) Plan(o *order.Order, unitsBySKU map[string][]*inventory.Unit) ([]PlannedPick, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	// Availability is tracked per unit locally so one item's allocation is
	// visible to the next item of the same SKU.
	remaining := make(map[*inventory.Unit]int)
	for _, units := range unitsBySKU {
		for _, u := range units {
			if err := u.Validate(); err != nil {
				return nil, err
			}
			remaining[u] = u.Available()
		}
	}

	var plan []PlannedPick
	for _, item := range o.Items() {
		picks, err := p.allocateItem(item, unitsBySKU[item.SKUID().String()], remaining)
		if err != nil {
			return nil, err
		}
		plan = append(plan, picks...)
	}

	return plan, nil
}

func (p TaskPlanner) allocateItem(
	item *order.Item,
	units []*inventory.Unit,
	remaining map[*inventory.Unit]int,
) ([]PlannedPick, error) {
	needed := item.Quantity()

	candidates := make([]*inventory.Unit, 0, len(units))
	total := 0
	for _, u := range units {
		if remaining[u] > 0 {
			candidates = append(candidates, u)
			total += remaining[u]
		}
	}
	if total < needed {
		return nil, errs.NewInsufficientAvailabilityError(
			item.SKUID().String(), "", needed, total)
	}

	// Largest availability first, smallest bin code on ties.
	sort.Slice(candidates, func(i, j int) bool {
		if remaining[candidates[i]] != remaining[candidates[j]] {
			return remaining[candidates[i]] > remaining[candidates[j]]
		}
		return candidates[i].BinCode().Less(candidates[j].BinCode())
	})

	// A single sufficient bin beats any split. After the sort the first
	// candidate is the largest-availability bin, so checking it is enough.
	if remaining[candidates[0]] >= needed {
		best := candidates[0]
		remaining[best] -= needed
		return []PlannedPick{{
			OrderItemID: item.ID(),
			SKUID:       item.SKUID(),
			BinCode:     best.BinCode(),
			Quantity:    needed,
		}}, nil
	}

	var picks []PlannedPick
	for _, u := range candidates {
		if needed == 0 {
			break
		}
		take := remaining[u]
		if take > needed {
			take = needed
		}
		remaining[u] -= take
		needed -= take
		picks = append(picks, PlannedPick{
			OrderItemID: item.ID(),
			SKUID:       item.SKUID(),
			BinCode:     u.BinCode(),
			Quantity:    take,
		})
	}

	return picks, nil
}
