// Package inventory contains the inventory ledger domain model: the
// InventoryUnit aggregate tracking on-hand and reserved quantity of one SKU at
// one bin location, and the append-only Transaction record that justifies
// every change to it.
//
// The aggregate enforces the ledger invariants:
//
//	quantity ≥ 0
//	0 ≤ reserved ≤ quantity
//	available = quantity - reserved (derived, never stored)
//
// Every mutation method is all-or-nothing: on error the unit is unchanged.
// Serialization of concurrent mutations against the same (SKU, bin) row is
// the persistence layer's job (pessimistic row lock); this package only
// guarantees that a locked-and-reloaded unit can never be driven into an
// inconsistent state.
package inventory
