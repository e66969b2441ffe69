// Package order contains the Order aggregate: the fulfillment request, its
// line items, the lifecycle status state machine, the derived progress value,
// and the append-only StateChange audit records that mirror every transition.
package order
