// Package catalog contains the warehouse reference data: SKUs (stock-keeping
// units) and bin locations (physical storage slots). Both are aggregates with
// immutable identity and mutable descriptive fields; neither is ever deleted
// while referenced by inventory or order items.
package catalog
