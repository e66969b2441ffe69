// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and warehouse slot codes (BinCode). Both are
// immutable, validated on construction, and safe for concurrent use.
package kernel
