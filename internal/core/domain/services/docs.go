// Package services contains stateless domain services that coordinate
// several aggregates without belonging to any single one of them.
package services
