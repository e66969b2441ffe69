package order

import (
	"fulfillment/internal/pkg/errs"
)

// Priority orders the queue a human operator picks from next. It never
// affects the ledger's arbitration between concurrent claims.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota
	// PriorityLow orders sort last in the pick queue.
	PriorityLow
	// PriorityNormal is the default priority.
	PriorityNormal
	// PriorityHigh orders sort ahead of normal ones.
	PriorityHigh
	// PriorityUrgent orders sort first.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "Low",
		PriorityNormal:  "Normal",
		PriorityHigh:    "High",
		PriorityUrgent:  "Urgent",
	}
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks if the Priority is one of the defined values.
func (p Priority) Validate() error {
	if p <= PriorityUnknown || p > PriorityUrgent {
		return errs.NewValueIsInvalidError("priority")
	}
	return nil
}
