package picktask

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a pick task.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   │            └────────> Skipped
//	   └─────────────────────> Completed / Skipped
//
// Completed and Skipped are terminal; a finished task is immutable.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota
	// StatusPending means the task awaits the picker.
	StatusPending
	// StatusInProgress means the picker has started the task.
	StatusInProgress
	// StatusCompleted means the pick was executed and inventory deducted. Terminal.
	StatusCompleted
	// StatusSkipped means the picker abandoned the task with a reason. Terminal.
	StatusSkipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusSkipped:    "Skipped",
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status is one of the defined values.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusSkipped {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// IsTerminal reports whether the task is finished and immutable.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}
