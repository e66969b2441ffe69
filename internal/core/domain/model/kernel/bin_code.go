package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrBinCodeIsNotConstructed is returned when attempting to use an improperly
// initialized BinCode. Bin codes must be created via NewBinCode or ParseBinCode.
var ErrBinCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"bin code must be created via NewBinCode or ParseBinCode constructors")

// binCodePattern matches the <Zone>-<Aisle>-<Shelf> slot code format,
// e.g. "A-01-01" or "RECV-12-03".
var binCodePattern = regexp.MustCompile(`^[A-Z]+-[0-9]{2}-[0-9]{2}$`)

// BinCode identifies a physical storage slot in the warehouse by its
// zone, aisle, and shelf, formatted as "<Zone>-<Aisle>-<Shelf>".
//
// BinCode is an immutable value object. Its lexical ordering is used as the
// deterministic tie-break key when the task planner splits an item across
// bins, and as the lock acquisition order for inventory rows.
//
// Example:
//
//	code, err := kernel.ParseBinCode("A-01-01")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(code.Zone()) // "A"
type BinCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewBinCode creates a BinCode from its components. The zone must be one or
// more uppercase letters; aisle and shelf are zero-padded two-digit numbers.
func NewBinCode(zone string, aisle, shelf int) (BinCode, error) {
	if zone == "" {
		return BinCode{}, errs.NewValueIsRequiredError("zone")
	}
	if aisle < 0 || aisle > 99 {
		return BinCode{}, errs.NewValueIsInvalidErrorWithCause("aisle",
			fmt.Errorf("%d is not in range [0..99]", aisle))
	}
	if shelf < 0 || shelf > 99 {
		return BinCode{}, errs.NewValueIsInvalidErrorWithCause("shelf",
			fmt.Errorf("%d is not in range [0..99]", shelf))
	}

	return ParseBinCode(fmt.Sprintf("%s-%02d-%02d", strings.ToUpper(zone), aisle, shelf))
}

// ParseBinCode creates a BinCode from its string representation.
// Returns an error if the string does not match the slot code format.
func ParseBinCode(s string) (BinCode, error) {
	if !binCodePattern.MatchString(s) {
		return BinCode{}, errs.NewValueIsInvalidErrorWithCause("bin code",
			fmt.Errorf("%q does not match <Zone>-<Aisle>-<Shelf>", s))
	}

	return BinCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// String returns the "<Zone>-<Aisle>-<Shelf>" representation.
func (b BinCode) String() string {
	return b.value
}

// Zone returns the zone component of the code.
func (b BinCode) Zone() string {
	return b.value[:strings.Index(b.value, "-")]
}

// IsEqual compares two bin codes for equality.
func (b BinCode) IsEqual(other BinCode) bool {
	return b.value == other.value
}

// Less reports whether b orders lexically before other. Inventory rows are
// locked in this order to prevent deadlock cycles between concurrent claims.
func (b BinCode) Less(other BinCode) bool {
	return b.value < other.value
}

// Validate checks if the BinCode was properly constructed via a constructor.
// The zero value fails this validation.
func (b BinCode) Validate() error {
	return b.guard.Validate(ErrBinCodeIsNotConstructed)
}
