package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow the
// correct business workflow.
//
// State transitions:
//
//	Draft ──> Confirmed ──> Shipped ──> Delivered
//	  │           │
//	  └───────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Items can be freely added and removed.
	Draft

	// Confirmed indicates the customer has confirmed a non-empty order.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// Item changes and cancellation are no longer possible.
	Shipped

	// Delivered indicates the order reached its destination.
	// This is a terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid. Used to vet status values
// arriving from external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions can leave this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateModifyItems checks whether the item list may change in the current
// status, without performing any transition. Items can be modified in Draft
// and Confirmed; Shipped, Delivered and Cancelled orders are frozen.
func (s Status) ValidateModifyItems() error {
	if s != Draft && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to modify items", s.String()),
		)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//   - Confirmed -> Cancelled
//
// Shipped and Delivered orders cannot be cancelled, and Cancelled is terminal.
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
