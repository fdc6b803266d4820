package kernel

import (
	"fmt"
	"net/mail"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Emails must be created via NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

// Email represents a validated email address.
// Email is an immutable value object compared by its address string.
type Email struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewEmail creates an Email after checking the address against the RFC 5322
// grammar. Display names are rejected; only a bare address is accepted.
func NewEmail(address string) (Email, error) {
	e := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.setAddress(address); err != nil {
		return Email{}, err
	}

	return e, nil
}

// Validate checks that the Email was created through the constructor.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

// Address returns the email address string.
func (e Email) Address() string {
	return e.address
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return e.address
}

// IsEqual compares two emails by address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

func (e *Email) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if parsed.Address != address {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a bare email address", address))
	}

	e.address = address
	return nil
}
