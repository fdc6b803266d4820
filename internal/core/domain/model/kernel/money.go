package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const currencyCodeLength = 3

var (
	// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
	// initialized Money. Money must be created via NewMoney or Zero.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"money must be created via NewMoney or Zero constructors")

	// ErrCurrencyMismatch indicates an arithmetic operation between amounts of
	// different currencies.
	ErrCurrencyMismatch = errors.New("cannot combine money of different currencies")

	// ErrNegativeMoneyResult indicates a subtraction that would produce a
	// negative amount. Money amounts are always non-negative.
	ErrNegativeMoneyResult = errors.New("money amount cannot become negative")
)

// Money represents a monetary amount in a single currency.
// The amount is stored in the currency's minor units (e.g. cents) to avoid
// floating-point rounding. Money is an immutable value object: arithmetic
// operations return a new instance and never change the operands.
//
// Example:
//
//	price, err := kernel.NewMoney(1050, "USD") // $10.50
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := price.MultiplyScalar(2) // $21.00
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount in minor units and a
// three-letter currency code. The amount must be non-negative.
func NewMoney(amount int64, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Zero returns the additive identity for the given currency.
func Zero(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// String returns a human-readable representation such as "Money(1050 USD)".
func (m Money) String() string {
	return fmt.Sprintf("Money(%d %s)", m.amount, m.currency)
}

// IsEqual compares two amounts structurally: equal amount and equal currency.
// Both operands must be properly constructed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount && m.currency == other.currency, nil
}

// Add returns the sum of two amounts of the same currency.
// Returns ErrCurrencyMismatch when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency", ErrCurrencyMismatch)
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// Subtract returns the difference of two amounts of the same currency.
// Fails if the currencies differ or the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency", ErrCurrencyMismatch)
	}

	if m.amount < other.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", ErrNegativeMoneyResult)
	}

	return NewMoney(m.amount-other.amount, m.currency)
}

// MultiplyScalar returns the amount multiplied by a non-negative factor.
// Used for computing line totals (unit price times quantity).
func (m Money) MultiplyScalar(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor", fmt.Errorf("%d is not greater than or equal to 0", factor))
	}

	return NewMoney(m.amount*int64(factor), m.currency)
}

func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than or equal to 0", amount))
	}

	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	m.currency = currency
	return nil
}
