package domain

import "errors"

// Validation error taxonomy. Record parsing wraps these with the record
// index and field so a failure names the offending value. All of them are
// fatal for the batch being loaded; there is no partial-success mode.
var (
	// ErrMissingField marks a required field that is absent or empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField marks a field whose value is outside its allowed set
	// or cannot be coerced to the expected type.
	ErrInvalidField = errors.New("invalid field value")

	// ErrInvalidCurrency marks a currency outside the supported whitelist.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrTotalAmountMismatch marks an order whose total_amount disagrees
	// with the sum of its line items.
	ErrTotalAmountMismatch = errors.New("total amount mismatch")
)
