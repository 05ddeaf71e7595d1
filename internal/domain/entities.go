// Package domain holds the typed e-commerce entities and their
// construction-time invariants. Entities are built once from the input
// files, validated, and never mutated afterwards; the join stages produce
// new rows rather than touching these.
package domain

import (
	"fmt"
	"math"
	"time"
)

// Closed constant sets. Initialized once, never mutated.
var (
	ValidCurrencies = map[string]bool{
		"USD": true,
		"EUR": true,
		"GBP": true,
		"JPY": true,
	}

	ValidTransactionStatuses = map[string]bool{
		"completed": true,
		"failed":    true,
		"pending":   true,
	}

	ValidPaymentTypes = map[string]bool{
		"credit_card": true,
		"debit_card":  true,
		"wallet":      true,
	}

	ValidPaymentStatuses = map[string]bool{
		"paid":     true,
		"failed":   true,
		"refunded": true,
	}
)

// PaymentMethod identifies how a transaction was paid.
type PaymentMethod struct {
	Type     string // one of ValidPaymentTypes
	Provider string // e.g. "Visa", "PayPal"
}

// Transaction is one payment attempt against an order.
type Transaction struct {
	TransactionID string
	OrderID       string
	Timestamp     time.Time
	Amount        float64
	Currency      string
	Status        string // one of ValidTransactionStatuses
	PaymentMethod PaymentMethod
	ErrorCode     *string // nil unless the processor reported a failure code
}

// Validate checks the transaction's domain constraints. Field presence and
// type coercion happen earlier, during record parsing.
func (t *Transaction) Validate() error {
	if !ValidCurrencies[t.Currency] {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, t.Currency)
	}
	if !ValidTransactionStatuses[t.Status] {
		return fmt.Errorf("%w: status %q", ErrInvalidField, t.Status)
	}
	if !ValidPaymentTypes[t.PaymentMethod.Type] {
		return fmt.Errorf("%w: payment_method type %q", ErrInvalidField, t.PaymentMethod.Type)
	}
	return nil
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Order is a customer order, possibly paid by several transactions.
type Order struct {
	OrderID       string
	CustomerID    string
	Timestamp     time.Time
	TotalAmount   float64
	Currency      string
	Items         []OrderItem
	PaymentStatus string // one of ValidPaymentStatuses
}

// Validate checks the order's domain constraints, including that
// total_amount agrees with the sum of quantity*unit_price over the items,
// both rounded to 2 decimals. Orders with no items skip the total check:
// header-only orders are accepted as-is.
func (o *Order) Validate() error {
	if !ValidCurrencies[o.Currency] {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, o.Currency)
	}
	if !ValidPaymentStatuses[o.PaymentStatus] {
		return fmt.Errorf("%w: payment_status %q", ErrInvalidField, o.PaymentStatus)
	}
	for i, item := range o.Items {
		if item.Quantity < 0 {
			return fmt.Errorf("%w: item %d quantity %d", ErrInvalidField, i, item.Quantity)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d unit_price %v", ErrInvalidField, i, item.UnitPrice)
		}
	}
	if len(o.Items) > 0 {
		var sum float64
		for _, item := range o.Items {
			sum += float64(item.Quantity) * item.UnitPrice
		}
		if Round2(o.TotalAmount) != Round2(sum) {
			return fmt.Errorf("%w: total_amount %v does not match items total %v",
				ErrTotalAmountMismatch, o.TotalAmount, Round2(sum))
		}
	}
	return nil
}

// Chargeback is a disputed reversal raised against a transaction. The
// transaction_id is not unique here; zero or one chargeback per transaction
// is expected, but multiples are tolerated and fan out at join time.
type Chargeback struct {
	TransactionID  string
	DisputeDate    time.Time
	Amount         float64
	ReasonCode     string
	Status         string
	ResolutionDate *time.Time // nil while the dispute is open
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
