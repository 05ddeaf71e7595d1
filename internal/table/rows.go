package table

import "time"

// TransactionRow is one transaction flattened for joining. The nested
// payment method is expanded into payment_method_type and
// payment_method_provider columns.
type TransactionRow struct {
	TransactionID         string
	OrderID               string
	Timestamp             time.Time
	Amount                float64
	Currency              string
	Status                string
	PaymentMethodType     string
	PaymentMethodProvider string
	ErrorCode             NullString
}

// OrderRow is one order flattened for joining. Line items are dropped at
// normalization; per-item analysis is unsupported.
type OrderRow struct {
	OrderID       string
	CustomerID    string
	Timestamp     time.Time
	TotalAmount   float64
	Currency      string
	PaymentStatus string
}

// ChargebackRow is one chargeback flattened for joining.
type ChargebackRow struct {
	TransactionID  string
	DisputeDate    time.Time
	Amount         float64
	ReasonCode     string
	Status         string
	ResolutionDate NullTime
}

// EnrichedRow is a transaction left-joined with at most one chargeback.
// The chargeback's amount and status are renamed to chargeback_amount and
// chargeback_status so they do not collide with the transaction's own
// columns. A transaction matched by several chargebacks fans out into one
// EnrichedRow per match.
type EnrichedRow struct {
	TransactionRow

	ChargebackAmount NullFloat64
	ChargebackStatus NullString
	DisputeDate      NullTime
	ReasonCode       NullString
	ResolutionDate   NullTime

	IsChargeback bool
}

// JoinedRow is an enriched transaction left-joined with its order. The
// order-side columns that collide with transaction columns (timestamp,
// currency) carry an _order suffix. A transaction whose order_id has no
// matching order keeps all order columns absent and AmountMatches false.
type JoinedRow struct {
	EnrichedRow

	CustomerID     NullString
	OrderTimestamp NullTime
	TotalAmount    NullFloat64
	OrderCurrency  NullString
	PaymentStatus  NullString

	AmountMatches bool
}
