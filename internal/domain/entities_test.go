package domain

import (
	"errors"
	"testing"
	"time"
)

func validTransaction() *Transaction {
	return &Transaction{
		TransactionID: "txn_123",
		OrderID:       "ord_123",
		Timestamp:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Amount:        100.0,
		Currency:      "USD",
		Status:        "completed",
		PaymentMethod: PaymentMethod{Type: "credit_card", Provider: "Visa"},
	}
}

func TestTransactionValidate_Currency(t *testing.T) {
	tests := []struct {
		currency string
		wantErr  bool
	}{
		{"USD", false},
		{"EUR", false},
		{"GBP", false},
		{"JPY", false},
		{"ABC", true},
		{"usd", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			tx := validTransaction()
			tx.Currency = tt.currency
			err := tx.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("Validate() error = %v, want ErrInvalidCurrency", err)
			}
		})
	}
}

func TestTransactionValidate_StatusAndPaymentType(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr bool
	}{
		{"valid", func(tx *Transaction) {}, false},
		{"pending status", func(tx *Transaction) { tx.Status = "pending" }, false},
		{"unknown status", func(tx *Transaction) { tx.Status = "reversed" }, true},
		{"wallet payment", func(tx *Transaction) { tx.PaymentMethod.Type = "wallet" }, false},
		{"unknown payment type", func(tx *Transaction) { tx.PaymentMethod.Type = "crypto" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(tx)
			err := tx.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrderValidate_TotalAmount(t *testing.T) {
	items := []OrderItem{
		{ProductID: "prod_1", Quantity: 1, UnitPrice: 30.0},
		{ProductID: "prod_2", Quantity: 1, UnitPrice: 30.0},
	}

	tests := []struct {
		name        string
		totalAmount float64
		items       []OrderItem
		wantErr     bool
	}{
		{"matching total", 60.0, items, false},
		{"mismatched total", 50.0, items, true},
		{"empty items skips check", 50.0, nil, false},
		{"rounding within 2 decimals", 60.004, items, false},
		{"mismatch past 2 decimals", 60.01, items, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{
				OrderID:       "ord_125",
				CustomerID:    "cust_1",
				Timestamp:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
				TotalAmount:   tt.totalAmount,
				Currency:      "USD",
				Items:         tt.items,
				PaymentStatus: "paid",
			}
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrTotalAmountMismatch) {
				t.Errorf("Validate() error = %v, want ErrTotalAmountMismatch", err)
			}
		})
	}
}

func TestOrderValidate_Items(t *testing.T) {
	tests := []struct {
		name    string
		item    OrderItem
		wantErr bool
	}{
		{"zero quantity", OrderItem{ProductID: "p", Quantity: 0, UnitPrice: 10.0}, false},
		{"negative quantity", OrderItem{ProductID: "p", Quantity: -1, UnitPrice: 10.0}, true},
		{"negative unit price", OrderItem{ProductID: "p", Quantity: 1, UnitPrice: -10.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{
				OrderID:       "ord_1",
				CustomerID:    "cust_1",
				Timestamp:     time.Now(),
				TotalAmount:   float64(tt.item.Quantity) * tt.item.UnitPrice,
				Currency:      "USD",
				Items:         []OrderItem{tt.item},
				PaymentStatus: "paid",
			}
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{60.004, 60.0},
		{60.006, 60.01},
		{-1.236, -1.24},
		{100.0, 100.0},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
