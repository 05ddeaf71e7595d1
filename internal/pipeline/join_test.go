package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dvloznov/commerce-pipeline/internal/table"
)

func txnRow(id, orderID string, amount float64) table.TransactionRow {
	return table.TransactionRow{
		TransactionID:         id,
		OrderID:               orderID,
		Timestamp:             time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Amount:                amount,
		Currency:              "USD",
		Status:                "completed",
		PaymentMethodType:     "credit_card",
		PaymentMethodProvider: "Visa",
	}
}

func cbRow(txnID string, amount float64, status string) table.ChargebackRow {
	return table.ChargebackRow{
		TransactionID: txnID,
		DisputeDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount:        amount,
		ReasonCode:    "fraud",
		Status:        status,
	}
}

func TestEnrichWithChargebacks_NoMatch(t *testing.T) {
	rows := EnrichWithChargebacks(
		[]table.TransactionRow{txnRow("t1", "o1", 100.0)},
		nil,
	)

	require.Len(t, rows, 1)
	require.False(t, rows[0].IsChargeback)
	require.False(t, rows[0].ChargebackAmount.Valid)
	require.False(t, rows[0].ChargebackStatus.Valid)
}

func TestEnrichWithChargebacks_SingleMatch(t *testing.T) {
	rows := EnrichWithChargebacks(
		[]table.TransactionRow{txnRow("t1", "o1", 100.0), txnRow("t2", "o2", 50.0)},
		[]table.ChargebackRow{cbRow("t1", 100.0, "open")},
	)

	require.Len(t, rows, 2)

	require.True(t, rows[0].IsChargeback)
	require.Equal(t, table.Float64(100.0), rows[0].ChargebackAmount)
	require.Equal(t, table.String("open"), rows[0].ChargebackStatus)
	require.True(t, rows[0].DisputeDate.Valid)

	require.False(t, rows[1].IsChargeback)
}

func TestEnrichWithChargebacks_FanOut(t *testing.T) {
	rows := EnrichWithChargebacks(
		[]table.TransactionRow{txnRow("t1", "o1", 100.0)},
		[]table.ChargebackRow{cbRow("t1", 40.0, "open"), cbRow("t1", 60.0, "resolved")},
	)

	// One row per matching chargeback, no dedup.
	require.Len(t, rows, 2)
	require.True(t, rows[0].IsChargeback)
	require.True(t, rows[1].IsChargeback)
	require.Equal(t, 40.0, rows[0].ChargebackAmount.Float64)
	require.Equal(t, 60.0, rows[1].ChargebackAmount.Float64)
}

func orderRow(id string, total float64) table.OrderRow {
	return table.OrderRow{
		OrderID:       id,
		CustomerID:    "cust_1",
		Timestamp:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		TotalAmount:   total,
		Currency:      "USD",
		PaymentStatus: "paid",
	}
}

func TestMatchTransactionsToOrders_AmountMatches(t *testing.T) {
	enriched := EnrichWithChargebacks([]table.TransactionRow{txnRow("t1", "1", 100.0)}, nil)

	rows := MatchTransactionsToOrders(enriched, []table.OrderRow{orderRow("1", 100.0)})
	require.Len(t, rows, 1)
	require.True(t, rows[0].AmountMatches)
	require.Equal(t, table.String("cust_1"), rows[0].CustomerID)
	require.Equal(t, table.Float64(100.0), rows[0].TotalAmount)
	require.True(t, rows[0].OrderTimestamp.Valid)
	require.Equal(t, table.String("USD"), rows[0].OrderCurrency)
}

func TestMatchTransactionsToOrders_AmountMismatch(t *testing.T) {
	enriched := EnrichWithChargebacks([]table.TransactionRow{txnRow("t1", "1", 100.0)}, nil)

	rows := MatchTransactionsToOrders(enriched, []table.OrderRow{orderRow("1", 100.01)})
	require.Len(t, rows, 1)
	require.False(t, rows[0].AmountMatches)
}

func TestMatchTransactionsToOrders_UnmatchedOrder(t *testing.T) {
	enriched := EnrichWithChargebacks([]table.TransactionRow{txnRow("t1", "missing", 100.0)}, nil)

	rows := MatchTransactionsToOrders(enriched, []table.OrderRow{orderRow("1", 100.0)})
	require.Len(t, rows, 1)
	require.False(t, rows[0].AmountMatches)
	require.False(t, rows[0].CustomerID.Valid)
	require.False(t, rows[0].TotalAmount.Valid)
	require.False(t, rows[0].OrderTimestamp.Valid)
}

func TestNormalizeOrders_DropsItems(t *testing.T) {
	orders, err := ParseOrders([]map[string]interface{}{rawOrder()})
	require.NoError(t, err)

	rows := NormalizeOrders(orders)
	require.Len(t, rows, 1)
	require.Equal(t, "ord_125", rows[0].OrderID)
	require.Equal(t, 60.0, rows[0].TotalAmount)
	// OrderRow has no items field; this test pins the flattened shape.
	require.Equal(t, "cust_1", rows[0].CustomerID)
}

func TestNormalizeTransactions_FlattensPaymentMethod(t *testing.T) {
	txs, err := ParseTransactions([]map[string]interface{}{rawTransaction()})
	require.NoError(t, err)

	rows := NormalizeTransactions(txs)
	require.Len(t, rows, 1)
	require.Equal(t, "credit_card", rows[0].PaymentMethodType)
	require.Equal(t, "Visa", rows[0].PaymentMethodProvider)
	require.False(t, rows[0].ErrorCode.Valid)
}
