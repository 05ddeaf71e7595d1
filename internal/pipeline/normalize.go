package pipeline

import (
	"github.com/dvloznov/commerce-pipeline/internal/domain"
	"github.com/dvloznov/commerce-pipeline/internal/table"
)

// Normalization flattens validated entities into the tabular row structs
// the joins operate on. Each call produces a fresh slice; nothing is
// shared with the input entities.

// NormalizeTransactions flattens transactions, expanding the nested
// payment method into its own columns.
func NormalizeTransactions(txs []*domain.Transaction) []table.TransactionRow {
	rows := make([]table.TransactionRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, table.TransactionRow{
			TransactionID:         t.TransactionID,
			OrderID:               t.OrderID,
			Timestamp:             t.Timestamp,
			Amount:                t.Amount,
			Currency:              t.Currency,
			Status:                t.Status,
			PaymentMethodType:     t.PaymentMethod.Type,
			PaymentMethodProvider: t.PaymentMethod.Provider,
			ErrorCode:             table.StringPtr(t.ErrorCode),
		})
	}
	return rows
}

// NormalizeOrders flattens orders. Line items are dropped here; the
// aggregate reports never look below order level.
func NormalizeOrders(orders []*domain.Order) []table.OrderRow {
	rows := make([]table.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, table.OrderRow{
			OrderID:       o.OrderID,
			CustomerID:    o.CustomerID,
			Timestamp:     o.Timestamp,
			TotalAmount:   o.TotalAmount,
			Currency:      o.Currency,
			PaymentStatus: o.PaymentStatus,
		})
	}
	return rows
}

// NormalizeChargebacks flattens chargebacks.
func NormalizeChargebacks(cbs []*domain.Chargeback) []table.ChargebackRow {
	rows := make([]table.ChargebackRow, 0, len(cbs))
	for _, cb := range cbs {
		rows = append(rows, table.ChargebackRow{
			TransactionID:  cb.TransactionID,
			DisputeDate:    cb.DisputeDate,
			Amount:         cb.Amount,
			ReasonCode:     cb.ReasonCode,
			Status:         cb.Status,
			ResolutionDate: table.TimePtr(cb.ResolutionDate),
		})
	}
	return rows
}
