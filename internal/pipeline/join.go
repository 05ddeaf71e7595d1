package pipeline

import (
	"github.com/dvloznov/commerce-pipeline/internal/table"
)

// Left outer joins, implemented as key-bucketed maps with left-driven
// iteration. Unmatched left rows keep their right-side columns absent;
// an unmatched key is never an error.

// EnrichWithChargebacks left-joins chargebacks onto transactions by
// transaction_id. A transaction with several matching chargebacks fans out
// into one row per match; no dedup is applied.
func EnrichWithChargebacks(txs []table.TransactionRow, cbs []table.ChargebackRow) []table.EnrichedRow {
	byTransaction := make(map[string][]table.ChargebackRow, len(cbs))
	for _, cb := range cbs {
		byTransaction[cb.TransactionID] = append(byTransaction[cb.TransactionID], cb)
	}

	out := make([]table.EnrichedRow, 0, len(txs))
	for _, tx := range txs {
		matches := byTransaction[tx.TransactionID]
		if len(matches) == 0 {
			out = append(out, table.EnrichedRow{TransactionRow: tx})
			continue
		}
		for _, cb := range matches {
			out = append(out, table.EnrichedRow{
				TransactionRow:   tx,
				ChargebackAmount: table.Float64(cb.Amount),
				ChargebackStatus: table.String(cb.Status),
				DisputeDate:      table.Time(cb.DisputeDate),
				ReasonCode:       table.String(cb.ReasonCode),
				ResolutionDate:   cb.ResolutionDate,
				IsChargeback:     true,
			})
		}
	}
	return out
}

// MatchTransactionsToOrders left-joins orders onto enriched transactions
// by order_id and derives amount_matches.
//
// amount_matches uses exact float64 equality against the order total, with
// no tolerance. Both values come from the same JSON number decoding, so
// equal decimal literals compare equal; an epsilon would change the
// reconciliation semantics. A transaction with no matching order gets
// amount_matches false.
func MatchTransactionsToOrders(rows []table.EnrichedRow, orders []table.OrderRow) []table.JoinedRow {
	byOrder := make(map[string][]table.OrderRow, len(orders))
	for _, o := range orders {
		byOrder[o.OrderID] = append(byOrder[o.OrderID], o)
	}

	out := make([]table.JoinedRow, 0, len(rows))
	for _, row := range rows {
		matches := byOrder[row.OrderID]
		if len(matches) == 0 {
			out = append(out, table.JoinedRow{EnrichedRow: row})
			continue
		}
		for _, o := range matches {
			out = append(out, table.JoinedRow{
				EnrichedRow:    row,
				CustomerID:     table.String(o.CustomerID),
				OrderTimestamp: table.Time(o.Timestamp),
				TotalAmount:    table.Float64(o.TotalAmount),
				OrderCurrency:  table.String(o.Currency),
				PaymentStatus:  table.String(o.PaymentStatus),
				AmountMatches:  row.Amount == o.TotalAmount,
			})
		}
	}
	return out
}
