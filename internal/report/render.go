// Package report renders the aggregate reports as console tables, one
// titled section per report.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/dvloznov/commerce-pipeline/internal/metrics"
)

// Render writes all four reports to w.
func Render(w io.Writer, r *metrics.Reports) {
	RenderDaily(w, r.Daily)
	RenderChargebackRates(w, r.ChargebackRates)
	RenderFailed(w, r.Failed)
	RenderPerformance(w, r.Performance)
}

// RenderDaily writes the daily transaction metrics table.
func RenderDaily(w io.Writer, rows []metrics.DailyMetric) {
	fmt.Fprintln(w, "\nDaily Transaction Metrics")
	t := newTable(w, []string{"date", "transaction_count", "transaction_total"})
	for _, m := range rows {
		t.Append([]string{
			m.Date.String(),
			strconv.Itoa(m.TransactionCount),
			formatAmount(m.TransactionTotal),
		})
	}
	t.Render()
}

// RenderChargebackRates writes the chargeback rate table.
func RenderChargebackRates(w io.Writer, rows []metrics.ChargebackRateMetric) {
	fmt.Fprintln(w, "\nChargeback Rates by Payment Method")
	t := newTable(w, []string{"method", "total_transactions", "chargebacks", "chargeback_rate"})
	for _, m := range rows {
		t.Append([]string{
			m.Method,
			strconv.Itoa(m.TotalTransactions),
			strconv.Itoa(m.Chargebacks),
			strconv.FormatFloat(m.ChargebackRate, 'f', 3, 64),
		})
	}
	t.Render()
}

// RenderFailed writes the failed transaction analysis table.
func RenderFailed(w io.Writer, rows []metrics.FailedTransactionMetric) {
	fmt.Fprintln(w, "\nFailed Transaction Analysis")
	t := newTable(w, []string{"payment_method_type", "error_code", "count"})
	for _, m := range rows {
		t.Append([]string{m.PaymentMethodType, m.ErrorCode, strconv.Itoa(m.Count)})
	}
	t.Render()
}

// RenderPerformance writes the payment method performance table.
func RenderPerformance(w io.Writer, rows []metrics.PaymentMethodMetric) {
	fmt.Fprintln(w, "\nPayment Method Performance")
	t := newTable(w, []string{"payment_method_type", "status", "total_amount", "count"})
	for _, m := range rows {
		t.Append([]string{
			m.PaymentMethodType,
			m.Status,
			formatAmount(m.TotalAmount),
			strconv.Itoa(m.Count),
		})
	}
	t.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	return t
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
