// Package metrics computes the aggregate reports over the fully joined
// row set. Every function here is a stateless reduction: output depends
// only on the input rows, not their order. Results are sorted by group key
// so console runs and tests are stable.
package metrics

import (
	"math"
	"sort"

	"cloud.google.com/go/civil"

	"github.com/dvloznov/commerce-pipeline/internal/table"
)

// DailyMetric is one calendar day of transaction volume.
type DailyMetric struct {
	Date             civil.Date
	TransactionCount int
	TransactionTotal float64
}

// ChargebackRateMetric is the chargeback rate for one payment method,
// keyed "type:provider".
type ChargebackRateMetric struct {
	Method            string
	TotalTransactions int
	Chargebacks       int
	ChargebackRate    float64 // rounded to 3 decimals
}

// FailedTransactionMetric counts failed transactions per payment method
// type and processor error code.
type FailedTransactionMetric struct {
	PaymentMethodType string
	ErrorCode         string
	Count             int
}

// PaymentMethodMetric sums volume per payment method type and status.
type PaymentMethodMetric struct {
	PaymentMethodType string
	Status            string
	TotalAmount       float64
	Count             int
}

// Reports bundles the four aggregate reports of one run.
type Reports struct {
	Daily           []DailyMetric
	ChargebackRates []ChargebackRateMetric
	Failed          []FailedTransactionMetric
	Performance     []PaymentMethodMetric
}

// Compute runs all four reductions over the joined rows.
func Compute(rows []table.JoinedRow) *Reports {
	return &Reports{
		Daily:           DailyTransactionMetrics(rows),
		ChargebackRates: ChargebackRateByPaymentMethod(rows),
		Failed:          FailedTransactionAnalysis(rows),
		Performance:     PaymentMethodPerformance(rows),
	}
}

// DailyTransactionMetrics groups rows by the calendar date of their
// timestamp and emits count and amount sum per day.
func DailyTransactionMetrics(rows []table.JoinedRow) []DailyMetric {
	byDate := make(map[civil.Date]*DailyMetric)
	for _, row := range rows {
		date := civil.DateOf(row.Timestamp)
		m, ok := byDate[date]
		if !ok {
			m = &DailyMetric{Date: date}
			byDate[date] = m
		}
		m.TransactionCount++
		m.TransactionTotal += row.Amount
	}

	out := make([]DailyMetric, 0, len(byDate))
	for _, m := range byDate {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ChargebackRateByPaymentMethod groups rows by "type:provider" and emits
// the share of rows flagged as chargebacks, rounded to 3 decimals. Every
// emitted group has at least one row, so the division is always defined.
func ChargebackRateByPaymentMethod(rows []table.JoinedRow) []ChargebackRateMetric {
	byMethod := make(map[string]*ChargebackRateMetric)
	for _, row := range rows {
		method := row.PaymentMethodType + ":" + row.PaymentMethodProvider
		m, ok := byMethod[method]
		if !ok {
			m = &ChargebackRateMetric{Method: method}
			byMethod[method] = m
		}
		m.TotalTransactions++
		if row.IsChargeback {
			m.Chargebacks++
		}
	}

	out := make([]ChargebackRateMetric, 0, len(byMethod))
	for _, m := range byMethod {
		m.ChargebackRate = round3(float64(m.Chargebacks) / float64(m.TotalTransactions))
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out
}

// FailedTransactionAnalysis counts rows with status "failed" per payment
// method type and error code. Failed rows without an error code are
// skipped; the group key requires one.
func FailedTransactionAnalysis(rows []table.JoinedRow) []FailedTransactionMetric {
	type key struct {
		methodType string
		errorCode  string
	}
	counts := make(map[key]int)
	for _, row := range rows {
		if row.Status != "failed" || !row.ErrorCode.Valid {
			continue
		}
		counts[key{row.PaymentMethodType, row.ErrorCode.StringVal}]++
	}

	out := make([]FailedTransactionMetric, 0, len(counts))
	for k, n := range counts {
		out = append(out, FailedTransactionMetric{
			PaymentMethodType: k.methodType,
			ErrorCode:         k.errorCode,
			Count:             n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaymentMethodType != out[j].PaymentMethodType {
			return out[i].PaymentMethodType < out[j].PaymentMethodType
		}
		return out[i].ErrorCode < out[j].ErrorCode
	})
	return out
}

// PaymentMethodPerformance sums amount and counts rows per payment method
// type and transaction status.
func PaymentMethodPerformance(rows []table.JoinedRow) []PaymentMethodMetric {
	type key struct {
		methodType string
		status     string
	}
	byKey := make(map[key]*PaymentMethodMetric)
	for _, row := range rows {
		k := key{row.PaymentMethodType, row.Status}
		m, ok := byKey[k]
		if !ok {
			m = &PaymentMethodMetric{PaymentMethodType: k.methodType, Status: k.status}
			byKey[k] = m
		}
		m.TotalAmount += row.Amount
		m.Count++
	}

	out := make([]PaymentMethodMetric, 0, len(byKey))
	for _, m := range byKey {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PaymentMethodType != out[j].PaymentMethodType {
			return out[i].PaymentMethodType < out[j].PaymentMethodType
		}
		return out[i].Status < out[j].Status
	})
	return out
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
