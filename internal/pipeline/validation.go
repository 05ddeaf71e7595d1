// Package pipeline implements the batch stages: record validation,
// normalization into flat rows, the chargeback and order joins, and the
// step runner that sequences them.
package pipeline

import (
	"fmt"

	"github.com/dvloznov/commerce-pipeline/internal/domain"
)

// The Parse* functions turn untyped records into validated entities,
// preserving input order. Any single malformed record aborts the whole
// batch; financial inputs get no skip-bad-record mode.

// ParseTransactions validates a batch of raw transaction records.
func ParseTransactions(records []map[string]interface{}) ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, 0, len(records))
	for i, rec := range records {
		t, err := parseTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// ParseOrders validates a batch of raw order records.
func ParseOrders(records []map[string]interface{}) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0, len(records))
	for i, rec := range records {
		o, err := parseOrder(rec)
		if err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

// ParseChargebacks validates a batch of raw chargeback records.
func ParseChargebacks(records []map[string]interface{}) ([]*domain.Chargeback, error) {
	out := make([]*domain.Chargeback, 0, len(records))
	for i, rec := range records {
		cb, err := parseChargeback(rec)
		if err != nil {
			return nil, fmt.Errorf("chargeback %d: %w", i, err)
		}
		out = append(out, cb)
	}
	return out, nil
}

func parseTransaction(rec map[string]interface{}) (*domain.Transaction, error) {
	transactionID, err := getStringField(rec, "transaction_id", true)
	if err != nil {
		return nil, err
	}
	orderID, err := getStringField(rec, "order_id", true)
	if err != nil {
		return nil, err
	}
	timestamp, err := getTimeField(rec, "timestamp")
	if err != nil {
		return nil, err
	}
	amount, err := getFloat64Field(rec, "amount")
	if err != nil {
		return nil, err
	}
	currency, err := getStringField(rec, "currency", true)
	if err != nil {
		return nil, err
	}
	status, err := getStringField(rec, "status", true)
	if err != nil {
		return nil, err
	}
	pmObj, err := getObjectField(rec, "payment_method")
	if err != nil {
		return nil, err
	}
	pmType, err := getStringField(pmObj, "type", true)
	if err != nil {
		return nil, fmt.Errorf("payment_method: %w", err)
	}
	pmProvider, err := getStringField(pmObj, "provider", true)
	if err != nil {
		return nil, fmt.Errorf("payment_method: %w", err)
	}
	errorCode, err := getOptionalStringField(rec, "error_code")
	if err != nil {
		return nil, err
	}

	t := &domain.Transaction{
		TransactionID: transactionID,
		OrderID:       orderID,
		Timestamp:     timestamp,
		Amount:        amount,
		Currency:      currency,
		Status:        status,
		PaymentMethod: domain.PaymentMethod{Type: pmType, Provider: pmProvider},
		ErrorCode:     errorCode,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func parseOrder(rec map[string]interface{}) (*domain.Order, error) {
	orderID, err := getStringField(rec, "order_id", true)
	if err != nil {
		return nil, err
	}
	customerID, err := getStringField(rec, "customer_id", true)
	if err != nil {
		return nil, err
	}
	timestamp, err := getTimeField(rec, "timestamp")
	if err != nil {
		return nil, err
	}
	totalAmount, err := getFloat64Field(rec, "total_amount")
	if err != nil {
		return nil, err
	}
	currency, err := getStringField(rec, "currency", true)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := getStringField(rec, "payment_status", true)
	if err != nil {
		return nil, err
	}
	itemsArr, err := getArrayField(rec, "items")
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(itemsArr))
	for i, raw := range itemsArr {
		obj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: item %d is %T, want object", domain.ErrInvalidField, i, raw)
		}
		item, err := parseOrderItem(obj)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}

	o := &domain.Order{
		OrderID:       orderID,
		CustomerID:    customerID,
		Timestamp:     timestamp,
		TotalAmount:   totalAmount,
		Currency:      currency,
		Items:         items,
		PaymentStatus: paymentStatus,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func parseOrderItem(rec map[string]interface{}) (domain.OrderItem, error) {
	productID, err := getStringField(rec, "product_id", true)
	if err != nil {
		return domain.OrderItem{}, err
	}
	quantity, err := getIntField(rec, "quantity")
	if err != nil {
		return domain.OrderItem{}, err
	}
	unitPrice, err := getFloat64Field(rec, "unit_price")
	if err != nil {
		return domain.OrderItem{}, err
	}
	return domain.OrderItem{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}, nil
}

func parseChargeback(rec map[string]interface{}) (*domain.Chargeback, error) {
	transactionID, err := getStringField(rec, "transaction_id", true)
	if err != nil {
		return nil, err
	}
	disputeDate, err := getTimeField(rec, "dispute_date")
	if err != nil {
		return nil, err
	}
	amount, err := getFloat64Field(rec, "amount")
	if err != nil {
		return nil, err
	}
	reasonCode, err := getStringField(rec, "reason_code", true)
	if err != nil {
		return nil, err
	}
	status, err := getStringField(rec, "status", true)
	if err != nil {
		return nil, err
	}
	resolutionDate, err := getOptionalTimeField(rec, "resolution_date")
	if err != nil {
		return nil, err
	}

	return &domain.Chargeback{
		TransactionID:  transactionID,
		DisputeDate:    disputeDate,
		Amount:         amount,
		ReasonCode:     reasonCode,
		Status:         status,
		ResolutionDate: resolutionDate,
	}, nil
}
