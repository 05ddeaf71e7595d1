package loader

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
)

// JSONRecords reads a JSON array of objects and returns one untyped record
// per element, in file order.
func JSONRecords(ctx context.Context, path string) ([]map[string]interface{}, error) {
	data, err := ReadInput(ctx, path)
	if err != nil {
		return nil, err
	}
	records, err := DecodeJSONRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// CSVRecords reads a CSV file with a header row and returns one untyped
// record per data row, in file order.
func CSVRecords(ctx context.Context, path string) ([]map[string]interface{}, error) {
	data, err := ReadInput(ctx, path)
	if err != nil {
		return nil, err
	}
	records, err := DecodeCSVRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return records, nil
}

// DecodeJSONRecords parses a JSON array of objects into untyped records.
func DecodeJSONRecords(data []byte) ([]map[string]interface{}, error) {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal JSON array: %w", err)
	}

	records := make([]map[string]interface{}, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("element %d is %T, want object", i, item)
		}
		records = append(records, obj)
	}
	return records, nil
}

// DecodeCSVRecords parses a header-row CSV into untyped records. Cell
// values stay strings; type coercion happens during record validation.
// Empty cells are omitted from the record so optional fields read as
// absent rather than as empty strings.
func DecodeCSVRecords(data []byte) ([]map[string]interface{}, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV input has no header row")
	}

	header := rows[0]
	records := make([]map[string]interface{}, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]interface{}, len(header))
		for i, col := range header {
			if i >= len(row) || row[i] == "" {
				continue
			}
			record[col] = row[i]
		}
		records = append(records, record)
	}
	return records, nil
}
