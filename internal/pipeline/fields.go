package pipeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dvloznov/commerce-pipeline/internal/domain"
)

// Field extraction helpers for untyped records. JSON decoding yields
// float64 for every number; CSV decoding yields strings, so the numeric
// and timestamp getters also accept string values and coerce them.

// timestampLayouts are tried in order. Input timestamps are ISO-8601;
// CSV date columns may carry a bare date.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func getStringField(m map[string]interface{}, key string, required bool) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("%w: %q", domain.ErrMissingField, key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q has type %T, want string", domain.ErrInvalidField, key, v)
	}
	if required && strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %q is empty", domain.ErrMissingField, key)
	}
	return s, nil
}

func getOptionalStringField(m map[string]interface{}, key string) (*string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, want string or null", domain.ErrInvalidField, key, v)
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

func getFloat64Field(m map[string]interface{}, key string) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrMissingField, key)
	}
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: field %q value %q is not a number", domain.ErrInvalidField, key, val)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: field %q has type %T, want number", domain.ErrInvalidField, key, v)
	}
}

func getIntField(m map[string]interface{}, key string) (int, error) {
	f, err := getFloat64Field(m, key)
	if err != nil {
		return 0, err
	}
	if math.Trunc(f) != f {
		return 0, fmt.Errorf("%w: field %q value %v is not an integer", domain.ErrInvalidField, key, f)
	}
	return int(f), nil
}

func getTimeField(m map[string]interface{}, key string) (time.Time, error) {
	s, err := getStringField(m, key, true)
	if err != nil {
		return time.Time{}, err
	}
	return parseTimestamp(key, s)
}

func getOptionalTimeField(m map[string]interface{}, key string) (*time.Time, error) {
	s, err := getOptionalStringField(m, key)
	if err != nil || s == nil {
		return nil, err
	}
	t, err := parseTimestamp(key, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func getObjectField(m map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingField, key)
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, want object", domain.ErrInvalidField, key, v)
	}
	return obj, nil
}

func getArrayField(m map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrMissingField, key)
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: field %q has type %T, want array", domain.ErrInvalidField, key, v)
	}
	return arr, nil
}

func parseTimestamp(key, s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: field %q value %q is not an ISO-8601 timestamp", domain.ErrInvalidField, key, s)
}
