// Package table defines the flat tabular row model shared by the pipeline
// stages. Left outer joins leave right-hand columns without a value when no
// match exists; the Null* wrappers make that absence explicit instead of
// overloading zero values.
package table

import "time"

// NullString represents a string cell that may be absent.
type NullString struct {
	StringVal string
	Valid     bool
}

// String returns a present NullString.
func String(s string) NullString {
	return NullString{StringVal: s, Valid: true}
}

// StringPtr converts an optional string to a NullString. A nil pointer
// maps to an absent cell.
func StringPtr(s *string) NullString {
	if s == nil {
		return NullString{}
	}
	return String(*s)
}

// NullFloat64 represents a numeric cell that may be absent.
type NullFloat64 struct {
	Float64 float64
	Valid   bool
}

// Float64 returns a present NullFloat64.
func Float64(f float64) NullFloat64 {
	return NullFloat64{Float64: f, Valid: true}
}

// NullTime represents a timestamp cell that may be absent.
type NullTime struct {
	Time  time.Time
	Valid bool
}

// Time returns a present NullTime.
func Time(t time.Time) NullTime {
	return NullTime{Time: t, Valid: true}
}

// TimePtr converts an optional time to a NullTime. A nil pointer maps to
// an absent cell.
func TimePtr(t *time.Time) NullTime {
	if t == nil {
		return NullTime{}
	}
	return Time(*t)
}
