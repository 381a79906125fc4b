package planner

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Time budget bounds for a single daily task, in minutes.
const (
	minTimeAvailable     = 10
	maxTimeAvailable     = 240
	defaultTimeAvailable = 30
)

// ClampTimeAvailable normalizes a loosely-typed timeAvailable request value
// to the [10, 240] minute range. Missing or non-numeric values become the
// 30-minute default.
func ClampTimeAvailable(v any) int {
	n, ok := asNumber(v)
	if !ok {
		return defaultTimeAvailable
	}
	if n < minTimeAvailable {
		return minTimeAvailable
	}
	if n > maxTimeAvailable {
		return maxTimeAvailable
	}
	return n
}

// numberOrDefault coerces a loosely-typed JSON value to an int, substituting
// def for anything missing, NaN or non-numeric.
func numberOrDefault(v any, def int) int {
	n, ok := asNumber(v)
	if !ok {
		return def
	}
	return n
}

// floatOrDefault is numberOrDefault for fractional values.
func floatOrDefault(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if n != n { // NaN
			return def
		}
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

func asNumber(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != n { // NaN
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}

// parseDateOrDefault parses a model-supplied date string, substituting the
// fallback for anything empty or unparsable.
func parseDateOrDefault(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}

// ParseDueDate parses a client-supplied due date string, returning nil for
// anything empty or unparsable.
func ParseDueDate(s string) *time.Time {
	return parseDateOrNil(s)
}

// parseDateOrNil parses a model-supplied date string, returning nil for
// anything empty or unparsable.
func parseDateOrNil(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func stringOrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
