package internal

import (
	"strconv"
	"strings"
	"time"
)

// Epoch plausibility cutoffs (~year 2000). Values above msEpochThreshold
// are milliseconds; values above secEpochThreshold are seconds; anything
// smaller is not a believable timestamp.
const (
	secEpochThreshold = 946684800
	msEpochThreshold  = 946684800000
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// NormalizeTime canonicalizes a raw source timestamp into an RFC3339 UTC
// string. Accepts nil, ISO-8601 strings, numeric strings, and second- or
// millisecond-precision epoch numbers; anything unparseable or implausible
// falls back to the current wall-clock time rather than an epoch-zero date.
func NormalizeTime(v any) string {
	switch t := v.(type) {
	case nil:
		return nowIso()
	case string:
		return normalizeTimeString(t)
	case float64:
		return normalizeEpoch(int64(t))
	case int64:
		return normalizeEpoch(t)
	case int:
		return normalizeEpoch(int64(t))
	default:
		return nowIso()
	}
}

func normalizeTimeString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nowIso()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return normalizeEpoch(n)
	}
	if t, ok := parseIso(s); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return nowIso()
}

func normalizeEpoch(n int64) string {
	switch {
	case n > msEpochThreshold:
		return time.UnixMilli(n).UTC().Format(time.RFC3339)
	case n > secEpochThreshold:
		return time.Unix(n, 0).UTC().Format(time.RFC3339)
	default:
		return nowIso()
	}
}

func parseIso(s string) (time.Time, bool) {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LaterIso returns the temporally later of two RFC3339 timestamps. An
// empty value always loses.
func LaterIso(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	ta, okA := parseIso(a)
	tb, okB := parseIso(b)
	if okA && okB {
		if tb.After(ta) {
			return b
		}
		return a
	}
	// Fall back on lexicographic order for anything non-standard.
	if b > a {
		return b
	}
	return a
}

func nowIso() string {
	return timeNow().UTC().Format(time.RFC3339)
}
