package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withFixedNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })
}

func TestNormalizeTimeUnits(t *testing.T) {
	// Seconds and milliseconds for the same instant must land on the
	// same date; neither may be conflated or double-scaled.
	assert.Equal(t, "2023-11-14T22:13:20Z", NormalizeTime(int64(1700000000)))
	assert.Equal(t, "2023-11-14T22:13:20Z", NormalizeTime(int64(1700000000000)))
	assert.Equal(t, "2023-11-14T22:13:20Z", NormalizeTime(float64(1700000000)))
	assert.Equal(t, "2023-11-14T22:13:20Z", NormalizeTime("1700000000"))
	assert.Equal(t, "2023-11-14T22:13:20Z", NormalizeTime("1700000000000"))
}

func TestNormalizeTimeIsoPassthrough(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-03-01T10:00:00Z", "2024-03-01T10:00:00Z"},
		{"2024-03-01T10:00:00.500Z", "2024-03-01T10:00:00Z"},
		{"2024-03-01T10:00:00+02:00", "2024-03-01T08:00:00Z"},
		{"2024-03-01T10:00:00", "2024-03-01T10:00:00Z"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTime(tt.input), "input %q", tt.input)
	}
}

func TestNormalizeTimeFallbacks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)
	want := "2025-06-01T12:00:00Z"

	// Absent, garbage, and implausibly small values all fall back to
	// wall-clock time; an epoch-zero date must never appear silently.
	assert.Equal(t, want, NormalizeTime(nil))
	assert.Equal(t, want, NormalizeTime(""))
	assert.Equal(t, want, NormalizeTime("not a date"))
	assert.Equal(t, want, NormalizeTime(int64(0)))
	assert.Equal(t, want, NormalizeTime(int64(12345)))
	assert.Equal(t, want, NormalizeTime([]string{"weird"}))
}

func TestNormalizeTimeThresholdBoundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	// Exactly at the seconds threshold is still implausible.
	assert.Equal(t, "2025-06-01T12:00:00Z", NormalizeTime(int64(secEpochThreshold)))
	// One past it parses as seconds.
	assert.Equal(t, "2000-01-01T00:00:01Z", NormalizeTime(int64(secEpochThreshold+1)))
	// One past the ms threshold parses as milliseconds.
	assert.Equal(t, "2000-01-01T00:00:00Z", NormalizeTime(int64(msEpochThreshold+1)))
}

func TestLaterIso(t *testing.T) {
	assert.Equal(t, "2024-02-01T00:00:00Z", LaterIso("2024-01-01T00:00:00Z", "2024-02-01T00:00:00Z"))
	assert.Equal(t, "2024-02-01T00:00:00Z", LaterIso("2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z"))
	assert.Equal(t, "2024-01-01T00:00:00Z", LaterIso("", "2024-01-01T00:00:00Z"))
	assert.Equal(t, "2024-01-01T00:00:00Z", LaterIso("2024-01-01T00:00:00Z", ""))
}
