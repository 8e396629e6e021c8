package utils

import (
	"testing"
	"time"
)

func TestEstimateTime(t *testing.T) {
	// Test basic time estimation
	operations := uint64(1000)
	opsPerSecond := 100.0

	estimated := EstimateTime(operations, opsPerSecond)
	expected := 10 * time.Second

	if estimated != expected {
		t.Errorf("Expected %v, got %v", expected, estimated)
	}

	// Test zero rate
	estimated = EstimateTime(operations, 0)
	if estimated != 0 {
		t.Errorf("Expected 0 for zero rate, got %v", estimated)
	}

	// Test negative rate
	estimated = EstimateTime(operations, -10)
	if estimated != 0 {
		t.Errorf("Expected 0 for negative rate, got %v", estimated)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{30 * time.Second, "30.0s"},
		{90 * time.Second, "1.5m"},
		{2 * time.Hour, "2.0h"},
		{25 * time.Hour, "1.0d"},
		{48 * time.Hour, "2.0d"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s, want %s", test.duration, result, test.expected)
		}
	}
}
