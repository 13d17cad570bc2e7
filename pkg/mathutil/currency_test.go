package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down",
			input:    1011.384,
			expected: 1011.38,
		},
		{
			name:     "Round up",
			input:    148.625,
			expected: 148.63,
		},
		{
			name:     "Negative value",
			input:    -56.789,
			expected: -56.79,
		},
		{
			name:     "Already two decimals",
			input:    45000.00,
			expected: 45000.00,
		},
		{
			name:     "Zero",
			input:    0.0,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(0.005) {
		t.Errorf("IsZero(0.005) = false, expected true")
	}
	if IsZero(0.02) {
		t.Errorf("IsZero(0.02) = true, expected false")
	}
	if !IsZero(-0.005) {
		t.Errorf("IsZero(-0.005) = false, expected true")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(123.45) {
		t.Errorf("IsFinite(123.45) = false, expected true")
	}
	if IsFinite(math.NaN()) {
		t.Errorf("IsFinite(NaN) = true, expected false")
	}
	if IsFinite(math.Inf(1)) {
		t.Errorf("IsFinite(+Inf) = true, expected false")
	}
	if IsFinite(math.Inf(-1)) {
		t.Errorf("IsFinite(-Inf) = true, expected false")
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(1011.38, 1011.39, 0.01) {
		t.Errorf("WithinTolerance(1011.38, 1011.39, 0.01) = false, expected true")
	}
	if WithinTolerance(100.0, 101.0, 0.5) {
		t.Errorf("WithinTolerance(100.0, 101.0, 0.5) = true, expected false")
	}
}
