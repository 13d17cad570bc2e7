package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{
			name:     "Small positive amount",
			amount:   148.62,
			expected: "$148.62",
		},
		{
			name:     "Thousands separator",
			amount:   45000,
			expected: "$45,000.00",
		},
		{
			name:     "Negative amount",
			amount:   -1561.38,
			expected: "-$1,561.38",
		},
		{
			name:     "Millions",
			amount:   1234567.891,
			expected: "$1,234,567.89",
		},
		{
			name:     "Zero",
			amount:   0,
			expected: "$0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(12.345); got != "12.35%" {
		t.Errorf("Percent(12.345) = %q, expected %q", got, "12.35%")
	}
	if got := Percent(-3.2); got != "-3.20%" {
		t.Errorf("Percent(-3.2) = %q, expected %q", got, "-3.20%")
	}
}

func TestCurrencyRange(t *testing.T) {
	if got := CurrencyRange(1650, 1950); got != "$1,650.00 - $1,950.00" {
		t.Errorf("CurrencyRange(1650, 1950) = %q, expected %q", got, "$1,650.00 - $1,950.00")
	}
}
