package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		neighbors int
		expected  bool
	}{
		{"alive lonely", true, 0, false},
		{"alive one neighbor", true, 1, false},
		{"alive two neighbors", true, 2, true},
		{"alive three neighbors", true, 3, true},
		{"alive four neighbors", true, 4, false},
		{"alive crowded", true, 8, false},
		{"dead two neighbors", false, 2, false},
		{"dead three neighbors", false, 3, true},
		{"dead four neighbors", false, 4, false},
		{"dead empty", false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
