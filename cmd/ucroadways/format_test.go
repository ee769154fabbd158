package main

import "testing"

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		m    float64
		want string
	}{
		{0, "0 m"},
		{15.4, "15 m"},
		{999, "999 m"},
		{1000, "1.00 km"},
		{2345, "2.35 km"},
	}
	for _, tt := range tests {
		if got := formatDistance(tt.m); got != tt.want {
			t.Errorf("formatDistance(%v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("bourns", 20); got != "bourns" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("materials-science-engineering", 10); got != "materials~" {
		t.Errorf("truncate long = %q, want %q", got, "materials~")
	}
}
