// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "testing"

func TestCheckPasscode(t *testing.T) {
	tests := []struct {
		name     string
		passcode int
		password any
		want     bool
	}{
		{"matching number", 3333, float64(3333), true},
		{"matching int", 3333, 3333, true},
		{"matching int64", 3333, int64(3333), true},
		{"wrong number", 3333, float64(9999), false},
		{"numeric string", 3333, "3333", false},
		{"fractional", 3333, 3333.5, false},
		{"bool", 3333, true, false},
		{"nil", 3333, nil, false},
		{"huge", 3333, 1e300, false},
		{"negative", 3333, float64(-3333), false},
		{"zero passcode", 0, float64(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPasscode(tt.passcode, tt.password); got != tt.want {
				t.Errorf("CheckPasscode(%d, %v) = %v, want %v", tt.passcode, tt.password, got, tt.want)
			}
		})
	}
}
