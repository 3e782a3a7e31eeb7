package util

import (
	"testing"
	"time"
)

func TestIsValidHexAddress(t *testing.T) {
	tests := []struct {
		address string
		valid   bool
	}{
		{"0x5e2a4a5d5ba0e4d4b4f0c1b2b7c8d9e0f1a2b3c4", true},
		{"0x0000000000000000000000000000000000000000", false},
		{"0xABC", false},
		{"xch1qyz", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidHexAddress(tt.address); got != tt.valid {
			t.Errorf("IsValidHexAddress(%q) = %v, want %v", tt.address, got, tt.valid)
		}
	}
}

func TestFormatLastUpdate(t *testing.T) {
	ts := time.Date(2021, time.March, 4, 17, 5, 59, 0, time.Local)
	if got := FormatLastUpdate(ts); got != "04-03-2021 17:05" {
		t.Errorf("FormatLastUpdate() = %q", got)
	}
}

func TestMustParseDuration(t *testing.T) {
	if got := MustParseDuration("30s"); got != 30*time.Second {
		t.Errorf("MustParseDuration(30s) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on invalid duration")
		}
	}()
	MustParseDuration("soon")
}
