package main

import (
	"errors"
	"net"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestGenerateMAC(t *testing.T) {
	tests := []struct {
		counter  uint64
		expected string
	}{
		{1, "00:00:00:00:00:01"},
		{2, "00:00:00:00:00:02"},
		{255, "00:00:00:00:00:ff"},
		{256, "00:00:00:00:01:00"},
		{0x0102030405, "00:01:02:03:04:05"},
		{maxMACCounter, "ff:ff:ff:ff:ff:ff"},
	}

	for _, tt := range tests {
		got := GenerateMAC(tt.counter)
		if got.String() != tt.expected {
			t.Errorf("GenerateMAC(%d) = %s, want %s", tt.counter, got, tt.expected)
		}
		back, err := MACCounter(got)
		if err != nil {
			t.Fatalf("MACCounter(%s) failed: %v", got, err)
		}
		if back != tt.counter {
			t.Errorf("MACCounter(%s) = %d, want %d", got, back, tt.counter)
		}
	}
}

func TestMACCounterRejectsEUI64(t *testing.T) {
	mac, err := net.ParseMAC("00:00:00:00:fe:80:00:00")
	if err != nil {
		t.Fatalf("Failed to parse MAC: %v", err)
	}
	if _, err := MACCounter(mac); err == nil {
		t.Errorf("MACCounter accepted 8-byte address %s", mac)
	}
}

func TestNextMACStartsAtOne(t *testing.T) {
	alloc := NewAllocator()
	for i, want := range []string{"00:00:00:00:00:01", "00:00:00:00:00:02", "00:00:00:00:00:03"} {
		got, err := alloc.NextMAC()
		if err != nil {
			t.Fatalf("NextMAC #%d failed: %v", i, err)
		}
		if got != want {
			t.Errorf("NextMAC #%d = %s, want %s", i, got, want)
		}
	}
	if err := alloc.ReserveMAC(); err != nil {
		t.Fatalf("ReserveMAC failed: %v", err)
	}
	if got, _ := alloc.NextMAC(); got != "00:00:00:00:00:05" {
		t.Errorf("NextMAC after reserve = %s, want 00:00:00:00:00:05", got)
	}
	if alloc.MACsIssued() != 5 {
		t.Errorf("MACsIssued = %d, want 5", alloc.MACsIssued())
	}
}

func TestNextMACExhausted(t *testing.T) {
	alloc := &Allocator{macCounter: maxMACCounter - 1}
	if _, err := alloc.NextMAC(); err != nil {
		t.Fatalf("NextMAC at last address failed: %v", err)
	}
	if _, err := alloc.NextMAC(); !errors.Is(err, ErrAddressExhausted) {
		t.Errorf("NextMAC past last address error = %v, want ErrAddressExhausted", err)
	}
}

func TestMACSequenceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("issued MACs are distinct and increasing", prop.ForAll(
		func(n int) bool {
			alloc := NewAllocator()
			seen := make(map[string]bool, n)
			var last uint64
			for i := 0; i < n; i++ {
				s, err := alloc.NextMAC()
				if err != nil || seen[s] {
					return false
				}
				seen[s] = true

				mac, err := net.ParseMAC(s)
				if err != nil {
					return false
				}
				v, err := MACCounter(mac)
				if err != nil || v <= last {
					return false
				}
				last = v
			}
			return true
		},
		gen.IntRange(0, 2000),
	))

	properties.TestingRun(t)
}
