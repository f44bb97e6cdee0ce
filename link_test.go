package main

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		a, b     NodeKind
		expected LinkClass
		swEdge   int
	}{
		{KindSwitch, KindSwitch, SwitchToSwitch, 0},
		{KindSwitch, KindHost, SwitchToHost, 0},
		{KindHost, KindSwitch, HostToSwitch, 1},
	}

	for _, tt := range tests {
		got, err := Classify(tt.a, tt.b)
		if err != nil {
			t.Errorf("Classify(%s, %s) returned error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Classify(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.expected)
		}
		if got == SwitchToSwitch {
			continue
		}
		if sw, host := got.SwitchEdge(); sw != tt.swEdge || host != 1-tt.swEdge {
			t.Errorf("%s.SwitchEdge() = %d, %d, want %d, %d", got, sw, host, tt.swEdge, 1-tt.swEdge)
		}
	}
}

func TestClassifyRejectsHostToHost(t *testing.T) {
	if _, err := Classify(KindHost, KindHost); !errors.Is(err, ErrInvalidLinkEndpoints) {
		t.Errorf("Classify(host, host) error = %v, want ErrInvalidLinkEndpoints", err)
	}
	if _, err := Classify(KindSwitch, NodeKind("router")); !errors.Is(err, ErrInvalidLinkEndpoints) {
		t.Errorf("Classify(switch, router) error = %v, want ErrInvalidLinkEndpoints", err)
	}
}
