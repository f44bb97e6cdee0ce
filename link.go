package main

import "fmt"

// LinkClass says which kinds of node a link joins and, for a
// switch-host link, which edge is the switch.
type LinkClass int

const (
	SwitchToSwitch LinkClass = iota
	SwitchToHost             // edges[0] is the switch
	HostToSwitch             // edges[1] is the switch
)

func (c LinkClass) String() string {
	switch c {
	case SwitchToSwitch:
		return "switch-switch"
	case SwitchToHost:
		return "switch-host"
	case HostToSwitch:
		return "host-switch"
	}
	return fmt.Sprintf("LinkClass(%d)", int(c))
}

// Classify returns the class of a link whose edges have kinds a and b.
// Host-host links have no switch to attach either side to and are
// rejected.
func Classify(a, b NodeKind) (LinkClass, error) {
	switch {
	case a == KindSwitch && b == KindSwitch:
		return SwitchToSwitch, nil
	case a == KindSwitch && b == KindHost:
		return SwitchToHost, nil
	case a == KindHost && b == KindSwitch:
		return HostToSwitch, nil
	case a == KindHost && b == KindHost:
		return 0, fmt.Errorf("%w: host-host link", ErrInvalidLinkEndpoints)
	}
	return 0, fmt.Errorf("%w: cannot join %q and %q", ErrInvalidLinkEndpoints, a, b)
}

// SwitchEdge returns the index of the switch edge and the host edge of a
// switch-host link.
func (c LinkClass) SwitchEdge() (sw, host int) {
	if c == HostToSwitch {
		return 1, 0
	}
	return 0, 1
}
