package main

import (
	"fmt"
	"net"
)

const maxMACCounter = 1<<48 - 1

// GenerateMAC encodes a counter value as a 48-bit MAC address.
// Format: 00:00:00:00:00:01 for counter 1.
func GenerateMAC(counter uint64) net.HardwareAddr {
	return net.HardwareAddr{
		byte(counter >> 40),
		byte(counter >> 32),
		byte(counter >> 24),
		byte(counter >> 16),
		byte(counter >> 8),
		byte(counter),
	}
}

// MACCounter decodes a MAC address produced by GenerateMAC.
func MACCounter(mac net.HardwareAddr) (uint64, error) {
	if len(mac) != 6 {
		return 0, fmt.Errorf("not an EUI-48 address: %s", mac)
	}
	var v uint64
	for _, b := range mac {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// NextMAC issues the next MAC address. The counter is incremented before
// encoding, so the first address of a run is 00:00:00:00:00:01.
func (a *Allocator) NextMAC() (string, error) {
	if a.macCounter >= maxMACCounter {
		return "", fmt.Errorf("%w: MAC counter at %d", ErrAddressExhausted, a.macCounter)
	}
	a.macCounter++
	return GenerateMAC(a.macCounter).String(), nil
}

// ReserveMAC issues a MAC address whose value is not used. The slot is
// consumed so that later addresses line up with the controller's
// numbering.
func (a *Allocator) ReserveMAC() error {
	_, err := a.NextMAC()
	return err
}

// MACsIssued returns how many MAC addresses have been issued so far.
func (a *Allocator) MACsIssued() uint64 {
	return a.macCounter
}
