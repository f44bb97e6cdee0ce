package main

import "fmt"

const (
	// HostNetworkPrefix is the /24 block host addresses are issued from.
	HostNetworkPrefix = "10.1.1"

	maxHostOctet = 254
)

// Allocator issues MAC and host IP addresses for a single compilation
// run. It must not be shared between runs.
type Allocator struct {
	macCounter uint64
	ipCounter  int
}

// NewAllocator returns an allocator whose first MAC is 00:00:00:00:00:01
// and whose first host IP is 10.1.1.1.
func NewAllocator() *Allocator {
	return &Allocator{ipCounter: 1}
}

// HostIP returns the host address for a given host octet.
func HostIP(octet int) string {
	return fmt.Sprintf("%s.%d", HostNetworkPrefix, octet)
}

// NextHostIP issues the next host address in HostNetworkPrefix.
// Supports up to 254 hosts (10.1.1.1 - 10.1.1.254).
func (a *Allocator) NextHostIP() (string, error) {
	if a.ipCounter > maxHostOctet {
		return "", fmt.Errorf("%w: no host address left in %s.0/24", ErrAddressExhausted, HostNetworkPrefix)
	}
	ip := HostIP(a.ipCounter)
	a.ipCounter++
	return ip, nil
}

// HostIPsIssued returns how many host addresses have been issued so far.
func (a *Allocator) HostIPsIssued() int {
	return a.ipCounter - 1
}
