package main

import "fmt"

// DeviceID returns the OpenFlow device identifier for a switch ordinal.
// Ordinal 1 is "of:0000000000000001".
func DeviceID(ordinal int) string {
	return fmt.Sprintf("of:%016x", ordinal)
}

// PortRef returns the "<device>/<port>" connect point used for links and
// host locations.
func PortRef(deviceID string, port int) string {
	return fmt.Sprintf("%s/%d", deviceID, port)
}

// LinkKey returns the link entry key "<devA>/<portA>-<devB>/<portB>".
func LinkKey(devA string, portA int, devB string, portB int) string {
	return PortRef(devA, portA) + "-" + PortRef(devB, portB)
}

// HostID returns the host entry key for a MAC. ONOS uses -1 for an
// untagged VLAN.
func HostID(mac string) string {
	return mac + "/-1"
}
