package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// switchRecord tracks a switch's identity and port usage during a run.
type switchRecord struct {
	ordinal  int
	deviceID string
	ports    int // last port number handed out
}

// nextPort hands out the next port number on the switch.
func (s *switchRecord) nextPort() int {
	s.ports++
	return s.ports
}

// Compiler turns a topology into an ONOS network config.
type Compiler struct {
	topo     *Topology
	log      log.FieldLogger
	alloc    *Allocator
	switches map[string]*switchRecord
	config   *NetworkConfig
}

// NewCompiler creates a compiler for topo. A nil logger discards output.
func NewCompiler(topo *Topology, logger log.FieldLogger) *Compiler {
	if logger == nil {
		l := log.New()
		l.SetLevel(log.PanicLevel)
		logger = l
	}
	return &Compiler{topo: topo, log: logger}
}

// Build runs a full compilation. Every call starts from fresh counters,
// so repeated calls on the same topology return equal documents.
func (c *Compiler) Build() (*NetworkConfig, error) {
	c.alloc = NewAllocator()
	c.switches = make(map[string]*switchRecord, c.topo.Switches.Cardinality())
	c.config = NewNetworkConfig()

	c.buildDevices()

	for _, link := range c.topo.Links {
		if err := c.addLink(link); err != nil {
			return nil, err
		}
	}

	c.log.WithFields(log.Fields{
		"devices":    len(c.config.Devices),
		"links":      len(c.config.Links),
		"hosts":      len(c.config.Hosts),
		"macsIssued": c.alloc.MACsIssued(),
		"ipsIssued":  c.alloc.HostIPsIssued(),
	}).Info("network config built")

	return c.config, nil
}

// buildDevices numbers switches from 1 in ascending id order.
func (c *Compiler) buildDevices() {
	for i, id := range c.topo.SortedSwitches() {
		rec := &switchRecord{ordinal: i + 1, deviceID: DeviceID(i + 1)}
		c.switches[id] = rec

		c.config.Devices[rec.deviceID] = DeviceConfig{
			Basic:       DeviceBasic{Allowed: true, Name: id},
			Annotations: Annotations{Entries: map[string]string{"emsId": id}},
		}

		c.log.WithFields(log.Fields{
			"switch":  id,
			"ordinal": rec.ordinal,
			"device":  rec.deviceID,
		}).Debug("device assigned")
	}
}

func (c *Compiler) addLink(link Link) error {
	switch link.Class {
	case SwitchToSwitch:
		return c.addSwitchLink(link)
	case SwitchToHost, HostToSwitch:
		return c.addHostLink(link)
	}
	return fmt.Errorf("%w: link %s has class %s", ErrInvalidLinkEndpoints, link.ID, link.Class)
}

// switchFor returns the record for a switch edge of link.
func (c *Compiler) switchFor(link Link, edge string) (*switchRecord, error) {
	rec, ok := c.switches[edge]
	if !ok {
		return nil, fmt.Errorf("%w: link %s: %s is not a switch", ErrInvalidLinkEndpoints, link.ID, edge)
	}
	return rec, nil
}

// addSwitchLink adds a bidirectional link between two switches. Two MAC
// slots are consumed, one per direction, to match the controller's
// numbering; their values are not used.
func (c *Compiler) addSwitchLink(link Link) error {
	a, err := c.switchFor(link, link.Edges[0])
	if err != nil {
		return err
	}
	b, err := c.switchFor(link, link.Edges[1])
	if err != nil {
		return err
	}

	for range 2 {
		if err := c.alloc.ReserveMAC(); err != nil {
			return fmt.Errorf("link %s: %w", link.ID, err)
		}
	}

	portA := a.nextPort()
	portB := b.nextPort()
	key := LinkKey(a.deviceID, portA, b.deviceID, portB)

	c.config.Links[key] = LinkConfig{
		Basic: LinkBasic{
			Allowed:       true,
			Bidirectional: true,
			Bandwidth:     link.Mbps,
			Delay:         LinkDelay(link.Delay),
			Durable:       true,
			Metric:        1,
			Type:          LinkTypeDirect,
		},
	}

	c.log.WithFields(log.Fields{
		"link":      link.ID,
		"key":       key,
		"bandwidth": link.Mbps,
	}).Debug("switch link added")
	return nil
}

// addHostLink attaches a host to the next free port of its switch.
// Two MAC slots are consumed. The host is keyed by the second one when
// the switch is the first edge and by the first one otherwise.
func (c *Compiler) addHostLink(link Link) error {
	swEdge, hostEdge := link.Class.SwitchEdge()
	sw, err := c.switchFor(link, link.Edges[swEdge])
	if err != nil {
		return err
	}
	hostName := link.Edges[hostEdge]

	if swEdge == 0 {
		if err := c.alloc.ReserveMAC(); err != nil {
			return fmt.Errorf("link %s: %w", link.ID, err)
		}
	}
	mac, err := c.alloc.NextMAC()
	if err != nil {
		return fmt.Errorf("link %s: %w", link.ID, err)
	}
	if swEdge == 1 {
		if err := c.alloc.ReserveMAC(); err != nil {
			return fmt.Errorf("link %s: %w", link.ID, err)
		}
	}

	ip, err := c.alloc.NextHostIP()
	if err != nil {
		return fmt.Errorf("link %s: host %s: %w", link.ID, hostName, err)
	}

	location := PortRef(sw.deviceID, sw.nextPort())
	hostID := HostID(mac)
	c.config.Hosts[hostID] = HostConfig{
		Basic: HostBasic{
			Allowed:   true,
			IPs:       []string{ip},
			Locations: []string{location},
			Name:      hostName,
		},
	}

	c.log.WithFields(log.Fields{
		"link":     link.ID,
		"host":     hostName,
		"hostId":   hostID,
		"location": location,
		"ip":       ip,
	}).Debug("host attached")
	return nil
}
