package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// OutputFile is written inside the topology directory.
	OutputFile = "switches_config.json"

	// LinkDiscoveryMode makes ONOS accept only the configured links.
	LinkDiscoveryMode = "STRICT"

	LinkTypeDirect = "DIRECT"
)

// NetworkConfig is the ONOS network-cfg document.
type NetworkConfig struct {
	Devices map[string]DeviceConfig `json:"devices"`
	Links   map[string]LinkConfig   `json:"links"`
	Hosts   map[string]HostConfig   `json:"hosts"`
	Apps    Apps                    `json:"apps"`
}

// DeviceConfig configures a switch.
type DeviceConfig struct {
	Basic       DeviceBasic `json:"basic"`
	Annotations Annotations `json:"annotations"`
}

// DeviceBasic is the basic device config.
type DeviceBasic struct {
	Allowed bool   `json:"allowed"`
	Name    string `json:"name"`
}

// Annotations carries free-form device annotations.
type Annotations struct {
	Entries map[string]string `json:"entries"`
}

// LinkConfig configures a switch-switch link.
type LinkConfig struct {
	Basic LinkBasic `json:"basic"`
}

// LinkBasic is the basic link config. Bandwidth is in Mbps.
type LinkBasic struct {
	Allowed       bool      `json:"allowed"`
	Bidirectional bool      `json:"bidirectional"`
	Bandwidth     int64     `json:"bandwidth"`
	Delay         LinkDelay `json:"delay"`
	Durable       bool      `json:"durable"`
	Metric        int       `json:"metric"`
	Type          string    `json:"type"`
}

// LinkDelay is the delay as written in the link table. An unset delay
// is encoded as 0.
type LinkDelay string

func (d LinkDelay) MarshalJSON() ([]byte, error) {
	if d == "" {
		return []byte("0"), nil
	}
	return json.Marshal(string(d))
}

// HostConfig configures a host attached to a switch port.
type HostConfig struct {
	Basic HostBasic `json:"basic"`
}

// HostBasic is the basic host config.
type HostBasic struct {
	Allowed   bool     `json:"allowed"`
	IPs       []string `json:"ips"`
	Locations []string `json:"locations"`
	Name      string   `json:"name"`
}

// Apps holds application settings.
type Apps struct {
	Core CoreApp `json:"org.onosproject.core"`
}

// CoreApp holds org.onosproject.core settings.
type CoreApp struct {
	Core CoreConfig `json:"core"`
}

// CoreConfig holds the core subsystem settings.
type CoreConfig struct {
	LinkDiscoveryMode string `json:"linkDiscoveryMode"`
}

// NewNetworkConfig returns an empty document with the fixed app settings.
func NewNetworkConfig() *NetworkConfig {
	return &NetworkConfig{
		Devices: make(map[string]DeviceConfig),
		Links:   make(map[string]LinkConfig),
		Hosts:   make(map[string]HostConfig),
		Apps: Apps{
			Core: CoreApp{Core: CoreConfig{LinkDiscoveryMode: LinkDiscoveryMode}},
		},
	}
}

// Marshal encodes the document as indented JSON. Map keys are sorted, so
// equal documents encode to identical bytes.
func (c *NetworkConfig) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteConfig writes the document to path. The file is replaced
// atomically, so a failed write leaves no partial artifact.
func WriteConfig(path string, c *NetworkConfig) error {
	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode network config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
