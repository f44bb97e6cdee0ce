package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
)

const (
	// CmdGenConfig is the only subcommand.
	CmdGenConfig = "gen-config"

	// TopologiesDir holds named topologies, one directory each.
	TopologiesDir = "topologies"
)

var errUsage = errors.New("usage: topo-onos gen-config [-t] <topology>")

// Config holds the command line configuration.
type Config struct {
	Topology string
}

// ParseArgs parses the command line (without the program name).
func ParseArgs(args []string, stderr io.Writer) (Config, error) {
	var cfg Config

	if len(args) == 0 || args[0] != CmdGenConfig {
		return cfg, errUsage
	}

	fs := flag.NewFlagSet(CmdGenConfig, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Topology, "topology", "", "Topology name under ./topologies, or a topology directory")
	fs.StringVar(&cfg.Topology, "t", "", "Shorthand for -topology")
	if err := fs.Parse(args[1:]); err != nil {
		return cfg, err
	}

	switch {
	case cfg.Topology == "" && fs.NArg() == 1:
		cfg.Topology = fs.Arg(0)
	case cfg.Topology != "" && fs.NArg() == 0:
	default:
		return cfg, errUsage
	}

	return cfg, nil
}

// TopologyDir resolves the topology to a directory. An existing
// directory is used as is; anything else is looked up under
// TopologiesDir.
func (c Config) TopologyDir() string {
	if fi, err := os.Stat(c.Topology); err == nil && fi.IsDir() {
		return c.Topology
	}
	return filepath.Join(TopologiesDir, c.Topology)
}

// OutputPath returns where the network config is written.
func (c Config) OutputPath() string {
	return filepath.Join(c.TopologyDir(), OutputFile)
}
