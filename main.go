package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	cfg, err := ParseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, log.StandardLogger()); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// run compiles the topology named by cfg and writes its network config.
func run(cfg Config, logger log.FieldLogger) error {
	dir := cfg.TopologyDir()

	topo, err := LoadTopology(dir)
	if err != nil {
		return fmt.Errorf("failed to load topology %s: %w", dir, err)
	}

	netcfg, err := NewCompiler(topo, logger).Build()
	if err != nil {
		return fmt.Errorf("failed to build network config: %w", err)
	}

	out := cfg.OutputPath()
	if err := WriteConfig(out, netcfg); err != nil {
		return err
	}

	logger.WithField("path", out).Info("network config written")
	return nil
}
