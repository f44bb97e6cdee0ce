package main

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
)

const (
	NodesTable = "nodes"
	LinksTable = "links"
)

// tableExts are tried in order when locating a table file.
var tableExts = []string{".toml", ".yaml", ".yml"}

var validate = validator.New()

// NodeKind is the role of a node in the topology.
type NodeKind string

const (
	KindSwitch NodeKind = "switch"
	KindHost   NodeKind = "host"
)

// NodeTable maps node id to its declaration, e.g. {"s1": {"type": "switch"}}.
type NodeTable map[string]map[string]any

// LinkTable maps link id to its declaration.
type LinkTable map[string]LinkDecl

// LinkDecl is a link as written in links.toml.
type LinkDecl struct {
	Edges    []string `toml:"edges" yaml:"edges" validate:"len=2,dive,required"`
	DataRate string   `toml:"dataRate" yaml:"dataRate"`
	Delay    string   `toml:"delay" yaml:"delay"`
	Pcap     bool     `toml:"pcap" yaml:"pcap"`
}

// Node is a validated node.
type Node struct {
	ID    string
	Kind  NodeKind
	Attrs map[string]any
}

// Link is a validated link with resolved endpoint kinds.
type Link struct {
	ID       string
	Edges    [2]string
	Kinds    [2]NodeKind
	Class    LinkClass
	DataRate string
	Mbps     int64
	Delay    string
	Pcap     bool
}

// Topology is the loaded, validated view of a topology. It is not
// modified by compilation.
type Topology struct {
	Nodes    map[string]Node
	Switches mapset.Set[string]
	Hosts    mapset.Set[string]
	Links    []Link // sorted by ID
}

// SortedSwitches returns the switch ids in ascending order.
func (t *Topology) SortedSwitches() []string {
	ids := t.Switches.ToSlice()
	slices.Sort(ids)
	return ids
}

// LoadTopology reads the node and link tables from dir.
func LoadTopology(dir string) (*Topology, error) {
	var nodes NodeTable
	if err := readTable(dir, NodesTable, &nodes); err != nil {
		return nil, err
	}

	var links LinkTable
	if err := readTable(dir, LinksTable, &links); err != nil {
		return nil, err
	}

	return ParseTopology(nodes, links)
}

// readTable decodes <dir>/<name>.toml, falling back to .yaml and .yml.
func readTable(dir, name string, v any) error {
	for _, ext := range tableExts {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: failed to read %s: %v", ErrMissingInput, path, err)
		}

		if ext == ".toml" {
			err = toml.Unmarshal(data, v)
		} else {
			err = yaml.Unmarshal(data, v)
		}
		if err != nil {
			return fmt.Errorf("%w: failed to parse %s: %v", ErrMissingInput, path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s.toml not found in %s", ErrMissingInput, name, dir)
}

// ParseTopology validates the node and link tables and resolves every
// link's endpoints.
func ParseTopology(nodes NodeTable, links LinkTable) (*Topology, error) {
	topo := &Topology{
		Nodes:    make(map[string]Node, len(nodes)),
		Switches: mapset.NewThreadUnsafeSet[string](),
		Hosts:    mapset.NewThreadUnsafeSet[string](),
	}

	for _, id := range slices.Sorted(maps.Keys(nodes)) {
		node, err := parseNode(id, nodes[id])
		if err != nil {
			return nil, err
		}
		topo.Nodes[id] = node
		if node.Kind == KindSwitch {
			topo.Switches.Add(id)
		} else {
			topo.Hosts.Add(id)
		}
	}

	// Sorted so that the first reported error and link order are stable.
	for _, id := range slices.Sorted(maps.Keys(links)) {
		link, err := topo.parseLink(id, links[id])
		if err != nil {
			return nil, err
		}
		topo.Links = append(topo.Links, link)
	}

	return topo, nil
}

func parseNode(id string, decl map[string]any) (Node, error) {
	typ, _ := decl["type"].(string)
	if err := validate.Var(typ, "required,oneof=host switch"); err != nil {
		return Node{}, fmt.Errorf("%w: node %s has type %q", ErrUnknownNodeType, id, typ)
	}

	attrs := make(map[string]any, len(decl))
	for k, v := range decl {
		if k != "type" {
			attrs[k] = v
		}
	}
	return Node{ID: id, Kind: NodeKind(typ), Attrs: attrs}, nil
}

func (t *Topology) parseLink(id string, decl LinkDecl) (Link, error) {
	if err := validate.Struct(decl); err != nil {
		return Link{}, fmt.Errorf("%w: link %s must have exactly two edges, got %q",
			ErrInvalidLinkEndpoints, id, decl.Edges)
	}

	link := Link{
		ID:       id,
		Edges:    [2]string{decl.Edges[0], decl.Edges[1]},
		DataRate: decl.DataRate,
		Delay:    decl.Delay,
		Pcap:     decl.Pcap,
	}
	if link.DataRate == "" {
		link.DataRate = DefaultDataRate
	}

	for i, edge := range link.Edges {
		node, ok := t.Nodes[edge]
		if !ok {
			return Link{}, fmt.Errorf("%w: link %s references unknown node %s",
				ErrInvalidLinkEndpoints, id, edge)
		}
		link.Kinds[i] = node.Kind
	}
	if link.Edges[0] == link.Edges[1] {
		return Link{}, fmt.Errorf("%w: link %s connects %s to itself",
			ErrInvalidLinkEndpoints, id, link.Edges[0])
	}

	class, err := Classify(link.Kinds[0], link.Kinds[1])
	if err != nil {
		return Link{}, fmt.Errorf("link %s (%s-%s): %w", id, link.Edges[0], link.Edges[1], err)
	}
	link.Class = class

	mbps, err := ParseRate(link.DataRate)
	if err != nil {
		return Link{}, fmt.Errorf("link %s: %w", id, err)
	}
	link.Mbps = mbps

	return link, nil
}
