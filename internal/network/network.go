package network

import (
	"errors"
	"math/bits"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/beliefnet/beliefnet/internal/domain"
	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// Network is a named collection of nodes wired by parent references.
// Nodes are added while the network is mutable; Bake resolves the wiring,
// rejects invalid structure, freezes the network, and fixes the
// evaluation order. Only a baked network can be queried.
type Network struct {
	name  string
	nodes map[string]*Node
	order []string
	topo  []*Node
	baked bool
}

// New returns an empty, unbaked network.
func New(name string) *Network {
	return &Network{
		name:  name,
		nodes: make(map[string]*Node),
	}
}

// Name returns the network name.
func (n *Network) Name() string {
	return n.name
}

// AddNode registers a node. Adding fails once the network is baked or when
// another node already uses the name.
func (n *Network) AddNode(node *Node) error {
	if n.baked {
		return apperrors.NetworkFrozen()
	}
	if node == nil {
		return apperrors.Validation("node must not be nil")
	}
	if _, exists := n.nodes[node.Name()]; exists {
		return apperrors.DuplicateName(node.Name())
	}

	n.nodes[node.Name()] = node
	n.order = append(n.order, node.Name())
	return nil
}

// Bake validates the network structure and freezes it. Every parent
// reference must resolve to a registered node whose domain matches the
// child's table, and the parent relation must be acyclic. Baking an
// already-baked network is a no-op.
func (n *Network) Bake() error {
	if n.baked {
		return nil
	}
	if len(n.order) == 0 {
		return apperrors.Validation("network has no nodes")
	}

	for _, name := range n.order {
		node := n.nodes[name]
		if node.IsRoot() {
			continue
		}
		parentDomains := node.Table().ParentDomains()
		for i, parentName := range node.Parents() {
			if parentName == name {
				return apperrors.Cycle([]string{name})
			}
			parent, ok := n.nodes[parentName]
			if !ok {
				return apperrors.UnknownNode(parentName).WithDetail("referenced_by", name)
			}
			if !parent.Domain().Equal(parentDomains[i]) {
				return apperrors.Validationf("node %q expects parent %q over domain %v, but %q ranges over %v",
					name, parentName, parentDomains[i].Values(), parentName, parent.Domain().Values())
			}
		}
	}

	sorted, err := n.sortTopological()
	if err != nil {
		return err
	}

	n.topo = sorted
	n.baked = true
	return nil
}

// sortTopological orders nodes so every parent precedes its children.
// Declaration order breaks ties, which keeps the result stable across
// runs.
func (n *Network) sortTopological() ([]*Node, error) {
	g := simple.NewDirectedGraph()
	byID := make(map[int64]*Node, len(n.order))
	ids := make(map[string]int64, len(n.order))
	for i, name := range n.order {
		id := int64(i)
		ids[name] = id
		byID[id] = n.nodes[name]
		g.AddNode(simple.Node(id))
	}
	for _, name := range n.order {
		for _, parentName := range n.nodes[name].Parents() {
			g.SetEdge(g.NewEdge(g.Node(ids[parentName]), g.Node(ids[name])))
		}
	}

	sorted, err := topo.SortStabilized(g, func(nodes []graph.Node) {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	})
	if err != nil {
		var unorderable topo.Unorderable
		if errors.As(err, &unorderable) {
			return nil, apperrors.Cycle(n.cycleNames(unorderable))
		}
		return nil, err
	}

	out := make([]*Node, len(sorted))
	for i, gn := range sorted {
		out[i] = byID[gn.ID()]
	}
	return out, nil
}

// cycleNames flattens the unorderable components into node names in
// declaration order.
func (n *Network) cycleNames(components topo.Unorderable) []string {
	member := make(map[int64]struct{})
	for _, component := range components {
		for _, gn := range component {
			member[gn.ID()] = struct{}{}
		}
	}
	names := make([]string, 0, len(member))
	for i, name := range n.order {
		if _, ok := member[int64(i)]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Baked reports whether the network has been frozen by Bake.
func (n *Network) Baked() bool {
	return n.baked
}

// Node returns the named node.
func (n *Network) Node(name string) (*Node, bool) {
	node, ok := n.nodes[name]
	return node, ok
}

// Names returns the node names in declaration order.
func (n *Network) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Len returns the number of nodes.
func (n *Network) Len() int {
	return len(n.order)
}

// TopologicalOrder returns the nodes with every parent before its
// children. It returns nil until the network is baked.
func (n *Network) TopologicalOrder() []*Node {
	if !n.baked {
		return nil
	}
	out := make([]*Node, len(n.topo))
	copy(out, n.topo)
	return out
}

// StateSpaceSize returns the number of joint assignments over all node
// domains. The second return is false when the product overflows uint64.
func (n *Network) StateSpaceSize() (uint64, bool) {
	size := uint64(1)
	for _, name := range n.order {
		hi, lo := bits.Mul64(size, uint64(n.nodes[name].Domain().Size()))
		if hi != 0 {
			return 0, false
		}
		size = lo
	}
	return size, true
}

// ValidateEvidence checks every observed node name and value against the
// network. Names are checked in sorted order so the reported error is
// stable.
func (n *Network) ValidateEvidence(ev domain.Evidence) error {
	names := make([]string, 0, len(ev))
	for name := range ev {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		node, ok := n.nodes[name]
		if !ok {
			return apperrors.UnknownNode(name)
		}
		if !node.Domain().Contains(ev[name]) {
			return apperrors.InvalidValue(name, string(ev[name]))
		}
	}
	return nil
}
