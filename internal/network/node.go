package network

import (
	"github.com/beliefnet/beliefnet/internal/domain"
	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// Node is one variable of a network. A root node carries a prior
// distribution over its domain; a derived node carries a conditional table
// over its named parents. Nodes are immutable once constructed.
type Node struct {
	name    string
	domain  *domain.Domain
	prior   *domain.Distribution
	table   *domain.ConditionalTable
	parents []string
}

// NewRootNode builds a parentless node with the given prior distribution.
func NewRootNode(name string, prior *domain.Distribution) (*Node, error) {
	if name == "" {
		return nil, apperrors.Validation("node name must not be empty")
	}
	if prior == nil {
		return nil, apperrors.Validationf("root node %q requires a prior distribution", name)
	}

	return &Node{
		name:   name,
		domain: prior.Domain(),
		prior:  prior,
	}, nil
}

// NewDerivedNode builds a node conditioned on the named parents, in order.
// The parent names must line up with the table's parent domains; whether
// the names resolve to nodes with matching domains is checked when the
// owning network bakes.
func NewDerivedNode(name string, table *domain.ConditionalTable, parents ...string) (*Node, error) {
	if name == "" {
		return nil, apperrors.Validation("node name must not be empty")
	}
	if table == nil {
		return nil, apperrors.Validationf("derived node %q requires a conditional table", name)
	}
	if len(parents) == 0 {
		return nil, apperrors.Validationf("derived node %q requires at least one parent", name)
	}
	if len(parents) != table.NumParents() {
		return nil, apperrors.Validationf("node %q names %d parents but its table conditions on %d", name, len(parents), table.NumParents())
	}

	seen := make(map[string]struct{}, len(parents))
	owned := make([]string, len(parents))
	for i, parent := range parents {
		if parent == "" {
			return nil, apperrors.Validationf("node %q has an empty parent name", name)
		}
		if _, dup := seen[parent]; dup {
			return nil, apperrors.Validationf("node %q lists parent %q twice", name, parent)
		}
		seen[parent] = struct{}{}
		owned[i] = parent
	}

	return &Node{
		name:    name,
		domain:  table.ChildDomain(),
		table:   table,
		parents: owned,
	}, nil
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Domain returns the domain the node takes values in.
func (n *Node) Domain() *domain.Domain {
	return n.domain
}

// IsRoot reports whether the node has no parents.
func (n *Node) IsRoot() bool {
	return n.table == nil
}

// Parents returns the parent names in declaration order. Roots return nil.
func (n *Node) Parents() []string {
	if len(n.parents) == 0 {
		return nil
	}
	out := make([]string, len(n.parents))
	copy(out, n.parents)
	return out
}

// Prior returns the prior distribution of a root node, or nil for derived
// nodes.
func (n *Node) Prior() *domain.Distribution {
	return n.prior
}

// Table returns the conditional table of a derived node, or nil for roots.
func (n *Node) Table() *domain.ConditionalTable {
	return n.table
}
