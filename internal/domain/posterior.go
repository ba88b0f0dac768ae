package domain

// PosteriorSet holds one posterior distribution per node, conditioned on
// the evidence supplied to a query. Nodes are kept in the order they were
// added, which queries align with network declaration order.
type PosteriorSet struct {
	order []string
	dists map[string]*Distribution
}

// NewPosteriorSet returns an empty posterior set.
func NewPosteriorSet() *PosteriorSet {
	return &PosteriorSet{dists: make(map[string]*Distribution)}
}

// Add records the posterior for a node. Re-adding a node replaces its
// distribution without changing its position.
func (p *PosteriorSet) Add(name string, dist *Distribution) {
	if _, exists := p.dists[name]; !exists {
		p.order = append(p.order, name)
	}
	p.dists[name] = dist
}

// Get returns the posterior for the named node.
func (p *PosteriorSet) Get(name string) (*Distribution, bool) {
	dist, ok := p.dists[name]
	return dist, ok
}

// Names returns the node names in the order they were added.
func (p *PosteriorSet) Names() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns how many node posteriors the set holds.
func (p *PosteriorSet) Len() int {
	return len(p.order)
}
