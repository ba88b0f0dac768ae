// Package testutil provides shared network fixtures for tests.
package testutil

import (
	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/montyhall"
	"github.com/beliefnet/beliefnet/internal/network"
)

// NewTestMontyHall creates the unbaked Monty Hall network.
func NewTestMontyHall() *network.Network {
	net, err := montyhall.NewNetwork()
	if err != nil {
		panic(err)
	}
	return net
}

// NewBakedMontyHall creates the Monty Hall network, baked and ready to
// query.
func NewBakedMontyHall() *network.Network {
	net := NewTestMontyHall()
	if err := net.Bake(); err != nil {
		panic(err)
	}
	return net
}

// NewTestChain creates a baked two-node chain: weather (sunny 0.8,
// rainy 0.2) and grass, which copies weather with certainty. Handy for
// hand-checked posterior values.
func NewTestChain() *network.Network {
	weather := mustDomain("sunny", "rainy")
	grass := mustDomain("dry", "wet")

	prior, err := domain.NewDistribution(weather, map[domain.Value]float64{"sunny": 0.8, "rainy": 0.2})
	if err != nil {
		panic(err)
	}
	table, err := domain.NewConditionalTable([]*domain.Domain{weather}, grass, []domain.Row{
		{Parents: []domain.Value{"sunny"}, Child: "dry", P: 1},
		{Parents: []domain.Value{"sunny"}, Child: "wet", P: 0},
		{Parents: []domain.Value{"rainy"}, Child: "dry", P: 0},
		{Parents: []domain.Value{"rainy"}, Child: "wet", P: 1},
	})
	if err != nil {
		panic(err)
	}

	root, err := network.NewRootNode("weather", prior)
	if err != nil {
		panic(err)
	}
	child, err := network.NewDerivedNode("grass", table, "weather")
	if err != nil {
		panic(err)
	}

	net := network.New("test-chain")
	mustAdd(net, root, child)
	if err := net.Bake(); err != nil {
		panic(err)
	}
	return net
}

// NewTestCycle creates an unbaked two-node network whose parents form a
// cycle, so Bake is guaranteed to fail.
func NewTestCycle() *network.Network {
	binary := mustDomain("yes", "no")
	table := func() *domain.ConditionalTable {
		t, err := domain.NewConditionalTable([]*domain.Domain{binary}, binary, []domain.Row{
			{Parents: []domain.Value{"yes"}, Child: "yes", P: 1},
			{Parents: []domain.Value{"yes"}, Child: "no", P: 0},
			{Parents: []domain.Value{"no"}, Child: "yes", P: 0},
			{Parents: []domain.Value{"no"}, Child: "no", P: 1},
		})
		if err != nil {
			panic(err)
		}
		return t
	}

	a, err := network.NewDerivedNode("a", table(), "b")
	if err != nil {
		panic(err)
	}
	b, err := network.NewDerivedNode("b", table(), "a")
	if err != nil {
		panic(err)
	}

	net := network.New("test-cycle")
	mustAdd(net, a, b)
	return net
}

func mustDomain(values ...domain.Value) *domain.Domain {
	dom, err := domain.NewDomain(values...)
	if err != nil {
		panic(err)
	}
	return dom
}

func mustAdd(net *network.Network, nodes ...*network.Node) {
	for _, node := range nodes {
		if err := net.AddNode(node); err != nil {
			panic(err)
		}
	}
}
