package montyhall

import (
	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/network"
)

// Door labels in canonical order.
const (
	DoorA = domain.Value("A")
	DoorB = domain.Value("B")
	DoorC = domain.Value("C")
)

// Node names as they appear in the network and in reports.
const (
	NodeGuest = "guest"
	NodePrice = "price"
	NodeMonty = "monty"
)

// NetworkName identifies the assembled network in logs and reports.
const NetworkName = "Monty Hall Problem"

var doorDomain = mustDoors()

func mustDoors() *domain.Domain {
	dom, err := domain.NewDomain(DoorA, DoorB, DoorC)
	if err != nil {
		panic(err)
	}
	return dom
}

// Doors returns the shared three-door domain.
func Doors() *domain.Domain {
	return doorDomain
}

// RevealProbability returns the probability that the host opens door
// monty when the guest picked door guest and the prize sits behind door
// price. The host never opens the guest's door or the prize door; when
// the guest guessed right the host picks uniformly between the two
// remaining doors, otherwise only one door is left.
func RevealProbability(guest, price, monty domain.Value) float64 {
	switch {
	case monty == guest || monty == price:
		return 0
	case guest == price:
		return 0.5
	default:
		return 1
	}
}

// Rows generates the host's full conditional table, one row per
// (guest, price, monty) combination.
func Rows() []domain.Row {
	values := doorDomain.Values()
	rows := make([]domain.Row, 0, len(values)*len(values)*len(values))
	for _, guest := range values {
		for _, price := range values {
			for _, monty := range values {
				rows = append(rows, domain.Row{
					Parents: []domain.Value{guest, price},
					Child:   monty,
					P:       RevealProbability(guest, price, monty),
				})
			}
		}
	}
	return rows
}

// NewNetwork assembles the unbaked three-node network: the guest's pick
// and the prize door are uniform roots, and the host's reveal is
// conditioned on both. Callers bake it before querying.
func NewNetwork() (*network.Network, error) {
	guestPrior, err := domain.NewUniform(doorDomain)
	if err != nil {
		return nil, err
	}
	pricePrior, err := domain.NewUniform(doorDomain)
	if err != nil {
		return nil, err
	}
	table, err := domain.NewConditionalTable([]*domain.Domain{doorDomain, doorDomain}, doorDomain, Rows())
	if err != nil {
		return nil, err
	}

	guest, err := network.NewRootNode(NodeGuest, guestPrior)
	if err != nil {
		return nil, err
	}
	price, err := network.NewRootNode(NodePrice, pricePrior)
	if err != nil {
		return nil, err
	}
	monty, err := network.NewDerivedNode(NodeMonty, table, NodeGuest, NodePrice)
	if err != nil {
		return nil, err
	}

	net := network.New(NetworkName)
	for _, node := range []*network.Node{guest, price, monty} {
		if err := net.AddNode(node); err != nil {
			return nil, err
		}
	}
	return net, nil
}
