package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"

	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// ProbabilityTolerance is the absolute tolerance within which the
// probabilities of a distribution sum to one.
const ProbabilityTolerance = 1e-6

// Distribution is a normalized probability law over a single domain.
// Probabilities are stored in the domain's canonical order and always sum
// to one within ProbabilityTolerance.
type Distribution struct {
	domain *Domain
	probs  []float64
}

// NewDistribution builds a distribution from per-value weights. Values
// absent from the map get weight zero. Weights are normalized so the
// result sums to one.
func NewDistribution(dom *Domain, weights map[Value]float64) (*Distribution, error) {
	if dom == nil {
		return nil, apperrors.Validation("distribution requires a domain")
	}

	w := make([]float64, dom.Size())
	for v, weight := range weights {
		i, ok := dom.IndexOf(v)
		if !ok {
			return nil, apperrors.Validationf("weight assigned to value %q outside the domain", v)
		}
		if weight < 0 {
			return nil, apperrors.Validationf("negative weight %v for value %q", weight, v)
		}
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, apperrors.Validationf("non-finite weight %v for value %q", weight, v)
		}
		w[i] = weight
	}

	return newNormalized(dom, w)
}

// NewDistributionFromWeights builds a distribution from weights listed in
// the domain's canonical order. Weights are normalized so the result sums
// to one.
func NewDistributionFromWeights(dom *Domain, weights []float64) (*Distribution, error) {
	if dom == nil {
		return nil, apperrors.Validation("distribution requires a domain")
	}
	if len(weights) != dom.Size() {
		return nil, apperrors.Validationf("expected %d weights for the domain, got %d", dom.Size(), len(weights))
	}

	w := make([]float64, len(weights))
	for i, weight := range weights {
		if weight < 0 {
			return nil, apperrors.Validationf("negative weight %v for value %q", weight, dom.At(i))
		}
		if math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, apperrors.Validationf("non-finite weight %v for value %q", weight, dom.At(i))
		}
		w[i] = weight
	}

	return newNormalized(dom, w)
}

// NewUniform builds the distribution assigning equal probability to every
// value of the domain.
func NewUniform(dom *Domain) (*Distribution, error) {
	if dom == nil {
		return nil, apperrors.Validation("distribution requires a domain")
	}

	w := make([]float64, dom.Size())
	for i := range w {
		w[i] = 1
	}
	return newNormalized(dom, w)
}

// NewDegenerate builds the distribution assigning probability one to v and
// zero to every other value of the domain.
func NewDegenerate(dom *Domain, v Value) (*Distribution, error) {
	if dom == nil {
		return nil, apperrors.Validation("distribution requires a domain")
	}

	i, ok := dom.IndexOf(v)
	if !ok {
		return nil, apperrors.Validationf("value %q outside the domain", v)
	}

	w := make([]float64, dom.Size())
	w[i] = 1
	return &Distribution{domain: dom, probs: w}, nil
}

func newNormalized(dom *Domain, w []float64) (*Distribution, error) {
	total := floats.Sum(w)
	if total <= 0 {
		return nil, apperrors.Validation("total weight must be positive")
	}
	// Individual weights are finite, but their sum can still overflow.
	if math.IsInf(total, 1) {
		return nil, apperrors.Validation("total weight overflows float64")
	}
	floats.Scale(1/total, w)
	return &Distribution{domain: dom, probs: w}, nil
}

// Domain returns the domain the distribution is defined over.
func (d *Distribution) Domain() *Domain {
	return d.domain
}

// Probability returns the probability of v, or zero when v is outside the
// domain.
func (d *Distribution) Probability(v Value) float64 {
	i, ok := d.domain.IndexOf(v)
	if !ok {
		return 0
	}
	return d.probs[i]
}

// ProbabilityAt returns the probability of the value at canonical
// position i.
func (d *Distribution) ProbabilityAt(i int) float64 {
	return d.probs[i]
}

// Probabilities returns the probabilities in the domain's canonical order.
func (d *Distribution) Probabilities() []float64 {
	out := make([]float64, len(d.probs))
	copy(out, d.probs)
	return out
}
