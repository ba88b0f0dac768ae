package domain

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// rowConflictTolerance bounds how far two rows for the same parent
// combination and child value may disagree before they conflict.
const rowConflictTolerance = 1e-9

// comboSeparator joins parent values into a lookup key. NewDomain rejects
// control characters in value labels, so joined keys stay unambiguous.
const comboSeparator = "\x1f"

// Row is one conditional-table entry: the probability of the child taking
// Child given the parents taking Parents, in parent declaration order.
type Row struct {
	Parents []Value
	Child   Value
	P       float64
}

// ConditionalTable maps every combination of parent values to a normalized
// distribution over the child domain. A table is immutable once
// constructed; construction fails unless the rows cover every parent
// combination exactly.
type ConditionalTable struct {
	parents []*Domain
	child   *Domain
	dists   map[string]*Distribution
}

// NewConditionalTable validates the rows against the parent and child
// domains and builds the table. Rows may arrive in any order. Every parent
// combination must be covered, each combination's weights must normalize,
// and repeated rows must agree on their probability.
func NewConditionalTable(parents []*Domain, child *Domain, rows []Row) (*ConditionalTable, error) {
	if child == nil {
		return nil, apperrors.Validation("conditional table requires a child domain")
	}
	if len(parents) == 0 {
		return nil, apperrors.Validation("conditional table requires at least one parent domain")
	}
	for i, p := range parents {
		if p == nil {
			return nil, apperrors.Validationf("parent domain at position %d is nil", i)
		}
	}

	weights := make(map[string][]float64)
	assigned := make(map[string][]bool)

	for _, row := range rows {
		if len(row.Parents) != len(parents) {
			return nil, apperrors.Validationf("row has %d parent values, expected %d", len(row.Parents), len(parents))
		}
		for i, pv := range row.Parents {
			if !parents[i].Contains(pv) {
				return nil, apperrors.Validationf("parent value %q at position %d is outside its domain", pv, i)
			}
		}
		ci, ok := child.IndexOf(row.Child)
		if !ok {
			return nil, apperrors.Validationf("child value %q is outside the child domain", row.Child)
		}
		if row.P < 0 {
			return nil, apperrors.Validationf("negative probability %v for child %q given (%s)", row.P, row.Child, comboLabel(row.Parents))
		}
		if math.IsNaN(row.P) || math.IsInf(row.P, 0) {
			return nil, apperrors.Validationf("non-finite probability %v for child %q given (%s)", row.P, row.Child, comboLabel(row.Parents))
		}

		key := comboKey(row.Parents)
		w, ok := weights[key]
		if !ok {
			w = make([]float64, child.Size())
			weights[key] = w
			assigned[key] = make([]bool, child.Size())
		}
		if assigned[key][ci] {
			if !scalar.EqualWithinAbs(w[ci], row.P, rowConflictTolerance) {
				return nil, apperrors.Validationf("conflicting rows for child %q given (%s): %v and %v", row.Child, comboLabel(row.Parents), w[ci], row.P)
			}
			continue
		}
		w[ci] = row.P
		assigned[key][ci] = true
	}

	dists := make(map[string]*Distribution, len(weights))
	combo := make([]Value, len(parents))
	var build func(depth int) error
	build = func(depth int) error {
		if depth == len(parents) {
			key := comboKey(combo)
			w, ok := weights[key]
			if !ok {
				return apperrors.Validationf("no rows for parent combination (%s)", comboLabel(combo))
			}
			dist, err := NewDistributionFromWeights(child, w)
			if err != nil {
				if appErr := apperrors.GetAppError(err); appErr != nil {
					return appErr.WithDetail("parents", comboLabel(combo))
				}
				return err
			}
			dists[key] = dist
			return nil
		}
		for _, v := range parents[depth].Values() {
			combo[depth] = v
			if err := build(depth + 1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := build(0); err != nil {
		return nil, err
	}

	owned := make([]*Domain, len(parents))
	copy(owned, parents)
	return &ConditionalTable{parents: owned, child: child, dists: dists}, nil
}

// NumParents returns how many parent domains the table conditions on.
func (t *ConditionalTable) NumParents() int {
	return len(t.parents)
}

// ParentDomains returns the parent domains in declaration order.
func (t *ConditionalTable) ParentDomains() []*Domain {
	out := make([]*Domain, len(t.parents))
	copy(out, t.parents)
	return out
}

// ChildDomain returns the domain the table distributes over.
func (t *ConditionalTable) ChildDomain() *Domain {
	return t.child
}

// Probability returns P(child | parents), or zero when the parent tuple or
// the child value is unknown to the table.
func (t *ConditionalTable) Probability(parents []Value, child Value) float64 {
	if len(parents) != len(t.parents) {
		return 0
	}
	dist, ok := t.dists[comboKey(parents)]
	if !ok {
		return 0
	}
	return dist.Probability(child)
}

func comboKey(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, comboSeparator)
}

func comboLabel(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
