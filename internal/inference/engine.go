package inference

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/network"
	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

// DefaultMaxStates bounds the joint state space a query will enumerate
// when no limit is configured.
const DefaultMaxStates uint64 = 1 << 20

// ctxCheckStride controls how many joint states are visited between
// context cancellation checks.
const ctxCheckStride = 4096

// Config holds the engine limits.
type Config struct {
	// MaxStates is the largest joint state space a query will
	// enumerate. Zero means DefaultMaxStates.
	MaxStates uint64
}

// Engine answers posterior queries against baked networks by exact
// enumeration of the joint state space. An Engine is stateless between
// queries and safe for concurrent use.
type Engine struct {
	maxStates uint64
	logger    *zap.Logger
}

// NewEngine creates an engine with the given limits.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	maxStates := cfg.MaxStates
	if maxStates == 0 {
		maxStates = DefaultMaxStates
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		maxStates: maxStates,
		logger:    logger,
	}
}

// Query computes the posterior distribution of every node conditioned on
// the evidence. The network must be baked and the evidence must name
// known nodes with values from their domains. Nodes fixed by evidence
// come back as degenerate distributions; a query whose evidence is
// impossible under the model fails rather than divide by zero.
func (e *Engine) Query(ctx context.Context, net *network.Network, ev domain.Evidence) (*domain.PosteriorSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if net == nil {
		return nil, apperrors.Validation("network must not be nil")
	}
	if !net.Baked() {
		return nil, apperrors.UnbakedNetwork()
	}
	if err := net.ValidateEvidence(ev); err != nil {
		return nil, err
	}

	size, ok := net.StateSpaceSize()
	if !ok {
		return nil, apperrors.New(apperrors.CodeStateSpaceTooLarge, "joint state space overflows uint64").
			WithDetail("limit", fmt.Sprintf("%d", e.maxStates))
	}
	if size > e.maxStates {
		return nil, apperrors.StateSpaceTooLarge(size, e.maxStates)
	}

	start := time.Now()
	w, err := newWalker(net, ev)
	if err != nil {
		return nil, err
	}
	if err := w.walk(ctx, 0, 1); err != nil {
		return nil, err
	}
	if w.total == 0 {
		return nil, apperrors.ZeroEvidenceProbability()
	}

	set := domain.NewPosteriorSet()
	for _, name := range net.Names() {
		node, _ := net.Node(name)
		if observed, fixed := ev[name]; fixed {
			dist, err := domain.NewDegenerate(node.Domain(), observed)
			if err != nil {
				return nil, err
			}
			set.Add(name, dist)
			continue
		}
		dist, err := domain.NewDistributionFromWeights(node.Domain(), w.weights[w.position[name]])
		if err != nil {
			return nil, err
		}
		set.Add(name, dist)
	}

	e.logger.Debug("query answered",
		zap.String("network", net.Name()),
		zap.Uint64("states", size),
		zap.Int("evidence", len(ev)),
		zap.Duration("duration", time.Since(start)),
	)
	return set, nil
}

// walker carries the state of one enumeration over the joint state
// space. Nodes are visited in topological order so each conditional
// factor sees its parents already assigned, and branches whose partial
// product is zero are pruned.
type walker struct {
	nodes      []*network.Node
	position   map[string]int
	allowed    [][]int
	currentIdx []int
	parentPos  [][]int
	parentVals [][]domain.Value
	weights    [][]float64
	total      float64
	visited    uint64
}

func newWalker(net *network.Network, ev domain.Evidence) (*walker, error) {
	nodes := net.TopologicalOrder()
	w := &walker{
		nodes:      nodes,
		position:   make(map[string]int, len(nodes)),
		allowed:    make([][]int, len(nodes)),
		currentIdx: make([]int, len(nodes)),
		parentPos:  make([][]int, len(nodes)),
		parentVals: make([][]domain.Value, len(nodes)),
		weights:    make([][]float64, len(nodes)),
	}
	for i, node := range nodes {
		w.position[node.Name()] = i
		w.weights[i] = make([]float64, node.Domain().Size())

		parents := node.Parents()
		w.parentPos[i] = make([]int, len(parents))
		w.parentVals[i] = make([]domain.Value, len(parents))
		for j, parentName := range parents {
			// Topological order guarantees the parent was indexed first.
			w.parentPos[i][j] = w.position[parentName]
		}

		if observed, fixed := ev[node.Name()]; fixed {
			vi, ok := node.Domain().IndexOf(observed)
			if !ok {
				return nil, apperrors.InvalidValue(node.Name(), string(observed))
			}
			w.allowed[i] = []int{vi}
			continue
		}
		all := make([]int, node.Domain().Size())
		for vi := range all {
			all[vi] = vi
		}
		w.allowed[i] = all
	}
	return w, nil
}

func (w *walker) walk(ctx context.Context, depth int, acc float64) error {
	if depth == len(w.nodes) {
		w.visited++
		if w.visited%ctxCheckStride == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		w.total += acc
		for i := range w.nodes {
			w.weights[i][w.currentIdx[i]] += acc
		}
		return nil
	}

	node := w.nodes[depth]
	for _, vi := range w.allowed[depth] {
		w.currentIdx[depth] = vi
		p := w.factor(depth, node, vi)
		if p == 0 {
			continue
		}
		if err := w.walk(ctx, depth+1, acc*p); err != nil {
			return err
		}
	}
	return nil
}

// factor returns the probability contributed by assigning the node its
// vi-th value under the current partial assignment.
func (w *walker) factor(depth int, node *network.Node, vi int) float64 {
	if node.IsRoot() {
		return node.Prior().ProbabilityAt(vi)
	}
	vals := w.parentVals[depth]
	for i, pos := range w.parentPos[depth] {
		vals[i] = w.nodes[pos].Domain().At(w.currentIdx[pos])
	}
	return node.Table().Probability(vals, node.Domain().At(vi))
}
