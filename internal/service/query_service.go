package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/inference"
	"github.com/beliefnet/beliefnet/internal/network"
	"github.com/beliefnet/beliefnet/internal/pkg/id"
)

// QueryService runs posterior queries and logs their outcome
type QueryService struct {
	engine *inference.Engine
	logger *zap.Logger
}

// NewQueryService creates a new query service
func NewQueryService(engine *inference.Engine, logger *zap.Logger) *QueryService {
	return &QueryService{
		engine: engine,
		logger: logger,
	}
}

// Posteriors answers one query against a baked network. Every call is
// tagged with a generated query ID for log correlation.
func (s *QueryService) Posteriors(ctx context.Context, net *network.Network, ev domain.Evidence) (*domain.PosteriorSet, error) {
	queryID := id.NewQueryID()
	log := s.logger.With(zap.String("query_id", queryID))
	start := time.Now()

	// Callers may reuse and mutate their evidence map; query a private copy.
	set, err := s.engine.Query(ctx, net, ev.Clone())
	if err != nil {
		log.Warn("query failed",
			zap.String("network", networkName(net)),
			zap.Int("evidence", len(ev)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("query completed",
		zap.String("network", net.Name()),
		zap.Int("nodes", set.Len()),
		zap.Int("evidence", len(ev)),
		zap.Duration("duration", time.Since(start)),
	)
	return set, nil
}

func networkName(net *network.Network) string {
	if net == nil {
		return ""
	}
	return net.Name()
}
