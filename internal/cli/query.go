package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beliefnet/beliefnet/internal/config"
	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/inference"
	"github.com/beliefnet/beliefnet/internal/montyhall"
	"github.com/beliefnet/beliefnet/internal/pkg/id"
	"github.com/beliefnet/beliefnet/internal/pkg/logger"
	"github.com/beliefnet/beliefnet/internal/report"
	"github.com/beliefnet/beliefnet/internal/service"
)

func runQuery(cmd *cobra.Command, evidencePairs []string) error {
	ev, err := parseEvidence(evidencePairs)
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.WithContext(zap.String("run_id", id.NewRunID()))

	net, err := montyhall.NewNetwork()
	if err != nil {
		return fmt.Errorf("failed to build network: %w", err)
	}
	if err := net.Bake(); err != nil {
		return fmt.Errorf("failed to bake network: %w", err)
	}

	engine := inference.NewEngine(inference.Config{MaxStates: cfg.Engine.MaxStates}, log)
	svc := service.NewQueryService(engine, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("answering query",
		zap.String("network", net.Name()),
		zap.String("evidence", formatEvidence(ev)),
	)

	set, err := svc.Posteriors(ctx, net, ev)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), set)
}

// parseEvidence turns --evidence pairs into an evidence map. The literal
// "none" stands alone and queries the prior marginals; repeating a node
// name keeps the last value.
func parseEvidence(pairs []string) (domain.Evidence, error) {
	ev := make(domain.Evidence, len(pairs))
	none := false
	for _, pair := range pairs {
		if pair == "none" {
			none = true
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid evidence %q: expected name=value", pair)
		}
		ev[name] = domain.Value(value)
	}
	if none {
		if len(ev) > 0 {
			return nil, fmt.Errorf(`evidence "none" cannot be combined with name=value pairs`)
		}
		return nil, nil
	}
	if len(ev) == 0 {
		return nil, nil
	}
	return ev, nil
}

// formatEvidence renders evidence as sorted name=value pairs for logs.
func formatEvidence(ev domain.Evidence) string {
	if len(ev) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(ev))
	for name, value := range ev {
		parts = append(parts, name+"="+string(value))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}
