package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abbyosnl/union/internal/evm"
	"github.com/abbyosnl/union/internal/graceful"
	"github.com/abbyosnl/union/internal/logging"
	"github.com/abbyosnl/union/internal/metrics"
	"github.com/abbyosnl/union/internal/progress"
)

func main() {
	cfg, err := newConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg.LogFormat)

	ctx, cancel := graceful.WithSignals(context.Background(), logger)
	defer cancel()

	metricsServer := metrics.StartMetricsServer(cfg.Metrics, []string{metrics.ServiceTransfer}, logger)
	defer func() {
		if err := metricsServer.Stop(context.Background()); err != nil {
			logger.Errorf("failed to stop metrics server: %v", err)
		}
	}()

	switch cfg.Mode {
	case modeDescribe:
		err = describe(os.Stdout)
		if err != nil {
			logger.Fatalf("failed to describe steps: %v", err)
		}
	case modePlan:
		err = cfg.validatePlan()
		if err != nil {
			logger.Fatalf("invalid config: %v", err)
		}

		var network *evm.Network
		network, err = evm.NewNetwork(ctx, cfg.RPCURL)
		if err != nil {
			logger.Fatalf("failed to initialize EVM network: %v", err)
		}
		defer network.Close()

		p := &planner{
			allowance: network.Allowance,
			decimals:  network.Decimals,
			tracker:   progress.NewTracker(logger, metrics.NewTransferMetrics()),
			logger:    logger,
		}
		_, err = p.plan(ctx, cfg, os.Stdout)
		if err != nil {
			logger.Fatalf("failed to plan transfer: %v", err)
		}
	default:
		logger.Fatalf("invalid MODE: %s (must be '%s' or '%s')", cfg.Mode, modeDescribe, modePlan)
	}
}
