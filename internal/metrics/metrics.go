package metrics

// Package metrics provides Prometheus metrics collection for transfer step
// tracking.
//
// This package includes:
// - Step metrics (steps entered, transitions, rejected transitions, time per step)
// - Metrics HTTP server on configurable port
//
// Usage:
//   import "github.com/abbyosnl/union/internal/metrics"
//
//   metricsServer := metrics.StartMetricsServer(cfg.Metrics, []string{metrics.ServiceTransfer}, logger)
//   defer metricsServer.Stop(context.Background())
//
//   tracker := progress.NewTracker(logger, metrics.NewTransferMetrics())
