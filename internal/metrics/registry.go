package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const (
	ServiceTransfer = "transfer"
)

// RegisterMetrics registers metrics for the specified services
func RegisterMetrics(services []string, logger logrus.FieldLogger) {
	// Always register Go and process metrics
	registerIfNotExists(collectors.NewGoCollector(), "go_collector", logger)
	registerIfNotExists(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), "process_collector", logger)

	for _, service := range services {
		switch service {
		case ServiceTransfer:
			registerTransferMetrics(logger)
		default:
			logger.Warnf("Unknown service type for metrics registration: %s", service)
		}
	}
}

// registerIfNotExists registers a collector if it's not already registered
func registerIfNotExists(collector prometheus.Collector, name string, logger logrus.FieldLogger) {
	if err := prometheus.Register(collector); err != nil {
		var alreadyRegErr prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegErr) {
			logger.Debugf("%s already registered", name)
		} else {
			logger.Errorf("Failed to register %s: %v", name, err)
		}
	}
}

func registerTransferMetrics(logger logrus.FieldLogger) {
	registerIfNotExists(transferStepsEnteredTotal, "transfer_steps_entered_total", logger)
	registerIfNotExists(transferTransitionsTotal, "transfer_transitions_total", logger)
	registerIfNotExists(transferRejectedTransitionsTotal, "transfer_rejected_transitions_total", logger)
	registerIfNotExists(transferStepDuration, "transfer_step_duration", logger)
	registerIfNotExists(transferLastTransitionTimestamp, "transfer_last_transition_timestamp", logger)
}
