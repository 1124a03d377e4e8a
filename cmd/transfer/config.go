package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/abbyosnl/union/internal/logging"
	"github.com/abbyosnl/union/internal/metrics"
)

const (
	modeDescribe = "describe"
	modePlan     = "plan"
)

type config struct {
	Mode      string            `envconfig:"MODE" default:"describe"`
	LogFormat logging.LogFormat `envconfig:"LOG_FORMAT" default:"text"`
	Metrics   metrics.Config

	RPCURL     string `envconfig:"RPC_URL"`
	Token      string `envconfig:"TOKEN"`
	QuoteToken string `envconfig:"QUOTE_TOKEN"`
	Owner      string `envconfig:"OWNER"`
	Spender    string `envconfig:"SPENDER"`
	Receiver   string `envconfig:"RECEIVER"`
	Amount     string `envconfig:"AMOUNT"`
	// Negative means read decimals from the token contract.
	Decimals int `envconfig:"DECIMALS" default:"-1"`
}

func newConfig() (config, error) {
	var cfg config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return config{}, fmt.Errorf("failed to process env var: %w", err)
	}
	return cfg, nil
}

func (c config) validatePlan() error {
	required := []struct {
		key   string
		value string
	}{
		{"RPC_URL", c.RPCURL},
		{"TOKEN", c.Token},
		{"OWNER", c.Owner},
		{"SPENDER", c.Spender},
		{"AMOUNT", c.Amount},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required in %s mode", r.key, modePlan)
		}
	}
	return nil
}
