package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
)

// Network groups the read-only token queries for one EVM chain.
type Network struct {
	Allowance *AllowanceService
	Decimals  *DecimalsService

	rpc *ethclient.Client
}

func NewNetwork(ctx context.Context, rpcURL string) (*Network, error) {
	rpc, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	return &Network{
		Allowance: NewAllowanceService(rpc),
		Decimals:  NewDecimalsService(rpc),
		rpc:       rpc,
	}, nil
}

func (n *Network) Close() {
	n.rpc.Close()
}
