package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

type DecimalsService struct {
	rpc ethereum.ContractCaller
}

func NewDecimalsService(rpc ethereum.ContractCaller) *DecimalsService {
	return &DecimalsService{
		rpc: rpc,
	}
}

// Decimals fetches the decimals for an ERC20 token
func (d *DecimalsService) Decimals(ctx context.Context, tokenAddress common.Address) (uint8, error) {
	if tokenAddress == (common.Address{}) {
		return 0, fmt.Errorf("token address cannot be zero")
	}

	decimals, err := callReadonly(ctx, d.rpc, tokenAddress, "decimals", asUint8)
	if err != nil {
		return 0, fmt.Errorf("failed to get decimals for token %s: %w", tokenAddress.Hex(), err)
	}
	return decimals, nil
}
