package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

type AllowanceService struct {
	rpc ethereum.ContractCaller
}

func NewAllowanceService(rpc ethereum.ContractCaller) *AllowanceService {
	return &AllowanceService{
		rpc: rpc,
	}
}

// Allowance reads how much of tokenAddress spender may move on behalf of owner.
func (a *AllowanceService) Allowance(
	ctx context.Context,
	tokenAddress, owner, spender common.Address,
) (*big.Int, error) {
	if tokenAddress == (common.Address{}) {
		return nil, fmt.Errorf("token address cannot be zero")
	}

	allowance, err := callReadonly(ctx, a.rpc, tokenAddress, "allowance", asBigInt, owner, spender)
	if err != nil {
		return nil, fmt.Errorf("failed to check allowance: %w", err)
	}
	return allowance, nil
}
