package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABIJSON = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("evm: bad erc20 abi: %v", err))
	}
	return parsed
}

// callReadonly packs method(args...), runs it as an eth_call against the
// latest block and hands the single return value to unpack.
func callReadonly[T any](
	ctx context.Context,
	caller ethereum.ContractCaller,
	contract common.Address,
	method string,
	unpack func(any) (T, bool),
	args ...any,
) (T, error) {
	var zero T

	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return zero, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := caller.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return zero, fmt.Errorf("failed to unpack %s: %w", method, err)
	}
	if len(values) != 1 {
		return zero, fmt.Errorf("unexpected %s result count: %d", method, len(values))
	}

	res, ok := unpack(values[0])
	if !ok {
		return zero, fmt.Errorf("unexpected %s result type: %T", method, values[0])
	}
	return res, nil
}

func asBigInt(v any) (*big.Int, bool) {
	res, ok := v.(*big.Int)
	return res, ok && res != nil
}

func asUint8(v any) (uint8, bool) {
	res, ok := v.(uint8)
	return res, ok
}
