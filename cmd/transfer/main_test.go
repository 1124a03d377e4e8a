package main

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/progress"
	"github.com/abbyosnl/union/internal/transfer"
)

type fakeAllowance struct {
	allowance *big.Int
	err       error
}

func (f *fakeAllowance) Allowance(context.Context, common.Address, common.Address, common.Address) (*big.Int, error) {
	return f.allowance, f.err
}

type fakeDecimals struct {
	decimals uint8
	err      error
	calls    atomic.Int32
}

func (f *fakeDecimals) Decimals(context.Context, common.Address) (uint8, error) {
	f.calls.Add(1)
	return f.decimals, f.err
}

func testConfig() config {
	return config{
		Mode:     modePlan,
		RPCURL:   "http://localhost:8545",
		Token:    "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		Owner:    "0x1111111111111111111111111111111111111111",
		Spender:  "0x2222222222222222222222222222222222222222",
		Receiver: "union1receiver",
		Amount:   "1.5",
		Decimals: -1,
	}
}

func newTestPlanner(allowance *fakeAllowance, decimals *fakeDecimals) *planner {
	logger, _ := test.NewNullLogger()
	return &planner{
		allowance: allowance,
		decimals:  decimals,
		tracker:   progress.NewTracker(logger, progress.NewNilMetrics()),
		logger:    logger,
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, describe(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "Configure your transfer details")
	require.Contains(t, lines[1], "Approve token spending")
	require.Contains(t, lines[2], "Submit transfer to blockchain")
	require.Contains(t, lines[3], "Waiting for indexer")
}

func TestPlanner_ApprovalRequired(t *testing.T) {
	decimals := &fakeDecimals{decimals: 6}
	p := newTestPlanner(&fakeAllowance{allowance: big.NewInt(500_000)}, decimals)

	var buf bytes.Buffer
	step, err := p.plan(context.Background(), testConfig(), &buf)
	require.NoError(t, err)

	approval, ok := step.(transfer.ApprovalRequired)
	require.True(t, ok)
	require.Equal(t, "1500000", approval.RequiredAmount().String())
	require.Equal(t, "500000", approval.CurrentAllowance().String())
	require.Equal(t, int32(1), decimals.calls.Load())

	require.Contains(t, buf.String(), "Approve token spending")
	require.Contains(t, buf.String(), "allowance short by 1")

	history := p.tracker.History()
	require.Len(t, history, 2)
	require.True(t, transfer.Is(history[0].Step, transfer.TagFilling))
}

func TestPlanner_SubmitInstruction(t *testing.T) {
	decimals := &fakeDecimals{}
	p := newTestPlanner(&fakeAllowance{allowance: big.NewInt(2_000_000)}, decimals)

	cfg := testConfig()
	cfg.Decimals = 6

	var buf bytes.Buffer
	step, err := p.plan(context.Background(), cfg, &buf)
	require.NoError(t, err)
	require.Zero(t, decimals.calls.Load())

	submit, ok := step.(transfer.SubmitInstruction)
	require.True(t, ok)

	order, err := instruction.DecodeFungibleAssetOrder(submit.Instruction())
	require.NoError(t, err)
	require.Equal(t, "1500000", order.BaseAmount.String())
	require.Equal(t, []byte("union1receiver"), order.Receiver)
	require.Equal(t, common.HexToAddress(cfg.Owner).Bytes(), order.Sender)
	require.Equal(t, order.BaseToken, order.QuoteToken)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Submit transfer to blockchain", lines[1])
	encoded, found := strings.CutPrefix(lines[2], "instruction ")
	require.True(t, found)
	data, err := hexutil.Decode(encoded)
	require.NoError(t, err)
	decoded, err := instruction.Decode(data)
	require.NoError(t, err)
	require.True(t, decoded.Equal(submit.Instruction()))
}

func TestPlanner_Errors(t *testing.T) {
	t.Run("allowance read fails", func(t *testing.T) {
		p := newTestPlanner(&fakeAllowance{err: errors.New("rpc down")}, &fakeDecimals{decimals: 6})

		_, err := p.plan(context.Background(), testConfig(), &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "rpc down")

		current, ok := p.tracker.Current()
		require.True(t, ok)
		require.True(t, transfer.Is(current, transfer.TagFilling))
	})

	t.Run("decimals read fails", func(t *testing.T) {
		p := newTestPlanner(&fakeAllowance{allowance: big.NewInt(0)}, &fakeDecimals{err: errors.New("reverted")})

		_, err := p.plan(context.Background(), testConfig(), &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "reverted")
	})

	t.Run("bad token", func(t *testing.T) {
		p := newTestPlanner(&fakeAllowance{}, &fakeDecimals{})
		cfg := testConfig()
		cfg.Token = "0x6d756e6f"

		_, err := p.plan(context.Background(), cfg, &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "TOKEN must be an EVM token address")

		_, ok := p.tracker.Current()
		require.False(t, ok)
	})

	t.Run("bad owner", func(t *testing.T) {
		p := newTestPlanner(&fakeAllowance{}, &fakeDecimals{})
		cfg := testConfig()
		cfg.Owner = "alice"

		_, err := p.plan(context.Background(), cfg, &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid OWNER")
	})

	t.Run("bad amount", func(t *testing.T) {
		p := newTestPlanner(&fakeAllowance{allowance: big.NewInt(0)}, &fakeDecimals{decimals: 6})
		cfg := testConfig()
		cfg.Amount = "1.2.3"

		_, err := p.plan(context.Background(), cfg, &bytes.Buffer{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse AMOUNT")
	})
}

func TestConfig_ValidatePlan(t *testing.T) {
	require.NoError(t, testConfig().validatePlan())

	cfg := testConfig()
	cfg.Spender = ""
	err := cfg.validatePlan()
	require.Error(t, err)
	require.Contains(t, err.Error(), "SPENDER is required")
}

func TestNewConfig(t *testing.T) {
	t.Setenv("MODE", modePlan)
	t.Setenv("TOKEN", "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_PORT", "9090")

	cfg, err := newConfig()
	require.NoError(t, err)
	require.Equal(t, modePlan, cfg.Mode)
	require.Equal(t, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", cfg.Token)
	require.Equal(t, -1, cfg.Decimals)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, 9090, cfg.Metrics.Port)
}
