package main

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/progress"
	"github.com/abbyosnl/union/internal/token"
	"github.com/abbyosnl/union/internal/transfer"
	"github.com/abbyosnl/union/internal/util"
)

type allowanceReader interface {
	Allowance(ctx context.Context, tokenAddress, owner, spender common.Address) (*big.Int, error)
}

type decimalsReader interface {
	Decimals(ctx context.Context, tokenAddress common.Address) (uint8, error)
}

func describe(w io.Writer) error {
	steps := []transfer.Step{
		transfer.NewFilling(),
		transfer.NewApprovalRequired("", nil, nil),
		transfer.NewSubmitInstruction(instruction.Instruction{}),
		transfer.NewWaitForIndex(),
	}
	for i, step := range steps {
		_, err := fmt.Fprintf(w, "%d. %-18s %s\n", i+1, step.Tag(), transfer.Description(step))
		if err != nil {
			return fmt.Errorf("failed to write description: %w", err)
		}
	}
	return nil
}

type planner struct {
	allowance allowanceReader
	decimals  decimalsReader
	tracker   *progress.Tracker
	logger    logrus.FieldLogger
}

// plan reads the current allowance and decimals, then moves the tracker from
// Filling to whichever step the transfer needs next.
func (p *planner) plan(ctx context.Context, cfg config, w io.Writer) (transfer.Step, error) {
	denom, err := token.ParseRawDenom(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOKEN: %w", err)
	}
	quote, err := token.ParseRawDenom(util.IfEmptyElse(cfg.QuoteToken, cfg.Token))
	if err != nil {
		return nil, fmt.Errorf("failed to parse QUOTE_TOKEN: %w", err)
	}
	tokenAddr, err := denom.Address()
	if err != nil {
		return nil, fmt.Errorf("TOKEN must be an EVM token address: %w", err)
	}
	if !common.IsHexAddress(cfg.Owner) {
		return nil, fmt.Errorf("invalid OWNER address: %s", cfg.Owner)
	}
	if !common.IsHexAddress(cfg.Spender) {
		return nil, fmt.Errorf("invalid SPENDER address: %s", cfg.Spender)
	}
	owner := common.HexToAddress(cfg.Owner)
	spender := common.HexToAddress(cfg.Spender)

	if err := p.tracker.Advance(transfer.NewFilling()); err != nil {
		return nil, fmt.Errorf("failed to start transfer: %w", err)
	}

	var (
		allowance *big.Int
		decimals  = cfg.Decimals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, er := p.allowance.Allowance(gctx, tokenAddr, owner, spender)
		if er != nil {
			return er
		}
		allowance = res
		return nil
	})
	if decimals < 0 {
		g.Go(func() error {
			res, er := p.decimals.Decimals(gctx, tokenAddr)
			if er != nil {
				return er
			}
			decimals = int(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read token state: %w", err)
	}

	amount, err := util.ToBaseUnits(cfg.Amount, decimals)
	if err != nil {
		return nil, fmt.Errorf("failed to parse AMOUNT: %w", err)
	}

	receiver := util.IfEmptyElse(cfg.Receiver, cfg.Owner)
	order := instruction.FungibleAssetOrder{
		Sender:      owner.Bytes(),
		Receiver:    receiverBytes(receiver),
		BaseToken:   denom,
		BaseAmount:  amount,
		QuoteToken:  quote,
		QuoteAmount: amount,
	}
	instr, err := order.Instruction()
	if err != nil {
		return nil, fmt.Errorf("failed to build instruction: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"token":     denom.String(),
		"owner":     owner.Hex(),
		"spender":   spender.Hex(),
		"amount":    amount.String(),
		"allowance": allowance.String(),
		"decimals":  decimals,
	}).Debug("token state loaded")

	step := progress.Plan(denom, amount, allowance, instr)
	if err := p.tracker.Advance(step); err != nil {
		return nil, fmt.Errorf("failed to advance transfer: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n%s\n", step, transfer.Description(step))
	if err != nil {
		return nil, fmt.Errorf("failed to write plan: %w", err)
	}
	switch s := step.(type) {
	case transfer.ApprovalRequired:
		_, err = fmt.Fprintf(w, "allowance short by %s\n", util.FromBaseUnits(s.Shortfall(), decimals))
	case transfer.SubmitInstruction:
		var data []byte
		data, err = s.Instruction().Encode()
		if err != nil {
			return nil, fmt.Errorf("failed to encode instruction: %w", err)
		}
		_, err = fmt.Fprintf(w, "instruction %s\n", hexutil.Encode(data))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write plan: %w", err)
	}
	return step, nil
}

// receiverBytes keeps EVM addresses as 20 raw bytes and anything else (e.g.
// bech32) as its string bytes.
func receiverBytes(receiver string) []byte {
	if common.IsHexAddress(receiver) {
		return common.HexToAddress(receiver).Bytes()
	}
	return []byte(receiver)
}
