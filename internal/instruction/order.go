package instruction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/abbyosnl/union/internal/token"
)

var orderArgs = abi.Arguments{
	{Name: "sender", Type: bytesType},
	{Name: "receiver", Type: bytesType},
	{Name: "baseToken", Type: bytesType},
	{Name: "baseAmount", Type: uint256Type},
	{Name: "quoteToken", Type: bytesType},
	{Name: "quoteAmount", Type: uint256Type},
}

// FungibleAssetOrder moves BaseAmount of BaseToken from Sender and releases
// QuoteAmount of QuoteToken to Receiver on the destination chain.
type FungibleAssetOrder struct {
	Sender      []byte
	Receiver    []byte
	BaseToken   token.RawDenom
	BaseAmount  *big.Int
	QuoteToken  token.RawDenom
	QuoteAmount *big.Int
}

func (o FungibleAssetOrder) validate() error {
	if len(o.Sender) == 0 {
		return fmt.Errorf("sender cannot be empty")
	}
	if len(o.Receiver) == 0 {
		return fmt.Errorf("receiver cannot be empty")
	}
	if o.BaseToken == "" {
		return fmt.Errorf("base token cannot be empty")
	}
	if o.QuoteToken == "" {
		return fmt.Errorf("quote token cannot be empty")
	}
	if o.BaseAmount == nil || o.BaseAmount.Sign() < 0 {
		return fmt.Errorf("base amount must be non-negative")
	}
	if o.QuoteAmount == nil || o.QuoteAmount.Sign() < 0 {
		return fmt.Errorf("quote amount must be non-negative")
	}
	return nil
}

// Instruction encodes the order as a version one fungible asset order.
func (o FungibleAssetOrder) Instruction() (Instruction, error) {
	if err := o.validate(); err != nil {
		return Instruction{}, fmt.Errorf("invalid order: %w", err)
	}

	operand, err := orderArgs.Pack(
		o.Sender,
		o.Receiver,
		o.BaseToken.Bytes(),
		o.BaseAmount,
		o.QuoteToken.Bytes(),
		o.QuoteAmount,
	)
	if err != nil {
		return Instruction{}, fmt.Errorf("failed to pack order: %w", err)
	}

	return New(VersionOne, OpFungibleAssetOrder, operand), nil
}

// DecodeFungibleAssetOrder reads the order back out of an instruction.
func DecodeFungibleAssetOrder(instr Instruction) (FungibleAssetOrder, error) {
	if instr.Opcode() != OpFungibleAssetOrder {
		return FungibleAssetOrder{}, fmt.Errorf("opcode %d is not a fungible asset order", instr.Opcode())
	}

	values, err := orderArgs.Unpack(instr.operand)
	if err != nil {
		return FungibleAssetOrder{}, fmt.Errorf("failed to unpack order: %w", err)
	}
	if len(values) != len(orderArgs) {
		return FungibleAssetOrder{}, fmt.Errorf("unexpected order arity: %d", len(values))
	}

	sender, _ := values[0].([]byte)
	receiver, _ := values[1].([]byte)
	baseToken, _ := values[2].([]byte)
	baseAmount, _ := values[3].(*big.Int)
	quoteToken, _ := values[4].([]byte)
	quoteAmount, _ := values[5].(*big.Int)

	order := FungibleAssetOrder{
		Sender:      sender,
		Receiver:    receiver,
		BaseAmount:  baseAmount,
		QuoteAmount: quoteAmount,
	}
	if order.BaseToken, err = token.ParseRawDenom(hexString(baseToken)); err != nil {
		return FungibleAssetOrder{}, fmt.Errorf("failed to parse base token: %w", err)
	}
	if order.QuoteToken, err = token.ParseRawDenom(hexString(quoteToken)); err != nil {
		return FungibleAssetOrder{}, fmt.Errorf("failed to parse quote token: %w", err)
	}
	return order, nil
}

func hexString(b []byte) string {
	return fmt.Sprintf("0x%x", b)
}
