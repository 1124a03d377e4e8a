package instruction

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	OpBatch              uint8 = 0x02
	OpFungibleAssetOrder uint8 = 0x03
)

const (
	VersionZero uint8 = 0
	VersionOne  uint8 = 1
)

var (
	uint8Type   = mustType("uint8")
	uint256Type = mustType("uint256")
	bytesType   = mustType("bytes")

	instructionArgs = abi.Arguments{
		{Name: "version", Type: uint8Type},
		{Name: "opcode", Type: uint8Type},
		{Name: "operand", Type: bytesType},
	}
)

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(fmt.Sprintf("instruction: bad abi type %s: %v", t, err))
	}
	return typ
}

// Instruction is a versioned transfer instruction. The operand is copied on
// the way in and out, so a value never changes after construction.
type Instruction struct {
	version uint8
	opcode  uint8
	operand []byte
}

func New(version, opcode uint8, operand []byte) Instruction {
	return Instruction{
		version: version,
		opcode:  opcode,
		operand: bytes.Clone(operand),
	}
}

func (i Instruction) Version() uint8 {
	return i.version
}

func (i Instruction) Opcode() uint8 {
	return i.opcode
}

func (i Instruction) Operand() []byte {
	return bytes.Clone(i.operand)
}

func (i Instruction) Equal(other Instruction) bool {
	return i.version == other.version &&
		i.opcode == other.opcode &&
		bytes.Equal(i.operand, other.operand)
}

func (i Instruction) String() string {
	return fmt.Sprintf("v%d/op%d/%s", i.version, i.opcode, hexutil.Encode(i.operand))
}

// Encode returns abi.encode(uint8 version, uint8 opcode, bytes operand).
func (i Instruction) Encode() ([]byte, error) {
	operand := i.operand
	if operand == nil {
		operand = []byte{}
	}
	data, err := instructionArgs.Pack(i.version, i.opcode, operand)
	if err != nil {
		return nil, fmt.Errorf("failed to pack instruction: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (Instruction, error) {
	values, err := instructionArgs.Unpack(data)
	if err != nil {
		return Instruction{}, fmt.Errorf("failed to unpack instruction: %w", err)
	}
	if len(values) != len(instructionArgs) {
		return Instruction{}, fmt.Errorf("unexpected instruction arity: %d", len(values))
	}

	version, ok := values[0].(uint8)
	if !ok {
		return Instruction{}, fmt.Errorf("unexpected version type %T", values[0])
	}
	opcode, ok := values[1].(uint8)
	if !ok {
		return Instruction{}, fmt.Errorf("unexpected opcode type %T", values[1])
	}
	operand, ok := values[2].([]byte)
	if !ok {
		return Instruction{}, fmt.Errorf("unexpected operand type %T", values[2])
	}

	return New(version, opcode, operand), nil
}
