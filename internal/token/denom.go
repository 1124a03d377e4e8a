package token

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RawDenom identifies a token by its raw on-chain denom, kept as lowercase
// 0x-prefixed hex so it compares by value.
type RawDenom string

func ParseRawDenom(s string) (RawDenom, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("denom cannot be empty")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}

	raw, err := hexutil.Decode(s)
	if err != nil {
		return "", fmt.Errorf("failed to decode denom %q: %w", s, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("denom cannot be empty")
	}
	return RawDenom(hexutil.Encode(raw)), nil
}

func FromAddress(addr common.Address) RawDenom {
	return RawDenom(hexutil.Encode(addr.Bytes()))
}

func (d RawDenom) Bytes() []byte {
	raw, err := hexutil.Decode(string(d))
	if err != nil {
		return nil
	}
	return raw
}

// Address returns the denom as an EVM contract address. Only 20-byte denoms
// are addresses.
func (d RawDenom) Address() (common.Address, error) {
	raw := d.Bytes()
	if len(raw) != common.AddressLength {
		return common.Address{}, fmt.Errorf("denom %s is %d bytes, not an address", d, len(raw))
	}
	return common.BytesToAddress(raw), nil
}

func (d RawDenom) String() string {
	return string(d)
}
