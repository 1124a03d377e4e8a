package token

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestParseRawDenom(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RawDenom
		wantErr bool
	}{
		{
			name: "lowercases checksummed address",
			in:   "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
			want: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
		},
		{
			name: "adds missing prefix",
			in:   "6d756e6f",
			want: "0x6d756e6f",
		},
		{
			name: "trims whitespace",
			in:   "  0x6d756e6f ",
			want: "0x6d756e6f",
		},
		{
			name:    "empty",
			in:      "",
			wantErr: true,
		},
		{
			name:    "prefix only",
			in:      "0x",
			wantErr: true,
		},
		{
			name:    "odd length",
			in:      "0xabc",
			wantErr: true,
		},
		{
			name:    "not hex",
			in:      "0xzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRawDenom(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRawDenom_Address(t *testing.T) {
	addr := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")

	t.Run("round trips an address", func(t *testing.T) {
		d := FromAddress(addr)
		got, err := d.Address()
		require.NoError(t, err)
		require.Equal(t, addr, got)
	})

	t.Run("rejects non-address denoms", func(t *testing.T) {
		d, err := ParseRawDenom("0x6d756e6f")
		require.NoError(t, err)

		_, err = d.Address()
		require.Error(t, err)
		require.Contains(t, err.Error(), "not an address")
	})

	t.Run("equal denoms compare equal", func(t *testing.T) {
		d1, err := ParseRawDenom("0xA0B86991C6218B36C1D19D4A2E9EB0CE3606EB48")
		require.NoError(t, err)
		require.Equal(t, FromAddress(addr), d1)
	})
}
