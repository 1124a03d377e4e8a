package util

import (
	"fmt"
	"math/big"
	"strings"
)

// MaxDecimals bounds the token decimals accepted for conversion.
const MaxDecimals = 77

// ToBaseUnits converts a human-readable amount to base units
// e.g., "10" USDC (6 decimals) -> "10000000"
// Extra fractional digits beyond decimals are truncated.
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("amount cannot be empty")
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, fmt.Errorf("invalid decimals: %d", decimals)
	}
	if strings.HasPrefix(amount, "-") {
		return nil, fmt.Errorf("amount cannot be negative: %s", amount)
	}
	if strings.HasPrefix(amount, "+") {
		return nil, fmt.Errorf("amount cannot carry a sign: %s", amount)
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid amount format: %s", amount)
	}
	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid amount format: %s", amount)
	}

	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	combined := strings.TrimLeft(whole+frac, "0")
	if combined == "" {
		combined = "0"
	}

	result, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount: %s", amount)
	}
	return result, nil
}

// FromBaseUnits converts base units to a human-readable amount
// e.g., "10000000" with 6 decimals -> "10"
func FromBaseUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	if decimals <= 0 {
		return amount.String()
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(new(big.Int).Abs(amount), scale, new(big.Int))

	result := whole.String()
	if frac.Sign() != 0 {
		digits := frac.String()
		digits = strings.Repeat("0", decimals-len(digits)) + digits
		result += "." + strings.TrimRight(digits, "0")
	}
	if amount.Sign() < 0 {
		result = "-" + result
	}
	return result
}
