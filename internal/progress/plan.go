// Package progress holds the orchestrator-side helpers around transfer steps:
// deciding which step follows Filling and tracking the step sequence of a
// single transfer.
package progress

import (
	"math/big"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/token"
	"github.com/abbyosnl/union/internal/transfer"
)

// Plan picks the step after Filling. An approval is required only when the
// current allowance is below the required amount; nil amounts count as zero.
func Plan(
	denom token.RawDenom,
	requiredAmount, currentAllowance *big.Int,
	instr instruction.Instruction,
) transfer.Step {
	required := orZero(requiredAmount)
	allowance := orZero(currentAllowance)

	if allowance.Cmp(required) < 0 {
		return transfer.NewApprovalRequired(denom, required, allowance)
	}
	return transfer.NewSubmitInstruction(instr)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
