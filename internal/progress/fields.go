package progress

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/token"
	"github.com/abbyosnl/union/internal/transfer"
)

type stepFields struct{}

func (stepFields) Filling() logrus.Fields {
	return logrus.Fields{"step": transfer.TagFilling}
}

func (stepFields) ApprovalRequired(denom token.RawDenom, requiredAmount, currentAllowance *big.Int) logrus.Fields {
	return logrus.Fields{
		"step":             transfer.TagApprovalRequired,
		"token":            denom.String(),
		"requiredAmount":   requiredAmount.String(),
		"currentAllowance": currentAllowance.String(),
	}
}

func (stepFields) SubmitInstruction(instr instruction.Instruction) logrus.Fields {
	return logrus.Fields{
		"step":        transfer.TagSubmitInstruction,
		"opcode":      instr.Opcode(),
		"version":     instr.Version(),
		"operandSize": len(instr.Operand()),
	}
}

func (stepFields) WaitForIndex() logrus.Fields {
	return logrus.Fields{"step": transfer.TagWaitForIndex}
}

// Fields returns structured log fields describing the step.
func Fields(step transfer.Step) logrus.Fields {
	return transfer.Match[logrus.Fields](step, stepFields{})
}
