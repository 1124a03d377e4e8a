package transfer

import (
	"fmt"
	"math/big"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/token"
)

// Visitor handles every Step variant. Adding a variant adds a method here, so
// every implementation stops compiling until it handles the new step.
type Visitor[T any] interface {
	Filling() T
	ApprovalRequired(token token.RawDenom, requiredAmount, currentAllowance *big.Int) T
	SubmitInstruction(instr instruction.Instruction) T
	WaitForIndex() T
}

// Match calls the visitor method for the step's variant exactly once and
// returns its result. Pointers to variants dispatch like the values they
// point to. It panics on a nil step or nil variant pointer.
func Match[T any](step Step, v Visitor[T]) T {
	switch s := step.(type) {
	case Filling:
		return v.Filling()
	case *Filling:
		mustNotBeNil(s == nil, step)
		return v.Filling()
	case ApprovalRequired:
		return v.ApprovalRequired(s.Token(), s.RequiredAmount(), s.CurrentAllowance())
	case *ApprovalRequired:
		mustNotBeNil(s == nil, step)
		return v.ApprovalRequired(s.Token(), s.RequiredAmount(), s.CurrentAllowance())
	case SubmitInstruction:
		return v.SubmitInstruction(s.Instruction())
	case *SubmitInstruction:
		mustNotBeNil(s == nil, step)
		return v.SubmitInstruction(s.Instruction())
	case WaitForIndex:
		return v.WaitForIndex()
	case *WaitForIndex:
		mustNotBeNil(s == nil, step)
		return v.WaitForIndex()
	default:
		panic(fmt.Sprintf("transfer: match on unknown step %T", step))
	}
}

func mustNotBeNil(isNil bool, step Step) {
	if isNil {
		panic(fmt.Sprintf("transfer: match on nil %T", step))
	}
}

// Cases is a Visitor built from closures.
type Cases[T any] struct {
	filling           func() T
	approvalRequired  func(token.RawDenom, *big.Int, *big.Int) T
	submitInstruction func(instruction.Instruction) T
	waitForIndex      func() T
}

// NewCases panics if any handler is nil.
func NewCases[T any](
	filling func() T,
	approvalRequired func(token token.RawDenom, requiredAmount, currentAllowance *big.Int) T,
	submitInstruction func(instr instruction.Instruction) T,
	waitForIndex func() T,
) Cases[T] {
	switch {
	case filling == nil:
		panic("transfer: missing Filling handler")
	case approvalRequired == nil:
		panic("transfer: missing ApprovalRequired handler")
	case submitInstruction == nil:
		panic("transfer: missing SubmitInstruction handler")
	case waitForIndex == nil:
		panic("transfer: missing WaitForIndex handler")
	}

	return Cases[T]{
		filling:           filling,
		approvalRequired:  approvalRequired,
		submitInstruction: submitInstruction,
		waitForIndex:      waitForIndex,
	}
}

func (c Cases[T]) Filling() T {
	return c.filling()
}

func (c Cases[T]) ApprovalRequired(token token.RawDenom, requiredAmount, currentAllowance *big.Int) T {
	return c.approvalRequired(token, requiredAmount, currentAllowance)
}

func (c Cases[T]) SubmitInstruction(instr instruction.Instruction) T {
	return c.submitInstruction(instr)
}

func (c Cases[T]) WaitForIndex() T {
	return c.waitForIndex()
}

type descriptions struct{}

func (descriptions) Filling() string {
	return "Configure your transfer details"
}

func (descriptions) ApprovalRequired(token.RawDenom, *big.Int, *big.Int) string {
	return "Approve token spending"
}

func (descriptions) SubmitInstruction(instruction.Instruction) string {
	return "Submit transfer to blockchain"
}

func (descriptions) WaitForIndex() string {
	return "Waiting for indexer"
}

// Description returns the human-readable label for the step.
func Description(step Step) string {
	return Match[string](step, descriptions{})
}
