// Package transfer models the steps a single asset transfer passes through
// and provides exhaustive dispatch over them.
//
// A Step is an immutable snapshot. The orchestrator that drives the transfer
// creates a new Step whenever progress changes; this package never validates
// ordering between steps.
package transfer

import (
	"fmt"
	"math/big"

	"github.com/abbyosnl/union/internal/instruction"
	"github.com/abbyosnl/union/internal/token"
)

// Tag names a Step variant.
type Tag string

const (
	TagFilling           Tag = "Filling"
	TagApprovalRequired  Tag = "ApprovalRequired"
	TagSubmitInstruction Tag = "SubmitInstruction"
	TagWaitForIndex      Tag = "WaitForIndex"
)

// Tags returns every variant tag in the expected transition order.
func Tags() []Tag {
	return []Tag{
		TagFilling,
		TagApprovalRequired,
		TagSubmitInstruction,
		TagWaitForIndex,
	}
}

// Step is one of Filling, ApprovalRequired, SubmitInstruction or WaitForIndex.
type Step interface {
	Tag() Tag
	String() string

	isStep()
}

// Filling: the user is editing transfer parameters.
type Filling struct{}

func NewFilling() Filling {
	return Filling{}
}

func (Filling) isStep() {}

func (Filling) Tag() Tag {
	return TagFilling
}

func (Filling) String() string {
	return string(TagFilling)
}

// ApprovalRequired: the spender's allowance for the token is below the amount
// being transferred and must be raised first.
type ApprovalRequired struct {
	token            token.RawDenom
	requiredAmount   big.Int
	currentAllowance big.Int
}

// NewApprovalRequired does not check currentAllowance < requiredAmount; the
// caller establishes it. Nil amounts are read as zero.
func NewApprovalRequired(token token.RawDenom, requiredAmount, currentAllowance *big.Int) ApprovalRequired {
	var s ApprovalRequired
	s.token = token
	if requiredAmount != nil {
		s.requiredAmount.Set(requiredAmount)
	}
	if currentAllowance != nil {
		s.currentAllowance.Set(currentAllowance)
	}
	return s
}

func (ApprovalRequired) isStep() {}

func (ApprovalRequired) Tag() Tag {
	return TagApprovalRequired
}

func (s ApprovalRequired) Token() token.RawDenom {
	return s.token
}

func (s ApprovalRequired) RequiredAmount() *big.Int {
	return new(big.Int).Set(&s.requiredAmount)
}

func (s ApprovalRequired) CurrentAllowance() *big.Int {
	return new(big.Int).Set(&s.currentAllowance)
}

// Shortfall is how much the allowance must grow to cover the required amount.
func (s ApprovalRequired) Shortfall() *big.Int {
	return new(big.Int).Sub(&s.requiredAmount, &s.currentAllowance)
}

func (s ApprovalRequired) String() string {
	return fmt.Sprintf(
		"%s(token=%s, required=%s, allowance=%s)",
		TagApprovalRequired,
		s.token,
		s.requiredAmount.String(),
		s.currentAllowance.String(),
	)
}

// SubmitInstruction: allowance is sufficient and the instruction is ready to
// be sent to the chain.
type SubmitInstruction struct {
	instruction instruction.Instruction
}

func NewSubmitInstruction(instr instruction.Instruction) SubmitInstruction {
	return SubmitInstruction{instruction: instr}
}

func (SubmitInstruction) isStep() {}

func (SubmitInstruction) Tag() Tag {
	return TagSubmitInstruction
}

func (s SubmitInstruction) Instruction() instruction.Instruction {
	return s.instruction
}

func (s SubmitInstruction) String() string {
	return fmt.Sprintf("%s(%s)", TagSubmitInstruction, s.instruction)
}

// WaitForIndex: the chain accepted the instruction and the indexer has not
// surfaced it yet.
type WaitForIndex struct{}

func NewWaitForIndex() WaitForIndex {
	return WaitForIndex{}
}

func (WaitForIndex) isStep() {}

func (WaitForIndex) Tag() Tag {
	return TagWaitForIndex
}

func (WaitForIndex) String() string {
	return string(TagWaitForIndex)
}

// Is reports whether step is the variant named by tag. A nil step matches
// nothing.
func Is(step Step, tag Tag) bool {
	if step == nil {
		return false
	}
	return step.Tag() == tag
}
