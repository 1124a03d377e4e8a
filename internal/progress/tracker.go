package progress

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abbyosnl/union/internal/transfer"
)

var ErrIllegalTransition = errors.New("illegal step transition")

// legalTransitions lists, for each step, the steps that may follow it. The
// empty tag is the state before the first step.
var legalTransitions = map[transfer.Tag]map[transfer.Tag]bool{
	"": {
		transfer.TagFilling: true,
	},
	transfer.TagFilling: {
		transfer.TagFilling:           true,
		transfer.TagApprovalRequired:  true,
		transfer.TagSubmitInstruction: true,
	},
	transfer.TagApprovalRequired: {
		transfer.TagApprovalRequired:  true,
		transfer.TagSubmitInstruction: true,
		transfer.TagFilling:           true,
	},
	transfer.TagSubmitInstruction: {
		transfer.TagWaitForIndex: true,
		transfer.TagFilling:      true,
	},
	transfer.TagWaitForIndex: {
		transfer.TagFilling: true,
	},
}

// CanAdvance reports whether a transfer in step from may move to step to.
// Pass an empty from for a transfer with no step yet.
func CanAdvance(from, to transfer.Tag) bool {
	return legalTransitions[from][to]
}

type Metrics interface {
	ObserveTransition(from, to transfer.Tag, spent time.Duration)
	ObserveRejected(from, to transfer.Tag)
}

type nilMetrics struct{}

func NewNilMetrics() Metrics {
	return nilMetrics{}
}

func (nilMetrics) ObserveTransition(transfer.Tag, transfer.Tag, time.Duration) {}

func (nilMetrics) ObserveRejected(transfer.Tag, transfer.Tag) {}

type Record struct {
	Step      transfer.Step
	EnteredAt time.Time
}

// Tracker holds the step sequence of one transfer. Steps are immutable, so
// values returned from Current and History can be shared freely.
type Tracker struct {
	id      uuid.UUID
	logger  logrus.FieldLogger
	metrics Metrics
	now     func() time.Time

	mu      sync.RWMutex
	history []Record
}

func NewTracker(logger logrus.FieldLogger, metrics Metrics) *Tracker {
	if metrics == nil {
		metrics = NewNilMetrics()
	}

	id := uuid.New()
	return &Tracker{
		id:      id,
		logger:  logger.WithField("transferID", id.String()),
		metrics: metrics,
		now:     time.Now,
	}
}

func (t *Tracker) ID() uuid.UUID {
	return t.id
}

// Current returns the latest step, or false before the first Advance.
func (t *Tracker) Current() (transfer.Step, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.history) == 0 {
		return nil, false
	}
	return t.history[len(t.history)-1].Step, true
}

func (t *Tracker) History() []Record {
	t.mu.RLock()
	defer t.mu.RUnlock()

	res := make([]Record, len(t.history))
	copy(res, t.history)
	return res
}

// Advance replaces the current step with step. Out-of-order steps are
// rejected with ErrIllegalTransition and leave the tracker unchanged.
func (t *Tracker) Advance(step transfer.Step) error {
	if step == nil {
		return fmt.Errorf("step cannot be nil")
	}
	to := step.Tag()
	fields := Fields(step)
	description := transfer.Description(step)

	t.mu.Lock()
	defer t.mu.Unlock()

	var (
		from  transfer.Tag
		spent time.Duration
	)
	now := t.now()
	if len(t.history) > 0 {
		last := t.history[len(t.history)-1]
		from = last.Step.Tag()
		spent = now.Sub(last.EnteredAt)
	}

	if !CanAdvance(from, to) {
		t.metrics.ObserveRejected(from, to)
		t.logger.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		}).Warn("rejected out of order step")
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, describeTag(from), to)
	}

	t.history = append(t.history, Record{Step: step, EnteredAt: now})
	t.metrics.ObserveTransition(from, to, spent)

	t.logger.WithFields(fields).
		WithField("spentInPrevious", spent.String()).
		Info(description)
	return nil
}

func describeTag(tag transfer.Tag) string {
	if tag == "" {
		return "<start>"
	}
	return string(tag)
}
