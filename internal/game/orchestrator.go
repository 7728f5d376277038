package game

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/drill/internal/domain"
)

// Default phase delays. The reveal holds the answer feedback on screen; the
// transition covers the slide of the next problem into place.
const (
	DefaultRevealDelay     = 1200 * time.Millisecond
	DefaultTransitionDelay = 400 * time.Millisecond
)

// Scheduler is the timing port: run fn after d, returning a cancel func.
// Cancelling after the timer has fired is a harmless no-op.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// TimerScheduler schedules on real wall-clock timers.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Orchestrator sequences the celebration cycle. It observes phase changes on
// the machine and schedules the delayed actions that move the cycle along:
// entering revealing schedules the advance, entering transitioning schedules
// the terminal settle. At most one timer is pending at a time and a new
// phase entry cancels whatever the previous one scheduled, so a stale timer
// can never advance past a problem the player is already looking at.
type Orchestrator struct {
	machine *Machine
	sched   Scheduler

	revealDelay     time.Duration
	transitionDelay time.Duration

	// onError receives advance failures fired from timer context, where
	// there is no caller to return them to.
	onError func(error)

	mu        sync.Mutex
	cancel    func()
	lastPhase domain.CelebrationPhase
	stopped   bool
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithDelays overrides the phase delays.
func WithDelays(reveal, transition time.Duration) OrchestratorOption {
	return func(o *Orchestrator) {
		o.revealDelay = reveal
		o.transitionDelay = transition
	}
}

// WithErrorHandler installs a handler for generation failures raised by the
// timed advance.
func WithErrorHandler(fn func(error)) OrchestratorOption {
	return func(o *Orchestrator) { o.onError = fn }
}

// NewOrchestrator attaches a sequencer to the machine and starts observing
// its phase changes.
func NewOrchestrator(m *Machine, sched Scheduler, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		machine:         m,
		sched:           sched,
		revealDelay:     DefaultRevealDelay,
		transitionDelay: DefaultTransitionDelay,
		onError:         func(error) {},
		lastPhase:       m.Snapshot().Phase,
	}
	for _, opt := range opts {
		opt(o)
	}
	m.Subscribe(o.observe)
	return o
}

// Stop cancels any pending timer. No further actions fire from the current
// chain after Stop returns.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopped = true
	o.cancelPendingLocked()
}

func (o *Orchestrator) cancelPendingLocked() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}

// observe reacts to phase entries. Re-notification within the same phase is
// ignored, which makes scheduling idempotent per entry.
func (o *Orchestrator) observe(s domain.GameState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.stopped || s.Phase == o.lastPhase {
		o.lastPhase = s.Phase
		return
	}
	o.lastPhase = s.Phase
	o.cancelPendingLocked()

	switch s.Phase {
	case domain.PhaseRevealing:
		o.cancel = o.sched.Schedule(o.revealDelay, func() {
			if err := o.machine.Advance(context.Background()); err != nil {
				o.onError(err)
			}
		})
	case domain.PhaseTransitioning:
		o.cancel = o.sched.Schedule(o.transitionDelay, func() {
			o.machine.Settle(context.Background())
		})
	}
}
