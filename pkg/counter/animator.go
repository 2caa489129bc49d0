package counter

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/timer"
)

// TickFunc receives each emitted value.
type TickFunc func(value int)

// Option configures an animation.
type Option func(*options)

type options struct {
	scheduler timer.Scheduler
	logger    *zap.Logger
	name      string
}

// WithScheduler sets the scheduler driving ticks. Defaults to timer.Real.
func WithScheduler(s timer.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLogger sets the logger used for tick faults.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName labels log lines for this animation.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func buildOptions(opts []Option) options {
	o := options{
		scheduler: timer.NewReal(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Handle controls a running animation.
type Handle struct {
	mu       sync.Mutex
	seq      *sequence
	onTick   TickFunc
	cancel   timer.Cancel
	done     chan struct{}
	doneOnce sync.Once
	finished bool
	stopped  bool
	faulted  bool
	inFlight bool
	last     int
	ticks    int
	logger   *zap.Logger
}

// Animate starts ticking spec towards its target, calling onTick with each
// value. The first tick happens one Step after Animate returns. Nothing is
// emitted after the terminal tick or after Stop.
func Animate(spec Spec, onTick TickFunc, opts ...Option) (*Handle, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if onTick == nil {
		onTick = func(int) {}
	}
	spec = spec.WithDefaults()
	o := buildOptions(opts)

	h := &Handle{
		seq:    newSequence(spec),
		onTick: onTick,
		done:   make(chan struct{}),
		logger: o.logger.With(zap.String("counter", o.name), zap.Int("target", spec.Target)),
	}

	h.mu.Lock()
	h.cancel = o.scheduler.Every(spec.Step, h.tick)
	h.mu.Unlock()
	return h, nil
}

func (h *Handle) tick() {
	value, terminal, ok := h.advance()
	if !ok {
		return
	}
	h.deliver(value, terminal)
}

// advance computes the next value under the lock.
func (h *Handle) advance() (value int, terminal, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return 0, false, false
	}
	value, terminal = h.seq.next()
	h.last = value
	h.ticks++
	h.inFlight = true
	if terminal {
		h.finished = true
		h.cancelLocked()
	}
	return value, terminal, true
}

// deliver hands value to onTick unless Stop ran since it was computed.
func (h *Handle) deliver(value int, terminal bool) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("counter tick failed",
				zap.Error(fmt.Errorf("%w: %v", ErrTickFault, rec)),
			)
			h.mu.Lock()
			h.faulted = true
			h.finishLocked()
			h.mu.Unlock()
		}
		// Done closes only once the terminal value has been delivered.
		if terminal {
			h.closeDone()
		}
	}()

	h.mu.Lock()
	stopped := h.stopped
	h.inFlight = false
	h.mu.Unlock()
	if stopped {
		return
	}
	h.onTick(value)
}

func (h *Handle) finishLocked() {
	if h.finished {
		return
	}
	h.finished = true
	h.cancelLocked()
	h.closeDone()
}

func (h *Handle) cancelLocked() {
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Handle) closeDone() {
	h.doneOnce.Do(func() { close(h.done) })
}

// Stop cancels the animation. It is safe to call at any time and more than
// once, including from onTick. A tick computed but not yet handed to onTick
// is dropped. Stop does not wait for a callback that is already running, so
// callers sharing state with onTick guard it with their own lock.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped || (h.finished && !h.inFlight) {
		return
	}
	h.stopped = true
	h.finishLocked()
}

// Done is closed once the animation reached its target, was stopped or
// aborted after a tick fault.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Status is a snapshot of a Handle.
type Status struct {
	Last     int
	Ticks    int
	Finished bool
	Stopped  bool
	Faulted  bool
}

// Status returns the current state of the animation.
func (h *Handle) Status() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Status{
		Last:     h.last,
		Ticks:    h.ticks,
		Finished: h.finished,
		Stopped:  h.stopped,
		Faulted:  h.faulted,
	}
}
