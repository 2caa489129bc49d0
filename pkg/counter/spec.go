package counter

import (
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultDuration is how long a counter takes to reach its target.
	DefaultDuration = 2000 * time.Millisecond
	// DefaultStep is the tick interval, roughly one frame at 60fps.
	DefaultStep = 16 * time.Millisecond
)

var specValidator = validator.New()

// Spec describes one counter run.
type Spec struct {
	Target   int           `json:"target" yaml:"target" validate:"min=0"`
	Duration time.Duration `json:"duration" yaml:"duration" validate:"gt=0"`
	Step     time.Duration `json:"step" yaml:"step" validate:"gt=0"`
}

// NewSpec returns a Spec for target using the default timing.
func NewSpec(target int) Spec {
	return Spec{Target: target, Duration: DefaultDuration, Step: DefaultStep}
}

// WithDefaults fills zero timing fields with the defaults.
func (s Spec) WithDefaults() Spec {
	if s.Duration == 0 {
		s.Duration = DefaultDuration
	}
	if s.Step == 0 {
		s.Step = DefaultStep
	}
	return s
}

// Validate checks the spec after defaults are applied.
func (s Spec) Validate() error {
	if err := specValidator.Struct(s.WithDefaults()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}

// Increment is the amount added to the running value on each tick.
func (s Spec) Increment() float64 {
	s = s.WithDefaults()
	steps := float64(s.Duration) / float64(s.Step)
	return float64(s.Target) / steps
}

// sequence holds the running state of one animation.
type sequence struct {
	target    float64
	increment float64
	current   float64
	done      bool
}

func newSequence(spec Spec) *sequence {
	return &sequence{
		target:    float64(spec.Target),
		increment: spec.Increment(),
	}
}

// next advances one tick. The boolean reports whether this was the terminal
// tick; calling next after that keeps returning the target.
func (s *sequence) next() (int, bool) {
	if s.done {
		return int(s.target), true
	}
	s.current += s.increment
	if s.current >= s.target {
		s.current = s.target
		s.done = true
	}
	return int(math.Floor(s.current)), s.done
}

// Frames returns every value an animation of spec emits, in order, without
// waiting on a clock.
func Frames(spec Spec) ([]int, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.WithDefaults()
	seq := newSequence(spec)
	expected := int(spec.Duration/spec.Step) + 1
	out := make([]int, 0, expected)
	for {
		value, done := seq.next()
		out = append(out, value)
		if done {
			return out, nil
		}
	}
}
