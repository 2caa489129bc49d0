// Package timer provides the repeating and one-shot timers the page
// behaviours run on. Scheduler is the seam: production code uses Real, tests
// use Manual and advance time explicitly.
package timer

import (
	"sync"
	"time"
)

// Cancel stops a scheduled timer. Calling it more than once is safe.
type Cancel func()

// Scheduler schedules callbacks, the setInterval/setTimeout pair of the page.
type Scheduler interface {
	// Every runs fn every d until the returned Cancel is called.
	Every(d time.Duration, fn func()) Cancel
	// After runs fn once after d unless cancelled first.
	After(d time.Duration, fn func()) Cancel
}

// Real schedules on wall-clock time. Each repeating timer owns one goroutine
// which exits when cancelled.
type Real struct{}

// NewReal returns a wall-clock scheduler.
func NewReal() Real { return Real{} }

// Every implements Scheduler.
func (Real) Every(d time.Duration, fn func()) Cancel {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// After implements Scheduler.
func (Real) After(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
