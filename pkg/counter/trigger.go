package counter

import "sync"

// Trigger starts at most one animation per key, no matter how often Start is
// called for it. Keys are typically element handles.
type Trigger[K comparable] struct {
	mu      sync.Mutex
	opts    []Option
	started map[K]*Handle
}

// NewTrigger returns a Trigger whose animations share opts.
func NewTrigger[K comparable](opts ...Option) *Trigger[K] {
	return &Trigger[K]{
		opts:    opts,
		started: make(map[K]*Handle),
	}
}

// Start animates spec for key unless key already started. It reports whether
// a new animation was started. A spec that fails validation marks the key as
// started anyway so a bad element is not retried on every event.
func (t *Trigger[K]) Start(key K, spec Spec, onTick TickFunc, opts ...Option) (*Handle, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.started[key]; ok {
		return nil, false, nil
	}
	t.started[key] = nil

	all := make([]Option, 0, len(t.opts)+len(opts))
	all = append(all, t.opts...)
	all = append(all, opts...)
	h, err := Animate(spec, onTick, all...)
	if err != nil {
		return nil, false, err
	}
	t.started[key] = h
	return h, true, nil
}

// Started reports whether key has been started.
func (t *Trigger[K]) Started(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.started[key]
	return ok
}

// Stop cancels the animation for key, for example when its element is
// removed. The key stays marked as started.
func (t *Trigger[K]) Stop(key K) bool {
	t.mu.Lock()
	h := t.started[key]
	t.mu.Unlock()
	if h == nil {
		return false
	}
	h.Stop()
	return true
}

// StopAll cancels every running animation.
func (t *Trigger[K]) StopAll() {
	t.mu.Lock()
	handles := make([]*Handle, 0, len(t.started))
	for _, h := range t.started {
		if h != nil {
			handles = append(handles, h)
		}
	}
	t.mu.Unlock()
	for _, h := range handles {
		h.Stop()
	}
}

// Handle returns the animation started for key, if any.
func (t *Trigger[K]) Handle(key K) (*Handle, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.started[key]
	return h, ok && h != nil
}
