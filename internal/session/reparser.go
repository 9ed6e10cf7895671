// Package session provides the debounced, single-flight reparse loop that
// sits between an editing host and the parser core. The host pushes the
// complete document text on every change; the reparser waits out the
// quiet period and delivers at most the latest model, never an
// interleaved or stale one.
package session

import (
	"sync"
	"time"

	"github.com/vk/dspfmodel/internal/dds"
	"github.com/vk/dspfmodel/internal/screen"
)

// DefaultDebounce is the quiet period before a submitted text is parsed.
const DefaultDebounce = 150 * time.Millisecond

// Reparser coalesces bursts of Submit calls into one parse of the most
// recent text. There is no mid-parse cancellation: a parse that was
// already started for an older generation simply has its result
// discarded when it completes.
type Reparser struct {
	mu          sync.Mutex
	debounce    time.Duration
	defaultSize screen.Size
	deliver     func(*dds.Model)

	timer   *time.Timer
	pending string
	gen     uint64
	closed  bool

	// deliverMu serializes deliveries so the callback never runs
	// concurrently with itself.
	deliverMu sync.Mutex
}

// New creates a reparser delivering models to fn. A non-positive debounce
// falls back to DefaultDebounce.
func New(debounce time.Duration, defaultSize screen.Size, fn func(*dds.Model)) *Reparser {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Reparser{
		debounce:    debounce,
		defaultSize: defaultSize,
		deliver:     fn,
	}
}

// Submit replaces the pending text and restarts the debounce window.
func (r *Reparser) Submit(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.pending = text
	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.debounce, func() { r.fire(gen) })
}

// Flush parses the pending text immediately, bypassing the debounce. It
// exists for shutdown paths and tests; a Submit racing a Flush still
// resolves to a single latest delivery.
func (r *Reparser) Flush() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	gen := r.gen
	r.mu.Unlock()
	r.fire(gen)
}

// Close stops the reparser. No delivery happens after Close returns.
func (r *Reparser) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// fire parses the pending text for one generation and delivers the model
// only if no newer generation was submitted in the meantime.
func (r *Reparser) fire(gen uint64) {
	r.mu.Lock()
	if r.closed || gen != r.gen {
		r.mu.Unlock()
		return
	}
	text := r.pending
	r.mu.Unlock()

	model := dds.ParseWithDefault(text, r.defaultSize)

	r.deliverMu.Lock()
	defer r.deliverMu.Unlock()
	r.mu.Lock()
	stale := r.closed || gen != r.gen
	r.mu.Unlock()
	if stale {
		return
	}
	r.deliver(model)
}
