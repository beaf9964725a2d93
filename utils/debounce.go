// Package utils holds small shared helpers with no domain knowledge.
package utils

import (
	"sync"
	"time"
)

// Debouncer smooths a rapidly changing derived value before it reaches a
// renderer: while edits keep arriving inside the window only the last one
// is emitted. The calculator itself stays synchronous; this lives strictly
// on the presentation side.
type Debouncer[T any] struct {
	window time.Duration
	emit   func(T)

	mu      sync.Mutex
	pending *T
	timer   *time.Timer
}

func NewDebouncer[T any](window time.Duration, emit func(T)) *Debouncer[T] {
	return &Debouncer[T]{window: window, emit: emit}
}

// Push replaces the pending value and restarts the window.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = &v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Flush emits the pending value immediately, if any.
func (d *Debouncer[T]) Flush() {
	d.fire()
}

// Stop drops the pending value without emitting it.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	v := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if v != nil {
		d.emit(*v)
	}
}
