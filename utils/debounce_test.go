package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	values []int
}

func (r *recorder) add(v int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) get() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.values...)
}

func TestDebouncerEmitsOnlyLastOfBurst(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(20*time.Millisecond, rec.add)

	for v := 1; v <= 5; v++ {
		d.Push(v)
	}

	require.Eventually(t, func() bool {
		return len(rec.get()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []int{5}, rec.get())
}

func TestDebouncerFlush(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(time.Hour, rec.add)

	d.Push(42)
	d.Flush()

	assert.Equal(t, []int{42}, rec.get())

	// nothing pending: flush is a no-op
	d.Flush()
	assert.Equal(t, []int{42}, rec.get())
}

func TestDebouncerStopDropsPending(t *testing.T) {
	rec := &recorder{}
	d := NewDebouncer(10*time.Millisecond, rec.add)

	d.Push(1)
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.get())
}
