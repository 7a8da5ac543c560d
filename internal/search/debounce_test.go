package search_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/repairtrack/backend/internal/search"
	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	d := search.NewDebouncer(30 * time.Millisecond)

	// A burst of triggers within the quiet period runs once.
	for i := 0; i < 10; i++ {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// Quiet period elapsed; a fresh trigger fires again.
	d.Trigger(func() { calls.Add(1) })
	assert.Eventually(t, func() bool { return calls.Load() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	d := search.NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncerLastTriggerWins(t *testing.T) {
	t.Parallel()

	var got atomic.Value
	d := search.NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { got.Store("first") })
	d.Trigger(func() { got.Store("second") })

	assert.Eventually(t, func() bool { return got.Load() == "second" },
		time.Second, 5*time.Millisecond)
}
