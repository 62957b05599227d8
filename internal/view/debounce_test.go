package view

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	for i := 0; i < 5; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	// Stays at one; no stale timer fires later.
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}

func TestDebouncerFiresAgainAfterQuietPeriod(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	d.Trigger()
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 2*time.Millisecond)

	d.Trigger()
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 2*time.Millisecond)
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, calls.Load())
}

func TestDebouncerZeroWaitIsSynchronous(t *testing.T) {
	var calls int
	d := NewDebouncer(0, func() { calls++ })

	d.Trigger()
	d.Trigger()
	require.Equal(t, 2, calls)
}
