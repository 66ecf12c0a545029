package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorker_EnqueueRunsJobs(t *testing.T) {
	w := NewWorker(2)

	var count atomic.Int32
	for i := 0; i < 10; i++ {
		w.Enqueue("count", func(ctx context.Context) error {
			count.Add(1)
			return nil
		})
	}
	w.Shutdown()

	assert.Equal(t, int32(10), count.Load())
	stats := w.GetStats()
	assert.Equal(t, int64(10), stats.CompletedJobs)
	assert.Equal(t, int64(0), stats.FailedJobs)
	assert.Equal(t, 0, stats.ActiveJobs)
}

func TestWorker_FailuresAndPanicsAreCounted(t *testing.T) {
	w := NewWorker(1)

	w.Enqueue("fails", func(ctx context.Context) error { return errors.New("boom") })
	w.EnqueueAsync("panics", func(ctx context.Context) error { panic("kaboom") })
	w.Shutdown()

	stats := w.GetStats()
	assert.Equal(t, int64(2), stats.CompletedJobs)
	assert.Equal(t, int64(2), stats.FailedJobs)
}

func TestWorker_ScheduleEveryImmediateRunsAtStart(t *testing.T) {
	w := NewWorker(1)

	ran := make(chan struct{}, 1)
	w.ScheduleEveryImmediate("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled job did not run at startup")
	}
	w.Shutdown()
}

func TestWorker_EnqueueAfterShutdownIsDropped(t *testing.T) {
	w := NewWorker(1)
	w.Shutdown()

	called := false
	w.Enqueue("late", func(ctx context.Context) error { called = true; return nil })
	w.EnqueueAsync("late", func(ctx context.Context) error { called = true; return nil })
	w.Shutdown()

	assert.False(t, called)
}
