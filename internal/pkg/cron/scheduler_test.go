package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOnceRunsEveryJob(t *testing.T) {
	s := NewScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
}

func TestRunOnceCollectsFailures(t *testing.T) {
	s := NewScheduler()

	boom := errors.New("boom")
	var ran atomic.Int32
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return boom
	})
	s.AddJob("healthy", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), ran.Load(), "a failing job must not stop the others")
}

func TestStartRunsJobImmediatelyAndStopWaits(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

func TestStopCancelsJobContext(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("blocking", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return ctx.Err()
	})

	s.Start()

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not cancelled on stop")
	}
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not wait for the job to return")
	}
}
