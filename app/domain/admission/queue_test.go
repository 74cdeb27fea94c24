package admission_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gametrack.gg/stats-api/app/domain/admission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsRunInArrivalOrder(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	var mu sync.Mutex
	var order []int

	// The first job blocks until every other job is queued behind it, so
	// the drain cannot race the enqueues.
	release := make(chan struct{})
	jobs := make([]*admission.Job, 0, 5)
	for i := 0; i < 5; i++ {
		i := i
		job := admission.NewJob(ctx, "ordered", func(context.Context) error {
			if i == 0 {
				<-release
			}
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}, nil)
		jobs = append(jobs, job)
		queue.Enqueue(job)
	}
	close(release)

	for _, job := range jobs {
		<-job.Done()
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestJobsNeverOverlap(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	var running atomic.Int32
	var maxSeen atomic.Int32

	jobs := make([]*admission.Job, 0, 8)
	for i := 0; i < 8; i++ {
		job := admission.NewJob(ctx, "exclusive", func(context.Context) error {
			now := running.Add(1)
			if now > maxSeen.Load() {
				maxSeen.Store(now)
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return nil
		}, nil)
		jobs = append(jobs, job)
		queue.Enqueue(job)
	}

	for _, job := range jobs {
		<-job.Done()
	}
	assert.Equal(t, int32(1), maxSeen.Load(), "at most one job may hold the slot")
}

func TestHandlerErrorFinalizesAndDrainContinues(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	failed := false
	bad := admission.NewJob(ctx, "bad", func(context.Context) error {
		return errors.New("upstream exploded")
	}, func() {
		failed = true
	})

	ran := false
	good := admission.NewJob(ctx, "good", func(context.Context) error {
		ran = true
		return nil
	}, nil)

	queue.Enqueue(bad)
	queue.Enqueue(good)
	<-bad.Done()
	<-good.Done()

	assert.True(t, failed, "the failure finalizer must run")
	assert.True(t, ran, "a failed job must not stop the drain")
}

func TestHandlerPanicFinalizesAndDrainContinues(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	failed := false
	panicky := admission.NewJob(ctx, "panicky", func(context.Context) error {
		panic("nil map write")
	}, func() {
		failed = true
	})

	ran := false
	good := admission.NewJob(ctx, "good", func(context.Context) error {
		ran = true
		return nil
	}, nil)

	queue.Enqueue(panicky)
	queue.Enqueue(good)
	<-panicky.Done()
	<-good.Done()

	assert.True(t, failed)
	assert.True(t, ran)
}

func TestDoneClosesAfterFinalization(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	finalized := make(chan struct{})
	job := admission.NewJob(ctx, "settling", func(context.Context) error {
		return errors.New("boom")
	}, func() {
		close(finalized)
	})

	queue.Enqueue(job)
	<-job.Done()

	select {
	case <-finalized:
	default:
		t.Fatal("Done closed before the failure finalizer ran")
	}
}

func TestQueueGoesIdleAfterDrain(t *testing.T) {
	queue := admission.NewQueue(nil)
	ctx := context.Background()

	job := admission.NewJob(ctx, "single", func(context.Context) error {
		return nil
	}, nil)
	queue.Enqueue(job)
	<-job.Done()

	// Done closes inside execute; give the drain loop a beat to observe
	// the empty queue and release the slot.
	require.Eventually(t, func() bool {
		return !queue.Running() && queue.Depth() == 0
	}, time.Second, 5*time.Millisecond)

	// An idle queue picks new work straight up.
	again := admission.NewJob(ctx, "again", func(context.Context) error {
		return nil
	}, nil)
	queue.Enqueue(again)
	select {
	case <-again.Done():
	case <-time.After(time.Second):
		t.Fatal("queue did not restart after going idle")
	}
}
