package admission

import (
	"context"
	"sync"
	"time"

	"gametrack.gg/stats-api/app/infrastructure/metrics"
	"gametrack.gg/stats-api/app/utils/logger"
)

// Handler is one deferred unit of work. It signals completion through side
// effects on the context it closed over (typically writing the HTTP
// response), not through its return value; the error return only drives
// logging and fallback finalization.
type Handler func(ctx context.Context) error

// Job bundles a handler with the request context it needs to run and a
// finalizer for its output channel.
type Job struct {
	Name string

	ctx     context.Context
	run     Handler
	fail    func()
	settled chan struct{}
}

// NewJob builds a job. fail finalizes the job's output with a generic
// internal error; the queue calls it after a handler error or panic, and
// it must be a no-op if the handler already finalized the output. fail may
// be nil.
func NewJob(ctx context.Context, name string, run Handler, fail func()) *Job {
	return &Job{
		Name:    name,
		ctx:     ctx,
		run:     run,
		fail:    fail,
		settled: make(chan struct{}),
	}
}

// Done is closed once the queue has fully settled the job, including
// failure finalization. Callers that must keep a response writer alive
// block on it.
func (j *Job) Done() <-chan struct{} {
	return j.settled
}

// Queue serializes access to a scarce, non-parallelizable resource: at
// most one job executes at a time, in strict arrival order, and a job's
// failure never stops the drain. The queue never cancels a job; a caller
// that went away still consumes its slot and its handler runs to
// completion.
type Queue struct {
	mu      sync.Mutex
	pending []*Job
	running bool

	metrics *metrics.Metrics
}

func NewQueue(m *metrics.Metrics) *Queue {
	return &Queue{metrics: m}
}

// Enqueue appends the job and starts draining if the queue is idle. It
// returns immediately; observe completion via Job.Done or the handler's
// side effects.
func (q *Queue) Enqueue(job *Job) {
	q.mu.Lock()
	q.pending = append(q.pending, job)
	q.gaugeDepthLocked()
	if q.running {
		q.mu.Unlock()
		return
	}
	q.running = true
	q.gaugeRunning(1)
	q.mu.Unlock()

	go q.drain()
}

// Depth reports the number of jobs waiting (not counting a running one).
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Running reports whether a job currently occupies the execution slot.
func (q *Queue) Running() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running
}

// drain owns the single execution slot: exactly one drain loop is live
// while q.running is true.
func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.gaugeRunning(0)
			q.mu.Unlock()
			return
		}
		job := q.pending[0]
		q.pending = q.pending[1:]
		q.gaugeDepthLocked()
		q.mu.Unlock()

		q.execute(job)
	}
}

// execute runs one handler, isolating its failure: errors and panics are
// logged with a timestamp and the job's output is finalized with the
// job's fallback, then draining continues.
func (q *Queue) execute(job *Job) {
	start := time.Now()
	defer close(job.settled)
	defer func() {
		if q.metrics != nil {
			q.metrics.JobDuration.WithLabelValues(job.Name).Observe(time.Since(start).Seconds())
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			logger.GetLogger().
				WithField("job", job.Name).
				WithField("at", time.Now().UTC().Format(time.RFC3339Nano)).
				Errorf("admission job panicked: %v", r)
			q.finalizeFailed(job)
		}
	}()

	if err := job.run(job.ctx); err != nil {
		logger.GetLogger().
			WithField("job", job.Name).
			WithField("at", time.Now().UTC().Format(time.RFC3339Nano)).
			Errorf("admission job failed: %v", err)
		q.finalizeFailed(job)
	}
}

func (q *Queue) finalizeFailed(job *Job) {
	if q.metrics != nil {
		q.metrics.JobFailures.WithLabelValues(job.Name).Inc()
	}
	if job.fail != nil {
		job.fail()
	}
}

func (q *Queue) gaugeDepthLocked() {
	if q.metrics != nil {
		q.metrics.QueueDepth.Set(float64(len(q.pending)))
	}
}

func (q *Queue) gaugeRunning(v float64) {
	if q.metrics != nil {
		q.metrics.QueueRunning.Set(v)
	}
}
