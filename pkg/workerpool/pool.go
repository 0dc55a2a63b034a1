package workerpool

import (
	"io"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

const (
	// workersPerCPU scales the default pool size with detected parallelism.
	workersPerCPU = 4

	// fallbackSize is used when parallelism cannot be detected.
	fallbackSize = 8
)

// Job is one deferred unit of work. The pool owns it from Submit until a
// worker claims it; the worker owns it exclusively while it runs.
type Job func()

// Pool is a fixed set of long-lived workers consuming a shared FIFO queue.
// The queue is unbounded: Submit never blocks waiting for a worker, and jobs
// arriving faster than they drain accumulate in memory. The pool lives for
// the process lifetime; there is no graceful shutdown.
type Pool struct {
	mu    sync.Mutex
	cond  *sync.Cond
	queue []Job

	size   int
	logger *slog.Logger

	// Observability metrics
	executed  atomic.Int64
	recovered atomic.Int64
}

// Stats provides observability metrics for monitoring and debugging.
type Stats struct {
	Workers   int   // Number of workers in the pool
	Queued    int   // Jobs waiting for a worker
	Executed  int64 // Jobs that finished, including panicked ones
	Recovered int64 // Panics contained at the job boundary
}

// Option configures a Pool.
type Option func(*Pool)

// WithLogger sets the logger for recovered job panics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pool) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a pool and spawns its workers. A non-positive size selects the
// default: max(1, detected parallelism x 4), or 8 when parallelism cannot be
// detected.
func New(size int, opts ...Option) *Pool {
	if size <= 0 {
		size = defaultSize()
	}

	p := &Pool{
		size:   size,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.cond = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

// Submit enqueues a job. It never blocks waiting for a worker; there is no
// backpressure.
func (p *Pool) Submit(job Job) {
	if job == nil {
		return
	}

	p.mu.Lock()
	p.queue = append(p.queue, job)
	p.mu.Unlock()

	p.cond.Signal()
}

// worker dequeues and executes jobs one at a time, forever.
func (p *Pool) worker() {
	for {
		p.mu.Lock()
		for len(p.queue) == 0 {
			p.cond.Wait()
		}
		job := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.run(job)
	}
}

// run executes one job behind a recover boundary. Without it, a single
// panicking job would permanently shrink effective pool capacity by one.
func (p *Pool) run(job Job) {
	defer p.executed.Add(1)
	defer func() {
		if r := recover(); r != nil {
			p.recovered.Add(1)
			p.logger.Error("job panicked",
				slog.Any("panic", r),
				slog.String("stack", string(stack())))
		}
	}()

	job()
}

// Stats returns a snapshot of pool metrics. Thread-safe.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	queued := len(p.queue)
	p.mu.Unlock()

	return Stats{
		Workers:   p.size,
		Queued:    queued,
		Executed:  p.executed.Load(),
		Recovered: p.recovered.Load(),
	}
}

func defaultSize() int {
	n := runtime.NumCPU()
	if n <= 0 {
		return fallbackSize
	}
	return max(1, n*workersPerCPU)
}

func stack() []byte {
	const size = 64 << 10
	buf := make([]byte, size)
	return buf[:runtime.Stack(buf, false)]
}
