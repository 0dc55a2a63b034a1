package workerpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echoip/echoip/pkg/workerpool"
)

func TestPool_Submit(t *testing.T) {
	t.Parallel()

	t.Run("executes all submitted jobs", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(4)

		var (
			wg      sync.WaitGroup
			counter atomic.Int64
		)

		const jobs = 100
		wg.Add(jobs)
		for i := 0; i < jobs; i++ {
			pool.Submit(func() {
				counter.Add(1)
				wg.Done()
			})
		}
		wg.Wait()

		assert.Equal(t, int64(jobs), counter.Load())
	})

	t.Run("preserves FIFO order with a single worker", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(1)

		var (
			mu    sync.Mutex
			order []int
			wg    sync.WaitGroup
		)

		const jobs = 20
		wg.Add(jobs)
		for i := 0; i < jobs; i++ {
			i := i
			pool.Submit(func() {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				wg.Done()
			})
		}
		wg.Wait()

		require.Len(t, order, jobs)
		for i, got := range order {
			assert.Equal(t, i, got)
		}
	})

	t.Run("ignores nil jobs", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(1)
		pool.Submit(nil)

		done := make(chan struct{})
		pool.Submit(func() { close(done) })

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("job was not executed after nil submission")
		}
	})
}

func TestPool_PanicContainment(t *testing.T) {
	t.Parallel()

	// A single worker makes the property strict: if the panic killed the
	// worker, no job submitted afterward could ever run.
	pool := workerpool.New(1)

	pool.Submit(func() { panic("malformed connection") })

	done := make(chan struct{})
	pool.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a panicking job")
	}

	stats := pool.Stats()
	assert.Equal(t, int64(1), stats.Recovered)
	assert.GreaterOrEqual(t, stats.Executed, int64(2))
}

func TestPool_Stats(t *testing.T) {
	t.Parallel()

	t.Run("reports configured worker count", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(3)
		assert.Equal(t, 3, pool.Stats().Workers)
	})

	t.Run("auto-sizes to at least one worker", func(t *testing.T) {
		t.Parallel()

		pool := workerpool.New(0)
		assert.GreaterOrEqual(t, pool.Stats().Workers, 1)
	})
}
