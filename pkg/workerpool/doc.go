// Package workerpool runs jobs on a fixed set of long-lived workers fed by a
// shared unbounded FIFO queue.
//
// Submit enqueues without blocking and without backpressure; if jobs arrive
// faster than workers drain them, the queue grows in memory. Each job
// executes behind a recover boundary so one panicking job cannot take a
// worker with it. The pool is created once and lives for the process
// lifetime; there is no shutdown.
//
//	pool := workerpool.New(0, workerpool.WithLogger(log)) // 0 = auto-size
//	pool.Submit(func() { handle(conn) })
package workerpool
