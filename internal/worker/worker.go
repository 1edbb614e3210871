// Package worker provides a small bounded worker pool used to fan preset
// scenarios across goroutines. The impact engine is pure and takes its
// parameters by value, so jobs need no synchronization beyond the
// channels here.
package worker

import (
	"context"
	"sync"
)

// Task processes one job and produces a result.
type Task[J, R any] func(ctx context.Context, job J) R

// Pool runs a fixed number of workers over a buffered job channel and
// publishes every result on Results. Stop closes the job channel, waits
// for the workers to drain it, then closes Results, so a consumer can
// simply range over Results until it is closed.
type Pool[J, R any] struct {
	numWorkers int
	jobs       chan J
	results    chan R
	task       Task[J, R]
	wg         sync.WaitGroup
}

func NewPool[J, R any](numWorkers, bufferSize int, task Task[J, R]) *Pool[J, R] {
	return &Pool[J, R]{
		numWorkers: numWorkers,
		jobs:       make(chan J, bufferSize),
		results:    make(chan R, bufferSize),
		task:       task,
	}
}

func (p *Pool[J, R]) Start(ctx context.Context) {
	for i := 1; i <= p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[J, R]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.results <- p.task(ctx, job)
		}
	}
}

// Submit enqueues a job. It must not be called after Stop.
func (p *Pool[J, R]) Submit(job J) {
	p.jobs <- job
}

// Results is the stream of task outputs. Closed by Stop after the last
// worker exits.
func (p *Pool[J, R]) Results() <-chan R {
	return p.results
}

// Stop closes the job channel, waits for in-flight work, and closes
// Results.
func (p *Pool[J, R]) Stop() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}
