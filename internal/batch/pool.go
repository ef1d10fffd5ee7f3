// Package batch runs avatar rendering jobs on a fixed set of workers.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("batch: pool closed")

// Job is one unit of work. Jobs must be safe to run concurrently with each
// other.
type Job func() error

// Pool is a pool of goroutines for rendering many avatars.
//
// Each worker has its own queue and steals from the others when its queue
// is empty, so a few slow jobs (large sizes) do not hold up the rest.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds per-worker job queues.
	queues []chan func()

	done chan struct{}
	wg   sync.WaitGroup

	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes jobs across the workers and waits for the ones it
// dispatched. Dispatching stops once ctx is done or a job has failed; Run
// then returns the first job error, or ctx.Err() if no job failed.
//
// Run on a closed pool returns ErrClosed.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if len(jobs) == 0 {
		return ctx.Err()
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		failed   = make(chan struct{})
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			close(failed)
		})
	}

dispatch:
	for i, job := range jobs {
		select {
		case <-ctx.Done():
			break dispatch
		case <-failed:
			break dispatch
		default:
		}

		wg.Add(1)
		work := func() {
			defer wg.Done()
			select {
			case <-failed:
				return
			default:
			}
			if err := job(); err != nil {
				fail(err)
			}
		}

		select {
		case p.queues[i%p.workers] <- work:
		case <-ctx.Done():
			wg.Done()
			break dispatch
		case <-failed:
			wg.Done()
			break dispatch
		case <-p.done:
			wg.Done()
			break dispatch
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.running.Load() {
		return ErrClosed
	}
	return nil
}

// Close stops the workers after the queued jobs have run. It must not be
// called while a Run is in progress. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts jobs.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
