// Package worker splits perft root moves across goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one root move to count below.
type WorkItem struct {
	Board *chess.Board // Private copy owned by the worker
	Move  chess.Move
	Depth int // Plies to count including Move
	Index int // Position of Move in the root move list
}

// ProcessResult is the node count below one root move.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Error error
}

// ProcessFunc counts the tree for one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted root moves on a fixed number of
// goroutines. Once stopped, queued items are drained without being counted.
type Pool struct {
	workers int
	buffer  int
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below one are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the item and result channel capacity. Values below one
// are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool. Without options it has one worker and a buffer of
// twice the worker count.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, process: process}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer == 0 {
		p.buffer = 2 * p.workers
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers. Cancelling ctx stops the pool.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.items {
		if ctx.Err() != nil {
			p.Stop()
		}
		if p.Stopped() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns false
// without queueing if the pool is stopped or ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.items <- item:
		return true
	case <-ctx.Done():
		p.Stop()
		return false
	}
}

// Stop makes the workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission and waits for the workers. The result channel is
// closed once every worker has returned.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
