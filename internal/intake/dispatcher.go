// Package intake wraps the synchronous processing pipeline in a
// last-call-wins asynchronous dispatcher. Every submission supersedes the
// one before it, so a frontend that re-submits on each edit only ever
// observes the result of its most recent request.
package intake

import (
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/claims-triage/internal/model"
	"github.com/sells-group/claims-triage/internal/pipeline"
)

// processFunc computes the result for one document text.
type processFunc func(text string) model.ProcessingResult

// Dispatcher runs each submission on its own goroutine and delivers a result
// only while its submission is still the latest. A stale request can never
// overwrite the display state of a newer one.
type Dispatcher struct {
	proc processFunc
	out  chan model.ProcessingResult

	mu     sync.Mutex
	seq    uint64
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher returns a dispatcher backed by pipeline.Process.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		proc: pipeline.Process,
		out:  make(chan model.ProcessingResult, 1),
	}
}

// Submit schedules text for processing. Any earlier submission whose result
// has not been consumed yet is superseded.
func (d *Dispatcher) Submit(text string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		zap.L().Warn("intake: submit ignored, dispatcher closed")
		return
	}
	d.seq++
	id := d.seq
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		d.deliver(id, d.proc(text))
	}()
}

// Results returns the delivery channel. It holds at most one pending result,
// always from the latest submission, and is closed by Close.
func (d *Dispatcher) Results() <-chan model.ProcessingResult {
	return d.out
}

// deliver publishes res if id is still the latest submission, replacing a
// pending undelivered result.
func (d *Dispatcher) deliver(id uint64, res model.ProcessingResult) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || id != d.seq {
		zap.L().Debug("intake: discarding superseded result", zap.Uint64("seq", id))
		return
	}

	// All sends happen under mu and the channel has capacity 1, so after the
	// drain this send cannot block.
	select {
	case <-d.out:
	default:
	}
	d.out <- res
}

// Close stops accepting submissions, waits for in-flight work to finish, and
// closes the results channel.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
	close(d.out)
}
