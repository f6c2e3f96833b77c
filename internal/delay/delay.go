// Package delay provides a one-shot timer task that can be waited on from a
// worker goroutine and cancelled from anywhere.
package delay

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrCanceled is returned by Wait when the task was cancelled with Cancel.
var ErrCanceled = errors.New("delay: task canceled")

// Task fires once after its duration unless cancelled first.
type Task struct {
	id    uint64
	after time.Duration
	timer *time.Timer
	ctx   context.Context
	stop  context.CancelCauseFunc

	once sync.Once
	err  error
}

var seq atomic.Uint64

// Start arms a task. Cancelling parent cancels the task.
func Start(parent context.Context, d time.Duration) *Task {
	if d < 0 {
		d = 0
	}
	ctx, stop := context.WithCancelCause(parent)
	return &Task{
		id:    seq.Add(1),
		after: d,
		timer: time.NewTimer(d),
		ctx:   ctx,
		stop:  stop,
	}
}

// ID identifies the task; ids are unique within the process.
func (t *Task) ID() uint64 { return t.id }

// Duration is the delay the task was started with.
func (t *Task) Duration() time.Duration { return t.after }

// Wait blocks until the task fires (nil) or is cancelled. Later calls return
// the first result without blocking.
func (t *Task) Wait() error {
	t.once.Do(func() {
		select {
		case <-t.timer.C:
			t.err = nil
		case <-t.ctx.Done():
			t.timer.Stop()
			t.err = context.Cause(t.ctx)
		}
		t.stop(nil)
	})
	return t.err
}

// Cancel stops the task. It is a no-op once Wait has returned.
func (t *Task) Cancel() {
	t.stop(ErrCanceled)
}
