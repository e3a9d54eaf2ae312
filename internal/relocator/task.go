package relocator

import (
	"context"

	"github.com/taigrr/folder-archiver/internal/types"
)

// Task is a relocation pass running in the background.
type Task struct {
	done   chan struct{}
	result types.MoveResult
	err    error
}

// Start runs the pass on its own goroutine and returns immediately.
// onDone, when non-nil, is called on that goroutine after Done is closed,
// so it may call Wait.
func (r *Relocator) Start(ctx context.Context, req types.MoveRequest, onDone func(types.MoveResult, error)) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		t.result, t.err = r.Run(ctx, req)
		close(t.done)
		if onDone != nil {
			onDone(t.result, t.err)
		}
	}()
	return t
}

// Done is closed when the pass has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the pass finishes and returns its outcome.
func (t *Task) Wait() (types.MoveResult, error) {
	<-t.done
	return t.result, t.err
}

// Finished reports whether the pass has completed, without blocking.
func (t *Task) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}
