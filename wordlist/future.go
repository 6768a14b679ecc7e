package wordlist

import (
	"context"
	"fmt"
	"sync/atomic"
)

// LoadFunc produces Lists, typically by reading files or a remote store.
type LoadFunc func(ctx context.Context) (*Lists, error)

// Future is the completion handle of an asynchronous load. Callers may poll
// it with Ready, block with Wait, or take whatever is available with Lists.
type Future struct {
	done  chan struct{}
	state atomic.Pointer[result]
}

type result struct {
	lists *Lists
	err   error
}

// Load runs fn on its own goroutine and returns immediately. The load runs
// exactly once; ctx is passed through to fn.
func Load(ctx context.Context, fn LoadFunc) *Future {
	f := &Future{done: make(chan struct{})}
	go f.run(ctx, fn)
	return f
}

// Loaded returns a Future that is already complete with l.
func Loaded(l *Lists) *Future {
	f := &Future{done: make(chan struct{})}
	f.state.Store(&result{lists: l})
	close(f.done)
	return f
}

func (f *Future) run(ctx context.Context, fn LoadFunc) {
	res := &result{}
	defer func() {
		if r := recover(); r != nil {
			res = &result{err: fmt.Errorf("%w: %v", ErrLoadPanic, r)}
		}
		f.state.Store(res)
		close(f.done)
	}()
	res.lists, res.err = fn(ctx)
	if res.err == nil && res.lists == nil {
		res.lists = Empty()
	}
}

// Done is closed once the load has finished, successfully or not.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Ready reports whether the load has finished successfully.
func (f *Future) Ready() bool {
	r := f.state.Load()
	return r != nil && r.err == nil
}

// Result returns the loaded Lists without blocking. While the load is pending
// the error is ErrNotLoaded; after a failure it wraps both ErrNotLoaded and
// the load error.
func (f *Future) Result() (*Lists, error) {
	r := f.state.Load()
	switch {
	case r == nil:
		return nil, ErrNotLoaded
	case r.err != nil:
		return nil, fmt.Errorf("%w: %w", ErrNotLoaded, r.err)
	}
	return r.lists, nil
}

// Wait blocks until the load finishes or ctx is done.
func (f *Future) Wait(ctx context.Context) (*Lists, error) {
	select {
	case <-f.done:
		return f.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Lists returns the loaded Lists, or empty Lists if the load is pending or
// failed. It never blocks. A nil Future also yields empty Lists.
func (f *Future) Lists() *Lists {
	if f == nil {
		return Empty()
	}
	if l, err := f.Result(); err == nil {
		return l
	}
	return Empty()
}
