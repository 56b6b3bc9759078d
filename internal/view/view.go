// Package view holds the state behind the offer listing and product detail
// screens. Every load supersedes the previous one: the older request is
// canceled and, should its result still arrive, it is dropped without
// touching state.
package view

import "context"

// tracker hands out load tokens and cancels the load being superseded.
type tracker struct {
	gen    uint64
	cancel context.CancelFunc
}

// begin starts a new load. The returned context is canceled when a newer
// load begins. Callers hold the view's mutex.
func (t *tracker) begin(parent context.Context) (context.Context, uint64) {
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	t.gen++
	t.cancel = cancel
	return ctx, t.gen
}

// current reports whether gen is still the latest load. Callers hold mu.
func (t *tracker) current(gen uint64) bool {
	return t.gen == gen
}

// finish releases the context of a completed load. Callers hold mu.
func (t *tracker) finish(gen uint64) {
	if t.gen == gen && t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
