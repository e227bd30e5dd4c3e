package dispatch

// Async coalesces repeated triggers into a single deferred callback on the
// owning queue. Triggering while an invocation is already pending is a no-op,
// so any burst of triggers before the next drain yields exactly one call.
//
// The pending invocation checks state at run time: Cancel makes it a no-op,
// Close makes it a no-op permanently. A widget closes its Async on disposal
// so an in-flight tick cannot reach a dead widget.
type Async struct {
	queue    *Queue
	callback func()
	pending  bool
	closed   bool
}

// NewAsync creates an async updater that invokes callback on the given queue.
func NewAsync(queue *Queue, callback func()) *Async {
	return &Async{queue: queue, callback: callback}
}

// Trigger schedules the callback for the next drain. At most one invocation
// is pending at any time.
func (a *Async) Trigger() {
	if a.pending || a.closed {
		return
	}
	a.pending = true
	a.queue.Post(func() {
		if !a.pending || a.closed {
			return
		}
		a.pending = false
		if a.callback != nil {
			a.callback()
		}
	})
}

// Cancel discards the pending invocation, if any. The next Trigger schedules
// again.
func (a *Async) Cancel() {
	a.pending = false
}

// Pending reports whether an invocation is scheduled and not canceled.
func (a *Async) Pending() bool {
	return a.pending && !a.closed
}

// Close cancels the pending invocation and rejects all future triggers.
func (a *Async) Close() {
	a.pending = false
	a.closed = true
}
