// Package dispatch models the host's single-threaded event queue. Widgets use
// it to defer work to the next idle tick, coalescing bursts of synchronous
// mutations into one callback.
//
// Everything here runs on the UI goroutine; there is no locking and no
// cross-goroutine sharing.
package dispatch

// Queue is a cooperative FIFO task queue standing in for the host's
// message loop. Tasks posted while draining run within the same drain.
type Queue struct {
	tasks []func()
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends a task to run on the next drain. Nil tasks are ignored.
func (q *Queue) Post(task func()) {
	if task == nil {
		return
	}
	q.tasks = append(q.tasks, task)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Drain runs pending tasks in posting order until the queue is empty.
// Tasks that post further tasks extend the current drain.
func (q *Queue) Drain() {
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks = q.tasks[1:]
		task()
	}
}
