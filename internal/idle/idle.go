// Package idle defers work to the next idle cycle of a single-threaded loop.
package idle

// Scheduler runs posted functions later, one at a time, in FIFO order.
type Scheduler interface {
	Post(fn func())
}

// Queue is a Scheduler whose tasks run when Drain is called. It is used by
// loops that are not glib's.
type Queue struct {
	tasks []func()
}

func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.tasks = append(q.tasks, fn)
}

func (q *Queue) Len() int { return len(q.tasks) }

// Drain runs queued tasks until the queue is empty, including tasks posted by
// the tasks themselves. It returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for len(q.tasks) > 0 {
		fn := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		fn()
		n++
	}
	return n
}
