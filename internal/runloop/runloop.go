// Package runloop implements the deferred task queue that orders generator
// lifecycle work. Queues drain in registration order; each task signals
// completion through its done callback and the loop does not advance until
// done fires.
package runloop

// TaskFunc is a unit of deferred work. Implementations must call done exactly
// once; a task that never calls done stalls the loop.
type TaskFunc func(done func())

// Options controls how a task is enqueued.
type Options struct {
	// Once groups equivalent tasks by key. While a task with the same key
	// is pending on the queue, further adds with that key are dropped. The
	// key is released when the task runs, so later lifecycle passes can
	// enqueue it again.
	Once string
	// Run starts the loop immediately when it is idle. When false the task
	// waits for an explicit Run call.
	Run bool
}

type entry struct {
	task TaskFunc
	once string
}

// Loop is a single-goroutine cooperative task queue. The generator lifecycle
// is callback-driven and single-threaded, so Loop is not safe for concurrent
// use and takes no locks.
type Loop struct {
	order   []string
	queues  map[string][]entry
	running bool
}

// New returns a loop that drains the named queues in the given order.
func New(queues ...string) *Loop {
	l := &Loop{queues: make(map[string][]entry, len(queues))}
	for _, name := range queues {
		l.order = append(l.order, name)
		l.queues[name] = nil
	}
	return l
}

// Add enqueues task on the named queue. Unknown queue names are registered at
// the back of the drain order. Adds deduplicated by opts.Once are dropped.
func (l *Loop) Add(queue string, task TaskFunc, opts Options) {
	if task == nil {
		return
	}
	if _, ok := l.queues[queue]; !ok {
		l.order = append(l.order, queue)
	}
	if opts.Once != "" && l.pending(queue, opts.Once) {
		return
	}
	l.queues[queue] = append(l.queues[queue], entry{task: task, once: opts.Once})
	if opts.Run {
		l.Run()
	}
}

// Run drains the queues. If a task defers its done callback the loop pauses
// and resumes from that callback; calling Run while the loop is draining or
// paused is a no-op.
func (l *Loop) Run() {
	if l.running {
		return
	}
	l.running = true
	l.step()
}

// Idle reports whether the loop is neither draining nor paused on a task.
func (l *Loop) Idle() bool {
	return !l.running
}

func (l *Loop) step() {
	e, ok := l.next()
	if !ok {
		l.running = false
		return
	}
	called := false
	e.task(func() {
		if called {
			return
		}
		called = true
		l.step()
	})
}

// next pops the head of the first non-empty queue in drain order.
func (l *Loop) next() (entry, bool) {
	for _, name := range l.order {
		queue := l.queues[name]
		if len(queue) == 0 {
			continue
		}
		l.queues[name] = queue[1:]
		return queue[0], true
	}
	return entry{}, false
}

func (l *Loop) pending(queue string, once string) bool {
	for _, e := range l.queues[queue] {
		if e.once == once {
			return true
		}
	}
	return false
}
