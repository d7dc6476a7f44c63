package events

// Queue collects events between polls. It is not safe for concurrent use;
// callbacks and Flush both run on the thread that owns the window.
type Queue struct {
	buf []Event
}

// NewQueue returns a queue with room for n events before it grows.
func NewQueue(n int) *Queue {
	return &Queue{buf: make([]Event, 0, n)}
}

// Push appends e.
func (q *Queue) Push(e Event) {
	q.buf = append(q.buf, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.buf)
}

// Flush calls fn for every pending event in arrival order and empties the
// queue. The backing array is reused.
func (q *Queue) Flush(fn func(Event)) {
	for i, e := range q.buf {
		fn(e)
		q.buf[i] = nil
	}
	q.buf = q.buf[:0]
}
