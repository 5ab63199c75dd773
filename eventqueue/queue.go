package eventqueue

import "container/heap"

// Queue is a min-heap of *Event ordered by ascending Theta. The zero value
// is not ready for use; construct one with New.
type Queue struct {
	items []*Event
}

// New returns an empty, ready-to-use Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(q)
	return q
}

// Len implements heap.Interface.
func (q *Queue) Len() int { return len(q.items) }

// Less implements heap.Interface: smaller Theta sorts first.
func (q *Queue) Less(i, j int) bool { return q.items[i].Theta < q.items[j].Theta }

// Swap implements heap.Interface.
func (q *Queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push implements heap.Interface. Use PushEvent from outside this package.
func (q *Queue) Push(x any) { q.items = append(q.items, x.(*Event)) }

// Pop implements heap.Interface. Use PopMin from outside this package.
func (q *Queue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid retaining the tail item
	q.items = old[:n-1]

	return item
}

// PushEvent inserts e into the queue, keyed by e.Theta. Duplicates are
// permitted by design; see the stale-event policy in package sweep.
func (q *Queue) PushEvent(e *Event) {
	heap.Push(q, e)
}

// PopMin removes and returns the event with the smallest Theta. It returns
// ErrEmpty when the queue holds no events.
func (q *Queue) PopMin() (*Event, error) {
	if q.Len() == 0 {
		return nil, ErrEmpty
	}

	return heap.Pop(q).(*Event), nil
}

// Size returns the number of events currently queued.
func (q *Queue) Size() int { return q.Len() }

// Empty reports whether the queue holds no events.
func (q *Queue) Empty() bool { return q.Len() == 0 }
