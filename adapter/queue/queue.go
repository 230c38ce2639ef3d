// Package queue exposes a FIFO queue as bounded-view sources.
//
// Peek walks the queued elements in place, without removing them.
// Drain walks the queue by removing every element it reads.
package queue

import (
	"github.com/eapache/queue"

	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/port/cursor"
)

// Queue is a typed FIFO queue backed by a ring buffer.
// It is not safe for concurrent use.
type Queue[T any] struct {
	q *queue.Queue
}

func New[T any](vs ...T) *Queue[T] {
	q := &Queue[T]{q: queue.New()}
	q.Add(vs...)
	return q
}

func (q *Queue[T]) Add(vs ...T) {
	for _, v := range vs {
		q.q.Add(v)
	}
}

// Remove takes out the element at the head of the queue.
func (q *Queue[T]) Remove() (T, bool) {
	if q.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.q.Remove().(T), true
}

func (q *Queue[T]) Len() int {
	return q.q.Length()
}

// Peek returns a random access sequence over the queued elements.
// Adding to or removing from the queue invalidates its cursors.
func (q *Queue[T]) Peek() PeekSequence[T] {
	return PeekSequence[T]{q: q.q}
}

// Drain returns a sized single-pass sequence that removes the head of the queue on Begin and on every Advance.
// A bounded view of n elements removes exactly n elements.
func (q *Queue[T]) Drain() *DrainSequence[T] {
	s := &DrainSequence[T]{q: q}
	s.Stream = iterkit.NewStream(q.Remove)
	return s
}

type PeekSequence[T any] struct {
	q *queue.Queue
}

var _ cursor.Sequence[int, *PeekCursor[int]] = PeekSequence[int]{}

func (s PeekSequence[T]) Begin() *PeekCursor[T] {
	return &PeekCursor[T]{q: s.q}
}

func (s PeekSequence[T]) End() cursor.Sentinel[*PeekCursor[T]] {
	return peekEnd[T]{q: s.q}
}

func (s PeekSequence[T]) Len() int { return s.q.Length() }

func (s PeekSequence[T]) Borrowed() bool { return true }

type PeekCursor[T any] struct {
	q *queue.Queue
	i int
}

func (c *PeekCursor[T]) Read() T { return c.q.Get(c.i).(T) }

func (c *PeekCursor[T]) Advance() { c.i++ }

func (c *PeekCursor[T]) Retreat() { c.i-- }

func (c *PeekCursor[T]) Clone() *PeekCursor[T] {
	return &PeekCursor[T]{q: c.q, i: c.i}
}

func (c *PeekCursor[T]) Equal(oth *PeekCursor[T]) bool {
	return c.i == oth.i
}

func (c *PeekCursor[T]) Offset(n int) *PeekCursor[T] {
	return &PeekCursor[T]{q: c.q, i: c.i + n}
}

type peekEnd[T any] struct{ q *queue.Queue }

func (e peekEnd[T]) Reached(c *PeekCursor[T]) bool { return e.q.Length() <= c.i }

func (e peekEnd[T]) Distance(from *PeekCursor[T]) int { return e.q.Length() - from.i }

// DrainSequence reports the number of elements still queued as its length.
type DrainSequence[T any] struct {
	*iterkit.Stream[T]

	q *Queue[T]
}

// DrainCursor holds the element most recently removed by its DrainSequence.
type DrainCursor[T any] = iterkit.StreamCursor[T]

var _ cursor.Sequence[int, *DrainCursor[int]] = (*DrainSequence[int])(nil)

func (s *DrainSequence[T]) Len() int { return s.q.Len() }
