package iterkit

import (
	"iter"

	"go.llib.dev/lazytake/port/cursor"
)

// FromSeq turns an iterator into a single-pass sequence.
//
// Every Begin and every Advance pulls exactly one element.
// Every cursor handed out by Begin shares the same pull state,
// so a sequence can be consumed in several steps,
// each continuing where the previous one stopped.
//
// The returned sequence must be closed to release the iterator.
func FromSeq[T any](i iter.Seq[T]) *PullSequence[T] {
	next, stop := iter.Pull(i)
	s := &PullSequence[T]{next: next, stop: stop}
	s.Stream = NewStream(s.pull)
	return s
}

// PullSequence is a single-pass sequence backed by a pull iterator.
type PullSequence[T any] struct {
	*Stream[T]

	next  func() (T, bool)
	stop  func()
	pulls int
}

// PullCursor is a position in a PullSequence.
type PullCursor[T any] = StreamCursor[T]

var _ cursor.Sequence[int, *PullCursor[int]] = (*PullSequence[int])(nil)

// Pulls reports how many times the source iterator was pulled.
func (s *PullSequence[T]) Pulls() int {
	return s.pulls
}

func (s *PullSequence[T]) Close() error {
	s.stop()
	s.Stop()
	return nil
}

func (s *PullSequence[T]) pull() (T, bool) {
	s.pulls++
	return s.next()
}
