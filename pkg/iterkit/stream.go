package iterkit

import (
	"go.llib.dev/lazytake/port/cursor"
)

// Stream is the read state of a single-pass source, shared by every cursor handed out by Begin.
// The element under the cursors is the one most recently read from the source.
//
// Begin reads a fresh element on every call, like Next does.
// An element a previous traversal stopped on was already handed out,
// so consecutive traversals continue where the previous one stopped without repeating it.
//
// Stream is meant to be embedded by single-pass sequence adapters.
type Stream[T any] struct {
	read  func() (T, bool)
	value T
	done  bool
}

var _ cursor.Sequence[int, *StreamCursor[int]] = (*Stream[int])(nil)

// NewStream creates a Stream that takes its elements from read.
// read reports false when the source is exhausted or failed,
// after which it is not called again.
func NewStream[T any](read func() (T, bool)) *Stream[T] {
	return &Stream[T]{read: read}
}

func (s *Stream[T]) Begin() *StreamCursor[T] {
	s.fetch()
	return &StreamCursor[T]{stream: s}
}

func (s *Stream[T]) End() cursor.Sentinel[*StreamCursor[T]] {
	return streamEnd[T]{}
}

// Next reads the next element directly from the source, bypassing any cursor.
// It is the equivalent of reading the underlying stream after a cursor based traversal stopped.
func (s *Stream[T]) Next() (T, bool) {
	s.fetch()
	return s.value, !s.done
}

// Stop ends the stream. Cursors of a stopped Stream are at the end.
func (s *Stream[T]) Stop() {
	var zero T
	s.value, s.done = zero, true
}

func (s *Stream[T]) fetch() {
	if s.done {
		return
	}
	v, ok := s.read()
	if !ok {
		s.Stop()
		return
	}
	s.value = v
}

// StreamCursor is a position in a Stream.
// Advancing any cursor of a Stream moves all of them.
type StreamCursor[T any] struct {
	stream *Stream[T]
}

func (c *StreamCursor[T]) Read() T { return c.stream.value }

func (c *StreamCursor[T]) Advance() { c.stream.fetch() }

type streamEnd[T any] struct{}

func (streamEnd[T]) Reached(c *StreamCursor[T]) bool { return c.stream.done }
