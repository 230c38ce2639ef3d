package lazytake

import (
	"go.llib.dev/lazytake/pkg/lazycount"
	"go.llib.dev/lazytake/port/cursor"
)

// positionSentinel is reached when the source cursor arrives at a precomputed position.
type positionSentinel[T any, C cursor.Cursor[T]] struct {
	pos C
}

func (s positionSentinel[T, C]) Reached(c cursor.Cursor[T]) bool {
	return any(c.(C)).(cursor.Equaler[C]).Equal(s.pos)
}

// countedSentinel is the bare terminal marker, reached when the count is exhausted.
// The remaining count is the distance to it.
type countedSentinel[T any, C cursor.Cursor[T]] struct{}

func (countedSentinel[T, C]) Reached(c cursor.Cursor[T]) bool {
	return lazycount.DefaultSentinel[T, C]{}.Reached(c.(*lazycount.Cursor[T, C]))
}

func (countedSentinel[T, C]) Distance(from cursor.Cursor[T]) int {
	return lazycount.DefaultSentinel[T, C]{}.Sub(from.(*lazycount.Cursor[T, C]))
}

// endSentinel stops at the exhausted count or at the source's end.
type endSentinel[T any, C cursor.Cursor[T]] struct {
	end lazycount.EndSentinel[T, C]
}

func (s endSentinel[T, C]) Reached(c cursor.Cursor[T]) bool {
	return s.end.Reached(c.(*lazycount.Cursor[T, C]))
}
