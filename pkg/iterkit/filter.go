package iterkit

import (
	"go.llib.dev/lazytake/port/cursor"
)

// Filter returns a sequence of the elements of seq that satisfy the predicate.
//
// Finding the next satisfying element may take any number of source advances,
// possibly infinitely many when the source is unbounded and no further element matches.
// The search only happens on Begin and Advance, never on Read.
func Filter[T any, C cursor.Cursor[T]](seq cursor.Sequence[T, C], filter func(T) bool) *FilterSequence[T, C] {
	return &FilterSequence[T, C]{seq: seq, filter: filter}
}

// FilterSequence is the sequence returned by Filter.
type FilterSequence[T any, C cursor.Cursor[T]] struct {
	seq    cursor.Sequence[T, C]
	filter func(T) bool
}

func (s *FilterSequence[T, C]) Begin() *FilterCursor[T, C] {
	c := &FilterCursor[T, C]{
		current: s.seq.Begin(),
		end:     s.seq.End(),
		filter:  s.filter,
	}
	c.satisfy()
	return c
}

func (s *FilterSequence[T, C]) End() cursor.Sentinel[*FilterCursor[T, C]] {
	return filterEnd[T, C]{}
}

// FilterCursor points at a satisfying element of the source, or at the source's end.
type FilterCursor[T any, C cursor.Cursor[T]] struct {
	current C
	end     cursor.Sentinel[C]
	filter  func(T) bool
}

func (c *FilterCursor[T, C]) Read() T { return c.current.Read() }

func (c *FilterCursor[T, C]) Advance() {
	c.current.Advance()
	c.satisfy()
}

func (c *FilterCursor[T, C]) satisfy() {
	for !c.end.Reached(c.current) && !c.filter(c.current.Read()) {
		c.current.Advance()
	}
}

// Base returns the source cursor.
func (c *FilterCursor[T, C]) Base() C { return c.current }

// Clone panics when the source cursor is single-pass.
func (c *FilterCursor[T, C]) Clone() *FilterCursor[T, C] {
	return &FilterCursor[T, C]{
		current: any(c.current).(cursor.Cloner[C]).Clone(),
		end:     c.end,
		filter:  c.filter,
	}
}

// Equal panics when the source cursor can't be compared.
func (c *FilterCursor[T, C]) Equal(oth *FilterCursor[T, C]) bool {
	return any(c.current).(cursor.Equaler[C]).Equal(oth.current)
}

// Category is the source's category capped at Forward, as a filtered cursor can't jump.
func (c *FilterCursor[T, C]) Category() cursor.Category {
	var zero C
	return cursor.Downgrade(cursor.CategoryOf(zero))
}

type filterEnd[T any, C cursor.Cursor[T]] struct{}

func (filterEnd[T, C]) Reached(c *FilterCursor[T, C]) bool {
	return c.end.Reached(c.current)
}
