package lazycount

import "go.llib.dev/lazytake/port/cursor"

// DefaultSentinel is the bare terminal marker of a counted traversal.
// It is reached when the counter is exhausted.
// Use it when the count alone bounds the traversal, because it was already clamped to the source's length.
type DefaultSentinel[T any, C cursor.Cursor[T]] struct{}

func (DefaultSentinel[T, C]) Reached(c *Cursor[T, C]) bool {
	return c.AtEnd()
}

// Sub returns the distance end - c, which is the cursor's remaining count.
func (DefaultSentinel[T, C]) Sub(c Counter) int {
	return c.Count()
}

// EndSentinel ends a counted traversal at whichever limit comes first:
// the exhausted counter, or the wrapped cursor reaching the source's own end.
type EndSentinel[T any, C cursor.Cursor[T]] struct {
	end cursor.Sentinel[C]
}

// NewEndSentinel wraps the source's end condition.
func NewEndSentinel[T any, C cursor.Cursor[T]](end cursor.Sentinel[C]) EndSentinel[T, C] {
	return EndSentinel[T, C]{end: end}
}

// Base returns the source's end condition.
func (s EndSentinel[T, C]) Base() cursor.Sentinel[C] {
	return s.end
}

func (s EndSentinel[T, C]) Reached(c *Cursor[T, C]) bool {
	return c.Count() == 0 || s.end.Reached(c.Base())
}
