// Package lazycount implements a counted cursor that never advances its source more than it must.
//
// A counted cursor bounds a traversal to n elements.
// The last step of the traversal is represented by the counter reaching zero,
// not by moving the wrapped cursor past the last wanted element.
// Over an n element traversal the wrapped cursor is advanced n-1 times,
// so a single-pass source keeps the element that follows the bounded prefix.
package lazycount

import (
	"cmp"

	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/port/cursor"
)

const (
	ErrNotRevisitable errorkit.Error = "ErrNotRevisitable"
	ErrNotWritable    errorkit.Error = "ErrNotWritable"
)

// Counter is anything that reports how many elements are left in a counted traversal.
// Counted cursors compare, order and measure distance by their counters alone,
// so any two Counters can be compared regardless of the cursor type they wrap.
type Counter interface {
	Count() int
}

// Cursor wraps a source cursor with the number of elements that remain in the traversal.
// A zero remaining count means the cursor is exhausted.
type Cursor[T any, C cursor.Cursor[T]] struct {
	current C
	length  int
}

// New wraps a cursor into a counted cursor with n remaining elements.
// n must not be negative.
func New[T any, C cursor.Cursor[T]](c C, n int) *Cursor[T, C] {
	return &Cursor[T, C]{current: c, length: n}
}

// Count returns the number of elements left in the traversal.
func (c *Cursor[T, C]) Count() int {
	return c.length
}

// Base returns the wrapped cursor.
func (c *Cursor[T, C]) Base() C {
	return c.current
}

func (c *Cursor[T, C]) Read() T {
	return c.current.Read()
}

// Write replaces the element under the cursor.
// It panics with ErrNotWritable when the wrapped cursor is read-only.
func (c *Cursor[T, C]) Write(v T) {
	w, ok := any(c.current).(cursor.Writer[T])
	if !ok {
		panic(ErrNotWritable.F("%T", c.current))
	}
	w.Write(v)
}

// Advance consumes one element of the count.
// The wrapped cursor only moves when there is a further element to reach.
func (c *Cursor[T, C]) Advance() {
	if c.length > 1 {
		c.current.Advance()
	}
	c.length--
}

// AtEnd reports whether the counter is exhausted.
func (c *Cursor[T, C]) AtEnd() bool {
	return c.length == 0
}

// Clone returns an independent copy of the cursor.
// It panics with ErrNotRevisitable when the wrapped cursor can't be copied.
func (c *Cursor[T, C]) Clone() *Cursor[T, C] {
	cl, ok := any(c.current).(cursor.Cloner[C])
	if !ok {
		panic(ErrNotRevisitable.F("%T", c.current))
	}
	return &Cursor[T, C]{current: cl.Clone(), length: c.length}
}

// Equal reports whether the two cursors have the same number of elements remaining.
// The wrapped positions are not consulted.
func (c *Cursor[T, C]) Equal(oth *Cursor[T, C]) bool {
	return Equal(c, oth)
}

// Compare orders cursors by position:
// the cursor with more elements remaining comes first.
func (c *Cursor[T, C]) Compare(oth Counter) int {
	return Compare(c, oth)
}

// Sub returns the distance c - oth, measured in positions.
// It is positive when c is ahead of oth.
func (c *Cursor[T, C]) Sub(oth Counter) int {
	return Sub(c, oth)
}

// SubEnd returns the distance c - end, which is never positive.
func (c *Cursor[T, C]) SubEnd() int {
	return -c.length
}

// Category reports the traversal category of the counted cursor.
// It is the wrapped cursor type's category, capped at cursor.Forward.
// It depends on the type alone and is safe to call on a nil *Cursor.
func (c *Cursor[T, C]) Category() cursor.Category {
	var zero C
	return cursor.Downgrade(cursor.CategoryOf(zero))
}

// Equal reports whether two counted cursors have the same number of elements remaining.
func Equal(x, y Counter) bool {
	return x.Count() == y.Count()
}

// Compare orders counted cursors by position,
// which is the reverse of the order of their remaining counts.
func Compare(x, y Counter) int {
	return cmp.Compare(y.Count(), x.Count())
}

// Sub returns the distance x - y.
// As the count decreases while the position increases, it is y's count minus x's count.
func Sub(x, y Counter) int {
	return y.Count() - x.Count()
}

// Move takes the element out of the wrapped cursor's position.
func Move[T any, C interface {
	cursor.Cursor[T]
	cursor.Mover[T]
}](c *Cursor[T, C]) T {
	return c.current.Move()
}

// Swap exchanges the elements the two counted cursors point at.
func Swap[T any, C interface {
	cursor.Cursor[T]
	cursor.Swapper[C]
}](x, y *Cursor[T, C]) {
	x.current.Swap(y.current)
}
