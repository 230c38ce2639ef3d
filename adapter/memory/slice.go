package memory

import "go.llib.dev/lazytake/port/cursor"

// Slice is a random access, sized sequence over a Go slice.
// It borrows the backing array, so cursors stay valid after the Slice value is gone.
type Slice[T any] []T

var _ cursor.Sequence[int, *SliceCursor[int]] = Slice[int]{}

func (s Slice[T]) Begin() *SliceCursor[T] {
	return &SliceCursor[T]{vs: s}
}

func (s Slice[T]) End() cursor.Sentinel[*SliceCursor[T]] {
	return sliceEnd[T]{n: len(s)}
}

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) Borrowed() bool { return true }

// SliceCursor points at an index of a Slice.
type SliceCursor[T any] struct {
	vs []T
	i  int
}

func (c *SliceCursor[T]) Read() T { return c.vs[c.i] }

func (c *SliceCursor[T]) Write(v T) { c.vs[c.i] = v }

func (c *SliceCursor[T]) Advance() { c.i++ }

func (c *SliceCursor[T]) Retreat() { c.i-- }

// Index returns the position of the cursor.
func (c *SliceCursor[T]) Index() int { return c.i }

func (c *SliceCursor[T]) Clone() *SliceCursor[T] {
	return &SliceCursor[T]{vs: c.vs, i: c.i}
}

func (c *SliceCursor[T]) Equal(oth *SliceCursor[T]) bool {
	return c.i == oth.i
}

func (c *SliceCursor[T]) Offset(n int) *SliceCursor[T] {
	return &SliceCursor[T]{vs: c.vs, i: c.i + n}
}

// Move takes out the element, and leaves the zero value in its place.
func (c *SliceCursor[T]) Move() T {
	var zero T
	v := c.vs[c.i]
	c.vs[c.i] = zero
	return v
}

func (c *SliceCursor[T]) Swap(oth *SliceCursor[T]) {
	c.vs[c.i], oth.vs[oth.i] = oth.vs[oth.i], c.vs[c.i]
}

type sliceEnd[T any] struct{ n int }

func (e sliceEnd[T]) Reached(c *SliceCursor[T]) bool { return e.n <= c.i }

func (e sliceEnd[T]) Distance(from *SliceCursor[T]) int { return e.n - from.i }
