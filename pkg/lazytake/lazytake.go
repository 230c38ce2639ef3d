// Package lazytake bounds a sequence to its first n elements, without reading ahead.
//
// A View is built once from a source sequence and a count.
// At construction the source's capabilities are probed,
// and one of four strategies is chosen for producing cursors:
//
//   - Eager: the source is sized, and its cursors can jump ahead and compare positions.
//     Begin is the source's own cursor, End is the position min(len, n) steps ahead.
//   - Sized: the source is sized.
//     Begin is a counted cursor with the count clamped to the source length.
//   - Measured: the source is unsized but its end can measure the distance to it.
//     Begin is a counted cursor with the count clamped to that distance.
//   - Lazy: nothing is known about the source's length.
//     Begin is a counted cursor with the requested count,
//     and End is reached by whichever comes first, the exhausted count or the source's end.
//
// Every counted cursor advances its source only when a further element is needed,
// so bounding a single-pass source to n elements consumes exactly n elements of it.
package lazytake

import (
	"context"
	"iter"

	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/pkg/lazycount"
	"go.llib.dev/lazytake/pkg/logging"
	"go.llib.dev/lazytake/port/cursor"
)

// View is a sequence of at most Count elements of its base sequence.
//
// A View is itself a cursor.Sequence, so views can be nested.
// The cursors of a View are independent values,
// but whether more than one can be walked depends on the base:
// a single-pass base must be walked only once.
type View[T any, C cursor.Cursor[T]] struct {
	base     cursor.Sequence[T, C]
	count    int
	strategy strategy[T, C]
}

var _ cursor.Sequence[int, cursor.Cursor[int]] = (*View[int, cursor.Cursor[int]])(nil)

// New creates a view of the first count elements of base.
// count must not be negative.
func New[T any, C cursor.Cursor[T]](base cursor.Sequence[T, C], count int, opts ...Option) *View[T, C] {
	var (
		conf = toConfig(opts)
		caps = cursor.Probe(base)
		v    = &View[T, C]{base: base, count: count, strategy: selectStrategy[T, C](caps)}
	)
	conf.Logger.Debug(context.Background(), "lazytake view created",
		logging.Field("tier", v.Tier().String()),
		logging.Field("count", count),
		logging.Field("category", caps.Category.String()))
	return v
}

// Begin returns the first position of the bounded traversal.
func (v *View[T, C]) Begin() cursor.Cursor[T] {
	return v.strategy.begin(v)
}

// End returns the condition that ends the bounded traversal.
// It only accepts cursors produced by the same View.
func (v *View[T, C]) End() cursor.Sentinel[cursor.Cursor[T]] {
	return v.strategy.end(v)
}

// All returns an iterator over the bounded elements.
func (v *View[T, C]) All() iter.Seq[T] {
	return iterkit.All[T, cursor.Cursor[T]](v)
}

// Size returns min(base length, count) when the base is sized.
func (v *View[T, C]) Size() (int, bool) {
	n, ok := cursor.LenOf(v.base)
	if !ok {
		return 0, false
	}
	return min(n, v.count), true
}

// Count returns the requested bound.
func (v *View[T, C]) Count() int {
	return v.count
}

// Base returns the wrapped sequence.
func (v *View[T, C]) Base() cursor.Sequence[T, C] {
	return v.base
}

// Tier returns the strategy the view uses for building its cursors.
func (v *View[T, C]) Tier() Tier {
	return v.strategy.tier()
}

// Borrowed reports whether the base only references its data.
// The view owns nothing beyond the count, so it is borrowed exactly when its base is.
func (v *View[T, C]) Borrowed() bool {
	return cursor.IsBorrowed(v.base)
}

func (v *View[T, C]) clampedCount(n int) int {
	return min(n, v.count)
}

// Take is a shorthand to collect the first n elements of a sequence.
func Take[T any, C cursor.Cursor[T]](seq cursor.Sequence[T, C], n int) []T {
	return iterkit.Collect[T, cursor.Cursor[T]](New(seq, n))
}

// Counted is the cursor type of the Sized, Measured and Lazy tiers.
type Counted[T any, C cursor.Cursor[T]] = lazycount.Cursor[T, C]
