// Package iterkit bridges cursor based sequences and Go's range-over-func iterators.
//
// # Summary
//
// A cursor.Sequence gives fine control over when a source is advanced,
// which matters when the source is single-pass, such as a network stream or standard input.
// An iter.Seq is what the rest of a Go program wants to range over.
// iterkit converts in both directions,
// and provides a few sequence combinators that keep the source untouched until a value is needed.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://pkg.go.dev/iter
package iterkit

import (
	"iter"

	"go.llib.dev/lazytake/port/cursor"
)

// All returns an iterator over the sequence's elements.
//
// The source cursor is advanced only after the consumer asked for the next element,
// so breaking out of the range loop leaves the cursor at the last yielded element.
func All[T any, C cursor.Cursor[T]](seq cursor.Sequence[T, C]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := seq.Begin(), seq.End(); !end.Reached(c); c.Advance() {
			if !yield(c.Read()) {
				return
			}
		}
	}
}

// Collect walks the sequence and returns its elements.
func Collect[T any, C cursor.Cursor[T]](seq cursor.Sequence[T, C]) []T {
	var vs []T
	for v := range All(seq) {
		vs = append(vs, v)
	}
	return vs
}

// Count walks the sequence and returns the number of its elements.
func Count[T any, C cursor.Cursor[T]](seq cursor.Sequence[T, C]) int {
	var n int
	for range All(seq) {
		n++
	}
	return n
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; begin+i < end+1; i++ {
			if !yield(begin + i) {
				break
			}
		}
	}
}
