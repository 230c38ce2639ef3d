// Package cursorcontract holds the behavioural contract every cursor.Sequence implementation must keep.
package cursorcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/port/contract"
	"go.llib.dev/lazytake/port/cursor"
)

// Subject is what a Sequence contract is tested with:
// a fresh sequence and the elements it is expected to yield in order.
type Subject[T any, C cursor.Cursor[T]] struct {
	Sequence cursor.Sequence[T, C]
	Expected []T
}

// Sequence describes the expectations towards a cursor.Sequence.
// Optional capabilities are only checked when the sequence's type has them.
func Sequence[T any, C cursor.Cursor[T]](mk contract.Make[Subject[T, C]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T, C] {
		return mk(t)
	})

	capabilities := testcase.Let(s, func(t *testcase.T) cursor.Capabilities {
		return cursor.Probe(subject.Get(t).Sequence)
	})

	s.Test("walking the sequence yields the expected elements in order", func(t *testcase.T) {
		got := iterkit.Collect(subject.Get(t).Sequence)
		assert.Equal(t, len(subject.Get(t).Expected), len(got))
		if 0 < len(got) {
			assert.Equal(t, subject.Get(t).Expected, got)
		}
	})

	s.Test("the walk terminates at the end sentinel", func(t *testcase.T) {
		var (
			seq = subject.Get(t).Sequence
			n   int
		)
		for c, end := seq.Begin(), seq.End(); !end.Reached(c); c.Advance() {
			n++
			assert.True(t, n <= len(subject.Get(t).Expected), "walked past the expected length")
		}
		assert.Equal(t, len(subject.Get(t).Expected), n)
	})

	s.Test("a sized sequence reports the expected length", func(t *testcase.T) {
		if !capabilities.Get(t).Sized {
			t.Skip("sequence is not sized")
		}
		n, ok := cursor.LenOf(subject.Get(t).Sequence)
		assert.True(t, ok)
		assert.Equal(t, len(subject.Get(t).Expected), n)
	})

	s.Test("a revisitable sequence yields the same elements on every walk", func(t *testcase.T) {
		if capabilities.Get(t).Category < cursor.Forward {
			t.Skip("sequence is single-pass")
		}
		seq := subject.Get(t).Sequence
		assert.Equal(t, iterkit.Collect(seq), iterkit.Collect(seq))
	})

	s.Test("a clone advances independently from the original", func(t *testcase.T) {
		if capabilities.Get(t).Category < cursor.Forward || len(subject.Get(t).Expected) < 2 {
			t.Skip("sequence is single-pass or too short")
		}
		var (
			seq   = subject.Get(t).Sequence
			begin = seq.Begin()
			clone = any(begin).(cursor.Cloner[C]).Clone()
		)
		begin.Advance()
		assert.Equal(t, subject.Get(t).Expected[0], clone.Read())
		assert.Equal(t, subject.Get(t).Expected[1], begin.Read())
		assert.False(t, any(begin).(cursor.Equaler[C]).Equal(clone))
		clone.Advance()
		assert.True(t, any(begin).(cursor.Equaler[C]).Equal(clone))
	})

	s.Test("a measurable end tells the remaining length without moving the cursor", func(t *testcase.T) {
		if !capabilities.Get(t).Distance {
			t.Skip("end sentinel can't measure distance")
		}
		var (
			seq   = subject.Get(t).Sequence
			begin = seq.Begin()
			end   = seq.End()
		)
		assert.Equal(t, len(subject.Get(t).Expected), end.(cursor.Distancer[C]).Distance(begin))
		if 0 < len(subject.Get(t).Expected) {
			assert.Equal(t, subject.Get(t).Expected[0], begin.Read())
		}
	})

	s.Test("a random access cursor jumps to the requested position", func(t *testcase.T) {
		if !capabilities.Get(t).RandomOffset || len(subject.Get(t).Expected) == 0 {
			t.Skip("cursor can't jump or sequence is empty")
		}
		var (
			exp   = subject.Get(t).Expected
			k     = t.Random.IntN(len(exp))
			begin = subject.Get(t).Sequence.Begin()
		)
		got := any(begin).(cursor.Offsetter[C]).Offset(k)
		assert.Equal(t, exp[k], got.Read())
		assert.Equal(t, exp[0], begin.Read(), "Offset must not move the receiver")
	})

	return s.AsSuite("Sequence")
}

// Test is a shorthand to run the Sequence contract.
func Test[T any, C cursor.Cursor[T]](t *testing.T, mk contract.Make[Subject[T, C]]) {
	Sequence[T, C](mk).Test(t)
}
