// Package cursor defines the capability contracts of a position based sequence.
//
// A Cursor is the minimum: a readable position that can be advanced forward.
// Everything stronger is an optional capability, expressed as its own role interface,
// and discovered by probing the concrete value:
//
//   - Cloner + Equaler: the cursor is revisitable (Forward)
//   - Retreater: the cursor can step backwards (Bidirectional)
//   - Offsetter: the cursor can jump by n positions in O(1) (RandomAccess)
//   - Distancer (on the Sentinel): the remaining distance is known without consuming
//   - Sizer / SizeReporter (on the Sequence): the element count is known in O(1)
//
// A Sequence pairs a beginning Cursor with a Sentinel that tells when the traversal is over.
//
//	for c, end := seq.Begin(), seq.End(); !end.Reached(c); c.Advance() {
//		_ = c.Read()
//	}
package cursor

// Cursor is a position marker in a sequence that can be read and moved forward.
//
// A Cursor may be single-pass:
// advancing it can consume input that cannot be replayed,
// so a consumer should only call Advance when it needs the next element.
type Cursor[T any] interface {
	// Read returns the element at the current position.
	Read() T
	// Advance moves the cursor to the next position.
	Advance()
}

// Sentinel tells whether a cursor reached the end of its traversal.
// A Sentinel is not a cursor itself, it is never advanced.
type Sentinel[C any] interface {
	Reached(c C) bool
}

// Sequence is anything that can hand out a cursor and the matching end condition.
type Sequence[T any, C Cursor[T]] interface {
	Begin() C
	End() Sentinel[C]
}

// Cloner is implemented by cursors that can be copied,
// and the copy advanced independently of the original without losing data.
type Cloner[C any] interface {
	Clone() C
}

// Equaler is implemented by cursors that can tell if they point to the same position.
type Equaler[C any] interface {
	Equal(oth C) bool
}

// Retreater is implemented by cursors that can step back one position.
type Retreater interface {
	Retreat()
}

// Offsetter is implemented by cursors that can jump n positions in constant time.
// Offset returns a new cursor and leaves the receiver untouched.
type Offsetter[C any] interface {
	Offset(n int) C
}

// Distancer is implemented by sentinels that can tell how many elements are left
// between a cursor and the end, without advancing the cursor.
type Distancer[C any] interface {
	Distance(from C) int
}

// Sizer is implemented by sequences that know their element count in constant time.
type Sizer interface {
	Len() int
}

// SizeReporter is implemented by sequences where being sized is a property of the value.
// When both SizeReporter and Sizer are implemented, SizeReporter takes precedence.
type SizeReporter interface {
	Size() (int, bool)
}

// Borrower is implemented by sequences that reference data they don't own.
// A borrowed sequence's cursors stay valid after the sequence value itself is discarded.
type Borrower interface {
	Borrowed() bool
}

// Mover is implemented by cursors that can take the element out of the current position.
type Mover[T any] interface {
	Move() T
}

// Swapper is implemented by cursors that can exchange the element they point at with another cursor's element.
type Swapper[C any] interface {
	Swap(oth C)
}

// Writer is implemented by cursors that can replace the element at the current position.
type Writer[T any] interface {
	Write(v T)
}
