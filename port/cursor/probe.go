package cursor

// Capabilities is the classification of a Sequence that decides how a bounded view is built.
type Capabilities struct {
	// Category of the sequence's cursor type.
	Category Category
	// Sized tells that the sequence reports its length in constant time.
	Sized bool
	// RandomOffset tells that the cursor type can jump n positions in constant time.
	RandomOffset bool
	// Comparable tells that two cursors of the type can be compared for position equality.
	Comparable bool
	// Distance tells that the end sentinel can measure the remaining length without consuming.
	Distance bool
	// Borrowed tells that the sequence references data it doesn't own.
	Borrowed bool
}

// Probe classifies a sequence.
//
// Cursor capabilities are probed on the zero value of C, so the classification depends on the type alone,
// and Probe never calls Begin, which could consume input from a single-pass source.
// End is called, because sentinels are expected to be side effect free values.
// Categorizer implementations must be able to answer on a zero value.
func Probe[T any, C Cursor[T]](seq Sequence[T, C]) Capabilities {
	var zero C
	caps := Capabilities{
		Category: CategoryOf(zero),
		Borrowed: IsBorrowed(seq),
	}
	_, caps.Sized = LenOf(seq)
	_, caps.RandomOffset = any(zero).(Offsetter[C])
	_, caps.Comparable = any(zero).(Equaler[C])
	_, caps.Distance = seq.End().(Distancer[C])
	return caps
}

// LenOf returns the element count of a sequence when the sequence is sized.
func LenOf(seq any) (int, bool) {
	if sr, ok := seq.(SizeReporter); ok {
		return sr.Size()
	}
	if s, ok := seq.(Sizer); ok {
		return s.Len(), true
	}
	return 0, false
}

// IsBorrowed reports whether the sequence only references its data.
func IsBorrowed(seq any) bool {
	b, ok := seq.(Borrower)
	return ok && b.Borrowed()
}
