package cursor

// Category is the traversal guarantee a cursor can keep.
// Categories are ordered, a stronger category includes every guarantee of the weaker ones.
type Category int

const (
	// SinglePass cursors can be walked only once, advancing consumes the element.
	SinglePass Category = iota
	// Forward cursors can be copied and walked again, the same positions yield the same elements.
	Forward
	// Bidirectional cursors are Forward cursors that can also step backwards.
	Bidirectional
	// RandomAccess cursors are Bidirectional cursors that can jump in constant time.
	RandomAccess
)

func (c Category) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// Categorizer is implemented by cursors that report their own category,
// typically adapters whose method set is wider than the guarantee they can keep.
type Categorizer interface {
	Category() Category
}

// CategoryOf probes the capabilities of a cursor value and returns the strongest category it supports.
// A Categorizer answers for itself.
func CategoryOf[C any](c C) Category {
	v := any(c)
	if cr, ok := v.(Categorizer); ok {
		return cr.Category()
	}
	_, isCloner := v.(Cloner[C])
	_, isEqualer := v.(Equaler[C])
	if !isCloner || !isEqualer {
		return SinglePass
	}
	if _, ok := v.(Retreater); !ok {
		return Forward
	}
	if _, ok := v.(Offsetter[C]); !ok {
		return Bidirectional
	}
	return RandomAccess
}

// Downgrade caps a category at Forward.
// A cursor that compares by a counter instead of by position
// can't keep any promise stronger than Forward,
// and it can't keep a promise stronger than its wrapped source either.
func Downgrade(c Category) Category {
	return min(c, Forward)
}
