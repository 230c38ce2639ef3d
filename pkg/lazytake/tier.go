package lazytake

import (
	"go.llib.dev/lazytake/pkg/lazycount"
	"go.llib.dev/lazytake/port/cursor"
)

// Tier identifies the strategy of a View.
type Tier int

const (
	// Eager views use the source cursor as is, and compute the end position upfront.
	Eager Tier = iota
	// Sized views count down from the source's length or the requested count, whichever is less.
	Sized
	// Measured views count down from the measured distance to the source's end or the requested count.
	Measured
	// Lazy views count down from the requested count, and also stop at the source's end.
	Lazy
)

func (t Tier) String() string {
	switch t {
	case Eager:
		return "eager"
	case Sized:
		return "sized"
	case Measured:
		return "measured"
	case Lazy:
		return "lazy"
	default:
		return "unknown"
	}
}

type strategy[T any, C cursor.Cursor[T]] interface {
	tier() Tier
	begin(v *View[T, C]) cursor.Cursor[T]
	end(v *View[T, C]) cursor.Sentinel[cursor.Cursor[T]]
}

func selectStrategy[T any, C cursor.Cursor[T]](caps cursor.Capabilities) strategy[T, C] {
	switch {
	case caps.Sized && caps.RandomOffset && caps.Comparable:
		return eagerStrategy[T, C]{}
	case caps.Sized:
		return sizedStrategy[T, C]{}
	case caps.Distance:
		return measuredStrategy[T, C]{}
	default:
		return lazyStrategy[T, C]{}
	}
}

type eagerStrategy[T any, C cursor.Cursor[T]] struct{}

func (eagerStrategy[T, C]) tier() Tier { return Eager }

func (eagerStrategy[T, C]) begin(v *View[T, C]) cursor.Cursor[T] {
	return v.base.Begin()
}

func (eagerStrategy[T, C]) end(v *View[T, C]) cursor.Sentinel[cursor.Cursor[T]] {
	n, _ := v.Size()
	pos := any(v.base.Begin()).(cursor.Offsetter[C]).Offset(n)
	return positionSentinel[T, C]{pos: pos}
}

type sizedStrategy[T any, C cursor.Cursor[T]] struct{}

func (sizedStrategy[T, C]) tier() Tier { return Sized }

func (sizedStrategy[T, C]) begin(v *View[T, C]) cursor.Cursor[T] {
	n, _ := v.Size()
	if n == 0 {
		return emptyCursor[T, C]()
	}
	return lazycount.New[T](v.base.Begin(), n)
}

func (sizedStrategy[T, C]) end(*View[T, C]) cursor.Sentinel[cursor.Cursor[T]] {
	return countedSentinel[T, C]{}
}

type measuredStrategy[T any, C cursor.Cursor[T]] struct{}

func (measuredStrategy[T, C]) tier() Tier { return Measured }

func (measuredStrategy[T, C]) begin(v *View[T, C]) cursor.Cursor[T] {
	var (
		it = v.base.Begin()
		d  = v.base.End().(cursor.Distancer[C]).Distance(it)
	)
	return lazycount.New[T](it, v.clampedCount(d))
}

func (measuredStrategy[T, C]) end(*View[T, C]) cursor.Sentinel[cursor.Cursor[T]] {
	return countedSentinel[T, C]{}
}

type lazyStrategy[T any, C cursor.Cursor[T]] struct{}

func (lazyStrategy[T, C]) tier() Tier { return Lazy }

func (lazyStrategy[T, C]) begin(v *View[T, C]) cursor.Cursor[T] {
	if v.count == 0 {
		return emptyCursor[T, C]()
	}
	return lazycount.New[T](v.base.Begin(), v.count)
}

// emptyCursor is an exhausted counted cursor over the zero source cursor.
// An empty traversal must not call Begin on a source whose Begin consumes input.
func emptyCursor[T any, C cursor.Cursor[T]]() cursor.Cursor[T] {
	var zero C
	return lazycount.New[T](zero, 0)
}

func (lazyStrategy[T, C]) end(v *View[T, C]) cursor.Sentinel[cursor.Cursor[T]] {
	return endSentinel[T, C]{end: lazycount.NewEndSentinel[T](v.base.End())}
}
