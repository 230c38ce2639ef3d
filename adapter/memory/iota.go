package memory

import "go.llib.dev/lazytake/port/cursor"

// Iota is the unbounded sequence of integers counting up from its value.
// Its end is never reached.
type Iota int

var _ cursor.Sequence[int, *IotaCursor] = Iota(0)

func (s Iota) Begin() *IotaCursor {
	return &IotaCursor{n: int(s)}
}

func (s Iota) End() cursor.Sentinel[*IotaCursor] {
	return Unreachable[*IotaCursor]{}
}

// Unreachable is a sentinel that no cursor ever reaches.
type Unreachable[C any] struct{}

func (Unreachable[C]) Reached(C) bool { return false }

// IotaCursor yields its own position.
type IotaCursor struct{ n int }

func (c *IotaCursor) Read() int { return c.n }

func (c *IotaCursor) Advance() { c.n++ }

func (c *IotaCursor) Retreat() { c.n-- }

func (c *IotaCursor) Clone() *IotaCursor { return &IotaCursor{n: c.n} }

func (c *IotaCursor) Equal(oth *IotaCursor) bool { return c.n == oth.n }

func (c *IotaCursor) Offset(n int) *IotaCursor { return &IotaCursor{n: c.n + n} }
