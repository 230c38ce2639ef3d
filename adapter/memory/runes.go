package memory

import (
	"unicode/utf8"

	"go.llib.dev/lazytake/port/cursor"
)

// Runes is a sequence of the unicode code points of a UTF-8 string.
//
// Runes has no constant time length,
// but its end sentinel can count the remaining runes without moving the cursor.
type Runes string

var _ cursor.Sequence[rune, *RuneCursor] = Runes("")

func (s Runes) Begin() *RuneCursor {
	return &RuneCursor{s: string(s)}
}

func (s Runes) End() cursor.Sentinel[*RuneCursor] {
	return runesEnd{}
}

func (s Runes) Borrowed() bool { return true }

// RuneCursor points at the byte offset of a rune.
type RuneCursor struct {
	s   string
	pos int
}

func (c *RuneCursor) Read() rune {
	r, _ := utf8.DecodeRuneInString(c.s[c.pos:])
	return r
}

func (c *RuneCursor) Advance() {
	_, size := utf8.DecodeRuneInString(c.s[c.pos:])
	c.pos += size
}

// Pos returns the byte offset of the cursor.
func (c *RuneCursor) Pos() int { return c.pos }

func (c *RuneCursor) Clone() *RuneCursor {
	return &RuneCursor{s: c.s, pos: c.pos}
}

func (c *RuneCursor) Equal(oth *RuneCursor) bool {
	return c.pos == oth.pos
}

type runesEnd struct{}

func (runesEnd) Reached(c *RuneCursor) bool { return len(c.s) <= c.pos }

func (runesEnd) Distance(from *RuneCursor) int {
	return utf8.RuneCountInString(from.s[from.pos:])
}
