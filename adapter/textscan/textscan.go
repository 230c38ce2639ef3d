// Package textscan reads whitespace separated tokens from an io.Reader as a single-pass sequence.
//
// A token is read from the reader on every Begin and on every Advance.
// Bounding a Sequence with lazytake therefore consumes exactly as many tokens as were asked for,
// and the rest of the input can be read on with Next or with another bounded view.
package textscan

import (
	"bufio"
	"io"
	"strconv"

	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/port/cursor"
)

const ErrParse errorkit.Error = "ErrParse"

// ParseFunc converts a token into an element.
type ParseFunc[T any] func(token string) (T, error)

// New creates a Sequence over the whitespace separated tokens of r.
func New[T any](r io.Reader, parse ParseFunc[T]) *Sequence[T] {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	s := &Sequence[T]{scanner: sc, parse: parse}
	s.Stream = iterkit.NewStream(s.scan)
	return s
}

// Ints reads decimal integers.
func Ints(r io.Reader) *Sequence[int] {
	return New[int](r, strconv.Atoi)
}

// Words reads the tokens as they are.
func Words(r io.Reader) *Sequence[string] {
	return New[string](r, func(token string) (string, error) { return token, nil })
}

// Sequence is a single-pass sequence of parsed tokens.
// Next reads the following token directly from the input.
type Sequence[T any] struct {
	*iterkit.Stream[T]

	scanner *bufio.Scanner
	parse   ParseFunc[T]
	err     error
	reads   int
}

// Cursor holds the most recently read token of its Sequence.
type Cursor[T any] = iterkit.StreamCursor[T]

var _ cursor.Sequence[int, *Cursor[int]] = (*Sequence[int])(nil)

// Err returns the first error that stopped the sequence.
// Malformed tokens are reported as ErrParse.
func (s *Sequence[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.scanner.Err()
}

// Reads reports how many tokens were taken from the input.
func (s *Sequence[T]) Reads() int {
	return s.reads
}

func (s *Sequence[T]) scan() (T, bool) {
	var zero T
	if !s.scanner.Scan() {
		return zero, false
	}
	s.reads++
	v, err := s.parse(s.scanner.Text())
	if err != nil {
		s.err = ErrParse.Wrap(err)
		return zero, false
	}
	return v, true
}
