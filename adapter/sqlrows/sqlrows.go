// Package sqlrows turns a database/sql result set into a single-pass sequence.
package sqlrows

import (
	"context"
	"database/sql"
	"io"

	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/port/cursor"
)

const ErrScan errorkit.Error = "ErrScan"

// Rows is the part of *sql.Rows the sequence depends on.
type Rows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}

type Scanner interface {
	Scan(dest ...any) error
}

type Mapper[T any] interface {
	Map(s Scanner) (T, error)
}

type MapperFunc[T any] func(Scanner) (T, error)

func (fn MapperFunc[T]) Map(s Scanner) (T, error) { return fn(s) }

// New wraps a result set.
// A row is fetched on every Begin and on every Advance,
// so a bounded view of n elements fetches n rows and leaves the rest of the result set unread.
func New[T any](rows Rows, mapper Mapper[T]) *Sequence[T] {
	s := &Sequence[T]{rows: rows, mapper: mapper}
	s.Stream = iterkit.NewStream(s.fetch)
	return s
}

// Query runs the query and wraps its result set.
func Query[T any](ctx context.Context, db *sql.DB, mapper Mapper[T], query string, args ...any) (*Sequence[T], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return New[T](rows, mapper), nil
}

// Sequence is a single-pass sequence of mapped rows.
// Next fetches the following row directly, bypassing any cursor.
type Sequence[T any] struct {
	*iterkit.Stream[T]

	rows    Rows
	mapper  Mapper[T]
	err     error
	fetches int
}

type Cursor[T any] = iterkit.StreamCursor[T]

var _ cursor.Sequence[int, *Cursor[int]] = (*Sequence[int])(nil)

// Fetches reports how many rows were taken from the result set.
func (s *Sequence[T]) Fetches() int {
	return s.fetches
}

func (s *Sequence[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

func (s *Sequence[T]) Close() error {
	s.Stop()
	return s.rows.Close()
}

func (s *Sequence[T]) fetch() (T, bool) {
	var zero T
	if !s.rows.Next() {
		return zero, false
	}
	s.fetches++
	v, err := s.mapper.Map(s.rows)
	if err != nil {
		s.err = ErrScan.Wrap(err)
		return zero, false
	}
	return v, true
}
