// Package postgresql turns a pgx result set into a single-pass sequence.
package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"go.llib.dev/lazytake/pkg/errorkit"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/port/cursor"
)

const ErrScan errorkit.Error = "ErrScan"

// Querier is implemented by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Query runs the query and wraps its result set.
// Rows are converted with scan, pgx.RowTo and pgx.RowToStructByName are typical choices.
func Query[T any](ctx context.Context, q Querier, scan pgx.RowToFunc[T], sql string, args ...any) (*Sequence[T], error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return New(rows, scan), nil
}

// New wraps a result set.
// A row is fetched on every Begin and on every Advance.
func New[T any](rows pgx.Rows, scan pgx.RowToFunc[T]) *Sequence[T] {
	s := &Sequence[T]{rows: rows, scan: scan}
	s.Stream = iterkit.NewStream(s.fetch)
	return s
}

// Sequence is a single-pass sequence of scanned rows.
// Next fetches the following row directly, bypassing any cursor.
type Sequence[T any] struct {
	*iterkit.Stream[T]

	rows    pgx.Rows
	scan    pgx.RowToFunc[T]
	err     error
	fetches int
}

type Cursor[T any] = iterkit.StreamCursor[T]

var _ cursor.Sequence[int, *Cursor[int]] = (*Sequence[int])(nil)

func (s *Sequence[T]) Fetches() int {
	return s.fetches
}

func (s *Sequence[T]) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

// Close releases the connection of the result set.
// Unread rows are discarded.
func (s *Sequence[T]) Close() error {
	s.Stop()
	s.rows.Close()
	return s.rows.Err()
}

func (s *Sequence[T]) fetch() (T, bool) {
	var zero T
	if !s.rows.Next() {
		return zero, false
	}
	s.fetches++
	v, err := s.scan(s.rows)
	if err != nil {
		s.err = ErrScan.Wrap(err)
		return zero, false
	}
	return v, true
}
