package postgresql_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazytake/adapter/postgresql"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/pkg/lazytake"
	"go.llib.dev/lazytake/port/cursor"
)

// fakeRows is a single int column result set.
type fakeRows struct {
	values  []int
	current int
	scanErr error
	closed  bool
}

func (r *fakeRows) Close() { r.closed = true }

func (r *fakeRows) Err() error { return nil }

func (r *fakeRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription {
	return []pgconn.FieldDescription{{Name: "n"}}
}

func (r *fakeRows) Next() bool {
	if r.closed || len(r.values) == 0 {
		return false
	}
	r.current, r.values = r.values[0], r.values[1:]
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*(dest[0].(*int)) = r.current
	return nil
}

func (r *fakeRows) Values() ([]any, error) { return []any{r.current}, nil }

func (r *fakeRows) RawValues() [][]byte { return nil }

func (r *fakeRows) Conn() *pgx.Conn { return nil }

func TestSequence(t *testing.T) {
	t.Run("yields the rows in order", func(t *testing.T) {
		seq := postgresql.New[int](&fakeRows{values: []int{1, 2, 3}}, pgx.RowTo[int])
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect[int, *postgresql.Cursor[int]](seq))
		assert.NoError(t, seq.Err())
	})

	t.Run("a bounded view fetches exactly the bound", func(t *testing.T) {
		rows := &fakeRows{values: []int{1, 2, 3, 4}}
		seq := postgresql.New[int](rows, pgx.RowTo[int])

		v := lazytake.New[int, *postgresql.Cursor[int]](seq, 2)
		assert.Equal(t, lazytake.Lazy, v.Tier())
		assert.Equal(t, []int{1, 2}, iterkit.Collect[int, cursor.Cursor[int]](v))
		assert.Equal(t, 2, seq.Fetches())
		assert.Equal(t, []int{3, 4}, rows.values)

		n, ok := seq.Next()
		assert.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("consecutive views continue where the previous stopped", func(t *testing.T) {
		seq := postgresql.New[int](&fakeRows{values: []int{1, 2, 3, 4, 5}}, pgx.RowTo[int])
		assert.Equal(t, []int{1}, lazytake.Take[int, *postgresql.Cursor[int]](seq, 1))
		assert.Equal(t, []int{2, 3}, lazytake.Take[int, *postgresql.Cursor[int]](seq, 2))
		n, ok := seq.Next()
		assert.True(t, ok)
		assert.Equal(t, 4, n)
		assert.Equal(t, []int{5}, lazytake.Take[int, *postgresql.Cursor[int]](seq, 2))
		assert.Equal(t, 5, seq.Fetches())
	})

	t.Run("scan errors end the sequence", func(t *testing.T) {
		seq := postgresql.New[int](&fakeRows{values: []int{1}, scanErr: errors.New("boom")}, pgx.RowTo[int])
		assert.Empty(t, iterkit.Collect[int, *postgresql.Cursor[int]](seq))
		assert.True(t, errors.Is(seq.Err(), postgresql.ErrScan))
	})

	t.Run("close releases the rows", func(t *testing.T) {
		rows := &fakeRows{values: []int{1, 2}}
		seq := postgresql.New[int](rows, pgx.RowTo[int])
		assert.NoError(t, seq.Close())
		assert.True(t, rows.closed)
		assert.True(t, seq.End().Reached(seq.Begin()))
	})
}

func DatabaseURL(tb testing.TB) string {
	const envKey = `POSTGRES_DATABASE_URL`
	databaseURL, ok := os.LookupEnv(envKey)
	if !ok {
		tb.Skipf(`%s env variable is missing`, envKey)
	}
	return databaseURL
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, DatabaseURL(t))
	assert.NoError(t, err)
	defer pool.Close()

	seq, err := postgresql.Query[int](ctx, pool, pgx.RowTo[int], `SELECT generate_series(1, $1::int)`, 1000)
	assert.NoError(t, err)
	defer seq.Close()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, lazytake.Take[int, *postgresql.Cursor[int]](seq, 5))
	assert.Equal(t, 5, seq.Fetches())
	assert.NoError(t, seq.Err())
}
