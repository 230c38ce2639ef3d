// Package mocks holds gomock doubles of the cursor contracts, specialised to int elements, and of a SQL result set.
package mocks

//go:generate mockgen -package mocks -destination cursor_mock.go go.llib.dev/lazytake/internal/mocks IntCursor,IntSentinel
//go:generate mockgen -package mocks -destination rows_mock.go go.llib.dev/lazytake/adapter/sqlrows Rows

// IntCursor is cursor.Cursor[int] with a concrete element type, so mockgen can generate it.
type IntCursor interface {
	Read() int
	Advance()
}

// IntSentinel is cursor.Sentinel[IntCursor] with a concrete cursor type.
type IntSentinel interface {
	Reached(c IntCursor) bool
}
