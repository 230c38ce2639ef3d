package memory

import "go.llib.dev/lazytake/port/cursor"

// List is a doubly linked list.
// It knows its length, and its cursors are bidirectional,
// but reaching the n-th element takes n steps.
type List[T any] struct {
	head   *listElem[T]
	tail   *listElem[T]
	length int
}

var _ cursor.Sequence[int, *ListCursor[int]] = (*List[int])(nil)

type listElem[T any] struct {
	data T
	prev *listElem[T]
	next *listElem[T]
}

// NewList creates a List with the given values.
func NewList[T any](vs ...T) *List[T] {
	var l List[T]
	l.Append(vs...)
	return &l
}

func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		l.append(v)
	}
}

func (l *List[T]) append(v T) {
	newNode := &listElem[T]{data: v}
	if l.tail == nil {
		l.head = newNode
		l.tail = newNode
	} else {
		prevTail := l.tail
		prevTail.next = newNode
		l.tail = newNode
		l.tail.prev = prevTail
	}
	l.length++
}

// Prepend adds elements to the beginning of the list, keeping their order.
func (l *List[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		l.prepend(vs[i])
	}
}

func (l *List[T]) prepend(v T) {
	var (
		prevHead = l.head
		newHead  = &listElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	l.head = newHead
	if l.tail == nil {
		l.tail = newHead
	}
	l.length++
}

// Len returns the length of elements in the list
func (l *List[T]) Len() int {
	return l.length
}

func (l *List[T]) Shift() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	first := l.head
	l.head = first.next
	if l.head != nil {
		l.head.prev = nil
	}
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return first.data, true
}

func (l *List[T]) Begin() *ListCursor[T] {
	return &ListCursor[T]{list: l, elem: l.head}
}

func (l *List[T]) End() cursor.Sentinel[*ListCursor[T]] {
	return listEnd[T]{}
}

// ListCursor points at an element of a List.
// The cursor past the last element has no element.
type ListCursor[T any] struct {
	list *List[T]
	elem *listElem[T]
}

func (c *ListCursor[T]) Read() T { return c.elem.data }

func (c *ListCursor[T]) Write(v T) { c.elem.data = v }

func (c *ListCursor[T]) Advance() { c.elem = c.elem.next }

// Retreat steps back, from the past-the-end position it steps to the last element.
func (c *ListCursor[T]) Retreat() {
	if c.elem == nil {
		c.elem = c.list.tail
		return
	}
	c.elem = c.elem.prev
}

func (c *ListCursor[T]) Clone() *ListCursor[T] {
	return &ListCursor[T]{list: c.list, elem: c.elem}
}

func (c *ListCursor[T]) Equal(oth *ListCursor[T]) bool {
	return c.elem == oth.elem
}

type listEnd[T any] struct{}

func (listEnd[T]) Reached(c *ListCursor[T]) bool { return c.elem == nil }
