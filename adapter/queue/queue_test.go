package queue_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/lazytake/adapter/queue"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/pkg/lazytake"
	"go.llib.dev/lazytake/port/cursor"
	"go.llib.dev/lazytake/port/cursor/cursorcontract"
)

func ExampleQueue_Drain() {
	q := queue.New("a", "b", "c", "d")

	head := lazytake.Take[string, *queue.DrainCursor[string]](q.Drain(), 2)
	_ = head    // "a", "b"
	_ = q.Len() // 2
}

func TestQueue(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		values = let.Var(s, func(t *testcase.T) []int {
			vs := make([]int, t.Random.IntB(0, 20))
			for i := range vs {
				vs[i] = t.Random.Int()
			}
			return vs
		})
		subject = let.Var(s, func(t *testcase.T) *queue.Queue[int] {
			return queue.New(values.Get(t)...)
		})
	)

	s.Test("Remove returns the elements in insertion order", func(t *testcase.T) {
		for _, exp := range values.Get(t) {
			got, ok := subject.Get(t).Remove()
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
		_, ok := subject.Get(t).Remove()
		assert.False(t, ok)
	})

	s.Test("Len follows additions and removals", func(t *testcase.T) {
		n := len(values.Get(t))
		assert.Equal(t, n, subject.Get(t).Len())
		subject.Get(t).Add(1, 2)
		assert.Equal(t, n+2, subject.Get(t).Len())
		subject.Get(t).Remove()
		assert.Equal(t, n+1, subject.Get(t).Len())
	})

	s.Test("Peek walks without removing", func(t *testcase.T) {
		got := iterkit.Collect[int, *queue.PeekCursor[int]](subject.Get(t).Peek())
		assert.Equal(t, len(values.Get(t)), len(got))
		if 0 < len(got) {
			assert.Equal(t, values.Get(t), got)
		}
		assert.Equal(t, len(values.Get(t)), subject.Get(t).Len())
	})

	s.Test("Drain walks by removing", func(t *testcase.T) {
		got := iterkit.Collect[int, *queue.DrainCursor[int]](subject.Get(t).Drain())
		assert.Equal(t, len(values.Get(t)), len(got))
		if 0 < len(got) {
			assert.Equal(t, values.Get(t), got)
		}
		assert.Equal(t, 0, subject.Get(t).Len())
	})
}

func TestPeekSequence(t *testing.T) {
	cursorcontract.Test[string, *queue.PeekCursor[string]](t, func(tb testing.TB) cursorcontract.Subject[string, *queue.PeekCursor[string]] {
		vs := []string{"foo", "bar", "baz", "qux"}
		return cursorcontract.Subject[string, *queue.PeekCursor[string]]{
			Sequence: queue.New(vs...).Peek(),
			Expected: vs,
		}
	})

	t.Run("a bounded view of it is eager", func(t *testing.T) {
		q := queue.New(1, 2, 3, 4)
		v := lazytake.New[int, *queue.PeekCursor[int]](q.Peek(), 3)
		assert.Equal(t, lazytake.Eager, v.Tier())
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect[int, cursor.Cursor[int]](v))
		assert.Equal(t, 4, q.Len())
	})
}

func TestDrainSequence(t *testing.T) {
	cursorcontract.Test[string, *queue.DrainCursor[string]](t, func(tb testing.TB) cursorcontract.Subject[string, *queue.DrainCursor[string]] {
		vs := []string{"foo", "bar", "baz"}
		return cursorcontract.Subject[string, *queue.DrainCursor[string]]{
			Sequence: queue.New(vs...).Drain(),
			Expected: vs,
		}
	})

	t.Run("a bounded view of it is sized", func(t *testing.T) {
		q := queue.New(1, 2, 3)
		v := lazytake.New[int, *queue.DrainCursor[int]](q.Drain(), 2)
		assert.Equal(t, lazytake.Sized, v.Tier())
		assert.Equal(t, cursor.SinglePass, cursor.Probe[int, *queue.DrainCursor[int]](q.Drain()).Category)
		assert.Equal(t, 3, q.Len(), "building a view removes nothing")
	})

	t.Run("a bounded drain removes exactly what it reads", func(t *testing.T) {
		q := queue.New(1, 2, 3, 4, 5)
		assert.Equal(t, []int{1, 2, 3}, lazytake.Take[int, *queue.DrainCursor[int]](q.Drain(), 3))
		assert.Equal(t, 2, q.Len())

		head, ok := q.Remove()
		assert.True(t, ok)
		assert.Equal(t, 4, head)
	})

	t.Run("consecutive drains continue where the previous stopped", func(t *testing.T) {
		q := queue.New(1, 2, 3, 4, 5)
		assert.Equal(t, []int{1, 2}, lazytake.Take[int, *queue.DrainCursor[int]](q.Drain(), 2))
		assert.Equal(t, []int{3, 4}, lazytake.Take[int, *queue.DrainCursor[int]](q.Drain(), 2))
		assert.Empty(t, lazytake.Take[int, *queue.DrainCursor[int]](q.Drain(), 0))
		assert.Equal(t, 1, q.Len())
	})

	t.Run("a bound longer than the queue drains it", func(t *testing.T) {
		q := queue.New(1, 2)
		assert.Equal(t, []int{1, 2}, lazytake.Take[int, *queue.DrainCursor[int]](q.Drain(), 5))
		assert.Equal(t, 0, q.Len())
	})
}
