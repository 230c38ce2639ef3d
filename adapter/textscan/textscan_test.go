package textscan_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"

	"go.llib.dev/lazytake/adapter/textscan"
	"go.llib.dev/lazytake/pkg/iterkit"
	"go.llib.dev/lazytake/pkg/lazytake"
	"go.llib.dev/lazytake/port/cursor"
	"go.llib.dev/lazytake/port/cursor/cursorcontract"
)

func ExampleInts() {
	in := textscan.Ints(strings.NewReader("0 1 2"))

	head := lazytake.Take[int, *textscan.Cursor[int]](in, 1)
	next, _ := in.Next()
	_, _ = head, next // []int{0}, 1
}

func TestSequence(t *testing.T) {
	cursorcontract.Test[string, *textscan.Cursor[string]](t, func(tb testing.TB) cursorcontract.Subject[string, *textscan.Cursor[string]] {
		words := make([]string, randomdata.Number(0, 12))
		for i := range words {
			words[i] = randomdata.SillyName()
		}
		return cursorcontract.Subject[string, *textscan.Cursor[string]]{
			Sequence: textscan.Words(strings.NewReader(strings.Join(words, " \n\t"))),
			Expected: words,
		}
	})

	s := testcase.NewSpec(t)

	var (
		numbers = let.Var(s, func(t *testcase.T) []int {
			vs := make([]int, t.Random.IntB(3, 10))
			for i := range vs {
				vs[i] = randomdata.Number(-1000, 1000)
			}
			return vs
		})
		input = let.Var(s, func(t *testcase.T) string {
			var parts []string
			for _, n := range numbers.Get(t) {
				parts = append(parts, strconv.Itoa(n))
			}
			return strings.Join(parts, " ")
		})
		subject = let.Var(s, func(t *testcase.T) *textscan.Sequence[int] {
			return textscan.Ints(strings.NewReader(input.Get(t)))
		})
	)

	s.Test("it is single-pass and unsized", func(t *testcase.T) {
		caps := cursor.Probe[int, *textscan.Cursor[int]](subject.Get(t))
		assert.Equal(t, cursor.SinglePass, caps.Category)
		assert.False(t, caps.Sized)
		assert.False(t, caps.Distance)
	})

	s.Test("nothing is read before Begin", func(t *testcase.T) {
		assert.Equal(t, 0, subject.Get(t).Reads())
		c := subject.Get(t).Begin()
		assert.Equal(t, 1, subject.Get(t).Reads())
		assert.Equal(t, numbers.Get(t)[0], c.Read())
	})

	s.Test("a bounded view reads exactly the bound", func(t *testcase.T) {
		n := t.Random.IntB(1, len(numbers.Get(t))-1)
		got := lazytake.Take[int, *textscan.Cursor[int]](subject.Get(t), n)
		assert.Equal(t, numbers.Get(t)[:n], got)
		assert.Equal(t, n, subject.Get(t).Reads())

		next, ok := subject.Get(t).Next()
		assert.True(t, ok)
		assert.Equal(t, numbers.Get(t)[n], next)
	})

	s.Test("consecutive views continue where the previous stopped", func(t *testcase.T) {
		first := lazytake.Take[int, *textscan.Cursor[int]](subject.Get(t), 1)
		second := lazytake.Take[int, *textscan.Cursor[int]](subject.Get(t), 2)
		assert.Equal(t, numbers.Get(t)[:1], first)
		assert.Equal(t, numbers.Get(t)[1:3], second)
	})

	s.When("the input has a malformed token", func(s *testcase.Spec) {
		input.Let(s, func(t *testcase.T) string {
			return "1 2 " + randomdata.Letters(5) + " 4"
		})

		s.Then("the sequence stops at it with a parse error", func(t *testcase.T) {
			got := iterkit.Collect[int, *textscan.Cursor[int]](subject.Get(t))
			assert.Equal(t, []int{1, 2}, got)
			assert.True(t, errors.Is(subject.Get(t).Err(), textscan.ErrParse))
		})
	})

	s.When("the input is empty", func(s *testcase.Spec) {
		input.LetValue(s, "  \n ")

		s.Then("the sequence is empty", func(t *testcase.T) {
			assert.Empty(t, iterkit.Collect[int, *textscan.Cursor[int]](subject.Get(t)))
			assert.NoError(t, subject.Get(t).Err())
			_, ok := subject.Get(t).Next()
			assert.False(t, ok)
		})
	})
}
