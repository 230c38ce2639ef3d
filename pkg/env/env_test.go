package env_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/lazytake/pkg/env"
)

const envKey = "THE_ENV_KEY"

func ExampleLoad() {
	type ExampleAppConfig struct {
		Level string        `env:"LOG_LEVEL" default:"info" enum:"debug;info;warn;error;fatal;"`
		Wait  time.Duration `env:"WAIT" default:"1h5m"`
		N     int           `env:"N" required:"true"`
	}

	var c ExampleAppConfig
	if err := env.Load(&c); err != nil {
		return
	}
}

func ExampleLookup() {
	val, ok, err := env.Lookup[string]("FOO", env.DefaultValue("foo"))
	_, _, _ = val, ok, err
}

func TestLoad(t *testing.T) {
	t.Run("on nil value", func(t *testing.T) {
		type Example struct{}
		err := env.Load[Example](nil)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, env.ErrLoadInvalidData))
	})

	t.Run("on non-struct type", func(t *testing.T) {
		var c string
		assert.Error(t, env.Load(&c))
	})

	t.Run("struct fields without env tag are ignored", func(t *testing.T) {
		type Example struct{ V string }
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Empty(t, c)
	})

	t.Run("string struct field", func(t *testing.T) {
		type Example struct {
			V string `env:"THE_ENV_KEY"`
		}
		t.Run("os env has the value", func(t *testing.T) {
			testcase.SetEnv(t, envKey, "42")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "42", c.V)
		})
		t.Run("os env doesn't have the value", func(t *testing.T) {
			testcase.UnsetEnv(t, envKey)
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Empty(t, c)
		})
	})

	t.Run("scalar types", func(t *testing.T) {
		type Example struct {
			I int           `env:"I_KEY"`
			U uint8         `env:"U_KEY"`
			F float64       `env:"F_KEY"`
			B bool          `env:"B_KEY"`
			D time.Duration `env:"D_KEY"`
		}
		testcase.SetEnv(t, "I_KEY", "-42")
		testcase.SetEnv(t, "U_KEY", "42")
		testcase.SetEnv(t, "F_KEY", "42.42")
		testcase.SetEnv(t, "B_KEY", "true")
		testcase.SetEnv(t, "D_KEY", "1h5m")
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, Example{I: -42, U: 42, F: 42.42, B: true, D: time.Hour + 5*time.Minute}, c)
	})

	t.Run("malformed value", func(t *testing.T) {
		type Example struct {
			V int `env:"THE_ENV_KEY"`
		}
		testcase.SetEnv(t, envKey, "forty-two")
		var c Example
		err := env.Load(&c)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, env.ErrInvalidValue))
	})

	t.Run("a struct field without tag will be visited", func(t *testing.T) {
		type Example struct {
			V struct {
				F string `env:"THE_ENV_KEY"`
			}
		}
		testcase.SetEnv(t, envKey, "42")
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, "42", c.V.F)
	})

	t.Run("a field with env tag that specifies multiple env key", func(t *testing.T) {
		type Example struct {
			F string `env:"THE_ENV_KEY_1, THE_ENV_KEY_2"`
		}
		t.Run("os env has the value under the second key", func(t *testing.T) {
			testcase.UnsetEnv(t, "THE_ENV_KEY_1")
			testcase.SetEnv(t, "THE_ENV_KEY_2", "24")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "24", c.F)
		})
		t.Run("os env has the value under both keys then first is prioritised", func(t *testing.T) {
			testcase.SetEnv(t, "THE_ENV_KEY_1", "42")
			testcase.SetEnv(t, "THE_ENV_KEY_2", "24")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "42", c.F)
		})
	})

	t.Run("when default tag is supplied, its value is used in case of the absence of a env variable", func(t *testing.T) {
		type Example struct {
			V string `env:"THE_ENV_KEY" default:"the default is 42"`
			O string `env:"OTH_ENV_KEY" env-default:"oth default value" default:"this is ignored when prefixed tag key is present"`
		}
		testcase.UnsetEnv(t, envKey)
		testcase.UnsetEnv(t, "OTH_ENV_KEY")
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, "the default is 42", c.V)
		assert.Equal(t, "oth default value", c.O)
	})

	t.Run("when required tag is supplied", func(t *testing.T) {
		type Example struct {
			V string `env:"V_KEY" required:"true"`
			N string `env:"N_KEY" required:"true" default:"fallback value"`
		}
		t.Run("a default value satisfies the requirement", func(t *testing.T) {
			testcase.SetEnv(t, "V_KEY", "V")
			testcase.UnsetEnv(t, "N_KEY")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "V", c.V)
			assert.Equal(t, "fallback value", c.N)
		})
		t.Run("a missing value is an error", func(t *testing.T) {
			testcase.UnsetEnv(t, "V_KEY")
			var c Example
			assert.Error(t, env.Load(&c))
		})
	})

	t.Run("when env-separator tag is supplied", func(t *testing.T) {
		type Example struct {
			V []int `env:"V_KEY" env-separator:":"`
			B []int `env:"B_KEY"`
		}
		testcase.SetEnv(t, "V_KEY", "1:2:4:3")
		testcase.SetEnv(t, "B_KEY", "3,2,1")
		var c Example
		assert.NoError(t, env.Load(&c))
		assert.Equal(t, []int{1, 2, 4, 3}, c.V)
		assert.Equal(t, []int{3, 2, 1}, c.B)
	})

	t.Run("when enum tag is supplied", func(t *testing.T) {
		type Example struct {
			V string `env:"THE_ENV_KEY" enum:"foo;bar;baz;"`
		}
		t.Run("the value is one of the enumerated", func(t *testing.T) {
			testcase.SetEnv(t, envKey, "bar")
			var c Example
			assert.NoError(t, env.Load(&c))
			assert.Equal(t, "bar", c.V)
		})
		t.Run("the value is not one of the enumerated", func(t *testing.T) {
			testcase.SetEnv(t, envKey, "qux")
			var c Example
			err := env.Load(&c)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, env.ErrInvalidValue))
		})
	})
}

func TestLookup(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("present", func(t *testing.T) {
		exp := rnd.IntB(1, 1000)
		testcase.SetEnv(t, envKey, fmt.Sprint(exp))
		got, ok, err := env.Lookup[int](envKey)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
	})
	t.Run("absent", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		_, ok, err := env.Lookup[int](envKey)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("absent with default", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		got, ok, err := env.Lookup[string](envKey, env.DefaultValue("foo"))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "foo", got)
	})
	t.Run("absent but required", func(t *testing.T) {
		testcase.UnsetEnv(t, envKey)
		_, _, err := env.Lookup[string](envKey, env.Required())
		assert.Error(t, err)
	})
	t.Run("list with separator", func(t *testing.T) {
		testcase.SetEnv(t, envKey, "a|b")
		got, ok, err := env.Lookup[[]string](envKey, env.ListSeparator('|'))
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestSet(t *testing.T) {
	var (
		set env.Set
		a   string
		b   int
	)
	env.SetLookup(&set, &a, "A_KEY")
	env.SetLookup(&set, &b, "B_KEY", env.DefaultValue("42"))

	testcase.SetEnv(t, "A_KEY", "foo")
	testcase.UnsetEnv(t, "B_KEY")
	assert.NoError(t, set.Parse())
	assert.Equal(t, "foo", a)
	assert.Equal(t, 42, b)

	testcase.UnsetEnv(t, "A_KEY")
	assert.Error(t, set.Parse())
}

func TestPresent(t *testing.T) {
	testcase.UnsetEnv(t, "PRESENT_A")
	testcase.UnsetEnv(t, "PRESENT_B")
	assert.False(t, env.Present("PRESENT_A, PRESENT_B"))

	testcase.SetEnv(t, "PRESENT_B", "")
	assert.True(t, env.Present("PRESENT_A, PRESENT_B"), "an empty value is still present")
	assert.False(t, env.Present(""))
}
