package zerokit_test

import (
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/lazytake/pkg/zerokit"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "", zerokit.Coalesce[string]())
	assert.Equal(t, "foo", zerokit.Coalesce("", "foo", "bar"))
	assert.Equal(t, 42, zerokit.Coalesce(0, 0, 42))
}
