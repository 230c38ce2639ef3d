package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
//
// The "Make" function should be called only once per test
// and must provide a fresh value that the contract may freely consume.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract is a reusable behavioural test suite for an interface.
// Every implementation runs the same Contract to prove it keeps the promises its consumers rely on.
type Contract interface {
	testcase.Suite
	// Test asserts the behaviour against an implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
