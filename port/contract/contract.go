package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
// A contract receives it instead of a ready made value,
// so every test case works against a fresh, independent subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a behavioral specification for a role interface.
//
// Any expectation a consumer holds towards a capability implementation
// should be defined in a contract, so every implementation can be verified
// against the same behavioral requirements regardless of how it is built.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on an implementation.
	Test(*testing.T)
	// Benchmark measures the performance aspects the consumer cares about.
	Benchmark(*testing.B)
}
