package persontests

import (
	"github.com/tcs-vetclinic/person-contract-tests/framework"
)

// DefaultAbsentPersonID is the id that scenarios assume the service does not have, unless
// Options says otherwise.
const DefaultAbsentPersonID = 99999

// Options adjusts the suite to the data in the service under test.
type Options struct {
	// AbsentPersonID is an id the service does not have. Zero means DefaultAbsentPersonID.
	AbsentPersonID int64

	// SeededPersonID, if non-zero, is an existing person that scenarios may read, update and
	// delete. If it is zero, each scenario that needs an existing person creates its own.
	SeededPersonID int64
}

type environment struct {
	service *framework.ServiceClient
	opts    Options
}

// T represents a test or subtest in the Person API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with debug logging that is only shown when it is useful.
// Those features are provided by the lower-level framework package.
//
// It also knows how to talk to the Person service. Its request methods fail the test immediately
// if the service could not be reached at all; what counts as a correct response is decided by
// the Require methods and by the scenarios themselves.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it
// were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Defer schedules a function to run when the test ends, in last-in-first-out order.
func (t *T) Defer(fn func()) {
	t.context.Defer(fn)
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// AbsentPersonID returns an id that the service is assumed not to have.
func (t *T) AbsentPersonID() int64 {
	if t.env.opts.AbsentPersonID != 0 {
		return t.env.opts.AbsentPersonID
	}
	return DefaultAbsentPersonID
}
