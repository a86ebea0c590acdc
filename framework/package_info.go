// Package framework contains the low-level implementation of contract test infrastructure
// that is not specific to the Person API.
//
// The general model is:
//
// 1. The test harness talks to a service under test through a ServiceClient, which sends
// one HTTP request at a time and returns the status code and body without interpreting them.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Each context has its own debug logger, whose output is only
// shown for tests that failed (or for all tests, if requested).
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests, deciding which responses are acceptable, and providing a domain-specific test API
// on top of the test context.
package framework
