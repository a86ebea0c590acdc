// Package persontests contains the Person API contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the Person API, such as test contexts,
// filtering and the HTTP client for the service, is in the lower-level framework package.
package persontests
