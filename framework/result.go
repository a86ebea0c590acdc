package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Results holds the outcome of a run. Tests has one entry per scenario, meaning a test with no
// subtests, plus any test excluded by the filter; a group that has subtests is listed only if it
// failed by itself.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r *Results) record(result TestResult, failed bool) {
	r.Tests = append(r.Tests, result)
	switch {
	case result.Skipped:
		r.Skipped = append(r.Skipped, result)
	case failed:
		r.Failures = append(r.Failures, result)
	}
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

// PrintResults writes a summary of the test run.
func PrintResults(results Results, out io.Writer) {
	ran := len(results.Tests) - len(results.Skipped)
	if results.OK() {
		color.New(color.FgGreen, color.Bold).Fprintf(out, "All tests passed")
		fmt.Fprintf(out, " (%d run, %d skipped)\n", ran, len(results.Skipped))
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(out, "FAILED TESTS (%d of %d):\n", len(results.Failures), ran)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s\n", f.TestID)
	}
}
