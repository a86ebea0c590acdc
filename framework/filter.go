package framework

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters selects tests the way "go test -run" does: each pattern is split on "/" and
// every element is matched against the test name at the same depth.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter reports whether a test should run. A parent test runs if it could still lead to a
// matching subtest; a test is excluded by MustNotMatch only if a pattern matches it at every level.
func (r RegexFilters) AsFilter(id TestID) bool {
	if r.MustMatch.IsDefined() && !r.MustMatch.anyMatchOrPrefix(id) {
		return false
	}
	return !r.MustNotMatch.anyMatchComplete(id)
}

// RegexList is a flag.Value that accumulates patterns from repeated command line parameters.
type RegexList struct {
	patterns []levelPattern
}

type levelPattern struct {
	source string
	levels []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.source+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	p := levelPattern{source: value}
	for _, part := range strings.Split(value, "/") {
		rx, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", part, err)
		}
		p.levels = append(p.levels, rx)
	}
	r.patterns = append(r.patterns, p)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) anyMatchOrPrefix(id TestID) bool {
	for _, p := range r.patterns {
		if p.matchLevels(id) {
			return true
		}
	}
	return false
}

func (r RegexList) anyMatchComplete(id TestID) bool {
	for _, p := range r.patterns {
		if len(id.Path) >= len(p.levels) && p.matchLevels(id) {
			return true
		}
	}
	return false
}

func (p levelPattern) matchLevels(id TestID) bool {
	for i, name := range id.Path {
		if i >= len(p.levels) {
			break
		}
		if !p.levels[i].MatchString(name) {
			return false
		}
	}
	return true
}

// PrintFilterDescription tells the user which tests the filters will leave out.
func PrintFilterDescription(filters RegexFilters, out io.Writer) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(out)
}
