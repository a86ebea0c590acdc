package persontests

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

// StatusSet is the set of status codes a scenario accepts. Several of the service's error cases
// are only loosely specified, so a single expected code is the exception rather than the rule.
type StatusSet []int

func Status(codes ...int) StatusSet {
	return StatusSet(codes)
}

func (s StatusSet) Contains(code int) bool {
	for _, c := range s {
		if c == code {
			return true
		}
	}
	return false
}

func (s StatusSet) String() string {
	if len(s) == 1 {
		return fmt.Sprintf("%d", s[0])
	}
	codes := make([]string, 0, len(s))
	for _, c := range s {
		codes = append(codes, fmt.Sprintf("%d", c))
	}
	return "one of " + strings.Join(codes, ", ")
}

// listOracle returns the acceptable statuses for a list query: 200 for a query inside the
// parameter domain, and 400 or 500 otherwise.
func listOracle(q servicedef.PageQuery) StatusSet {
	if q.IsValid() {
		return Status(http.StatusOK)
	}
	return Status(http.StatusBadRequest, http.StatusInternalServerError)
}

// RequireStatus fails the test immediately unless the response status is in expected.
func (t *T) RequireStatus(resp Response, expected StatusSet) {
	if !expected.Contains(resp.StatusCode) {
		require.Failf(t, "unexpected status",
			"expected HTTP %s but got %d from %s %s; body: %q",
			expected, resp.StatusCode, resp.Method, resp.URL, string(resp.Body))
	}
}

// RequirePerson checks that the body is a single person and returns it.
func (t *T) RequirePerson(resp Response) servicedef.Person {
	body := t.requireJSON(resp)
	return requirePersonShape(t, body, "response body")
}

// RequirePersonList checks that the body is an array of persons and returns them.
func (t *T) RequirePersonList(resp Response) []servicedef.Person {
	body := t.requireJSON(resp)
	require.True(t, body.IsArray(), "response body should be a JSON array, got: %s", body.Raw)
	items := body.Array()
	ret := make([]servicedef.Person, 0, len(items))
	for i, item := range items {
		ret = append(ret, requirePersonShape(t, item, fmt.Sprintf("item %d", i)))
	}
	return ret
}

// RequireNewID checks that the body of a create response is nothing but the new id.
func (t *T) RequireNewID(resp Response) int64 {
	body := t.requireJSON(resp)
	require.True(t, isJSONInteger(body), "response body should be an integer id, got: %s", body.Raw)
	id := body.Int()
	assert.Greater(t, id, int64(0), "new id should be positive")
	return id
}

func (t *T) requireJSON(resp Response) gjson.Result {
	require.True(t, gjson.ValidBytes(resp.Body), "response body is not valid JSON: %q", string(resp.Body))
	return gjson.ParseBytes(resp.Body)
}

func requirePersonShape(t require.TestingT, r gjson.Result, what string) servicedef.Person {
	require.True(t, r.IsObject(), "%s should be a JSON object, got: %s", what, r.Raw)
	id, name := r.Get("id"), r.Get("name")
	require.True(t, isJSONInteger(id), "%s should have an integer id, got: %s", what, r.Raw)
	require.True(t, name.Type == gjson.String, "%s should have a string name, got: %s", what, r.Raw)
	assert.NotEmpty(t, name.String(), "%s should have a non-empty name", what)
	return servicedef.Person{ID: id.Int(), Name: name.String()}
}

// isJSONInteger is true for a number literal without fraction or exponent. Such a literal might
// still be too large for an int64, but no service assigns ids that large.
func isJSONInteger(r gjson.Result) bool {
	return r.Type == gjson.Number && !strings.ContainsAny(r.Raw, ".eE")
}
