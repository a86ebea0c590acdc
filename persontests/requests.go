package persontests

import (
	"net/http"
	"strconv"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tcs-vetclinic/person-contract-tests/framework"
	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

// Response is one response from the Person service.
type Response struct {
	framework.ServiceResponse
}

// JSON parses the body. An invalid body gives a Result that does not exist.
func (r Response) JSON() gjson.Result {
	if !gjson.ValidBytes(r.Body) {
		return gjson.Result{}
	}
	return gjson.ParseBytes(r.Body)
}

// GetPerson sends GET /person/{id}.
func (t *T) GetPerson(id string) Response {
	return t.send(framework.ServiceRequest{Method: http.MethodGet, Path: servicedef.PersonPath(id)})
}

// ListPersons sends GET /person with whichever query parameters are set in q.
func (t *T) ListPersons(q servicedef.PageQuery) Response {
	return t.send(framework.ServiceRequest{
		Method: http.MethodGet,
		Path:   servicedef.PersonsPath,
		Query:  q.Values(),
	})
}

// CreatePerson sends POST /person with any JSON-serializable body. If the service reports that it
// created a person, that person is deleted again when the test ends.
func (t *T) CreatePerson(body interface{}) Response {
	resp := t.send(framework.ServiceRequest{
		Method: http.MethodPost,
		Path:   servicedef.PersonsPath,
		Body:   body,
	})
	if resp.StatusCode == http.StatusCreated {
		if id := resp.JSON(); isJSONInteger(id) {
			created := id.Int()
			t.Defer(func() { t.deleteQuietly(created) })
		}
	}
	return resp
}

// UpdatePerson sends PUT /person/{id} with any JSON-serializable body.
func (t *T) UpdatePerson(id string, body interface{}) Response {
	return t.send(framework.ServiceRequest{
		Method: http.MethodPut,
		Path:   servicedef.PersonPath(id),
		Body:   body,
	})
}

// DeletePerson sends DELETE /person/{id}.
func (t *T) DeletePerson(id string) Response {
	return t.send(framework.ServiceRequest{Method: http.MethodDelete, Path: servicedef.PersonPath(id)})
}

func (t *T) send(r framework.ServiceRequest) Response {
	resp, err := t.env.service.Do(r, t.DebugLogger())
	require.NoError(t, err, "request to the service failed")
	return Response{resp}
}

// deleteQuietly removes a person created during the test. Its outcome does not affect the
// result, since the test may already have deleted the person itself.
func (t *T) deleteQuietly(id int64) {
	resp, err := t.env.service.Do(framework.ServiceRequest{
		Method: http.MethodDelete,
		Path:   servicedef.PersonPathForID(id),
	}, t.DebugLogger())
	if err != nil {
		t.Debug("Cleanup of person %d failed: %s", id, err)
		return
	}
	t.Debug("Cleanup of person %d returned HTTP %d", id, resp.StatusCode)
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}
