package persontests

import (
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

// The service reports every validation failure on create as 500, while update uses 400/422.
// These scenarios check for exactly that.
func DoCreateTests(t *T) {
	t.Run("valid name returns new id", func(t *T) {
		resp := t.CreatePerson(servicedef.CreatePersonParams{Name: "John Doe New"})
		t.RequireStatus(resp, Status(http.StatusCreated))
		t.RequireNewID(resp)
	})

	invalidBodies := []struct {
		name string
		body interface{}
	}{
		{
			"invalid field types",
			ldvalue.ObjectBuild().
				Set("id", ldvalue.String("not an integer")).
				Set("name", ldvalue.Int(12345)).
				Build(),
		},
		{"missing required fields", ldvalue.ObjectBuild().Build()},
		{"empty name", servicedef.CreatePersonParams{Name: ""}},
	}
	for _, b := range invalidBodies {
		t.Run(b.name, func(t *T) {
			resp := t.CreatePerson(b.body)
			t.RequireStatus(resp, Status(http.StatusInternalServerError))
		})
	}

	// Whether unknown fields are ignored or rejected is up to the service.
	t.Run("extra fields", func(t *T) {
		body := ldvalue.ObjectBuild().
			Set("name", ldvalue.String("John Doe")).
			Set("extra_field", ldvalue.String("extra value")).
			Build()
		resp := t.CreatePerson(body)
		t.RequireStatus(resp, Status(http.StatusCreated, http.StatusInternalServerError))
		if resp.StatusCode == http.StatusCreated {
			t.RequireNewID(resp)
		}
	})
}
