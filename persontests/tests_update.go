package persontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

func DoUpdateTests(t *T) {
	t.Run("existing id returns 204", func(t *T) {
		existing := t.ExistingPerson()

		resp := t.UpdatePerson(idString(existing.ID), servicedef.UpdatePersonParams{
			ID:   existing.ID,
			Name: "John Doe Updated",
		})
		t.RequireStatus(resp, Status(http.StatusNoContent))
	})

	t.Run("absent id returns 404", func(t *T) {
		absent := t.AbsentPersonID()

		resp := t.UpdatePerson(idString(absent), servicedef.UpdatePersonParams{
			ID:   absent,
			Name: "Non-existent Person",
		})
		t.RequireStatus(resp, Status(http.StatusNotFound))
	})

	t.Run("mismatched ids are rejected", func(t *T) {
		existing := t.ExistingPerson()

		resp := t.UpdatePerson(idString(existing.ID), servicedef.UpdatePersonParams{
			ID:   existing.ID + 1,
			Name: "Mismatched ID",
		})
		t.RequireStatus(resp, Status(http.StatusBadRequest, http.StatusUnprocessableEntity))
	})

	t.Run("invalid field types are rejected", func(t *T) {
		existing := t.ExistingPerson()

		body := ldvalue.ObjectBuild().
			Set("id", ldvalue.String("not an integer")).
			Set("name", ldvalue.Int(12345)).
			Build()
		resp := t.UpdatePerson(idString(existing.ID), body)
		t.RequireStatus(resp, Status(http.StatusBadRequest, http.StatusUnprocessableEntity))
	})

	t.Run("updated name reads back", func(t *T) {
		existing := t.ExistingPerson()
		updated := servicedef.Person{ID: existing.ID, Name: uniqueName("John Doe Updated")}

		resp := t.UpdatePerson(idString(existing.ID), servicedef.UpdatePersonParams(updated))
		t.RequireStatus(resp, Status(http.StatusNoContent))

		resp = t.GetPerson(idString(existing.ID))
		t.RequireStatus(resp, Status(http.StatusOK))
		assert.Equal(t, updated, t.RequirePerson(resp))
	})
}
