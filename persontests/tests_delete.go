package persontests

import (
	"net/http"
)

func DoDeleteTests(t *T) {
	t.Run("existing id returns 200", func(t *T) {
		existing := t.ExistingPerson()

		resp := t.DeletePerson(idString(existing.ID))
		t.RequireStatus(resp, Status(http.StatusOK))
	})

	// The service answers a delete of a missing person with 409, not 404.
	t.Run("absent id returns 409", func(t *T) {
		resp := t.DeletePerson(idString(t.AbsentPersonID()))
		t.RequireStatus(resp, Status(http.StatusConflict))
	})

	for _, m := range malformedIDs {
		t.Run(m.name+" is rejected", func(t *T) {
			resp := t.DeletePerson(m.id)
			t.RequireStatus(resp, Status(http.StatusBadRequest, http.StatusConflict))
		})
	}

	t.Run("deleted person no longer reads back", func(t *T) {
		t.skipInSeededMode()
		created := t.NewPerson(uniqueName("John Doe"))

		resp := t.DeletePerson(idString(created.ID))
		t.RequireStatus(resp, Status(http.StatusOK))

		resp = t.GetPerson(idString(created.ID))
		t.RequireStatus(resp, Status(http.StatusNotFound))
	})
}
