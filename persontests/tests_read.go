package persontests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
)

// malformedIDs are path segments that are not valid person ids.
var malformedIDs = []struct {
	name string
	id   string
}{
	{"non-numeric id", "invalid_id"},
	{"negative id", "-1"},
}

func DoReadTests(t *T) {
	t.Run("existing id returns person", func(t *T) {
		existing := t.ExistingPerson()

		resp := t.GetPerson(idString(existing.ID))
		t.RequireStatus(resp, Status(http.StatusOK))
		p := t.RequirePerson(resp)
		assert.Equal(t, existing.ID, p.ID, "returned person has a different id")
	})

	t.Run("absent id returns 404", func(t *T) {
		resp := t.GetPerson(idString(t.AbsentPersonID()))
		t.RequireStatus(resp, Status(http.StatusNotFound))
	})

	for _, m := range malformedIDs {
		t.Run(m.name+" is rejected", func(t *T) {
			resp := t.GetPerson(m.id)
			t.RequireStatus(resp, Status(http.StatusBadRequest, http.StatusNotFound))
		})
	}

	t.Run("created person reads back with its name", func(t *T) {
		t.skipInSeededMode()
		created := t.NewPerson(uniqueName("John Doe New"))

		resp := t.GetPerson(idString(created.ID))
		t.RequireStatus(resp, Status(http.StatusOK))
		assert.Equal(t, created, t.RequirePerson(resp))
	})
}
