package persontests

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

// ExistingPerson returns a person the test may read, update or delete. With a seeded id configured
// that is the seeded person, whose name is not known here. Otherwise a new person is created for
// this test alone, and deleted again when the test ends.
func (t *T) ExistingPerson() servicedef.Person {
	if seeded := t.env.opts.SeededPersonID; seeded != 0 {
		t.Debug("Using seeded person %d", seeded)
		return servicedef.Person{ID: seeded}
	}
	return t.NewPerson(uniqueName("John Doe"))
}

// NewPerson creates a person with the given name and fails the test if the service does not
// accept it. The person is deleted when the test ends.
func (t *T) NewPerson(name string) servicedef.Person {
	resp := t.CreatePerson(servicedef.CreatePersonParams{Name: name})
	t.RequireStatus(resp, Status(http.StatusCreated))
	return servicedef.Person{ID: t.RequireNewID(resp), Name: name}
}

// skipInSeededMode skips a scenario that needs persons of its own besides the existing one. In
// seeded mode the suite only creates persons in the create scenarios.
func (t *T) skipInSeededMode() {
	if t.env.opts.SeededPersonID != 0 {
		t.SkipWithReason("creates its own persons, which is not done with a seeded person")
	}
}

// uniqueName keeps fixtures from different runs apart in a service that is not reset in between.
func uniqueName(prefix string) string {
	return prefix + " " + uuid.NewString()[:8]
}
