package persontests

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

func pageQuery(page, size int, sort servicedef.SortDirection) servicedef.PageQuery {
	return servicedef.PageQuery{
		Page: ldvalue.NewOptionalInt(page),
		Size: ldvalue.NewOptionalInt(size),
		Sort: sort,
	}
}

func DoListTests(t *T) {
	t.Run("default parameters", func(t *T) {
		q := servicedef.PageQuery{}
		resp := t.ListPersons(q)
		t.RequireStatus(resp, Status(http.StatusOK))
		persons := t.RequirePersonList(resp)
		assert.LessOrEqual(t, len(persons), q.EffectiveSize(), "more items than the default page size")
	})

	pages := []struct {
		name  string
		query servicedef.PageQuery
	}{
		{"first page descending", pageQuery(0, 5, servicedef.SortDescending)},
		{"second page ascending", pageQuery(1, 5, servicedef.SortAscending)},
		{"invalid pagination is rejected", pageQuery(-1, -5, "INVALID")},
		{"large page size", pageQuery(0, 1000, servicedef.SortAscending)},
	}
	for _, p := range pages {
		t.Run(p.name, func(t *T) {
			resp := t.ListPersons(p.query)
			t.RequireStatus(resp, listOracle(p.query))
			if !p.query.IsValid() {
				return
			}
			persons := t.RequirePersonList(resp)
			assert.LessOrEqual(t, len(persons), p.query.EffectiveSize(), "more items than the page size")
		})
	}

	for _, sort := range []servicedef.SortDirection{servicedef.SortAscending, servicedef.SortDescending} {
		q := pageQuery(0, 1000, sort)
		t.Run(fmt.Sprintf("%s sort orders by id", sort), func(t *T) {
			t.skipInSeededMode()
			t.NewPerson(uniqueName("John Doe"))
			t.NewPerson(uniqueName("John Doe"))

			resp := t.ListPersons(q)
			t.RequireStatus(resp, Status(http.StatusOK))
			ids := personIDs(t.RequirePersonList(resp))
			if q.EffectiveSort() == servicedef.SortAscending {
				assert.IsIncreasing(t, ids)
			} else {
				assert.IsDecreasing(t, ids)
			}
		})
	}

	t.Run("consecutive pages do not overlap", func(t *T) {
		t.skipInSeededMode()
		for i := 0; i < 3; i++ {
			t.NewPerson(uniqueName("John Doe"))
		}

		first := pageQuery(0, 2, servicedef.SortAscending)
		resp := t.ListPersons(first)
		t.RequireStatus(resp, Status(http.StatusOK))
		firstIDs := personIDs(t.RequirePersonList(resp))

		resp = t.ListPersons(first.Next())
		t.RequireStatus(resp, Status(http.StatusOK))
		secondIDs := personIDs(t.RequirePersonList(resp))

		assert.NotEmpty(t, secondIDs, "second page should not be empty with at least three persons stored")
		for _, id := range secondIDs {
			assert.NotContains(t, firstIDs, id, "id %d is on both pages", id)
		}
	})
}

func personIDs(persons []servicedef.Person) []int64 {
	ids := make([]int64, 0, len(persons))
	for _, p := range persons {
		ids = append(ids, p.ID)
	}
	return ids
}
