// Package servicedef defines the JSON shapes exchanged with the Person service.
package servicedef

import (
	"net/url"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	PersonsPath = "/person"

	// Defaults the service applies when a list query leaves a parameter out.
	DefaultPage = 0
	DefaultSize = 10
	DefaultSort = SortAscending
)

// Person is the only resource the service manages.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreatePersonParams struct {
	Name string `json:"name"`
}

// UpdatePersonParams is the PUT body. ID has to repeat the id from the request path.
type UpdatePersonParams struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

func (s SortDirection) IsValid() bool {
	return s == SortAscending || s == SortDescending
}

// PageQuery holds the optional query parameters of GET /person. Parameters that are not set
// are left out of the query string.
type PageQuery struct {
	Page ldvalue.OptionalInt
	Size ldvalue.OptionalInt
	Sort SortDirection
}

// IsValid reports whether every parameter that is set lies in the range the service accepts.
func (q PageQuery) IsValid() bool {
	if page, ok := q.Page.Get(); ok && page < 0 {
		return false
	}
	if size, ok := q.Size.Get(); ok && size < 1 {
		return false
	}
	return q.Sort == "" || q.Sort.IsValid()
}

// EffectiveSize is the maximum number of items the service may return for this query.
func (q PageQuery) EffectiveSize() int {
	return q.Size.OrElse(DefaultSize)
}

func (q PageQuery) EffectiveSort() SortDirection {
	if q.Sort == "" {
		return DefaultSort
	}
	return q.Sort
}

// Next returns the query for the following page.
func (q PageQuery) Next() PageQuery {
	q.Page = ldvalue.NewOptionalInt(q.Page.OrElse(DefaultPage) + 1)
	return q
}

func (q PageQuery) Values() url.Values {
	v := make(url.Values)
	if page, ok := q.Page.Get(); ok {
		v.Set("page", strconv.Itoa(page))
	}
	if size, ok := q.Size.Get(); ok {
		v.Set("size", strconv.Itoa(size))
	}
	if q.Sort != "" {
		v.Set("sort", string(q.Sort))
	}
	return v
}

func (q PageQuery) String() string {
	if enc := q.Values().Encode(); enc != "" {
		return enc
	}
	return "(defaults)"
}

// PersonPath returns the path of a single person. The id is taken as a string so that malformed
// ids can be sent on purpose.
func PersonPath(id string) string {
	return PersonsPath + "/" + url.PathEscape(id)
}

func PersonPathForID(id int64) string {
	return PersonPath(strconv.FormatInt(id, 10))
}
