package persontests

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/tcs-vetclinic/person-contract-tests/servicedef"
)

// fakePersonService behaves like the real service, including its choice of status codes. The
// fields ending in Status can be changed to simulate a service that breaks the contract.
type fakePersonService struct {
	persons map[int64]string
	lastID  int64
	lock    sync.Mutex

	createValidationStatus int
	deleteAbsentStatus     int
	ignoreSize             bool
	ignoreBodyID           bool
}

func newFakePersonService() *fakePersonService {
	return &fakePersonService{
		persons:                make(map[int64]string),
		createValidationStatus: http.StatusInternalServerError,
		deleteAbsentStatus:     http.StatusConflict,
	}
}

func (f *fakePersonService) seed(name string) int64 {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.lastID++
	f.persons[f.lastID] = name
	return f.lastID
}

func (f *fakePersonService) count() int {
	f.lock.Lock()
	defer f.lock.Unlock()
	return len(f.persons)
}

func (f *fakePersonService) handler() http.Handler {
	r := chi.NewRouter()
	r.Route("/api/person", func(r chi.Router) {
		r.Get("/", f.list)
		r.Post("/", f.create)
		r.Get("/{id}", f.get)
		r.Put("/{id}", f.update)
		r.Delete("/{id}", f.delete)
	})
	return r
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id >= 0
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func queryInt(r *http.Request, name string, def int) (int, bool) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func (f *fakePersonService) list(w http.ResponseWriter, r *http.Request) {
	page, pageOK := queryInt(r, "page", servicedef.DefaultPage)
	size, sizeOK := queryInt(r, "size", servicedef.DefaultSize)
	if !pageOK || !sizeOK {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	direction := servicedef.SortDirection(r.URL.Query().Get("sort"))
	if direction == "" {
		direction = servicedef.DefaultSort
	}
	if page < 0 || size < 1 || !direction.IsValid() {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	f.lock.Lock()
	all := make([]servicedef.Person, 0, len(f.persons))
	for id, name := range f.persons {
		all = append(all, servicedef.Person{ID: id, Name: name})
	}
	f.lock.Unlock()

	sort.Slice(all, func(i, j int) bool {
		if direction == servicedef.SortDescending {
			return all[i].ID > all[j].ID
		}
		return all[i].ID < all[j].ID
	})
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if f.ignoreSize || end > len(all) {
		end = len(all)
	}
	writeJSON(w, http.StatusOK, all[start:end])
}

func (f *fakePersonService) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.lock.Lock()
	name, found := f.persons[id]
	f.lock.Unlock()
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, servicedef.Person{ID: id, Name: name})
}

func (f *fakePersonService) create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == nil || *body.Name == "" {
		w.WriteHeader(f.createValidationStatus)
		return
	}
	writeJSON(w, http.StatusCreated, f.seed(*body.Name))
}

func (f *fakePersonService) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var body struct {
		ID   *int64  `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ID == nil || body.Name == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if *body.ID != id && !f.ignoreBodyID {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	f.lock.Lock()
	defer f.lock.Unlock()
	if _, found := f.persons[id]; !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	f.persons[id] = *body.Name
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakePersonService) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.lock.Lock()
	defer f.lock.Unlock()
	if _, found := f.persons[id]; !found {
		w.WriteHeader(f.deleteAbsentStatus)
		return
	}
	delete(f.persons, id)
	w.WriteHeader(http.StatusOK)
}
