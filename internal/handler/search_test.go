package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

type fakePersonStore struct {
	listOut    []model.Person
	getOut     model.Person
	getErr     error
	searchOut  []model.Person
	lastTerm   string
	lastLimit  int
	err        error
}

func (f *fakePersonStore) List(_ context.Context, limit int) ([]model.Person, error) {
	f.lastLimit = limit
	return f.listOut, f.err
}

func (f *fakePersonStore) GetByID(_ context.Context, nconst string) (model.Person, error) {
	if f.getErr != nil {
		return model.Person{}, f.getErr
	}
	return f.getOut, nil
}

func (f *fakePersonStore) SearchByName(_ context.Context, term string, limit int) ([]model.Person, error) {
	f.lastTerm, f.lastLimit = term, limit
	return f.searchOut, f.err
}

func TestSearchAllRequiresQuery(t *testing.T) {
	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		t.Run(target, func(t *testing.T) {
			h := NewSearchHandler(&fakeTitleStore{}, &fakePersonStore{})
			c, rec := newGetContext(target)
			if err := h.SearchAll(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			body := decodeBody(t, rec)
			if body["error"] != true || body["message"] != "Query parameter 'q' is required" {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestSearchAllFansOutToBothStores(t *testing.T) {
	titles := &fakeTitleStore{listOut: []model.TitleSummary{
		{Tconst: "tt0000001", PrimaryTitle: "Carmencita"},
		{Tconst: "tt0000002", PrimaryTitle: "Le clown et ses chiens"},
	}}
	persons := &fakePersonStore{searchOut: []model.Person{
		{Nconst: "nm0000001", PrimaryName: "Fred Astaire"},
	}}
	h := NewSearchHandler(titles, persons)

	c, rec := newGetContext("/search?q=car")
	if err := h.SearchAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if titles.basicTerm != "car" || titles.basicLimit != 20 {
		t.Errorf("movie lookup = %q/%d, want car/20", titles.basicTerm, titles.basicLimit)
	}
	if persons.lastTerm != "car" || persons.lastLimit != 20 {
		t.Errorf("person lookup = %q/%d, want car/20", persons.lastTerm, persons.lastLimit)
	}

	body := decodeBody(t, rec)
	if body["query"] != "car" {
		t.Errorf("query echo = %v", body["query"])
	}
	if body["moviesFound"].(float64) != 2 || body["actorsFound"].(float64) != 1 {
		t.Errorf("counts = %v/%v, want 2/1", body["moviesFound"], body["actorsFound"])
	}
}

func TestSearchAllEmptyResultsAreLists(t *testing.T) {
	h := NewSearchHandler(&fakeTitleStore{}, &fakePersonStore{})
	c, rec := newGetContext("/search?q=zzzz")
	if err := h.SearchAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := decodeBody(t, rec)
	if _, ok := body["movies"].([]any); !ok {
		t.Errorf("movies is %T, want JSON array", body["movies"])
	}
	if _, ok := body["actors"].([]any); !ok {
		t.Errorf("actors is %T, want JSON array", body["actors"])
	}
}

func TestGetActorByIDNotFound(t *testing.T) {
	h := NewActorHandler(&fakePersonStore{getErr: repository.ErrNotFound})
	c, rec := newGetContext("/actors/nm9999999")
	c.SetPath("/actors/:id")
	c.SetParamNames("id")
	c.SetParamValues("nm9999999")

	if err := h.GetActorByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["message"] != "Actor not found" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestGetAllActorsCapsAtFifty(t *testing.T) {
	store := &fakePersonStore{listOut: []model.Person{{Nconst: "nm0000001"}}}
	h := NewActorHandler(store)
	c, rec := newGetContext("/actors")
	if err := h.GetAllActors(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if store.lastLimit != 50 {
		t.Errorf("list limit = %d, want 50", store.lastLimit)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", body["count"])
	}
}
