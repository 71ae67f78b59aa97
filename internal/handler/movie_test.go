package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

// fakeTitleStore records the arguments of the last call and serves canned
// results, so handler behavior is tested without a database.
type fakeTitleStore struct {
	lastList   repository.TitleFilter
	listOut    []model.TitleSummary
	detailOut  model.TitleDetail
	detailErr  error
	hits       []model.SearchHit
	total      int64
	lastTitle  string
	lastYear   string
	lastPage   int
	basicTerm  string
	basicLimit int
	err        error
}

func (f *fakeTitleStore) List(_ context.Context, q repository.TitleFilter) ([]model.TitleSummary, error) {
	f.lastList = q
	return f.listOut, f.err
}

func (f *fakeTitleStore) GetDetail(_ context.Context, tconst string) (model.TitleDetail, error) {
	if f.detailErr != nil {
		return model.TitleDetail{}, f.detailErr
	}
	return f.detailOut, nil
}

func (f *fakeTitleStore) Search(_ context.Context, title, year string, page int) ([]model.SearchHit, int64, error) {
	f.lastTitle, f.lastYear, f.lastPage = title, year, page
	return f.hits, f.total, f.err
}

func (f *fakeTitleStore) SearchBasic(_ context.Context, term string, limit int) ([]model.TitleSummary, error) {
	f.basicTerm, f.basicLimit = term, limit
	return f.listOut, f.err
}

// newGetContext builds an echo context for a GET request against target,
// returning the recorder capturing the response.
func newGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return body
}

func TestGetAllMoviesDefaults(t *testing.T) {
	store := &fakeTitleStore{listOut: []model.TitleSummary{{Tconst: "tt0000001"}}}
	h := NewMovieHandler(store)

	c, rec := newGetContext("/movies")
	if err := h.GetAllMovies(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if store.lastList.Limit != 20 || store.lastList.Offset != 0 {
		t.Errorf("defaults = limit %d offset %d, want 20/0", store.lastList.Limit, store.lastList.Offset)
	}
	body := decodeBody(t, rec)
	if body["count"].(float64) != 1 {
		t.Errorf("count = %v, want 1", body["count"])
	}
}

func TestGetAllMoviesPassesFilters(t *testing.T) {
	store := &fakeTitleStore{}
	h := NewMovieHandler(store)

	c, _ := newGetContext("/movies?title=heat&year=1995&limit=500&offset=40")
	if err := h.GetAllMovies(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	got := store.lastList
	if got.Title != "heat" || got.Year != "1995" {
		t.Errorf("filters = %q/%q, want heat/1995", got.Title, got.Year)
	}
	// The generic listing does not cap limit.
	if got.Limit != 500 || got.Offset != 40 {
		t.Errorf("pagination = %d/%d, want 500/40", got.Limit, got.Offset)
	}
}

func TestGetMovieByIDNotFound(t *testing.T) {
	store := &fakeTitleStore{detailErr: repository.ErrNotFound}
	h := NewMovieHandler(store)

	c, rec := newGetContext("/movies/tt9999999")
	c.SetPath("/movies/:tconst")
	c.SetParamNames("tconst")
	c.SetParamValues("tt9999999")

	if err := h.GetMovieByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != true || body["message"] != "Movie not found" {
		t.Errorf("body = %v", body)
	}
}

func TestGetMovieByIDKeepsCastOrder(t *testing.T) {
	store := &fakeTitleStore{detailOut: model.TitleDetail{
		Tconst:       "tt0111161",
		PrimaryTitle: "The Shawshank Redemption",
		Cast: []model.CastEntry{
			{Nconst: "nm0000209", PrimaryName: "Tim Robbins"},
			{Nconst: "nm0000151", PrimaryName: "Morgan Freeman"},
			{Nconst: "nm0348409", PrimaryName: "Bob Gunton"},
		},
	}}
	h := NewMovieHandler(store)

	c, rec := newGetContext("/movies/tt0111161")
	c.SetPath("/movies/:tconst")
	c.SetParamNames("tconst")
	c.SetParamValues("tt0111161")

	if err := h.GetMovieByID(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var got model.TitleDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}
	for i, name := range want {
		if got.Cast[i].PrimaryName != name {
			t.Fatalf("cast[%d] = %q, want %q", i, got.Cast[i].PrimaryName, name)
		}
	}
}
