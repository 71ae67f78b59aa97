package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

// TitleStore is the movie-side data access the handlers need. It is
// implemented by *repository.TitleRepo.
type TitleStore interface {
	List(ctx context.Context, q repository.TitleFilter) ([]model.TitleSummary, error)
	GetDetail(ctx context.Context, tconst string) (model.TitleDetail, error)
	Search(ctx context.Context, title, year string, page int) ([]model.SearchHit, int64, error)
	SearchBasic(ctx context.Context, term string, limit int) ([]model.TitleSummary, error)
}

// MovieHandler serves the /movies routes.
type MovieHandler struct {
	Titles TitleStore
}

func NewMovieHandler(t TitleStore) *MovieHandler { return &MovieHandler{Titles: t} }

// GetAllMovies handles GET /movies. Title and year filters are optional and
// unvalidated here; limit/offset default to 20/0. No upper bound is applied
// to limit - the strict search endpoint is the one with a fixed page size,
// and the two are documented as intentionally asymmetric.
func (h *MovieHandler) GetAllMovies(c echo.Context) error {
	q := repository.TitleFilter{
		Title:  c.QueryParam("title"),
		Year:   c.QueryParam("year"),
		Limit:  intParam(c.QueryParam("limit"), 20),
		Offset: intParam(c.QueryParam("offset"), 0),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	results, err := h.Titles.List(ctx, q)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(results),
		"results": results,
	})
}

// GetMovieByID handles GET /movies/:tconst, returning the assembled detail
// record with crew fields and the billing-ordered cast.
func (h *MovieHandler) GetMovieByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	detail, err := h.Titles.GetDetail(ctx, c.Param("tconst"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Movie not found")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, detail)
}

// intParam parses a decimal query value, falling back to def when the value
// is absent, malformed or negative.
func intParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
