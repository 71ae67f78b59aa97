package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/movie-catalog-api/internal/model"
)

// searchLimit caps each side of the unified search independently.
const searchLimit = 20

// SearchHandler serves GET /search, fanning one term out to the movie and
// person lookups.
type SearchHandler struct {
	Titles  TitleStore
	Persons PersonStore
}

func NewSearchHandler(t TitleStore, p PersonStore) *SearchHandler {
	return &SearchHandler{Titles: t, Persons: p}
}

// SearchAll runs both lookups concurrently and reports the two result sets
// side by side. There is no merging or ranking across entity kinds; the
// movie and actor collections stay separate with their own counts.
func (h *SearchHandler) SearchAll(c echo.Context) error {
	q := c.QueryParam("q")
	if strings.TrimSpace(q) == "" {
		return fail(c, http.StatusBadRequest, "Query parameter 'q' is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	var movies []model.TitleSummary
	var actors []model.Person

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = h.Titles.SearchBasic(ctx, q, searchLimit)
		return err
	})
	g.Go(func() error {
		var err error
		actors, err = h.Persons.SearchByName(ctx, q, searchLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(c, http.StatusInternalServerError, "query failed")
	}

	if movies == nil {
		movies = make([]model.TitleSummary, 0)
	}
	if actors == nil {
		actors = make([]model.Person, 0)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"query":       q,
		"moviesFound": len(movies),
		"actorsFound": len(actors),
		"movies":      movies,
		"actors":      actors,
	})
}
