package handler

import (
	"context"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// pagination is the metadata block of the strict search response. From/To
// are row offsets: From is the page's starting offset and To is From plus
// the number of rows actually returned, so a short final page reports its
// real extent.
type pagination struct {
	Total       int64 `json:"total"`
	LastPage    int64 `json:"lastPage"`
	PerPage     int   `json:"perPage"`
	CurrentPage int   `json:"currentPage"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

func paginate(total int64, page, returned int) pagination {
	perPage := repository.SearchPageSize
	offset := (page - 1) * perPage
	lastPage := (total + int64(perPage) - 1) / int64(perPage)
	return pagination{
		Total:       total,
		LastPage:    lastPage,
		PerPage:     perPage,
		CurrentPage: page,
		From:        offset,
		To:          offset + returned,
	}
}

// SearchMovies handles GET /movies/search, the strict paginated search.
// Title is required, year must be exactly four digits when present, and any
// other query parameter fails the request before a lookup happens.
func (h *MovieHandler) SearchMovies(c echo.Context) error {
	if key, found := firstUnexpectedParam(c.Request().URL.RawQuery, "title", "year", "page"); found {
		return fail(c, http.StatusBadRequest, invalidParamMessage(key))
	}

	title := c.QueryParam("title")
	if title == "" {
		return fail(c, http.StatusBadRequest, "Title query parameter is required.")
	}
	year := c.QueryParam("year")
	if year != "" && !yearPattern.MatchString(year) {
		return fail(c, http.StatusBadRequest, "Invalid year format. Format must be yyyy.")
	}
	page := intParam(c.QueryParam("page"), 1)
	if page < 1 {
		page = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	hits, total, err := h.Titles.Search(ctx, title, year, page)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	if hits == nil {
		hits = make([]model.SearchHit, 0)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":       hits,
		"pagination": paginate(total, page, len(hits)),
	})
}
