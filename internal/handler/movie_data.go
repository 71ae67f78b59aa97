package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

// omdbRating is one entry of the Ratings list. The catalog holds a single
// rating source, so the list carries at most one element - but it is always
// present, never null.
type omdbRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// omdbMovie is the OMDb-compatible projection: fixed field names, every
// value string-coerced, absent data rendered as empty strings.
type omdbMovie struct {
	Title    string       `json:"Title"`
	Year     string       `json:"Year"`
	Runtime  string       `json:"Runtime"`
	Genre    string       `json:"Genre"`
	Director string       `json:"Director"`
	Writer   string       `json:"Writer"`
	Actors   string       `json:"Actors"`
	Ratings  []omdbRating `json:"Ratings"`
}

// shapeOMDb maps an assembled detail record onto the strict contract. Cast
// names collapse into one comma-separated string in billing order, unlike
// the native detail response which keeps the cast structured.
func shapeOMDb(d model.TitleDetail) omdbMovie {
	out := omdbMovie{
		Title:    d.PrimaryTitle,
		Genre:    d.Genres,
		Director: d.Directors,
		Writer:   d.Writers,
		Ratings:  make([]omdbRating, 0, 1),
	}
	if d.StartYear != nil {
		out.Year = strconv.Itoa(*d.StartYear)
	}
	if d.RuntimeMinutes != nil {
		out.Runtime = strconv.Itoa(*d.RuntimeMinutes) + " min"
	}
	names := make([]string, 0, len(d.Cast))
	for _, e := range d.Cast {
		names = append(names, e.PrimaryName)
	}
	out.Actors = strings.Join(names, ",")
	if d.AverageRating != nil {
		out.Ratings = append(out.Ratings, omdbRating{
			Source: "Internet Movie Database",
			Value:  strconv.FormatFloat(*d.AverageRating, 'f', -1, 64) + "/10",
		})
	}
	return out
}

// GetMovieData handles GET /movies/data/:imdbID, the strict OMDb-compatible
// endpoint. Query parameters are not permitted at all here.
func (h *MovieHandler) GetMovieData(c echo.Context) error {
	if key, found := firstUnexpectedParam(c.Request().URL.RawQuery); found {
		return fail(c, http.StatusBadRequest, invalidParamMessage(key))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	detail, err := h.Titles.GetDetail(ctx, c.Param("imdbID"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Movie not found")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, shapeOMDb(detail))
}
