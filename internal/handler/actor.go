package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/model"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
)

// actorListLimit caps the unfiltered browse listing.
const actorListLimit = 50

// PersonStore is the actor-side data access, implemented by
// *repository.PersonRepo.
type PersonStore interface {
	List(ctx context.Context, limit int) ([]model.Person, error)
	GetByID(ctx context.Context, nconst string) (model.Person, error)
	SearchByName(ctx context.Context, term string, limit int) ([]model.Person, error)
}

// ActorHandler serves the /actors routes.
type ActorHandler struct {
	Persons PersonStore
}

func NewActorHandler(p PersonStore) *ActorHandler { return &ActorHandler{Persons: p} }

// GetAllActors handles GET /actors: the first 50 people, unfiltered.
func (h *ActorHandler) GetAllActors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	results, err := h.Persons.List(ctx, actorListLimit)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(results),
		"results": results,
	})
}

// GetActorByID handles GET /actors/:id.
func (h *ActorHandler) GetActorByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Persons.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Actor not found")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, p)
}
