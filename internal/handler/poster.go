package handler

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/middleware"
	"github.com/iliyamo/movie-catalog-api/internal/queue"
)

// PosterBlobStore is the per-user poster persistence, implemented by
// *storage.PosterStore.
type PosterBlobStore interface {
	Save(imdbID, email string, data []byte) error
	Load(imdbID, email string) ([]byte, error)
}

// PosterHandler serves the authenticated poster routes. Publish, when set,
// is invoked after a successful upload; publishing failures are logged and
// never affect the response.
type PosterHandler struct {
	Posters PosterBlobStore
	Publish func(ctx context.Context, ev queue.PosterUploadedEvent) error
}

func NewPosterHandler(p PosterBlobStore) *PosterHandler { return &PosterHandler{Posters: p} }

// GetPoster handles GET /posters/:imdbID. The poster is looked up under the
// authenticated user's identity, so one user can never fetch another's
// upload for the same title. A read failure surfaces as a 500 carrying the
// underlying error message, which is the documented contract for this
// route.
func (h *PosterHandler) GetPoster(c echo.Context) error {
	if key, found := firstUnexpectedParam(c.Request().URL.RawQuery); found {
		return fail(c, http.StatusBadRequest, invalidParamMessage(key))
	}
	email := middleware.Email(c)

	data, err := h.Posters.Load(c.Param("imdbID"), email)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

// UploadPoster handles POST /posters/add/:imdbID with a raw PNG body.
func (h *PosterHandler) UploadPoster(c echo.Context) error {
	if key, found := firstUnexpectedParam(c.Request().URL.RawQuery); found {
		return fail(c, http.StatusBadRequest, invalidParamMessage(key))
	}
	email := middleware.Email(c)

	if ct := c.Request().Header.Get(echo.HeaderContentType); !strings.HasPrefix(ct, "image/png") {
		return fail(c, http.StatusBadRequest, "Only image/png content is accepted.")
	}

	imdbID := c.Param("imdbID")
	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if err := h.Posters.Save(imdbID, email, data); err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	if h.Publish != nil {
		ev := queue.PosterUploadedEvent{
			ImdbID:     imdbID,
			Email:      email,
			SizeBytes:  len(data),
			UploadedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(c.Request().Context(), ev); err != nil {
			log.Printf("poster-upload: publish event failed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Poster Uploaded Successfully",
	})
}
