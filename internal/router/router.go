// Package router wires the HTTP routes onto an Echo instance. Public read
// routes carry the cache and rate-limit middleware; the poster routes sit
// behind bearer-token authentication.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/handler"
	"github.com/iliyamo/movie-catalog-api/internal/middleware"
)

// Handlers groups everything the router needs to register the API surface.
type Handlers struct {
	Movies  *handler.MovieHandler
	Actors  *handler.ActorHandler
	Search  *handler.SearchHandler
	Auth    *handler.AuthHandler
	Posters *handler.PosterHandler
}

// Register mounts all routes. The extra middlewares (cache, rate limit) are
// passed in already constructed so this package stays free of Redis
// concerns; either may be a pass-through when Redis is unavailable.
func Register(e *echo.Echo, h Handlers, jwtSecret string, extra ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	public := e.Group("", extra...)

	// Movie routes. The static /movies/search and /movies/data prefixes are
	// registered before the /movies/:tconst wildcard; Echo resolves static
	// segments first either way.
	public.GET("/movies", h.Movies.GetAllMovies)
	public.GET("/movies/search", h.Movies.SearchMovies)
	public.GET("/movies/data/:imdbID", h.Movies.GetMovieData)
	public.GET("/movies/:tconst", h.Movies.GetMovieByID)

	public.GET("/actors", h.Actors.GetAllActors)
	public.GET("/actors/:id", h.Actors.GetActorByID)

	public.GET("/search", h.Search.SearchAll)

	e.POST("/user/register", h.Auth.Register)
	e.POST("/user/login", h.Auth.Login)

	// Poster routes require a valid bearer token; the middleware stores the
	// token's email claim for the handlers.
	posters := e.Group("/posters", middleware.JWTAuth(jwtSecret))
	posters.GET("/:imdbID", h.Posters.GetPoster)
	posters.POST("/add/:imdbID", h.Posters.UploadPoster)
}
