package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog-api/internal/config"
	"github.com/iliyamo/movie-catalog-api/internal/database"
	"github.com/iliyamo/movie-catalog-api/internal/handler"
	"github.com/iliyamo/movie-catalog-api/internal/middleware"
	"github.com/iliyamo/movie-catalog-api/internal/queue"
	"github.com/iliyamo/movie-catalog-api/internal/repository"
	"github.com/iliyamo/movie-catalog-api/internal/router"
	queue_publisher "github.com/iliyamo/movie-catalog-api/internal/service"
	"github.com/iliyamo/movie-catalog-api/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	posters, err := storage.NewPosterStore(cfg.PosterDir)
	if err != nil {
		log.Fatalf("poster store: %v", err)
	}

	titles := repository.NewTitleRepo(db)
	persons := repository.NewPersonRepo(db)
	users := repository.NewUserRepo(db)

	posterHandler := handler.NewPosterHandler(posters)
	posterHandler.Publish = queue_publisher.PublishPosterUploaded

	h := router.Handlers{
		Movies:  handler.NewMovieHandler(titles),
		Actors:  handler.NewActorHandler(persons),
		Search:  handler.NewSearchHandler(titles, persons),
		Auth:    handler.NewAuthHandler(cfg, users),
		Posters: posterHandler,
	}

	// Redis is optional: a nil client turns both middlewares into
	// pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}
	extra := []echo.MiddlewareFunc{
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	// Background consumer keeps its own connection and reconnect loop.
	go func() {
		if err := queue.StartPosterConsumer(); err != nil {
			log.Printf("poster consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, extra...)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
