package main

import (
	"log"

	"garagehub/internal/config"
	"garagehub/internal/database"
	"garagehub/internal/geocode"
	"garagehub/internal/middleware"
	"garagehub/internal/modules/auth"
	"garagehub/internal/modules/forum"
	"garagehub/internal/modules/garage"
	"garagehub/internal/modules/part"
	"garagehub/internal/modules/review"
	jwtsvc "garagehub/internal/pkg/jwt"
	"garagehub/internal/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	garageRepo := repository.NewGarageRepository(db)
	partRepo := repository.NewPartRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	forumRepo := repository.NewForumRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	geocoder := geocode.NewClient(cfg.GeocoderURL, cfg.GeocoderTimeout)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	garageService := garage.NewService(garageRepo, geocoder)
	garageHandler := garage.NewHandler(garageService)

	partHandler := part.NewHandler(partRepo)

	reviewService := review.NewService(reviewRepo, garageRepo)
	reviewHandler := review.NewHandler(reviewService)

	forumHub := forum.NewHub()
	defer forumHub.Close()
	forumService := forum.NewService(forumRepo, forumHub)
	forumHandler := forum.NewHandler(forumService, forumHub)

	r := gin.New()
	r.Use(gin.Logger(), middleware.RequestID(), middleware.CORS(), middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		partHandler.RegisterRoutes(v1)

		// public reads whose results depend on who is asking
		optional := v1.Group("")
		optional.Use(middleware.OptionalJWTAuth(j))
		{
			garageHandler.RegisterRoutes(optional, nil)
			reviewHandler.RegisterRoutes(optional, nil)
			forumHandler.RegisterRoutes(optional, nil)
		}

		// protected
		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			garageHandler.RegisterRoutes(nil, protected)
			reviewHandler.RegisterRoutes(nil, protected)
			forumHandler.RegisterRoutes(nil, protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
