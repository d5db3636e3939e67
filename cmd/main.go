package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"auth-service/internal/api"
	"auth-service/internal/config"
	"auth-service/internal/repository"
	"auth-service/internal/service"
)

func main() {
	cfg := config.Load()

	userRepo := repository.NewUserStore(cfg.StorePath)
	userService := service.NewUserService(userRepo)
	userHandler := api.NewUserHandler(userService)

	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	e.POST("/signup", userHandler.Signup)
	e.POST("/login", userHandler.Login)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "auth-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Static("/", cfg.PublicDir)

	// Start server
	log.Info().Msgf("auth-service listening on %s", cfg.ListenAddr)
	e.Logger.Fatal(e.Start(cfg.ListenAddr))
}
