package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"itemstore/docs"
	"itemstore/internal/auth"
	"itemstore/internal/cache"
	"itemstore/internal/config"
	"itemstore/internal/db"
	"itemstore/internal/handler"
	"itemstore/internal/model"
	"itemstore/internal/repository"
	"itemstore/internal/router"
	"itemstore/internal/service"
)

// @title Itemstore API
// @version 1.0
// @description Users, items and categories CRUD API with JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, cacheClient, cfg.EmptyListNotFound)
	itemService := service.NewItemService(itemRepo, categoryRepo, cacheClient, cfg.EmptyListNotFound)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient, cfg.EmptyListNotFound)

	healthHandler := handler.NewHealthHandler(gormDB)
	userHandler := handler.NewUserHandler(authService, userService)
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	router.Register(
		e,
		cfg,
		tokenService,
		userRepo,
		healthHandler,
		userHandler,
		authHandler,
		itemHandler,
		categoryHandler,
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: http://%s/api-docs/index.html", docs.SwaggerInfo.Host)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
