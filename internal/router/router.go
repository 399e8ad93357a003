package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"itemstore/internal/auth"
	"itemstore/internal/config"
	"itemstore/internal/handler"
	"itemstore/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokens *auth.TokenService,
	users repository.UserRepository,
	healthHandler *handler.HealthHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
	itemHandler *handler.ItemHandler,
	categoryHandler *handler.CategoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	authenticated := auth.Middleware(tokens, users)

	e.GET("/", healthHandler.Root)
	e.GET("/heartbeat", healthHandler.Heartbeat)
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	usersGroup := e.Group("/users")
	usersGroup.POST("/signup", userHandler.Signup)
	usersGroup.POST("/signin", userHandler.Signin)
	usersGroup.GET("/me", userHandler.Me, authenticated...)
	usersGroup.GET("/", userHandler.List, authenticated...)

	authGroup := e.Group("/auth")
	authGroup.POST("/token", authHandler.Token)
	authGroup.POST("/refresh-token", authHandler.RefreshToken)

	itemsGroup := e.Group("/items", authenticated...)
	itemsGroup.POST("/", itemHandler.Create)
	itemsGroup.GET("/", itemHandler.List)
	itemsGroup.GET("/:id", itemHandler.Get)
	itemsGroup.PUT("/:id", itemHandler.Update)
	itemsGroup.DELETE("/:id", itemHandler.Delete)

	categoriesGroup := e.Group("/categories", authenticated...)
	categoriesGroup.POST("/", categoryHandler.Create)
	categoriesGroup.GET("/", categoryHandler.List)
	categoriesGroup.GET("/:id", categoryHandler.Get)
	categoriesGroup.PUT("/:id", categoryHandler.Update)
	categoriesGroup.DELETE("/:id", categoryHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
