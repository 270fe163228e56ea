package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/SithHades/fridgemaster/internal/auth"
	"github.com/SithHades/fridgemaster/internal/config"
	"github.com/SithHades/fridgemaster/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	dictionaryHandler *handler.DictionaryHandler,
	recipeHandler *handler.RecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication). Tokens are parsed through
	// the same JWTService that issued them, so handlers see *auth.Claims.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	secured.GET("/me", userHandler.Me)

	// Inventory routes
	secured.GET("/products", productHandler.List)
	secured.GET("/products/expiring", productHandler.ListExpiring)
	secured.POST("/products", productHandler.Create)
	secured.PUT("/products/:id", productHandler.Update)
	secured.POST("/products/:id/open", productHandler.Open)
	secured.POST("/products/:id/consume", productHandler.Consume)
	secured.DELETE("/products/:id", productHandler.Delete)

	// Dictionary routes
	secured.GET("/dictionary", dictionaryHandler.List)
	secured.GET("/dictionary/search", dictionaryHandler.Search)
	secured.PUT("/dictionary/:id", dictionaryHandler.Update)
	secured.DELETE("/dictionary/:id", dictionaryHandler.Delete)

	// Recipe routes
	secured.POST("/recipes", recipeHandler.Generate)
	secured.GET("/recipes", recipeHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
