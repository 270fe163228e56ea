package main

import (
	"log"
	"net/http"

	_ "github.com/SithHades/fridgemaster/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/SithHades/fridgemaster/internal/auth"
	"github.com/SithHades/fridgemaster/internal/cache"
	"github.com/SithHades/fridgemaster/internal/config"
	"github.com/SithHades/fridgemaster/internal/db"
	"github.com/SithHades/fridgemaster/internal/handler"
	"github.com/SithHades/fridgemaster/internal/llm"
	"github.com/SithHades/fridgemaster/internal/model"
	"github.com/SithHades/fridgemaster/internal/repository"
	"github.com/SithHades/fridgemaster/internal/router"
	"github.com/SithHades/fridgemaster/internal/service"
)

// @title FridgeMaster API
// @version 1.0
// @description Household food-inventory tracker with AI recipe generation, JWT authentication and per-user generation credits.
// @host localhost:8080
// @BasePath /api
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

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.DictionaryEntry{},
		&model.GeneratedRecipe{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	dictRepo := repository.NewDictionaryRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize the external model client
	llmClient := llm.NewOpenRouterClient(cfg.OpenRouterURL, cfg.OpenRouterKey, cfg.OpenRouterModel)
	if cfg.OpenRouterKey == "" {
		log.Println("Warning: OPEN_ROUTER_API_KEY not set, recipe generation will fail")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	productService := service.NewProductService(productRepo, dictRepo)
	dictService := service.NewDictionaryService(dictRepo)
	recipeService := service.NewRecipeService(userRepo, recipeRepo, llmClient, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userRepo)
	productHandler := handler.NewProductHandler(productService)
	dictHandler := handler.NewDictionaryHandler(dictService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		productHandler,
		dictHandler,
		recipeHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
