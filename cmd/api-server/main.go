package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"storehub/database"
	"storehub/internal/api/cache"
	"storehub/internal/api/handler"
	"storehub/internal/api/middleware"
	"storehub/internal/api/repository"
	"storehub/internal/api/service"
	"storehub/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, pool, err := database.ConnectDB(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer pool.Close()

	productCache, err := cache.NewProductCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
	if err != nil {
		// The API works without the cache, product lists just hit Postgres
		logger.Warn("Redis unavailable, product cache disabled", "error", err)
	} else {
		defer productCache.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	stockRepo := repository.NewStockRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	productService := service.NewProductService(productRepo, productCache)
	supplierService := service.NewSupplierService(supplierRepo)
	stockService := service.NewStockService(stockRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, discountRepo, stockRepo)
	discountService := service.NewDiscountService(discountRepo)
	reviewService := service.NewReviewService(reviewRepo, commentRepo, productRepo)
	commentService := service.NewCommentService(commentRepo, reviewRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	stockHandler := handler.NewStockHandler(stockService)
	orderHandler := handler.NewOrderHandler(orderService)
	discountHandler := handler.NewDiscountHandler(discountService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	commentHandler := handler.NewCommentHandler(commentService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	r.Use(rateLimiter.Middleware())

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public storefront routes
	api := r.Group("/api")
	authHandler.RegisterRoutes(api)
	productHandler.RegisterPublicRoutes(api)
	reviewHandler.RegisterPublicRoutes(api)

	// Authenticated routes
	authed := r.Group("/api")
	authed.Use(middleware.AuthMiddleware(authService))
	orderHandler.RegisterRoutes(authed)
	reviewHandler.RegisterRoutes(authed)
	commentHandler.RegisterRoutes(authed)

	// Staff-only admin console routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(authService), middleware.RequireStaff())
	productHandler.RegisterAdminRoutes(admin)
	supplierHandler.RegisterRoutes(admin)
	stockHandler.RegisterRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	discountHandler.RegisterRoutes(admin)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("StoreHub API listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		h = slog.NewTextHandler(os.Stdout, nil)
	}
	return slog.New(h)
}
