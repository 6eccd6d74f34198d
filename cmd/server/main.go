package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	identityapp "github.com/backoffice/backend/internal/application/identity"
	inventoryapp "github.com/backoffice/backend/internal/application/inventory"
	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/backoffice/backend/internal/infrastructure/auth"
	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/backoffice/backend/internal/infrastructure/logger"
	"github.com/backoffice/backend/internal/infrastructure/persistence"
	"github.com/backoffice/backend/internal/interfaces/http/handler"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/backoffice/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting back-office backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Session token service and blacklist. Redis serves multi-instance
	// deployments; the in-memory fallback is enough for a single node.
	jwtService := auth.NewJWTService(cfg.JWT)

	var blacklist auth.TokenBlacklist
	if cfg.Redis.Enabled {
		redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		blacklist = redisBlacklist
		log.Info("Redis token blacklist enabled")
	} else {
		blacklist = auth.NewInMemoryTokenBlacklist()
		log.Info("Using in-memory token blacklist")
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	restaurantRepo := persistence.NewGormRestaurantRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	packagingRepo := persistence.NewGormPackagingRepository(db.DB)
	stockRepo := persistence.NewGormStockRepository(db.DB)
	batchRepo := persistence.NewGormBatchRepository(db.DB)
	receptionRepo := persistence.NewGormReceptionRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, restaurantRepo, log)
	restaurantService := identityapp.NewRestaurantService(restaurantRepo, userRepo, stockRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, log)
	recipeService := catalogapp.NewRecipeService(recipeRepo, productRepo, log)
	packagingService := catalogapp.NewPackagingService(packagingRepo, productRepo, log)
	stockService := inventoryapp.NewStockService(stockRepo, log)
	batchService := inventoryapp.NewBatchService(txScope, batchRepo, log)
	receptionService := inventoryapp.NewReceptionService(txScope, receptionRepo, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	packagingHandler := handler.NewPackagingHandler(packagingService)
	stockHandler := handler.NewStockHandler(stockService)
	batchHandler := handler.NewBatchHandler(batchService)
	receptionHandler := handler.NewReceptionHandler(receptionService)
	systemHandler := handler.NewSystemHandler(db.DB)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(1 << 20))

	// Liveness and readiness probes, outside API versioning
	engine.GET("/health", systemHandler.Health)
	engine.GET("/ready", systemHandler.Ready)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths:      []string{"/api/v1/auth/login"},
		Logger:         log,
	}))

	// Authentication. Login is throttled against credential stuffing.
	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", middleware.RateLimit(10, time.Minute), authHandler.Login)
	authRoutes.POST("/logout", authHandler.Logout)
	authRoutes.GET("/me", authHandler.Me)
	authRoutes.PUT("/password", authHandler.ChangePassword)

	// Administration: user accounts and restaurants
	adminRoutes := router.NewDomainGroup("admin", "/admin")
	adminRoutes.Use(middleware.RequireRoles(identity.RoleAdmin))
	adminRoutes.POST("/users", userHandler.Create)
	adminRoutes.GET("/users", userHandler.List)
	adminRoutes.GET("/users/:id", userHandler.Get)
	adminRoutes.PUT("/users/:id", userHandler.Update)
	adminRoutes.DELETE("/users/:id", userHandler.Delete)
	adminRoutes.POST("/users/:id/reset-password", userHandler.ResetPassword)
	adminRoutes.POST("/restaurants", restaurantHandler.Create)
	adminRoutes.GET("/restaurants", restaurantHandler.List)
	adminRoutes.GET("/restaurants/:id", restaurantHandler.Get)
	adminRoutes.PUT("/restaurants/:id", restaurantHandler.Update)
	adminRoutes.DELETE("/restaurants/:id", restaurantHandler.Delete)

	// Catalog reads are open to every authenticated role; writes are
	// gated to admin (global scope) and chief (own restaurant).
	catalogWrite := middleware.RequireRoles(identity.RoleAdmin, identity.RoleChief)

	categoryRoutes := router.NewDomainGroup("categories", "/categories")
	categoryRoutes.GET("", categoryHandler.List)
	categoryRoutes.POST("", catalogWrite, categoryHandler.Create)
	categoryRoutes.PUT("/:id", catalogWrite, categoryHandler.Update)
	categoryRoutes.DELETE("/:id", catalogWrite, categoryHandler.Delete)

	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/search", productHandler.Search)
	productRoutes.GET("/:id", productHandler.Get)
	productRoutes.POST("", catalogWrite, productHandler.Create)
	productRoutes.PUT("/:id", catalogWrite, productHandler.Update)
	productRoutes.DELETE("/:id", catalogWrite, productHandler.Delete)

	// Recipes belong to one restaurant; only its chief maintains them
	recipeWrite := middleware.RequireRoles(identity.RoleChief)
	recipeRoutes := router.NewDomainGroup("recipes", "/recipes")
	recipeRoutes.Use(middleware.RequireRestaurant())
	recipeRoutes.GET("", recipeHandler.List)
	recipeRoutes.GET("/:id", recipeHandler.Get)
	recipeRoutes.POST("", recipeWrite, recipeHandler.Create)
	recipeRoutes.PUT("/:id", recipeWrite, recipeHandler.Update)
	recipeRoutes.DELETE("/:id", recipeWrite, recipeHandler.Delete)

	packagingRoutes := router.NewDomainGroup("packagings", "/packagings")
	packagingRoutes.GET("", packagingHandler.List)
	packagingRoutes.GET("/search", packagingHandler.Search)
	packagingRoutes.GET("/ean/:ean", packagingHandler.GetByEAN)
	packagingRoutes.GET("/:id", packagingHandler.Get)
	packagingRoutes.POST("", catalogWrite, packagingHandler.Create)
	packagingRoutes.PUT("/:id", catalogWrite, packagingHandler.Update)
	packagingRoutes.DELETE("/:id", catalogWrite, packagingHandler.Delete)

	// Inventory operations run inside one restaurant and are open to its
	// chief and staff.
	inventoryGate := []gin.HandlerFunc{
		middleware.RequireRoles(identity.RoleChief, identity.RoleStaff),
		middleware.RequireRestaurant(),
	}

	stockRoutes := router.NewDomainGroup("stocks", "/stocks")
	stockRoutes.Use(inventoryGate...)
	stockRoutes.GET("", stockHandler.List)
	stockRoutes.GET("/:id", stockHandler.Get)
	stockRoutes.PUT("/:id/threshold", stockHandler.SetThreshold)

	batchRoutes := router.NewDomainGroup("batches", "/batches")
	batchRoutes.Use(inventoryGate...)
	batchRoutes.POST("", batchHandler.Create)
	batchRoutes.GET("", batchHandler.List)
	batchRoutes.GET("/:id", batchHandler.Get)

	receptionRoutes := router.NewDomainGroup("receptions", "/receptions")
	receptionRoutes.Use(inventoryGate...)
	receptionRoutes.POST("", receptionHandler.Receive)
	receptionRoutes.GET("", receptionHandler.List)

	r.Register(authRoutes).
		Register(adminRoutes).
		Register(categoryRoutes).
		Register(productRoutes).
		Register(recipeRoutes).
		Register(packagingRoutes).
		Register(stockRoutes).
		Register(batchRoutes).
		Register(receptionRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
