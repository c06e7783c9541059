package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yishak-cs/calboost/internal/database"
	"github.com/yishak-cs/calboost/internal/handlers"
	"github.com/yishak-cs/calboost/internal/llm"
	"github.com/yishak-cs/calboost/internal/logger"
	"github.com/yishak-cs/calboost/internal/services"
	"github.com/yishak-cs/calboost/pkg/helper"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	config := helper.LoadConfigFromEnv()
	log, err := logger.New(config.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if envErr != nil {
		log.Warn("no .env file loaded", "error", envErr)
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the user food store
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	store, err := database.OpenFoodStore(ctx, config.Store, log)
	if err != nil {
		log.Fatal("failed to open food store", "driver", config.Store.Driver, "error", err)
	}
	defer func() {
		if store == nil {
			return
		}
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn("error closing food store", "error", err)
		}
	}()

	if config.ImportURL != "" {
		importFoods(ctx, store, config.ImportURL, log)
	}
	cancel()

	// Initialize services
	var custom *services.CustomFoodCatalog
	if store != nil {
		custom = services.NewCustomFoodCatalog(store, log)
	}
	remote, closeCache := newRemoteBackend(config, log)
	defer closeCache()

	adapter := services.NewNutrientAdapter(services.DefaultCuratedCatalog(), custom, remote, log)

	var llmClient llm.Client
	if c, err := llm.NewClient(llm.Config{
		APIKey:  config.OpenAIAPIKey,
		BaseURL: config.OpenAIBaseURL,
		Model:   config.OpenAIModel,
		Timeout: config.OpenAITimeout,
	}, log); err != nil {
		log.Warn("meal analysis disabled", "error", err)
	} else {
		llmClient = c
	}

	resolver := services.NewMealResolver(adapter, config.MaxConcurrency, log)
	analyzer := services.NewMealAnalyzer(llmClient, adapter, config.MaxConcurrency, log)

	// Initialize API handlers
	apiHandler := handlers.NewAPIHandler(resolver, analyzer, adapter, store, log)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestID(), handlers.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  config.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	apiHandler.SetupRoutes(router)
	apiHandler.SetupMCPRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	// Create server with graceful shutdown
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Port),
		Handler: router,
	}

	go func() {
		log.Info("server starting", "port", config.Port, "remote", adapter.RemoteEnabled(), "analysis", llmClient != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		return
	}

	log.Info("server exited properly")
}

// importFoods bulk-loads user foods from a CSV. Only the graph store supports it.
func importFoods(ctx context.Context, store database.CustomFoodStore, url string, log *logger.Logger) {
	graph, ok := store.(*database.Neo4jFoodStore)
	if !ok {
		log.Warn("FOOD_IMPORT_URL ignored, CSV import needs the neo4j store")
		return
	}
	importer := graph.Importer()
	n, err := importer.ImportCustomFoods(ctx, url)
	if err != nil {
		log.Error("food import failed", "url", url, "error", err)
		return
	}
	status, err := importer.GetImportStatus(ctx)
	if err != nil {
		log.Warn("failed to get import status", "error", err)
		return
	}
	log.Info("food import finished", "rows", n, "foods", status["foods"], "categories", status["categories"])
}

// newRemoteBackend returns nil when no USDA key is configured
func newRemoteBackend(config helper.AppConfig, log *logger.Logger) (*services.RemoteBackend, func()) {
	if config.USDAAPIKey == "" || strings.EqualFold(config.USDAAPIKey, "none") {
		log.Warn("remote nutrient lookups disabled")
		return nil, func() {}
	}

	var cache services.LookupCache
	closeCache := func() {}
	switch strings.ToLower(config.CacheDriver) {
	case "redis":
		rc, err := services.OpenRedisCache(services.RedisConfig{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
			TTL:      config.CacheTTL,
		}, log)
		if err != nil {
			log.Fatal("failed to open redis cache", "error", err)
		}
		cache = rc
		closeCache = func() { _ = rc.Close() }
	case "none":
	default:
		mc, err := services.NewMemoryCache(config.CacheSize)
		if err != nil {
			log.Fatal("failed to create lookup cache", "error", err)
		}
		cache = mc
	}

	usda := services.NewUSDAService(services.USDAConfig{
		APIKey:  config.USDAAPIKey,
		BaseURL: config.USDABaseURL,
		Timeout: config.USDATimeout,
	}, log)
	return services.NewRemoteBackend(usda, services.DefaultTranslator(), cache, config.USDATimeout, log), closeCache
}
