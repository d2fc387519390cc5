// File: tripdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripdesk/config"
	"tripdesk/database"
	offersRepo "tripdesk/database/repository/offers"
	"tripdesk/handlers"
	"tripdesk/middleware"
	"tripdesk/routes"
	"tripdesk/services/companyrates"
	"tripdesk/services/fallback"
	"tripdesk/services/generator"
	"tripdesk/services/search"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to offer store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()

	cacheClient := utils.NewCacheClient()
	utils.StartHealthMonitor(cacheClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	offerRepo := offersRepo.NewMongoOfferRepo(mongoClient.Database(config.AppConfig.DatabaseName))

	// services.
	var offerGenerator generator.OfferGenerator
	if gemini, err := generator.NewGeminiGenerator(config.AppConfig.GeminiAPIKey, offerRepo, logger); err != nil {
		logger.Sugar().Warnf("main: synthetic generator unavailable, searches fall through to emergency data: %v", err)
	} else {
		offerGenerator = gemini
	}

	rateBook := companyrates.Load(config.AppConfig.CompanyRatesPath, logger)

	tierDelay := time.Duration(config.AppConfig.TierDelayMillis) * time.Millisecond
	fallbackService := &fallback.DefaultFallbackService{
		Offers:     offerRepo,
		Generator:  offerGenerator,
		Rates:      rateBook,
		Logger:     logger,
		Limiter:    rate.NewLimiter(rate.Every(tierDelay), 1),
		RetryDelay: tierDelay * 4,
		Currency:   config.AppConfig.DefaultCurrency,
	}

	searchService := &search.DefaultSearchService{
		Fallback: fallbackService,
		Cache:    cacheClient,
		Logger:   logger,
		Timeout:  time.Duration(config.AppConfig.SearchTimeoutSecs) * time.Second,
		CacheTTL: time.Duration(config.AppConfig.CacheTTLSecs) * time.Second,
		Currency: config.AppConfig.DefaultCurrency,
	}

	searchHandler := handlers.NewSearchHandler(searchService, logger)

	// Register routes with the assembled handlers.
	routes.RegisterRoutes(router, searchHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
