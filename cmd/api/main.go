package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pharmaplus-backend/config"
	"pharmaplus-backend/internal/delivery/http/middleware"
	v1 "pharmaplus-backend/internal/delivery/http/v1"
	"pharmaplus-backend/internal/infrastructure/cache"
	"pharmaplus-backend/internal/infrastructure/woocommerce"
	"pharmaplus-backend/internal/repository/postgres"
	"pharmaplus-backend/internal/usecase"
	"pharmaplus-backend/pkg/logger"
	"pharmaplus-backend/pkg/storage"
	"pharmaplus-backend/pkg/utils"

	"github.com/NYTimes/gziphandler"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetSecret(cfg.JWTSecret)

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Database holds only the pastillero; everything else lives upstream.
	pgxPool, err := postgres.NewPgxPool(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	log.Info().Msg("Successfully connected to PostgreSQL via pgx")

	reminderRepo := postgres.NewReminderRepository(pgxPool)

	// Initialize Cache (In-Memory)
	// Default expiration 30m, cleanup every 60m
	memCache := cache.NewMemoryCache(30*time.Minute, 60*time.Minute)

	// Upstream commerce backend
	store := woocommerce.NewHTTPClient(cfg.WooBaseURL, cfg.WooConsumerKey, cfg.WooConsumerSecret, cfg.WooTimeout)
	zoneProvider := woocommerce.NewZoneProvider(store, *log)

	// Set up Router
	mux := http.NewServeMux()

	// --- Modules Initialization ---

	// Shipping Module
	shippingUC := usecase.NewShippingUsecase(zoneProvider, memCache, cfg)
	shippingHandler := v1.NewShippingHandler(shippingUC)

	// Catalog Module
	catalogUC := usecase.NewCatalogUsecase(store, memCache, cfg)
	catalogHandler := v1.NewCatalogHandler(catalogUC)

	// Checkout Module
	checkoutUC := usecase.NewCheckoutUsecase(store, shippingUC, cfg)
	checkoutHandler := v1.NewCheckoutHandler(checkoutUC)

	// Content Module
	contentUC := usecase.NewContentUsecase(store, memCache, cfg)
	contentHandler := v1.NewContentHandler(contentUC)

	// Sitemap Module
	sitemapUC := usecase.NewSitemapUsecase(store, memCache, cfg)
	sitemapHandler := v1.NewSitemapHandler(sitemapUC)

	// Pastillero Module
	reminderUC := usecase.NewReminderUsecase(reminderRepo)
	reminderHandler := v1.NewReminderHandler(reminderUC)

	// Storage Module (R2, prescription uploads)
	r2Storage, err := storage.NewR2Storage(
		context.Background(),
		cfg.R2AccountID,
		cfg.R2AccessKeyID,
		cfg.R2AccessKeySecret,
		cfg.R2BucketName,
		cfg.R2PublicURL,
		cfg.R2UploadTimeout,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize R2 Storage")
	}
	uploadHandler := v1.NewUploadHandler(r2Storage, cfg.MaxUploadSizeMB)

	// Config Handler
	configHandler := v1.NewConfigHandler(memCache)

	// --- Routes ---

	// Config (Public)
	mux.HandleFunc("GET /api/v1/config/enums", configHandler.GetEnums)

	// Shipping (Public)
	mux.HandleFunc("GET /api/v1/shipping/zones", shippingHandler.GetZones)
	mux.HandleFunc("GET /api/v1/shipping/quote", shippingHandler.GetQuote)

	// Catalog (Public)
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/products/{slug}", catalogHandler.GetProduct)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)

	// Content (Public)
	mux.HandleFunc("GET /api/v1/pages/{slug}", contentHandler.GetPage)
	mux.HandleFunc("GET /sitemap.xml", sitemapHandler.GetSitemap)

	// Checkout (Public: guest checkout is allowed)
	mux.HandleFunc("POST /api/v1/checkout", checkoutHandler.Checkout)

	// Uploads (Protected)
	mux.Handle("POST /api/v1/uploads/prescription", middleware.AuthMiddleware(http.HandlerFunc(uploadHandler.UploadPrescription)))
	mux.Handle("DELETE /api/v1/uploads/prescription", middleware.AuthMiddleware(http.HandlerFunc(uploadHandler.DeletePrescription)))

	// Pastillero (Protected)
	mux.Handle("POST /api/v1/reminders", middleware.AuthMiddleware(http.HandlerFunc(reminderHandler.Create)))
	mux.Handle("GET /api/v1/reminders", middleware.AuthMiddleware(http.HandlerFunc(reminderHandler.List)))
	mux.Handle("GET /api/v1/reminders/{id}", middleware.AuthMiddleware(http.HandlerFunc(reminderHandler.Get)))
	mux.Handle("PUT /api/v1/reminders/{id}", middleware.AuthMiddleware(http.HandlerFunc(reminderHandler.Update)))
	mux.Handle("DELETE /api/v1/reminders/{id}", middleware.AuthMiddleware(http.HandlerFunc(reminderHandler.Delete)))

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler) // Support root health check for Load Balancers

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Initialize Rate Limiter with lifecycle management
	// 50 req/s, burst 100, cleanup every minute, TTL 3 minutes
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		50,            // requests per second
		100,           // burst
		time.Minute,   // cleanup period
		3*time.Minute, // client TTL
	)

	// Apply CORS (with config injection), Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	log.Info().Msgf("Server starting on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	pgxPool.Close()
	log.Info().Msg("Server exited properly")
}
