package main

import (
	"alcyxob/fitness-program/internal/api"
	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/config"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository/mongo"
	"alcyxob/fitness-program/internal/service"
	"alcyxob/fitness-program/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title Fitness Program Playlist API
// @version 1.0
// @description Assembles per-day video playlists for the guided fitness program.
// @contact.name API Support
// @contact.email support@example.com
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting Fitness Program Playlist Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureAssetIndexes(ctx, appDB.Collection("assets"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing media storage service...")
	mediaStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	assetRepo := mongo.NewMongoAssetRepository(appDB)

	// --- Build the catalog ---
	// The manager warns at refresh time about any exercise pool smaller
	// than the slot count its template entry requests.
	minPoolSizes := make(map[domain.Category]int)
	for _, entry := range cfg.Program.Template {
		category := domain.Category(entry.Slot)
		if category.IsExerciseCategory() {
			minPoolSizes[category] += entry.Count
		}
	}
	normalizer := catalog.NewNormalizer(cfg.Program.Personas)
	catalogManager := catalog.NewManager(assetRepo, normalizer, minPoolSizes)

	refreshCtx, refreshCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := catalogManager.Refresh(refreshCtx); err != nil {
		// Not fatal: the admin API can retry once the registry is reachable.
		log.Printf("ERROR: Initial catalog refresh failed: %v", err)
	}
	refreshCancel()

	// --- Initialize Metrics ---
	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(collectors.NewGoCollector())
	metrics := service.NewMetrics(metricsRegistry)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(cfg.JWT.AdminEmail, cfg.JWT.AdminPasswordHash, cfg.JWT.Secret, cfg.JWT.Expiration)
	scheduler := service.NewRotationScheduler()
	fallback := service.NewFallbackResolver(metrics)
	selector := service.NewArchetypeContentSelector(fallback, cfg.Program.PreferredVariant, cfg.Program.CycleLengthDays)
	playlistService, err := service.NewPlaylistService(catalogManager, scheduler, selector, fallback, metrics, cfg.Program)
	if err != nil {
		log.Fatalf("FATAL: Invalid program template: %v", err)
	}

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, playlistService, catalogManager, assetRepo, mediaStorage, metricsRegistry)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
