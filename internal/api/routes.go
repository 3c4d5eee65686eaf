package api

import (
	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/repository"
	"alcyxob/fitness-program/internal/service"
	"alcyxob/fitness-program/internal/storage"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	playlistService service.PlaylistService,
	catalogManager *catalog.Manager,
	assetRepo repository.AssetRepository,
	mediaStorage storage.MediaStorage,
	metricsRegistry *prometheus.Registry,
) {

	authHandler := NewAuthHandler(authService)
	playlistHandler := NewPlaylistHandler(playlistService, mediaStorage)
	catalogHandler := NewCatalogHandler(catalogManager, assetRepo, mediaStorage)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Fallback hit/miss counters and generation totals for monitoring.
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metricsRegistry, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}

		// --- Playlist Routes ---
		// GET /api/v1/playlists/{day}?persona=athlete
		apiV1.GET("/playlists/:day", playlistHandler.GetDailyPlaylist)
	}

	// --- Admin Routes ---
	// Registry writes and snapshot refresh require the admin JWT.
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(authMiddleware)
	{
		adminGroup.POST("/assets", catalogHandler.RegisterAssets)
		adminGroup.POST("/assets/upload-url", catalogHandler.CreateUploadURL)
		adminGroup.POST("/catalog/refresh", catalogHandler.RefreshCatalog)
	}
}
