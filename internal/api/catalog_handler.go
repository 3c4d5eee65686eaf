package api

import (
	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"
	"alcyxob/fitness-program/internal/storage"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the admin surface of the catalog: registering
// asset records, minting import upload URLs and refreshing the snapshot.
type CatalogHandler struct {
	catalogManager *catalog.Manager
	assetRepo      repository.AssetRepository
	mediaStorage   storage.MediaStorage
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogManager *catalog.Manager, assetRepo repository.AssetRepository, mediaStorage storage.MediaStorage) *CatalogHandler {
	return &CatalogHandler{
		catalogManager: catalogManager,
		assetRepo:      assetRepo,
		mediaStorage:   mediaStorage,
	}
}

// --- DTOs for API ---

// RegisterAssetRequest describes one asset record to add to the registry.
type RegisterAssetRequest struct {
	Kind            domain.AssetKind `json:"kind" binding:"required,oneof=exercise motivation"`
	Category        domain.Category  `json:"category" binding:"required"`
	ExerciseID      string           `json:"exerciseId"`
	Persona         domain.Persona   `json:"persona"`
	Variant         string           `json:"variant" binding:"required"`
	DayNumber       int              `json:"dayNumber"`
	PeriodIndex     int              `json:"periodIndex"`
	DurationSeconds int              `json:"durationSeconds" binding:"required,gt=0"`
	StorageRef      string           `json:"storageRef" binding:"required"`
}

// RegisterAssetsRequest is one import batch.
type RegisterAssetsRequest struct {
	Assets []RegisterAssetRequest `json:"assets" binding:"required,min=1,dive"`
}

type RegisterAssetsResponse struct {
	BatchID  string   `json:"batchId"`
	AssetIDs []string `json:"assetIds"`
}

type RefreshResponse struct {
	AssetCount int       `json:"assetCount"`
	BuiltAt    time.Time `json:"builtAt"`
}

type UploadURLRequest struct {
	StorageRef  string `json:"storageRef" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

type UploadURLResponse struct {
	URL string `json:"url"`
}

// --- Handler Methods ---

// RegisterAssets godoc
// @Summary Register a batch of asset records
// @Description Adds validated clip records to the asset registry. The catalog snapshot is unaffected until the next refresh.
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param batch body RegisterAssetsRequest true "Asset records"
// @Success 201 {object} RegisterAssetsResponse "Records created"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Storage ref already registered"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /admin/assets [post]
func (h *CatalogHandler) RegisterAssets(c *gin.Context) {
	var req RegisterAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	assets := make([]domain.VideoAsset, len(req.Assets))
	for i, a := range req.Assets {
		assets[i] = domain.VideoAsset{
			Kind:            a.Kind,
			Category:        a.Category,
			ExerciseID:      a.ExerciseID,
			Persona:         a.Persona,
			Variant:         a.Variant,
			DayNumber:       a.DayNumber,
			PeriodIndex:     a.PeriodIndex,
			DurationSeconds: a.DurationSeconds,
			StorageRef:      a.StorageRef,
		}
		if err := assets[i].Validate(); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Asset %d: %v", i, err))
			return
		}
	}

	ids, err := h.assetRepo.CreateMany(c.Request.Context(), assets)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRef) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to register assets.")
		}
		return
	}

	response := RegisterAssetsResponse{BatchID: uuid.NewString()}
	for _, id := range ids {
		response.AssetIDs = append(response.AssetIDs, id.Hex())
	}
	log.Printf("INFO: registered %d asset records (batch %s)", len(ids), response.BatchID)
	c.JSON(http.StatusCreated, response)
}

// RefreshCatalog godoc
// @Summary Rebuild the catalog snapshot
// @Description Reads the full asset registry, normalizes it and atomically swaps in a fresh snapshot.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RefreshResponse "Snapshot rebuilt"
// @Failure 500 {object} gin.H "Registry read or normalization failure"
// @Router /admin/catalog/refresh [post]
func (h *CatalogHandler) RefreshCatalog(c *gin.Context) {
	snapshot, err := h.catalogManager.Refresh(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: catalog refresh failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, fmt.Sprintf("Catalog refresh failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{
		AssetCount: snapshot.AssetCount(),
		BuiltAt:    snapshot.BuiltAt(),
	})
}

// CreateUploadURL godoc
// @Summary Mint a presigned upload URL for a new clip
// @Description Returns a temporary PUT URL so import tooling can push media straight to object storage.
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UploadURLRequest true "Target storage ref and content type"
// @Success 200 {object} UploadURLResponse "Presigned URL"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /admin/assets/upload-url [post]
func (h *CatalogHandler) CreateUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	url, err := h.mediaStorage.GeneratePresignedUploadURL(c.Request.Context(), req.StorageRef, req.ContentType, 0)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		return
	}

	c.JSON(http.StatusOK, UploadURLResponse{URL: url})
}
