package api

import (
	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/service"
	"alcyxob/fitness-program/internal/storage"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlaylistHandler holds the playlist service and media storage dependencies.
type PlaylistHandler struct {
	playlistService service.PlaylistService
	mediaStorage    storage.MediaStorage
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(playlistService service.PlaylistService, mediaStorage storage.MediaStorage) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService: playlistService,
		mediaStorage:    mediaStorage,
	}
}

// --- DTOs for API ---

// PlaylistAssetResponse is the playable view of one resolved clip.
type PlaylistAssetResponse struct {
	Kind            domain.AssetKind `json:"kind"`
	Category        domain.Category  `json:"category"`
	ExerciseID      string           `json:"exerciseId,omitempty"`
	Persona         domain.Persona   `json:"persona,omitempty"`
	Variant         string           `json:"variant"`
	DurationSeconds int              `json:"durationSeconds"`
	URL             string           `json:"url"`
}

// PlaylistItemResponse is one ordered playlist entry. Asset is null for
// slots the catalog could not fill even through fallback; the client
// decides whether to skip the slot or block playback.
type PlaylistItemResponse struct {
	Order      int                    `json:"order"`
	SlotType   domain.Category        `json:"slotType"`
	IsFallback bool                   `json:"isFallback"`
	Asset      *PlaylistAssetResponse `json:"asset"`
}

// PlaylistResponse is the full daily playlist.
type PlaylistResponse struct {
	ID                   string                 `json:"id"`
	DayNumber            int                    `json:"dayNumber"`
	WeekNumber           int                    `json:"weekNumber"`
	Persona              domain.Persona         `json:"persona"`
	TotalDurationSeconds int                    `json:"totalDurationSeconds"`
	Items                []PlaylistItemResponse `json:"items"`
}

// --- Handler Methods ---

// GetDailyPlaylist godoc
// @Summary Get the playlist for one program day
// @Description Assembles the ordered clip sequence for a program day and persona, resolving storage refs into presigned playback URLs.
// @Tags Playlists
// @Produce json
// @Param day path int true "Program day number (1-based)"
// @Param persona query string true "Trainer persona"
// @Success 200 {object} PlaylistResponse "Assembled playlist"
// @Failure 400 {object} gin.H "Invalid day or persona"
// @Failure 500 {object} gin.H "Catalog configuration error"
// @Failure 503 {object} gin.H "Catalog not loaded yet"
// @Router /playlists/{day} [get]
func (h *PlaylistHandler) GetDailyPlaylist(c *gin.Context) {
	dayNumber, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Day must be an integer.")
		return
	}
	persona := domain.Persona(c.Query("persona"))
	if persona == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'persona' is required.")
		return
	}

	playlist, err := h.playlistService.GeneratePlaylist(c.Request.Context(), dayNumber, persona)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDay), errors.Is(err, service.ErrUnknownPersona):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, catalog.ErrNotLoaded):
			abortWithError(c, http.StatusServiceUnavailable, "Catalog is not loaded yet; try again shortly.")
		default:
			// Unknown category or an undersized pool: a catalog
			// configuration problem, not a client mistake.
			log.Printf("ERROR: playlist generation failed for day %d persona %q: %v", dayNumber, persona, err)
			abortWithError(c, http.StatusInternalServerError, "Failed to generate playlist.")
		}
		return
	}

	response := PlaylistResponse{
		ID:                   uuid.NewString(),
		DayNumber:            playlist.Day.DayNumber,
		WeekNumber:           playlist.Day.WeekNumber,
		Persona:              playlist.Day.Persona,
		TotalDurationSeconds: playlist.TotalDurationSeconds(),
		Items:                make([]PlaylistItemResponse, 0, len(playlist.Items)),
	}

	for _, item := range playlist.Items {
		itemResponse := PlaylistItemResponse{
			Order:      item.Order,
			SlotType:   item.SlotType,
			IsFallback: item.IsFallback,
		}
		if item.Asset != nil {
			url, err := h.mediaStorage.GeneratePresignedDownloadURL(c.Request.Context(), item.Asset.StorageRef, 0)
			if err != nil {
				log.Printf("ERROR: presigning URL for ref %q: %v", item.Asset.StorageRef, err)
				abortWithError(c, http.StatusInternalServerError, "Failed to resolve media URLs.")
				return
			}
			itemResponse.Asset = &PlaylistAssetResponse{
				Kind:            item.Asset.Kind,
				Category:        item.Asset.Category,
				ExerciseID:      item.Asset.ExerciseID,
				Persona:         item.Asset.Persona,
				Variant:         item.Asset.Variant,
				DurationSeconds: item.Asset.DurationSeconds,
				URL:             url,
			}
		}
		response.Items = append(response.Items, itemResponse)
	}

	c.JSON(http.StatusOK, response)
}
