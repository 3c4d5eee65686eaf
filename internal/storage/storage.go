package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned URLs. Playlist URLs are minted
// per request, so a short window is plenty.
const DefaultPresignedURLExpiry = 15 * time.Minute

// MediaStorage defines the interface for resolving catalog storage refs
// into playable URLs and for managing the underlying media objects.
type MediaStorage interface {
	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for streaming/downloading a clip directly from the provider.
	GeneratePresignedDownloadURL(ctx context.Context, storageRef string, expires time.Duration) (string, error)

	// GeneratePresignedUploadURL creates a temporary URL that allows PUT
	// requests for importing a new clip directly to the provider.
	GeneratePresignedUploadURL(ctx context.Context, storageRef string, contentType string, expires time.Duration) (string, error)

	// DeleteObject removes a clip from the storage provider.
	DeleteObject(ctx context.Context, storageRef string) error
}
