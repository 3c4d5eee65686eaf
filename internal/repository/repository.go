package repository

import (
	"alcyxob/fitness-program/internal/domain"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateRef = RepositoryError("storage ref already registered")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AssetRepository defines the interface for the external asset registry.
// The playlist core never queries it directly; the catalog manager reads
// the full registry on refresh and builds an in-memory snapshot from it.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.VideoAsset) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, assets []domain.VideoAsset) ([]primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VideoAsset, error)
	List(ctx context.Context) ([]domain.VideoAsset, error)
	DeleteByStorageRef(ctx context.Context, storageRef string) error
}
