package mongo

import (
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const assetCollectionName = "assets"

// mongoAssetRepository implements repository.AssetRepository
type mongoAssetRepository struct {
	collection *mongo.Collection
}

// NewMongoAssetRepository creates a new asset registry repository backed by MongoDB.
func NewMongoAssetRepository(db *mongo.Database) repository.AssetRepository {
	return &mongoAssetRepository{
		collection: db.Collection(assetCollectionName),
	}
}

// Create inserts a single asset record into the registry.
func (r *mongoAssetRepository) Create(ctx context.Context, asset *domain.VideoAsset) (primitive.ObjectID, error) {
	if err := asset.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	asset.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	asset.CreatedAt = now
	asset.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, asset)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateRef
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// CreateMany inserts a batch of asset records, typically one media-import run.
func (r *mongoAssetRepository) CreateMany(ctx context.Context, assets []domain.VideoAsset) ([]primitive.ObjectID, error) {
	if len(assets) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, len(assets))
	ids := make([]primitive.ObjectID, len(assets))
	for i := range assets {
		if err := assets[i].Validate(); err != nil {
			return nil, err
		}
		assets[i].ID = primitive.NewObjectID()
		assets[i].CreatedAt = now
		assets[i].UpdatedAt = now
		docs[i] = assets[i]
		ids[i] = assets[i].ID
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicateRef
		}
		return nil, err
	}
	return ids, nil
}

// GetByID retrieves a single asset record.
func (r *mongoAssetRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VideoAsset, error) {
	var asset domain.VideoAsset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&asset)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// List returns the full registry. The catalog manager calls this on
// refresh; sorting by storage ref keeps rebuilds deterministic even
// before the snapshot applies its own ordering.
func (r *mongoAssetRepository) List(ctx context.Context) ([]domain.VideoAsset, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "storageRef", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []domain.VideoAsset
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return assets, nil
}

// DeleteByStorageRef removes the registry record for a media object,
// used by cleanup after the object itself is deleted from storage.
func (r *mongoAssetRepository) DeleteByStorageRef(ctx context.Context, storageRef string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"storageRef": storageRef})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAssetIndexes creates the indexes the registry queries rely on.
func EnsureAssetIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// One registry row per media object.
			Keys:    bson.D{{Key: "storageRef", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "category", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
