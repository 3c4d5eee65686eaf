package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/fitness-program/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Typed test fixtures: real VideoAsset values, built the same way the
// ingestion boundary produces them.

func exerciseFixture(category domain.Category, exerciseID, variant string) domain.VideoAsset {
	return domain.VideoAsset{
		Kind:            domain.KindExercise,
		Category:        category,
		ExerciseID:      exerciseID,
		Variant:         variant,
		DurationSeconds: 60,
		StorageRef:      fmt.Sprintf("exercises/%s/%s_%s.mp4", category, exerciseID, variant),
	}
}

// motivationFixture keys the clip by day number for per-day categories
// and by period index for periodic ones.
func motivationFixture(category domain.Category, persona domain.Persona, ordinal int, variant string) domain.VideoAsset {
	asset := domain.VideoAsset{
		Kind:            domain.KindMotivation,
		Category:        category,
		Persona:         persona,
		Variant:         variant,
		DurationSeconds: 30,
		StorageRef:      fmt.Sprintf("motivation/%s/%s_%s_%02d.mp4", category, persona, variant, ordinal),
	}
	if category.IsPeriodic() {
		asset.PeriodIndex = ordinal
	} else {
		asset.DayNumber = ordinal
	}
	return asset
}

// fixtureAssetRepo serves a fixed registry listing to the catalog manager.
type fixtureAssetRepo struct {
	assets []domain.VideoAsset
}

func (r *fixtureAssetRepo) List(ctx context.Context) ([]domain.VideoAsset, error) {
	return r.assets, nil
}

func (r *fixtureAssetRepo) Create(ctx context.Context, asset *domain.VideoAsset) (primitive.ObjectID, error) {
	return primitive.NilObjectID, errors.New("not implemented")
}

func (r *fixtureAssetRepo) CreateMany(ctx context.Context, assets []domain.VideoAsset) ([]primitive.ObjectID, error) {
	return nil, errors.New("not implemented")
}

func (r *fixtureAssetRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VideoAsset, error) {
	return nil, errors.New("not implemented")
}

func (r *fixtureAssetRepo) DeleteByStorageRef(ctx context.Context, storageRef string) error {
	return errors.New("not implemented")
}
