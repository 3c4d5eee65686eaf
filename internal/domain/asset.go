package domain

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetKind distinguishes the broad purpose of a clip.
type AssetKind string

const (
	KindExercise   AssetKind = "exercise"   // an exercise demonstration clip
	KindMotivation AssetKind = "motivation" // a persona-specific motivational clip
)

// Category is the semantic slot a clip can fill inside a daily playlist.
// Exercise and motivation kinds each have their own set of valid categories.
type Category string

// Exercise categories.
const (
	CategoryWarmup    Category = "warmup"
	CategoryMain      Category = "main"
	CategoryEndurance Category = "endurance"
	CategoryCooldown  Category = "cooldown"
)

// Motivation categories.
const (
	CategoryIntro       Category = "intro"
	CategoryAfterWarmup Category = "after_warmup"
	CategoryAfterMain   Category = "after_main"
	CategorySpeech      Category = "speech"
	CategoryFarewell    Category = "farewell"
	CategoryWeekly      Category = "weekly"
	CategoryBiweekly    Category = "biweekly"
	CategoryFinal       Category = "final"
)

// Persona identifies one of the trainer personas a user follows through
// the program. The set of valid personas is supplied by configuration;
// legacy registry spellings are normalized at ingestion time.
type Persona string

// IsExerciseCategory reports whether c is a valid category for exercise clips.
func (c Category) IsExerciseCategory() bool {
	switch c {
	case CategoryWarmup, CategoryMain, CategoryEndurance, CategoryCooldown:
		return true
	}
	return false
}

// IsMotivationCategory reports whether c is a valid category for motivation clips.
func (c Category) IsMotivationCategory() bool {
	switch c {
	case CategoryIntro, CategoryAfterWarmup, CategoryAfterMain, CategorySpeech,
		CategoryFarewell, CategoryWeekly, CategoryBiweekly, CategoryFinal:
		return true
	}
	return false
}

// IsPeriodic reports whether c is a motivation category that only appears
// on trigger days (end of week, end of fortnight, last day of the program).
func (c Category) IsPeriodic() bool {
	switch c {
	case CategoryWeekly, CategoryBiweekly, CategoryFinal:
		return true
	}
	return false
}

// VideoAsset is one playable clip in the media catalog. The registry
// stores one document per clip; the catalog snapshot indexes them by
// their semantic attributes. The actual media file lives in object
// storage under StorageRef.
type VideoAsset struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind     AssetKind          `bson:"kind" json:"kind"`
	Category Category           `bson:"category" json:"category"`

	// ExerciseID is set only for exercise clips: the stable identifier
	// of the underlying exercise (e.g. "squat_narrow").
	ExerciseID string `bson:"exerciseId,omitempty" json:"exerciseId,omitempty"`

	// Persona is set only for motivation clips.
	Persona Persona `bson:"persona,omitempty" json:"persona,omitempty"`

	// Variant identifies the performer/model recording when multiple
	// takes exist for the same (category, exercise) or (category, persona).
	Variant string `bson:"variant" json:"variant"`

	// DayNumber keys per-day motivation clips (intro, speech, ...) to a
	// literal program day. Zero for exercise clips and periodic clips.
	DayNumber int `bson:"dayNumber,omitempty" json:"dayNumber,omitempty"`

	// PeriodIndex keys periodic motivation clips (weekly, biweekly) to
	// their occurrence (week 1, week 2, ...). Zero otherwise.
	PeriodIndex int `bson:"periodIndex,omitempty" json:"periodIndex,omitempty"`

	DurationSeconds int       `bson:"durationSeconds" json:"durationSeconds"`
	StorageRef      string    `bson:"storageRef" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Key returns the lookup key for the asset: the exercise identifier for
// exercise clips, the persona name for motivation clips.
func (a *VideoAsset) Key() string {
	if a.Kind == KindExercise {
		return a.ExerciseID
	}
	return string(a.Persona)
}

// Validate checks the kind/category/key invariants. Exercise clips carry
// an exercise identifier and no persona; motivation clips the reverse.
func (a *VideoAsset) Validate() error {
	switch a.Kind {
	case KindExercise:
		if !a.Category.IsExerciseCategory() {
			return fmt.Errorf("category %q is not valid for exercise clips", a.Category)
		}
		if a.ExerciseID == "" {
			return errors.New("exercise clip requires an exercise identifier")
		}
		if a.Persona != "" {
			return errors.New("exercise clip must not carry a persona")
		}
	case KindMotivation:
		if !a.Category.IsMotivationCategory() {
			return fmt.Errorf("category %q is not valid for motivation clips", a.Category)
		}
		if a.Persona == "" {
			return errors.New("motivation clip requires a persona")
		}
		if a.ExerciseID != "" {
			return errors.New("motivation clip must not carry an exercise identifier")
		}
	default:
		return fmt.Errorf("unknown asset kind %q", a.Kind)
	}
	if a.StorageRef == "" {
		return errors.New("asset requires a storage reference")
	}
	return nil
}
