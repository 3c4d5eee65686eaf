package catalog

import (
	"fmt"
	"testing"

	"alcyxob/fitness-program/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseAsset(category domain.Category, exerciseID, variant string) domain.VideoAsset {
	return domain.VideoAsset{
		Kind:            domain.KindExercise,
		Category:        category,
		ExerciseID:      exerciseID,
		Variant:         variant,
		DurationSeconds: 60,
		StorageRef:      "exercises/" + string(category) + "/" + exerciseID + "_" + variant + ".mp4",
	}
}

func dailyMotivationAsset(category domain.Category, persona domain.Persona, day int, variant string) domain.VideoAsset {
	return domain.VideoAsset{
		Kind:            domain.KindMotivation,
		Category:        category,
		Persona:         persona,
		Variant:         variant,
		DayNumber:       day,
		DurationSeconds: 30,
		StorageRef:      fmt.Sprintf("motivation/%s/%s_%s_day%02d.mp4", category, persona, variant, day),
	}
}

func TestBuild_LookupExact(t *testing.T) {
	snapshot, err := Build([]domain.VideoAsset{
		exerciseAsset(domain.CategoryMain, "squat", "alpha"),
		exerciseAsset(domain.CategoryMain, "squat", "bravo"),
		exerciseAsset(domain.CategoryWarmup, "jumping_jacks", "alpha"),
	})
	require.NoError(t, err)

	asset := snapshot.LookupExact(Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain,
		Key:      "squat",
		Variant:  "bravo",
	})
	require.NotNil(t, asset)
	assert.Equal(t, "squat", asset.ExerciseID)
	assert.Equal(t, "bravo", asset.Variant)

	// Wrong variant is a miss, not an error.
	missing := snapshot.LookupExact(Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain,
		Key:      "squat",
		Variant:  "charlie",
	})
	assert.Nil(t, missing)
}

func TestBuild_MotivationKeyedByDay(t *testing.T) {
	snapshot, err := Build([]domain.VideoAsset{
		dailyMotivationAsset(domain.CategoryIntro, "athlete", 1, "alpha"),
		dailyMotivationAsset(domain.CategoryIntro, "athlete", 2, "alpha"),
	})
	require.NoError(t, err)

	day2 := snapshot.LookupExact(Ref{
		Kind:     domain.KindMotivation,
		Category: domain.CategoryIntro,
		Key:      "athlete",
		Ordinal:  2,
		Variant:  "alpha",
	})
	require.NotNil(t, day2)
	assert.Equal(t, 2, day2.DayNumber)
}

func TestBuild_RejectsInvalidAndDuplicateRecords(t *testing.T) {
	invalid := exerciseAsset(domain.CategoryMain, "squat", "alpha")
	invalid.Persona = "athlete" // exercise clips must not carry a persona

	_, err := Build([]domain.VideoAsset{invalid})
	require.Error(t, err)

	dup := exerciseAsset(domain.CategoryMain, "squat", "alpha")
	dup.StorageRef = "exercises/main/squat_alpha_copy.mp4"
	_, err = Build([]domain.VideoAsset{
		exerciseAsset(domain.CategoryMain, "squat", "alpha"),
		dup,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestCandidatesFor_StableVariantOrder(t *testing.T) {
	// Insert out of order; candidates must come back sorted by variant.
	snapshot, err := Build([]domain.VideoAsset{
		exerciseAsset(domain.CategoryMain, "squat", "charlie"),
		exerciseAsset(domain.CategoryMain, "squat", "alpha"),
		exerciseAsset(domain.CategoryMain, "squat", "bravo"),
	})
	require.NoError(t, err)

	candidates := snapshot.CandidatesFor(Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain,
		Key:      "squat",
		Variant:  "ignored",
	})
	require.Len(t, candidates, 3)
	assert.Equal(t, "alpha", candidates[0].Variant)
	assert.Equal(t, "bravo", candidates[1].Variant)
	assert.Equal(t, "charlie", candidates[2].Variant)
}

func TestPoolFor(t *testing.T) {
	snapshot, err := Build([]domain.VideoAsset{
		exerciseAsset(domain.CategoryMain, "squat", "alpha"),
		exerciseAsset(domain.CategoryMain, "squat", "bravo"), // same exercise, one pool entry
		exerciseAsset(domain.CategoryMain, "lunge", "alpha"),
		exerciseAsset(domain.CategoryMain, "deadlift", "alpha"),
	})
	require.NoError(t, err)

	pool, err := snapshot.PoolFor(domain.CategoryMain)
	require.NoError(t, err)
	// Distinct, sorted by identifier.
	assert.Equal(t, []string{"deadlift", "lunge", "squat"}, pool)
}

func TestPoolFor_UnknownCategory(t *testing.T) {
	snapshot, err := Build(nil)
	require.NoError(t, err)

	_, err = snapshot.PoolFor(domain.Category("pilates"))
	assert.ErrorIs(t, err, ErrUnknownCategory)

	// Valid category with no assets is also unknown to this snapshot.
	_, err = snapshot.PoolFor(domain.CategoryCooldown)
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryAssets(t *testing.T) {
	snapshot, err := Build([]domain.VideoAsset{
		exerciseAsset(domain.CategoryCooldown, "stretch", "alpha"),
		exerciseAsset(domain.CategoryMain, "squat", "alpha"),
	})
	require.NoError(t, err)

	cooldowns := snapshot.CategoryAssets(domain.KindExercise, domain.CategoryCooldown)
	require.Len(t, cooldowns, 1)
	assert.Equal(t, "stretch", cooldowns[0].ExerciseID)

	assert.Empty(t, snapshot.CategoryAssets(domain.KindMotivation, domain.CategoryCooldown))
}
