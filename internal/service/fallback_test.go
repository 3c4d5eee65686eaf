package service

import (
	"testing"

	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}

func buildSnapshot(t *testing.T, assets ...domain.VideoAsset) *catalog.Snapshot {
	t.Helper()
	snapshot, err := catalog.Build(assets)
	require.NoError(t, err)
	return snapshot
}

func TestFallback_SameKeyAnyVariant(t *testing.T) {
	metrics := newTestMetrics()
	resolver := NewFallbackResolver(metrics)
	snapshot := buildSnapshot(t,
		exerciseFixture(domain.CategoryMain, "squat", "bravo"),
		exerciseFixture(domain.CategoryMain, "squat", "charlie"),
		exerciseFixture(domain.CategoryMain, "lunge", "alpha"),
	)

	// Preferred variant "alpha" of squat does not exist.
	asset := resolver.Resolve(snapshot, catalog.Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain,
		Key:      "squat",
		Variant:  "alpha",
	})
	require.NotNil(t, asset)
	assert.Equal(t, "squat", asset.ExerciseID)
	assert.Equal(t, "bravo", asset.Variant, "lowest variant wins deterministically")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackHits.WithLabelValues(TierSameKey)))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackMisses))
}

func TestFallback_SameCategoryAnyKey(t *testing.T) {
	metrics := newTestMetrics()
	resolver := NewFallbackResolver(metrics)
	// Only a generic clip of the right category, wrong exercise.
	snapshot := buildSnapshot(t,
		exerciseFixture(domain.CategoryMain, "generic_main", "alpha"),
	)

	asset := resolver.Resolve(snapshot, catalog.Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain,
		Key:      "squat",
		Variant:  "alpha",
	})
	require.NotNil(t, asset, "tier-3 substitute expected, not a miss")
	assert.Equal(t, "generic_main", asset.ExerciseID)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackHits.WithLabelValues(TierSameCategory)))
}

func TestFallback_MotivationWrongPersona(t *testing.T) {
	metrics := newTestMetrics()
	resolver := NewFallbackResolver(metrics)
	snapshot := buildSnapshot(t,
		motivationFixture(domain.CategorySpeech, "mentor", 3, "alpha"),
	)

	// No speech for athlete on day 3 at any variant; the mentor clip is
	// the right category and gets used as the last resort.
	asset := resolver.Resolve(snapshot, catalog.Ref{
		Kind:     domain.KindMotivation,
		Category: domain.CategorySpeech,
		Key:      "athlete",
		Ordinal:  3,
		Variant:  "alpha",
	})
	require.NotNil(t, asset)
	assert.Equal(t, domain.Persona("mentor"), asset.Persona)
}

func TestFallback_FullMiss(t *testing.T) {
	metrics := newTestMetrics()
	resolver := NewFallbackResolver(metrics)
	snapshot := buildSnapshot(t,
		exerciseFixture(domain.CategoryCooldown, "stretch", "alpha"),
	)

	asset := resolver.Resolve(snapshot, catalog.Ref{
		Kind:     domain.KindExercise,
		Category: domain.CategoryMain, // no main clips at all
		Key:      "squat",
		Variant:  "alpha",
	})
	assert.Nil(t, asset)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackMisses))
}
