package catalog

import (
	"testing"

	"alcyxob/fitness-program/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNormalizer() *Normalizer {
	return NewNormalizer([]string{"athlete", "mentor", "drill_sergeant"})
}

func TestNormalize_LegacyPersonaNames(t *testing.T) {
	raw := []domain.VideoAsset{
		dailyMotivationAsset(domain.CategoryIntro, "sportsman", 1, "alpha"),
		dailyMotivationAsset(domain.CategoryIntro, "coach", 1, "alpha"),
		dailyMotivationAsset(domain.CategoryIntro, "sergeant", 1, "alpha"),
		dailyMotivationAsset(domain.CategorySpeech, "mentor", 1, "alpha"), // already canonical
	}

	normalized, err := testNormalizer().Normalize(raw)
	require.NoError(t, err)
	require.Len(t, normalized, 4)

	assert.Equal(t, domain.Persona("athlete"), normalized[0].Persona)
	assert.Equal(t, domain.Persona("mentor"), normalized[1].Persona)
	assert.Equal(t, domain.Persona("drill_sergeant"), normalized[2].Persona)
	assert.Equal(t, domain.Persona("mentor"), normalized[3].Persona)
}

func TestNormalize_LegacyEnduranceCategory(t *testing.T) {
	legacy := exerciseAsset("sexual", "bridge_hold", "alpha")

	normalized, err := testNormalizer().Normalize([]domain.VideoAsset{legacy})
	require.NoError(t, err)
	require.Len(t, normalized, 1)
	assert.Equal(t, domain.CategoryEndurance, normalized[0].Category)
}

func TestNormalize_UnknownPersonaFailsBatch(t *testing.T) {
	raw := []domain.VideoAsset{
		dailyMotivationAsset(domain.CategoryIntro, "athlete", 1, "alpha"),
		dailyMotivationAsset(domain.CategoryIntro, "ghost", 2, "alpha"),
	}

	_, err := testNormalizer().Normalize(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
	// The error names the offending record so the registry can be fixed.
	assert.Contains(t, err.Error(), "asset 1")
}

func TestNormalize_InvalidRecordFailsBatch(t *testing.T) {
	bad := exerciseAsset(domain.CategoryMain, "", "alpha") // missing exercise id

	_, err := testNormalizer().Normalize([]domain.VideoAsset{bad})
	require.Error(t, err)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := []domain.VideoAsset{
		dailyMotivationAsset(domain.CategoryIntro, "coach", 1, "alpha"),
	}

	_, err := testNormalizer().Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.Persona("coach"), raw[0].Persona)
}
