package catalog

import (
	"fmt"

	"alcyxob/fitness-program/internal/domain"
)

// The registry carries two generations of naming for the same content:
// an old scheme from the first production batch and the current one.
// Normalization happens exactly once, here, so the rest of the core only
// ever sees canonical values.

// legacyPersonas maps first-batch persona spellings to their canonical
// names. Current-scheme names pass through untouched.
var legacyPersonas = map[domain.Persona]domain.Persona{
	"sportsman": "athlete",
	"coach":     "mentor",
	"sergeant":  "drill_sergeant",
}

// legacyCategories maps retired category spellings to canonical ones.
// The first batch shipped endurance content under a different label; a
// migration renamed the media files but registry rows predating it may
// still carry the old value.
var legacyCategories = map[domain.Category]domain.Category{
	"sexual": domain.CategoryEndurance,
}

// Normalizer rewrites raw registry records into canonical form and
// rejects records naming personas outside the configured set.
type Normalizer struct {
	personas map[domain.Persona]struct{}
}

// NewNormalizer builds a normalizer accepting the given canonical
// persona names.
func NewNormalizer(personas []string) *Normalizer {
	set := make(map[domain.Persona]struct{}, len(personas))
	for _, p := range personas {
		set[domain.Persona(p)] = struct{}{}
	}
	return &Normalizer{personas: set}
}

// Normalize returns a normalized copy of the given records. Records are
// never silently dropped: any record that cannot be normalized fails the
// whole batch with a positional error, so registry problems surface at
// ingestion instead of as playlist gaps later.
func (n *Normalizer) Normalize(assets []domain.VideoAsset) ([]domain.VideoAsset, error) {
	out := make([]domain.VideoAsset, len(assets))
	for i, asset := range assets {
		if canonical, ok := legacyCategories[asset.Category]; ok {
			asset.Category = canonical
		}
		if asset.Kind == domain.KindMotivation {
			if canonical, ok := legacyPersonas[asset.Persona]; ok {
				asset.Persona = canonical
			}
			if _, ok := n.personas[asset.Persona]; !ok {
				return nil, fmt.Errorf("asset %d (%s): persona %q is not in the configured persona set", i, asset.StorageRef, asset.Persona)
			}
		}
		if err := asset.Validate(); err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, asset.StorageRef, err)
		}
		out[i] = asset
	}
	return out, nil
}
