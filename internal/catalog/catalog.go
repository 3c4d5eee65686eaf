package catalog

import (
	"fmt"
	"sort"
	"time"

	"alcyxob/fitness-program/internal/domain"
)

// CatalogError distinguishes catalog-level failures (unknown category,
// snapshot not loaded) from plain content misses, which are not errors.
type CatalogError string

func (e CatalogError) Error() string {
	return string(e)
}

var (
	ErrUnknownCategory = CatalogError("unknown exercise category")
	ErrNotLoaded       = CatalogError("catalog snapshot not loaded")
)

// Ref addresses one clip in the snapshot by its semantic attributes.
// Key is the exercise identifier for exercise clips and the persona name
// for motivation clips. Ordinal carries the day number for per-day
// motivation clips and the period index for periodic ones; it is zero
// for exercise clips.
type Ref struct {
	Kind     domain.AssetKind
	Category domain.Category
	Key      string
	Ordinal  int
	Variant  string
}

// candidateRef is a Ref with the variant stripped, used for the
// any-variant index consumed by the fallback resolver.
type candidateRef struct {
	Kind     domain.AssetKind
	Category domain.Category
	Key      string
	Ordinal  int
}

type categoryRef struct {
	Kind     domain.AssetKind
	Category domain.Category
}

// Snapshot is an immutable indexed view over the media catalog. It is
// built once from the asset registry and then only read; refreshing the
// catalog builds a new Snapshot and swaps it in atomically, so playlist
// generation may run concurrently against it without locking.
type Snapshot struct {
	exact      map[Ref]*domain.VideoAsset
	candidates map[candidateRef][]*domain.VideoAsset
	byCategory map[categoryRef][]*domain.VideoAsset
	pools      map[domain.Category][]string
	assetCount int
	builtAt    time.Time
}

// Build indexes a list of already-normalized asset records into a
// Snapshot. Every record is validated; a single invalid record fails the
// whole build rather than leaking a half-formed catalog.
func Build(assets []domain.VideoAsset) (*Snapshot, error) {
	s := &Snapshot{
		exact:      make(map[Ref]*domain.VideoAsset, len(assets)),
		candidates: make(map[candidateRef][]*domain.VideoAsset),
		byCategory: make(map[categoryRef][]*domain.VideoAsset),
		pools:      make(map[domain.Category][]string),
		assetCount: len(assets),
		builtAt:    time.Now().UTC(),
	}

	poolSets := make(map[domain.Category]map[string]struct{})

	for i := range assets {
		asset := &assets[i]
		if err := asset.Validate(); err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, asset.StorageRef, err)
		}

		ref := refOf(asset)
		if existing, ok := s.exact[ref]; ok {
			return nil, fmt.Errorf("duplicate asset for %+v: %s and %s", ref, existing.StorageRef, asset.StorageRef)
		}
		s.exact[ref] = asset

		cRef := candidateRef{Kind: ref.Kind, Category: ref.Category, Key: ref.Key, Ordinal: ref.Ordinal}
		s.candidates[cRef] = append(s.candidates[cRef], asset)

		catRef := categoryRef{Kind: ref.Kind, Category: ref.Category}
		s.byCategory[catRef] = append(s.byCategory[catRef], asset)

		if asset.Kind == domain.KindExercise {
			set, ok := poolSets[asset.Category]
			if !ok {
				set = make(map[string]struct{})
				poolSets[asset.Category] = set
			}
			set[asset.ExerciseID] = struct{}{}
		}
	}

	// Deterministic ordering everywhere: candidate lists sort by variant
	// then storage ref, pools sort by exercise identifier. The rotation
	// scheduler depends on the pool order being stable across rebuilds.
	for _, list := range s.candidates {
		sortAssets(list)
	}
	for _, list := range s.byCategory {
		sortAssets(list)
	}
	for category, set := range poolSets {
		pool := make([]string, 0, len(set))
		for id := range set {
			pool = append(pool, id)
		}
		sort.Strings(pool)
		s.pools[category] = pool
	}

	return s, nil
}

func refOf(a *domain.VideoAsset) Ref {
	ordinal := a.DayNumber
	if a.Category.IsPeriodic() {
		ordinal = a.PeriodIndex
	}
	return Ref{
		Kind:     a.Kind,
		Category: a.Category,
		Key:      a.Key(),
		Ordinal:  ordinal,
		Variant:  a.Variant,
	}
}

func sortAssets(list []*domain.VideoAsset) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Variant != list[j].Variant {
			return list[i].Variant < list[j].Variant
		}
		return list[i].StorageRef < list[j].StorageRef
	})
}

// LookupExact returns the asset matching all attributes of ref, or nil
// when no such recording exists. A nil result is a content miss, not an
// error; the caller decides whether to fall back.
func (s *Snapshot) LookupExact(ref Ref) *domain.VideoAsset {
	return s.exact[ref]
}

// CandidatesFor returns all assets matching ref regardless of variant,
// in stable (variant, storage ref) order.
func (s *Snapshot) CandidatesFor(ref Ref) []*domain.VideoAsset {
	return s.candidates[candidateRef{Kind: ref.Kind, Category: ref.Category, Key: ref.Key, Ordinal: ref.Ordinal}]
}

// CategoryAssets returns every asset of the given kind and category, in
// stable order. The fallback resolver uses this as its last tier.
func (s *Snapshot) CategoryAssets(kind domain.AssetKind, category domain.Category) []*domain.VideoAsset {
	return s.byCategory[categoryRef{Kind: kind, Category: category}]
}

// PoolFor returns the ordered pool of distinct exercise identifiers
// available for an exercise category.
func (s *Snapshot) PoolFor(category domain.Category) ([]string, error) {
	if !category.IsExerciseCategory() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	pool, ok := s.pools[category]
	if !ok {
		return nil, fmt.Errorf("%w: no assets for %q", ErrUnknownCategory, category)
	}
	return pool, nil
}

// AssetCount reports how many clips the snapshot indexes.
func (s *Snapshot) AssetCount() int {
	return s.assetCount
}

// BuiltAt reports when the snapshot was constructed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}
