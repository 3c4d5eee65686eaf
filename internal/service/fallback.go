package service

import (
	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/domain"
)

// FallbackResolver finds a substitute clip when an exact catalog lookup
// comes up empty. Tiers are tried in a fixed priority order:
//
//  1. Same key, any variant — just a different recorded take.
//  2. Persona-family fallback. The persona set is flat (no hierarchy
//     between the three trainers), so this tier never matches and the
//     search drops straight through.
//  3. Same category, any key — a generic clip of the right category.
//
// Every recovery increments a per-tier hit counter; a full miss
// increments the miss counter and returns nil.
type FallbackResolver struct {
	metrics *Metrics
}

// NewFallbackResolver creates a fallback resolver reporting to metrics.
func NewFallbackResolver(metrics *Metrics) *FallbackResolver {
	return &FallbackResolver{metrics: metrics}
}

// Resolve returns the best available substitute for the missed ref, or
// nil when every tier is empty. Candidate lists are pre-sorted by the
// snapshot, so the substitute choice is deterministic.
func (r *FallbackResolver) Resolve(snapshot *catalog.Snapshot, ref catalog.Ref) *domain.VideoAsset {
	if candidates := snapshot.CandidatesFor(ref); len(candidates) > 0 {
		r.metrics.FallbackHits.WithLabelValues(TierSameKey).Inc()
		return candidates[0]
	}

	if assets := snapshot.CategoryAssets(ref.Kind, ref.Category); len(assets) > 0 {
		r.metrics.FallbackHits.WithLabelValues(TierSameCategory).Inc()
		return assets[0]
	}

	r.metrics.FallbackMisses.Inc()
	return nil
}
