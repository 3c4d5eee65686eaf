package catalog

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"
)

// Manager owns the current catalog snapshot. Refresh reads the full
// asset registry, normalizes it, builds a fresh snapshot and swaps it in
// with a single atomic pointer store. In-flight playlist generations
// keep reading the snapshot they started with; new calls see the new one.
type Manager struct {
	current    atomic.Pointer[Snapshot]
	assetRepo  repository.AssetRepository
	normalizer *Normalizer

	// minPoolSizes holds the per-day slot count the template requests
	// for each exercise category. A pool smaller than its slot count is
	// a configuration error and is reported at refresh time, before any
	// scheduling call trips over it.
	minPoolSizes map[domain.Category]int
}

// NewManager creates a catalog manager reading from the given registry.
func NewManager(assetRepo repository.AssetRepository, normalizer *Normalizer, minPoolSizes map[domain.Category]int) *Manager {
	return &Manager{
		assetRepo:    assetRepo,
		normalizer:   normalizer,
		minPoolSizes: minPoolSizes,
	}
}

// Current returns the active snapshot, or ErrNotLoaded before the first
// successful refresh.
func (m *Manager) Current() (*Snapshot, error) {
	snapshot := m.current.Load()
	if snapshot == nil {
		return nil, ErrNotLoaded
	}
	return snapshot, nil
}

// Refresh rebuilds the snapshot from the registry. On any error the
// previous snapshot stays active.
func (m *Manager) Refresh(ctx context.Context) (*Snapshot, error) {
	records, err := m.assetRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing asset registry: %w", err)
	}

	normalized, err := m.normalizer.Normalize(records)
	if err != nil {
		return nil, fmt.Errorf("normalizing asset registry: %w", err)
	}

	snapshot, err := Build(normalized)
	if err != nil {
		return nil, fmt.Errorf("building catalog snapshot: %w", err)
	}

	for category, minSize := range m.minPoolSizes {
		pool, err := snapshot.PoolFor(category)
		if err != nil {
			log.Printf("WARN: catalog has no pool for template category %q", category)
			continue
		}
		if len(pool) < minSize {
			log.Printf("WARN: pool for %q has %d exercises but the template requests %d per day; scheduling for it will fail", category, len(pool), minSize)
		}
	}

	m.current.Store(snapshot)
	log.Printf("INFO: catalog snapshot refreshed: %d assets, %d exercise pools", snapshot.AssetCount(), len(snapshot.pools))
	return snapshot, nil
}
