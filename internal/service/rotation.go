package service

import (
	"errors"
	"fmt"

	"alcyxob/fitness-program/internal/domain"
)

// --- Error Definitions ---
var (
	ErrInsufficientPool = errors.New("exercise pool is smaller than the per-day slot count")
	ErrInvalidDay       = errors.New("day number is outside the program range")
	ErrUnknownPersona   = errors.New("persona is not part of the configured persona set")
)

// RotationScheduler assigns exercise identifiers to program days so that
// content does not repeat until the whole pool has been shown. The pool
// is treated as a circular buffer: day d takes the k identifiers starting
// at offset ((d-1)*k) mod poolSize, wrapping at the end. The same day
// always yields the same slice, and every pool member is used before any
// repeats, provided the pool is at least as large as the slot count.
type RotationScheduler struct{}

// NewRotationScheduler creates a rotation scheduler.
func NewRotationScheduler() *RotationScheduler {
	return &RotationScheduler{}
}

// ExercisesFor returns count distinct exercise identifiers from the pool
// for the given day. A pool smaller than count cannot fill a single day
// without duplicates; that is a catalog configuration error and fails
// loudly instead of being papered over.
func (s *RotationScheduler) ExercisesFor(category domain.Category, pool []string, dayNumber, count int) ([]string, error) {
	if dayNumber < 1 {
		return nil, fmt.Errorf("%w: day %d", ErrInvalidDay, dayNumber)
	}
	poolSize := len(pool)
	if poolSize < count {
		return nil, fmt.Errorf("%w: category %q has %d exercises, template requests %d per day", ErrInsufficientPool, category, poolSize, count)
	}

	start := ((dayNumber - 1) * count) % poolSize
	ids := make([]string, count)
	for i := 0; i < count; i++ {
		ids[i] = pool[(start+i)%poolSize]
	}
	return ids, nil
}
