package service

import (
	"fmt"

	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/domain"
)

// ArchetypeContentSelector resolves motivation clips for a persona and
// program day. Per-day categories (intro, speeches, farewell) are
// authored one clip per day per persona and looked up by the literal day
// number. Periodic categories (weekly, biweekly, final) only exist on
// trigger days and are looked up by their period index instead.
type ArchetypeContentSelector struct {
	fallback         *FallbackResolver
	preferredVariant string
	cycleLengthDays  int
}

// NewArchetypeContentSelector creates a selector for a program of the
// given length.
func NewArchetypeContentSelector(fallback *FallbackResolver, preferredVariant string, cycleLengthDays int) *ArchetypeContentSelector {
	return &ArchetypeContentSelector{
		fallback:         fallback,
		preferredVariant: preferredVariant,
		cycleLengthDays:  cycleLengthDays,
	}
}

// PeriodicDue reports whether a periodic motivation category triggers on
// the given day: weekly clips close each week, biweekly clips every
// second week, the final clip only the last day of the program.
func (s *ArchetypeContentSelector) PeriodicDue(category domain.Category, dayNumber int) bool {
	switch category {
	case domain.CategoryWeekly:
		return dayNumber%7 == 0
	case domain.CategoryBiweekly:
		return dayNumber%14 == 0
	case domain.CategoryFinal:
		return dayNumber == s.cycleLengthDays
	}
	return false
}

// Select resolves the motivation clip for (category, persona, dayNumber).
// The second return value reports whether the clip came from a fallback
// tier; a (nil, false) pair with a nil error is a hard miss.
func (s *ArchetypeContentSelector) Select(snapshot *catalog.Snapshot, category domain.Category, persona domain.Persona, dayNumber int) (*domain.VideoAsset, bool, error) {
	if dayNumber < 1 || dayNumber > s.cycleLengthDays {
		return nil, false, fmt.Errorf("%w: day %d not in 1..%d", ErrInvalidDay, dayNumber, s.cycleLengthDays)
	}

	ordinal := dayNumber
	if category.IsPeriodic() {
		ordinal = s.periodIndex(category, dayNumber)
	}

	ref := catalog.Ref{
		Kind:     domain.KindMotivation,
		Category: category,
		Key:      string(persona),
		Ordinal:  ordinal,
		Variant:  s.preferredVariant,
	}

	if asset := snapshot.LookupExact(ref); asset != nil {
		return asset, false, nil
	}
	if asset := s.fallback.Resolve(snapshot, ref); asset != nil {
		return asset, true, nil
	}
	return nil, false, nil
}

// periodIndex derives the occurrence number of a periodic clip: week 3's
// weekly clip has index 3, the second biweekly clip index 2. The single
// final clip is authored without an index.
func (s *ArchetypeContentSelector) periodIndex(category domain.Category, dayNumber int) int {
	switch category {
	case domain.CategoryWeekly:
		return dayNumber / 7
	case domain.CategoryBiweekly:
		return dayNumber / 14
	}
	return 0
}
