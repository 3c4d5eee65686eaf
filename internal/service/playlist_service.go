package service

import (
	"context"
	"fmt"

	"alcyxob/fitness-program/internal/catalog"
	"alcyxob/fitness-program/internal/config"
	"alcyxob/fitness-program/internal/domain"
)

// --- Service Interface ---

// PlaylistService assembles the daily playlist for one program day and
// one persona. Generation is a pure computation over the current catalog
// snapshot: no locks, no shared mutable state besides the metric
// counters, safe to call concurrently for any number of users.
type PlaylistService interface {
	GeneratePlaylist(ctx context.Context, dayNumber int, persona domain.Persona) (*domain.Playlist, error)
	CycleLengthDays() int
}

// templateSlot is a parsed, validated template entry.
type templateSlot struct {
	category domain.Category
	count    int
}

// --- Service Implementation ---

// playlistService implements the PlaylistService interface.
type playlistService struct {
	catalogs  *catalog.Manager
	scheduler *RotationScheduler
	selector  *ArchetypeContentSelector
	fallback  *FallbackResolver
	metrics   *Metrics

	template         []templateSlot
	personas         map[domain.Persona]struct{}
	preferredVariant string
	cycleLengthDays  int
}

// NewPlaylistService creates a playlist service from the program
// configuration. The template is parsed and validated here once; a slot
// naming an unknown category is a deployment mistake and fails startup.
func NewPlaylistService(
	catalogs *catalog.Manager,
	scheduler *RotationScheduler,
	selector *ArchetypeContentSelector,
	fallback *FallbackResolver,
	metrics *Metrics,
	program config.ProgramConfig,
) (PlaylistService, error) {
	template, err := parseTemplate(program.Template)
	if err != nil {
		return nil, err
	}

	personas := make(map[domain.Persona]struct{}, len(program.Personas))
	for _, p := range program.Personas {
		personas[domain.Persona(p)] = struct{}{}
	}

	return &playlistService{
		catalogs:         catalogs,
		scheduler:        scheduler,
		selector:         selector,
		fallback:         fallback,
		metrics:          metrics,
		template:         template,
		personas:         personas,
		preferredVariant: program.PreferredVariant,
		cycleLengthDays:  program.CycleLengthDays,
	}, nil
}

func parseTemplate(entries []config.TemplateEntry) ([]templateSlot, error) {
	template := make([]templateSlot, 0, len(entries))
	for i, entry := range entries {
		category := domain.Category(entry.Slot)
		if !category.IsExerciseCategory() && !category.IsMotivationCategory() {
			return nil, fmt.Errorf("template entry %d: unknown slot type %q", i, entry.Slot)
		}
		template = append(template, templateSlot{category: category, count: entry.Count})
	}
	return template, nil
}

// CycleLengthDays reports the configured program length.
func (s *playlistService) CycleLengthDays() int {
	return s.cycleLengthDays
}

// GeneratePlaylist walks the template in order and resolves every slot.
// Configuration-class errors (invalid day, unknown persona or category,
// a pool too small for its slot count) abort the whole call. Content
// misses never do: a soft miss substitutes a fallback clip, a hard miss
// leaves a gap item, and the playlist keeps its full template length
// either way.
func (s *playlistService) GeneratePlaylist(ctx context.Context, dayNumber int, persona domain.Persona) (*domain.Playlist, error) {
	if dayNumber < 1 || dayNumber > s.cycleLengthDays {
		return nil, fmt.Errorf("%w: day %d not in 1..%d", ErrInvalidDay, dayNumber, s.cycleLengthDays)
	}
	if _, ok := s.personas[persona]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPersona, persona)
	}

	snapshot, err := s.catalogs.Current()
	if err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{Day: domain.NewProgramDay(dayNumber, persona)}

	for _, slot := range s.template {
		if slot.category.IsMotivationCategory() {
			// Periodic slots only exist on their trigger days; the
			// template entry is simply skipped everywhere else.
			if slot.category.IsPeriodic() && !s.selector.PeriodicDue(slot.category, dayNumber) {
				continue
			}
			for i := 0; i < slot.count; i++ {
				asset, isFallback, err := s.selector.Select(snapshot, slot.category, persona, dayNumber)
				if err != nil {
					return nil, err
				}
				s.appendItem(playlist, slot.category, asset, isFallback)
			}
			continue
		}

		pool, err := snapshot.PoolFor(slot.category)
		if err != nil {
			return nil, err
		}
		exerciseIDs, err := s.scheduler.ExercisesFor(slot.category, pool, dayNumber, slot.count)
		if err != nil {
			return nil, err
		}

		for _, exerciseID := range exerciseIDs {
			ref := catalog.Ref{
				Kind:     domain.KindExercise,
				Category: slot.category,
				Key:      exerciseID,
				Variant:  s.preferredVariant,
			}
			asset := snapshot.LookupExact(ref)
			isFallback := false
			if asset == nil {
				asset = s.fallback.Resolve(snapshot, ref)
				isFallback = asset != nil
			}
			s.appendItem(playlist, slot.category, asset, isFallback)
		}
	}

	s.metrics.PlaylistsGenerated.WithLabelValues(string(persona)).Inc()
	return playlist, nil
}

// appendItem adds the next item in template order. A nil asset occupies
// its slot as an unrecoverable gap; callers decide whether to skip it or
// block playback.
func (s *playlistService) appendItem(playlist *domain.Playlist, category domain.Category, asset *domain.VideoAsset, isFallback bool) {
	if asset == nil {
		s.metrics.PlaylistGaps.Inc()
	}
	playlist.Items = append(playlist.Items, domain.PlaylistItem{
		Order:      len(playlist.Items) + 1,
		SlotType:   category,
		Asset:      asset,
		IsFallback: isFallback,
	})
}
