package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fallback tier labels.
const (
	TierSameKey      = "same_key"      // same exercise/persona, different recording variant
	TierSameCategory = "same_category" // generic clip of the right category
)

// Metrics aggregates the operational counters the playlist core exposes.
// All counters are atomic; playlist generation itself stays lock-free.
type Metrics struct {
	FallbackHits       *prometheus.CounterVec
	FallbackMisses     prometheus.Counter
	PlaylistsGenerated *prometheus.CounterVec
	PlaylistGaps       prometheus.Counter
}

// NewMetrics registers the playlist counters with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FallbackHits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "playlist_fallback_hits_total",
			Help: "Catalog misses recovered by the fallback resolver, by tier.",
		}, []string{"tier"}),
		FallbackMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "playlist_fallback_misses_total",
			Help: "Catalog misses no fallback tier could recover.",
		}),
		PlaylistsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "playlists_generated_total",
			Help: "Daily playlists generated, by persona.",
		}, []string{"persona"}),
		PlaylistGaps: factory.NewCounter(prometheus.CounterOpts{
			Name: "playlist_gaps_total",
			Help: "Playlist items returned without a resolved asset.",
		}),
	}
}
