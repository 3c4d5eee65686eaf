package domain

// ProgramDay is a pure value identifying one day of the guided program
// for one persona. It is never persisted by the playlist core.
type ProgramDay struct {
	DayNumber  int
	WeekNumber int
	Persona    Persona
}

// NewProgramDay derives the week number from the day number (1..7 is
// week 1, 8..14 week 2, and so on). Range validation against the
// configured program length happens in the composer, not here.
func NewProgramDay(dayNumber int, persona Persona) ProgramDay {
	return ProgramDay{
		DayNumber:  dayNumber,
		WeekNumber: (dayNumber + 6) / 7,
		Persona:    persona,
	}
}

// PlaylistItem is one resolved entry of a daily playlist. Asset is nil
// when neither the exact lookup nor any fallback tier produced a clip;
// the item still occupies its slot so the playlist keeps its full length.
type PlaylistItem struct {
	Order      int         `json:"order"`
	SlotType   Category    `json:"slotType"`
	Asset      *VideoAsset `json:"asset,omitempty"`
	IsFallback bool        `json:"isFallback"`
}

// Playlist is the finished ordered sequence for one (day, persona) pair.
type Playlist struct {
	Day   ProgramDay     `json:"day"`
	Items []PlaylistItem `json:"items"`
}

// TotalDurationSeconds sums the playback length of all resolved items.
// Unresolved gaps contribute nothing.
func (p *Playlist) TotalDurationSeconds() int {
	var total int
	for _, item := range p.Items {
		if item.Asset != nil {
			total += item.Asset.DurationSeconds
		}
	}
	return total
}
