package domain

// OverlayTiming positions a party-area reservation relative to the main
// activity window
type OverlayTiming string

const (
	OverlayBefore OverlayTiming = "before"
	OverlayDuring OverlayTiming = "during"
	OverlayAfter  OverlayTiming = "after"
)

// PartyAreaSelection is a request for one or more named party rooms layered
// onto a booking. The overlay claims party_room resources independently of
// the main activity's resources.
type PartyAreaSelection struct {
	Rooms           []string // resource names, e.g. "Party Room A"
	DurationMinutes int      // 60-480, whole hours; 0 = default to the main duration (during only)
	Timing          OverlayTiming
}

// OverlayWindow computes the overlay interval relative to the main activity
// window [mainStart, mainStart+mainDuration). The caller validates that a
// "before" overlay does not begin before the venue opens.
func (s *PartyAreaSelection) OverlayWindow(mainStart, mainDuration int) (startMin, endMin int) {
	duration := s.DurationMinutes
	if duration == 0 {
		duration = mainDuration
	}

	switch s.Timing {
	case OverlayBefore:
		return mainStart - duration, mainStart
	case OverlayAfter:
		return mainStart + mainDuration, mainStart + mainDuration + duration
	default: // during
		return mainStart, mainStart + duration
	}
}
