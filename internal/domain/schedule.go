package domain

import "time"

// OpenWindow is the venue's operating window for one weekday, in venue-local
// minutes from midnight. Closed days have Closed = true.
type OpenWindow struct {
	OpenMin  int
	CloseMin int
	Closed   bool
}

// VenueHours maps each weekday to its operating window
type VenueHours map[time.Weekday]OpenWindow

// WindowFor returns the operating window for the date's weekday.
// Today's partial-day cutoff is applied by the availability calculator,
// not here.
func (h VenueHours) WindowFor(date time.Time) OpenWindow {
	w, ok := h[date.Weekday()]
	if !ok {
		return OpenWindow{Closed: true}
	}
	return w
}

// DefaultVenueHours is the venue's standard week. Staff overrides are a
// configuration concern outside the engine.
var DefaultVenueHours = VenueHours{
	time.Tuesday:   {OpenMin: 960, CloseMin: 1320},  // 16:00-22:00
	time.Wednesday: {OpenMin: 960, CloseMin: 1320},  // 16:00-22:00
	time.Thursday:  {OpenMin: 960, CloseMin: 1320},  // 16:00-22:00
	time.Friday:    {OpenMin: 960, CloseMin: 1440},  // 16:00-24:00
	time.Saturday:  {OpenMin: 720, CloseMin: 1440},  // 12:00-24:00
	time.Sunday:    {OpenMin: 720, CloseMin: 1200},  // 12:00-20:00
	time.Monday:    {Closed: true},
}
