package domain

import "time"

// BlackoutRule blocks reservations of one activity (or all activities)
// inside [StartMin, EndMin) on Date, in venue-local minutes from midnight.
type BlackoutRule struct {
	ID       int64
	Date     time.Time
	Activity *ActivityType // nil = applies to every activity
	StartMin int
	EndMin   int
	Reason   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the rule constrains the given activity.
// A combo booking is constrained by rules tagged to either of its
// sub-activities.
func (r *BlackoutRule) AppliesTo(activity ActivityType) bool {
	if r.Activity == nil {
		return true
	}
	if activity == ActivityCombo {
		return *r.Activity == ActivityAxeThrowing || *r.Activity == ActivityDuckpin || *r.Activity == ActivityCombo
	}
	return *r.Activity == activity
}

// Overlaps reports whether the rule interval intersects [startMin, endMin)
func (r *BlackoutRule) Overlaps(startMin, endMin int) bool {
	return r.StartMin < endMin && startMin < r.EndMin
}

// BufferRule is the padding in minutes required immediately before and
// after a reservation of one activity (or all activities).
type BufferRule struct {
	ID            int64
	Activity      *ActivityType // nil = applies to every activity
	BeforeMinutes int
	AfterMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the rule pads the given activity
func (r *BufferRule) AppliesTo(activity ActivityType) bool {
	if r.Activity == nil {
		return true
	}
	if activity == ActivityCombo {
		return *r.Activity == ActivityAxeThrowing || *r.Activity == ActivityDuckpin || *r.Activity == ActivityCombo
	}
	return *r.Activity == activity
}
