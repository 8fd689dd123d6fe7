package domain

import "time"

// ActivityType represents a bookable activity
type ActivityType string

const (
	ActivityAxeThrowing ActivityType = "axe_throwing"
	ActivityDuckpin     ActivityType = "duckpin"
	ActivityCombo       ActivityType = "combo"
)

// ResourceType represents a kind of physical capacity unit
type ResourceType string

const (
	ResourceAxeBay      ResourceType = "axe_bay"
	ResourceDuckpinLane ResourceType = "duckpin_lane"
	ResourcePartyRoom   ResourceType = "party_room"
)

// PrimaryResourceType returns the resource type a single activity runs on.
// Combo has no single primary type; callers handle its segments separately.
func PrimaryResourceType(activity ActivityType) ResourceType {
	if activity == ActivityDuckpin {
		return ResourceDuckpinLane
	}
	return ResourceAxeBay
}

// Resource is a physical unit of capacity: a bay, a lane or a party room.
// Created and retired by staff configuration; read-only to the engine.
type Resource struct {
	ID           int64
	Name         string
	Type         ResourceType
	Active       bool
	SortPosition int // stable order for greedy assignment and lane pairing
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ClaimSegment labels which part of a booking a claim belongs to
type ClaimSegment string

const (
	SegmentMain    ClaimSegment = "main"
	SegmentFirst   ClaimSegment = "first"
	SegmentSecond  ClaimSegment = "second"
	SegmentOverlay ClaimSegment = "overlay"
)

// ResourceClaim binds one Resource to one Booking for an exact interval
// [StartMin, EndMin) on BookingDate, in venue-local minutes from midnight.
// For a given resource, no two claims of active bookings may overlap.
type ResourceClaim struct {
	ID         int64
	BookingID  int64
	ResourceID int64

	BookingDate time.Time
	StartMin    int
	EndMin      int
	Segment     ClaimSegment

	CreatedAt time.Time
}

// Overlaps reports whether the claim interval intersects [startMin, endMin).
// Touching boundaries do not count as overlap.
func (c *ResourceClaim) Overlaps(startMin, endMin int) bool {
	return c.StartMin < endMin && startMin < c.EndMin
}
