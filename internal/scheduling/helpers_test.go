package scheduling

import (
	"fmt"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// testSnapshot собирает снапшот с заданным числом активных ресурсов
// каждого типа. ID: стенды 1..n, дорожки 11..., комнаты 21...
func testSnapshot(axeBays, lanes, rooms int) *Snapshot {
	snap := &Snapshot{}

	for i := 0; i < axeBays; i++ {
		snap.Resources = append(snap.Resources, domain.Resource{
			ID:           int64(1 + i),
			Name:         fmt.Sprintf("Bay %d", i+1),
			Type:         domain.ResourceAxeBay,
			Active:       true,
			SortPosition: i + 1,
		})
	}

	for i := 0; i < lanes; i++ {
		snap.Resources = append(snap.Resources, domain.Resource{
			ID:           int64(11 + i),
			Name:         fmt.Sprintf("Lane %d", i+1),
			Type:         domain.ResourceDuckpinLane,
			Active:       true,
			SortPosition: i + 1,
		})
	}

	roomNames := []string{"Party Room A", "Party Room B", "Party Room C"}
	for i := 0; i < rooms; i++ {
		snap.Resources = append(snap.Resources, domain.Resource{
			ID:           int64(21 + i),
			Name:         roomNames[i],
			Type:         domain.ResourcePartyRoom,
			Active:       true,
			SortPosition: i + 1,
		})
	}

	return snap
}

var nextClaimID int64

func claim(bookingID, resourceID int64, startMin, endMin int) domain.ResourceClaim {
	nextClaimID++
	return domain.ResourceClaim{
		ID:         nextClaimID,
		BookingID:  bookingID,
		ResourceID: resourceID,
		StartMin:   startMin,
		EndMin:     endMin,
		Segment:    domain.SegmentMain,
	}
}

// defaultWindow окно 16:00-22:00
func defaultWindow() domain.OpenWindow {
	return domain.OpenWindow{OpenMin: 960, CloseMin: 1320}
}

func axeRequest(partySize, duration int) Request {
	return Request{
		Activity:        domain.ActivityAxeThrowing,
		PartySize:       partySize,
		DurationMinutes: duration,
		StepMinutes:     30,
		Window:          defaultWindow(),
		NowMin:          -1,
	}
}
