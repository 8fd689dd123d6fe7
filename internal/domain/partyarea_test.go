package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlayWindow(t *testing.T) {
	tests := []struct {
		name      string
		sel       PartyAreaSelection
		wantStart int
		wantEnd   int
	}{
		{
			name:      "during defaults to main duration",
			sel:       PartyAreaSelection{Timing: OverlayDuring},
			wantStart: 1020,
			wantEnd:   1110,
		},
		{
			name:      "during with explicit duration",
			sel:       PartyAreaSelection{Timing: OverlayDuring, DurationMinutes: 60},
			wantStart: 1020,
			wantEnd:   1080,
		},
		{
			name:      "before ends at main start",
			sel:       PartyAreaSelection{Timing: OverlayBefore, DurationMinutes: 60},
			wantStart: 960,
			wantEnd:   1020,
		},
		{
			name:      "after starts at main end",
			sel:       PartyAreaSelection{Timing: OverlayAfter, DurationMinutes: 120},
			wantStart: 1110,
			wantEnd:   1230,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.sel.OverlayWindow(1020, 90)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestBookingStateChecks(t *testing.T) {
	b := Booking{Status: StatusConfirmed, PartySize: 10}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())
	assert.False(t, b.IsBuyout())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())

	// No-shows keep their claims for the historical record
	b.Status = StatusNoShow
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeRescheduled())

	b.PartySize = BuyoutPartySize
	assert.True(t, b.IsBuyout())
}
