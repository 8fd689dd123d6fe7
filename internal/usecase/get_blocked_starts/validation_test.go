package get_blocked_starts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AXB-BookingService/internal/domain"
	"github.com/m04kA/AXB-BookingService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		Activity:        domain.ActivityAxeThrowing,
		PartySize:       6,
		Date:            time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		StepMinutes:     30,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
		},
		{
			name:    "unknown activity",
			mutate:  func(r *Request) { r.Activity = "laser_tag" },
			wantErr: true,
		},
		{
			name:    "party size below minimum",
			mutate:  func(r *Request) { r.PartySize = 0 },
			wantErr: true,
		},
		{
			name:    "party size above maximum",
			mutate:  func(r *Request) { r.PartySize = domain.MaxPartySize + 1 },
			wantErr: true,
		},
		{
			name:    "missing date",
			mutate:  func(r *Request) { r.Date = time.Time{} },
			wantErr: true,
		},
		{
			name:    "duration below minimum",
			mutate:  func(r *Request) { r.DurationMinutes = 30 },
			wantErr: true,
		},
		{
			name:    "duration not on half-hour grid",
			mutate:  func(r *Request) { r.DurationMinutes = 75 },
			wantErr: true,
		},
		{
			name:    "duration above maximum",
			mutate:  func(r *Request) { r.DurationMinutes = domain.MaxDurationMinutes + 30 },
			wantErr: true,
		},
		{
			name:    "invalid step",
			mutate:  func(r *Request) { r.StepMinutes = 45 },
			wantErr: true,
		},
		{
			name: "combo with half-hour segments is valid",
			mutate: func(r *Request) {
				r.Activity = domain.ActivityCombo
				r.DurationMinutes = 0
				r.AxeDurationMinutes = 30
				r.DuckpinDurationMinutes = 30
				r.AxeFirst = true
			},
		},
		{
			name: "combo with zero segment",
			mutate: func(r *Request) {
				r.Activity = domain.ActivityCombo
				r.AxeDurationMinutes = 0
				r.DuckpinDurationMinutes = 60
			},
			wantErr: true,
		},
		{
			name: "party area without rooms",
			mutate: func(r *Request) {
				r.PartyArea = &PartyAreaRequest{Timing: domain.OverlayDuring}
			},
			wantErr: true,
		},
		{
			name: "party area before without duration",
			mutate: func(r *Request) {
				r.PartyArea = &PartyAreaRequest{
					Rooms:  []string{"Party Room A"},
					Timing: domain.OverlayBefore,
				}
			},
			wantErr: true,
		},
		{
			name: "party area during defaults its duration",
			mutate: func(r *Request) {
				r.PartyArea = &PartyAreaRequest{
					Rooms:  []string{"Party Room A"},
					Timing: domain.OverlayDuring,
				}
			},
		},
		{
			name: "party area duration not whole hours",
			mutate: func(r *Request) {
				r.PartyArea = &PartyAreaRequest{
					Rooms:           []string{"Party Room A"},
					DurationMinutes: 90,
					Timing:          domain.OverlayAfter,
				}
			},
			wantErr: true,
		},
		{
			name: "inverted window override",
			mutate: func(r *Request) {
				r.OpenMinOverride = ptr.Ptr(1200)
				r.CloseMinOverride = ptr.Ptr(1080)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
