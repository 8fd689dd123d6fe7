package update_booking

import (
	"fmt"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if req.Status != nil && req.hasScheduleChanges() {
		return fmt.Errorf("%w: status change and schedule edit cannot be combined", ErrInvalidInput)
	}

	if req.Status == nil && !req.hasScheduleChanges() && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Status != nil {
		switch *req.Status {
		case domain.StatusCancelled, domain.StatusNoShow, domain.StatusCompleted:
		default:
			return fmt.Errorf("%w: status %q cannot be set directly", ErrInvalidStatusChange, *req.Status)
		}
		if *req.Status == domain.StatusCancelled {
			if req.CancellationReason == nil || *req.CancellationReason == "" {
				return fmt.Errorf("%w: cancellation requires a reason", ErrInvalidInput)
			}
			if len(*req.CancellationReason) > domain.MaxCancelReasonLen {
				return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
					ErrInvalidInput, domain.MaxCancelReasonLen)
			}
		}
	}

	if req.Activity != nil {
		switch *req.Activity {
		case domain.ActivityAxeThrowing, domain.ActivityDuckpin, domain.ActivityCombo:
		default:
			return fmt.Errorf("%w: unknown activity %q", ErrInvalidInput, *req.Activity)
		}
	}

	if req.StartMin != nil && (*req.StartMin < 0 || *req.StartMin >= 24*60) {
		return fmt.Errorf("%w: startMin must be within the day", ErrInvalidInput)
	}

	if req.PartySize != nil && (*req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize) {
		return fmt.Errorf("%w: partySize must be between %d and %d",
			ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return err
		}
	}

	if req.AxeDurationMinutes != nil {
		if err := validateSegmentDuration(*req.AxeDurationMinutes); err != nil {
			return err
		}
	}

	if req.DuckpinDurationMinutes != nil {
		if err := validateSegmentDuration(*req.DuckpinDurationMinutes); err != nil {
			return err
		}
	}

	if req.PartyArea != nil && req.ClearPartyArea {
		return fmt.Errorf("%w: partyArea and clearPartyArea cannot be combined", ErrInvalidInput)
	}

	if req.PartyArea != nil {
		if err := validatePartyArea(req.PartyArea); err != nil {
			return err
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDuration проверяет длительность одиночной активности
func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes ||
		minutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: durationMinutes must be %d-%d in %d-minute steps",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes, domain.DurationStepMinutes)
	}
	return nil
}

// validateSegmentDuration проверяет длительность сегмента комбо
func validateSegmentDuration(minutes int) error {
	if minutes < domain.DurationStepMinutes || minutes > domain.MaxDurationMinutes ||
		minutes%domain.DurationStepMinutes != 0 {
		return fmt.Errorf("%w: combo segment duration must be %d-%d in %d-minute steps",
			ErrInvalidInput, domain.DurationStepMinutes, domain.MaxDurationMinutes, domain.DurationStepMinutes)
	}
	return nil
}

// validatePartyArea проверяет запрошенный банкетный overlay
func validatePartyArea(sel *PartyAreaRequest) error {
	if len(sel.Rooms) == 0 {
		return fmt.Errorf("%w: partyArea requires at least one room", ErrInvalidInput)
	}

	switch sel.Timing {
	case domain.OverlayBefore, domain.OverlayDuring, domain.OverlayAfter:
	default:
		return fmt.Errorf("%w: unknown overlay timing %q", ErrInvalidInput, sel.Timing)
	}

	if sel.DurationMinutes == 0 {
		if sel.Timing != domain.OverlayDuring {
			return fmt.Errorf("%w: overlay duration is required for timing %q", ErrInvalidInput, sel.Timing)
		}
		return nil
	}

	if sel.DurationMinutes < domain.MinOverlayMinutes || sel.DurationMinutes > domain.MaxOverlayMinutes ||
		sel.DurationMinutes%domain.OverlayRoundMinutes != 0 {
		return fmt.Errorf("%w: overlay duration must be %d-%d in whole hours",
			ErrInvalidInput, domain.MinOverlayMinutes, domain.MaxOverlayMinutes)
	}

	return nil
}
