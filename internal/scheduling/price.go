package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// ComputePrice вычисляет стоимость бронирования.
// Одиночные активности и сегменты комбо тарифицируются за гостя в час,
// банкетные комнаты — за комнату в час, buyout — фиксированной ставкой
// (overlay при buyout уже включён в аренду площадки).
func ComputePrice(req Request) float64 {
	if req.PartySize >= domain.BuyoutPartySize {
		return domain.BuyoutFlatRate
	}

	var price float64

	switch req.Activity {
	case domain.ActivityAxeThrowing:
		price += float64(req.PartySize) * domain.AxeRatePerGuestHour * hours(req.DurationMinutes)
	case domain.ActivityDuckpin:
		price += float64(req.PartySize) * domain.DuckpinRatePerGuestHour * hours(req.DurationMinutes)
	case domain.ActivityCombo:
		price += float64(req.PartySize) * domain.AxeRatePerGuestHour * hours(req.AxeDurationMinutes)
		price += float64(req.PartySize) * domain.DuckpinRatePerGuestHour * hours(req.DuckpinDurationMinutes)
	}

	if sel := req.PartyArea; sel != nil && len(sel.Rooms) > 0 {
		overlayMinutes := sel.DurationMinutes
		if overlayMinutes == 0 {
			overlayMinutes = req.TotalDuration()
		}
		price += float64(len(sel.Rooms)) * domain.PartyRoomRatePerHour * hours(overlayMinutes)
	}

	return price
}

func hours(minutes int) float64 {
	return float64(minutes) / 60.0
}
