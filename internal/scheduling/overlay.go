package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// OverlayInterval вычисляет интервал банкетного overlay относительно окна
// основной активности [mainStart, mainStart+mainDuration):
//   - during: [start, start+overlayDuration), по умолчанию длительность основной активности
//   - before: [start-overlayDuration, start), отклоняется, если началось бы раньше открытия
//   - after:  [start+mainDuration, start+mainDuration+overlayDuration)
//
// Overlay — чистая добавка: blackout-окна и буферы на него не распространяются.
func OverlayInterval(sel *domain.PartyAreaSelection, mainStart, mainDuration, openMin int) (startMin, endMin int, err error) {
	startMin, endMin = sel.OverlayWindow(mainStart, mainDuration)

	if sel.Timing == domain.OverlayBefore && startMin < openMin {
		return 0, 0, ErrOverlayBeforeOpen
	}

	return startMin, endMin, nil
}
