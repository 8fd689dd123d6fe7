package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// Requirements требуемое количество ресурсов каждого типа
type Requirements struct {
	AxeBays      int
	DuckpinLanes int
	PartyRooms   int // заполняется только при buyout
	Buyout       bool
}

// CountFor возвращает требуемое количество ресурсов типа
func (r Requirements) CountFor(rtype domain.ResourceType) int {
	switch rtype {
	case domain.ResourceAxeBay:
		return r.AxeBays
	case domain.ResourceDuckpinLane:
		return r.DuckpinLanes
	case domain.ResourcePartyRoom:
		return r.PartyRooms
	default:
		return 0
	}
}

// RequiredResources вычисляет требуемые ресурсы для активности и размера группы.
// Детерминированная чистая функция: одна единица ресурса на группу фиксированного
// размера с округлением вверх; комбо требует объединение требований обеих
// активностей; группа от BuyoutPartySize забирает весь активный инвентарь
// каждого типа (аренда всей площадки).
//
// Размер группы вне [MinPartySize, MaxPartySize] отсекается валидацией на входе.
func RequiredResources(activity domain.ActivityType, partySize int, snap *Snapshot) Requirements {
	if partySize >= domain.BuyoutPartySize {
		return Requirements{
			AxeBays:      snap.ActiveCount(domain.ResourceAxeBay),
			DuckpinLanes: snap.ActiveCount(domain.ResourceDuckpinLane),
			PartyRooms:   snap.ActiveCount(domain.ResourcePartyRoom),
			Buyout:       true,
		}
	}

	req := Requirements{}

	switch activity {
	case domain.ActivityAxeThrowing:
		req.AxeBays = ceilDiv(partySize, domain.AxeBayGroupSize)
	case domain.ActivityDuckpin:
		req.DuckpinLanes = ceilDiv(partySize, domain.DuckpinLaneGroupSize)
	case domain.ActivityCombo:
		req.AxeBays = ceilDiv(partySize, domain.AxeBayGroupSize)
		req.DuckpinLanes = ceilDiv(partySize, domain.DuckpinLaneGroupSize)
	}

	return req
}

// ceilDiv целочисленное деление с округлением вверх
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
