package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// Allocate выбирает первые count активных ресурсов типа, свободных на
// интервале [startMin, endMin), в стабильном порядке сортировки.
//
// Для парных дорожек (duckpin) при count == 2 действует дополнительное
// ограничение: обе дорожки должны принадлежать одной объявленной паре.
// Нехватка инвентаря и занятость различаются сознательно: первая блокирует
// весь день, вторая — только запрошенный интервал.
func Allocate(snap *Snapshot, rtype domain.ResourceType, count int, startMin, endMin int, excludeBookingID *int64) ([]domain.Resource, error) {
	if count == 0 {
		return nil, nil
	}

	resources := snap.ActiveResources(rtype)
	if len(resources) < count {
		return nil, ErrInsufficientInventory
	}

	if rtype == domain.ResourceDuckpinLane && count == 2 {
		return allocateLanePair(snap, resources, startMin, endMin, excludeBookingID)
	}

	allocated := make([]domain.Resource, 0, count)
	for _, r := range resources {
		if !snap.ResourceIsFree(r.ID, startMin, endMin, excludeBookingID) {
			continue
		}
		allocated = append(allocated, r)
		if len(allocated) == count {
			return allocated, nil
		}
	}

	return nil, ErrSlotTaken
}

// allocateLanePair подбирает пару дорожек из одной объявленной физической пары.
// Пары перебираются по порядку; возвращается первая пара без конфликтов.
func allocateLanePair(snap *Snapshot, lanes []domain.Resource, startMin, endMin int, excludeBookingID *int64) ([]domain.Resource, error) {
	foundCompletePair := false

	for _, pair := range domain.DuckpinLanePairs {
		first, okFirst := laneAtPosition(lanes, pair[0])
		second, okSecond := laneAtPosition(lanes, pair[1])
		if !okFirst || !okSecond {
			continue
		}
		foundCompletePair = true

		if snap.ResourceIsFree(first.ID, startMin, endMin, excludeBookingID) &&
			snap.ResourceIsFree(second.ID, startMin, endMin, excludeBookingID) {
			return []domain.Resource{first, second}, nil
		}
	}

	if !foundCompletePair {
		return nil, ErrInsufficientInventory
	}
	return nil, ErrSlotTaken
}

// laneAtPosition ищет активную дорожку с заданной позицией сортировки
func laneAtPosition(lanes []domain.Resource, position int) (domain.Resource, bool) {
	for _, l := range lanes {
		if l.SortPosition == position {
			return l, true
		}
	}
	return domain.Resource{}, false
}

// pairIndexOf возвращает индекс объявленной пары, которой принадлежит позиция,
// либо -1
func pairIndexOf(position int) int {
	for i, pair := range domain.DuckpinLanePairs {
		if pair[0] == position || pair[1] == position {
			return i
		}
	}
	return -1
}

// PairRelocation план переноса бронирования на согласованную пару дорожек
type PairRelocation struct {
	BookingID int64
	StartMin  int
	EndMin    int
	ClaimIDs  [2]int64 // существующие claims в порядке дорожек
	LaneIDs   [2]int64 // новые дорожки
}

// PlanPairRelocation проверяет, держит ли бронирование две дорожки из разных
// пар (следствие прошлых правок), и подбирает согласованную пару без
// конфликтов. Если свободной согласованной пары нет, возвращает false и
// бронирование остаётся на рассогласованных дорожках: деградация без отказа.
func PlanPairRelocation(snap *Snapshot, bookingID int64) (*PairRelocation, bool) {
	laneByID := make(map[int64]domain.Resource)
	for _, r := range snap.Resources {
		if r.Type == domain.ResourceDuckpinLane {
			laneByID[r.ID] = r
		}
	}

	// Собираем claims бронирования на дорожках
	laneClaims := make([]domain.ResourceClaim, 0, 2)
	for _, c := range snap.Claims {
		if c.BookingID != bookingID {
			continue
		}
		if _, ok := laneByID[c.ResourceID]; ok {
			laneClaims = append(laneClaims, c)
		}
	}

	// Перенос применим только к бронированиям ровно с двумя дорожками
	// на одном интервале
	if len(laneClaims) != 2 {
		return nil, false
	}
	if laneClaims[0].StartMin != laneClaims[1].StartMin || laneClaims[0].EndMin != laneClaims[1].EndMin {
		return nil, false
	}

	firstLane := laneByID[laneClaims[0].ResourceID]
	secondLane := laneByID[laneClaims[1].ResourceID]

	// Пара уже согласована — делать нечего
	if pairIndexOf(firstLane.SortPosition) == pairIndexOf(secondLane.SortPosition) &&
		pairIndexOf(firstLane.SortPosition) >= 0 {
		return nil, false
	}

	lanes := snap.ActiveResources(domain.ResourceDuckpinLane)
	startMin, endMin := laneClaims[0].StartMin, laneClaims[0].EndMin

	target, err := allocateLanePair(snap, lanes, startMin, endMin, &bookingID)
	if err != nil {
		// Свободной согласованной пары нет — оставляем как есть
		return nil, false
	}

	return &PairRelocation{
		BookingID: bookingID,
		StartMin:  startMin,
		EndMin:    endMin,
		ClaimIDs:  [2]int64{laneClaims[0].ID, laneClaims[1].ID},
		LaneIDs:   [2]int64{target[0].ID, target[1].ID},
	}, true
}
