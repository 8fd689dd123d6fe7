// Package scheduling чистое ядро планирования ресурсов площадки:
// модель вместимости, калькулятор доступности, разбиение комбо на сегменты,
// overlay банкетных комнат и аллокатор ресурсов с парными дорожками.
//
// Все функции работают над снапшотом данных, загруженным один раз на запрос.
// Пакет ничего не знает о базе данных и HTTP; одни и те же функции вызываются
// и калькулятором доступности, и транзакцией бронирования, чтобы их семантика
// не могла разойтись.
package scheduling

import (
	"sort"

	"github.com/m04kA/AXB-BookingService/internal/domain"
)

// Snapshot срез данных площадки на момент запроса
type Snapshot struct {
	Resources []domain.Resource
	Claims    []domain.ResourceClaim // claims активных бронирований на запрошенную дату
	Blackouts []domain.BlackoutRule  // blackout-окна на запрошенную дату
	Buffers   []domain.BufferRule
}

// ActiveResources возвращает активные ресурсы типа в стабильном порядке сортировки
func (s *Snapshot) ActiveResources(rtype domain.ResourceType) []domain.Resource {
	result := make([]domain.Resource, 0)
	for _, r := range s.Resources {
		if r.Active && r.Type == rtype {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SortPosition < result[j].SortPosition
	})
	return result
}

// ActiveCount возвращает количество активных ресурсов типа
func (s *Snapshot) ActiveCount(rtype domain.ResourceType) int {
	count := 0
	for _, r := range s.Resources {
		if r.Active && r.Type == rtype {
			count++
		}
	}
	return count
}

// ClaimsForResource возвращает claims ресурса, кроме принадлежащих excludeBookingID.
// Исключение используется при переносе бронирования: его собственные claims
// не должны блокировать новый слот.
func (s *Snapshot) ClaimsForResource(resourceID int64, excludeBookingID *int64) []domain.ResourceClaim {
	result := make([]domain.ResourceClaim, 0)
	for _, c := range s.Claims {
		if c.ResourceID != resourceID {
			continue
		}
		if excludeBookingID != nil && c.BookingID == *excludeBookingID {
			continue
		}
		result = append(result, c)
	}
	return result
}

// ResourceIsFree проверяет, что у ресурса нет claims, пересекающихся с интервалом
func (s *Snapshot) ResourceIsFree(resourceID int64, startMin, endMin int, excludeBookingID *int64) bool {
	for _, c := range s.ClaimsForResource(resourceID, excludeBookingID) {
		if c.Overlaps(startMin, endMin) {
			return false
		}
	}
	return true
}

// FindRoom ищет активную банкетную комнату по имени
func (s *Snapshot) FindRoom(name string) (domain.Resource, bool) {
	for _, r := range s.Resources {
		if r.Active && r.Type == domain.ResourcePartyRoom && r.Name == name {
			return r, true
		}
	}
	return domain.Resource{}, false
}
