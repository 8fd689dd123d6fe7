package scheduling

import "github.com/m04kA/AXB-BookingService/internal/domain"

// Segment один непрерывный интервал бронирования, привязанный к типу ресурса
type Segment struct {
	Activity     domain.ActivityType
	ResourceType domain.ResourceType
	StartMin     int
	EndMin       int
	Label        domain.ClaimSegment
}

// Duration длительность сегмента в минутах
func (s Segment) Duration() int {
	return s.EndMin - s.StartMin
}

// SplitCombo разбивает выбранное время старта комбо на два упорядоченных
// смежных сегмента: segment1 = [start, start+dur1), segment2 = [end1, end1+dur2).
// Каждый сегмент проверяется и аллоцируется только против своего типа ресурса.
// Общий интервал комбо для цены и blackout-окон — [start, start+dur1+dur2).
func SplitCombo(startMin int, axeDuration, duckpinDuration int, axeFirst bool) [2]Segment {
	first := Segment{
		Activity:     domain.ActivityAxeThrowing,
		ResourceType: domain.ResourceAxeBay,
		Label:        domain.SegmentFirst,
	}
	second := Segment{
		Activity:     domain.ActivityDuckpin,
		ResourceType: domain.ResourceDuckpinLane,
		Label:        domain.SegmentSecond,
	}

	firstDur, secondDur := axeDuration, duckpinDuration
	if !axeFirst {
		first, second = second, first
		first.Label, second.Label = domain.SegmentFirst, domain.SegmentSecond
		firstDur, secondDur = duckpinDuration, axeDuration
	}

	first.StartMin = startMin
	first.EndMin = startMin + firstDur
	second.StartMin = first.EndMin
	second.EndMin = first.EndMin + secondDur

	return [2]Segment{first, second}
}

// SegmentsFor возвращает сегменты бронирования: один для одиночной активности,
// два смежных для комбо.
func SegmentsFor(activity domain.ActivityType, startMin, durationMinutes int, axeDuration, duckpinDuration int, axeFirst bool) []Segment {
	if activity == domain.ActivityCombo {
		segments := SplitCombo(startMin, axeDuration, duckpinDuration, axeFirst)
		return segments[:]
	}

	return []Segment{{
		Activity:     activity,
		ResourceType: domain.PrimaryResourceType(activity),
		StartMin:     startMin,
		EndMin:       startMin + durationMinutes,
		Label:        domain.SegmentMain,
	}}
}
