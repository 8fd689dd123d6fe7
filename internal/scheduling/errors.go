package scheduling

import "errors"

var (
	// ErrVenueClosed возвращается, когда площадка закрыта в указанную дату
	ErrVenueClosed = errors.New("scheduling: venue is closed on this date")

	// ErrOutsideHours возвращается, когда интервал не помещается в часы работы
	ErrOutsideHours = errors.New("scheduling: interval is outside operating hours")

	// ErrStartInPast возвращается, когда время начала уже прошло (для сегодняшней даты)
	ErrStartInPast = errors.New("scheduling: start time is in the past")

	// ErrBlackout возвращается, когда интервал пересекается с blackout-окном
	ErrBlackout = errors.New("scheduling: interval overlaps a blackout window")

	// ErrInsufficientInventory возвращается, когда активного инвентаря типа
	// в принципе не хватает для запроса (CapacityError: блокируются все слоты дня)
	ErrInsufficientInventory = errors.New("scheduling: not enough active resources for this party size")

	// ErrSlotTaken возвращается, когда конкретный интервал занят существующими
	// бронированиями (ConflictError: клиент должен перезапросить доступность)
	ErrSlotTaken = errors.New("scheduling: requested interval is not available")

	// ErrOverlayBeforeOpen возвращается, когда overlay с таймингом "before"
	// начинался бы раньше открытия площадки
	ErrOverlayBeforeOpen = errors.New("scheduling: party area overlay would start before opening")

	// ErrUnknownRoom возвращается, когда запрошенной комнаты нет среди активных ресурсов
	ErrUnknownRoom = errors.New("scheduling: unknown party room")
)
