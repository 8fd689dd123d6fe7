package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrNotEditable возвращается при попытке перенести бронирование,
	// которое уже отменено или закрыто
	ErrNotEditable = errors.New("update_booking: booking can no longer be edited")

	// ErrInvalidStatusChange возвращается при недопустимой смене статуса
	ErrInvalidStatusChange = errors.New("update_booking: invalid status change")

	// ErrVenueClosed возвращается, когда площадка закрыта в новую дату
	ErrVenueClosed = errors.New("update_booking: venue is closed on this date")

	// ErrOutsideHours возвращается, когда новый интервал выходит за часы работы
	ErrOutsideHours = errors.New("update_booking: interval is outside operating hours")

	// ErrStartInPast возвращается при переносе на прошедшее время
	ErrStartInPast = errors.New("update_booking: start time is in the past")

	// ErrBlackout возвращается, когда новый интервал пересекает blackout-окно
	ErrBlackout = errors.New("update_booking: interval overlaps a blackout window")

	// ErrInsufficientInventory возвращается, когда активных ресурсов
	// не хватает для новой группы
	ErrInsufficientInventory = errors.New("update_booking: not enough resources for this party size")

	// ErrSlotTaken возвращается, когда ресурсы заняты другими бронированиями
	ErrSlotTaken = errors.New("update_booking: requested slot is not available")

	// ErrUnknownRoom возвращается при запросе несуществующей банкетной комнаты
	ErrUnknownRoom = errors.New("update_booking: unknown party room")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
