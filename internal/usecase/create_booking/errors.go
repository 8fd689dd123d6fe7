package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrVenueClosed возвращается, когда площадка закрыта в указанную дату
	ErrVenueClosed = errors.New("create_booking: venue is closed on this date")

	// ErrOutsideHours возвращается, когда интервал выходит за часы работы
	ErrOutsideHours = errors.New("create_booking: interval is outside operating hours")

	// ErrStartInPast возвращается при попытке забронировать прошедшее время
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrBlackout возвращается, когда интервал пересекает blackout-окно
	ErrBlackout = errors.New("create_booking: interval overlaps a blackout window")

	// ErrInsufficientInventory возвращается, когда активных ресурсов
	// не хватает для группы вне зависимости от выбранного времени
	ErrInsufficientInventory = errors.New("create_booking: not enough resources for this party size")

	// ErrSlotTaken возвращается, когда ресурсы заняты другими бронированиями
	ErrSlotTaken = errors.New("create_booking: requested slot is not available")

	// ErrUnknownRoom возвращается при запросе несуществующей банкетной комнаты
	ErrUnknownRoom = errors.New("create_booking: unknown party room")

	// ErrPaymentDeclined возвращается, когда платёж отклонён платёжным сервисом
	ErrPaymentDeclined = errors.New("create_booking: payment declined")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
