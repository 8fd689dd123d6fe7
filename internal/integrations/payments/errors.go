package payments

import "errors"

var (
	// ErrChargeDeclined возвращается, когда платёж отклонён процессором
	ErrChargeDeclined = errors.New("payments: charge declined")

	// ErrChargeNotFound возвращается, когда платёж не найден (при возврате)
	ErrChargeNotFound = errors.New("payments: charge not found")

	// ErrInvalidResponse возвращается при некорректном ответе процессора
	ErrInvalidResponse = errors.New("payments: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments: internal error")
)
