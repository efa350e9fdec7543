package create_payment_intent

import "errors"

var (
	// ErrMuseumNotFound возвращается, когда музей не найден в каталоге
	ErrMuseumNotFound = errors.New("create_payment_intent: museum not found")

	// ErrTicketTypeNotFound возвращается, когда у музея нет такого типа билета
	ErrTicketTypeNotFound = errors.New("create_payment_intent: ticket type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment_intent: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment_intent: internal error")
)
