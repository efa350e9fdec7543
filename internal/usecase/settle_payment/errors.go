package settle_payment

import "errors"

var (
	// ErrIntentNotFound возвращается, когда платежное намерение не найдено
	ErrIntentNotFound = errors.New("settle_payment: payment intent not found")

	// ErrPaymentFailed возвращается, когда платеж завершился неуспешно
	// Намерение сохраняется, пользователь может повторить попытку
	ErrPaymentFailed = errors.New("settle_payment: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settle_payment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("settle_payment: internal error")
)
