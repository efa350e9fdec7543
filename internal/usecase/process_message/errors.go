package process_message

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (ни текста, ни формы в запросе)
	ErrInvalidInput = errors.New("process_message: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_message: internal error")
)
