package catalog

import "errors"

var (
	// ErrMuseumNotFound возвращается, когда музей не найден в каталоге
	ErrMuseumNotFound = errors.New("museum not found")

	// ErrInvalidMuseum возвращается при некорректной записи музея
	ErrInvalidMuseum = errors.New("invalid museum record")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
