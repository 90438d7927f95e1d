package models

import "errors"

// ErrorKind - категория ошибки, которую видит клиент
type ErrorKind string

const (
	ErrKindUnauthenticated     ErrorKind = "unauthenticated"
	ErrKindAreaNotFound        ErrorKind = "area_not_found"
	ErrKindLocationUnavailable ErrorKind = "location_unavailable"
	ErrKindInvalidCoordinate   ErrorKind = "invalid_coordinate"
	ErrKindInternal            ErrorKind = "internal"
)

var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrAreaNotFound        = errors.New("area not found")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
)

// KindOf определяет категорию ошибки по цепочке обёрток
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return ErrKindUnauthenticated
	case errors.Is(err, ErrAreaNotFound):
		return ErrKindAreaNotFound
	case errors.Is(err, ErrLocationUnavailable):
		return ErrKindLocationUnavailable
	case errors.Is(err, ErrInvalidCoordinate):
		return ErrKindInvalidCoordinate
	default:
		return ErrKindInternal
	}
}

// Message возвращает сообщение для пользователя
func (k ErrorKind) Message() string {
	switch k {
	case ErrKindUnauthenticated:
		return "please log in to check in"
	case ErrKindAreaNotFound:
		return "area not found"
	case ErrKindLocationUnavailable:
		return "could not get your location, enable GPS and try again"
	case ErrKindInvalidCoordinate:
		return "invalid coordinates"
	default:
		return "internal server error"
	}
}

// Retryable сообщает, имеет ли смысл повторить запрос без изменений
func (k ErrorKind) Retryable() bool {
	return k == ErrKindLocationUnavailable
}
