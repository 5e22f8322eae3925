package service

import "errors"

// Ошибки уровня сервисов. Обработчики переводят их в HTTP-статусы через errors.Is,
// тексты конкретных причин добавляются обёртками fmt.Errorf с %w.
var (
	ErrInvalidArgument    = errors.New("некорректные параметры запроса")
	ErrUnauthenticated    = errors.New("требуется аутентификация")
	ErrPermissionDenied   = errors.New("доступ запрещён")
	ErrNotFound           = errors.New("объект не найден")
	ErrAlreadyExists      = errors.New("объект уже существует")
	ErrFailedPrecondition = errors.New("операция невозможна в текущем состоянии")
)
