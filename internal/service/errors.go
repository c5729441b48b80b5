// errors.go — ошибки бизнес-логики сервисного слоя.
package service

import "errors"

var (
	// ErrNotFound — ресурс не найден.
	ErrNotFound = errors.New("ресурс не найден")
	// ErrValidation — ошибка валидации входных данных.
	ErrValidation = errors.New("ошибка валидации")
	// ErrUnauthorized — токен редактирования отсутствует или не совпадает.
	ErrUnauthorized = errors.New("неверный токен редактирования")
	// ErrCapacityExceeded — пункт допускает только один файл, и он уже загружен.
	ErrCapacityExceeded = errors.New("пункт допускает только один файл")
	// ErrFileTooLarge — размер файла превышает допустимый.
	ErrFileTooLarge = errors.New("файл превышает допустимый размер")
	// ErrPreconditionFailed — версия чек-листа изменилась (If-Match).
	ErrPreconditionFailed = errors.New("версия чек-листа изменилась")
)
