package service

import (
	"crypto/subtle"

	"github.com/google/uuid"
)

// TokenAuthorizer генерирует публичные ссылки и токены редактирования
// и проверяет предъявленный токен.
type TokenAuthorizer struct {
	generate func() string
}

// NewTokenAuthorizer создаёт TokenAuthorizer со случайными UUIDv4.
func NewTokenAuthorizer() *TokenAuthorizer {
	return &TokenAuthorizer{generate: uuid.NewString}
}

// Generate возвращает новый непредсказуемый токен.
func (a *TokenAuthorizer) Generate() string {
	return a.generate()
}

// Authorize сравнивает предъявленный токен с сохранённым за постоянное время.
// Пустой токен не совпадает никогда.
func (a *TokenAuthorizer) Authorize(stored, supplied string) error {
	if supplied == "" || stored == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) != 1 {
		return ErrUnauthorized
	}
	return nil
}
