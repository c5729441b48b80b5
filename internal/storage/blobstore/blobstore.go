// Пакет blobstore — общий контракт хранилища содержимого загруженных файлов.
// Реализации: filestore (локальный диск) и s3store (S3-совместимое хранилище).
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound — объект отсутствует в хранилище.
var ErrNotFound = errors.New("объект не найден в хранилище")

// ErrInvalidKey — ключ объекта небезопасен (пустой, абсолютный или содержит "..").
var ErrInvalidKey = errors.New("некорректный ключ объекта")

// PutResult — результат записи объекта.
type PutResult struct {
	// Size — размер записанных данных в байтах
	Size int64
	// Checksum — SHA-256 хэш содержимого (hex)
	Checksum string
}

// Store — хранилище содержимого файлов.
// Ключи — относительные пути с разделителем "/".
type Store interface {
	// Put записывает содержимое r под ключом key.
	// Ошибка чтения r возвращается обёрнутой (%w), частичные данные не сохраняются.
	Put(ctx context.Context, key string, r io.Reader) (*PutResult, error)
	// Open открывает объект для чтения. Возвращает ErrNotFound, если объекта нет.
	// Вызывающий код обязан закрыть ReadCloser.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete удаляет объект. Отсутствие объекта не является ошибкой.
	Delete(ctx context.Context, key string) error
	// CheckReady проверяет доступность хранилища: ("ok" | "fail", сообщение).
	CheckReady() (status string, message string)
}

// ObjectKey генерирует ключ объекта для файла пункта.
// Формат: {checklist_id}/{item_id}/{name}_{timestamp}_{uuid}.{ext}
// Пример: 5f0c.../9a1b.../passport_20260221150405_a1b2c3d4.pdf
func ObjectKey(checklistID, itemID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	name = sanitize(name)
	// Ограничиваем длину имени для предотвращения проблем с FS
	if len(name) > 50 {
		name = name[:50]
	}
	ext = "." + sanitize(strings.TrimPrefix(ext, "."))
	if ext == ".file" {
		ext = ""
	}

	ts := time.Now().UTC().Format("20060102150405")
	uid := uuid.New().String()[:8]

	return path.Join(sanitize(checklistID), sanitize(itemID), fmt.Sprintf("%s_%s_%s%s", name, ts, uid, ext))
}

// ValidateKey проверяет, что ключ — относительный путь без выхода за корень.
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return nil
}

// sanitize убирает небезопасные символы из строки для использования в ключе.
// Оставляет только буквы, цифры, дефис и подчёркивание.
func sanitize(s string) string {
	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' ||
			(r >= 0x0400 && r <= 0x04FF) { // Кириллица
			result.WriteRune(r)
		}
	}
	if result.Len() == 0 {
		return "file"
	}
	return result.String()
}
