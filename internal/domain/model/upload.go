package model

import "time"

// FileUpload — метаданные файла, прикреплённого к пункту.
// Содержимое хранится в blob store под StorageKey.
type FileUpload struct {
	// ID — UUID файла
	ID string
	// ItemID — пункт, к которому прикреплён файл
	ItemID string
	// ChecklistID — чек-лист пункта (денормализация)
	ChecklistID string
	// Filename — оригинальное имя файла
	Filename string
	// Uploader — имя загрузившего (опционально)
	Uploader *string
	// ContentType — MIME-тип
	ContentType string
	// Size — размер в байтах
	Size int64
	// Checksum — SHA-256 содержимого (hex)
	Checksum string
	// StorageKey — ключ содержимого в blob store, наружу не отдаётся
	StorageKey string
	// CreatedAt — время загрузки
	CreatedAt time.Time
}
