package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/checklists/internal/domain/model"
)

// UploadRepository — интерфейс CRUD для таблицы file_uploads.
type UploadRepository interface {
	// Create регистрирует файл пункта. Проверка ёмкости пункта
	// (allow_multiple_files) и вставка выполняются атомарно.
	Create(ctx context.Context, u *model.FileUpload) error
	// GetByID возвращает метаданные файла по UUID.
	GetByID(ctx context.Context, id string) (*model.FileUpload, error)
	// ListByItem возвращает файлы пункта в порядке загрузки.
	ListByItem(ctx context.Context, itemID string) ([]*model.FileUpload, error)
	// Delete удаляет запись и возвращает её (для очистки blob store).
	Delete(ctx context.Context, id string) (*model.FileUpload, error)
}

// uploadRepo — реализация UploadRepository.
type uploadRepo struct {
	db DBTX
	tx *TxRunner
}

// NewUploadRepository создаёт репозиторий загруженных файлов.
func NewUploadRepository(db DBTX) UploadRepository {
	return &uploadRepo{db: db, tx: NewTxRunner(db)}
}

const uploadColumns = `id, item_id, checklist_id, filename, uploader, content_type,
	size, checksum, storage_key, created_at`

func (r *uploadRepo) Create(ctx context.Context, u *model.FileUpload) error {
	return r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		// Чек-лист блокируется раньше пункта, как в обновлении и удалении
		// чек-листа. FOR KEY SHARE совместим с другими загрузками.
		var checklistID string
		err := tx.QueryRow(ctx, `
			SELECT c.id FROM checklists c
			JOIN items i ON i.checklist_id = c.id
			WHERE i.id = $1
			FOR KEY SHARE OF c`,
			u.ItemID,
		).Scan(&checklistID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: пункт %s", ErrNotFound, u.ItemID)
			}
			return fmt.Errorf("ошибка блокировки чек-листа: %w", err)
		}

		// Блокировка пункта сериализует конкурентные загрузки в один пункт
		var allowMultiple bool
		err = tx.QueryRow(ctx,
			`SELECT allow_multiple_files, checklist_id FROM items WHERE id = $1 FOR UPDATE`,
			u.ItemID,
		).Scan(&allowMultiple, &u.ChecklistID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: пункт %s", ErrNotFound, u.ItemID)
			}
			return fmt.Errorf("ошибка блокировки пункта: %w", err)
		}

		if !allowMultiple {
			var count int
			err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM file_uploads WHERE item_id = $1`, u.ItemID).Scan(&count)
			if err != nil {
				return fmt.Errorf("ошибка подсчёта файлов пункта: %w", err)
			}
			if count > 0 {
				return ErrCapacityExceeded
			}
		}

		query := `
			INSERT INTO file_uploads (id, item_id, checklist_id, filename, uploader,
				content_type, size, checksum, storage_key)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at`

		err = tx.QueryRow(ctx, query,
			u.ID, u.ItemID, u.ChecklistID, u.Filename, u.Uploader,
			u.ContentType, u.Size, u.Checksum, u.StorageKey,
		).Scan(&u.CreatedAt)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: пункт %s удалён", ErrNotFound, u.ItemID)
			}
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: файл с таким ID уже существует", ErrConflict)
			}
			return fmt.Errorf("ошибка регистрации файла: %w", err)
		}
		return nil
	})
}

func (r *uploadRepo) GetByID(ctx context.Context, id string) (*model.FileUpload, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_uploads WHERE id = $1`, uploadColumns)

	u, err := scanUpload(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения файла: %w", err)
	}
	return u, nil
}

func (r *uploadRepo) ListByItem(ctx context.Context, itemID string) ([]*model.FileUpload, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM file_uploads
		WHERE item_id = $1
		ORDER BY created_at, id`, uploadColumns)

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения файлов пункта: %w", err)
	}
	defer rows.Close()

	result := []*model.FileUpload{}
	for rows.Next() {
		u, err := scanUpload(rows)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения файла: %w", err)
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *uploadRepo) Delete(ctx context.Context, id string) (*model.FileUpload, error) {
	query := fmt.Sprintf(`DELETE FROM file_uploads WHERE id = $1 RETURNING %s`, uploadColumns)

	u, err := scanUpload(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка удаления файла: %w", err)
	}
	return u, nil
}

// scanUpload читает строку file_uploads (pgx.Row или pgx.Rows).
func scanUpload(row pgx.Row) (*model.FileUpload, error) {
	u := &model.FileUpload{}
	err := row.Scan(
		&u.ID, &u.ItemID, &u.ChecklistID, &u.Filename, &u.Uploader, &u.ContentType,
		&u.Size, &u.Checksum, &u.StorageKey, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}
