package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/checklists/internal/domain/model"
)

// ItemRepository — чтение пунктов чек-листа.
// Запись пунктов выполняется в составе дерева через ChecklistRepository.
type ItemRepository interface {
	// GetByID возвращает пункт по UUID.
	GetByID(ctx context.Context, id string) (*model.Item, error)
}

// itemRepo — реализация ItemRepository.
type itemRepo struct {
	db DBTX
}

// NewItemRepository создаёт репозиторий пунктов.
func NewItemRepository(db DBTX) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	query := `
		SELECT id, category_id, checklist_id, name, description,
			completed, allow_multiple_files, position
		FROM items
		WHERE id = $1`

	it := &model.Item{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.CategoryID, &it.ChecklistID, &it.Name, &it.Description,
		&it.Completed, &it.AllowMultipleFiles, &it.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пункта: %w", err)
	}
	return it, nil
}
