package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bigkaa/checklists/internal/domain/model"
)

// ChecklistRepository — интерфейс хранения чек-листов вместе с деревом
// категорий и пунктов.
type ChecklistRepository interface {
	// Create атомарно создаёт чек-лист, его категории и пункты.
	Create(ctx context.Context, c *model.Checklist) error
	// GetByID возвращает чек-лист с полным деревом.
	GetByID(ctx context.Context, id string) (*model.Checklist, error)
	// GetByEditToken возвращает чек-лист по токену редактирования.
	GetByEditToken(ctx context.Context, token string) (*model.Checklist, error)
	// ResolvePublicLink возвращает ID чек-листа по публичной ссылке.
	ResolvePublicLink(ctx context.Context, link string) (string, error)
	// ResolveCategory возвращает ID чек-листа, которому принадлежит категория.
	ResolveCategory(ctx context.Context, categoryID string) (string, error)
	// ResolveItem возвращает ID чек-листа, которому принадлежит пункт.
	ResolveItem(ctx context.Context, itemID string) (string, error)
	// List возвращает краткие записи, новые первыми.
	List(ctx context.Context, limit, offset int) ([]*model.ChecklistSummary, error)
	// Count возвращает общее количество чек-листов.
	Count(ctx context.Context) (int, error)
	// Update заменяет заголовок, описание и дерево чек-листа.
	// Категории и пункты с известными ID обновляются, новые создаются,
	// отсутствующие удаляются вместе с файлами.
	// Возвращает ключи blob store удалённых файлов.
	Update(ctx context.Context, c *model.Checklist, expectedVersion *int) ([]string, error)
	// Modify загружает дерево чек-листа под блокировкой, применяет к нему fn
	// и сохраняет результат по правилам Update. Ошибка fn откатывает транзакцию.
	// Возвращает сохранённый чек-лист и ключи blob store удалённых файлов.
	Modify(ctx context.Context, id string, fn func(c *model.Checklist) error) (*model.Checklist, []string, error)
	// Delete удаляет чек-лист со всеми потомками.
	// Возвращает ключи blob store удалённых файлов.
	Delete(ctx context.Context, id string) ([]string, error)
}

// checklistRepo — реализация ChecklistRepository.
type checklistRepo struct {
	db DBTX
	tx *TxRunner
}

// NewChecklistRepository создаёт репозиторий чек-листов.
func NewChecklistRepository(db DBTX) ChecklistRepository {
	return &checklistRepo{db: db, tx: NewTxRunner(db)}
}

const checklistColumns = `id, title, description, public_link, edit_token, version, created_at, updated_at`

func (r *checklistRepo) Create(ctx context.Context, c *model.Checklist) error {
	return r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO checklists (id, title, description, public_link, edit_token)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING version, created_at, updated_at`

		err := tx.QueryRow(ctx, query,
			c.ID, c.Title, c.Description, c.PublicLink, c.EditToken,
		).Scan(&c.Version, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: чек-лист с таким ID или токеном уже существует", ErrConflict)
			}
			return fmt.Errorf("ошибка создания чек-листа: %w", err)
		}

		return upsertTree(ctx, tx, c)
	})
}

func (r *checklistRepo) GetByID(ctx context.Context, id string) (*model.Checklist, error) {
	return r.getBy(ctx, "id", id)
}

func (r *checklistRepo) GetByEditToken(ctx context.Context, token string) (*model.Checklist, error) {
	return r.getBy(ctx, "edit_token", token)
}

// getBy загружает чек-лист по одному из уникальных столбцов.
// column задаётся только внутри пакета.
func (r *checklistRepo) getBy(ctx context.Context, column, value string) (*model.Checklist, error) {
	query := fmt.Sprintf(`SELECT %s FROM checklists WHERE %s = $1`, checklistColumns, column)

	c, err := scanChecklist(r.db.QueryRow(ctx, query, value))
	if err != nil {
		return nil, err
	}

	if err := loadTree(ctx, r.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *checklistRepo) ResolvePublicLink(ctx context.Context, link string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM checklists WHERE public_link = $1`, link).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ошибка поиска по публичной ссылке: %w", err)
	}
	return id, nil
}

func (r *checklistRepo) ResolveCategory(ctx context.Context, categoryID string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT checklist_id FROM categories WHERE id = $1`, categoryID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ошибка поиска категории: %w", err)
	}
	return id, nil
}

func (r *checklistRepo) ResolveItem(ctx context.Context, itemID string) (string, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT checklist_id FROM items WHERE id = $1`, itemID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ошибка поиска пункта: %w", err)
	}
	return id, nil
}

func (r *checklistRepo) List(ctx context.Context, limit, offset int) ([]*model.ChecklistSummary, error) {
	query := `
		SELECT c.id, c.title, c.description, c.created_at,
			(SELECT COUNT(*) FROM categories cat WHERE cat.checklist_id = c.id)
		FROM checklists c
		ORDER BY c.created_at DESC, c.id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения списка чек-листов: %w", err)
	}
	defer rows.Close()

	var result []*model.ChecklistSummary
	for rows.Next() {
		s := &model.ChecklistSummary{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.CreatedAt, &s.CategoryCount); err != nil {
			return nil, fmt.Errorf("ошибка чтения чек-листа: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (r *checklistRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM checklists`).Scan(&n); err != nil {
		return 0, fmt.Errorf("ошибка подсчёта чек-листов: %w", err)
	}
	return n, nil
}

func (r *checklistRepo) Update(ctx context.Context, c *model.Checklist, expectedVersion *int) ([]string, error) {
	var removed []string

	err := r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		// Порядок блокировок везде одинаков: сначала строка чек-листа,
		// затем пункты. Загрузки файлов берут FOR KEY SHARE на чек-лист
		// и ждут завершения обновления.
		var current int
		err := tx.QueryRow(ctx, `SELECT version FROM checklists WHERE id = $1 FOR UPDATE`, c.ID).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("ошибка блокировки чек-листа: %w", err)
		}
		if expectedVersion != nil && *expectedVersion != current {
			return fmt.Errorf("%w: ожидалась %d, текущая %d", ErrVersionMismatch, *expectedVersion, current)
		}

		removed, err = writeTree(ctx, tx, c)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *checklistRepo) Modify(
	ctx context.Context,
	id string,
	fn func(c *model.Checklist) error,
) (*model.Checklist, []string, error) {
	var (
		c       *model.Checklist
		removed []string
	)

	err := r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		query := fmt.Sprintf(`SELECT %s FROM checklists WHERE id = $1 FOR UPDATE`, checklistColumns)

		var err error
		c, err = scanChecklist(tx.QueryRow(ctx, query, id))
		if err != nil {
			return err
		}
		if err := loadTree(ctx, tx, c); err != nil {
			return err
		}

		if err := fn(c); err != nil {
			return err
		}

		removed, err = writeTree(ctx, tx, c)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return c, removed, nil
}

func (r *checklistRepo) Delete(ctx context.Context, id string) ([]string, error) {
	var keys []string

	err := r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		// Блокировка чек-листа до каскадного удаления пунктов: загрузки
		// ждут на FOR KEY SHARE, и список ключей полон.
		var locked string
		err := tx.QueryRow(ctx, `SELECT id FROM checklists WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("ошибка блокировки чек-листа: %w", err)
		}

		rows, err := tx.Query(ctx, `SELECT storage_key FROM file_uploads WHERE checklist_id = $1`, id)
		if err != nil {
			return fmt.Errorf("ошибка получения файлов чек-листа: %w", err)
		}
		keys, err = collectStrings(rows)
		if err != nil {
			return fmt.Errorf("ошибка чтения файлов чек-листа: %w", err)
		}

		// Категории, пункты и файлы удаляются каскадно (ON DELETE CASCADE)
		if _, err := tx.Exec(ctx, `DELETE FROM checklists WHERE id = $1`, id); err != nil {
			return fmt.Errorf("ошибка удаления чек-листа: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// --- Дерево категорий и пунктов ---

// writeTree сохраняет заголовок, описание и дерево заблокированного чек-листа,
// увеличивает версию. Возвращает ключи blob store удалённых файлов.
func writeTree(ctx context.Context, tx pgx.Tx, c *model.Checklist) ([]string, error) {
	query := `
		UPDATE checklists
		SET title = $2, description = $3, version = version + 1, updated_at = NOW()
		WHERE id = $1
		RETURNING public_link, edit_token, version, created_at, updated_at`

	err := tx.QueryRow(ctx, query, c.ID, c.Title, c.Description).Scan(
		&c.PublicLink, &c.EditToken, &c.Version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка обновления чек-листа: %w", err)
	}

	if err := upsertTree(ctx, tx, c); err != nil {
		return nil, err
	}
	return pruneTree(ctx, tx, c)
}

// upsertTree записывает категории и пункты в порядке среза.
// Проставляет ChecklistID, CategoryID и Position.
func upsertTree(ctx context.Context, tx pgx.Tx, c *model.Checklist) error {
	categoryQuery := `
		INSERT INTO categories (id, checklist_id, name, position)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, position = EXCLUDED.position
		WHERE categories.checklist_id = EXCLUDED.checklist_id`

	itemQuery := `
		INSERT INTO items (id, category_id, checklist_id, name, description,
			completed, allow_multiple_files, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET category_id = EXCLUDED.category_id, name = EXCLUDED.name,
			description = EXCLUDED.description, completed = EXCLUDED.completed,
			allow_multiple_files = EXCLUDED.allow_multiple_files, position = EXCLUDED.position
		WHERE items.checklist_id = EXCLUDED.checklist_id`

	batch := &pgx.Batch{}
	for i, cat := range c.Categories {
		cat.ChecklistID = c.ID
		cat.Position = i
		batch.Queue(categoryQuery, cat.ID, cat.ChecklistID, cat.Name, cat.Position)

		for j, it := range cat.Items {
			it.CategoryID = cat.ID
			it.ChecklistID = c.ID
			it.Position = j
			batch.Queue(itemQuery,
				it.ID, it.CategoryID, it.ChecklistID, it.Name, it.Description,
				it.Completed, it.AllowMultipleFiles, it.Position,
			)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			br.Close()
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: дублирующийся ID категории или пункта", ErrConflict)
			}
			return fmt.Errorf("ошибка записи дерева чек-листа: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("ошибка записи дерева чек-листа: %w", err)
	}
	return nil
}

// pruneTree удаляет категории, пункты и файлы, отсутствующие в c.
// Возвращает ключи blob store удалённых файлов.
func pruneTree(ctx context.Context, tx pgx.Tx, c *model.Checklist) ([]string, error) {
	categoryIDs := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		categoryIDs = append(categoryIDs, cat.ID)
	}
	itemIDs := c.ItemIDs()
	if itemIDs == nil {
		itemIDs = []string{}
	}

	rows, err := tx.Query(ctx, `
		DELETE FROM file_uploads
		WHERE checklist_id = $1 AND NOT (item_id = ANY($2::uuid[]))
		RETURNING storage_key`, c.ID, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка удаления файлов: %w", err)
	}
	keys, err := collectStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("ошибка удаления файлов: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM items
		WHERE checklist_id = $1 AND NOT (id = ANY($2::uuid[]))`, c.ID, itemIDs); err != nil {
		return nil, fmt.Errorf("ошибка удаления пунктов: %w", err)
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM categories
		WHERE checklist_id = $1 AND NOT (id = ANY($2::uuid[]))`, c.ID, categoryIDs); err != nil {
		return nil, fmt.Errorf("ошибка удаления категорий: %w", err)
	}

	return keys, nil
}

// loadTree загружает категории и пункты чек-листа одним запросом.
func loadTree(ctx context.Context, db DBTX, c *model.Checklist) error {
	query := `
		SELECT cat.id, cat.name, cat.position,
			i.id, i.name, i.description, i.completed, i.allow_multiple_files, i.position
		FROM categories cat
		LEFT JOIN items i ON i.category_id = cat.id
		WHERE cat.checklist_id = $1
		ORDER BY cat.position, cat.created_at, cat.id, i.position, i.created_at, i.id`

	rows, err := db.Query(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("ошибка загрузки дерева чек-листа: %w", err)
	}
	defer rows.Close()

	c.Categories = []*model.Category{}
	var last *model.Category
	for rows.Next() {
		var (
			catID, catName        string
			catPos                int
			itemID, itemName      *string
			itemDesc              *string
			completed, allowMulti *bool
			itemPos               *int
		)
		if err := rows.Scan(&catID, &catName, &catPos,
			&itemID, &itemName, &itemDesc, &completed, &allowMulti, &itemPos); err != nil {
			return fmt.Errorf("ошибка чтения дерева чек-листа: %w", err)
		}

		if last == nil || last.ID != catID {
			last = &model.Category{
				ID:          catID,
				ChecklistID: c.ID,
				Name:        catName,
				Position:    catPos,
				Items:       []*model.Item{},
			}
			c.Categories = append(c.Categories, last)
		}

		// LEFT JOIN: категория без пунктов
		if itemID == nil {
			continue
		}
		last.Items = append(last.Items, &model.Item{
			ID:                 *itemID,
			CategoryID:         catID,
			ChecklistID:        c.ID,
			Name:               deref(itemName),
			Description:        itemDesc,
			Completed:          completed != nil && *completed,
			AllowMultipleFiles: allowMulti != nil && *allowMulti,
			Position:           derefInt(itemPos),
		})
	}
	return rows.Err()
}

// scanChecklist читает строку checklists в модель.
func scanChecklist(row pgx.Row) (*model.Checklist, error) {
	c := &model.Checklist{}
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.PublicLink, &c.EditToken,
		&c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения чек-листа: %w", err)
	}
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
