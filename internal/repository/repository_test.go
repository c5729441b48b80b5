package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bigkaa/checklists/internal/config"
	"github.com/bigkaa/checklists/internal/database"
	"github.com/bigkaa/checklists/internal/domain/model"
)

// setupTestDB запускает PostgreSQL контейнер, применяет миграции.
// Возвращает pgxpool.Pool, закрываемый в t.Cleanup.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("Пропуск интеграционного теста: TEST_INTEGRATION не установлена")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("checklists_test"),
		postgres.WithUsername("checklists"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Не удалось запустить PostgreSQL контейнер: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Ошибка остановки контейнера: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Не удалось получить host контейнера: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Не удалось получить port контейнера: %v", err)
	}

	t.Setenv("CL_DB_HOST", host)
	t.Setenv("CL_DB_PORT", port.Port())
	t.Setenv("CL_DB_NAME", "checklists_test")
	t.Setenv("CL_DB_USER", "checklists")
	t.Setenv("CL_DB_PASSWORD", "test-password")
	t.Setenv("CL_DB_SSL_MODE", "disable")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := database.Migrate(cfg, logger); err != nil {
		t.Fatalf("Ошибка миграций: %v", err)
	}

	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Ошибка подключения: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	return pool
}

// newTestChecklist строит чек-лист с двумя категориями.
// Первая категория содержит два пункта, первый — single-file.
func newTestChecklist(title string) *model.Checklist {
	return &model.Checklist{
		ID:         uuid.New().String(),
		Title:      title,
		PublicLink: uuid.New().String(),
		EditToken:  uuid.New().String(),
		Categories: []*model.Category{
			{
				ID:   uuid.New().String(),
				Name: "Документы",
				Items: []*model.Item{
					{ID: uuid.New().String(), Name: "Паспорт"},
					{ID: uuid.New().String(), Name: "Справки", AllowMultipleFiles: true},
				},
			},
			{ID: uuid.New().String(), Name: "Пустая категория"},
		},
	}
}

func newTestUpload(itemID string) *model.FileUpload {
	return &model.FileUpload{
		ID:          uuid.New().String(),
		ItemID:      itemID,
		Filename:    "scan.pdf",
		ContentType: "application/pdf",
		Size:        42,
		Checksum:    "abc",
		StorageKey:  uuid.New().String(),
	}
}

// --- Тесты ChecklistRepository ---

func TestChecklistCreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)

	c := newTestChecklist("Переезд")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Version != 1 {
		t.Errorf("Version = %d, ожидали 1", c.Version)
	}
	if c.CreatedAt.IsZero() {
		t.Error("CreatedAt не заполнен")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Переезд" {
		t.Errorf("Title = %q, ожидали %q", got.Title, "Переезд")
	}
	if len(got.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, ожидали 2", len(got.Categories))
	}
	if got.Categories[0].Name != "Документы" || got.Categories[1].Name != "Пустая категория" {
		t.Errorf("порядок категорий нарушен: %q, %q", got.Categories[0].Name, got.Categories[1].Name)
	}
	if len(got.Categories[0].Items) != 2 || got.Categories[0].Items[0].Name != "Паспорт" {
		t.Errorf("пункты первой категории: %+v", got.Categories[0].Items)
	}
	if len(got.Categories[1].Items) != 0 {
		t.Errorf("вторая категория должна быть пустой, получено %d", len(got.Categories[1].Items))
	}

	byToken, err := repo.GetByEditToken(ctx, c.EditToken)
	if err != nil || byToken.ID != c.ID {
		t.Errorf("GetByEditToken: %v, id = %v", err, byToken)
	}
	id, err := repo.ResolvePublicLink(ctx, c.PublicLink)
	if err != nil || id != c.ID {
		t.Errorf("ResolvePublicLink = %q, %v; ожидали %q", id, err, c.ID)
	}

	if _, err := repo.GetByID(ctx, uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID несуществующего: ошибка %v, ожидали ErrNotFound", err)
	}
	if _, err := repo.ResolvePublicLink(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolvePublicLink несуществующей: ошибка %v, ожидали ErrNotFound", err)
	}
}

func TestChecklistResolveCategoryAndItem(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)

	c := newTestChecklist("Владельцы")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if id, err := repo.ResolveCategory(ctx, c.Categories[1].ID); err != nil || id != c.ID {
		t.Errorf("ResolveCategory = %q, %v; ожидали %q", id, err, c.ID)
	}
	if id, err := repo.ResolveItem(ctx, c.Categories[0].Items[1].ID); err != nil || id != c.ID {
		t.Errorf("ResolveItem = %q, %v; ожидали %q", id, err, c.ID)
	}
	if _, err := repo.ResolveCategory(ctx, uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolveCategory несуществующей: ошибка %v, ожидали ErrNotFound", err)
	}
	if _, err := repo.ResolveItem(ctx, uuid.New().String()); !errors.Is(err, ErrNotFound) {
		t.Errorf("ResolveItem несуществующего: ошибка %v, ожидали ErrNotFound", err)
	}
}

func TestChecklistCreate_DuplicateToken(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)

	first := newTestChecklist("Первый")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := newTestChecklist("Второй")
	second.EditToken = first.EditToken
	if err := repo.Create(ctx, second); !errors.Is(err, ErrConflict) {
		t.Fatalf("Create с дублирующимся токеном: ошибка %v, ожидали ErrConflict", err)
	}

	// Транзакция откатилась — второй чек-лист не создан
	if _, err := repo.GetByID(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("частично созданный чек-лист найден: %v", err)
	}
}

func TestChecklistList(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)

	for _, title := range []string{"A", "B", "C"} {
		if err := repo.Create(ctx, newTestChecklist(title)); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	list, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len(List) = %d, ожидали 2", len(list))
	}
	if list[0].Title != "C" || list[1].Title != "B" {
		t.Errorf("ожидали новые первыми: %q, %q", list[0].Title, list[1].Title)
	}
	if list[0].CategoryCount != 2 {
		t.Errorf("CategoryCount = %d, ожидали 2", list[0].CategoryCount)
	}

	total, err := repo.Count(ctx)
	if err != nil || total != 3 {
		t.Errorf("Count = %d, %v; ожидали 3", total, err)
	}
}

func TestChecklistUpdate_ReplacesTree(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Исходный")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	kept := c.Categories[0].Items[1]
	removed := c.Categories[0].Items[0]

	keptUpload := newTestUpload(kept.ID)
	removedUpload := newTestUpload(removed.ID)
	for _, u := range []*model.FileUpload{keptUpload, removedUpload} {
		if err := uploads.Create(ctx, u); err != nil {
			t.Fatalf("uploads.Create: %v", err)
		}
	}

	// Новое дерево: одна новая категория с сохранённым пунктом и новым пунктом
	desc := "обновлено"
	update := &model.Checklist{
		ID:          c.ID,
		Title:       "Новый",
		Description: &desc,
		Categories: []*model.Category{
			{
				ID:   uuid.New().String(),
				Name: "Новая категория",
				Items: []*model.Item{
					{ID: uuid.New().String(), Name: "Новый пункт"},
					{ID: kept.ID, Name: "Справки (переименовано)", AllowMultipleFiles: true, Completed: true},
				},
			},
		},
	}

	version := 1
	keys, err := repo.Update(ctx, update, &version)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(keys) != 1 || keys[0] != removedUpload.StorageKey {
		t.Errorf("удалённые ключи = %v, ожидали [%s]", keys, removedUpload.StorageKey)
	}
	if update.Version != 2 {
		t.Errorf("Version = %d, ожидали 2", update.Version)
	}
	if update.PublicLink != c.PublicLink || update.EditToken != c.EditToken {
		t.Error("публичная ссылка и токен должны сохраниться")
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Новый" || got.Description == nil || *got.Description != "обновлено" {
		t.Errorf("заголовок/описание не обновлены: %q %v", got.Title, got.Description)
	}
	if len(got.Categories) != 1 || len(got.Categories[0].Items) != 2 {
		t.Fatalf("ожидали 1 категорию с 2 пунктами, получено %+v", got.Categories)
	}
	second := got.Categories[0].Items[1]
	if second.ID != kept.ID || second.Name != "Справки (переименовано)" || !second.Completed {
		t.Errorf("сохранённый пункт обновлён некорректно: %+v", second)
	}

	// Файл сохранённого пункта выжил, файл удалённого — нет
	if _, err := uploads.GetByID(ctx, keptUpload.ID); err != nil {
		t.Errorf("файл сохранённого пункта: %v", err)
	}
	if _, err := uploads.GetByID(ctx, removedUpload.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("файл удалённого пункта: ошибка %v, ожидали ErrNotFound", err)
	}
}

func TestChecklistUpdate_VersionMismatch(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)

	c := newTestChecklist("Версия")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stale := 7
	_, err := repo.Update(ctx, &model.Checklist{ID: c.ID, Title: "Другой"}, &stale)
	if !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("Update: ошибка %v, ожидали ErrVersionMismatch", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "Версия" || len(got.Categories) != 2 {
		t.Error("чек-лист изменён несмотря на конфликт версий")
	}

	if _, err := repo.Update(ctx, &model.Checklist{ID: uuid.New().String(), Title: "X"}, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update несуществующего: ошибка %v, ожидали ErrNotFound", err)
	}
}

func TestChecklistModify(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Частичные изменения")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	single := c.Categories[0].Items[0]
	multi := c.Categories[0].Items[1]
	u := newTestUpload(single.ID)
	if err := uploads.Create(ctx, u); err != nil {
		t.Fatalf("uploads.Create: %v", err)
	}

	// Удаляем пункт с файлом, отмечаем второй выполненным, добавляем пункт в пустую категорию
	newItem := &model.Item{ID: uuid.New().String(), Name: "Коробки"}
	got, keys, err := repo.Modify(ctx, c.ID, func(tree *model.Checklist) error {
		if tree.Version != 1 || len(tree.Categories) != 2 {
			t.Errorf("загружено некорректное дерево: v%d, %d категорий", tree.Version, len(tree.Categories))
		}
		tree.FindItem(multi.ID).Completed = true
		tree.Categories[0].Items = tree.Categories[0].Items[1:]
		tree.Categories[1].Items = append(tree.Categories[1].Items, newItem)
		return nil
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if len(keys) != 1 || keys[0] != u.StorageKey {
		t.Errorf("удалённые ключи = %v, ожидали [%s]", keys, u.StorageKey)
	}
	if got.Version != 2 || got.PublicLink != c.PublicLink {
		t.Errorf("версия или ссылка некорректны: v%d %q", got.Version, got.PublicLink)
	}
	if newItem.CategoryID != c.Categories[1].ID || newItem.Position != 0 {
		t.Errorf("новый пункт не привязан к категории: %+v", newItem)
	}

	stored, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FindItem(single.ID) != nil || stored.FindItem(newItem.ID) == nil {
		t.Errorf("дерево сохранено некорректно: %+v", stored.Categories)
	}
	if it := stored.FindItem(multi.ID); it == nil || !it.Completed || it.Position != 0 {
		t.Errorf("пункт %+v: ожидали completed и позицию 0", it)
	}

	// Ошибка функции откатывает транзакцию
	errStop := errors.New("stop")
	_, _, err = repo.Modify(ctx, c.ID, func(tree *model.Checklist) error {
		tree.Title = "Не сохранится"
		tree.Categories = nil
		return errStop
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("Modify: ошибка %v, ожидали errStop", err)
	}
	stored, err = repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Title != "Частичные изменения" || stored.Version != 2 || len(stored.Categories) != 2 {
		t.Errorf("изменения отменённой функции сохранены: %q v%d", stored.Title, stored.Version)
	}

	if _, _, err := repo.Modify(ctx, uuid.New().String(), func(*model.Checklist) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("Modify несуществующего: ошибка %v, ожидали ErrNotFound", err)
	}
}

func TestChecklistDelete_Cascade(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)
	items := NewItemRepository(pool)

	c := newTestChecklist("Удаляемый")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	u := newTestUpload(c.Categories[0].Items[1].ID)
	if err := uploads.Create(ctx, u); err != nil {
		t.Fatalf("uploads.Create: %v", err)
	}

	keys, err := repo.Delete(ctx, c.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(keys) != 1 || keys[0] != u.StorageKey {
		t.Errorf("ключи = %v, ожидали [%s]", keys, u.StorageKey)
	}

	if _, err := items.GetByID(ctx, c.Categories[0].Items[1].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("пункт после удаления чек-листа: %v", err)
	}
	if _, err := uploads.GetByID(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("файл после удаления чек-листа: %v", err)
	}
	if _, err := repo.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторное удаление: ошибка %v, ожидали ErrNotFound", err)
	}
}

// --- Тесты UploadRepository ---

func TestUploadCapacity(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Файлы")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	single := c.Categories[0].Items[0]
	multi := c.Categories[0].Items[1]

	if err := uploads.Create(ctx, newTestUpload(single.ID)); err != nil {
		t.Fatalf("первая загрузка в single-file пункт: %v", err)
	}
	if err := uploads.Create(ctx, newTestUpload(single.ID)); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("вторая загрузка: ошибка %v, ожидали ErrCapacityExceeded", err)
	}

	for range 3 {
		if err := uploads.Create(ctx, newTestUpload(multi.ID)); err != nil {
			t.Fatalf("загрузка в multi-file пункт: %v", err)
		}
	}
	list, err := uploads.ListByItem(ctx, multi.ID)
	if err != nil || len(list) != 3 {
		t.Errorf("ListByItem = %d, %v; ожидали 3", len(list), err)
	}
	for _, u := range list {
		if u.ChecklistID != c.ID {
			t.Errorf("ChecklistID = %q, ожидали %q", u.ChecklistID, c.ID)
		}
	}

	if err := uploads.Create(ctx, newTestUpload(uuid.New().String())); !errors.Is(err, ErrNotFound) {
		t.Errorf("загрузка в несуществующий пункт: ошибка %v, ожидали ErrNotFound", err)
	}
}

// TestUploadCapacity_Concurrent — из конкурентных загрузок в single-file
// пункт успешна ровно одна.
func TestUploadCapacity_Concurrent(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Гонка")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	single := c.Categories[0].Items[0]

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := uploads.Create(ctx, newTestUpload(single.ID))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrCapacityExceeded):
				rejected++
			default:
				t.Errorf("неожиданная ошибка: %v", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 || rejected != workers-1 {
		t.Errorf("успешно %d, отклонено %d; ожидали 1 и %d", succeeded, rejected, workers-1)
	}
}

// TestUploadConcurrentWithTreeChanges — загрузки параллельно с обновлением
// и удалением чек-листа не дают deadlock, после удаления файлов не остаётся.
func TestUploadConcurrentWithTreeChanges(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Гонка с изменениями")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	multi := c.Categories[0].Items[1]

	// Дерево с тем же multi-file пунктом: его файлы переживают обновление
	sameTree := func(i int) *model.Checklist {
		return &model.Checklist{
			ID:    c.ID,
			Title: fmt.Sprintf("Обновление %d", i),
			Categories: []*model.Category{{
				ID:   c.Categories[0].ID,
				Name: "Документы",
				Items: []*model.Item{
					{ID: multi.ID, Name: "Справки", AllowMultipleFiles: true},
				},
			}},
		}
	}

	const workers = 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 5 {
				err := uploads.Create(ctx, newTestUpload(multi.ID))
				if err != nil && !errors.Is(err, ErrNotFound) {
					t.Errorf("uploads.Create: %v", err)
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 5 {
			if _, err := repo.Update(ctx, sameTree(i), nil); err != nil && !errors.Is(err, ErrNotFound) {
				t.Errorf("Update: %v", err)
			}
		}
		if _, err := repo.Delete(ctx, c.ID); err != nil {
			t.Errorf("Delete: %v", err)
		}
	}()
	wg.Wait()

	var left int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM file_uploads WHERE checklist_id = $1`, c.ID).Scan(&left); err != nil {
		t.Fatalf("подсчёт файлов: %v", err)
	}
	if left != 0 {
		t.Errorf("после удаления чек-листа осталось %d файлов", left)
	}
}

func TestUploadListAndDelete(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewChecklistRepository(pool)
	uploads := NewUploadRepository(pool)

	c := newTestChecklist("Список")
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	item := c.Categories[0].Items[1]

	empty, err := uploads.ListByItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("ожидали пустой список, а не nil, получено %v", empty)
	}

	u := newTestUpload(item.ID)
	if err := uploads.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := uploads.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.StorageKey != u.StorageKey {
		t.Errorf("StorageKey = %q, ожидали %q", deleted.StorageKey, u.StorageKey)
	}
	if _, err := uploads.Delete(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("повторное удаление: ошибка %v, ожидали ErrNotFound", err)
	}
}
