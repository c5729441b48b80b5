// Пакет service — бизнес-логика сервиса чек-листов.
// ChecklistService — создание, чтение, обновление, удаление и клонирование
// чек-листов с проверкой токена редактирования.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/repository"
	"github.com/bigkaa/checklists/internal/storage/blobstore"
)

var checklistsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cl_checklists_created_total",
	Help: "Общее количество созданных чек-листов.",
}, []string{"source"}) // create, clone

// ChecklistInput — заголовок, описание и дерево чек-листа для создания и замены.
type ChecklistInput struct {
	Title       string
	Description *string
	Categories  []CategoryInput
}

// CategoryInput — категория во входных данных.
// ID указывает на существующую категорию при обновлении.
type CategoryInput struct {
	ID    *string
	Name  string
	Items []ItemInput
}

// ItemInput — пункт во входных данных.
type ItemInput struct {
	ID                 *string
	Name               string
	Description        *string
	Completed          bool
	AllowMultipleFiles bool
}

// ChecklistService — операции над чек-листами.
type ChecklistService struct {
	repo   repository.ChecklistRepository
	blobs  blobstore.Store
	tokens *TokenAuthorizer
	links  *PublicLinkResolver
	logger *slog.Logger
}

// NewChecklistService создаёт сервис чек-листов.
func NewChecklistService(
	repo repository.ChecklistRepository,
	blobs blobstore.Store,
	tokens *TokenAuthorizer,
	links *PublicLinkResolver,
	logger *slog.Logger,
) *ChecklistService {
	return &ChecklistService{
		repo:   repo,
		blobs:  blobs,
		tokens: tokens,
		links:  links,
		logger: logger.With(slog.String("component", "checklist_service")),
	}
}

// Create создаёт чек-лист с деревом категорий и пунктов.
// Идентификаторы, публичная ссылка и токен редактирования генерируются.
func (s *ChecklistService) Create(ctx context.Context, in ChecklistInput) (*model.Checklist, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	c := &model.Checklist{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		PublicLink:  s.tokens.Generate(),
		EditToken:   s.tokens.Generate(),
		Categories:  buildTree(in.Categories, nil, nil),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("ошибка создания чек-листа: %w", err)
	}

	checklistsCreatedTotal.WithLabelValues("create").Inc()
	s.logger.Info("Чек-лист создан",
		slog.String("checklist_id", c.ID),
		slog.Int("categories", len(c.Categories)),
	)
	return c, nil
}

// Get возвращает чек-лист с деревом по ID.
func (s *ChecklistService) Get(ctx context.Context, id string) (*model.Checklist, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения чек-листа")
	}
	return c, nil
}

// GetByPublicLink возвращает чек-лист по публичной ссылке.
func (s *ChecklistService) GetByPublicLink(ctx context.Context, link string) (*model.Checklist, error) {
	id, err := s.links.Resolve(ctx, link)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Чек-лист удалён другим экземпляром сервиса
			s.links.Invalidate(link)
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения чек-листа: %w", err)
	}
	return c, nil
}

// GetByEditToken возвращает чек-лист по токену редактирования.
func (s *ChecklistService) GetByEditToken(ctx context.Context, token string) (*model.Checklist, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	c, err := s.repo.GetByEditToken(ctx, token)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения чек-листа")
	}
	return c, nil
}

// List возвращает краткие записи чек-листов (новые первыми) и общее количество.
func (s *ChecklistService) List(ctx context.Context, limit, offset int) ([]*model.ChecklistSummary, int, error) {
	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка получения списка чек-листов: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка подсчёта чек-листов: %w", err)
	}
	return items, total, nil
}

// Update заменяет заголовок, описание и дерево чек-листа.
// Категории и пункты с ID из текущего дерева обновляются на месте
// (их файлы сохраняются), остальные создаются заново, отсутствующие удаляются.
// expectedVersion != nil включает проверку версии (If-Match).
func (s *ChecklistService) Update(
	ctx context.Context,
	id, editToken string,
	in ChecklistInput,
	expectedVersion *int,
) (*model.Checklist, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения чек-листа")
	}
	if err := s.tokens.Authorize(current.EditToken, editToken); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	knownCategories := make(map[string]bool)
	knownItems := make(map[string]bool)
	for _, cat := range current.Categories {
		knownCategories[cat.ID] = true
		for _, it := range cat.Items {
			knownItems[it.ID] = true
		}
	}

	c := &model.Checklist{
		ID:          current.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Categories:  buildTree(in.Categories, knownCategories, knownItems),
	}

	removed, err := s.repo.Update(ctx, c, expectedVersion)
	if err != nil {
		if errors.Is(err, repository.ErrVersionMismatch) {
			return nil, fmt.Errorf("%w: %v", ErrPreconditionFailed, err)
		}
		return nil, mapRepoError(err, "ошибка обновления чек-листа")
	}

	s.deleteBlobs(ctx, removed)

	s.logger.Info("Чек-лист обновлён",
		slog.String("checklist_id", c.ID),
		slog.Int("version", c.Version),
		slog.Int("removed_files", len(removed)),
	)
	return c, nil
}

// Delete удаляет чек-лист, всё дерево и содержимое файлов.
func (s *ChecklistService) Delete(ctx context.Context, id, editToken string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "ошибка получения чек-листа")
	}
	if err := s.tokens.Authorize(current.EditToken, editToken); err != nil {
		return err
	}

	keys, err := s.repo.Delete(ctx, id)
	if err != nil {
		return mapRepoError(err, "ошибка удаления чек-листа")
	}
	s.links.Invalidate(current.PublicLink)
	s.deleteBlobs(ctx, keys)

	s.logger.Info("Чек-лист удалён",
		slog.String("checklist_id", id),
		slog.Int("removed_files", len(keys)),
	)
	return nil
}

// Clone создаёт структурную копию чек-листа с новыми идентификаторами
// и токенами. Отметки выполнения сбрасываются, файлы не копируются.
// Пустой newTitle заменяется на "Copy of <title>".
func (s *ChecklistService) Clone(ctx context.Context, id string, newTitle *string) (*model.Checklist, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения чек-листа")
	}

	title := "Copy of " + src.Title
	if newTitle != nil && strings.TrimSpace(*newTitle) != "" {
		title = strings.TrimSpace(*newTitle)
	}

	clone := &model.Checklist{
		ID:          uuid.NewString(),
		Title:       title,
		Description: src.Description,
		PublicLink:  s.tokens.Generate(),
		EditToken:   s.tokens.Generate(),
		Categories:  make([]*model.Category, 0, len(src.Categories)),
	}
	for _, cat := range src.Categories {
		copied := &model.Category{
			ID:    uuid.NewString(),
			Name:  cat.Name,
			Items: make([]*model.Item, 0, len(cat.Items)),
		}
		for _, it := range cat.Items {
			copied.Items = append(copied.Items, &model.Item{
				ID:                 uuid.NewString(),
				Name:               it.Name,
				Description:        it.Description,
				AllowMultipleFiles: it.AllowMultipleFiles,
			})
		}
		clone.Categories = append(clone.Categories, copied)
	}

	if err := s.repo.Create(ctx, clone); err != nil {
		return nil, fmt.Errorf("ошибка клонирования чек-листа: %w", err)
	}

	checklistsCreatedTotal.WithLabelValues("clone").Inc()
	s.logger.Info("Чек-лист клонирован",
		slog.String("source_id", src.ID),
		slog.String("checklist_id", clone.ID),
	)
	return clone, nil
}

// deleteBlobs удаляет содержимое файлов после коммита в БД.
// Ошибки только логируются: метаданные уже удалены.
func (s *ChecklistService) deleteBlobs(ctx context.Context, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := s.blobs.Delete(ctx, key); err != nil {
			s.logger.Warn("Не удалось удалить содержимое файла",
				slog.String("storage_key", key),
				slog.String("error", err.Error()),
			)
		}
	}
}

// validateInput проверяет обязательные поля. Сообщение ошибки содержит
// путь к полю: title, categories[0].name, categories[0].items[1].name.
func validateInput(in ChecklistInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title: поле обязательно", ErrValidation)
	}

	seenCategories := make(map[string]bool)
	seenItems := make(map[string]bool)
	for i, cat := range in.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("%w: categories[%d].name: поле обязательно", ErrValidation, i)
		}
		if cat.ID != nil && *cat.ID != "" {
			if seenCategories[*cat.ID] {
				return fmt.Errorf("%w: categories[%d].id: повторяющийся идентификатор", ErrValidation, i)
			}
			seenCategories[*cat.ID] = true
		}
		for j, it := range cat.Items {
			if strings.TrimSpace(it.Name) == "" {
				return fmt.Errorf("%w: categories[%d].items[%d].name: поле обязательно", ErrValidation, i, j)
			}
			if it.ID != nil && *it.ID != "" {
				if seenItems[*it.ID] {
					return fmt.Errorf("%w: categories[%d].items[%d].id: повторяющийся идентификатор", ErrValidation, i, j)
				}
				seenItems[*it.ID] = true
			}
		}
	}
	return nil
}

// buildTree строит дерево модели из входных данных. ID сохраняется,
// только если он есть в known; иначе генерируется новый.
func buildTree(in []CategoryInput, knownCategories, knownItems map[string]bool) []*model.Category {
	categories := make([]*model.Category, 0, len(in))
	for _, cat := range in {
		c := &model.Category{
			ID:    keepOrGenerate(cat.ID, knownCategories),
			Name:  strings.TrimSpace(cat.Name),
			Items: make([]*model.Item, 0, len(cat.Items)),
		}
		for _, it := range cat.Items {
			c.Items = append(c.Items, &model.Item{
				ID:                 keepOrGenerate(it.ID, knownItems),
				Name:               strings.TrimSpace(it.Name),
				Description:        it.Description,
				Completed:          it.Completed,
				AllowMultipleFiles: it.AllowMultipleFiles,
			})
		}
		categories = append(categories, c)
	}
	return categories
}

func keepOrGenerate(id *string, known map[string]bool) string {
	if id != nil && known[*id] {
		return *id
	}
	return uuid.NewString()
}

// mapRepoError переводит ошибки репозитория в ошибки сервиса.
func mapRepoError(err error, msg string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
