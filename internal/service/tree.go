package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bigkaa/checklists/internal/domain/model"
)

// ItemPatch — частичное изменение пункта. nil-поля не меняются,
// пустое Description очищает описание.
type ItemPatch struct {
	Name               *string
	Description        *string
	Completed          *bool
	AllowMultipleFiles *bool
}

// AddCategory добавляет категорию с пунктами в конец чек-листа.
func (s *ChecklistService) AddCategory(
	ctx context.Context,
	checklistID, editToken string,
	in CategoryInput,
) (*model.Category, error) {
	var added *model.Category

	c, removed, err := s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		if err := validateCategory(in.Name, in.Items); err != nil {
			return err
		}
		added = buildTree([]CategoryInput{in}, nil, nil)[0]
		c.Categories = append(c.Categories, added)
		return nil
	})
	if err != nil {
		return nil, mapTreeError(err, "ошибка добавления категории")
	}
	s.deleteBlobs(ctx, removed)

	s.logger.Info("Категория добавлена",
		slog.String("checklist_id", c.ID),
		slog.String("category_id", added.ID),
		slog.Int("version", c.Version),
	)
	return added, nil
}

// UpdateCategory переименовывает категорию. items != nil заменяет её пункты:
// пункты с ID этой категории обновляются на месте, остальные создаются,
// отсутствующие удаляются вместе с файлами.
func (s *ChecklistService) UpdateCategory(
	ctx context.Context,
	categoryID, editToken, name string,
	items *[]ItemInput,
) (*model.Category, error) {
	checklistID, err := s.repo.ResolveCategory(ctx, categoryID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка поиска категории")
	}

	var updated *model.Category
	c, removed, err := s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		cat := c.FindCategory(categoryID)
		if cat == nil {
			return ErrNotFound
		}

		var in []ItemInput
		if items != nil {
			in = *items
		}
		if err := validateCategory(name, in); err != nil {
			return err
		}

		cat.Name = strings.TrimSpace(name)
		if items != nil {
			known := make(map[string]bool, len(cat.Items))
			for _, it := range cat.Items {
				known[it.ID] = true
			}
			cat.Items = buildTree([]CategoryInput{{Items: in}}, nil, known)[0].Items
		}
		updated = cat
		return nil
	})
	if err != nil {
		return nil, mapTreeError(err, "ошибка обновления категории")
	}
	s.deleteBlobs(ctx, removed)

	s.logger.Info("Категория обновлена",
		slog.String("checklist_id", c.ID),
		slog.String("category_id", categoryID),
		slog.Int("removed_files", len(removed)),
	)
	return updated, nil
}

// DeleteCategory удаляет категорию, её пункты и файлы.
func (s *ChecklistService) DeleteCategory(ctx context.Context, categoryID, editToken string) error {
	checklistID, err := s.repo.ResolveCategory(ctx, categoryID)
	if err != nil {
		return mapRepoError(err, "ошибка поиска категории")
	}

	_, removed, err := s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		before := len(c.Categories)
		c.Categories = slices.DeleteFunc(c.Categories, func(cat *model.Category) bool {
			return cat.ID == categoryID
		})
		if len(c.Categories) == before {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return mapTreeError(err, "ошибка удаления категории")
	}
	s.deleteBlobs(ctx, removed)

	s.logger.Info("Категория удалена",
		slog.String("checklist_id", checklistID),
		slog.String("category_id", categoryID),
		slog.Int("removed_files", len(removed)),
	)
	return nil
}

// AddItem добавляет пункт в конец категории.
func (s *ChecklistService) AddItem(
	ctx context.Context,
	categoryID, editToken string,
	in ItemInput,
) (*model.Item, error) {
	checklistID, err := s.repo.ResolveCategory(ctx, categoryID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка поиска категории")
	}

	var added *model.Item
	_, _, err = s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		cat := c.FindCategory(categoryID)
		if cat == nil {
			return ErrNotFound
		}
		if strings.TrimSpace(in.Name) == "" {
			return fmt.Errorf("%w: name: поле обязательно", ErrValidation)
		}
		added = buildTree([]CategoryInput{{Items: []ItemInput{in}}}, nil, nil)[0].Items[0]
		cat.Items = append(cat.Items, added)
		return nil
	})
	if err != nil {
		return nil, mapTreeError(err, "ошибка добавления пункта")
	}

	s.logger.Info("Пункт добавлен",
		slog.String("checklist_id", checklistID),
		slog.String("item_id", added.ID),
	)
	return added, nil
}

// UpdateItem частично изменяет пункт, в том числе отметку выполнения.
// Файлы пункта сохраняются.
func (s *ChecklistService) UpdateItem(
	ctx context.Context,
	itemID, editToken string,
	patch ItemPatch,
) (*model.Item, error) {
	checklistID, err := s.repo.ResolveItem(ctx, itemID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка поиска пункта")
	}

	var updated *model.Item
	_, _, err = s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		it := c.FindItem(itemID)
		if it == nil {
			return ErrNotFound
		}

		if patch.Name != nil {
			if strings.TrimSpace(*patch.Name) == "" {
				return fmt.Errorf("%w: name: поле не может быть пустым", ErrValidation)
			}
			it.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			if *patch.Description == "" {
				it.Description = nil
			} else {
				desc := *patch.Description
				it.Description = &desc
			}
		}
		if patch.Completed != nil {
			it.Completed = *patch.Completed
		}
		if patch.AllowMultipleFiles != nil {
			it.AllowMultipleFiles = *patch.AllowMultipleFiles
		}
		updated = it
		return nil
	})
	if err != nil {
		return nil, mapTreeError(err, "ошибка обновления пункта")
	}

	s.logger.Info("Пункт обновлён",
		slog.String("checklist_id", checklistID),
		slog.String("item_id", itemID),
		slog.Bool("completed", updated.Completed),
	)
	return updated, nil
}

// DeleteItem удаляет пункт и его файлы.
func (s *ChecklistService) DeleteItem(ctx context.Context, itemID, editToken string) error {
	checklistID, err := s.repo.ResolveItem(ctx, itemID)
	if err != nil {
		return mapRepoError(err, "ошибка поиска пункта")
	}

	_, removed, err := s.repo.Modify(ctx, checklistID, func(c *model.Checklist) error {
		if err := s.tokens.Authorize(c.EditToken, editToken); err != nil {
			return err
		}
		for _, cat := range c.Categories {
			before := len(cat.Items)
			cat.Items = slices.DeleteFunc(cat.Items, func(it *model.Item) bool {
				return it.ID == itemID
			})
			if len(cat.Items) != before {
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return mapTreeError(err, "ошибка удаления пункта")
	}
	s.deleteBlobs(ctx, removed)

	s.logger.Info("Пункт удалён",
		slog.String("checklist_id", checklistID),
		slog.String("item_id", itemID),
		slog.Int("removed_files", len(removed)),
	)
	return nil
}

// validateCategory проверяет имя категории и её пунктов.
func validateCategory(name string, items []ItemInput) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name: поле обязательно", ErrValidation)
	}
	seen := make(map[string]bool)
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("%w: items[%d].name: поле обязательно", ErrValidation, i)
		}
		if it.ID != nil && *it.ID != "" {
			if seen[*it.ID] {
				return fmt.Errorf("%w: items[%d].id: повторяющийся идентификатор", ErrValidation, i)
			}
			seen[*it.ID] = true
		}
	}
	return nil
}

// mapTreeError пропускает ошибки сервиса из функции изменения дерева
// и переводит ошибки репозитория.
func mapTreeError(err error, msg string) error {
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) {
		return err
	}
	return mapRepoError(err, msg)
}
