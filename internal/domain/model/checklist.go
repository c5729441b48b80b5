package model

import "time"

// Checklist — чек-лист с категориями.
// Хранится в таблице checklists, дерево — в categories и items.
type Checklist struct {
	// ID — UUID чек-листа (задаётся сервером)
	ID string
	// Title — заголовок (обязателен)
	Title string
	// Description — описание (опционально)
	Description *string
	// PublicLink — публичная ссылка для чтения и загрузки файлов
	PublicLink string
	// EditToken — секрет для изменения и удаления
	EditToken string
	// Version — версия, увеличивается при каждом обновлении
	Version int
	// CreatedAt — время создания
	CreatedAt time.Time
	// UpdatedAt — время последнего обновления
	UpdatedAt time.Time
	// Categories — категории в порядке отображения
	Categories []*Category
}

// Category — категория чек-листа.
type Category struct {
	ID          string
	ChecklistID string
	Name        string
	// Position — порядковый номер внутри чек-листа (с 0)
	Position int
	Items    []*Item
}

// Item — пункт категории.
type Item struct {
	ID          string
	CategoryID  string
	ChecklistID string
	Name        string
	Description *string
	Completed   bool
	// AllowMultipleFiles — false означает не более одного файла на пункт
	AllowMultipleFiles bool
	// Position — порядковый номер внутри категории (с 0)
	Position int
}

// ChecklistSummary — краткое представление чек-листа для списка.
type ChecklistSummary struct {
	ID            string
	Title         string
	Description   *string
	CategoryCount int
	CreatedAt     time.Time
}

// ItemIDs возвращает идентификаторы всех пунктов чек-листа.
func (c *Checklist) ItemIDs() []string {
	var ids []string
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// FindCategory ищет категорию по ID.
func (c *Checklist) FindCategory(id string) *Category {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat
		}
	}
	return nil
}

// FindItem ищет пункт по ID во всех категориях.
func (c *Checklist) FindItem(id string) *Item {
	for _, cat := range c.Categories {
		for _, it := range cat.Items {
			if it.ID == id {
				return it
			}
		}
	}
	return nil
}
