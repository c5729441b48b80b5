// mapping.go — преобразование доменных моделей в API-формат и обратно,
// отображение ошибок сервисного слоя в HTTP-ответы.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/service"
)

// writeServiceError отображает ошибку сервиса в HTTP-ответ.
// Неизвестные ошибки логируются, клиент получает непрозрачное сообщение.
func (h *APIHandler) writeServiceError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		apierrors.ValidationError(w, err.Error())
	case errors.Is(err, service.ErrNotFound):
		apierrors.NotFound(w, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		apierrors.Unauthorized(w, err.Error())
	case errors.Is(err, service.ErrCapacityExceeded):
		apierrors.CapacityExceeded(w, err.Error())
	case errors.Is(err, service.ErrPreconditionFailed):
		apierrors.PreconditionFailed(w, err.Error())
	case errors.Is(err, service.ErrFileTooLarge):
		apierrors.FileTooLarge(w, err.Error())
	default:
		h.logger.Error(internalMsg, slog.String("error", err.Error()))
		apierrors.InternalError(w, internalMsg)
	}
}

// toUUID переводит строковый ID модели в UUID API.
// ID генерируются сервером, поэтому некорректное значение даёт uuid.Nil.
func toUUID(id string) openapi_types.UUID {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}
	return u
}

// toAPIChecklist преобразует чек-лист; withToken включает edit_token в ответ.
func toAPIChecklist(c *model.Checklist, withToken bool) generated.Checklist {
	resp := generated.Checklist{
		Id:          toUUID(c.ID),
		Title:       c.Title,
		Description: c.Description,
		PublicLink:  c.PublicLink,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Categories:  make([]generated.Category, 0, len(c.Categories)),
	}
	if withToken {
		token := c.EditToken
		resp.EditToken = &token
	}

	for _, cat := range c.Categories {
		resp.Categories = append(resp.Categories, toAPICategory(cat))
	}
	return resp
}

func toAPICategory(cat *model.Category) generated.Category {
	resp := generated.Category{
		Id:       toUUID(cat.ID),
		Name:     cat.Name,
		Position: cat.Position,
		Items:    make([]generated.Item, 0, len(cat.Items)),
	}
	for _, it := range cat.Items {
		resp.Items = append(resp.Items, toAPIItem(it))
	}
	return resp
}

func toAPIItem(it *model.Item) generated.Item {
	return generated.Item{
		Id:                 toUUID(it.ID),
		CategoryId:         toUUID(it.CategoryID),
		Name:               it.Name,
		Description:        it.Description,
		Completed:          it.Completed,
		AllowMultipleFiles: it.AllowMultipleFiles,
		Position:           it.Position,
	}
}

func toAPISummary(s *model.ChecklistSummary) generated.ChecklistSummary {
	return generated.ChecklistSummary{
		Id:            toUUID(s.ID),
		Title:         s.Title,
		Description:   s.Description,
		CategoryCount: s.CategoryCount,
		CreatedAt:     s.CreatedAt,
	}
}

func toAPIFile(u *model.FileUpload) generated.FileUpload {
	return generated.FileUpload{
		Id:          toUUID(u.ID),
		ItemId:      toUUID(u.ItemID),
		Filename:    u.Filename,
		ContentType: u.ContentType,
		Size:        u.Size,
		Checksum:    u.Checksum,
		Uploader:    u.Uploader,
		UploadedAt:  u.CreatedAt,
	}
}

// fromAPIInput преобразует тело запроса в входные данные сервиса.
// Отсутствующие completed и allow_multiple_files считаются false.
func fromAPIInput(in generated.ChecklistInput) service.ChecklistInput {
	result := service.ChecklistInput{
		Title:       in.Title,
		Description: in.Description,
	}
	if in.Categories == nil {
		return result
	}

	result.Categories = make([]service.CategoryInput, 0, len(*in.Categories))
	for _, cat := range *in.Categories {
		result.Categories = append(result.Categories, fromAPICategory(cat))
	}
	return result
}

func fromAPICategory(in generated.CategoryInput) service.CategoryInput {
	c := service.CategoryInput{ID: in.Id, Name: in.Name}
	if in.Items != nil {
		c.Items = fromAPIItems(*in.Items)
	}
	return c
}

func fromAPIItems(in []generated.ItemInput) []service.ItemInput {
	items := make([]service.ItemInput, 0, len(in))
	for _, it := range in {
		items = append(items, fromAPIItem(it))
	}
	return items
}

func fromAPIItem(it generated.ItemInput) service.ItemInput {
	return service.ItemInput{
		ID:                 it.Id,
		Name:               it.Name,
		Description:        it.Description,
		Completed:          boolValue(it.Completed),
		AllowMultipleFiles: boolValue(it.AllowMultipleFiles),
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
