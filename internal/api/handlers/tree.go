// tree.go — обработчики endpoints отдельных категорий и пунктов.
// Все операции требуют токен редактирования чек-листа.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/service"
)

// CreateCategory — POST /checklists/{checklist_id}/categories/.
func (h *APIHandler) CreateCategory(w http.ResponseWriter, r *http.Request, checklistId generated.ChecklistId, params generated.CreateCategoryParams) {
	var req generated.CreateCategoryJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	cat, err := h.checklists.AddCategory(r.Context(), checklistId.String(), editToken(r, params.EditToken), fromAPICategory(req))
	if err != nil {
		h.writeServiceError(w, err, "Ошибка добавления категории")
		return
	}
	writeJSON(w, http.StatusCreated, toAPICategory(cat))
}

// UpdateCategory — PUT /categories/{category_id}.
// Без поля items пункты категории не меняются.
func (h *APIHandler) UpdateCategory(w http.ResponseWriter, r *http.Request, categoryId generated.CategoryId, params generated.UpdateCategoryParams) {
	var req generated.UpdateCategoryJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	var items *[]service.ItemInput
	if req.Items != nil {
		converted := fromAPIItems(*req.Items)
		items = &converted
	}

	cat, err := h.checklists.UpdateCategory(r.Context(), categoryId.String(), editToken(r, params.EditToken), req.Name, items)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка обновления категории")
		return
	}
	writeJSON(w, http.StatusOK, toAPICategory(cat))
}

// DeleteCategory — DELETE /categories/{category_id}.
func (h *APIHandler) DeleteCategory(w http.ResponseWriter, r *http.Request, categoryId generated.CategoryId, params generated.DeleteCategoryParams) {
	if err := h.checklists.DeleteCategory(r.Context(), categoryId.String(), editToken(r, params.EditToken)); err != nil {
		h.writeServiceError(w, err, "Ошибка удаления категории")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateItem — POST /categories/{category_id}/items/.
func (h *APIHandler) CreateItem(w http.ResponseWriter, r *http.Request, categoryId generated.CategoryId, params generated.CreateItemParams) {
	var req generated.CreateItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	it, err := h.checklists.AddItem(r.Context(), categoryId.String(), editToken(r, params.EditToken), fromAPIItem(req))
	if err != nil {
		h.writeServiceError(w, err, "Ошибка добавления пункта")
		return
	}
	writeJSON(w, http.StatusCreated, toAPIItem(it))
}

// UpdateItem — PUT /items/{item_id}. Частичное изменение, в том числе completed.
func (h *APIHandler) UpdateItem(w http.ResponseWriter, r *http.Request, itemId generated.ItemId, params generated.UpdateItemParams) {
	var req generated.UpdateItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	it, err := h.checklists.UpdateItem(r.Context(), itemId.String(), editToken(r, params.EditToken), service.ItemPatch{
		Name:               req.Name,
		Description:        req.Description,
		Completed:          req.Completed,
		AllowMultipleFiles: req.AllowMultipleFiles,
	})
	if err != nil {
		h.writeServiceError(w, err, "Ошибка обновления пункта")
		return
	}
	writeJSON(w, http.StatusOK, toAPIItem(it))
}

// DeleteItem — DELETE /items/{item_id}.
func (h *APIHandler) DeleteItem(w http.ResponseWriter, r *http.Request, itemId generated.ItemId, params generated.DeleteItemParams) {
	if err := h.checklists.DeleteItem(r.Context(), itemId.String(), editToken(r, params.EditToken)); err != nil {
		h.writeServiceError(w, err, "Ошибка удаления пункта")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
