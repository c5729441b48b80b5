// checklists.go — обработчики endpoints чек-листов.
// Создание, чтение (по ID, публичной ссылке, токену), список,
// обновление, удаление, клонирование.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/domain/model"
)

// ListChecklists — GET /checklists/.
func (h *APIHandler) ListChecklists(w http.ResponseWriter, r *http.Request, params generated.ListChecklistsParams) {
	limit, offset := paginationDefaults(params.Limit, params.Offset)

	summaries, total, err := h.checklists.List(r.Context(), limit, offset)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения списка чек-листов")
		return
	}

	items := make([]generated.ChecklistSummary, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, toAPISummary(s))
	}

	writeJSON(w, http.StatusOK, generated.ChecklistListResponse{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	})
}

// CreateChecklist — POST /checklists/.
func (h *APIHandler) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	var req generated.CreateChecklistJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	c, err := h.checklists.Create(r.Context(), fromAPIInput(req))
	if err != nil {
		h.writeServiceError(w, err, "Ошибка создания чек-листа")
		return
	}

	writeChecklist(w, http.StatusCreated, c, true)
}

// GetChecklist — GET /checklists/{checklist_id}.
func (h *APIHandler) GetChecklist(w http.ResponseWriter, r *http.Request, checklistId generated.ChecklistId) {
	c, err := h.checklists.Get(r.Context(), checklistId.String())
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения чек-листа")
		return
	}
	writeChecklist(w, http.StatusOK, c, false)
}

// GetChecklistByPublicLink — GET /checklists/public/{public_link}.
// Ответ не содержит edit_token.
func (h *APIHandler) GetChecklistByPublicLink(w http.ResponseWriter, r *http.Request, publicLink generated.PublicLink) {
	c, err := h.checklists.GetByPublicLink(r.Context(), publicLink)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения чек-листа")
		return
	}
	writeChecklist(w, http.StatusOK, c, false)
}

// GetChecklistByEditToken — GET /checklists/edit/{edit_token}.
func (h *APIHandler) GetChecklistByEditToken(w http.ResponseWriter, r *http.Request, editToken string) {
	c, err := h.checklists.GetByEditToken(r.Context(), editToken)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения чек-листа")
		return
	}
	writeChecklist(w, http.StatusOK, c, true)
}

// UpdateChecklist — PUT /checklists/{checklist_id}.
// Заголовок If-Match включает проверку версии.
func (h *APIHandler) UpdateChecklist(w http.ResponseWriter, r *http.Request, checklistId generated.ChecklistId, params generated.UpdateChecklistParams) {
	expectedVersion, err := parseIfMatch(params.IfMatch)
	if err != nil {
		apierrors.ValidationError(w, err.Error())
		return
	}

	var req generated.UpdateChecklistJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный JSON: %s", err.Error()))
		return
	}

	c, err := h.checklists.Update(r.Context(), checklistId.String(), editToken(r, params.EditToken), fromAPIInput(req), expectedVersion)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка обновления чек-листа")
		return
	}
	writeChecklist(w, http.StatusOK, c, false)
}

// DeleteChecklist — DELETE /checklists/{checklist_id}.
func (h *APIHandler) DeleteChecklist(w http.ResponseWriter, r *http.Request, checklistId generated.ChecklistId, params generated.DeleteChecklistParams) {
	if err := h.checklists.Delete(r.Context(), checklistId.String(), editToken(r, params.EditToken)); err != nil {
		h.writeServiceError(w, err, "Ошибка удаления чек-листа")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloneChecklist — POST /checklists/{checklist_id}/clone.
func (h *APIHandler) CloneChecklist(w http.ResponseWriter, r *http.Request, checklistId generated.ChecklistId, params generated.CloneChecklistParams) {
	c, err := h.checklists.Clone(r.Context(), checklistId.String(), params.NewTitle)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка клонирования чек-листа")
		return
	}
	writeChecklist(w, http.StatusCreated, c, true)
}

// writeChecklist пишет чек-лист с ETag, равным его версии.
func writeChecklist(w http.ResponseWriter, status int, c *model.Checklist, withToken bool) {
	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(c.Version)))
	writeJSON(w, status, toAPIChecklist(c, withToken))
}

// editToken извлекает токен редактирования: query-параметр edit_token
// имеет приоритет над заголовком Authorization: Bearer.
func editToken(r *http.Request, query *string) string {
	if query != nil && *query != "" {
		return *query
	}
	auth := r.Header.Get("Authorization")
	if len(auth) > len("Bearer ") && strings.EqualFold(auth[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return ""
}

// parseIfMatch разбирает If-Match: "3", 3 или W/"3". "*" — без проверки.
func parseIfMatch(v *string) (*int, error) {
	if v == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*v)
	if s == "" || s == "*" {
		return nil, nil
	}
	s = strings.TrimPrefix(s, "W/")
	s = strings.Trim(s, `"`)

	version, err := strconv.Atoi(s)
	if err != nil || version < 1 {
		return nil, fmt.Errorf("If-Match: некорректная версия %q", *v)
	}
	return &version, nil
}
