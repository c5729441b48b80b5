// handler.go — основной обработчик API, реализующий generated.ServerInterface.
// Объединяет доменные обработчики и делегирует запросы в сервисный слой.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/service"
)

// ChecklistService — операции над чек-листами, используемые API.
// Реализуется *service.ChecklistService.
type ChecklistService interface {
	Create(ctx context.Context, in service.ChecklistInput) (*model.Checklist, error)
	Get(ctx context.Context, id string) (*model.Checklist, error)
	GetByPublicLink(ctx context.Context, link string) (*model.Checklist, error)
	GetByEditToken(ctx context.Context, token string) (*model.Checklist, error)
	List(ctx context.Context, limit, offset int) ([]*model.ChecklistSummary, int, error)
	Update(ctx context.Context, id, editToken string, in service.ChecklistInput, expectedVersion *int) (*model.Checklist, error)
	Delete(ctx context.Context, id, editToken string) error
	Clone(ctx context.Context, id string, newTitle *string) (*model.Checklist, error)

	AddCategory(ctx context.Context, checklistID, editToken string, in service.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, categoryID, editToken, name string, items *[]service.ItemInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, categoryID, editToken string) error
	AddItem(ctx context.Context, categoryID, editToken string, in service.ItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, itemID, editToken string, patch service.ItemPatch) (*model.Item, error)
	DeleteItem(ctx context.Context, itemID, editToken string) error
}

// UploadService — операции над файлами, используемые API.
// Реализуется *service.UploadService.
type UploadService interface {
	MaxSize() int64
	Upload(ctx context.Context, itemID string, in service.UploadInput) (*model.FileUpload, error)
	UploadViaPublicLink(ctx context.Context, link, itemID string, in service.UploadInput) (*model.FileUpload, error)
	List(ctx context.Context, itemID string) ([]*model.FileUpload, error)
	Get(ctx context.Context, fileID string) (*model.FileUpload, error)
	Open(ctx context.Context, fileID string) (*model.FileUpload, io.ReadCloser, error)
	Delete(ctx context.Context, fileID string) error
}

var (
	_ ChecklistService = (*service.ChecklistService)(nil)
	_ UploadService    = (*service.UploadService)(nil)

	_ generated.ServerInterface = (*APIHandler)(nil)
)

// APIHandler — основной обработчик API Checklist Service.
type APIHandler struct {
	health     *HealthHandler
	spec       *SpecHandler
	checklists ChecklistService
	uploads    UploadService
	logger     *slog.Logger
}

// NewAPIHandler создаёт основной обработчик API.
func NewAPIHandler(
	health *HealthHandler,
	spec *SpecHandler,
	checklists ChecklistService,
	uploads UploadService,
	logger *slog.Logger,
) *APIHandler {
	return &APIHandler{
		health:     health,
		spec:       spec,
		checklists: checklists,
		uploads:    uploads,
		logger:     logger.With(slog.String("component", "api_handler")),
	}
}

// HealthLive — liveness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	h.health.HealthLive(w, r)
}

// HealthReady — readiness probe (делегируется в HealthHandler).
func (h *APIHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	h.health.HealthReady(w, r)
}

// GetMetrics — Prometheus метрики (делегируется в HealthHandler).
func (h *APIHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.health.GetMetrics(w, r)
}

// GetOpenapiSpec — OpenAPI контракт (делегируется в SpecHandler).
func (h *APIHandler) GetOpenapiSpec(w http.ResponseWriter, r *http.Request) {
	h.spec.GetOpenapiSpec(w, r)
}

// --- Вспомогательные функции ---

// writeJSON записывает JSON-ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// paginationDefaults нормализует параметры пагинации.
// Возвращает корректные limit и offset.
func paginationDefaults(limit *int, offset *int) (int, int) {
	l := 100
	o := 0

	if limit != nil {
		l = *limit
		if l < 1 {
			l = 1
		}
		if l > 1000 {
			l = 1000
		}
	}

	if offset != nil {
		o = *offset
		if o < 0 {
			o = 0
		}
	}

	return l, o
}
