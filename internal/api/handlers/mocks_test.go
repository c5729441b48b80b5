package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/service"
)

// mockChecklists — мок ChecklistService. Неустановленные функции
// возвращают service.ErrNotFound.
type mockChecklists struct {
	createFn          func(in service.ChecklistInput) (*model.Checklist, error)
	getFn             func(id string) (*model.Checklist, error)
	getByPublicLinkFn func(link string) (*model.Checklist, error)
	getByEditTokenFn  func(token string) (*model.Checklist, error)
	listFn            func(limit, offset int) ([]*model.ChecklistSummary, int, error)
	updateFn          func(id, token string, in service.ChecklistInput, expectedVersion *int) (*model.Checklist, error)
	deleteFn          func(id, token string) error
	cloneFn           func(id string, newTitle *string) (*model.Checklist, error)

	addCategoryFn    func(checklistID, token string, in service.CategoryInput) (*model.Category, error)
	updateCategoryFn func(categoryID, token, name string, items *[]service.ItemInput) (*model.Category, error)
	deleteCategoryFn func(categoryID, token string) error
	addItemFn        func(categoryID, token string, in service.ItemInput) (*model.Item, error)
	updateItemFn     func(itemID, token string, patch service.ItemPatch) (*model.Item, error)
	deleteItemFn     func(itemID, token string) error
}

func (m *mockChecklists) Create(_ context.Context, in service.ChecklistInput) (*model.Checklist, error) {
	if m.createFn == nil {
		return nil, service.ErrNotFound
	}
	return m.createFn(in)
}

func (m *mockChecklists) Get(_ context.Context, id string) (*model.Checklist, error) {
	if m.getFn == nil {
		return nil, service.ErrNotFound
	}
	return m.getFn(id)
}

func (m *mockChecklists) GetByPublicLink(_ context.Context, link string) (*model.Checklist, error) {
	if m.getByPublicLinkFn == nil {
		return nil, service.ErrNotFound
	}
	return m.getByPublicLinkFn(link)
}

func (m *mockChecklists) GetByEditToken(_ context.Context, token string) (*model.Checklist, error) {
	if m.getByEditTokenFn == nil {
		return nil, service.ErrNotFound
	}
	return m.getByEditTokenFn(token)
}

func (m *mockChecklists) List(_ context.Context, limit, offset int) ([]*model.ChecklistSummary, int, error) {
	if m.listFn == nil {
		return []*model.ChecklistSummary{}, 0, nil
	}
	return m.listFn(limit, offset)
}

func (m *mockChecklists) Update(_ context.Context, id, token string, in service.ChecklistInput, expectedVersion *int) (*model.Checklist, error) {
	if m.updateFn == nil {
		return nil, service.ErrNotFound
	}
	return m.updateFn(id, token, in, expectedVersion)
}

func (m *mockChecklists) Delete(_ context.Context, id, token string) error {
	if m.deleteFn == nil {
		return service.ErrNotFound
	}
	return m.deleteFn(id, token)
}

func (m *mockChecklists) Clone(_ context.Context, id string, newTitle *string) (*model.Checklist, error) {
	if m.cloneFn == nil {
		return nil, service.ErrNotFound
	}
	return m.cloneFn(id, newTitle)
}

func (m *mockChecklists) AddCategory(_ context.Context, checklistID, token string, in service.CategoryInput) (*model.Category, error) {
	if m.addCategoryFn == nil {
		return nil, service.ErrNotFound
	}
	return m.addCategoryFn(checklistID, token, in)
}

func (m *mockChecklists) UpdateCategory(_ context.Context, categoryID, token, name string, items *[]service.ItemInput) (*model.Category, error) {
	if m.updateCategoryFn == nil {
		return nil, service.ErrNotFound
	}
	return m.updateCategoryFn(categoryID, token, name, items)
}

func (m *mockChecklists) DeleteCategory(_ context.Context, categoryID, token string) error {
	if m.deleteCategoryFn == nil {
		return service.ErrNotFound
	}
	return m.deleteCategoryFn(categoryID, token)
}

func (m *mockChecklists) AddItem(_ context.Context, categoryID, token string, in service.ItemInput) (*model.Item, error) {
	if m.addItemFn == nil {
		return nil, service.ErrNotFound
	}
	return m.addItemFn(categoryID, token, in)
}

func (m *mockChecklists) UpdateItem(_ context.Context, itemID, token string, patch service.ItemPatch) (*model.Item, error) {
	if m.updateItemFn == nil {
		return nil, service.ErrNotFound
	}
	return m.updateItemFn(itemID, token, patch)
}

func (m *mockChecklists) DeleteItem(_ context.Context, itemID, token string) error {
	if m.deleteItemFn == nil {
		return service.ErrNotFound
	}
	return m.deleteItemFn(itemID, token)
}

// mockUploads — мок UploadService.
type mockUploads struct {
	maxSize         int64
	uploadFn        func(itemID string, in service.UploadInput) (*model.FileUpload, error)
	uploadViaLinkFn func(link, itemID string, in service.UploadInput) (*model.FileUpload, error)
	listFn          func(itemID string) ([]*model.FileUpload, error)
	getFn           func(fileID string) (*model.FileUpload, error)
	openFn          func(fileID string) (*model.FileUpload, io.ReadCloser, error)
	deleteFn        func(fileID string) error
}

func (m *mockUploads) MaxSize() int64 {
	if m.maxSize == 0 {
		return 1 << 20
	}
	return m.maxSize
}

func (m *mockUploads) Upload(_ context.Context, itemID string, in service.UploadInput) (*model.FileUpload, error) {
	if m.uploadFn == nil {
		return nil, service.ErrNotFound
	}
	return m.uploadFn(itemID, in)
}

func (m *mockUploads) UploadViaPublicLink(_ context.Context, link, itemID string, in service.UploadInput) (*model.FileUpload, error) {
	if m.uploadViaLinkFn == nil {
		return nil, service.ErrNotFound
	}
	return m.uploadViaLinkFn(link, itemID, in)
}

func (m *mockUploads) List(_ context.Context, itemID string) ([]*model.FileUpload, error) {
	if m.listFn == nil {
		return nil, service.ErrNotFound
	}
	return m.listFn(itemID)
}

func (m *mockUploads) Get(_ context.Context, fileID string) (*model.FileUpload, error) {
	if m.getFn == nil {
		return nil, service.ErrNotFound
	}
	return m.getFn(fileID)
}

func (m *mockUploads) Open(_ context.Context, fileID string) (*model.FileUpload, io.ReadCloser, error) {
	if m.openFn == nil {
		return nil, nil, service.ErrNotFound
	}
	return m.openFn(fileID)
}

func (m *mockUploads) Delete(_ context.Context, fileID string) error {
	if m.deleteFn == nil {
		return service.ErrNotFound
	}
	return m.deleteFn(fileID)
}

// mockChecker — ReadinessChecker с фиксированным результатом.
type mockChecker struct {
	status  string
	message string
}

func (c *mockChecker) CheckReady() (string, string) { return c.status, c.message }

// newTestRouter собирает роутер с APIHandler поверх моков.
func newTestRouter(t *testing.T, cl *mockChecklists, up *mockUploads) http.Handler {
	t.Helper()

	if cl == nil {
		cl = &mockChecklists{}
	}
	if up == nil {
		up = &mockUploads{}
	}

	swagger, err := generated.GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger: %v", err)
	}
	spec, err := NewSpecHandler(swagger)
	if err != nil {
		t.Fatalf("NewSpecHandler: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	health := NewHealthHandler(&mockChecker{status: "ok"}, &mockChecker{status: "ok"})
	h := NewAPIHandler(health, spec, cl, up, logger)

	router := chi.NewRouter()
	generated.HandlerWithOptions(h, generated.ChiServerOptions{BaseRouter: router})
	return router
}

const (
	testChecklistID = "3f1c8d2a-5b7e-4c9a-8d1f-2e3a4b5c6d7e"
	testCategoryID  = "7a8b9c0d-1e2f-4a3b-8c4d-5e6f7a8b9c0d"
	testItemID      = "0d9c8b7a-6f5e-4d3c-9b2a-1f0e9d8c7b6a"
	testFileID      = "5e6f7a8b-9c0d-4e1f-a2b3-c4d5e6f7a8b9"
)

func testChecklist() *model.Checklist {
	return &model.Checklist{
		ID:         testChecklistID,
		Title:      "Переезд",
		PublicLink: "public-link",
		EditToken:  "edit-token",
		Version:    3,
		Categories: []*model.Category{{
			ID:          testCategoryID,
			ChecklistID: testChecklistID,
			Name:        "Документы",
			Items: []*model.Item{{
				ID:          testItemID,
				CategoryID:  testCategoryID,
				ChecklistID: testChecklistID,
				Name:        "Паспорт",
			}},
		}},
	}
}
