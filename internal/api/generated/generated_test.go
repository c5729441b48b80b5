package generated

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger: %v", err)
	}
	if err := swagger.Validate(context.Background()); err != nil {
		t.Fatalf("контракт не прошёл валидацию: %v", err)
	}

	for _, p := range []string{
		"/checklists/",
		"/checklists/{checklist_id}",
		"/checklists/{checklist_id}/clone",
		"/checklists/{checklist_id}/categories/",
		"/categories/{category_id}",
		"/categories/{category_id}/items/",
		"/items/{item_id}",
		"/checklists/public/{public_link}",
		"/checklists/public/{public_link}/items/{item_id}/uploads/",
		"/checklists/edit/{edit_token}",
		"/items/{item_id}/uploads/",
		"/uploads/{file_id}",
		"/uploads/{file_id}/download",
		"/health/live",
		"/health/ready",
		"/metrics",
		"/openapi.json",
	} {
		if swagger.Paths.Find(p) == nil {
			t.Errorf("в контракте нет пути %s", p)
		}
	}
}

// TestRoutesMatchSwagger проверяет, что каждая операция контракта
// зарегистрирована в роутере.
func TestRoutesMatchSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	if err != nil {
		t.Fatalf("GetSwagger: %v", err)
	}

	router := chi.NewRouter()
	HandlerFromMux(Unimplemented{}, router)

	registered := make(map[string]bool)
	err = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk: %v", err)
	}

	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			if !registered[method+" "+path] {
				t.Errorf("операция %s %s не зарегистрирована", method, path)
			}
		}
	}
}

func TestUpdateChecklist_IfMatchHeader(t *testing.T) {
	var got UpdateChecklistParams
	si := &captureUpdate{params: &got}

	router := chi.NewRouter()
	HandlerFromMux(si, router)

	req := httptest.NewRequest(http.MethodPut, "/checklists/3f1c8d2a-5b7e-4c9a-8d1f-2e3a4b5c6d7e?edit_token=tok", nil)
	req.Header.Set("If-Match", `"2"`)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидали 200", rec.Code)
	}
	if got.EditToken == nil || *got.EditToken != "tok" {
		t.Errorf("edit_token = %v, ожидали tok", got.EditToken)
	}
	if got.IfMatch == nil || *got.IfMatch != `"2"` {
		t.Errorf("If-Match = %v, ожидали \"2\"", got.IfMatch)
	}
}

type captureUpdate struct {
	Unimplemented
	params *UpdateChecklistParams
}

func (c *captureUpdate) UpdateChecklist(w http.ResponseWriter, _ *http.Request, _ ChecklistId, params UpdateChecklistParams) {
	*c.params = params
	w.WriteHeader(http.StatusOK)
}

func TestUpdateItem_BindsPathAndToken(t *testing.T) {
	si := &captureItem{}

	router := chi.NewRouter()
	HandlerFromMux(si, router)

	req := httptest.NewRequest(http.MethodPut, "/items/3f1c8d2a-5b7e-4c9a-8d1f-2e3a4b5c6d7e?edit_token=tok", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидали 200", rec.Code)
	}
	if si.itemID.String() != "3f1c8d2a-5b7e-4c9a-8d1f-2e3a4b5c6d7e" {
		t.Errorf("item_id = %s", si.itemID)
	}
	if si.params.EditToken == nil || *si.params.EditToken != "tok" {
		t.Errorf("edit_token = %v, ожидали tok", si.params.EditToken)
	}

	// Некорректный UUID не доходит до обработчика
	req = httptest.NewRequest(http.MethodDelete, "/items/not-a-uuid", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("статус = %d, ожидали 400", rec.Code)
	}
}

type captureItem struct {
	Unimplemented
	itemID ItemId
	params UpdateItemParams
}

func (c *captureItem) UpdateItem(w http.ResponseWriter, _ *http.Request, itemID ItemId, params UpdateItemParams) {
	c.itemID = itemID
	c.params = params
	w.WriteHeader(http.StatusOK)
}
