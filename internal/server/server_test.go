package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/config"
)

// stubHandler — реализация ServerInterface, отвечающая 200 на GetChecklist.
type stubHandler struct {
	generated.Unimplemented
	gotID string
}

func (h *stubHandler) GetChecklist(w http.ResponseWriter, _ *http.Request, checklistId generated.ChecklistId) {
	h.gotID = checklistId.String()
	w.WriteHeader(http.StatusOK)
}

func newTestRouter(t *testing.T) (http.Handler, *stubHandler) {
	t.Helper()
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stub := &stubHandler{}
	return NewRouter(cfg, logger, stub), stub
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("ответ не в формате ошибки: %v", err)
	}
	return body.Error.Code
}

func TestRouter_ValidUUID(t *testing.T) {
	router, stub := newTestRouter(t)
	const id = "3f1c8d2a-5b7e-4c9a-8d1f-2e3a4b5c6d7e"

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checklists/"+id, nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("статус = %d, ожидали 200", rec.Code)
	}
	if stub.gotID != id {
		t.Errorf("checklist_id = %q, ожидали %q", stub.gotID, id)
	}
}

func TestRouter_InvalidUUID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checklists/not-a-uuid", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("статус = %d, ожидали 400", rec.Code)
	}
	if code := errorCode(t, rec); code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, ожидали VALIDATION_ERROR", code)
	}
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("статус = %d, ожидали 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_FOUND" {
		t.Errorf("code = %q, ожидали NOT_FOUND", code)
	}
}

func TestRouter_PublicLinkWriteForbidden(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/checklists/public/abc", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("статус = %d, ожидали 403", rec.Code)
	}
}

func TestRouter_Preflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/checklists/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Preflight завершается в CORS и не доходит до обработчика (501)
	if rec.Code < 200 || rec.Code >= 300 {
		t.Fatalf("статус = %d, ожидали 2xx", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, ожидали *", got)
	}
}

func TestRouter_Unimplemented(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("статус = %d, ожидали 501", rec.Code)
	}
}
