package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// SpecHandler отдаёт встроенный OpenAPI контракт.
type SpecHandler struct {
	body []byte
}

// NewSpecHandler сериализует контракт один раз при старте.
func NewSpecHandler(swagger *openapi3.T) (*SpecHandler, error) {
	body, err := json.Marshal(swagger)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации OpenAPI: %w", err)
	}
	return &SpecHandler{body: body}, nil
}

// GetOpenapiSpec — GET /openapi.json.
func (h *SpecHandler) GetOpenapiSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.body)
}
