package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS добавляет заголовки Access-Control-* для разрешённых origins
// и завершает preflight-запросы. "*" среди origins разрешает любой,
// пустой список отключает CORS.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "If-Match"},
		ExposedHeaders: []string{"ETag", "Content-Disposition"},
		MaxAge:         600,
	})
}
