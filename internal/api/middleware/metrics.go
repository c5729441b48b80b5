// metrics.go — Prometheus HTTP метрики Checklist Service.
// Регистрирует метрики: cl_http_requests_total, cl_http_request_duration_seconds.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP метрики
var (
	// httpRequestsTotal — общее количество HTTP-запросов.
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cl_http_requests_total",
			Help: "Общее количество HTTP-запросов к Checklist Service",
		},
		[]string{"method", "path", "status"},
	)

	// httpRequestDuration — гистограмма длительности HTTP-запросов.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cl_http_request_duration_seconds",
			Help:    "Длительность HTTP-запросов к Checklist Service в секундах",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware возвращает HTTP middleware для сбора Prometheus метрик.
// Записывает количество запросов и длительность для каждого endpoint.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Нормализуем путь для лейблов метрик
			// (идентификаторы, ссылки и токены заменяются шаблонами)
			normalizedPath := normalizePath(r.URL.Path)

			wrapped := newMetricsResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(wrapped.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, normalizedPath, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, normalizedPath).Observe(duration)
		})
	}
}

// metricsResponseWriter — обёртка для перехвата статус-кода.
type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newMetricsResponseWriter(w http.ResponseWriter) *metricsResponseWriter {
	return &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap позволяет http.ResponseController получить доступ к оригинальному ResponseWriter.
func (rw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath заменяет переменные сегменты пути шаблонами для
// предотвращения взрывного роста кардинальности метрик.
// /checklists/a1b2c3d4-.../clone → /checklists/{checklist_id}/clone
// Неизвестные пути сворачиваются в "other".
func normalizePath(path string) string {
	switch path {
	case "/health/live", "/health/ready", "/metrics", "/openapi.json", "/checklists/":
		return path
	}

	// Пустые сегменты сохраняются: от них зависит завершающий "/"
	seg := strings.Split(strings.TrimPrefix(path, "/"), "/")

	switch {
	case len(seg) == 3 && seg[0] == "checklists" && seg[1] == "public":
		return "/checklists/public/{public_link}"
	case len(seg) == 7 && seg[0] == "checklists" && seg[1] == "public" &&
		seg[3] == "items" && seg[5] == "uploads" && seg[6] == "":
		return "/checklists/public/{public_link}/items/{item_id}/uploads/"
	case len(seg) == 3 && seg[0] == "checklists" && seg[1] == "edit":
		return "/checklists/edit/{edit_token}"
	case len(seg) == 2 && seg[0] == "checklists" && seg[1] != "":
		return "/checklists/{checklist_id}"
	case len(seg) == 3 && seg[0] == "checklists" && seg[2] == "clone":
		return "/checklists/{checklist_id}/clone"
	case len(seg) == 4 && seg[0] == "checklists" && seg[2] == "categories" && seg[3] == "":
		return "/checklists/{checklist_id}/categories/"
	case len(seg) == 2 && seg[0] == "categories" && seg[1] != "":
		return "/categories/{category_id}"
	case len(seg) == 4 && seg[0] == "categories" && seg[2] == "items" && seg[3] == "":
		return "/categories/{category_id}/items/"
	case len(seg) == 2 && seg[0] == "items" && seg[1] != "":
		return "/items/{item_id}"
	case len(seg) == 4 && seg[0] == "items" && seg[2] == "uploads" && seg[3] == "":
		return "/items/{item_id}/uploads/"
	case len(seg) == 2 && seg[0] == "uploads" && seg[1] != "":
		return "/uploads/{file_id}"
	case len(seg) == 3 && seg[0] == "uploads" && seg[2] == "download":
		return "/uploads/{file_id}/download"
	}

	return "other"
}
