// Пакет server — HTTP-сервер Checklist Service с graceful shutdown.
// Без TLS — TLS termination выполняется на ingress.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/api/middleware"
	"github.com/bigkaa/checklists/internal/config"
)

// Server — HTTP-сервер Checklist Service.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	cfg        *config.Config
}

// New создаёт новый HTTP-сервер с настроенными routes и middleware.
// handler — реализация generated.ServerInterface (APIHandler).
func New(cfg *config.Config, logger *slog.Logger, handler generated.ServerInterface) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(cfg, logger, handler),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &Server{
		httpServer: srv,
		logger:     logger,
		cfg:        cfg,
	}
}

// NewRouter собирает chi-роутер: глобальные middleware и маршруты
// из OpenAPI контракта.
func NewRouter(cfg *config.Config, logger *slog.Logger, handler generated.ServerInterface) chi.Router {
	router := chi.NewRouter()

	// Глобальные middleware (применяются ко ВСЕМ маршрутам).
	// CORS первым: preflight завершается до остальных middleware.
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger, "/health/live", "/health/ready", "/metrics"))
	router.Use(middleware.PublicLinkGuard())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierrors.NotFound(w, fmt.Sprintf("Путь %s не найден", r.URL.Path))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierrors.WriteError(w, http.StatusMethodNotAllowed, apierrors.CodeValidationError,
			fmt.Sprintf("Метод %s не поддерживается для %s", r.Method, r.URL.Path))
	})

	// Все маршруты через HandlerWithOptions (oapi-codegen chi-server).
	// Ошибки разбора параметров отдаются в едином формате.
	generated.HandlerWithOptions(handler, generated.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: paramErrorHandler,
	})

	return router
}

// paramErrorHandler — 400 VALIDATION_ERROR для некорректных параметров
// (например, ID не в формате UUID).
func paramErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var formatErr *generated.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		apierrors.ValidationError(w, fmt.Sprintf("Некорректный параметр %s", formatErr.ParamName))
		return
	}
	apierrors.ValidationError(w, err.Error())
}

// Run запускает сервер и ожидает сигнала завершения (SIGINT, SIGTERM).
// При получении сигнала выполняется graceful shutdown.
func (s *Server) Run() error {
	// Канал для ошибок сервера
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("HTTP-сервер запущен",
			slog.String("addr", s.httpServer.Addr),
		)

		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		s.logger.Info("Получен сигнал завершения", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка HTTP-сервера: %w", err)
		}
	}

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Выполняется graceful shutdown...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка при graceful shutdown: %w", err)
	}

	s.logger.Info("HTTP-сервер остановлен")
	return nil
}
