// Точка входа Checklist Service — сервис чек-листов с публичными ссылками,
// токенами редактирования и загрузкой файлов в пункты.
// Загружает конфигурацию, проверяет OpenAPI контракт, применяет миграции,
// подключается к PostgreSQL, открывает хранилище файлов (fs или s3),
// создаёт сервисный слой и API handlers, запускает topologymetrics
// и HTTP-сервер с graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/api/handlers"
	"github.com/bigkaa/checklists/internal/config"
	"github.com/bigkaa/checklists/internal/database"
	"github.com/bigkaa/checklists/internal/repository"
	"github.com/bigkaa/checklists/internal/server"
	"github.com/bigkaa/checklists/internal/service"
	"github.com/bigkaa/checklists/internal/storage/blobstore"
	"github.com/bigkaa/checklists/internal/storage/filestore"
	"github.com/bigkaa/checklists/internal/storage/s3store"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("Checklist Service запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
		slog.String("storage_backend", cfg.StorageBackend),
	)

	ctx := context.Background()

	// 3. Встроенный OpenAPI контракт
	swagger, err := generated.GetSwagger()
	if err != nil {
		logger.Error("Ошибка загрузки OpenAPI контракта", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := swagger.Validate(ctx); err != nil {
		logger.Error("OpenAPI контракт некорректен", slog.String("error", err.Error()))
		os.Exit(1)
	}
	specHandler, err := handlers.NewSpecHandler(swagger)
	if err != nil {
		logger.Error("Ошибка подготовки OpenAPI контракта", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Применение миграций БД
	logger.Info("Применение миграций БД...")
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка миграций БД", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 5. Подключение к PostgreSQL (pgxpool)
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 5.1 Адаптер pgxpool → *sql.DB для topologymetrics (connection pool mode)
	pgDB := stdlib.OpenDBFromPool(pool)
	defer pgDB.Close()

	// 6. Хранилище содержимого файлов
	blobs, err := openBlobStore(ctx, cfg)
	if err != nil {
		logger.Error("Ошибка инициализации хранилища файлов", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 7. Repositories
	checklistRepo := repository.NewChecklistRepository(pool)
	itemRepo := repository.NewItemRepository(pool)
	uploadRepo := repository.NewUploadRepository(pool)

	// 8. Services
	tokens := service.NewTokenAuthorizer()
	links := service.NewPublicLinkResolver(checklistRepo, cfg.PublicLinkCacheSize, cfg.PublicLinkCacheTTL)
	checklistSvc := service.NewChecklistService(checklistRepo, blobs, tokens, links, logger)
	uploadSvc := service.NewUploadService(
		uploadRepo, itemRepo, links, blobs,
		cfg.UploadMaxSize, cfg.UploadAllowedExtensions,
		logger,
	)

	// 9. topologymetrics — мониторинг зависимостей (PostgreSQL + S3)
	if cfg.DephealthEnabled {
		dephealthCfg := service.DephealthConfig{
			ServiceID:     "checklist-service",
			Group:         cfg.DephealthGroup,
			DB:            pgDB,
			PgConnURL:     cfg.DatabaseURL(),
			CheckInterval: cfg.DephealthCheckInterval,
		}
		if cfg.StorageBackend == config.StorageBackendS3 {
			dephealthCfg.ObjectStorageEndpoint = cfg.S3Endpoint
			dephealthCfg.ObjectStorageHealthPath = cfg.S3HealthPath
		}

		dephealthSvc, dephealthErr := service.NewDephealthService(dephealthCfg, logger)
		if dephealthErr != nil {
			logger.Warn("topologymetrics недоступен, запуск без мониторинга зависимостей",
				slog.String("error", dephealthErr.Error()),
			)
		} else if startErr := dephealthSvc.Start(ctx); startErr != nil {
			logger.Warn("Ошибка запуска topologymetrics",
				slog.String("error", startErr.Error()),
			)
		} else {
			defer dephealthSvc.Stop()
			logger.Info("topologymetrics запущен",
				slog.String("group", cfg.DephealthGroup),
				slog.String("check_interval", cfg.DephealthCheckInterval.String()),
			)
		}
	}

	// 10. Health + API handlers
	healthHandler := handlers.NewHealthHandler(database.NewReadinessChecker(pool), blobs)
	apiHandler := handlers.NewAPIHandler(healthHandler, specHandler, checklistSvc, uploadSvc, logger)

	// 11. HTTP-сервер
	srv := server.New(cfg, logger, apiHandler)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка HTTP-сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Checklist Service остановлен")
}

// openBlobStore открывает хранилище содержимого по CL_STORAGE_BACKEND.
func openBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	if cfg.StorageBackend == config.StorageBackendS3 {
		return s3store.New(ctx, s3store.Options{
			Endpoint:     cfg.S3Endpoint,
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	}
	return filestore.New(cfg.DataDir)
}
