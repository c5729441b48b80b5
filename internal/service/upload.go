// UploadService — загрузка, просмотр, скачивание и удаление файлов пунктов.
// Содержимое пишется в blob store до регистрации метаданных; при ошибке
// регистрации содержимое удаляется.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/repository"
	"github.com/bigkaa/checklists/internal/storage/blobstore"
)

// Prometheus-метрики загрузок.
var (
	uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cl_uploads_total",
		Help: "Общее количество загрузок файлов по статусу.",
	}, []string{"status"}) // success, rejected, too_large, error

	uploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cl_upload_bytes_total",
		Help: "Общий объём принятых файлов в байтах.",
	})

	downloadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cl_downloads_total",
		Help: "Общее количество скачиваний файлов по статусу.",
	}, []string{"status"}) // success, not_found, error
)

// DefaultContentType — тип содержимого, если клиент его не указал.
const DefaultContentType = "application/octet-stream"

// UploadInput — загружаемый файл.
type UploadInput struct {
	Filename    string
	ContentType string
	Uploader    *string
	Content     io.Reader
}

// UploadService — операции над файлами пунктов.
type UploadService struct {
	uploads repository.UploadRepository
	items   repository.ItemRepository
	links   *PublicLinkResolver
	blobs   blobstore.Store
	// maxSize — максимальный размер файла в байтах
	maxSize int64
	// allowedExtensions — допустимые расширения (".pdf"); nil — любые
	allowedExtensions []string
	logger            *slog.Logger
}

// NewUploadService создаёт сервис загрузок.
func NewUploadService(
	uploads repository.UploadRepository,
	items repository.ItemRepository,
	links *PublicLinkResolver,
	blobs blobstore.Store,
	maxSize int64,
	allowedExtensions []string,
	logger *slog.Logger,
) *UploadService {
	return &UploadService{
		uploads:           uploads,
		items:             items,
		links:             links,
		blobs:             blobs,
		maxSize:           maxSize,
		allowedExtensions: allowedExtensions,
		logger:            logger.With(slog.String("component", "upload_service")),
	}
}

// MaxSize возвращает максимальный размер файла в байтах.
func (s *UploadService) MaxSize() int64 {
	return s.maxSize
}

// Upload загружает файл в пункт itemID.
func (s *UploadService) Upload(ctx context.Context, itemID string, in UploadInput) (*model.FileUpload, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения пункта")
	}
	return s.upload(ctx, item, in)
}

// UploadViaPublicLink загружает файл в пункт чек-листа, доступного по
// публичной ссылке. Пункт другого чек-листа — ErrNotFound.
func (s *UploadService) UploadViaPublicLink(ctx context.Context, link, itemID string, in UploadInput) (*model.FileUpload, error) {
	checklistID, err := s.links.Resolve(ctx, link)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения пункта")
	}
	if item.ChecklistID != checklistID {
		return nil, ErrNotFound
	}
	return s.upload(ctx, item, in)
}

func (s *UploadService) upload(ctx context.Context, item *model.Item, in UploadInput) (*model.FileUpload, error) {
	filename, err := s.validateFilename(in.Filename)
	if err != nil {
		uploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	// Предварительная проверка ёмкости экономит запись содержимого;
	// окончательная проверка выполняется атомарно при регистрации.
	if !item.AllowMultipleFiles {
		existing, err := s.uploads.ListByItem(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения файлов пункта: %w", err)
		}
		if len(existing) > 0 {
			uploadsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrCapacityExceeded
		}
	}

	key := blobstore.ObjectKey(item.ChecklistID, item.ID, filename)
	result, err := s.blobs.Put(ctx, key, newLimitedReader(in.Content, s.maxSize))
	if err != nil {
		if errors.Is(err, ErrFileTooLarge) {
			uploadsTotal.WithLabelValues("too_large").Inc()
			return nil, err
		}
		uploadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("ошибка сохранения содержимого: %w", err)
	}

	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = DefaultContentType
	}

	upload := &model.FileUpload{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		ChecklistID: item.ChecklistID,
		Filename:    filename,
		Uploader:    in.Uploader,
		ContentType: contentType,
		Size:        result.Size,
		Checksum:    result.Checksum,
		StorageKey:  key,
	}

	if err := s.uploads.Create(ctx, upload); err != nil {
		if delErr := s.blobs.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.logger.Warn("Не удалось удалить содержимое незарегистрированного файла",
				slog.String("storage_key", key),
				slog.String("error", delErr.Error()),
			)
		}
		switch {
		case errors.Is(err, repository.ErrCapacityExceeded):
			uploadsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrCapacityExceeded
		case errors.Is(err, repository.ErrNotFound):
			uploadsTotal.WithLabelValues("rejected").Inc()
			return nil, ErrNotFound
		default:
			uploadsTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("ошибка регистрации файла: %w", err)
		}
	}

	uploadsTotal.WithLabelValues("success").Inc()
	uploadBytesTotal.Add(float64(upload.Size))
	s.logger.Info("Файл загружен",
		slog.String("file_id", upload.ID),
		slog.String("item_id", upload.ItemID),
		slog.String("filename", upload.Filename),
		slog.Int64("size", upload.Size),
	)
	return upload, nil
}

// List возвращает файлы пункта в порядке загрузки.
func (s *UploadService) List(ctx context.Context, itemID string) ([]*model.FileUpload, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, mapRepoError(err, "ошибка получения пункта")
	}
	uploads, err := s.uploads.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения файлов пункта: %w", err)
	}
	return uploads, nil
}

// Get возвращает метаданные файла.
func (s *UploadService) Get(ctx context.Context, fileID string) (*model.FileUpload, error) {
	upload, err := s.uploads.GetByID(ctx, fileID)
	if err != nil {
		return nil, mapRepoError(err, "ошибка получения файла")
	}
	return upload, nil
}

// Open возвращает метаданные файла и поток содержимого.
// Вызывающий код обязан закрыть поток.
func (s *UploadService) Open(ctx context.Context, fileID string) (*model.FileUpload, io.ReadCloser, error) {
	upload, err := s.uploads.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			downloadsTotal.WithLabelValues("not_found").Inc()
		} else {
			downloadsTotal.WithLabelValues("error").Inc()
		}
		return nil, nil, mapRepoError(err, "ошибка получения файла")
	}

	rc, err := s.blobs.Open(ctx, upload.StorageKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			downloadsTotal.WithLabelValues("not_found").Inc()
			s.logger.Warn("Содержимое файла отсутствует в хранилище",
				slog.String("file_id", upload.ID),
				slog.String("storage_key", upload.StorageKey),
			)
			return nil, nil, ErrNotFound
		}
		downloadsTotal.WithLabelValues("error").Inc()
		return nil, nil, fmt.Errorf("ошибка чтения содержимого: %w", err)
	}

	downloadsTotal.WithLabelValues("success").Inc()
	return upload, rc, nil
}

// Delete удаляет метаданные и содержимое файла.
func (s *UploadService) Delete(ctx context.Context, fileID string) error {
	upload, err := s.uploads.Delete(ctx, fileID)
	if err != nil {
		return mapRepoError(err, "ошибка удаления файла")
	}

	if err := s.blobs.Delete(context.WithoutCancel(ctx), upload.StorageKey); err != nil {
		s.logger.Warn("Не удалось удалить содержимое файла",
			slog.String("file_id", upload.ID),
			slog.String("storage_key", upload.StorageKey),
			slog.String("error", err.Error()),
		)
	}

	s.logger.Info("Файл удалён",
		slog.String("file_id", upload.ID),
		slog.String("item_id", upload.ItemID),
	)
	return nil
}

// validateFilename возвращает базовое имя файла без пути клиента
// и проверяет расширение по списку допустимых.
func (s *UploadService) validateFilename(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name != "" {
		name = filepath.Base(name)
	}
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: file: не указано имя файла", ErrValidation)
	}

	if s.allowedExtensions == nil {
		return name, nil
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(s.allowedExtensions, ext) {
		return "", fmt.Errorf("%w: file: расширение %q не поддерживается, допустимые: %s",
			ErrValidation, ext, strings.Join(s.allowedExtensions, ", "))
	}
	return name, nil
}

// limitedReader возвращает ErrFileTooLarge, как только из источника
// прочитано больше limit байт.
type limitedReader struct {
	r         io.Reader
	limit     int64
	remaining int64
}

func newLimitedReader(r io.Reader, limit int64) *limitedReader {
	return &limitedReader{r: r, limit: limit, remaining: limit}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, l.tooLarge()
	}
	// Читаем не больше чем на байт сверх лимита, чтобы обнаружить превышение
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, l.tooLarge()
	}
	return n, err
}

func (l *limitedReader) tooLarge() error {
	return fmt.Errorf("%w: максимум %d байт", ErrFileTooLarge, l.limit)
}
