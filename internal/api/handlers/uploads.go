// uploads.go — обработчики файловых endpoints.
// Upload (по ID пункта и по публичной ссылке), List, Get metadata, Download, Delete.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
	"github.com/bigkaa/checklists/internal/api/generated"
	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/service"
)

// multipartOverhead — запас на заголовки multipart сверх размера файла.
const multipartOverhead = 1 << 20

// UploadFile — POST /items/{item_id}/uploads/.
// Multipart form: file (обязательно), uploader (опционально).
func (h *APIHandler) UploadFile(w http.ResponseWriter, r *http.Request, itemId generated.ItemId) {
	h.handleUpload(w, r, func(in service.UploadInput) (*model.FileUpload, error) {
		return h.uploads.Upload(r.Context(), itemId.String(), in)
	})
}

// UploadFileViaPublicLink — POST /checklists/public/{public_link}/items/{item_id}/uploads/.
func (h *APIHandler) UploadFileViaPublicLink(w http.ResponseWriter, r *http.Request, publicLink generated.PublicLink, itemId generated.ItemId) {
	h.handleUpload(w, r, func(in service.UploadInput) (*model.FileUpload, error) {
		return h.uploads.UploadViaPublicLink(r.Context(), publicLink, itemId.String(), in)
	})
}

func (h *APIHandler) handleUpload(
	w http.ResponseWriter,
	r *http.Request,
	upload func(service.UploadInput) (*model.FileUpload, error),
) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxSize()+multipartOverhead)

	// Парсим multipart form (32 MB в памяти, остальное во временных файлах)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apierrors.FileTooLarge(w, fmt.Sprintf("Файл превышает допустимый размер %d байт", h.uploads.MaxSize()))
			return
		}
		apierrors.ValidationError(w, fmt.Sprintf("Ошибка парсинга multipart: %s", err.Error()))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile("file")
	if err != nil {
		apierrors.ValidationError(w, "Поле 'file' обязательно")
		return
	}
	defer file.Close()

	in := service.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}
	if uploader := r.FormValue("uploader"); uploader != "" {
		in.Uploader = &uploader
	}

	result, err := upload(in)
	if err != nil {
		h.writeServiceError(w, err, "Ошибка загрузки файла")
		return
	}

	writeJSON(w, http.StatusCreated, toAPIFile(result))
}

// ListFiles — GET /items/{item_id}/uploads/.
func (h *APIHandler) ListFiles(w http.ResponseWriter, r *http.Request, itemId generated.ItemId) {
	uploads, err := h.uploads.List(r.Context(), itemId.String())
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения списка файлов")
		return
	}

	resp := make([]generated.FileUpload, 0, len(uploads))
	for _, u := range uploads {
		resp = append(resp, toAPIFile(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetFile — GET /uploads/{file_id}.
func (h *APIHandler) GetFile(w http.ResponseWriter, r *http.Request, fileId generated.FileId) {
	u, err := h.uploads.Get(r.Context(), fileId.String())
	if err != nil {
		h.writeServiceError(w, err, "Ошибка получения файла")
		return
	}
	writeJSON(w, http.StatusOK, toAPIFile(u))
}

// DownloadFile — GET /uploads/{file_id}/download.
// Для локального хранилища поддерживает Range requests и If-None-Match.
func (h *APIHandler) DownloadFile(w http.ResponseWriter, r *http.Request, fileId generated.FileId) {
	meta, rc, err := h.uploads.Open(r.Context(), fileId.String())
	if err != nil {
		h.writeServiceError(w, err, "Ошибка скачивания файла")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": meta.Filename}))
	w.Header().Set("ETag", strconv.Quote(meta.Checksum))

	if rs, ok := rc.(io.ReadSeeker); ok {
		http.ServeContent(w, r, meta.Filename, meta.CreatedAt, rs)
		return
	}

	w.Header().Set("Content-Length", strconv.FormatInt(meta.Size, 10))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("Скачивание прервано",
			slog.String("file_id", meta.ID),
			slog.String("error", err.Error()),
		)
	}
}

// DeleteFile — DELETE /uploads/{file_id}.
func (h *APIHandler) DeleteFile(w http.ResponseWriter, r *http.Request, fileId generated.FileId) {
	if err := h.uploads.Delete(r.Context(), fileId.String()); err != nil {
		h.writeServiceError(w, err, "Ошибка удаления файла")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
