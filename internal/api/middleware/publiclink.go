// publiclink.go — защита чек-листов, открытых по публичной ссылке.
// По публичной ссылке разрешены только чтение и загрузка файлов в пункты.
package middleware

import (
	"net/http"
	"strings"

	apierrors "github.com/bigkaa/checklists/internal/api/errors"
)

const publicPrefix = "/checklists/public/"

// PublicLinkGuard отвечает 403 на любой запрос под /checklists/public/,
// кроме GET, HEAD, OPTIONS и POST .../items/{item_id}/uploads/.
func PublicLinkGuard() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, publicPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			case http.MethodPost:
				if isPublicUpload(r.URL.Path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			apierrors.Forbidden(w, "Изменение чек-листа по публичной ссылке запрещено")
		})
	}
}

// isPublicUpload проверяет путь /checklists/public/{link}/items/{id}/uploads/.
func isPublicUpload(path string) bool {
	seg := strings.Split(strings.TrimPrefix(path, publicPrefix), "/")
	return len(seg) == 5 && seg[0] != "" && seg[1] == "items" && seg[2] != "" &&
		seg[3] == "uploads" && seg[4] == ""
}
