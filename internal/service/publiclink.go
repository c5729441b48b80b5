// PublicLinkResolver — разрешение публичной ссылки в ID чек-листа
// с LRU-кэшем и TTL поверх hashicorp/golang-lru/v2/expirable.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/checklists/internal/repository"
)

// Prometheus-метрики кэша публичных ссылок.
var (
	linkCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cl_public_link_cache_hits_total",
		Help: "Общее количество попаданий в кэш публичных ссылок.",
	})
	linkCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cl_public_link_cache_misses_total",
		Help: "Общее количество промахов кэша публичных ссылок.",
	})
)

// PublicLinkLookup — источник соответствия публичная ссылка → ID чек-листа.
type PublicLinkLookup interface {
	ResolvePublicLink(ctx context.Context, link string) (string, error)
}

// PublicLinkResolver кэширует только успешные разрешения.
// Кэш принадлежит экземпляру сервиса.
type PublicLinkResolver struct {
	lookup PublicLinkLookup
	cache  *expirable.LRU[string, string]
}

// NewPublicLinkResolver создаёт резолвер.
// maxSize — максимальное количество записей, ttl — время жизни записи.
func NewPublicLinkResolver(lookup PublicLinkLookup, maxSize int, ttl time.Duration) *PublicLinkResolver {
	return &PublicLinkResolver{
		lookup: lookup,
		cache:  expirable.NewLRU[string, string](maxSize, nil, ttl),
	}
}

// Resolve возвращает ID чек-листа по публичной ссылке.
// Неизвестная ссылка — ErrNotFound.
func (r *PublicLinkResolver) Resolve(ctx context.Context, link string) (string, error) {
	if link == "" {
		return "", ErrNotFound
	}
	if id, ok := r.cache.Get(link); ok {
		linkCacheHitsTotal.Inc()
		return id, nil
	}
	linkCacheMissesTotal.Inc()

	id, err := r.lookup.ResolvePublicLink(ctx, link)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("ошибка разрешения публичной ссылки: %w", err)
	}

	r.cache.Add(link, id)
	return id, nil
}

// Invalidate удаляет ссылку из кэша (удаление чек-листа).
func (r *PublicLinkResolver) Invalidate(link string) {
	r.cache.Remove(link)
}
