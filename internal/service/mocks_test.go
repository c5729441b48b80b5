package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/bigkaa/checklists/internal/domain/model"
	"github.com/bigkaa/checklists/internal/repository"
	"github.com/bigkaa/checklists/internal/storage/blobstore"
)

// memDB — in-memory хранилище, общее для фейковых репозиториев.
// Повторяет семантику PostgreSQL-репозиториев: каскадное удаление,
// уникальность ссылок и токенов, атомарная проверка ёмкости.
type memDB struct {
	mu         sync.Mutex
	seq        int64
	checklists map[string]*model.Checklist
	uploads    map[string]*model.FileUpload

	// createUploadErr — ошибка, возвращаемая uploads.Create (инъекция сбоев)
	createUploadErr error
}

func newMemDB() *memDB {
	return &memDB{
		checklists: make(map[string]*model.Checklist),
		uploads:    make(map[string]*model.FileUpload),
	}
}

func (db *memDB) now() time.Time {
	db.seq++
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(db.seq) * time.Second)
}

func (db *memDB) findItem(id string) *model.Item {
	for _, c := range db.checklists {
		if it := c.FindItem(id); it != nil {
			return it
		}
	}
	return nil
}

func copyChecklist(c *model.Checklist) *model.Checklist {
	out := *c
	out.Categories = make([]*model.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cc := *cat
		cc.Items = make([]*model.Item, 0, len(cat.Items))
		for _, it := range cat.Items {
			ic := *it
			cc.Items = append(cc.Items, &ic)
		}
		out.Categories = append(out.Categories, &cc)
	}
	return &out
}

// assignTree проставляет ссылки на родителей и позиции, как upsertTree.
func assignTree(c *model.Checklist) {
	for i, cat := range c.Categories {
		cat.ChecklistID = c.ID
		cat.Position = i
		for j, it := range cat.Items {
			it.CategoryID = cat.ID
			it.ChecklistID = c.ID
			it.Position = j
		}
	}
}

// --- ChecklistRepository ---

type memChecklists struct{ db *memDB }

func (r *memChecklists) Create(_ context.Context, c *model.Checklist) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.checklists {
		if existing.ID == c.ID || existing.PublicLink == c.PublicLink || existing.EditToken == c.EditToken {
			return repository.ErrConflict
		}
	}

	assignTree(c)
	c.Version = 1
	c.CreatedAt = r.db.now()
	c.UpdatedAt = c.CreatedAt
	r.db.checklists[c.ID] = copyChecklist(c)
	return nil
}

func (r *memChecklists) GetByID(_ context.Context, id string) (*model.Checklist, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.checklists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyChecklist(c), nil
}

func (r *memChecklists) find(match func(*model.Checklist) bool) (*model.Checklist, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.checklists {
		if match(c) {
			return copyChecklist(c), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memChecklists) GetByEditToken(_ context.Context, token string) (*model.Checklist, error) {
	return r.find(func(c *model.Checklist) bool { return c.EditToken == token })
}

func (r *memChecklists) ResolvePublicLink(_ context.Context, link string) (string, error) {
	c, err := r.find(func(c *model.Checklist) bool { return c.PublicLink == link })
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *memChecklists) ResolveCategory(_ context.Context, categoryID string) (string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.checklists {
		if c.FindCategory(categoryID) != nil {
			return c.ID, nil
		}
	}
	return "", repository.ErrNotFound
}

func (r *memChecklists) ResolveItem(_ context.Context, itemID string) (string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if it := r.db.findItem(itemID); it != nil {
		return it.ChecklistID, nil
	}
	return "", repository.ErrNotFound
}

func (r *memChecklists) List(_ context.Context, limit, offset int) ([]*model.ChecklistSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := make([]*model.ChecklistSummary, 0, len(r.db.checklists))
	for _, c := range r.db.checklists {
		all = append(all, &model.ChecklistSummary{
			ID:            c.ID,
			Title:         c.Title,
			Description:   c.Description,
			CategoryCount: len(c.Categories),
			CreatedAt:     c.CreatedAt,
		})
	}
	slices.SortFunc(all, func(a, b *model.ChecklistSummary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		return 1
	})

	if offset >= len(all) {
		return []*model.ChecklistSummary{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *memChecklists) Count(_ context.Context) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.checklists), nil
}

func (r *memChecklists) Update(_ context.Context, c *model.Checklist, expectedVersion *int) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.checklists[c.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if expectedVersion != nil && *expectedVersion != current.Version {
		return nil, fmt.Errorf("%w: ожидалась %d, текущая %d", repository.ErrVersionMismatch, *expectedVersion, current.Version)
	}
	return r.write(current, c), nil
}

func (r *memChecklists) Modify(
	_ context.Context,
	id string,
	fn func(c *model.Checklist) error,
) (*model.Checklist, []string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.checklists[id]
	if !ok {
		return nil, nil, repository.ErrNotFound
	}
	c := copyChecklist(current)
	if err := fn(c); err != nil {
		return nil, nil, err
	}
	removed := r.write(current, c)
	return c, removed, nil
}

// write сохраняет новое дерево поверх current, как writeTree. Вызывается под mu.
func (r *memChecklists) write(current, c *model.Checklist) []string {
	assignTree(c)
	c.PublicLink = current.PublicLink
	c.EditToken = current.EditToken
	c.Version = current.Version + 1
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = r.db.now()

	keep := c.ItemIDs()
	var removed []string
	for id, u := range r.db.uploads {
		if u.ChecklistID == c.ID && !slices.Contains(keep, u.ItemID) {
			removed = append(removed, u.StorageKey)
			delete(r.db.uploads, id)
		}
	}

	r.db.checklists[c.ID] = copyChecklist(c)
	return removed
}

func (r *memChecklists) Delete(_ context.Context, id string) ([]string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.checklists[id]; !ok {
		return nil, repository.ErrNotFound
	}
	var keys []string
	for uid, u := range r.db.uploads {
		if u.ChecklistID == id {
			keys = append(keys, u.StorageKey)
			delete(r.db.uploads, uid)
		}
	}
	delete(r.db.checklists, id)
	return keys, nil
}

// --- ItemRepository ---

type memItems struct{ db *memDB }

func (r *memItems) GetByID(_ context.Context, id string) (*model.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	it := r.db.findItem(id)
	if it == nil {
		return nil, repository.ErrNotFound
	}
	copied := *it
	return &copied, nil
}

// --- UploadRepository ---

type memUploads struct{ db *memDB }

func (r *memUploads) Create(_ context.Context, u *model.FileUpload) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.db.createUploadErr != nil {
		return r.db.createUploadErr
	}

	it := r.db.findItem(u.ItemID)
	if it == nil {
		return repository.ErrNotFound
	}
	if !it.AllowMultipleFiles {
		for _, existing := range r.db.uploads {
			if existing.ItemID == u.ItemID {
				return repository.ErrCapacityExceeded
			}
		}
	}

	u.ChecklistID = it.ChecklistID
	u.CreatedAt = r.db.now()
	copied := *u
	r.db.uploads[u.ID] = &copied
	return nil
}

func (r *memUploads) GetByID(_ context.Context, id string) (*model.FileUpload, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.uploads[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUploads) ListByItem(_ context.Context, itemID string) ([]*model.FileUpload, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	result := []*model.FileUpload{}
	for _, u := range r.db.uploads {
		if u.ItemID == itemID {
			copied := *u
			result = append(result, &copied)
		}
	}
	slices.SortFunc(result, func(a, b *model.FileUpload) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return result, nil
}

func (r *memUploads) Delete(_ context.Context, id string) (*model.FileUpload, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.uploads[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.db.uploads, id)
	return u, nil
}

// --- blobstore.Store ---

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: make(map[string][]byte)}
}

func (b *memBlobs) Put(_ context.Context, key string, r io.Reader) (*blobstore.PutResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка записи данных: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data

	sum := sha256.Sum256(data)
	return &blobstore.PutResult{Size: int64(len(data)), Checksum: hex.EncodeToString(sum[:])}, nil
}

func (b *memBlobs) Open(_ context.Context, key string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[key]
	if !ok {
		return nil, blobstore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *memBlobs) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *memBlobs) CheckReady() (string, string) { return "ok", "in-memory" }

func (b *memBlobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

// --- Сборка сервисов ---

// testEnv — сервисы поверх in-memory хранилищ.
type testEnv struct {
	db         *memDB
	blobs      *memBlobs
	checklists *ChecklistService
	uploads    *UploadService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newMemDB()
	blobs := newMemBlobs()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	checklistRepo := &memChecklists{db: db}
	links := NewPublicLinkResolver(checklistRepo, 100, time.Minute)

	return &testEnv{
		db:         db,
		blobs:      blobs,
		checklists: NewChecklistService(checklistRepo, blobs, NewTokenAuthorizer(), links, logger),
		uploads: NewUploadService(&memUploads{db: db}, &memItems{db: db}, links, blobs,
			1024, []string{".txt", ".pdf", ".xlsx"}, logger),
	}
}

func strPtr(s string) *string { return &s }
