package service

import (
	"BucketList/internal/model"
	"BucketList/internal/repo"
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
)

// ItemService инкапсулирует бизнес-логику работы с записями списка.
type ItemService struct {
	items  repo.ItemRepository
	photos repo.PhotoRepository
	files  PhotoStore

	allowed map[string]struct{}
	logger  *zap.SugaredLogger
}

// NewItemService собирает сервис из репозиториев, файлового хранилища и
// списка разрешённых расширений фото (без точки, регистр не важен).
func NewItemService(
	items repo.ItemRepository,
	photos repo.PhotoRepository,
	files PhotoStore,
	allowedExtensions []string,
	logger *zap.SugaredLogger,
) *ItemService {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}
	return &ItemService{
		items:   items,
		photos:  photos,
		files:   files,
		allowed: allowed,
		logger:  logger,
	}
}

// CreateInput — данные новой записи.
type CreateInput struct {
	Description string
	AddedBy     string
}

// UpdateInput — частичное обновление; nil означает «не менять».
type UpdateInput struct {
	Description *string
	AddedBy     *string
	IsCompleted *bool
}

// Stats — агрегаты по списку.
type Stats struct {
	Total                int64
	Completed            int64
	Pending              int64
	CompletionPercentage float64
}

// List возвращает все записи, новые первыми.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, repoErr("list items", err)
	}
	return items, nil
}

// Get возвращает запись с фото.
func (s *ItemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, repoErr("get item", err)
	}
	return it, nil
}

// Create проверяет обязательные поля и создаёт запись.
func (s *ItemService) Create(ctx context.Context, in CreateInput) (*model.Item, error) {
	desc := strings.TrimSpace(in.Description)
	addedBy := strings.TrimSpace(in.AddedBy)
	if desc == "" || addedBy == "" {
		return nil, invalid("Description and added_by are required")
	}

	it, err := s.items.Create(ctx, desc, addedBy)
	if err != nil {
		return nil, repoErr("create item", err)
	}
	s.logger.Infow("item created", "item_id", it.ID, "added_by", it.AddedBy)
	return it, nil
}

// Update применяет переданные поля. completed_at синхронизирует репозиторий.
func (s *ItemService) Update(ctx context.Context, id uint, in UpdateInput) (*model.Item, error) {
	upd := repo.ItemUpdate{IsCompleted: in.IsCompleted}
	if in.Description != nil {
		v := strings.TrimSpace(*in.Description)
		if v == "" {
			return nil, invalid("Description must not be empty")
		}
		upd.Description = &v
	}
	if in.AddedBy != nil {
		v := strings.TrimSpace(*in.AddedBy)
		if v == "" {
			return nil, invalid("added_by must not be empty")
		}
		upd.AddedBy = &v
	}

	it, err := s.items.Update(ctx, id, upd)
	if err != nil {
		return nil, repoErr("update item", err)
	}
	return it, nil
}

// Delete удаляет файлы фото, затем запись вместе со строками фото.
func (s *ItemService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	photos, err := s.photos.ListByItem(ctx, id)
	if err != nil {
		return repoErr("list item photos", err)
	}
	for _, p := range photos {
		if err := s.removeFile(p.PhotoPath); err != nil {
			return err
		}
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return repoErr("delete item", err)
	}
	s.logger.Infow("item deleted", "item_id", id, "photos", len(photos))
	return nil
}

// Stats считает total/completed/pending и процент выполнения с точностью 0.1.
func (s *ItemService) Stats(ctx context.Context) (Stats, error) {
	total, err := s.items.Count(ctx)
	if err != nil {
		return Stats{}, repoErr("count items", err)
	}
	completed, err := s.items.CountCompleted(ctx)
	if err != nil {
		return Stats{}, repoErr("count completed items", err)
	}
	return computeStats(total, completed), nil
}

func computeStats(total, completed int64) Stats {
	st := Stats{Total: total, Completed: completed, Pending: total - completed}
	if total > 0 {
		pct := float64(completed) / float64(total) * 100
		st.CompletionPercentage = math.Round(pct*10) / 10
	}
	return st
}

// Ping проверяет доступность БД.
func (s *ItemService) Ping(ctx context.Context) error {
	return s.items.Ping(ctx)
}
