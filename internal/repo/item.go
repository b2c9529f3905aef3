package repo

import (
	"BucketList/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// ItemUpdate — частичное обновление записи: nil означает «поле не передано».
type ItemUpdate struct {
	Description *string
	AddedBy     *string
	IsCompleted *bool
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
// Отсутствие записи сигнализируется ошибкой gorm.ErrRecordNotFound.
type ItemRepository interface {
	// ListAll возвращает все записи (включая скрытые), новые первыми, с фото.
	ListAll(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id uint) (*model.Item, error)
	Create(ctx context.Context, description, addedBy string) (*model.Item, error)
	// Update применяет только переданные поля и синхронизирует completed_at.
	Update(ctx context.Context, id uint, upd ItemUpdate) (*model.Item, error)
	// Delete удаляет запись и строки её фото в одной транзакции.
	// Файлы фото должен удалить вызывающий код заранее.
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

type itemRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func withPhotos(db *gorm.DB) *gorm.DB {
	return db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("uploaded_at ASC, id ASC")
	})
}

func (r *itemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := withPhotos(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	if err := withPhotos(r.db.WithContext(ctx)).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, description, addedBy string) (*model.Item, error) {
	it := model.Item{
		Description: description,
		AddedBy:     addedBy,
		CreatedAt:   r.now(),
		Photos:      []model.Photo{},
	}
	// Select фиксирует false-значения, которые gorm иначе пропустил бы как zero
	err := r.db.WithContext(ctx).
		Select("Description", "AddedBy", "IsCompleted", "IsHidden", "CreatedAt", "CompletedAt").
		Create(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Update(ctx context.Context, id uint, upd ItemUpdate) (*model.Item, error) {
	var out model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur model.Item
		if err := tx.First(&cur, id).Error; err != nil {
			return err
		}

		updates := map[string]any{}
		if upd.Description != nil {
			updates["description"] = *upd.Description
		}
		if upd.AddedBy != nil {
			updates["added_by"] = *upd.AddedBy
		}
		if upd.IsCompleted != nil {
			updates["is_completed"] = *upd.IsCompleted
			switch {
			case !*upd.IsCompleted:
				updates["completed_at"] = nil
			case !cur.IsCompleted || cur.CompletedAt == nil:
				// отметка ставится только при переходе false -> true
				updates["completed_at"] = r.now()
			}
		}

		if len(updates) > 0 {
			if err := tx.Model(&model.Item{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}
		return withPhotos(tx).First(&out, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *itemRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Select("id").First(&it, id).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Item{}, id).Error
	})
}

func (r *itemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Count(&n).Error
	return n, err
}

func (r *itemRepo) CountCompleted(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).Where("is_completed = ?", true).Count(&n).Error
	return n, err
}

func (r *itemRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
