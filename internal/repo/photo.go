package repo

import (
	"BucketList/internal/model"
	"context"

	"gorm.io/gorm"
)

// PhotoRepository минимальный контракт доступа к фото записей.
type PhotoRepository interface {
	// Create добавляет строку фото; gorm.ErrRecordNotFound, если записи itemID нет.
	Create(ctx context.Context, itemID uint, path string) (*model.Photo, error)
	GetByID(ctx context.Context, id uint) (*model.Photo, error)
	ListByItem(ctx context.Context, itemID uint) ([]model.Photo, error)
	// Delete удаляет строку фото и возвращает id родительской записи.
	Delete(ctx context.Context, id uint) (itemID uint, err error)
}

type photoRepo struct {
	db *gorm.DB
}

// NewPhotoRepository создаёт реализацию репозитория для Photo.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, itemID uint, path string) (*model.Photo, error) {
	p := model.Photo{ItemID: itemID, PhotoPath: path}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var it model.Item
		if err := tx.Select("id").First(&it, itemID).Error; err != nil {
			return err
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *photoRepo) GetByID(ctx context.Context, id uint) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *photoRepo) ListByItem(ctx context.Context, itemID uint) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("uploaded_at ASC, id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepo) Delete(ctx context.Context, id uint) (uint, error) {
	var itemID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Photo
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		itemID = p.ItemID
		return tx.Delete(&model.Photo{}, id).Error
	})
	return itemID, err
}
