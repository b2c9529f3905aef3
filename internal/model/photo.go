package model

import "time"

// Photo — фотография, прикреплённая к Item. PhotoPath хранит публичный путь
// вида "uploads/<имя файла>".
type Photo struct {
	ID         uint      `gorm:"primaryKey"`
	ItemID     uint      `gorm:"not null;index"` // ссылка на bucket_list_items.id
	PhotoPath  string    `gorm:"size:500;not null"`
	UploadedAt time.Time `gorm:"autoCreateTime"`
}

func (Photo) TableName() string { return "item_photos" }
