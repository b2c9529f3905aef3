package model

import "time"

// Item — запись списка желаний (таблица bucket_list_items).
type Item struct {
	ID          uint       `gorm:"primaryKey"`
	Description string     `gorm:"size:500;not null"`
	AddedBy     string     `gorm:"size:100;not null"`
	IsCompleted bool       `gorm:"not null;default:false"`
	IsHidden    bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index"`
	CompletedAt *time.Time

	// Фото принадлежат записи и удаляются вместе с ней
	Photos []Photo `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Item) TableName() string { return "bucket_list_items" }
