package repo

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// schemaMigration — запись о применённой миграции.
type schemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:200;not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string { return "schema_migrations" }

type migration struct {
	version int
	name    string
	up      func(tx *gorm.DB) error
}

// Снимки схемы на момент каждой миграции. Текущие модели живут в internal/model
// и в миграциях не используются, чтобы история не менялась вместе с ними.

type itemV1 struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"size:500;not null"`
	AddedBy     string `gorm:"size:100;not null"`
	IsCompleted bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	CompletedAt *time.Time
}

func (itemV1) TableName() string { return "bucket_list_items" }

type photoV1 struct {
	ID         uint    `gorm:"primaryKey"`
	ItemID     uint    `gorm:"not null;index"`
	Item       *itemV1 `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	PhotoPath  string  `gorm:"size:500;not null"`
	UploadedAt time.Time
}

func (photoV1) TableName() string { return "item_photos" }

type itemV2 struct {
	IsHidden bool `gorm:"not null;default:false"`
}

func (itemV2) TableName() string { return "bucket_list_items" }

type itemV3 struct {
	CreatedAt time.Time `gorm:"index:idx_bucket_list_items_created_at"`
}

func (itemV3) TableName() string { return "bucket_list_items" }

// migrations — упорядоченный список шагов. Каждый шаг сам проверяет
// состояние схемы, поэтому повторный запуск безопасен.
var migrations = []migration{
	{
		version: 1,
		name:    "create_items_and_photos",
		up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if !m.HasTable(&itemV1{}) {
				if err := m.CreateTable(&itemV1{}); err != nil {
					return err
				}
			}
			if !m.HasTable(&photoV1{}) {
				if err := m.CreateTable(&photoV1{}); err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		version: 2,
		name:    "add_items_is_hidden",
		up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasColumn(&itemV2{}, "is_hidden") {
				return nil
			}
			return m.AddColumn(&itemV2{}, "IsHidden")
		},
	},
	{
		version: 3,
		name:    "index_items_created_at",
		up: func(tx *gorm.DB) error {
			m := tx.Migrator()
			if m.HasIndex(&itemV3{}, "idx_bucket_list_items_created_at") {
				return nil
			}
			return m.CreateIndex(&itemV3{}, "idx_bucket_list_items_created_at")
		},
	},
}

// Migrate применяет ещё не применённые миграции по возрастанию версии.
// Каждая миграция выполняется в своей транзакции вместе с записью в schema_migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := AppliedMigrations(db)
	if err != nil {
		return err
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	steps := make([]migration, len(migrations))
	copy(steps, migrations)
	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })

	for _, step := range steps {
		if done[step.version] {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{Version: step.version, Name: step.name}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %03d_%s: %w", step.version, step.name, err)
		}
	}
	return nil
}

// AppliedMigrations возвращает версии применённых миграций по возрастанию.
func AppliedMigrations(db *gorm.DB) ([]int, error) {
	var versions []int
	if err := db.Model(&schemaMigration{}).Order("version ASC").Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	return versions, nil
}
