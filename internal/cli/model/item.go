package model

import "time"

// Item — запись списка в том виде, как её отдаёт сервер.
type Item struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	AddedBy     string     `json:"added_by"`
	IsCompleted bool       `json:"is_completed"`
	IsHidden    bool       `json:"is_hidden"`
	Photos      []Photo    `json:"photos"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type Photo struct {
	ID         uint      `json:"id"`
	PhotoPath  string    `json:"photo_path"` // путь относительно адреса сервера
	UploadedAt time.Time `json:"uploaded_at"`
}

// ItemPatch — частичное обновление; nil-поля не отправляются.
type ItemPatch struct {
	Description *string `json:"description,omitempty"`
	AddedBy     *string `json:"added_by,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type Stats struct {
	Total                int64   `json:"total"`
	Completed            int64   `json:"completed"`
	Pending              int64   `json:"pending"`
	CompletionPercentage float64 `json:"completion_percentage"`
}
