package handlers

import (
	"BucketList/internal/model"
	"BucketList/internal/service"
	"strconv"
	"time"
)

// isoLayout — ISO-8601 с микросекундами в UTC.
const isoLayout = "2006-01-02T15:04:05.000000Z07:00"

func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(isoLayout)
	return &s
}

func isoTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return isoTime(*t)
}

// CreateItemRequest — тело POST /api/items.
type CreateItemRequest struct {
	Description string `json:"description"`
	AddedBy     string `json:"added_by"`
}

// UpdateItemRequest — тело PUT /api/items/{id}. Отсутствующие поля не меняются.
type UpdateItemRequest struct {
	Description *string `json:"description,omitempty"`
	AddedBy     *string `json:"added_by,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type PhotoDTO struct {
	ID         uint    `json:"id"`
	PhotoPath  string  `json:"photo_path"`
	UploadedAt *string `json:"uploaded_at"`
}

type ItemDTO struct {
	ID          uint       `json:"id"`
	Description string     `json:"description"`
	AddedBy     string     `json:"added_by"`
	IsCompleted bool       `json:"is_completed"`
	IsHidden    bool       `json:"is_hidden"`
	Photos      []PhotoDTO `json:"photos"`
	CreatedAt   *string    `json:"created_at"`
	CompletedAt *string    `json:"completed_at"`
}

// Percent всегда кодируется с одним знаком после запятой: 40 -> 40.0.
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 1, 64), nil
}

type StatsDTO struct {
	Total                int64   `json:"total"`
	Completed            int64   `json:"completed"`
	Pending              int64   `json:"pending"`
	CompletionPercentage Percent `json:"completion_percentage"`
}

type MessageDTO struct {
	Message string `json:"message"`
}

type ErrorDTO struct {
	Error string `json:"error"`
}

func toItemDTO(it *model.Item) ItemDTO {
	photos := make([]PhotoDTO, 0, len(it.Photos))
	for _, p := range it.Photos {
		photos = append(photos, PhotoDTO{
			ID:         p.ID,
			PhotoPath:  p.PhotoPath,
			UploadedAt: isoTime(p.UploadedAt),
		})
	}
	return ItemDTO{
		ID:          it.ID,
		Description: it.Description,
		AddedBy:     it.AddedBy,
		IsCompleted: it.IsCompleted,
		IsHidden:    it.IsHidden,
		Photos:      photos,
		CreatedAt:   isoTime(it.CreatedAt),
		CompletedAt: isoTimePtr(it.CompletedAt),
	}
}

func toStatsDTO(st service.Stats) StatsDTO {
	return StatsDTO{
		Total:                st.Total,
		Completed:            st.Completed,
		Pending:              st.Pending,
		CompletionPercentage: Percent(st.CompletionPercentage),
	}
}
