package handlers

import (
	"BucketList/internal/config"
	"BucketList/internal/service"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const itemNotFound = "Item not found"

// ItemHandler обрабатывает CRUD записей, фото и статистику.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// List возвращает все записи, новые первыми
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "List", err, itemNotFound)
		return
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		out = append(out, toItemDTO(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create создаёт запись
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if !h.decodeJSON(w, r, "Create", &req) {
		return
	}

	it, err := h.ItemService.Create(r.Context(), service.CreateInput{
		Description: req.Description,
		AddedBy:     req.AddedBy,
	})
	if err != nil {
		h.writeServiceError(w, r, "Create", err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDTO(it))
}

// Update частично обновляет запись
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, itemNotFound)
		return
	}
	var req UpdateItemRequest
	if !h.decodeJSON(w, r, "Update", &req) {
		return
	}

	it, err := h.ItemService.Update(r.Context(), id, service.UpdateInput{
		Description: req.Description,
		AddedBy:     req.AddedBy,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.writeServiceError(w, r, "Update", err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

// Delete удаляет запись вместе с фото
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, itemNotFound)
		return
	}
	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "Delete", err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, MessageDTO{Message: "Item deleted successfully"})
}

// Stats отдаёт агрегаты по списку
func (h *ItemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.ItemService.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "Stats", err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toStatsDTO(st))
}

// Health проверяет, что сервер жив и БД отвечает
func (h *ItemHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.ItemService.Ping(ctx); err != nil {
		h.Logger.Errorw("Health: database ping failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
