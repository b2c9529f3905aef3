package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	photoNotFound = "Photo not found"
	photoField    = "photo"
	// сколько multipart-данных держать в памяти, остальное уходит во временные файлы
	multipartMemory = 10 << 20
)

// UploadPhoto загрузка фото к записи (multipart, поле "photo")
func (h *ItemHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, itemNotFound)
		return
	}
	// сначала 404 на несуществующую запись, потом разбор тела
	if _, err := h.ItemService.Get(r.Context(), id); err != nil {
		h.writeServiceError(w, r, "UploadPhoto", err, itemNotFound)
		return
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			h.Logger.Warnw("UploadPhoto: payload too large", "item_id", id, "limit", h.Config.MaxContentLength)
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		h.Logger.Warnw("UploadPhoto: invalid multipart form", "item_id", id, "error", err)
		writeError(w, http.StatusBadRequest, "No photo provided")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(photoField)
	if err != nil {
		// часть с пустым filename multipart кладёт в обычные значения формы
		if _, isValue := r.MultipartForm.Value[photoField]; isValue {
			writeError(w, http.StatusBadRequest, "No file selected")
			return
		}
		writeError(w, http.StatusBadRequest, "No photo provided")
		return
	}
	defer file.Close()

	it, err := h.ItemService.UploadPhoto(r.Context(), id, header.Filename, file)
	if err != nil {
		h.writeServiceError(w, r, "UploadPhoto", err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

// DeletePhoto удаляет фото и возвращает родительскую запись
func (h *ItemHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, photoNotFound)
		return
	}
	it, err := h.ItemService.DeletePhoto(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, "DeletePhoto", err, photoNotFound)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(it))
}

// ServePhoto отдаёт файл фото из каталога загрузок
func (h *ItemHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	f, fi, err := h.ItemService.OpenPhoto(chi.URLParam(r, "filename"))
	if err != nil {
		h.writeServiceError(w, r, "ServePhoto", err, "File not found")
		return
	}
	defer f.Close()
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
}
