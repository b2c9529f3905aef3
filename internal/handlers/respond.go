package handlers

import (
	"BucketList/internal/service"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorDTO{Error: msg})
}

// idParam читает числовой id из пути. Нечисловой id — это 404, как и несуществующий.
func idParam(r *http.Request, name string) (uint, bool) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || v == 0 || v > math.MaxUint32 {
		return 0, false
	}
	return uint(v), true
}

// writeServiceError маппит ошибки сервиса на HTTP-статусы.
func (h *ItemHandler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error, notFoundMsg string) {
	var ve *service.ValidationError
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &ve):
		h.Logger.Warnw(op+": validation failed", "error", ve.Msg)
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &tooBig):
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
	default:
		h.Logger.Errorw(op+": service error", "uri", r.RequestURI, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON читает тело запроса в v; при ошибке сам пишет ответ и возвращает false.
func (h *ItemHandler) decodeJSON(w http.ResponseWriter, r *http.Request, op string, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.Logger.Warnw(op+": invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
