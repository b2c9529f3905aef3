package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// WithMarkupAudit отмечает в логе JSON-запросы, строковые поля которых содержат
// HTML-разметку. Тело передаётся дальше байт в байт: текст хранится как есть,
// экранирование делает JSON-кодировщик при ответе. Невалидный JSON пропускается,
// его отклоняет обработчик.
func WithMarkupAudit(h http.Handler) http.Handler {
	policy := bluemonday.StrictPolicy()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
			h.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") || r.Body == nil {
			h.ServeHTTP(w, r)
			return
		}

		buf, err := io.ReadAll(r.Body)
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeJSONError(w, http.StatusBadRequest, "Invalid body")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(buf))

		if fields := markupFields(policy, buf); len(fields) > 0 {
			logger.Warnw("markup in request body",
				"request_id", GetRequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"fields", fields,
			)
		}
		h.ServeHTTP(w, r)
	})
}

// markupFields возвращает отсортированные имена строковых полей верхнего уровня,
// которые политика изменила бы.
func markupFields(policy *bluemonday.Policy, buf []byte) []string {
	var body map[string]any
	if err := json.Unmarshal(buf, &body); err != nil {
		return nil
	}
	var fields []string
	for k, v := range body {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if html.UnescapeString(policy.Sanitize(s)) != s {
			fields = append(fields, k)
		}
	}
	sort.Strings(fields)
	return fields
}
