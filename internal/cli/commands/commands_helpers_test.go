package commands

import (
	"BucketList/internal/config"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

// fakeAPI — минимальный сервер списка в памяти для проверки команд.
type fakeAPI struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]map[string]any
	// последнее тело PUT-запроса
	lastPatch map[string]any
	uploads   []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *config.Config) {
	t.Helper()
	f := &fakeAPI{nextID: 1, items: map[uint]map[string]any{}}
	ts := httptest.NewServer(f.routes())
	t.Cleanup(ts.Close)
	return f, &config.Config{ServerURL: ts.URL}
}

func (f *fakeAPI) add(desc, by string) uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(desc, by)
}

func (f *fakeAPI) addLocked(desc, by string) uint {
	id := f.nextID
	f.nextID++
	f.items[id] = map[string]any{
		"id": id, "description": desc, "added_by": by,
		"is_completed": false, "is_hidden": false, "photos": []any{},
		"created_at":   time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339Nano),
		"completed_at": nil,
	}
	return id
}

func writeFake(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			h.ServeHTTP(w, r)
		})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		writeFake(w, http.StatusOK, map[string]any{"total": 4, "completed": 1, "pending": 3, "completion_percentage": 25.0})
	})
	r.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		out := make([]any, 0, len(f.items))
		for i := f.nextID; i > 0; i-- {
			if it, ok := f.items[i]; ok {
				out = append(out, it)
			}
		}
		writeFake(w, http.StatusOK, out)
	})
	r.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		writeFake(w, http.StatusCreated, f.items[f.addLocked(in["description"], in["added_by"])])
	})
	r.Put("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		it, ok := f.item(w, r)
		if !ok {
			return
		}
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		f.lastPatch = patch
		for k, v := range patch {
			it[k] = v
		}
		if done, ok := patch["is_completed"].(bool); ok {
			if done {
				it["completed_at"] = time.Now().UTC().Format(time.RFC3339Nano)
			} else {
				it["completed_at"] = nil
			}
		}
		writeFake(w, http.StatusOK, it)
	})
	r.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		it, ok := f.item(w, r)
		if !ok {
			return
		}
		delete(f.items, it["id"].(uint))
		writeFake(w, http.StatusOK, map[string]string{"message": "Item deleted successfully"})
	})
	r.Post("/api/items/{id}/photos", func(w http.ResponseWriter, r *http.Request) {
		it, ok := f.item(w, r)
		if !ok {
			return
		}
		file, h, err := r.FormFile("photo")
		if err != nil {
			writeFake(w, http.StatusBadRequest, map[string]string{"error": "No photo provided"})
			return
		}
		_, _ = io.Copy(io.Discard, file)
		_ = file.Close()
		f.uploads = append(f.uploads, h.Filename)
		it["photos"] = append(it["photos"].([]any), map[string]any{
			"id":          50 + len(f.uploads),
			"photo_path":  fmt.Sprintf("uploads/%d_1_%s", it["id"], h.Filename),
			"uploaded_at": time.Now().UTC().Format(time.RFC3339Nano),
		})
		writeFake(w, http.StatusOK, it)
	})
	r.Delete("/api/photos/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(chi.URLParam(r, "id"))
		for _, it := range f.items {
			photos := it["photos"].([]any)
			for i, p := range photos {
				if p.(map[string]any)["id"].(int) == id {
					it["photos"] = append(photos[:i:i], photos[i+1:]...)
					writeFake(w, http.StatusOK, it)
					return
				}
			}
		}
		writeFake(w, http.StatusNotFound, map[string]string{"error": "Photo not found"})
	})
	return r
}

func (f *fakeAPI) item(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	id, _ := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	it, ok := f.items[uint(id)]
	if !ok {
		writeFake(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	return it, ok
}
