package handlers_test

import (
	"BucketList/internal/config"
	"BucketList/internal/handlers"
	"BucketList/internal/repo"
	"BucketList/internal/service"
	"BucketList/internal/storage"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router http.Handler
	cfg    *config.Config
	fs     afero.Fs
}

// newTestEnv собирает настоящий роутер поверх SQLite во временном каталоге
// и файлового хранилища в памяти.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := repo.InitDB("sqlite://" + filepath.Join(dir, "handlers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	static := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(static, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>bucket list</html>"), 0o644))

	cfg := &config.Config{
		MaxContentLength:  1 << 20,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "webp"},
		StaticDir:         static,
		CORSOrigins:       []string{"*"},
	}
	logger := zap.NewNop().Sugar()
	fs := afero.NewMemMapFs()

	svc := service.NewItemService(
		repo.NewItemRepository(db),
		repo.NewPhotoRepository(db),
		storage.NewStore(fs),
		cfg.AllowedExtensions,
		logger,
	)
	h := handlers.NewHandler(svc, logger, cfg)
	return &testEnv{router: h.Router, cfg: cfg, fs: fs}
}

func (e *testEnv) do(t *testing.T, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) doJSON(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	return e.do(t, method, target, r, "application/json")
}

// createItem создаёт запись через API и возвращает её JSON.
func (e *testEnv) createItem(t *testing.T, description, addedBy string) handlers.ItemDTO {
	t.Helper()
	b, _ := json.Marshal(map[string]string{"description": description, "added_by": addedBy})
	rr := e.doJSON(t, http.MethodPost, "/api/items", string(b))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[handlers.ItemDTO](t, rr)
}

func (e *testEnv) uploadPhoto(t *testing.T, itemID uint, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	ct, body := makeMultipart(t, nil, map[string][]byte{filename: data})
	return e.do(t, http.MethodPost, itemURL(itemID)+"/photos", body, ct)
}

func itemURL(id uint) string {
	return fmt.Sprintf("/api/items/%d", id)
}

func photoURL(id uint) string {
	return fmt.Sprintf("/api/photos/%d", id)
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}

// makeMultipart собирает multipart-тело; файлы кладутся в поле "photo" с заданным именем.
func makeMultipart(t *testing.T, fields map[string]string, files map[string][]byte) (string, *bytes.Buffer) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	for name, data := range files {
		fw, _ := w.CreateFormFile("photo", name)
		_, _ = fw.Write(data)
	}
	_ = w.Close()
	return w.FormDataContentType(), body
}

func storedFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	infos, err := afero.ReadDir(fs, "/")
	require.NoError(t, err)
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names
}
