package api

import (
	"BucketList/internal/cli/model"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// APIError — ответ сервера с кодом не 2xx.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server status %d", e.Status)
	}
	return fmt.Sprintf("server status %d: %s", e.Status, e.Message)
}

// IsNotFound сообщает, что сервер ответил 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// Client — HTTP-клиент к API списка.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New создаёт клиента для сервера baseURL (со схемой, без завершающего "/").
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// PhotoURL возвращает полный адрес файла фото.
func (c *Client) PhotoURL(p model.Photo) string {
	return c.BaseURL + "/" + strings.TrimLeft(p.PhotoPath, "/")
}

// ListItems — GET /api/items
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	var out []model.Item
	if err := c.doJSON(ctx, http.MethodGet, "/api/items", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateItem — POST /api/items
func (c *Client) CreateItem(ctx context.Context, description, addedBy string) (*model.Item, error) {
	payload := map[string]string{"description": description, "added_by": addedBy}
	var out model.Item
	if err := c.doJSON(ctx, http.MethodPost, "/api/items", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem — PUT /api/items/{id}
func (c *Client) UpdateItem(ctx context.Context, id uint, patch model.ItemPatch) (*model.Item, error) {
	var out model.Item
	if err := c.doJSON(ctx, http.MethodPut, itemPath(id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem — DELETE /api/items/{id}
func (c *Client) DeleteItem(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, itemPath(id), nil, nil)
}

// UploadPhoto — POST /api/items/{id}/photos, поле "photo".
func (c *Client) UploadPhoto(ctx context.Context, itemID uint, filename string, r io.Reader) (*model.Item, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("photo", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+itemPath(itemID)+"/photos", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out model.Item
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePhoto — DELETE /api/photos/{id}; возвращает родительскую запись.
func (c *Client) DeletePhoto(ctx context.Context, photoID uint) (*model.Item, error) {
	var out model.Item
	if err := c.doJSON(ctx, http.MethodDelete, "/api/photos/"+strconv.FormatUint(uint64(photoID), 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats — GET /api/stats
func (c *Client) Stats(ctx context.Context) (*model.Stats, error) {
	var out model.Stats
	if err := c.doJSON(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health — GET /health
func (c *Client) Health(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, "/health", nil, nil)
}

func itemPath(id uint) string {
	return "/api/items/" + strconv.FormatUint(uint64(id), 10)
}

// doJSON отправляет payload (если не nil) как JSON и декодирует ответ в out (если не nil).
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return &APIError{Status: status, Message: e.Error}
	}
	return &APIError{Status: status, Message: strings.TrimSpace(string(body))}
}
