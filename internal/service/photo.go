package service

import (
	"BucketList/internal/model"
	"BucketList/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// PhotoURLPrefix — префикс photo_path; по нему же отдаются файлы.
const PhotoURLPrefix = "uploads"

// PhotoStore — файловое хранилище фото (реализация — storage.Store).
type PhotoStore interface {
	Save(name string, r io.Reader) (int64, error)
	Remove(name string) error
	Exists(name string) (bool, error)
	Open(name string) (afero.File, os.FileInfo, error)
}

var _ PhotoStore = (*storage.Store)(nil)

func fileNameOf(photoPath string) string {
	return path.Base(photoPath)
}

// removeFile удаляет файл фото, если он есть. Строку с битым путём удалять не мешаем.
func (s *ItemService) removeFile(photoPath string) error {
	name := fileNameOf(photoPath)
	ok, err := s.files.Exists(name)
	if errors.Is(err, storage.ErrInvalidName) {
		s.logger.Warnw("photo row has unusable path", "photo_path", photoPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat photo file: %w", err)
	}
	if !ok {
		s.logger.Warnw("photo file already missing", "photo_path", photoPath)
		return nil
	}
	if err := s.files.Remove(name); err != nil {
		return fmt.Errorf("remove photo file: %w", err)
	}
	return nil
}

// AllowedFile проверяет расширение имени файла по белому списку.
func (s *ItemService) AllowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := s.allowed[strings.ToLower(filename[i+1:])]
	return ok
}

// UploadPhoto сохраняет файл и только после успешной записи добавляет строку фото.
// Возвращает запись вместе с новым фото.
func (s *ItemService) UploadPhoto(ctx context.Context, itemID uint, filename string, r io.Reader) (*model.Item, error) {
	if _, err := s.Get(ctx, itemID); err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, invalid("No file selected")
	}
	if !s.AllowedFile(filename) {
		return nil, invalid("Invalid file type")
	}

	stored := storage.StoredName(itemID, time.Now().UTC(), filename)
	size, err := s.files.Save(stored, r)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w", err)
	}

	p, err := s.photos.Create(ctx, itemID, path.Join(PhotoURLPrefix, stored))
	if err != nil {
		// строки нет — убираем файл, чтобы не копить сирот
		if rmErr := s.files.Remove(stored); rmErr != nil {
			s.logger.Warnw("orphaned photo file left on disk", "file", stored, "error", rmErr)
		}
		return nil, repoErr("create photo", err)
	}
	s.logger.Infow("photo uploaded", "item_id", itemID, "photo_id", p.ID, "file", stored, "size", size)

	return s.Get(ctx, itemID)
}

// DeletePhoto удаляет файл фото, затем строку, и возвращает родительскую запись.
func (s *ItemService) DeletePhoto(ctx context.Context, photoID uint) (*model.Item, error) {
	p, err := s.photos.GetByID(ctx, photoID)
	if err != nil {
		return nil, repoErr("get photo", err)
	}
	if err := s.removeFile(p.PhotoPath); err != nil {
		return nil, err
	}
	itemID, err := s.photos.Delete(ctx, photoID)
	if err != nil {
		return nil, repoErr("delete photo", err)
	}
	s.logger.Infow("photo deleted", "item_id", itemID, "photo_id", photoID)
	return s.Get(ctx, itemID)
}

// OpenPhoto открывает файл фото по имени для отдачи клиенту.
func (s *ItemService) OpenPhoto(name string) (afero.File, os.FileInfo, error) {
	f, fi, err := s.files.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return nil, nil, fmt.Errorf("open photo: %w", ErrNotFound)
		}
		return nil, nil, err
	}
	return f, fi, nil
}
