// Package storage хранит файлы фотографий в плоском каталоге.
//
// Каталог общий для всех запросов; уникальность имён обеспечивает вызывающий
// код (см. StoredName), поэтому блокировок здесь нет.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var (
	// ErrInvalidName — имя файла содержит путь или пустое.
	ErrInvalidName = errors.New("invalid file name")
	// ErrNotFound — файла нет в хранилище.
	ErrNotFound = errors.New("file not found")
)

// Store — файловое хранилище поверх afero.Fs.
type Store struct {
	fs afero.Fs
}

// NewDiskStore создаёт каталог dir (если его нет) и возвращает хранилище,
// ограниченное этим каталогом.
func NewDiskStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return NewStore(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// NewStore оборачивает произвольную afero.Fs (в тестах — afero.NewMemMapFs()).
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Save записывает содержимое r в файл name. Существующий файл не перезаписывается.
// При ошибке записи частично записанный файл удаляется.
func (s *Store) Save(name string, r io.Reader) (int64, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", name, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = s.fs.Remove(name)
		return 0, fmt.Errorf("write %s: %w", name, err)
	}
	return n, nil
}

// Remove удаляет файл, если он существует. Отсутствие файла ошибкой не считается.
func (s *Store) Remove(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	err := s.fs.Remove(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// Exists сообщает, есть ли файл name.
func (s *Store) Exists(name string) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}
	return afero.Exists(s.fs, name)
}

// Open открывает файл на чтение. Вызывающий закрывает файл.
func (s *Store) Open(name string) (afero.File, os.FileInfo, error) {
	if err := checkName(name); err != nil {
		return nil, nil, err
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return f, fi, nil
}
