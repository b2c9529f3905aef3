package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound — запись, фото или файл не найдены.
	ErrNotFound = errors.New("not found")
	// ErrValidation — некорректные входные данные.
	ErrValidation = errors.New("validation failed")
)

// ValidationError несёт сообщение для клиента и матчится с ErrValidation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

// repoErr переводит gorm.ErrRecordNotFound в ErrNotFound, остальное оборачивает.
func repoErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
