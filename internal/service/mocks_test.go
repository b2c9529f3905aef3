package service

import (
	"BucketList/internal/model"
	"BucketList/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки для ItemRepository и PhotoRepository
type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, description, addedBy string) (*model.Item, error) {
	args := m.Called(ctx, description, addedBy)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Update(ctx context.Context, id uint, upd repo.ItemUpdate) (*model.Item, error) {
	args := m.Called(ctx, id, upd)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
func (m *mockItemRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) CountCompleted(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockItemRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockPhotoRepo struct{ mock.Mock }

func (m *mockPhotoRepo) Create(ctx context.Context, itemID uint, path string) (*model.Photo, error) {
	args := m.Called(ctx, itemID, path)
	if v, ok := args.Get(0).(*model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) GetByID(ctx context.Context, id uint) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) ListByItem(ctx context.Context, itemID uint) ([]model.Photo, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).([]model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPhotoRepo) Delete(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

var _ repo.PhotoRepository = (*mockPhotoRepo)(nil)
