package mocks

import (
	"context"

	"expense-tracker/internal/schemas"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *schemas.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*schemas.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*schemas.Category)
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, offset, limit int) ([]*schemas.Category, int, error) {
	args := m.Called(ctx, offset, limit)
	categories, _ := args.Get(0).([]*schemas.Category)
	return categories, args.Int(1), args.Error(2)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *schemas.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
