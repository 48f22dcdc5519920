package services

import (
	"context"
	"strings"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/repositories"
	"expense-tracker/internal/schemas"
)

type CategorySvc interface {
	GetCategories(ctx context.Context, offset, limit int) ([]*schemas.Category, int, error)
	GetCategory(ctx context.Context, id int64) (*schemas.Category, error)
	CreateCategory(ctx context.Context, request *schemas.CategoryRequest) (*schemas.Category, error)
	UpdateCategory(ctx context.Context, id int64, request *schemas.CategoryRequest) (*schemas.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepo
}

func NewCategoryService(categoryRepo repositories.CategoryRepo) CategorySvc {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetCategories(ctx context.Context, offset, limit int) ([]*schemas.Category, int, error) {
	return s.categoryRepo.FindAll(ctx, offset, limit)
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*schemas.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// CreateCategory rejects names already taken, ignoring case.
func (s *CategoryService) CreateCategory(ctx context.Context, request *schemas.CategoryRequest) (*schemas.Category, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrCategoryExists
	}

	category := &schemas.Category{Name: request.Name, Description: request.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, request *schemas.CategoryRequest) (*schemas.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(category.Name, request.Name) {
		exists, err := s.categoryRepo.ExistsByName(ctx, request.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, errs.ErrCategoryExists
		}
	}

	category.Name = request.Name
	category.Description = request.Description
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}
