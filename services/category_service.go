package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/muhbabelli/BidBay/models"
	"github.com/muhbabelli/BidBay/repository"
)

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, NewInternalError("Failed to fetch categories")
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, req *CreateCategoryRequest) (*models.Category, *ServiceError) {
	_, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, NewValidationError("Category already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewInternalError("Failed to create category")
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, NewInternalError("Failed to create category")
	}
	return category, nil
}
