package services

import (
	"context"
	"storefront/repository"
)

type CategoryService struct {
	cr repository.CategoryRepository
}

func NewCategoryService(catRepo repository.CategoryRepository) CategoryService {
	return CategoryService{
		cr: catRepo,
	}
}

func (cas *CategoryService) GetAllCategories(ctx context.Context) (categories []string, err error) {
	categories, err = cas.cr.GetAllCategories(ctx)
	return
}
