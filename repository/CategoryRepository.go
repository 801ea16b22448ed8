package repository

import (
	"context"
	"errors"
	"strings"
)

// CategoryRepository exposes the categories used by the catalog. Categories
// have no table of their own; they are read off the products.
type CategoryRepository interface {
	GetAllCategories(ctx context.Context) (cats []string, err error)
}

type CategoryRepo struct {
	pr ProductRepository
}

func NewCategoryRepository(productRepo ProductRepository) (CategoryRepository, error) {
	if productRepo == nil {
		return nil, errors.New("product repository must be non-nil")
	}
	return &CategoryRepo{
		pr: productRepo,
	}, nil
}

// GetAllCategories returns each category once, in the order it first appears
// in the catalog.
func (c *CategoryRepo) GetAllCategories(ctx context.Context) (cats []string, err error) {
	prods, err := c.pr.GetAllProducts(ctx)
	if err != nil {
		return
	}
	seen := make(map[string]struct{})
	cats = []string{}
	for _, p := range prods {
		if p.Category == "" {
			continue
		}
		key := strings.ToLower(p.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cats = append(cats, p.Category)
	}
	return
}
