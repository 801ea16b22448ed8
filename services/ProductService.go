package services

import (
	"context"
	"storefront/entities"
	"storefront/models"
	"storefront/repository"
	"strings"
)

type ProductService struct {
	pr repository.ProductRepository
}

func NewProductService(pRepo repository.ProductRepository) ProductService {
	return ProductService{
		pr: pRepo,
	}
}

// GetProducts lists the catalog in its fixed order. A non-empty category
// keeps only the products of that category, compared case-insensitively.
func (ps *ProductService) GetProducts(ctx context.Context, category string) (prods []entities.Product, err error) {
	all, err := ps.pr.GetAllProducts(ctx)
	if err != nil {
		return
	}
	if category == "" {
		prods = all
		return
	}
	prods = []entities.Product{}
	for _, p := range all {
		if strings.EqualFold(p.Category, category) {
			prods = append(prods, p)
		}
	}
	return
}

func (ps *ProductService) GetProductById(ctx context.Context, id string) (pEnt entities.Product, err error) {
	var exists bool
	pEnt, exists, err = ps.pr.GetProductById(ctx, id)
	if err != nil {
		return
	}
	if !exists {
		err = models.ErrProductNotFound
	}
	return
}
