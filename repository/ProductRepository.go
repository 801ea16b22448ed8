package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"storefront/entities"
	"storefront/models"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Schema creates the products table read by NewProductRepository.
//
//go:embed schema.sql
var Schema string

// ProductRepository is a read-only view of the catalog. Products come back in
// a fixed order.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) (prods []entities.Product, err error)
	GetProductById(ctx context.Context, id string) (prod entities.Product, exists bool, err error)
}

// ProductRepo holds the whole catalog in memory. The source is read once when
// the repository is built and never written afterwards.
type ProductRepo struct {
	prods []entities.Product
	index map[string]int
}

type catalogFile struct {
	Products []entities.Product `yaml:"products"`
}

// NewStaticProductRepository serves the catalog bundled with the binary.
func NewStaticProductRepository() (ProductRepository, error) {
	return NewYAMLProductRepository(defaultCatalog)
}

func NewYAMLProductRepository(data []byte) (ProductRepository, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return newProductRepo(f.Products)
}

// NewProductRepository loads the products table through conn. Works with the
// postgres and sqlite3 drivers.
func NewProductRepository(ctx context.Context, conn *sql.DB) (ProductRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := conn.PingContext(ctx); err != nil {
		return nil, err
	}
	rows, err := conn.QueryContext(ctx, "SELECT id, name, description, price, image, rating, reviews, stock, category FROM products ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	prods := []entities.Product{}
	for rows.Next() {
		var pModel models.Product_db
		err = rows.Scan(&pModel.Id, &pModel.Name, &pModel.Description, &pModel.Price,
			&pModel.Image, &pModel.Rating, &pModel.Reviews, &pModel.Stock, &pModel.Category)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		prods = append(prods, entities.Product{
			Id:          pModel.Id,
			Name:        pModel.Name,
			Description: pModel.Description.String,
			Price:       pModel.Price,
			Image:       pModel.Image.String,
			Rating:      pModel.Rating.Float64,
			Reviews:     pModel.Reviews,
			Stock:       pModel.Stock,
			Category:    pModel.Category.String,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return newProductRepo(prods)
}

func newProductRepo(prods []entities.Product) (*ProductRepo, error) {
	p := &ProductRepo{
		prods: make([]entities.Product, 0, len(prods)),
		index: make(map[string]int, len(prods)),
	}
	for _, prod := range prods {
		if err := validateProduct(prod); err != nil {
			return nil, err
		}
		if _, dup := p.index[prod.Id]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", prod.Id)
		}
		p.index[prod.Id] = len(p.prods)
		p.prods = append(p.prods, prod)
	}
	return p, nil
}

func validateProduct(prod entities.Product) error {
	switch {
	case prod.Id == "":
		return errors.New("catalog: product without id")
	case prod.Price < 0:
		return fmt.Errorf("catalog: product %q has negative price", prod.Id)
	case prod.Rating < 0 || prod.Rating > 5:
		return fmt.Errorf("catalog: product %q rating out of range", prod.Id)
	case prod.Reviews < 0 || prod.Stock < 0:
		return fmt.Errorf("catalog: product %q has negative counters", prod.Id)
	}
	return nil
}

func (p *ProductRepo) GetAllProducts(_ context.Context) (prods []entities.Product, err error) {
	prods = make([]entities.Product, len(p.prods))
	copy(prods, p.prods)
	return
}

func (p *ProductRepo) GetProductById(_ context.Context, id string) (prod entities.Product, exists bool, err error) {
	i, ok := p.index[id]
	if !ok {
		return
	}
	prod = p.prods[i]
	exists = true
	return
}
