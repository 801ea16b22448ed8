package services

import (
	"context"
	"fmt"
	"math"
	"slices"
	"storefront/entities"
	"storefront/models"
	"storefront/repository"
	"sync"

	"go.uber.org/zap"
)

// CartService owns the shared cart. Every mutation runs as one
// read-modify-write under mu, so concurrent requests cannot lose updates.
type CartService struct {
	mu     sync.Mutex
	pr     repository.ProductRepository
	cr     repository.CartRepository
	logger *zap.SugaredLogger
}

func NewCartService(productRepo repository.ProductRepository, cartRepo repository.CartRepository, logger *zap.SugaredLogger) *CartService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CartService{
		pr:     productRepo,
		cr:     cartRepo,
		logger: logger,
	}
}

func (cs *CartService) GetCartItems(ctx context.Context) (lines []entities.CartLine, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.cr.GetCart(ctx)
}

// UpsertCartItem adds req.Quantity to the line for req.Id, or sets it when
// req.Replace is true. A line whose quantity ends up <= 0 is dropped. The id
// is checked against the catalog on every call.
func (cs *CartService) UpsertCartItem(ctx context.Context, req entities.CartRequest) (lines []entities.CartLine, err error) {
	p, ex, err := cs.pr.GetProductById(ctx, req.Id)
	if err != nil {
		return
	}
	if !ex {
		cs.logger.Debugw("upsert rejected", "id", req.Id)
		err = models.ErrProductNotFound
		return
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	lines, err = cs.cr.GetCart(ctx)
	if err != nil {
		return
	}

	i := slices.IndexFunc(lines, func(l entities.CartLine) bool { return l.Id == req.Id })
	switch {
	case i >= 0:
		qty := req.Quantity
		if !req.Replace {
			if qty > 0 && lines[i].Quantity > math.MaxInt-qty {
				return nil, fmt.Errorf("%w: quantity too large", models.ErrBadRequest)
			}
			qty += lines[i].Quantity
		}
		if qty <= 0 {
			lines = slices.Delete(lines, i, i+1)
		} else {
			lines[i].Quantity = qty
		}
	case req.Quantity > 0:
		lines = append(lines, entities.CartLine{
			Id:       p.Id,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: req.Quantity,
		})
	default:
		return
	}

	if err = cs.cr.SetCart(ctx, lines); err != nil {
		return nil, err
	}
	cs.logger.Debugw("cart upserted", "id", req.Id, "quantity", req.Quantity, "replace", req.Replace, "lines", len(lines))
	return
}

// RemoveCartItem drops the line for id. Missing ids are not an error.
func (cs *CartService) RemoveCartItem(ctx context.Context, id string) (lines []entities.CartLine, err error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	lines, err = cs.cr.GetCart(ctx)
	if err != nil {
		return
	}
	i := slices.IndexFunc(lines, func(l entities.CartLine) bool { return l.Id == id })
	if i < 0 {
		return
	}
	lines = slices.Delete(lines, i, i+1)
	if err = cs.cr.SetCart(ctx, lines); err != nil {
		return nil, err
	}
	cs.logger.Debugw("cart line removed", "id", id, "lines", len(lines))
	return
}
