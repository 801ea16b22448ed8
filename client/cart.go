package client

import (
	"context"
	"errors"
	"sync"

	"storefront/entities"

	"github.com/shopspring/decimal"
)

var (
	FreeShippingThreshold = decimal.NewFromInt(50)
	ShippingFee           = decimal.RequireFromString("9.99")
)

// CartStore is a local mirror of the server cart. The mirror is only ever
// replaced by a fresh read of GET /cart; itemCount and total are recomputed
// from it each time.
type CartStore struct {
	api *Client

	mu        sync.RWMutex
	items     []entities.CartLine
	itemCount int
	total     decimal.Decimal
	loading   int
}

func NewCartStore(api *Client) *CartStore {
	return &CartStore{
		api:   api,
		items: []entities.CartLine{},
		total: decimal.Zero,
	}
}

// FetchCart replaces the mirror with the server cart. Loading is held for
// the duration of the read whether it succeeds or not.
func (s *CartStore) FetchCart(ctx context.Context) error {
	s.addLoading(1)
	defer s.addLoading(-1)

	lines, err := s.api.Cart(ctx)
	if err != nil {
		return err
	}
	if lines == nil {
		lines = []entities.CartLine{}
	}
	count, total := aggregate(lines)

	s.mu.Lock()
	s.items = lines
	s.itemCount = count
	s.total = total
	s.mu.Unlock()
	return nil
}

func (s *CartStore) Add(ctx context.Context, id string, qty int) error {
	_, err := s.api.UpsertCart(ctx, entities.CartRequest{Id: id, Quantity: qty})
	return s.refresh(ctx, err)
}

// UpdateQuantity sets the quantity of id. qty <= 0 removes the line instead.
func (s *CartStore) UpdateQuantity(ctx context.Context, id string, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, id)
	}
	_, err := s.api.UpsertCart(ctx, entities.CartRequest{Id: id, Quantity: qty, Replace: true})
	return s.refresh(ctx, err)
}

func (s *CartStore) Remove(ctx context.Context, id string) error {
	_, err := s.api.RemoveFromCart(ctx, id)
	return s.refresh(ctx, err)
}

// refresh refetches after a mutation. The cart is read again whenever the
// server answered, even with an error status; mutErr wins over a fetch error.
func (s *CartStore) refresh(ctx context.Context, mutErr error) error {
	var apiErr *APIError
	if mutErr != nil && !errors.As(mutErr, &apiErr) {
		return mutErr
	}
	if err := s.FetchCart(ctx); err != nil && mutErr == nil {
		return err
	}
	return mutErr
}

func (s *CartStore) Items() []entities.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemCount
}

func (s *CartStore) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}

func (s *CartStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// Summary adds shipping to the total: free from FreeShippingThreshold up,
// ShippingFee below it, nothing for an empty cart.
func (s *CartStore) Summary() entities.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return summarize(s.itemCount, s.total)
}

func (s *CartStore) addLoading(n int) {
	s.mu.Lock()
	s.loading += n
	s.mu.Unlock()
}

func aggregate(lines []entities.CartLine) (count int, total decimal.Decimal) {
	total = decimal.Zero
	for _, l := range lines {
		count += l.Quantity
		total = total.Add(LineTotal(l))
	}
	return
}

func LineTotal(l entities.CartLine) decimal.Decimal {
	return decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func summarize(count int, subtotal decimal.Decimal) entities.CartSummary {
	shipping := decimal.Zero
	if count > 0 && subtotal.LessThan(FreeShippingThreshold) {
		shipping = ShippingFee
	}
	return entities.CartSummary{
		ItemCount:  count,
		Subtotal:   subtotal,
		Shipping:   shipping,
		GrandTotal: subtotal.Add(shipping),
	}
}
