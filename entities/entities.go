package entities

import "github.com/shopspring/decimal"

type Product struct {
	Id          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Image       string  `json:"image" yaml:"image"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Reviews     int     `json:"reviews" yaml:"reviews"`
	Stock       int     `json:"stock" yaml:"stock"`
	Category    string  `json:"category" yaml:"category"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// CartLine keeps the name, price and image the product had when it was first added.
type CartLine struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type CartRequest struct {
	Id       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity"`
	Replace  bool   `json:"replace,omitempty"`
}

type CartDeleteRequest struct {
	Id string `json:"id" validate:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

type CartSummary struct {
	ItemCount  int
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
}
