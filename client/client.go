// Package client talks to the storefront HTTP API. Client covers the catalog
// calls; CartStore mirrors the server cart and derives its aggregates.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/entities"
	"storefront/models"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront: %d %s", e.Status, e.Message)
}

// Is lets callers match a 404 with errors.Is(err, models.ErrProductNotFound).
func (e *APIError) Is(target error) bool {
	switch target {
	case models.ErrProductNotFound:
		return e.Status == http.StatusNotFound
	case models.ErrBadRequest:
		return e.Status == http.StatusBadRequest
	}
	return false
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Products(ctx context.Context, category string) (prods []entities.Product, err error) {
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	err = c.do(ctx, http.MethodGet, path, nil, &prods)
	return
}

func (c *Client) Product(ctx context.Context, id string) (prod entities.Product, err error) {
	err = c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &prod)
	return
}

func (c *Client) Categories(ctx context.Context) (cats []string, err error) {
	err = c.do(ctx, http.MethodGet, "/categories", nil, &cats)
	return
}

func (c *Client) Cart(ctx context.Context) (lines []entities.CartLine, err error) {
	err = c.do(ctx, http.MethodGet, "/cart", nil, &lines)
	return
}

func (c *Client) UpsertCart(ctx context.Context, req entities.CartRequest) (lines []entities.CartLine, err error) {
	err = c.do(ctx, http.MethodPost, "/cart", req, &lines)
	return
}

func (c *Client) RemoveFromCart(ctx context.Context, id string) (lines []entities.CartLine, err error) {
	err = c.do(ctx, http.MethodDelete, "/cart", entities.CartDeleteRequest{Id: id}, &lines)
	return
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var e entities.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
