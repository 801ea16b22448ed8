package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"storefront/entities"
	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAbsoluteURL(t *testing.T) {
	_, err := New("localhost:8080")
	assert.Error(t, err)
	_, err = New("/api")
	assert.Error(t, err)

	c, err := New("http://localhost:8080/api/", WithHTTPClient(http.DefaultClient))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", c.baseURL)
	assert.Same(t, http.DefaultClient, c.httpClient)
}

func TestClient_Catalog(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	prods, err := c.Products(ctx, "")
	require.NoError(t, err)
	assert.Len(t, prods, 5)

	storage, err := c.Products(ctx, "Storage")
	require.NoError(t, err)
	require.Len(t, storage, 1)
	assert.Equal(t, "5", storage[0].Id)

	p, err := c.Product(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Ergonomic Mechanical Keyboard", p.Name)
	assert.True(t, p.InStock())

	_, err = c.Product(ctx, "does-not-exist")
	assert.True(t, errors.Is(err, models.ErrProductNotFound))

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics", "Accessories", "Storage"}, cats)
}

func TestClient_APIPrefix(t *testing.T) {
	srv := newTestServer(t)
	c, err := New(srv.URL + "/api")
	require.NoError(t, err)

	lines, err := c.UpsertCart(context.Background(), entities.CartRequest{Id: "1", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	lines, err = c.RemoveFromCart(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestAPIError_Is(t *testing.T) {
	notFound := &APIError{Status: http.StatusNotFound, Message: "Product not found"}
	bad := &APIError{Status: http.StatusBadRequest, Message: "bad request: id is required"}

	assert.ErrorIs(t, notFound, models.ErrProductNotFound)
	assert.NotErrorIs(t, notFound, models.ErrBadRequest)
	assert.ErrorIs(t, bad, models.ErrBadRequest)
	assert.Equal(t, "storefront: 404 Product not found", notFound.Error())
}
