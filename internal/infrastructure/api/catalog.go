package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Products GET /products.
func (c *Client) Products(ctx context.Context, token string) ([]entity.Product, error) {
	return getList[entity.Product](ctx, c, "/products", "/products", token, "productos", nil)
}

func (c *Client) CreateProduct(ctx context.Context, token string, in dto.ProductPayload) error {
	return c.send(ctx, http.MethodPost, "/products", "/products", token, in)
}

func (c *Client) UpdateProduct(ctx context.Context, token, id string, in dto.ProductPayload) error {
	return c.send(ctx, http.MethodPut, "/products/:id", "/products/"+escape(id), token, in)
}

func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/products/:id", "/products/"+escape(id), token, nil)
}

// Categories GET /categorias.
func (c *Client) Categories(ctx context.Context, token string) ([]entity.Category, error) {
	return getList[entity.Category](ctx, c, "/categorias", "/categorias", token, "categorias", nil)
}

func (c *Client) CreateCategory(ctx context.Context, token string, in entity.Category) error {
	return c.send(ctx, http.MethodPost, "/categorias", "/categorias", token, in)
}

func (c *Client) UpdateCategory(ctx context.Context, token, id string, in entity.Category) error {
	return c.send(ctx, http.MethodPut, "/categorias/:id", "/categorias/"+escape(id), token, in)
}

func (c *Client) DeleteCategory(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/categorias/:id", "/categorias/"+escape(id), token, nil)
}
