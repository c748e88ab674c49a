package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Stocks GET /stock.
func (c *Client) Stocks(ctx context.Context, token string) ([]entity.Stock, error) {
	return getList[entity.Stock](ctx, c, "/stock", "/stock", token, "stock", nil)
}

// UpdateStock PUT /stock/:productoId.
func (c *Client) UpdateStock(ctx context.Context, token, productoID string, in dto.StockPayload) error {
	return c.send(ctx, http.MethodPut, "/stock/:productoId", "/stock/"+escape(productoID), token, in)
}

func (c *Client) DeleteStock(ctx context.Context, token, productoID string) error {
	return c.send(ctx, http.MethodDelete, "/stock/:productoId", "/stock/"+escape(productoID), token, nil)
}

// Batches GET /lotes.
func (c *Client) Batches(ctx context.Context, token string) ([]entity.Batch, error) {
	return getList[entity.Batch](ctx, c, "/lotes", "/lotes", token, "lotes", nil)
}

func (c *Client) CreateBatch(ctx context.Context, token string, in dto.BatchPayload) error {
	return c.send(ctx, http.MethodPost, "/lotes", "/lotes", token, in)
}

func (c *Client) UpdateBatch(ctx context.Context, token, id string, in dto.BatchPayload) error {
	return c.send(ctx, http.MethodPut, "/lotes/:id", "/lotes/"+escape(id), token, in)
}

func (c *Client) DeleteBatch(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/lotes/:id", "/lotes/"+escape(id), token, nil)
}

// Movements GET /movimientos.
func (c *Client) Movements(ctx context.Context, token string) ([]entity.Movement, error) {
	return getList[entity.Movement](ctx, c, "/movimientos", "/movimientos", token, "movimientos", nil)
}

func (c *Client) CreateMovement(ctx context.Context, token string, in dto.MovementPayload) error {
	return c.send(ctx, http.MethodPost, "/movimientos", "/movimientos", token, in)
}

func (c *Client) UpdateMovement(ctx context.Context, token, id string, in dto.MovementPayload) error {
	return c.send(ctx, http.MethodPut, "/movimientos/:id", "/movimientos/"+escape(id), token, in)
}

func (c *Client) DeleteMovement(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/movimientos/:id", "/movimientos/"+escape(id), token, nil)
}

// Alerts GET /alertas.
func (c *Client) Alerts(ctx context.Context, token string) ([]entity.Alert, error) {
	return getList[entity.Alert](ctx, c, "/alertas", "/alertas", token, "alertas", nil)
}

// GenerateAlerts POST /alertas/generar; el backend recalcula las alertas de stock.
func (c *Client) GenerateAlerts(ctx context.Context, token string) error {
	return c.send(ctx, http.MethodPost, "/alertas/generar", "/alertas/generar", token, nil)
}
