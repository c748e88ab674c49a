package api

import (
	"context"
	"net/http"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Sales GET /ventas ({"ventas":[…]}).
func (c *Client) Sales(ctx context.Context, token string) ([]entity.Sale, error) {
	return getList[entity.Sale](ctx, c, "/ventas", "/ventas", token, "ventas", nil)
}

// CreateSale POST /ventas. La respuesta puede traer advertenciaDeuda.
func (c *Client) CreateSale(ctx context.Context, token string, in dto.SalePayload) (entity.SaleCreated, error) {
	var out entity.SaleCreated
	err := c.do(ctx, request{method: http.MethodPost, route: "/ventas", path: "/ventas", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateSale(ctx context.Context, token, id string, in dto.SalePayload) error {
	return c.send(ctx, http.MethodPut, "/ventas/:id", "/ventas/"+escape(id), token, in)
}

func (c *Client) DeleteSale(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/ventas/:id", "/ventas/"+escape(id), token, nil)
}

// Clients GET /users/clientes ({"clientes":[…]}).
func (c *Client) Clients(ctx context.Context, token string) ([]entity.User, error) {
	return getList[entity.User](ctx, c, "/users/clientes", "/users/clientes", token, "clientes", nil)
}

// Vendors GET /users/vendedores ({"vendedores":[…]}).
func (c *Client) Vendors(ctx context.Context, token string) ([]entity.User, error) {
	return getList[entity.User](ctx, c, "/users/vendedores", "/users/vendedores", token, "vendedores", nil)
}

// Parameters GET /parametros.
func (c *Client) Parameters(ctx context.Context, token string) ([]entity.Parameter, error) {
	return getList[entity.Parameter](ctx, c, "/parametros", "/parametros", token, "parametros", nil)
}

func (c *Client) UpdateParameter(ctx context.Context, token, id string, in dto.ParameterPayload) error {
	return c.send(ctx, http.MethodPut, "/parametros/:id", "/parametros/"+escape(id), token, in)
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

// PendingSales GET /pagos/cliente/:id/pendientes.
func (c *Client) PendingSales(ctx context.Context, token, clienteID string) ([]entity.PendingSale, error) {
	return getList[entity.PendingSale](ctx, c, "/pagos/cliente/:id/pendientes", "/pagos/cliente/"+escape(clienteID)+"/pendientes", token, "ventasPendientes", nil)
}

// Payments GET /pagos/cliente/:id.
func (c *Client) Payments(ctx context.Context, token, clienteID string) ([]entity.Payment, error) {
	return getList[entity.Payment](ctx, c, "/pagos/cliente/:id", "/pagos/cliente/"+escape(clienteID), token, "pagos", nil)
}

// CreatePayment POST /pagos. El backend reparte el monto entre las ventas
// pendientes y devuelve el detalle aplicado.
func (c *Client) CreatePayment(ctx context.Context, token string, in dto.PaymentPayload) (entity.PaymentResult, error) {
	var out entity.PaymentResult
	err := c.do(ctx, request{method: http.MethodPost, route: "/pagos", path: "/pagos", token: token, body: in}, &out)
	return out, err
}

// ──────────────────────────────────────────────────────────────────────────────
// Preventas
// ──────────────────────────────────────────────────────────────────────────────

// Presales GET /preventas ({"preventas":[…]}).
func (c *Client) Presales(ctx context.Context, token string) ([]entity.Presale, error) {
	return getList[entity.Presale](ctx, c, "/preventas", "/preventas", token, "preventas", nil)
}

func (c *Client) CreatePresale(ctx context.Context, token string, in dto.PresalePayload) error {
	return c.send(ctx, http.MethodPost, "/preventas", "/preventas", token, in)
}

func (c *Client) DeletePresale(ctx context.Context, token, id string) error {
	return c.send(ctx, http.MethodDelete, "/preventas/:id", "/preventas/"+escape(id), token, nil)
}

// ConfirmDelivery POST /preventas/confirmar-entrega.
func (c *Client) ConfirmDelivery(ctx context.Context, token string, in dto.DeliveryPayload) error {
	return c.send(ctx, http.MethodPost, "/preventas/confirmar-entrega", "/preventas/confirmar-entrega", token, in)
}
