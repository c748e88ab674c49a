package api

import (
	"context"
	"net/url"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// withParam copia query y agrega key=value, sin tocar el filtro del llamador.
func withParam(query url.Values, key, value string) url.Values {
	out := url.Values{}
	for k, v := range query {
		out[k] = append([]string(nil), v...)
	}
	out.Set(key, value)
	return out
}

// ProductReport GET /reportes/reporte-productos.
func (c *Client) ProductReport(ctx context.Context, token string, query url.Values) (entity.ProductReport, error) {
	var out entity.ProductReport
	err := c.get(ctx, "/reportes/reporte-productos", "/reportes/reporte-productos", token, query, &out)
	return out, err
}

// ClientReport GET /reportes/reporte-clientes.
func (c *Client) ClientReport(ctx context.Context, token string, query url.Values) (entity.ClientReport, error) {
	var out entity.ClientReport
	err := c.get(ctx, "/reportes/reporte-clientes", "/reportes/reporte-clientes", token, query, &out)
	return out, err
}

// ClientStatement GET /reportes/reporte-cliente-especifico?clienteId=.
func (c *Client) ClientStatement(ctx context.Context, token, clienteID string, query url.Values) (entity.ClientStatement, error) {
	var out entity.ClientStatement
	err := c.get(ctx, "/reportes/reporte-cliente-especifico", "/reportes/reporte-cliente-especifico", token,
		withParam(query, "clienteId", clienteID), &out)
	return out, err
}

// VendorDebts GET /reportes/reporte-deudas-por-vendedor/:vendorId.
func (c *Client) VendorDebts(ctx context.Context, token, vendedorID string, query url.Values) (entity.VendorDebtReport, error) {
	var out entity.VendorDebtReport
	err := c.get(ctx, "/reportes/reporte-deudas-por-vendedor/:vendorId", "/reportes/reporte-deudas-por-vendedor/"+escape(vendedorID), token, query, &out)
	return out, err
}

// Prediction GET /predicciones/ventas-produccion/:productId?tipo=.
func (c *Client) Prediction(ctx context.Context, token, productoID, tipo string) (entity.Prediction, error) {
	var out entity.Prediction
	err := c.get(ctx, "/predicciones/ventas-produccion/:productId", "/predicciones/ventas-produccion/"+escape(productoID), token,
		url.Values{"tipo": {tipo}}, &out)
	return out, err
}
