package api

import (
	"context"
	"net/url"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// Dashboard widgets del dashboard. Va aparte del Client porque Sales choca con
// el listado de ventas.
type Dashboard struct {
	c *Client
}

// Dashboard adaptador de ports.DashboardService.
func (c *Client) Dashboard() *Dashboard { return &Dashboard{c: c} }

func rangeQuery(timeRange string) url.Values {
	return url.Values{"timeRange": {timeRange}}
}

// Summary GET /dashboard/summary.
func (d *Dashboard) Summary(ctx context.Context, token, timeRange string) (entity.DashboardSummary, error) {
	var out entity.DashboardSummary
	err := d.c.get(ctx, "/dashboard/summary", "/dashboard/summary", token, rangeQuery(timeRange), &out)
	return out, err
}

// Production GET /dashboard/production.
func (d *Dashboard) Production(ctx context.Context, token, timeRange string) ([]entity.ProductionPoint, error) {
	return getList[entity.ProductionPoint](ctx, d.c, "/dashboard/production", "/dashboard/production", token, "data", rangeQuery(timeRange))
}

// Sales GET /dashboard/sales.
func (d *Dashboard) Sales(ctx context.Context, token, timeRange string) ([]entity.SalesPoint, error) {
	return getList[entity.SalesPoint](ctx, d.c, "/dashboard/sales", "/dashboard/sales", token, "data", rangeQuery(timeRange))
}

// Inventory GET /dashboard/inventory.
func (d *Dashboard) Inventory(ctx context.Context, token string) ([]entity.InventoryPoint, error) {
	return getList[entity.InventoryPoint](ctx, d.c, "/dashboard/inventory", "/dashboard/inventory", token, "data", nil)
}

// QualityIssues GET /dashboard/quality-issues.
func (d *Dashboard) QualityIssues(ctx context.Context, token, timeRange string) ([]entity.QualityIssue, error) {
	return getList[entity.QualityIssue](ctx, d.c, "/dashboard/quality-issues", "/dashboard/quality-issues", token, "data", rangeQuery(timeRange))
}
