package analytics

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

type fakeDashboard struct {
	mu       sync.Mutex
	calls    map[string]string // endpoint -> timeRange
	failSale bool
}

func (f *fakeDashboard) record(name, tr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]string{}
	}
	f.calls[name] = tr
}

func (f *fakeDashboard) Summary(_ context.Context, _, tr string) (entity.DashboardSummary, error) {
	f.record("summary", tr)
	return entity.DashboardSummary{TotalSales: decimal.NewFromInt(1500), ActiveAlerts: 2}, nil
}

func (f *fakeDashboard) Production(_ context.Context, _, tr string) ([]entity.ProductionPoint, error) {
	f.record("production", tr)
	return []entity.ProductionPoint{{Period: "2024-05", TotalProduction: 320}}, nil
}

func (f *fakeDashboard) Sales(_ context.Context, _, tr string) ([]entity.SalesPoint, error) {
	f.record("sales", tr)
	if f.failSale {
		return nil, &domain.APIError{Status: 500}
	}
	return []entity.SalesPoint{{Period: "2024-05", TotalSales: decimal.NewFromInt(900)}}, nil
}

func (f *fakeDashboard) Inventory(_ context.Context, _ string) ([]entity.InventoryPoint, error) {
	f.record("inventory", "")
	return []entity.InventoryPoint{
		{ProductoNombre: "Chorizo", StockActual: 5, StockMinimo: 10},
		{ProductoNombre: "Salame", StockActual: 50, StockMinimo: 10},
	}, nil
}

func (f *fakeDashboard) QualityIssues(_ context.Context, _, tr string) ([]entity.QualityIssue, error) {
	f.record("quality", tr)
	return nil, nil
}

func newUseCase(f *fakeDashboard) *DashboardUseCase {
	return NewDashboardUseCase(f, view.NewComposer(logger.Nop(), nil))
}

func sess(perms ...permission.Permission) *session.Session {
	return session.New("tok", &entity.Profile{Name: "Ana"}, permission.Of(perms...))
}

func TestLoad_SoloPideBloquesPermitidos(t *testing.T) {
	f := &fakeDashboard{}
	page := newUseCase(f).Load(context.Background(), sess(permission.VerResumenDashboard, permission.VerInventariosDashboard), "week")

	assert.True(t, page.State.IsReady())
	assert.Equal(t, map[string]string{"summary": "week", "inventory": ""}, f.calls)
	assert.Equal(t, 2, page.Summary.ActiveAlerts)
	assert.Len(t, page.LowStock(), 1)
	assert.Nil(t, page.Sales)
}

func TestLoad_RangoInvalido_UsaMes(t *testing.T) {
	f := &fakeDashboard{}
	page := newUseCase(f).Load(context.Background(), sess(permission.VerProduccionDashboard), "siglo")

	assert.Equal(t, "month", page.TimeRange)
	assert.Equal(t, "month", f.calls["production"])
}

func TestLoad_UnBloqueFalla_SinDatosParciales(t *testing.T) {
	f := &fakeDashboard{failSale: true}
	page := newUseCase(f).Load(context.Background(), sess(
		permission.VerResumenDashboard, permission.VerProduccionDashboard, permission.VerVentasDashboard,
	), "month")

	assert.True(t, page.State.IsError())
	assert.Equal(t, "Error al cargar los datos del dashboard", page.State.Message)
	assert.True(t, page.Summary.TotalSales.IsZero())
	assert.Nil(t, page.Production)
}

func TestLoad_SinPermisos_NoPideNada(t *testing.T) {
	f := &fakeDashboard{}
	page := newUseCase(f).Load(context.Background(), sess(), "")

	assert.True(t, page.State.IsReady())
	assert.False(t, page.Widgets.Any())
	assert.Empty(t, f.calls)
}
