// Package analytics contiene el caso de uso del dashboard: tarjetas de resumen y
// gráficos de producción, ventas, inventario y calidad.
package analytics

import (
	"context"

	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// DefaultRange rango cuando no se indica uno válido.
const DefaultRange = entity.RangoMes

// Ranges rangos seleccionables con su etiqueta.
var Ranges = []struct{ Value, Label string }{
	{entity.RangoDia, "Hoy"},
	{entity.RangoSemana, "Esta semana"},
	{entity.RangoMes, "Este mes"},
	{entity.RangoAnio, "Este año"},
}

// Widgets qué bloques del dashboard puede ver la sesión.
type Widgets struct {
	Summary    bool
	Production bool
	Sales      bool
	Inventory  bool
	Quality    bool
}

// Any indica si hay al menos un bloque visible.
func (w Widgets) Any() bool {
	return w.Summary || w.Production || w.Sales || w.Inventory || w.Quality
}

// WidgetsFor bloques visibles según los permisos.
func WidgetsFor(sess *session.Session) Widgets {
	return Widgets{
		Summary:    sess.Can(permission.VerResumenDashboard),
		Production: sess.Can(permission.VerProduccionDashboard),
		Sales:      sess.Can(permission.VerVentasDashboard),
		Inventory:  sess.Can(permission.VerInventariosDashboard),
		Quality:    sess.Can(permission.VerAlertasDashboard),
	}
}

// DashboardPage datos de la página del dashboard.
type DashboardPage struct {
	State      view.State
	TimeRange  string
	Widgets    Widgets
	Summary    entity.DashboardSummary
	Production []entity.ProductionPoint
	Sales      []entity.SalesPoint
	Inventory  []entity.InventoryPoint
	Quality    []entity.QualityIssue
}

// LowStock productos del gráfico de inventario por debajo de su mínimo.
func (p DashboardPage) LowStock() []entity.InventoryPoint {
	var out []entity.InventoryPoint
	for _, i := range p.Inventory {
		if i.StockMinimo > 0 && i.StockActual < i.StockMinimo {
			out = append(out, i)
		}
	}
	return out
}

// DashboardUseCase arma el dashboard en un solo lote.
type DashboardUseCase struct {
	api      ports.DashboardService
	composer *view.Composer
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(api ports.DashboardService, composer *view.Composer) *DashboardUseCase {
	return &DashboardUseCase{api: api, composer: composer}
}

// Load pide solo los bloques que la sesión puede ver, todos en paralelo.
// Si alguno falla la página queda en error sin datos parciales.
func (uc *DashboardUseCase) Load(ctx context.Context, sess *session.Session, timeRange string) DashboardPage {
	page := DashboardPage{TimeRange: normalizeRange(timeRange), Widgets: WidgetsFor(sess)}
	token, tr := sess.Token(), page.TimeRange

	var tasks []view.Task
	if page.Widgets.Summary {
		tasks = append(tasks, view.Into("summary", &page.Summary, func(ctx context.Context) (entity.DashboardSummary, error) {
			return uc.api.Summary(ctx, token, tr)
		}))
	}
	if page.Widgets.Production {
		tasks = append(tasks, view.Into("production", &page.Production, func(ctx context.Context) ([]entity.ProductionPoint, error) {
			return uc.api.Production(ctx, token, tr)
		}))
	}
	if page.Widgets.Sales {
		tasks = append(tasks, view.Into("sales", &page.Sales, func(ctx context.Context) ([]entity.SalesPoint, error) {
			return uc.api.Sales(ctx, token, tr)
		}))
	}
	if page.Widgets.Inventory {
		tasks = append(tasks, view.Into("inventory", &page.Inventory, func(ctx context.Context) ([]entity.InventoryPoint, error) {
			return uc.api.Inventory(ctx, token)
		}))
	}
	if page.Widgets.Quality {
		tasks = append(tasks, view.Into("quality", &page.Quality, func(ctx context.Context) ([]entity.QualityIssue, error) {
			return uc.api.QualityIssues(ctx, token, tr)
		}))
	}

	page.State = uc.composer.Load(ctx, "Error al cargar los datos del dashboard", tasks...)
	return page
}

func normalizeRange(r string) string {
	for _, opt := range Ranges {
		if opt.Value == r {
			return r
		}
	}
	return DefaultRange
}
