package usecase

import (
	"context"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/inventory"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// InventoryPage datos de la página de inventario.
type InventoryPage struct {
	State         view.State
	Query         dto.InventoryQuery
	Stocks        view.Page[entity.Stock]
	Batches       view.Page[entity.Batch]
	Movements     view.Page[entity.Movement]
	Alerts        []entity.Alert
	Products      []entity.Product
	Replenishment []inventory.Suggestion
}

// InventoryUseCase stock, lotes de producción, movimientos y alertas.
type InventoryUseCase struct {
	api      ports.InventoryService
	catalog  ports.CatalogService
	composer *view.Composer
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(api ports.InventoryService, catalog ports.CatalogService, composer *view.Composer) *InventoryUseCase {
	return &InventoryUseCase{api: api, catalog: catalog, composer: composer}
}

// Load lote {stock, lotes, movimientos, alertas, productos}. La búsqueda se
// aplica a la pestaña activa.
func (uc *InventoryUseCase) Load(ctx context.Context, sess *session.Session, q dto.InventoryQuery) InventoryPage {
	if q.Tab == "" {
		q.Tab = dto.TabStock
	}
	page := InventoryPage{Query: q}
	token := sess.Token()

	var (
		stocks    []entity.Stock
		batches   []entity.Batch
		movements []entity.Movement
	)
	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerStock, view.Into("stock", &stocks, func(ctx context.Context) ([]entity.Stock, error) {
		return uc.api.Stocks(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerLotesProduccion, view.Into("lotes", &batches, func(ctx context.Context) ([]entity.Batch, error) {
		return uc.api.Batches(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerMovimientosInventario, view.Into("movimientos", &movements, func(ctx context.Context) ([]entity.Movement, error) {
		return uc.api.Movements(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerAlertas, view.Into("alertas", &page.Alerts, func(ctx context.Context) ([]entity.Alert, error) {
		return uc.api.Alerts(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar el inventario", tasks...)

	term := func(tab string) string {
		if q.Tab == tab {
			return q.Q
		}
		return ""
	}
	pageOf := func(tab string) int {
		if q.Tab == tab {
			return q.Page
		}
		return 1
	}
	page.Stocks = view.Paginate(view.Search(stocks, term(dto.TabStock), func(s entity.Stock) []string {
		return []string{s.Producto.Label()}
	}), pageOf(dto.TabStock), view.DefaultPerPage)
	page.Batches = view.Paginate(view.Search(batches, term(dto.TabLotes), func(b entity.Batch) []string {
		return []string{b.CodigoLote, b.Producto.Label(), b.UbicacionLote, b.Estado}
	}), pageOf(dto.TabLotes), view.DefaultPerPage)
	page.Movements = view.Paginate(view.Search(movements, term(dto.TabMovimientos), func(m entity.Movement) []string {
		return []string{m.Producto.Label(), m.Tipo, m.Razon, m.Lote.Label()}
	}), pageOf(dto.TabMovimientos), view.DefaultPerPage)
	page.Replenishment = inventory.Replenishment(stocks, page.Products, batches)
	return page
}

// Products opciones del selector de producto de los formularios.
func (uc *InventoryUseCase) Products(ctx context.Context, sess *session.Session) []entity.Product {
	if !sess.Can(permission.VerProductos) {
		return nil
	}
	products, err := uc.catalog.Products(ctx, sess.Token())
	if err != nil {
		return nil
	}
	return products
}

// UpdateStock ajusta las existencias de un producto.
func (uc *InventoryUseCase) UpdateStock(ctx context.Context, sess *session.Session, in dto.StockForm, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.EditarStockID, "editar el stock"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateStock(ctx, sess.Token(), in.ProductoID, in.Payload()) },
		Success:  "Stock actualizado exitosamente",
		Fallback: "Error al actualizar el stock",
	})
}

// DeleteStock elimina el registro de stock de un producto.
func (uc *InventoryUseCase) DeleteStock(ctx context.Context, sess *session.Session, productoID string, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarStockID, "eliminar el stock"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteStock(ctx, sess.Token(), productoID) },
		Success:  "Stock eliminado exitosamente",
		Fallback: "Error al eliminar el stock",
	})
}

// CreateBatch alta de lote de producción.
func (uc *InventoryUseCase) CreateBatch(ctx context.Context, sess *session.Session, in dto.BatchForm, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearLoteProduccion, "crear lotes de producción"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.CreateBatch(ctx, sess.Token(), in.Payload()) },
		Success:  "Lote de producción creado exitosamente",
		Fallback: "Error al crear el lote de producción",
	})
}

// UpdateBatch edición de lote de producción.
func (uc *InventoryUseCase) UpdateBatch(ctx context.Context, sess *session.Session, id string, in dto.BatchForm, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarLoteProduccionID, "actualizar lotes de producción"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateBatch(ctx, sess.Token(), id, in.Payload()) },
		Success:  "Lote de producción actualizado exitosamente",
		Fallback: "Error al actualizar el lote de producción",
	})
}

// DeleteBatch baja de lote de producción.
func (uc *InventoryUseCase) DeleteBatch(ctx context.Context, sess *session.Session, id string, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarLoteProduccionID, "eliminar lotes de producción"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteBatch(ctx, sess.Token(), id) },
		Success:  "Lote de producción eliminado exitosamente",
		Fallback: "Error al eliminar el lote de producción",
	})
}

// CreateMovement registra un movimiento de inventario.
func (uc *InventoryUseCase) CreateMovement(ctx context.Context, sess *session.Session, in dto.MovementForm, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearMovimientoInventario, "registrar movimientos"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.CreateMovement(ctx, sess.Token(), in.Payload()) },
		Success:  "Movimiento registrado exitosamente",
		Fallback: "Error al registrar el movimiento",
	})
}

// UpdateMovement edición de un movimiento.
func (uc *InventoryUseCase) UpdateMovement(ctx context.Context, sess *session.Session, id string, in dto.MovementForm, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarMovimientoInventarioID, "actualizar movimientos"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateMovement(ctx, sess.Token(), id, in.Payload()) },
		Success:  "Movimiento actualizado exitosamente",
		Fallback: "Error al actualizar el movimiento",
	})
}

// DeleteMovement baja de un movimiento.
func (uc *InventoryUseCase) DeleteMovement(ctx context.Context, sess *session.Session, id string, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarMovimientoInventarioID, "eliminar movimientos"); !ok {
		return InventoryPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteMovement(ctx, sess.Token(), id) },
		Success:  "Movimiento eliminado exitosamente",
		Fallback: "Error al eliminar el movimiento",
	})
}

// GenerateAlerts pide al backend recalcular las alertas de stock y vencimiento.
func (uc *InventoryUseCase) GenerateAlerts(ctx context.Context, sess *session.Session, q dto.InventoryQuery) (InventoryPage, view.Result) {
	if res, ok := allowed(sess, permission.GenerarAlertas, "generar alertas"); !ok {
		return InventoryPage{}, res
	}
	q.Tab = dto.TabAlertas
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.GenerateAlerts(ctx, sess.Token()) },
		Success:  "Alertas generadas exitosamente",
		Fallback: "Error al generar las alertas",
	})
}

func (uc *InventoryUseCase) submit(ctx context.Context, sess *session.Session, q dto.InventoryQuery, m view.Mutation) (InventoryPage, view.Result) {
	var page InventoryPage
	m.Refetch = func(ctx context.Context) view.State {
		page = uc.Load(ctx, sess, q)
		return page.State
	}
	res := uc.composer.Submit(ctx, m)
	return page, res
}
