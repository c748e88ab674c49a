package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// SalesPage datos de la página de ventas.
type SalesPage struct {
	State      view.State
	Filter     dto.SaleFilter
	Sales      view.Page[entity.Sale]
	Clients    []entity.User
	Vendors    []entity.User
	Products   []entity.Product
	Batches    []entity.Batch
	Parameters []entity.Parameter
	// Warning advertencia de deuda devuelta al crear la venta.
	Warning string

	all []entity.Sale
}

// DebtLimit tope de deuda por cliente, si el parámetro existe.
func (p SalesPage) DebtLimit() (decimal.Decimal, bool) {
	param, ok := entity.FindParameter(p.Parameters, entity.ParamLimiteDeudasCliente)
	return param.Valor, ok
}

// ClientDebt saldo pendiente del cliente sobre todas las ventas cargadas.
func (p SalesPage) ClientDebt(clienteID string) decimal.Decimal {
	return entity.ClientDebt(p.all, clienteID)
}

// OverDebtLimit indica si el cliente ya supera el tope de deuda.
func (p SalesPage) OverDebtLimit(clienteID string) bool {
	limit, ok := p.DebtLimit()
	return ok && p.ClientDebt(clienteID).GreaterThan(limit)
}

// AvailableBatches lotes disponibles de un producto para asignar a una línea.
func (p SalesPage) AvailableBatches(productoID string) []entity.Batch {
	var out []entity.Batch
	for _, b := range p.Batches {
		if b.Producto.ID == productoID && b.Estado == entity.LoteDisponible && b.CantidadDisponible > 0 {
			out = append(out, b)
		}
	}
	return out
}

// SalesUseCase ventas con sus catálogos auxiliares.
type SalesUseCase struct {
	api      ports.SalesService
	catalog  ports.CatalogService
	stock    ports.InventoryService
	composer *view.Composer
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(api ports.SalesService, catalog ports.CatalogService, stock ports.InventoryService, composer *view.Composer) *SalesUseCase {
	return &SalesUseCase{api: api, catalog: catalog, stock: stock, composer: composer}
}

// Load lote {ventas, clientes, vendedores, productos, lotes, parámetros} y aplica los filtros.
func (uc *SalesUseCase) Load(ctx context.Context, sess *session.Session, f dto.SaleFilter) SalesPage {
	page := SalesPage{Filter: f}
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerVentas, view.Into("ventas", &page.all, func(ctx context.Context) ([]entity.Sale, error) {
		return uc.api.Sales(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.api.Clients(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerVendedores, view.Into("vendedores", &page.Vendors, func(ctx context.Context) ([]entity.User, error) {
		return uc.api.Vendors(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerLotesProduccion, view.Into("lotes", &page.Batches, func(ctx context.Context) ([]entity.Batch, error) {
		return uc.stock.Batches(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerParametros, view.Into("parametros", &page.Parameters, func(ctx context.Context) ([]entity.Parameter, error) {
		return uc.api.Parameters(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar las ventas", tasks...)

	page.Sales = view.Paginate(FilterSales(page.all, f), f.Page, view.DefaultPerPage)
	return page
}

// FilterSales aplica búsqueda (nombre del cliente o id de la venta), estado de
// saldo y cliente.
func FilterSales(sales []entity.Sale, f dto.SaleFilter) []entity.Sale {
	found := view.Search(sales, f.Q, func(s entity.Sale) []string {
		return []string{s.Cliente.Label(), s.ID}
	})
	out := make([]entity.Sale, 0, len(found))
	for _, s := range found {
		switch {
		case f.Estado == dto.FiltroPagadas && !s.Pagada():
			continue
		case f.Estado == dto.FiltroConSaldo && s.Pagada():
			continue
		case f.Cliente != "" && s.Cliente.ID != f.Cliente:
			continue
		}
		out = append(out, s)
	}
	return out
}

// CreateSale registra la venta. El backend puede devolver una advertencia de
// deuda que se muestra junto al mensaje de éxito.
func (uc *SalesUseCase) CreateSale(ctx context.Context, sess *session.Session, in dto.SaleForm, f dto.SaleFilter) (SalesPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearVenta, "crear ventas"); !ok {
		return SalesPage{}, res
	}
	in.Normalize()
	var created entity.SaleCreated
	page, res := uc.submit(ctx, sess, f, view.Mutation{
		Input: &in,
		Check: func() view.Violations { return checkInitialPayment(in) },
		Call: func(ctx context.Context) error {
			var err error
			created, err = uc.api.CreateSale(ctx, sess.Token(), in.Payload(nil))
			return err
		},
		Success:  "Venta creada exitosamente",
		Fallback: "Error al crear la venta",
	})
	if res.OK() {
		if created.Message != "" {
			res.Success = created.Message
		}
		page.Warning = created.AdvertenciaDeuda
	}
	return page, res
}

// UpdateSale edición de una venta.
func (uc *SalesUseCase) UpdateSale(ctx context.Context, sess *session.Session, id string, in dto.SaleForm, f dto.SaleFilter) (SalesPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarVentaID, "actualizar ventas"); !ok {
		return SalesPage{}, res
	}
	in.Normalize()
	return uc.submit(ctx, sess, f, view.Mutation{
		Input:    &in,
		Check:    func() view.Violations { return checkInitialPayment(in) },
		Call:     func(ctx context.Context) error { return uc.api.UpdateSale(ctx, sess.Token(), id, in.Payload(nil)) },
		Success:  "Venta actualizada exitosamente",
		Fallback: "Error al actualizar la venta",
	})
}

// DeleteSale baja de una venta.
func (uc *SalesUseCase) DeleteSale(ctx context.Context, sess *session.Session, id string, f dto.SaleFilter) (SalesPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarVentaID, "eliminar ventas"); !ok {
		return SalesPage{}, res
	}
	return uc.submit(ctx, sess, f, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteSale(ctx, sess.Token(), id) },
		Success:  "Venta eliminada exitosamente",
		Fallback: "Error al eliminar la venta",
	})
}

// FormOptions catálogos para volver a pintar el formulario con errores.
func (uc *SalesUseCase) FormOptions(ctx context.Context, sess *session.Session) SalesPage {
	page := SalesPage{}
	token := sess.Token()
	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.api.Clients(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerVendedores, view.Into("vendedores", &page.Vendors, func(ctx context.Context) ([]entity.User, error) {
		return uc.api.Vendors(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerLotesProduccion, view.Into("lotes", &page.Batches, func(ctx context.Context) ([]entity.Batch, error) {
		return uc.stock.Batches(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar el formulario", tasks...)
	return page
}

// checkInitialPayment el pago inicial no puede superar el total cuando todas
// las líneas traen precio.
func checkInitialPayment(in dto.SaleForm) view.Violations {
	v := view.Violations{}
	if in.PagoInicial == "" || len(in.Productos) == 0 {
		return v
	}
	for _, l := range in.Productos {
		if l.PrecioUnitario == "" {
			return v
		}
	}
	total := entity.SaleTotal(in.Lines(nil))
	if dto.Decimal(in.PagoInicial).GreaterThan(total) {
		v.Add("pagoInicial", "El pago inicial no puede ser mayor que el total de la venta.")
	}
	return v
}

func (uc *SalesUseCase) submit(ctx context.Context, sess *session.Session, f dto.SaleFilter, m view.Mutation) (SalesPage, view.Result) {
	var page SalesPage
	m.Refetch = func(ctx context.Context) view.State {
		page = uc.Load(ctx, sess, f)
		return page.State
	}
	res := uc.composer.Submit(ctx, m)
	return page, res
}
