package usecase

import (
	"context"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// PresalePage datos de la página de preventas.
type PresalePage struct {
	State    view.State
	Query    dto.ListQuery
	Presales view.Page[entity.Presale]
	Clients  []entity.User
	Products []entity.Product
}

// Pending preventas aún por entregar, de la página actual.
func (p PresalePage) Pending() []entity.Presale {
	var out []entity.Presale
	for _, ps := range p.Presales.Items {
		if ps.Estado == entity.PreventaPendiente {
			out = append(out, ps)
		}
	}
	return out
}

// PresaleUseCase pedidos anticipados. Usa los permisos de ventas.
type PresaleUseCase struct {
	api      ports.PresaleService
	sales    ports.SalesService
	catalog  ports.CatalogService
	composer *view.Composer
}

// NewPresaleUseCase construye el caso de uso.
func NewPresaleUseCase(api ports.PresaleService, sales ports.SalesService, catalog ports.CatalogService, composer *view.Composer) *PresaleUseCase {
	return &PresaleUseCase{api: api, sales: sales, catalog: catalog, composer: composer}
}

// Load lote {preventas, clientes, productos}.
func (uc *PresaleUseCase) Load(ctx context.Context, sess *session.Session, q dto.ListQuery) PresalePage {
	page := PresalePage{Query: q}
	var presales []entity.Presale
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerVentas, view.Into("preventas", &presales, func(ctx context.Context) ([]entity.Presale, error) {
		return uc.api.Presales(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.sales.Clients(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar las preventas", tasks...)

	found := view.Search(presales, q.Q, func(p entity.Presale) []string {
		return []string{p.Cliente.Label(), p.Estado, p.ID}
	})
	page.Presales = view.Paginate(found, q.Page, view.DefaultPerPage)
	return page
}

// FormOptions clientes y productos para volver a pintar el formulario.
func (uc *PresaleUseCase) FormOptions(ctx context.Context, sess *session.Session) PresalePage {
	page := PresalePage{}
	token := sess.Token()
	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.sales.Clients(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar el formulario", tasks...)
	return page
}

// CreatePresale alta de preventa.
func (uc *PresaleUseCase) CreatePresale(ctx context.Context, sess *session.Session, in dto.PresaleForm, q dto.ListQuery) (PresalePage, view.Result) {
	if res, ok := allowed(sess, permission.CrearVenta, "crear preventas"); !ok {
		return PresalePage{}, res
	}
	in.Normalize()
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.CreatePresale(ctx, sess.Token(), in.Payload()) },
		Success:  "Preventa creada exitosamente",
		Fallback: "Error al crear la preventa",
	})
}

// DeletePresale baja de preventa.
func (uc *PresaleUseCase) DeletePresale(ctx context.Context, sess *session.Session, id string, q dto.ListQuery) (PresalePage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarVentaID, "eliminar preventas"); !ok {
		return PresalePage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeletePresale(ctx, sess.Token(), id) },
		Success:  "Preventa eliminada exitosamente",
		Fallback: "Error al eliminar la preventa",
	})
}

// ConfirmDelivery confirma (genera la venta) o cancela la entrega.
func (uc *PresaleUseCase) ConfirmDelivery(ctx context.Context, sess *session.Session, in dto.DeliveryForm, q dto.ListQuery) (PresalePage, view.Result) {
	if res, ok := allowed(sess, permission.CrearVenta, "confirmar entregas"); !ok {
		return PresalePage{}, res
	}
	success := "Entrega cancelada"
	if in.Confirmacion {
		success = "Entrega confirmada exitosamente"
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.ConfirmDelivery(ctx, sess.Token(), in.Payload()) },
		Success:  success,
		Fallback: "Error al procesar la entrega",
	})
}

func (uc *PresaleUseCase) submit(ctx context.Context, sess *session.Session, q dto.ListQuery, m view.Mutation) (PresalePage, view.Result) {
	var page PresalePage
	m.Refetch = func(ctx context.Context) view.State {
		page = uc.Load(ctx, sess, q)
		return page.State
	}
	res := uc.composer.Submit(ctx, m)
	return page, res
}
