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

// ProductPage datos de la página de productos y categorías.
type ProductPage struct {
	State      view.State
	Query      dto.ListQuery
	Products   view.Page[entity.Product]
	Categories []entity.Category
}

// ProductUseCase catálogo de productos y categorías.
type ProductUseCase struct {
	api      ports.CatalogService
	composer *view.Composer
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(api ports.CatalogService, composer *view.Composer) *ProductUseCase {
	return &ProductUseCase{api: api, composer: composer}
}

// Load lote {productos, categorías}; filtra por nombre, descripción, SKU o categoría.
func (uc *ProductUseCase) Load(ctx context.Context, sess *session.Session, q dto.ListQuery) ProductPage {
	page := ProductPage{Query: q}
	var products []entity.Product
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerProductos, view.Into("productos", &products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.api.Products(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerCategorias, view.Into("categorias", &page.Categories, func(ctx context.Context) ([]entity.Category, error) {
		return uc.api.Categories(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los productos", tasks...)

	found := view.Search(products, q.Q, func(p entity.Product) []string {
		return []string{p.Nombre, p.Descripcion, p.SKU, p.Categoria.Label()}
	})
	page.Products = view.Paginate(found, q.Page, view.DefaultPerPage)
	return page
}

// Categories opciones del selector de categoría del formulario.
func (uc *ProductUseCase) Categories(ctx context.Context, sess *session.Session) []entity.Category {
	if !sess.Can(permission.VerCategorias) {
		return nil
	}
	cats, err := uc.api.Categories(ctx, sess.Token())
	if err != nil {
		return nil
	}
	return cats
}

// CreateProduct alta de producto.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, sess *session.Session, in dto.ProductForm, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearProducto, "crear productos"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.CreateProduct(ctx, sess.Token(), in.Payload()) },
		Success:  "Producto creado correctamente",
		Fallback: "Error al crear el producto",
	})
}

// UpdateProduct edición de producto.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, sess *session.Session, id string, in dto.ProductForm, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.ActualizarProductoID, "actualizar productos"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateProduct(ctx, sess.Token(), id, in.Payload()) },
		Success:  "Producto actualizado correctamente",
		Fallback: "Error al actualizar el producto",
	})
}

// DeleteProduct baja de producto.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, sess *session.Session, id string, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarProductoID, "eliminar productos"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteProduct(ctx, sess.Token(), id) },
		Success:  "Producto eliminado correctamente",
		Fallback: "Error al eliminar el producto",
	})
}

// CreateCategory alta de categoría.
func (uc *ProductUseCase) CreateCategory(ctx context.Context, sess *session.Session, in dto.CategoryForm, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearCategoria, "crear categorías"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.CreateCategory(ctx, sess.Token(), in.Payload()) },
		Success:  "Categoría creada correctamente",
		Fallback: "Error al crear la categoría",
	})
}

// UpdateCategory edición de categoría.
func (uc *ProductUseCase) UpdateCategory(ctx context.Context, sess *session.Session, id string, in dto.CategoryForm, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.EditarCategoriaID, "editar categorías"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Input:    &in,
		Call:     func(ctx context.Context) error { return uc.api.UpdateCategory(ctx, sess.Token(), id, in.Payload()) },
		Success:  "Categoría actualizada correctamente",
		Fallback: "Error al actualizar la categoría",
	})
}

// DeleteCategory baja de categoría.
func (uc *ProductUseCase) DeleteCategory(ctx context.Context, sess *session.Session, id string, q dto.ListQuery) (ProductPage, view.Result) {
	if res, ok := allowed(sess, permission.EliminarCategoriaID, "eliminar categorías"); !ok {
		return ProductPage{}, res
	}
	return uc.submit(ctx, sess, q, view.Mutation{
		Call:     func(ctx context.Context) error { return uc.api.DeleteCategory(ctx, sess.Token(), id) },
		Success:  "Categoría eliminada correctamente",
		Fallback: "Error al eliminar la categoría",
	})
}

func (uc *ProductUseCase) submit(ctx context.Context, sess *session.Session, q dto.ListQuery, m view.Mutation) (ProductPage, view.Result) {
	var page ProductPage
	m.Refetch = func(ctx context.Context) view.State {
		page = uc.Load(ctx, sess, q)
		return page.State
	}
	res := uc.composer.Submit(ctx, m)
	return page, res
}
