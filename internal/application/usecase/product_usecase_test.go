package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// calls cuenta las llamadas al backend por operación.
type calls struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *calls) hit(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = map[string]int{}
	}
	c.n[name]++
}

func (c *calls) get(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[name]
}

func (c *calls) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := 0
	for _, v := range c.n {
		t += v
	}
	return t
}

func composer() *view.Composer { return view.NewComposer(logger.Nop(), nil) }

func sessWith(perms ...permission.Permission) *session.Session {
	return session.New("tok", &entity.Profile{ID: "u1", Name: "Ana"}, permission.Of(perms...))
}

type fakeCatalog struct {
	calls
	products  []entity.Product
	createErr error
}

func (f *fakeCatalog) Products(context.Context, string) ([]entity.Product, error) {
	f.hit("products")
	return f.products, nil
}

func (f *fakeCatalog) CreateProduct(context.Context, string, dto.ProductPayload) error {
	f.hit("createProduct")
	return f.createErr
}

func (f *fakeCatalog) UpdateProduct(context.Context, string, string, dto.ProductPayload) error {
	f.hit("updateProduct")
	return nil
}

func (f *fakeCatalog) DeleteProduct(context.Context, string, string) error {
	f.hit("deleteProduct")
	return nil
}

func (f *fakeCatalog) Categories(context.Context, string) ([]entity.Category, error) {
	f.hit("categories")
	return []entity.Category{{ID: "c1", Nombre: "Chorizos"}}, nil
}

func (f *fakeCatalog) CreateCategory(context.Context, string, entity.Category) error {
	f.hit("createCategory")
	return nil
}

func (f *fakeCatalog) UpdateCategory(context.Context, string, string, entity.Category) error {
	f.hit("updateCategory")
	return nil
}

func (f *fakeCatalog) DeleteCategory(context.Context, string, string) error {
	f.hit("deleteCategory")
	return nil
}

func validProduct() dto.ProductForm {
	return dto.ProductForm{
		Nombre: "Chorizo parrillero", Categoria: "c1", PrecioVenta: "45", Costo: "30",
		UnidadMedida: entity.UnidadKilogramos, DiasExpiracion: 20,
	}
}

var catalogAdmin = []permission.Permission{
	permission.VerProductos, permission.VerCategorias, permission.CrearProducto,
	permission.EliminarProductoID, permission.CrearCategoria,
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestProductLoad_BuscaSinDistinguirMayusculas(t *testing.T) {
	f := &fakeCatalog{products: []entity.Product{
		{ID: "1", Nombre: "Producto A", PrecioVenta: decimal.NewFromInt(10)},
		{ID: "2", Nombre: "Lote X"},
	}}
	uc := NewProductUseCase(f, composer())

	page := uc.Load(context.Background(), sessWith(catalogAdmin...), dto.ListQuery{Q: "prod"})

	require.True(t, page.State.IsReady())
	require.Len(t, page.Products.Items, 1)
	assert.Equal(t, "Producto A", page.Products.Items[0].Nombre)
	assert.Len(t, page.Categories, 1)
}

func TestProductLoad_SinPermisoDeCategorias_NoLasPide(t *testing.T) {
	f := &fakeCatalog{}
	NewProductUseCase(f, composer()).Load(context.Background(), sessWith(permission.VerProductos), dto.ListQuery{})
	assert.Equal(t, 1, f.get("products"))
	assert.Zero(t, f.get("categories"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_NombreVacio_SinPeticiones(t *testing.T) {
	f := &fakeCatalog{}
	in := validProduct()
	in.Nombre = ""

	_, res := NewProductUseCase(f, composer()).CreateProduct(context.Background(), sessWith(catalogAdmin...), in, dto.ListQuery{})

	assert.False(t, res.OK())
	assert.True(t, res.Violations.Has("nombre"))
	assert.Zero(t, f.total())
}

func TestCreateProduct_Valido_UnaLlamadaYUnaRecarga(t *testing.T) {
	f := &fakeCatalog{products: []entity.Product{{ID: "1", Nombre: "Chorizo parrillero"}}}

	page, res := NewProductUseCase(f, composer()).CreateProduct(context.Background(), sessWith(catalogAdmin...), validProduct(), dto.ListQuery{})

	require.True(t, res.OK())
	assert.Equal(t, "Producto creado correctamente", res.Success)
	assert.Equal(t, 1, f.get("createProduct"))
	assert.Equal(t, 1, f.get("products"), "una sola recarga")
	assert.Equal(t, 1, f.get("categories"))
	assert.Len(t, page.Products.Items, 1)
}

func TestCreateProduct_ErrorDelServidor_SinRecarga(t *testing.T) {
	f := &fakeCatalog{createErr: &domain.APIError{Status: 400, Message: "El SKU ya existe"}}

	_, res := NewProductUseCase(f, composer()).CreateProduct(context.Background(), sessWith(catalogAdmin...), validProduct(), dto.ListQuery{})

	assert.Equal(t, "El SKU ya existe", res.Message)
	assert.Zero(t, f.get("products"))
}

func TestCreateProduct_SinPermiso_NoLlamaAlBackend(t *testing.T) {
	f := &fakeCatalog{}
	_, res := NewProductUseCase(f, composer()).CreateProduct(context.Background(), sessWith(permission.VerProductos), validProduct(), dto.ListQuery{})

	assert.ErrorIs(t, res.Err, domain.ErrForbidden)
	assert.Equal(t, "No tienes permiso para crear productos.", res.Message)
	assert.Zero(t, f.total())
}

func TestDeleteCategory_SinPermiso(t *testing.T) {
	f := &fakeCatalog{}
	_, res := NewProductUseCase(f, composer()).DeleteCategory(context.Background(), sessWith(catalogAdmin...), "c1", dto.ListQuery{})
	assert.ErrorIs(t, res.Err, domain.ErrForbidden)
	assert.Zero(t, f.get("deleteCategory"))
}
