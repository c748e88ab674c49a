package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/internal/application/view"
)

// ProductHandler catálogo de productos y categorías.
type ProductHandler struct {
	pages
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(p pages, uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{pages: p, uc: uc}
}

const productsTitle = "Productos"

// List GET /products?q=&page=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := h.uc.Load(c.UserContext(), SessionFrom(c), h.query(c))
	return h.show(c, "products", View{Title: productsTitle, Data: page}, page.State)
}

// Create POST /products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	page, res := h.uc.CreateProduct(c.UserContext(), SessionFrom(c), in, h.query(c))
	return h.product(c, "", in, page, res)
}

// Update POST /products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id := c.Params("id")
	page, res := h.uc.UpdateProduct(c.UserContext(), SessionFrom(c), id, in, h.query(c))
	return h.product(c, id, in, page, res)
}

// Delete POST /products/:id/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	page, res := h.uc.DeleteProduct(c.UserContext(), SessionFrom(c), c.Params("id"), h.query(c))
	return h.deleted(c, page, res)
}

// CreateCategory POST /products/categorias
func (h *ProductHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	page, res := h.uc.CreateCategory(c.UserContext(), SessionFrom(c), in, h.query(c))
	return h.category(c, "", in, page, res)
}

// UpdateCategory POST /products/categorias/:id
func (h *ProductHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id := c.Params("id")
	page, res := h.uc.UpdateCategory(c.UserContext(), SessionFrom(c), id, in, h.query(c))
	return h.category(c, id, in, page, res)
}

// DeleteCategory POST /products/categorias/:id/delete
func (h *ProductHandler) DeleteCategory(c *fiber.Ctx) error {
	page, res := h.uc.DeleteCategory(c.UserContext(), SessionFrom(c), c.Params("id"), h.query(c))
	return h.deleted(c, page, res)
}

func (h *ProductHandler) query(c *fiber.Ctx) dto.ListQuery {
	var q dto.ListQuery
	parseQuery(c, &q)
	return q
}

func (h *ProductHandler) product(c *fiber.Ctx, id string, in dto.ProductForm, page usecase.ProductPage, res view.Result) error {
	v := View{Title: productsTitle, Kind: "producto", Editing: id, Form: in}
	return h.result(c, "products", v, res, page, func() any {
		return usecase.ProductPage{Categories: h.uc.Categories(c.UserContext(), SessionFrom(c))}
	})
}

func (h *ProductHandler) category(c *fiber.Ctx, id string, in dto.CategoryForm, page usecase.ProductPage, res view.Result) error {
	v := View{Title: productsTitle, Kind: "categoria", Editing: id, Form: in}
	return h.result(c, "products", v, res, page, func() any { return usecase.ProductPage{} })
}

func (h *ProductHandler) deleted(c *fiber.Ctx, page usecase.ProductPage, res view.Result) error {
	return h.result(c, "products", View{Title: productsTitle}, res, page, func() any {
		return h.uc.Load(c.UserContext(), SessionFrom(c), h.query(c))
	})
}
