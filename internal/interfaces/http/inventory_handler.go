package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/internal/application/view"
)

// InventoryHandler pestañas de stock, lotes, movimientos y alertas.
type InventoryHandler struct {
	pages
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(p pages, uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{pages: p, uc: uc}
}

const inventoryTitle = "Inventario"

// Show GET /inventario?tab=&q=&page=
func (h *InventoryHandler) Show(c *fiber.Ctx) error {
	page := h.uc.Load(c.UserContext(), SessionFrom(c), h.query(c))
	return h.show(c, "inventory", View{Title: inventoryTitle, Data: page}, page.State)
}

// UpdateStock POST /inventario/stock/:productoId
func (h *InventoryHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.StockForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	in.ProductoID = c.Params("productoId")
	q := h.query(c)
	page, res := h.uc.UpdateStock(c.UserContext(), SessionFrom(c), in, q)
	return h.form(c, "stock", in.ProductoID, in, q, page, res)
}

// DeleteStock POST /inventario/stock/:productoId/delete
func (h *InventoryHandler) DeleteStock(c *fiber.Ctx) error {
	q := h.query(c)
	page, res := h.uc.DeleteStock(c.UserContext(), SessionFrom(c), c.Params("productoId"), q)
	return h.deleted(c, q, page, res)
}

// CreateBatch POST /inventario/lotes
func (h *InventoryHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.BatchForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	q := h.query(c)
	page, res := h.uc.CreateBatch(c.UserContext(), SessionFrom(c), in, q)
	return h.form(c, "lote", "", in, q, page, res)
}

// UpdateBatch POST /inventario/lotes/:id
func (h *InventoryHandler) UpdateBatch(c *fiber.Ctx) error {
	var in dto.BatchForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id, q := c.Params("id"), h.query(c)
	page, res := h.uc.UpdateBatch(c.UserContext(), SessionFrom(c), id, in, q)
	return h.form(c, "lote", id, in, q, page, res)
}

// DeleteBatch POST /inventario/lotes/:id/delete
func (h *InventoryHandler) DeleteBatch(c *fiber.Ctx) error {
	q := h.query(c)
	page, res := h.uc.DeleteBatch(c.UserContext(), SessionFrom(c), c.Params("id"), q)
	return h.deleted(c, q, page, res)
}

// CreateMovement POST /inventario/movimientos
func (h *InventoryHandler) CreateMovement(c *fiber.Ctx) error {
	var in dto.MovementForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	q := h.query(c)
	page, res := h.uc.CreateMovement(c.UserContext(), SessionFrom(c), in, q)
	return h.form(c, "movimiento", "", in, q, page, res)
}

// UpdateMovement POST /inventario/movimientos/:id
func (h *InventoryHandler) UpdateMovement(c *fiber.Ctx) error {
	var in dto.MovementForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id, q := c.Params("id"), h.query(c)
	page, res := h.uc.UpdateMovement(c.UserContext(), SessionFrom(c), id, in, q)
	return h.form(c, "movimiento", id, in, q, page, res)
}

// DeleteMovement POST /inventario/movimientos/:id/delete
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	q := h.query(c)
	page, res := h.uc.DeleteMovement(c.UserContext(), SessionFrom(c), c.Params("id"), q)
	return h.deleted(c, q, page, res)
}

// GenerateAlerts POST /inventario/alertas/generar
func (h *InventoryHandler) GenerateAlerts(c *fiber.Ctx) error {
	q := h.query(c)
	q.Tab = dto.TabAlertas
	page, res := h.uc.GenerateAlerts(c.UserContext(), SessionFrom(c), q)
	return h.deleted(c, q, page, res)
}

func (h *InventoryHandler) query(c *fiber.Ctx) dto.InventoryQuery {
	var q dto.InventoryQuery
	parseQuery(c, &q)
	if q.Tab == "" {
		q.Tab = dto.TabStock
	}
	return q
}

// form repinta el formulario kind con los productos como opciones.
func (h *InventoryHandler) form(c *fiber.Ctx, kind, id string, in any, q dto.InventoryQuery, page usecase.InventoryPage, res view.Result) error {
	v := View{Title: inventoryTitle, Kind: kind, Editing: id, Form: in}
	return h.result(c, "inventory", v, res, page, func() any {
		return usecase.InventoryPage{Query: q, Products: h.uc.Products(c.UserContext(), SessionFrom(c))}
	})
}

func (h *InventoryHandler) deleted(c *fiber.Ctx, q dto.InventoryQuery, page usecase.InventoryPage, res view.Result) error {
	return h.result(c, "inventory", View{Title: inventoryTitle}, res, page, func() any {
		return h.uc.Load(c.UserContext(), SessionFrom(c), q)
	})
}
