package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/internal/application/view"
)

// SalesHandler ventas y preventas.
type SalesHandler struct {
	pages
	uc       *usecase.SalesUseCase
	presales *usecase.PresaleUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(p pages, uc *usecase.SalesUseCase, presales *usecase.PresaleUseCase) *SalesHandler {
	return &SalesHandler{pages: p, uc: uc, presales: presales}
}

const (
	salesTitle    = "Ventas"
	presalesTitle = "Preventas"
)

// List GET /ventas?q=&estado=&cliente=&page=
func (h *SalesHandler) List(c *fiber.Ctx) error {
	page := h.uc.Load(c.UserContext(), SessionFrom(c), h.filter(c))
	return h.show(c, "sales", View{Title: salesTitle, Data: page}, page.State)
}

// Create POST /ventas
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.SaleForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	in.Normalize()
	page, res := h.uc.CreateSale(c.UserContext(), SessionFrom(c), in, h.filter(c))
	return h.sale(c, "", in, page, res)
}

// Update POST /ventas/:id
func (h *SalesHandler) Update(c *fiber.Ctx) error {
	var in dto.SaleForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	in.Normalize()
	id := c.Params("id")
	page, res := h.uc.UpdateSale(c.UserContext(), SessionFrom(c), id, in, h.filter(c))
	return h.sale(c, id, in, page, res)
}

// Delete POST /ventas/:id/delete
func (h *SalesHandler) Delete(c *fiber.Ctx) error {
	f := h.filter(c)
	page, res := h.uc.DeleteSale(c.UserContext(), SessionFrom(c), c.Params("id"), f)
	return h.result(c, "sales", View{Title: salesTitle}, res, page, func() any {
		return h.uc.Load(c.UserContext(), SessionFrom(c), f)
	})
}

func (h *SalesHandler) filter(c *fiber.Ctx) dto.SaleFilter {
	var f dto.SaleFilter
	parseQuery(c, &f)
	return f
}

func (h *SalesHandler) sale(c *fiber.Ctx, id string, in dto.SaleForm, page usecase.SalesPage, res view.Result) error {
	v := View{Title: salesTitle, Kind: "venta", Editing: id, Form: in}
	if res.OK() {
		v.Warning = page.Warning
	}
	return h.result(c, "sales", v, res, page, func() any {
		return h.uc.FormOptions(c.UserContext(), SessionFrom(c))
	})
}

// ──── Preventas ────

// Presales GET /preventas?q=&page=
func (h *SalesHandler) Presales(c *fiber.Ctx) error {
	page := h.presales.Load(c.UserContext(), SessionFrom(c), h.listQuery(c))
	return h.show(c, "presales", View{Title: presalesTitle, Data: page}, page.State)
}

// CreatePresale POST /preventas
func (h *SalesHandler) CreatePresale(c *fiber.Ctx) error {
	var in dto.PresaleForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	in.Normalize()
	page, res := h.presales.CreatePresale(c.UserContext(), SessionFrom(c), in, h.listQuery(c))
	v := View{Title: presalesTitle, Kind: "preventa", Form: in}
	return h.result(c, "presales", v, res, page, func() any {
		return h.presales.FormOptions(c.UserContext(), SessionFrom(c))
	})
}

// DeletePresale POST /preventas/:id/delete
func (h *SalesHandler) DeletePresale(c *fiber.Ctx) error {
	q := h.listQuery(c)
	page, res := h.presales.DeletePresale(c.UserContext(), SessionFrom(c), c.Params("id"), q)
	return h.presalesList(c, q, page, res)
}

// ConfirmDelivery POST /preventas/:id/entrega
func (h *SalesHandler) ConfirmDelivery(c *fiber.Ctx) error {
	var in dto.DeliveryForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	in.PreventaID = c.Params("id")
	q := h.listQuery(c)
	page, res := h.presales.ConfirmDelivery(c.UserContext(), SessionFrom(c), in, q)
	return h.presalesList(c, q, page, res)
}

func (h *SalesHandler) presalesList(c *fiber.Ctx, q dto.ListQuery, page usecase.PresalePage, res view.Result) error {
	return h.result(c, "presales", View{Title: presalesTitle}, res, page, func() any {
		return h.presales.Load(c.UserContext(), SessionFrom(c), q)
	})
}

func (h *SalesHandler) listQuery(c *fiber.Ctx) dto.ListQuery {
	var q dto.ListQuery
	parseQuery(c, &q)
	return q
}
