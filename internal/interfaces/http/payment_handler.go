package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
)

// PaymentHandler cobros a clientes y su historial.
type PaymentHandler struct {
	pages
	uc *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(p pages, uc *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{pages: p, uc: uc}
}

const paymentsTitle = "Pagos"

// Show GET /pagos?cliente=
func (h *PaymentHandler) Show(c *fiber.Ctx) error {
	var q dto.PaymentQuery
	parseQuery(c, &q)
	page := h.uc.Load(c.UserContext(), SessionFrom(c), q)
	return h.show(c, "payments", View{Title: paymentsTitle, Data: page}, page.State)
}

// Create POST /pagos
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.PaymentForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	page, res := h.uc.CreatePayment(c.UserContext(), SessionFrom(c), in)
	v := View{Title: paymentsTitle, Kind: "pago", Form: in}
	return h.result(c, "payments", v, res, page, func() any {
		return h.uc.Load(c.UserContext(), SessionFrom(c), dto.PaymentQuery{ClienteID: in.ClienteID})
	})
}
