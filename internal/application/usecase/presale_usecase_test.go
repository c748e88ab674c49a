package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
)

var presaleAdmin = []permission.Permission{
	permission.VerVentas, permission.VerClientes, permission.VerProductos, permission.CrearVenta,
}

// ──────────────────────────────────────────────────────────────────────────────
// Preventas
// ──────────────────────────────────────────────────────────────────────────────

func TestPresaleLoad(t *testing.T) {
	p := &fakePresales{presales: []entity.Presale{
		{ID: "pv1", Cliente: entity.Ref{Name: "Rosa"}, Estado: entity.PreventaPendiente},
		{ID: "pv2", Cliente: entity.Ref{Name: "Juan"}, Estado: entity.PreventaEntregada},
	}}
	s := &fakeSales{}
	page := NewPresaleUseCase(p, s, &fakeCatalog{}, composer()).Load(context.Background(), sessWith(presaleAdmin...), dto.ListQuery{})

	require.True(t, page.State.IsReady())
	assert.Len(t, page.Presales.Items, 2)
	assert.Len(t, page.Pending(), 1)
	assert.Equal(t, 1, s.get("clients"))
}

func TestCreatePresale_CantidadMinima(t *testing.T) {
	p := &fakePresales{}
	_, res := NewPresaleUseCase(p, &fakeSales{}, &fakeCatalog{}, composer()).CreatePresale(context.Background(), sessWith(presaleAdmin...), dto.PresaleForm{
		ClienteID: "c1", FechaEntrega: "2026-11-01",
		Productos: []dto.PresaleLineForm{{Producto: "p1", Cantidad: 5}},
	}, dto.ListQuery{})

	assert.Equal(t, "La cantidad mínima es 10.", res.Violations.Get("productos.0.cantidad"))
	assert.Zero(t, p.total())
}

func TestConfirmDelivery(t *testing.T) {
	p := &fakePresales{}
	_, res := NewPresaleUseCase(p, &fakeSales{}, &fakeCatalog{}, composer()).ConfirmDelivery(context.Background(), sessWith(presaleAdmin...), dto.DeliveryForm{
		PreventaID: "pv1", ClienteID: "c1", FechaEntrega: "2026-11-01", Confirmacion: true,
	}, dto.ListQuery{})

	require.True(t, res.OK())
	assert.Equal(t, "Entrega confirmada exitosamente", res.Success)
	assert.True(t, p.delivery.Confirmacion)
	assert.Equal(t, 1, p.get("presales"), "una sola recarga")
}

func TestDeletePresale_SinPermiso(t *testing.T) {
	p := &fakePresales{}
	_, res := NewPresaleUseCase(p, &fakeSales{}, &fakeCatalog{}, composer()).DeletePresale(context.Background(), sessWith(presaleAdmin...), "pv1", dto.ListQuery{})
	assert.ErrorIs(t, res.Err, domain.ErrForbidden)
	assert.Zero(t, p.total())
}

// ──────────────────────────────────────────────────────────────────────────────
// Pagos
// ──────────────────────────────────────────────────────────────────────────────

var paymentAdmin = []permission.Permission{
	permission.VerClientes, permission.VerPagos, permission.VerVentasPendientes, permission.CrearPago,
}

func TestPaymentLoad_SinClienteSoloListaClientes(t *testing.T) {
	pay, s := &fakePayments{}, &fakeSales{clients: []entity.User{{ID: "c1"}}}
	page := NewPaymentUseCase(pay, s, composer()).Load(context.Background(), sessWith(paymentAdmin...), dto.PaymentQuery{})

	require.True(t, page.State.IsReady())
	assert.Len(t, page.Clients, 1)
	assert.Zero(t, pay.total())
}

func TestPaymentLoad_ConCliente(t *testing.T) {
	pay := &fakePayments{pending: []entity.PendingSale{
		{VentaID: "v1", SaldoVenta: decimal.NewFromInt(100)},
		{VentaID: "v2", SaldoVenta: decimal.RequireFromString("50.5")},
	}}
	s := &fakeSales{clients: []entity.User{{ID: "c1", Name: "Rosa"}}}
	page := NewPaymentUseCase(pay, s, composer()).Load(context.Background(), sessWith(paymentAdmin...), dto.PaymentQuery{ClienteID: "c1"})

	require.True(t, page.State.IsReady())
	assert.True(t, decimal.RequireFromString("150.5").Equal(page.Debt()))
	c, ok := page.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Rosa", c.Name)
	assert.Equal(t, 1, pay.get("payments"))
}

func TestCreatePayment_MontoCero(t *testing.T) {
	pay := &fakePayments{}
	_, res := NewPaymentUseCase(pay, &fakeSales{}, composer()).CreatePayment(context.Background(), sessWith(paymentAdmin...),
		dto.PaymentForm{ClienteID: "c1", Monto: "0", MetodoPago: entity.PagoEfectivo})

	assert.Equal(t, "El monto debe ser mayor que 0.", res.Violations.Get("montoPagado"))
	assert.Zero(t, pay.total())
}

func TestCreatePayment_MuestraElReparto(t *testing.T) {
	pay := &fakePayments{result: entity.PaymentResult{
		Message:        "Pago registrado",
		PagosAplicados: []entity.PendingSale{{VentaID: "v1"}},
	}}
	page, res := NewPaymentUseCase(pay, &fakeSales{}, composer()).CreatePayment(context.Background(), sessWith(paymentAdmin...),
		dto.PaymentForm{ClienteID: "c1", Monto: "120.50", MetodoPago: entity.PagoTransferencia, Ventas: []string{"v1"}})

	require.True(t, res.OK())
	assert.Equal(t, "Pago registrado", res.Success)
	assert.Len(t, page.Applied, 1)
	assert.Equal(t, "c1", page.Query.ClienteID)
	assert.True(t, decimal.RequireFromString("120.5").Equal(pay.last.MontoPagado))
	assert.Equal(t, 1, pay.get("createPayment"))
	assert.Equal(t, 1, pay.get("pending"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestParameterLoad_SinPermisoNoPide(t *testing.T) {
	s := &fakeSales{}
	page := NewParameterUseCase(s, composer()).Load(context.Background(), sessWith())
	assert.True(t, page.State.IsReady())
	assert.Zero(t, s.total())
}

func TestUpdateParameter(t *testing.T) {
	s := &fakeSales{}
	uc := NewParameterUseCase(s, composer())

	_, res := uc.UpdateParameter(context.Background(), sessWith(permission.VerParametros), "x", dto.ParameterForm{Valor: "800"})
	assert.ErrorIs(t, res.Err, domain.ErrForbidden)

	_, res = uc.UpdateParameter(context.Background(), sessWith(permission.VerParametros, permission.ActualizarParametroID), "x", dto.ParameterForm{Valor: "-1"})
	assert.True(t, res.Violations.Has("valor"))

	_, res = uc.UpdateParameter(context.Background(), sessWith(permission.VerParametros, permission.ActualizarParametroID), "x", dto.ParameterForm{Valor: "800"})
	require.True(t, res.OK())
	assert.True(t, decimal.NewFromInt(800).Equal(s.lastParam.Valor))
	assert.Equal(t, 1, s.get("updateParameter"))
	assert.Equal(t, 1, s.get("parameters"))
}
