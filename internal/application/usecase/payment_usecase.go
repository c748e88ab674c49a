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

// PaymentPage datos de la página de pagos.
type PaymentPage struct {
	State    view.State
	Query    dto.PaymentQuery
	Clients  []entity.User
	Pending  []entity.PendingSale
	Payments []entity.Payment
	// Applied ventas a las que se aplicó el último pago registrado.
	Applied []entity.PendingSale
}

// Debt saldo pendiente total del cliente seleccionado.
func (p PaymentPage) Debt() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.Pending {
		total = total.Add(s.SaldoVenta)
	}
	return total
}

// Selected cliente elegido, si está en la lista.
func (p PaymentPage) Selected() (entity.User, bool) {
	for _, c := range p.Clients {
		if c.ID == p.Query.ClienteID {
			return c, true
		}
	}
	return entity.User{}, false
}

// PaymentUseCase cobros a clientes.
type PaymentUseCase struct {
	api      ports.PaymentService
	sales    ports.SalesService
	composer *view.Composer
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(api ports.PaymentService, sales ports.SalesService, composer *view.Composer) *PaymentUseCase {
	return &PaymentUseCase{api: api, sales: sales, composer: composer}
}

// Load lote {clientes}; con un cliente elegido, segundo lote {pendientes, pagos}.
func (uc *PaymentUseCase) Load(ctx context.Context, sess *session.Session, q dto.PaymentQuery) PaymentPage {
	page := PaymentPage{Query: q}
	token := sess.Token()

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.sales.Clients(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los clientes", tasks...)
	if !page.State.IsReady() || q.ClienteID == "" {
		return page
	}

	var detail []view.Task
	detail = when(detail, sess, permission.VerVentasPendientes, view.Into("pendientes", &page.Pending, func(ctx context.Context) ([]entity.PendingSale, error) {
		return uc.api.PendingSales(ctx, token, q.ClienteID)
	}))
	detail = when(detail, sess, permission.VerPagos, view.Into("pagos", &page.Payments, func(ctx context.Context) ([]entity.Payment, error) {
		return uc.api.Payments(ctx, token, q.ClienteID)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los pagos del cliente", detail...)
	return page
}

// CreatePayment registra un pago; el backend lo reparte entre las ventas
// pendientes (o las indicadas).
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, sess *session.Session, in dto.PaymentForm) (PaymentPage, view.Result) {
	if res, ok := allowed(sess, permission.CrearPago, "registrar pagos"); !ok {
		return PaymentPage{}, res
	}
	var (
		page   PaymentPage
		result entity.PaymentResult
	)
	res := uc.composer.Submit(ctx, view.Mutation{
		Input: &in,
		Call: func(ctx context.Context) error {
			var err error
			result, err = uc.api.CreatePayment(ctx, sess.Token(), in.Payload())
			return err
		},
		Refetch: func(ctx context.Context) view.State {
			page = uc.Load(ctx, sess, dto.PaymentQuery{ClienteID: in.ClienteID})
			return page.State
		},
		Success:  "Pago registrado exitosamente",
		Fallback: "Error al registrar el pago",
	})
	if res.OK() {
		if result.Message != "" {
			res.Success = result.Message
		}
		page.Applied = result.PagosAplicados
	}
	return page, res
}
