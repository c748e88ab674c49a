package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

// reportPermission permiso requerido por cada tipo de reporte.
var reportPermission = map[string]permission.Permission{
	dto.ReporteProductos:         permission.VerReportesProductos,
	dto.ReporteClientes:          permission.VerReportesClientes,
	dto.ReporteClienteEspecifico: permission.VerReportesClientesEspecificos,
	dto.ReporteDeudasVendedor:    permission.VerReportesDeudasPorVendedor,
}

// ReportTypes tipos de reporte en el orden del selector.
var ReportTypes = []string{
	dto.ReporteProductos, dto.ReporteClientes, dto.ReporteClienteEspecifico, dto.ReporteDeudasVendedor,
}

// ReportPage datos de la página de reportes. Solo uno de los reportes viene
// cargado, el del tipo elegido.
type ReportPage struct {
	State      view.State
	Filter     dto.ReportFilter
	Violations view.Violations
	Types      []string
	Clients    []entity.User
	Vendors    []entity.User

	Products    *entity.ProductReport
	ClientsRep  *entity.ClientReport
	Statement   *entity.ClientStatement
	VendorDebts *entity.VendorDebtReport
}

// Client cliente seleccionado para el estado de cuenta.
func (p ReportPage) Client() entity.User {
	for _, c := range p.Clients {
		if c.ID == p.Filter.ClienteID {
			return c
		}
	}
	return entity.User{ID: p.Filter.ClienteID}
}

// ReportUseCase reportes de productos, clientes y deudas.
type ReportUseCase struct {
	api      ports.ReportService
	sales    ports.SalesService
	payments ports.PaymentService
	docs     ports.DocumentRenderer
	composer *view.Composer
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(api ports.ReportService, sales ports.SalesService, payments ports.PaymentService, docs ports.DocumentRenderer, composer *view.Composer) *ReportUseCase {
	return &ReportUseCase{api: api, sales: sales, payments: payments, docs: docs, composer: composer}
}

// AvailableTypes tipos de reporte que la sesión puede ver.
func AvailableTypes(sess *session.Session) []string {
	var out []string
	for _, t := range ReportTypes {
		if sess.Can(reportPermission[t]) {
			out = append(out, t)
		}
	}
	return out
}

// Load lote {clientes, vendedores} más el reporte elegido. Con filtros
// inválidos solo se cargan los selectores.
func (uc *ReportUseCase) Load(ctx context.Context, sess *session.Session, f dto.ReportFilter) ReportPage {
	if f.Filtro == "" {
		f.Filtro = dto.FiltroMes
	}
	page := ReportPage{Filter: f, Types: AvailableTypes(sess)}
	token := sess.Token()

	page.Violations = view.Validate(&f)
	page.Violations.Merge(f.Check())

	var tasks []view.Task
	tasks = when(tasks, sess, permission.VerClientes, view.Into("clientes", &page.Clients, func(ctx context.Context) ([]entity.User, error) {
		return uc.sales.Clients(ctx, token)
	}))
	tasks = when(tasks, sess, permission.VerVendedores, view.Into("vendedores", &page.Vendors, func(ctx context.Context) ([]entity.User, error) {
		return uc.sales.Vendors(ctx, token)
	}))

	var payments []entity.Payment
	if f.Tipo != "" && len(page.Violations) == 0 {
		if !sess.Can(reportPermission[f.Tipo]) {
			page.State = view.ErrorState(domain.ErrForbidden, "No tienes permiso para ver este reporte.")
			return page
		}
		tasks = append(tasks, uc.reportTask(&page, f, token))
		if f.Tipo == dto.ReporteClienteEspecifico {
			tasks = when(tasks, sess, permission.VerPagos, view.Into("pagos", &payments, func(ctx context.Context) ([]entity.Payment, error) {
				return uc.payments.Payments(ctx, token, f.ClienteID)
			}))
		}
	}
	page.State = uc.composer.Load(ctx, "Error al cargar el reporte", tasks...)
	if page.Statement != nil {
		joined := page.Statement.WithPayments(payments)
		page.Statement = &joined
	}
	return page
}

func (uc *ReportUseCase) reportTask(page *ReportPage, f dto.ReportFilter, token string) view.Task {
	q := f.Query()
	switch f.Tipo {
	case dto.ReporteProductos:
		return view.Into("reporte-productos", &page.Products, func(ctx context.Context) (*entity.ProductReport, error) {
			r, err := uc.api.ProductReport(ctx, token, q)
			return &r, err
		})
	case dto.ReporteClientes:
		return view.Into("reporte-clientes", &page.ClientsRep, func(ctx context.Context) (*entity.ClientReport, error) {
			r, err := uc.api.ClientReport(ctx, token, q)
			return &r, err
		})
	case dto.ReporteClienteEspecifico:
		return view.Into("reporte-cliente", &page.Statement, func(ctx context.Context) (*entity.ClientStatement, error) {
			r, err := uc.api.ClientStatement(ctx, token, f.ClienteID, q)
			return &r, err
		})
	default:
		return view.Into("reporte-deudas", &page.VendorDebts, func(ctx context.Context) (*entity.VendorDebtReport, error) {
			r, err := uc.api.VendorDebts(ctx, token, f.VendedorID, q)
			return &r, err
		})
	}
}

// StatementPDF estado de cuenta del cliente en PDF, con los pagos aplicados.
func (uc *ReportUseCase) StatementPDF(ctx context.Context, sess *session.Session, f dto.ReportFilter) ([]byte, string, error) {
	f.Tipo = dto.ReporteClienteEspecifico
	page := uc.Load(ctx, sess, f)
	if len(page.Violations) > 0 {
		return nil, "", domain.ErrInvalidInput
	}
	if page.State.IsError() {
		return nil, "", page.State.Err
	}
	pdf, err := uc.docs.StatementPDF(page.Client(), *page.Statement)
	if err != nil {
		return nil, "", fmt.Errorf("estado de cuenta: %w", err)
	}
	return pdf, fmt.Sprintf("estado-cuenta-%s.pdf", f.ClienteID), nil
}
