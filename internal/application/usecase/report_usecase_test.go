package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
)

type fakePredictions struct {
	calls
	err error
}

func (f *fakePredictions) Prediction(context.Context, string, string, string) (entity.Prediction, error) {
	f.hit("prediction")
	if f.err != nil {
		return entity.Prediction{}, f.err
	}
	return entity.Prediction{PredictionSeries: entity.PredictionSeries{Historico: []float64{1, 2}, Predicciones: []float64{3}}}, nil
}

var reportAdmin = []permission.Permission{
	permission.VerClientes, permission.VerVendedores, permission.VerPagos,
	permission.VerReportesProductos, permission.VerReportesClientesEspecificos,
}

func newReports(r *fakeReports, pay *fakePayments, d *fakeDocs) *ReportUseCase {
	return NewReportUseCase(r, &fakeSales{clients: []entity.User{{ID: "c1", Name: "Rosa"}}}, pay, d, composer())
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestAvailableTypes(t *testing.T) {
	assert.Equal(t, []string{dto.ReporteProductos, dto.ReporteClienteEspecifico}, AvailableTypes(sessWith(reportAdmin...)))
	assert.Empty(t, AvailableTypes(sessWith()))
}

func TestReportLoad_Productos_EnviaElFiltroDeFecha(t *testing.T) {
	r := &fakeReports{}
	page := newReports(r, &fakePayments{}, &fakeDocs{}).Load(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{Tipo: dto.ReporteProductos, Filtro: dto.FiltroAnio, Year: 2025})

	require.True(t, page.State.IsReady())
	require.NotNil(t, page.Products)
	assert.Equal(t, "2025", r.lastQuery.Get("year"))
}

func TestReportLoad_RangoIncompleto_NoPideElReporte(t *testing.T) {
	r := &fakeReports{}
	page := newReports(r, &fakePayments{}, &fakeDocs{}).Load(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{Tipo: dto.ReporteProductos, Filtro: dto.FiltroRango, StartDate: "2025-01-01"})

	assert.Equal(t, "Seleccione la fecha final.", page.Violations.Get("endDate"))
	assert.Zero(t, r.total())
	assert.Len(t, page.Clients, 1, "los selectores se cargan igual")
}

func TestReportLoad_SinPermisoDelTipo(t *testing.T) {
	r := &fakeReports{}
	page := newReports(r, &fakePayments{}, &fakeDocs{}).Load(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{Tipo: dto.ReporteClientes})

	assert.True(t, page.State.IsError())
	assert.ErrorIs(t, page.State.Err, domain.ErrForbidden)
	assert.Zero(t, r.total())
}

func TestReportLoad_EstadoDeCuentaConPagos(t *testing.T) {
	r := &fakeReports{statement: entity.ClientStatement{Ventas: []entity.StatementSale{{VentaID: "v1"}, {VentaID: "v2"}}}}
	pay := &fakePayments{history: []entity.Payment{{PagosAplicados: []entity.AppliedPayment{{VentaID: "v2"}}}}}

	page := newReports(r, pay, &fakeDocs{}).Load(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{Tipo: dto.ReporteClienteEspecifico, ClienteID: "c1"})

	require.True(t, page.State.IsReady())
	require.NotNil(t, page.Statement)
	assert.Empty(t, page.Statement.Ventas[0].Pagos)
	assert.Len(t, page.Statement.Ventas[1].Pagos, 1)
	assert.Equal(t, "Rosa", page.Client().Name)
}

func TestReportLoad_EstadoDeCuentaSinCliente(t *testing.T) {
	r := &fakeReports{}
	page := newReports(r, &fakePayments{}, &fakeDocs{}).Load(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{Tipo: dto.ReporteClienteEspecifico})

	assert.Equal(t, "Seleccione un cliente.", page.Violations.Get("clienteId"))
	assert.Zero(t, r.total())
}

func TestStatementPDF(t *testing.T) {
	d := &fakeDocs{}
	pdf, name, err := newReports(&fakeReports{}, &fakePayments{}, d).StatementPDF(context.Background(), sessWith(reportAdmin...),
		dto.ReportFilter{ClienteID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, "estado-cuenta-c1.pdf", name)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, d.get("statementPDF"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Predicciones
// ──────────────────────────────────────────────────────────────────────────────

func TestPredictionLoad_SinProductoSoloCatalogo(t *testing.T) {
	p := &fakePredictions{}
	page := NewPredictionUseCase(p, &fakeCatalog{}, composer()).Load(context.Background(),
		sessWith(permission.VerProductos, permission.VerPredicciones), dto.PredictionForm{})

	assert.True(t, page.State.IsReady())
	assert.Nil(t, page.Prediction)
	assert.Zero(t, p.total())
}

func TestPredictionLoad(t *testing.T) {
	p := &fakePredictions{}
	page := NewPredictionUseCase(p, &fakeCatalog{}, composer()).Load(context.Background(),
		sessWith(permission.VerProductos, permission.VerPredicciones), dto.PredictionForm{ProductoID: "p1", Tipo: "mensual"})

	require.NotNil(t, page.Prediction)
	assert.Contains(t, page.Prediction.Series(), "Predicción")
}

func TestPredictionLoad_SinHistorial(t *testing.T) {
	p := &fakePredictions{err: &domain.APIError{Status: 400, Message: "No hay suficientes datos históricos para hacer predicciones."}}
	page := NewPredictionUseCase(p, &fakeCatalog{}, composer()).Load(context.Background(),
		sessWith(permission.VerProductos, permission.VerPredicciones), dto.PredictionForm{ProductoID: "p1", Tipo: "diario"})

	assert.Equal(t, NotEnoughHistory, page.Message)
	assert.True(t, page.State.IsReady(), "el catálogo sigue visible")
}

func TestPredictionMessage(t *testing.T) {
	assert.Equal(t, "Producto no encontrado", PredictionMessage(&domain.APIError{Status: 404, Message: "Producto no encontrado"}))
	assert.Equal(t, "Error al obtener las predicciones", PredictionMessage(errors.New("timeout")))
}

func TestPredictionLoad_TipoInvalido(t *testing.T) {
	p := &fakePredictions{}
	page := NewPredictionUseCase(p, &fakeCatalog{}, composer()).Load(context.Background(),
		sessWith(permission.VerProductos, permission.VerPredicciones), dto.PredictionForm{ProductoID: "p1", Tipo: "anual"})

	assert.True(t, page.Violations.Has("tipo"))
	assert.Zero(t, p.total())
}
