package dto

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Tipos de reporte.
const (
	ReporteProductos         = "productos"
	ReporteClientes          = "clientes"
	ReporteClienteEspecifico = "cliente-especifico"
	ReporteDeudasVendedor    = "deudas-por-vendedor"
)

// Tipos de filtro de fecha de los reportes.
const (
	FiltroRango  = "range"
	FiltroMes    = "month"
	FiltroAnio   = "year"
	FiltroSemana = "week"
)

// ReportFilter parámetros de la página de reportes.
type ReportFilter struct {
	Tipo       string `query:"tipo" validate:"omitempty,oneof=productos clientes cliente-especifico deudas-por-vendedor" msg:"Tipo de reporte inválido."`
	Filtro     string `query:"filtro" validate:"omitempty,oneof=range month year week"`
	StartDate  string `query:"startDate" validate:"omitempty,datetime=2006-01-02" msg:"Fecha inválida."`
	EndDate    string `query:"endDate" validate:"omitempty,datetime=2006-01-02" msg:"Fecha inválida."`
	Month      int    `query:"month" validate:"omitempty,min=1,max=12"`
	Year       int    `query:"year" validate:"omitempty,min=2000,max=2100"`
	ClienteID  string `query:"clienteId" validate:"required_if=Tipo cliente-especifico" msg:"Seleccione un cliente."`
	VendedorID string `query:"vendedorId" validate:"required_if=Tipo deudas-por-vendedor" msg:"Seleccione un vendedor."`
}

// Check exige las dos fechas cuando el filtro es por rango.
func (f ReportFilter) Check() map[string]string {
	out := map[string]string{}
	if f.Filtro != FiltroRango {
		return out
	}
	if f.StartDate == "" {
		out["startDate"] = "Seleccione la fecha inicial."
	}
	if f.EndDate == "" {
		out["endDate"] = "Seleccione la fecha final."
	}
	if f.StartDate != "" && f.EndDate != "" && f.EndDate < f.StartDate {
		out["endDate"] = "La fecha final debe ser posterior a la inicial."
	}
	return out
}

// Query parámetros de fecha para el backend según el tipo de filtro.
func (f ReportFilter) Query() url.Values {
	q := url.Values{}
	switch f.Filtro {
	case FiltroRango:
		q.Set("startDate", f.StartDate)
		q.Set("endDate", f.EndDate)
	case FiltroMes:
		if f.Month > 0 {
			q.Set("month", strconv.Itoa(f.Month))
		}
		if f.Year > 0 {
			q.Set("year", strconv.Itoa(f.Year))
		}
	case FiltroAnio:
		if f.Year > 0 {
			q.Set("year", strconv.Itoa(f.Year))
		}
	case FiltroSemana:
		q.Set("week", "true")
	}
	return q
}

// PredictionForm producto y tipo de la predicción.
type PredictionForm struct {
	ProductoID string `query:"producto" validate:"required" msg:"Seleccione un producto."`
	Tipo       string `query:"tipo" validate:"oneof=diario mensual" msg:"Seleccione el tipo de predicción."`
}

// ParameterForm edición del valor de un parámetro.
type ParameterForm struct {
	Valor string `form:"valor" validate:"decnonneg" msg:"El valor debe ser un número mayor o igual a 0."`
}

// ParameterPayload cuerpo de PUT /parametros/:id.
type ParameterPayload struct {
	Valor decimal.Decimal `json:"valor"`
}

// Payload convierte el formulario ya validado.
func (f ParameterForm) Payload() ParameterPayload {
	return ParameterPayload{Valor: Decimal(f.Valor)}
}

// DashboardQuery rango de tiempo del dashboard.
type DashboardQuery struct {
	TimeRange string `query:"timeRange"`
}
