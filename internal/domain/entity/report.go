package entity

import "github.com/shopspring/decimal"

// ProductReport reporte de productos.
type ProductReport struct {
	MasVendidos []struct {
		ID                   string          `json:"_id"`
		Nombre               string          `json:"nombre"`
		TotalCantidadVendida float64         `json:"totalCantidadVendida"`
		TotalVenta           decimal.Decimal `json:"totalVenta"`
	} `json:"productosMasVendidos"`
	MargenPorProducto []struct {
		ID             string          `json:"_id"`
		Nombre         string          `json:"nombre"`
		TotalCosto     decimal.Decimal `json:"totalCosto"`
		TotalVenta     decimal.Decimal `json:"totalVenta"`
		MargenGanancia decimal.Decimal `json:"margenGanancia"`
	} `json:"margenGananciaPorProducto"`
	Perdidos []struct {
		ID              string  `json:"_id"`
		Nombre          string  `json:"nombre"`
		CantidadPerdida float64 `json:"cantidadPerdida"`
	} `json:"productosPerdidos"`
	SinMovimiento []struct {
		ID               string `json:"_id"`
		Nombre           string `json:"nombre"`
		TotalMovimientos int    `json:"totalMovimientos"`
	} `json:"productosSinMovimiento"`
	EnRiesgoExpirar []struct {
		ID                 string  `json:"_id"`
		Nombre             string  `json:"nombre"`
		CantidadDisponible float64 `json:"cantidadDisponible"`
		FechaVencimiento   Date    `json:"fechaVencimiento"`
	} `json:"productosEnRiesgoExpirar"`
	Rentabilidad []struct {
		Nombre       string          `json:"nombre"`
		Rentabilidad decimal.Decimal `json:"rentabilidad"`
	} `json:"rentabilidadPorProducto"`
}

// ClientSummary cliente dentro de los reportes de clientes.
type ClientSummary struct {
	ID            string          `json:"_id"`
	Nombre        string          `json:"nombre"`
	Email         string          `json:"email"`
	TotalComprado decimal.Decimal `json:"totalComprado,omitempty"`
	TotalDeuda    decimal.Decimal `json:"totalDeuda,omitempty"`
	UltimaCompra  Date            `json:"ultimaCompra,omitempty"`
}

// ClientReport reporte general de clientes.
type ClientReport struct {
	MasCompran []ClientSummary `json:"clientesMasCompran"`
	ConDeuda   []ClientSummary `json:"clientesConDeuda"`
	Inactivos  []ClientSummary `json:"clientesInactivos"`
	ConSaldo   []struct {
		ID               string `json:"_id"`
		Nombre           string `json:"nombre"`
		Email            string `json:"email"`
		VentasPendientes []struct {
			VentaID        string          `json:"ventaId"`
			FechaVenta     Date            `json:"fechaVenta"`
			SaldoPendiente decimal.Decimal `json:"saldoPendiente"`
			TotalVenta     decimal.Decimal `json:"totalVenta"`
		} `json:"ventasPendientes"`
	} `json:"ventasConSaldoPendiente"`
	Resumen struct {
		TotalClientes         int             `json:"totalClientes"`
		TotalDeudaGlobal      decimal.Decimal `json:"totalDeudaGlobal"`
		TotalClientesSinDeuda int             `json:"totalClientesSinDeuda"`
	} `json:"resumenGeneral"`
}

// StatementLot lote usado en una línea del estado de cuenta.
type StatementLot struct {
	LoteID           string  `json:"loteId"`
	Cantidad         float64 `json:"cantidad"`
	FechaVencimiento Date    `json:"fechaVencimiento"`
}

// StatementLine producto vendido dentro del estado de cuenta.
type StatementLine struct {
	Producto string          `json:"producto"`
	Cantidad float64         `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
	Lotes    []StatementLot  `json:"lotes"`
}

// AppliedPayment parte de un pago aplicada a una venta.
type AppliedPayment struct {
	VentaID       string          `json:"ventaId"`
	FechaVenta    Date            `json:"fechaVenta"`
	TotalVenta    decimal.Decimal `json:"totalVenta"`
	SaldoPrevio   decimal.Decimal `json:"saldoPrevio"`
	PagoAplicado  decimal.Decimal `json:"pagoAplicado"`
	SaldoRestante decimal.Decimal `json:"saldoRestante"`
}

// StatementPayment pago del cliente con sus aplicaciones.
type StatementPayment struct {
	FechaPago      Date             `json:"fechaPago"`
	MontoPagado    decimal.Decimal  `json:"montoPagado"`
	MetodoPago     string           `json:"metodoPago"`
	SaldoRestante  decimal.Decimal  `json:"saldoRestante"`
	PagosAplicados []AppliedPayment `json:"pagosAplicados"`
}

// StatementSale venta dentro del estado de cuenta de un cliente.
type StatementSale struct {
	VentaID     string             `json:"ventaId"`
	Cliente     string             `json:"cliente"`
	Vendedor    string             `json:"vendedor"`
	Productos   []StatementLine    `json:"productos"`
	TotalVenta  decimal.Decimal    `json:"totalVenta"`
	PagoInicial decimal.Decimal    `json:"pagoInicial"`
	SaldoVenta  decimal.Decimal    `json:"saldoVenta"`
	FechaVenta  Date               `json:"fechaVenta"`
	Pagos       []StatementPayment `json:"pagos"`
}

// ClientStatement reporte de cliente específico (estado de cuenta).
type ClientStatement struct {
	Ventas       []StatementSale `json:"ventas"`
	TotalVendido decimal.Decimal `json:"totalVendido"`
	TotalPagado  decimal.Decimal `json:"totalPagado"`
	TotalDeuda   decimal.Decimal `json:"totalDeuda"`
}

// WithPayments adjunta a cada venta los pagos del cliente aplicados a ella.
func (c ClientStatement) WithPayments(payments []Payment) ClientStatement {
	out := c
	out.Ventas = make([]StatementSale, len(c.Ventas))
	for i, v := range c.Ventas {
		v.Pagos = nil
		for _, p := range payments {
			if p.AppliesTo(v.VentaID) {
				v.Pagos = append(v.Pagos, StatementPayment{
					FechaPago:      p.FechaPago,
					MontoPagado:    p.MontoPagado,
					MetodoPago:     p.MetodoPago,
					SaldoRestante:  p.SaldoRestante,
					PagosAplicados: p.PagosAplicados,
				})
			}
		}
		out.Ventas[i] = v
	}
	return out
}

// VendorDebtReport deudas de los clientes de un vendedor.
type VendorDebtReport struct {
	Vendedor     string          `json:"vendedor"`
	TotalDeuda   decimal.Decimal `json:"totalDeuda"`
	TotalCobrado decimal.Decimal `json:"totalCobrado"`
	Clientes     []struct {
		Cliente    string          `json:"cliente"`
		TotalDeuda decimal.Decimal `json:"totalDeuda"`
		Cobrado    decimal.Decimal `json:"cobrado"`
		Ventas     []struct {
			Fecha      Date            `json:"fecha"`
			TotalVenta decimal.Decimal `json:"totalVenta"`
			SaldoVenta decimal.Decimal `json:"saldoVenta"`
			Productos  []string        `json:"productos"`
		} `json:"ventas"`
	} `json:"clientes"`
}

// PredictionSeries histórico y predicción de una serie.
type PredictionSeries struct {
	Historico    []float64 `json:"historico"`
	Predicciones []float64 `json:"predicciones"`
}

// Prediction respuesta de /predicciones/ventas-produccion. Según el backend
// llega como una serie única o separada en ventas y producción.
type Prediction struct {
	PredictionSeries
	Ventas     *PredictionSeries `json:"ventas,omitempty"`
	Produccion *PredictionSeries `json:"produccion,omitempty"`
}

// Series devuelve las series presentes con su etiqueta.
func (p Prediction) Series() map[string]PredictionSeries {
	out := map[string]PredictionSeries{}
	if len(p.Historico) > 0 || len(p.Predicciones) > 0 {
		out["Predicción"] = p.PredictionSeries
	}
	if p.Ventas != nil {
		out["Ventas"] = *p.Ventas
	}
	if p.Produccion != nil {
		out["Producción"] = *p.Produccion
	}
	return out
}
