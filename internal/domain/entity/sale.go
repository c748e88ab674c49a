package entity

import "github.com/shopspring/decimal"

// Estados de una venta.
const (
	VentaPendiente  = "pendiente"
	VentaCompletada = "completada"
	VentaCancelada  = "cancelada"
)

// Sale venta a un cliente.
type Sale struct {
	ID          string          `json:"_id"`
	Cliente     Ref             `json:"cliente"`
	Vendedor    *Ref            `json:"vendedor"`
	Productos   []SaleLine      `json:"productos"`
	TotalVenta  decimal.Decimal `json:"totalVenta"`
	FechaVenta  Date            `json:"fechaVenta"`
	Estado      string          `json:"estado"`
	SaldoVenta  decimal.Decimal `json:"saldoVenta"`
	PagoInicial decimal.Decimal `json:"pagoInicial"`
	Notas       string          `json:"notas"`
}

// Pagada indica si la venta no tiene saldo pendiente.
func (s Sale) Pagada() bool {
	return s.SaldoVenta.Sign() <= 0
}

// SaleLine línea de producto de una venta.
type SaleLine struct {
	Producto       Ref             `json:"productoId"`
	Cantidad       float64         `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Lotes          []SaleLot       `json:"lotes"`
}

// Subtotal cantidad por precio unitario.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.PrecioUnitario.Mul(decimal.NewFromFloat(l.Cantidad))
}

// SaleLot asignación de cantidad de una línea a un lote.
type SaleLot struct {
	Lote     Ref     `json:"loteId"`
	Cantidad float64 `json:"cantidad"`
}

// SaleTotal suma los subtotales de las líneas.
func SaleTotal(lines []SaleLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// SaleCreated respuesta del backend al crear una venta. AdvertenciaDeuda viene
// cuando el cliente supera su límite de deuda.
type SaleCreated struct {
	Message          string `json:"message"`
	Venta            Sale   `json:"venta"`
	AdvertenciaDeuda string `json:"advertenciaDeuda,omitempty"`
}

// ClientDebt saldo pendiente de un cliente: suma de saldos de sus ventas pendientes.
func ClientDebt(sales []Sale, clienteID string) decimal.Decimal {
	debt := decimal.Zero
	for _, s := range sales {
		if s.Cliente.ID == clienteID && s.Estado == VentaPendiente {
			debt = debt.Add(s.SaldoVenta)
		}
	}
	return debt
}

// Métodos de pago aceptados.
const (
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// PendingSale venta con saldo pendiente de un cliente.
type PendingSale struct {
	VentaID    string          `json:"ventaId"`
	FechaVenta Date            `json:"fechaVenta"`
	TotalVenta decimal.Decimal `json:"totalVenta"`
	SaldoVenta decimal.Decimal `json:"saldoVenta"`
}

// Payment pago registrado de un cliente. Según la versión del backend el
// reparto llega como ventasAplicadas o como pagosAplicados.
type Payment struct {
	FechaPago       Date             `json:"fechaPago"`
	MontoPagado     decimal.Decimal  `json:"montoPagado"`
	MetodoPago      string           `json:"metodoPago"`
	SaldoRestante   decimal.Decimal  `json:"saldoRestante"`
	VentasAplicadas []PendingSale    `json:"ventasAplicadas,omitempty"`
	PagosAplicados  []AppliedPayment `json:"pagosAplicados,omitempty"`
}

// AppliesTo indica si parte del pago se aplicó a la venta.
func (p Payment) AppliesTo(ventaID string) bool {
	for _, a := range p.PagosAplicados {
		if a.VentaID == ventaID {
			return true
		}
	}
	for _, v := range p.VentasAplicadas {
		if v.VentaID == ventaID {
			return true
		}
	}
	return false
}

// PaymentResult respuesta del backend al registrar un pago.
type PaymentResult struct {
	FechaPago      Date          `json:"fechaPago"`
	Message        string        `json:"message"`
	PagosAplicados []PendingSale `json:"pagosAplicados"`
}

// Estados de una preventa.
const (
	PreventaPendiente = "pendiente"
	PreventaEntregada = "entregada"
	PreventaCancelada = "cancelada"
)

// Presale pedido anticipado con fecha de entrega.
type Presale struct {
	ID           string          `json:"_id"`
	Cliente      Ref             `json:"cliente"`
	FechaEntrega Date            `json:"fechaEntrega"`
	Productos    []PresaleLine   `json:"productos"`
	Total        decimal.Decimal `json:"total"`
	Estado       string          `json:"estado"`
	Notas        string          `json:"notas,omitempty"`
}

// PresaleLine producto pedido en una preventa.
type PresaleLine struct {
	Producto Ref     `json:"producto"`
	Cantidad float64 `json:"cantidad"`
}
