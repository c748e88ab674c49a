package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// SaleForm alta/edición de venta.
type SaleForm struct {
	ClienteID   string         `form:"cliente" validate:"required" msg:"Seleccione un cliente."`
	VendedorID  string         `form:"vendedor"`
	FechaVenta  string         `form:"fechaVenta" validate:"omitempty,datetime=2006-01-02" msg:"La fecha debe estar en formato YYYY-MM-DD."`
	PagoInicial string         `form:"pagoInicial" validate:"omitempty,decnonneg" msg:"El pago inicial no puede ser negativo."`
	Estado      string         `form:"estado" validate:"omitempty,oneof=pendiente completada cancelada"`
	Notas       string         `form:"notas"`
	Productos   []SaleLineForm `form:"productos" validate:"min=1,dive" msg:"Agregue al menos un producto."`
}

// SaleLineForm línea de producto del formulario de venta. El lote es opcional;
// sin lote el backend asigna por FIFO.
type SaleLineForm struct {
	ProductoID     string `form:"productoId" validate:"required" msg:"Seleccione un producto."`
	Cantidad       string `form:"cantidad" validate:"decpos" msg:"La cantidad debe ser mayor que 0."`
	PrecioUnitario string `form:"precioUnitario" validate:"omitempty,decpos" msg:"El precio debe ser mayor que 0."`
	LoteID         string `form:"loteId"`
}

// Normalize descarta filas vacías que deja el formulario.
func (f *SaleForm) Normalize() {
	lines := f.Productos[:0]
	for _, l := range f.Productos {
		if trim(l.ProductoID) == "" && trim(l.Cantidad) == "" {
			continue
		}
		lines = append(lines, l)
	}
	f.Productos = lines
}

// Lines líneas valorizadas: si la fila no trae precio se toma el de catálogo.
func (f SaleForm) Lines(catalog []entity.Product) []entity.SaleLine {
	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = p.PrecioVenta
	}
	out := make([]entity.SaleLine, 0, len(f.Productos))
	for _, l := range f.Productos {
		price := prices[l.ProductoID]
		if trim(l.PrecioUnitario) != "" {
			price = Decimal(l.PrecioUnitario)
		}
		out = append(out, entity.SaleLine{
			Producto:       entity.Ref{ID: l.ProductoID},
			Cantidad:       Float(l.Cantidad),
			PrecioUnitario: price,
		})
	}
	return out
}

// SalePayload cuerpo de POST/PUT /ventas.
type SalePayload struct {
	Cliente     string            `json:"cliente"`
	Vendedor    string            `json:"vendedor,omitempty"`
	Productos   []SaleLinePayload `json:"productos"`
	PagoInicial decimal.Decimal   `json:"pagoInicial"`
	FechaVenta  string            `json:"fechaVenta,omitempty"`
	Estado      string            `json:"estado,omitempty"`
	Notas       string            `json:"notas"`
}

// SaleLinePayload línea de venta. El precio solo viaja si se modificó respecto
// al de catálogo.
type SaleLinePayload struct {
	ProductoID     string           `json:"productoId"`
	Cantidad       float64          `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precioUnitario,omitempty"`
	Lotes          []SaleLotPayload `json:"lotes,omitempty"`
}

// SaleLotPayload cantidad tomada de un lote.
type SaleLotPayload struct {
	LoteID   string  `json:"loteId"`
	Cantidad float64 `json:"cantidad"`
}

// Payload convierte el formulario ya validado.
func (f SaleForm) Payload(catalog []entity.Product) SalePayload {
	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, p := range catalog {
		prices[p.ID] = p.PrecioVenta
	}
	lines := make([]SaleLinePayload, 0, len(f.Productos))
	for _, l := range f.Productos {
		line := SaleLinePayload{ProductoID: l.ProductoID, Cantidad: Float(l.Cantidad)}
		if trim(l.PrecioUnitario) != "" {
			if price := Decimal(l.PrecioUnitario); !price.Equal(prices[l.ProductoID]) {
				line.PrecioUnitario = &price
			}
		}
		if l.LoteID != "" {
			line.Lotes = []SaleLotPayload{{LoteID: l.LoteID, Cantidad: line.Cantidad}}
		}
		lines = append(lines, line)
	}
	return SalePayload{
		Cliente:     f.ClienteID,
		Vendedor:    f.VendedorID,
		Productos:   lines,
		PagoInicial: Decimal(f.PagoInicial),
		FechaVenta:  f.FechaVenta,
		Estado:      f.Estado,
		Notas:       trim(f.Notas),
	}
}

// SaleFormFrom rellena el formulario de edición.
func SaleFormFrom(s entity.Sale) SaleForm {
	f := SaleForm{
		ClienteID:   s.Cliente.ID,
		FechaVenta:  s.FechaVenta.ISODate(),
		PagoInicial: s.PagoInicial.String(),
		Estado:      s.Estado,
		Notas:       s.Notas,
	}
	if s.Vendedor != nil {
		f.VendedorID = s.Vendedor.ID
	}
	for _, l := range s.Productos {
		line := SaleLineForm{
			ProductoID:     l.Producto.ID,
			Cantidad:       decimal.NewFromFloat(l.Cantidad).String(),
			PrecioUnitario: l.PrecioUnitario.String(),
		}
		if len(l.Lotes) > 0 {
			line.LoteID = l.Lotes[0].Lote.ID
		}
		f.Productos = append(f.Productos, line)
	}
	return f
}

// SaleFilter filtros de la lista de ventas.
type SaleFilter struct {
	Q       string `query:"q"`
	Estado  string `query:"estado"` // "", pagadas, saldo
	Cliente string `query:"cliente"`
	Page    int    `query:"page"`
}

// Filtros de saldo de la lista de ventas.
const (
	FiltroPagadas  = "pagadas"
	FiltroConSaldo = "saldo"
)

// PaymentForm registro de pago de un cliente.
type PaymentForm struct {
	ClienteID  string   `form:"cliente" validate:"required" msg:"Seleccione un cliente."`
	Monto      string   `form:"montoPagado" validate:"decpos" msg:"El monto debe ser mayor que 0."`
	MetodoPago string   `form:"metodoPago" validate:"oneof=efectivo transferencia" msg:"Seleccione el método de pago."`
	FechaPago  string   `form:"fechaPago" validate:"omitempty,datetime=2006-01-02"`
	Ventas     []string `form:"ventas"`
}

// PaymentPayload cuerpo de POST /pagos.
type PaymentPayload struct {
	Cliente     string          `json:"cliente"`
	MontoPagado decimal.Decimal `json:"montoPagado"`
	MetodoPago  string          `json:"metodoPago"`
	FechaPago   string          `json:"fechaPago,omitempty"`
	Ventas      []string        `json:"ventas,omitempty"`
}

// Payload convierte el formulario ya validado.
func (f PaymentForm) Payload() PaymentPayload {
	return PaymentPayload{
		Cliente:     f.ClienteID,
		MontoPagado: Decimal(f.Monto),
		MetodoPago:  f.MetodoPago,
		FechaPago:   f.FechaPago,
		Ventas:      f.Ventas,
	}
}

// PaymentQuery cliente seleccionado en la página de pagos.
type PaymentQuery struct {
	ClienteID string `query:"cliente"`
}
