package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// StockForm edición de existencias de un producto.
type StockForm struct {
	ProductoID     string `form:"productoId" validate:"required" msg:"Seleccione un producto."`
	StockActual    string `form:"stockActual" validate:"decnonneg"`
	StockReservado string `form:"stockReservado" validate:"omitempty,decnonneg"`
	StockMinimo    string `form:"stockMinimo" validate:"decnonneg"`
	StockMaximo    string `form:"stockMaximo" validate:"decnonneg"`
}

// StockPayload cuerpo de PUT /stock/:productoId.
type StockPayload struct {
	StockActual    float64 `json:"stockActual"`
	StockReservado float64 `json:"stockReservado"`
	StockMinimo    float64 `json:"stockMinimo"`
	StockMaximo    float64 `json:"stockMaximo"`
}

// Payload convierte el formulario ya validado.
func (f StockForm) Payload() StockPayload {
	return StockPayload{
		StockActual:    Float(f.StockActual),
		StockReservado: Float(f.StockReservado),
		StockMinimo:    Float(f.StockMinimo),
		StockMaximo:    Float(f.StockMaximo),
	}
}

// StockFormFrom rellena el formulario de edición.
func StockFormFrom(s entity.Stock) StockForm {
	return StockForm{
		ProductoID:     s.Producto.ID,
		StockActual:    floatString(s.StockActual),
		StockReservado: floatString(s.StockReservado),
		StockMinimo:    floatString(s.StockMinimo),
		StockMaximo:    floatString(s.StockMaximo),
	}
}

// BatchForm alta/edición de lote de producción.
type BatchForm struct {
	ProductoID        string `form:"productoId" validate:"required" msg:"Seleccione un producto."`
	FechaProduccion   string `form:"fechaProduccion" validate:"omitempty,datetime=2006-01-02"`
	CantidadProducida string `form:"cantidadProducida" validate:"decpos" msg:"La cantidad producida debe ser al menos 1."`
	CostoLote         string `form:"costoLote" validate:"omitempty,decnonneg"`
	UbicacionLote     string `form:"ubicacionLote" validate:"notblank" msg:"La ubicación es obligatoria."`
	Estado            string `form:"estado" validate:"omitempty,oneof=disponible agotado dañado expirado"`
}

// BatchPayload cuerpo de POST/PUT /lotes.
type BatchPayload struct {
	ProductoID        string          `json:"productoId"`
	FechaProduccion   string          `json:"fechaProduccion,omitempty"`
	CantidadProducida float64         `json:"cantidadProducida"`
	CostoLote         decimal.Decimal `json:"costoLote"`
	UbicacionLote     string          `json:"ubicacionLote"`
	Estado            string          `json:"estado,omitempty"`
}

// Payload convierte el formulario ya validado.
func (f BatchForm) Payload() BatchPayload {
	return BatchPayload{
		ProductoID:        f.ProductoID,
		FechaProduccion:   f.FechaProduccion,
		CantidadProducida: Float(f.CantidadProducida),
		CostoLote:         Decimal(f.CostoLote),
		UbicacionLote:     trim(f.UbicacionLote),
		Estado:            f.Estado,
	}
}

// BatchFormFrom rellena el formulario de edición.
func BatchFormFrom(b entity.Batch) BatchForm {
	return BatchForm{
		ProductoID:        b.Producto.ID,
		FechaProduccion:   b.FechaProduccion.ISODate(),
		CantidadProducida: floatString(b.CantidadProducida),
		CostoLote:         b.CostoLote.String(),
		UbicacionLote:     b.UbicacionLote,
		Estado:            b.Estado,
	}
}

// MovementForm registro de movimiento de inventario.
type MovementForm struct {
	ProductoID     string `form:"productoId" validate:"required" msg:"Seleccione un producto."`
	LoteProduccion string `form:"loteProduccion"`
	Tipo           string `form:"tipoMovimiento" validate:"oneof=ENTRADA SALIDA AJUSTE" msg:"Seleccione el tipo de movimiento."`
	Cantidad       string `form:"cantidad" validate:"decpos" msg:"La cantidad debe ser mayor que 0."`
	Razon          string `form:"razon" validate:"notblank" msg:"La razón es obligatoria."`
	OrigenDestino  string `form:"origenDestino"`
}

// MovementPayload cuerpo de POST/PUT /movimientos.
type MovementPayload struct {
	ProductoID     string  `json:"productoId"`
	LoteProduccion string  `json:"loteProduccion,omitempty"`
	TipoMovimiento string  `json:"tipoMovimiento"`
	Cantidad       float64 `json:"cantidad"`
	Razon          string  `json:"razon"`
	OrigenDestino  string  `json:"origenDestino,omitempty"`
}

// Payload convierte el formulario ya validado.
func (f MovementForm) Payload() MovementPayload {
	return MovementPayload{
		ProductoID:     f.ProductoID,
		LoteProduccion: f.LoteProduccion,
		TipoMovimiento: f.Tipo,
		Cantidad:       Float(f.Cantidad),
		Razon:          trim(f.Razon),
		OrigenDestino:  trim(f.OrigenDestino),
	}
}

// MovementFormFrom rellena el formulario de edición.
func MovementFormFrom(m entity.Movement) MovementForm {
	return MovementForm{
		ProductoID:     m.Producto.ID,
		LoteProduccion: m.Lote.ID,
		Tipo:           m.Tipo,
		Cantidad:       floatString(m.Cantidad),
		Razon:          m.Razon,
		OrigenDestino:  m.OrigenDestino,
	}
}

func floatString(f float64) string {
	return decimal.NewFromFloat(f).String()
}

// Pestañas de la página de inventario.
const (
	TabStock       = "stock"
	TabLotes       = "lotes"
	TabMovimientos = "movimientos"
	TabAlertas     = "alertas"
)

// InventoryQuery pestaña activa, búsqueda y página.
type InventoryQuery struct {
	Tab  string `query:"tab"`
	Q    string `query:"q"`
	Page int    `query:"page"`
}
