package entity

import "github.com/shopspring/decimal"

// Stock existencias de un producto.
type Stock struct {
	ID              string  `json:"_id"`
	Producto        Ref     `json:"productoId"`
	StockActual     float64 `json:"stockActual"`
	StockReservado  float64 `json:"stockReservado"`
	StockMinimo     float64 `json:"stockMinimo"`
	StockMaximo     float64 `json:"stockMaximo"`
	StockDisponible float64 `json:"stockDisponible"`
}

// BajoMinimo indica si el stock actual cayó por debajo del mínimo configurado.
func (s Stock) BajoMinimo() bool {
	return s.StockMinimo > 0 && s.StockActual < s.StockMinimo
}

// Estados de un lote de producción.
const (
	LoteDisponible = "disponible"
	LoteAgotado    = "agotado"
	LoteDanado     = "dañado"
	LoteExpirado   = "expirado"
)

// Batch lote de producción.
type Batch struct {
	ID                 string          `json:"_id"`
	Producto           Ref             `json:"productoId"`
	FechaProduccion    Date            `json:"fechaProduccion"`
	CantidadProducida  float64         `json:"cantidadProducida"`
	CantidadVendida    float64         `json:"cantidadVendida"`
	FechaVencimiento   Date            `json:"fechaVencimiento"`
	CostoLote          decimal.Decimal `json:"costoLote"`
	UbicacionLote      string          `json:"ubicacionLote"`
	CodigoLote         string          `json:"codigoLote"`
	Estado             string          `json:"estado"`
	CantidadDisponible float64         `json:"cantidadDisponible"`
}

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "ENTRADA"
	MovimientoSalida  = "SALIDA"
	MovimientoAjuste  = "AJUSTE"
)

// Movement movimiento de inventario.
type Movement struct {
	ID            string          `json:"_id"`
	MovimientoID  string          `json:"movimientoId"`
	Producto      Ref             `json:"productoId"`
	Lote          Ref             `json:"loteProduccion"`
	Tipo          string          `json:"tipoMovimiento"`
	Razon         string          `json:"razon"`
	Cantidad      float64         `json:"cantidad"`
	Fecha         Date            `json:"fechaMovimiento"`
	Costo         decimal.Decimal `json:"costoMovimiento"`
	Usuario       Ref             `json:"usuarioId"`
	OrigenDestino string          `json:"origenDestino"`
}

// Alert alerta de inventario generada por el backend.
type Alert struct {
	ID          string `json:"_id"`
	Producto    Ref    `json:"productoId"`
	Descripcion string `json:"descripcion"`
	Prioridad   string `json:"prioridad"`                   // alta | media | baja
	Fecha       Date   `json:"fechaAlerta"`
	Estado      string `json:"estado"`                      // pendiente | en_proceso | completada
	StockBajo   bool   `json:"alertaStockBajo,omitempty"`
	Vencimiento bool   `json:"alertaVencimiento,omitempty"`
	StockMaximo bool   `json:"alertaStockMaximo,omitempty"`
}

// Parameter parámetro de negocio editable (p. ej. límite de deudas por cliente).
type Parameter struct {
	ID          string          `json:"_id"`
	Nombre      string          `json:"nombre"`
	Valor       decimal.Decimal `json:"valor"`
	Descripcion string          `json:"descripcion"`
}

// ParamLimiteDeudasCliente nombre del parámetro con el tope de deuda por cliente.
const ParamLimiteDeudasCliente = "limite_Deudas_Cliente"

// FindParameter busca un parámetro por nombre.
func FindParameter(params []Parameter, nombre string) (Parameter, bool) {
	for _, p := range params {
		if p.Nombre == nombre {
			return p, true
		}
	}
	return Parameter{}, false
}
